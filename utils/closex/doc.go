// Package closex implements exactly-once disposal guards.
//
// Package: closex
// Title: Dispose-Once Guards
// Description: Guards a cleanup callback so that it runs at most once even
//              when Close is called concurrently from multiple goroutines.
//              The only guarantee is exactly-once execution; there is no
//              blocking, no ordering between racing callers and no retry.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-04-03
// Modified: 2026-04-03
//
// Change History:
// - 2026-04-03 v0.1.0: Initial implementation
//
// The typical use is making an io.Closer safe against double Close:
//
//	f, err := os.Open(path)
//	if err != nil {
//	    return err
//	}
//	c := closex.OnceCloser(f)
//	defer c.Close() // safe even if Close was already called explicitly
package closex
