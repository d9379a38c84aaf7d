// File: catalog.go
// Title: Error Catalog Schema and Loading
// Description: Defines the declarative error catalog consumed by the
//              plinthgen generator and implements loading from YAML or
//              TOML, with the format detected from the file extension.
//              Catalogs are validated structurally before rendering so
//              that generation failures point at the catalog, not at
//              broken output.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-04-14
// Modified: 2026-04-14
//
// Change History:
// - 2026-04-14 v0.1.0: Initial implementation

package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mbeckett/plinth/core/check"
	"github.com/mbeckett/plinth/core/errors"
)

// Catalog is the root of a declarative error catalog.
type Catalog struct {
	Version string       `yaml:"version" toml:"version"`
	Package string       `yaml:"package" toml:"package"`
	Errors  []Definition `yaml:"errors" toml:"errors"`
}

// Definition describes one generated error constructor.
type Definition struct {
	Name     string  `yaml:"name" toml:"name"`
	Code     string  `yaml:"code" toml:"code"`
	Severity string  `yaml:"severity" toml:"severity"`
	Message  string  `yaml:"message" toml:"message"`
	Fields   []Field `yaml:"fields" toml:"fields"`
}

// Field describes one constructor parameter, attached to the error both
// as a message argument and as a detail entry.
type Field struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type" toml:"type"`
}

// fieldTypes maps catalog field types to the fmt verb used in message
// templates.
var fieldTypes = map[string]string{
	"string":  "%s",
	"int":     "%d",
	"int64":   "%d",
	"float64": "%g",
	"bool":    "%t",
	"any":     "%v",
}

// Load reads and validates a catalog file. The format is detected from
// the extension: .yaml and .yml parse as YAML, .toml as TOML.
func Load(path string) (*Catalog, error) {
	if err := check.Str("path", path).NotBlank().Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading catalog %s", path)
	}

	var cat Catalog
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cat); err != nil {
			return nil, errors.Wrapf(err, "parsing catalog %s", path).
				WithCode(errors.CodeInvalidFormat)
		}
	case ".toml":
		if err := toml.Unmarshal(content, &cat); err != nil {
			return nil, errors.Wrapf(err, "parsing catalog %s", path).
				WithCode(errors.CodeInvalidFormat)
		}
	default:
		return nil, errors.Newf("unsupported catalog extension %q", ext).
			WithCode(errors.CodeInvalidFormat).
			WithDetail("path", path)
	}

	if err := cat.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid catalog %s", path)
	}
	return &cat, nil
}

// Validate checks the catalog structurally: identifiers, codes, severity
// names, field types and message placeholders.
func (c *Catalog) Validate() error {
	if c.Version != "1" {
		return errors.Newf("unsupported catalog version %q", c.Version).
			WithCode(errors.CodeInvalidInput)
	}
	if !isLowerIdentifier(c.Package) {
		return errors.Newf("package %q is not a valid package name", c.Package).
			WithCode(errors.CodeInvalidInput)
	}
	if len(c.Errors) == 0 {
		return errors.New("catalog defines no errors").
			WithCode(errors.CodeInvalidInput)
	}

	seen := make(map[string]bool, len(c.Errors))
	for i := range c.Errors {
		d := &c.Errors[i]
		if err := d.validate(); err != nil {
			return err
		}
		if seen[d.Name] {
			return errors.Newf("duplicate error name %q", d.Name).
				WithCode(errors.CodeInvalidInput)
		}
		seen[d.Name] = true
	}
	return nil
}

func (d *Definition) validate() error {
	if !isExportedIdentifier(d.Name) {
		return errors.Newf("error name %q is not a valid exported identifier", d.Name).
			WithCode(errors.CodeInvalidInput)
	}
	if !isCode(d.Code) {
		return errors.Newf("error %s: code %q must be UPPER_SNAKE_CASE", d.Name, d.Code).
			WithCode(errors.CodeInvalidInput)
	}
	if d.Severity == "" {
		d.Severity = "medium"
	}
	if _, ok := errors.ParseSeverity(d.Severity); !ok {
		return errors.Newf("error %s: unknown severity %q", d.Name, d.Severity).
			WithCode(errors.CodeInvalidInput)
	}
	if strings.TrimSpace(d.Message) == "" {
		return errors.Newf("error %s: message must not be blank", d.Name).
			WithCode(errors.CodeInvalidInput)
	}

	fields := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		if !isLowerIdentifier(f.Name) {
			return errors.Newf("error %s: field %q is not a valid identifier", d.Name, f.Name).
				WithCode(errors.CodeInvalidInput)
		}
		if fields[f.Name] {
			return errors.Newf("error %s: duplicate field %q", d.Name, f.Name).
				WithCode(errors.CodeInvalidInput)
		}
		if _, ok := fieldTypes[f.Type]; !ok {
			return errors.Newf("error %s: field %s has unsupported type %q", d.Name, f.Name, f.Type).
				WithCode(errors.CodeInvalidInput)
		}
		fields[f.Name] = true
	}

	for _, ref := range placeholders(d.Message) {
		if !fields[ref] {
			return errors.Newf("error %s: message references unknown field {%s}", d.Name, ref).
				WithCode(errors.CodeInvalidInput)
		}
	}
	return nil
}

// placeholders extracts the {field} references of a message template in
// order of appearance, including repeats.
func placeholders(message string) []string {
	var refs []string
	for i := 0; i < len(message); {
		open := strings.IndexByte(message[i:], '{')
		if open < 0 {
			break
		}
		open += i
		end := strings.IndexByte(message[open:], '}')
		if end < 0 {
			break
		}
		refs = append(refs, message[open+1:open+end])
		i = open + end + 1
	}
	return refs
}

func isExportedIdentifier(s string) bool {
	if s == "" || !unicode.IsUpper(rune(s[0])) {
		return false
	}
	return isIdentifierTail(s[1:])
}

func isLowerIdentifier(s string) bool {
	if s == "" || !unicode.IsLower(rune(s[0])) {
		return false
	}
	return isIdentifierTail(s[1:])
}

func isIdentifierTail(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func isCode(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}

// String returns a short description of the catalog for diagnostics.
func (c *Catalog) String() string {
	return fmt.Sprintf("catalog{package: %s, errors: %d}", c.Package, len(c.Errors))
}
