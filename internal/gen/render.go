// File: render.go
// Title: Generated Source Rendering
// Description: Turns a validated error catalog into Go source for the
//              constructor family. Rendering is deterministic: catalog
//              order is preserved, message templates compile into
//              fmt.Sprintf calls with verbs chosen by field type, and
//              the output is passed through go/format before writing.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-04-14
// Modified: 2026-04-14
//
// Change History:
// - 2026-04-14 v0.1.0: Initial implementation

package gen

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/mbeckett/plinth/core/errors"
)

var severityIdents = map[string]string{
	"low":      "SeverityLow",
	"medium":   "SeverityMedium",
	"high":     "SeverityHigh",
	"critical": "SeverityCritical",
}

const fileTemplateText = `// Code generated by plinthgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

{{if .UsesFmt}}import "fmt"

{{end}}// Error codes defined by the catalog.
const (
{{- range .Consts}}
	{{.ConstName}} Code = "{{.Code}}"
{{- end}}
)
{{range .Ctors}}
// New{{.Name}} creates an Error with code {{.Code}}: "{{.Message}}".
func New{{.Name}}({{.Params}}) *Error {
	return New({{.NewArg}}).
		WithCode({{.ConstName}}).
		WithSeverity({{.Severity}}){{range .Details}}.
		WithDetail("{{.Name}}", {{.Name}}){{end}}
}
{{end}}`

var fileTemplate = template.Must(template.New("catalog").Parse(fileTemplateText))

type constView struct {
	ConstName string
	Code      string
}

type ctorView struct {
	Name      string
	ConstName string
	Code      string
	Message   string
	Params    string
	NewArg    string
	Severity  string
	Details   []Field
}

type fileView struct {
	Source  string
	Package string
	UsesFmt bool
	Consts  []constView
	Ctors   []ctorView
}

// Render produces the formatted Go source for a validated catalog.
// source names the catalog file in the generated header.
func Render(cat *Catalog, source string) ([]byte, error) {
	view := fileView{
		Source:  source,
		Package: cat.Package,
	}

	for _, d := range cat.Errors {
		constName := "Code" + d.Name
		view.Consts = append(view.Consts, constView{ConstName: constName, Code: d.Code})

		newArg, usesFmt := messageExpr(d)
		view.UsesFmt = view.UsesFmt || usesFmt

		severity := d.Severity
		if severity == "" {
			severity = "medium"
		}

		view.Ctors = append(view.Ctors, ctorView{
			Name:      d.Name,
			ConstName: constName,
			Code:      d.Code,
			Message:   d.Message,
			Params:    paramList(d.Fields),
			NewArg:    newArg,
			Severity:  severityIdents[severity],
			Details:   d.Fields,
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, view); err != nil {
		return nil, errors.Wrap(err, "rendering catalog template")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "formatting generated source").
			WithCode(errors.CodeInvalidFormat)
	}
	return formatted, nil
}

// Generate loads a catalog, renders it and writes the result to outPath.
// A non-empty pkg overrides the catalog's package name. It returns the
// loaded catalog for reporting.
func Generate(catalogPath, outPath, pkg string) (*Catalog, error) {
	cat, err := Load(catalogPath)
	if err != nil {
		return nil, err
	}
	if pkg != "" {
		cat.Package = pkg
		if err := cat.Validate(); err != nil {
			return nil, err
		}
	}

	src, err := Render(cat, filepath.Base(catalogPath))
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return nil, errors.Wrapf(err, "writing %s", outPath)
	}
	return cat, nil
}

// messageExpr returns the Go expression building the constructor message
// and whether it needs the fmt package. Messages without placeholders
// compile to a plain string literal.
func messageExpr(d Definition) (string, bool) {
	refs := placeholders(d.Message)
	if len(refs) == 0 {
		return strconv.Quote(d.Message), false
	}

	verbs := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		verbs[f.Name] = fieldTypes[f.Type]
	}

	format := strings.ReplaceAll(d.Message, "%", "%%")
	for _, f := range d.Fields {
		format = strings.ReplaceAll(format, "{"+f.Name+"}", verbs[f.Name])
	}

	return "fmt.Sprintf(" + strconv.Quote(format) + ", " + strings.Join(refs, ", ") + ")", true
}

func paramList(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name + " " + f.Type
	}
	return strings.Join(parts, ", ")
}
