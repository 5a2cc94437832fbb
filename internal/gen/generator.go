package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"strings"
	"text/template"

	"intcast/primitive"
)

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "targets_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generator generates per-target cast functions.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// templateData holds all data needed for the targets template.
type templateData struct {
	Package      string
	CastImport   string
	OptionImport string
	// Qualifier prefixes identifiers from package cast, e.g. "cast.".
	Qualifier string
	Targets   []targetData
}

type targetData struct {
	Func string
	Type string
}

var targetsTemplate = template.Must(template.New("targets").Parse(`// Code generated by "intcast gen"; DO NOT EDIT.

package {{.Package}}

import (
	"{{.OptionImport}}"
{{- if .CastImport}}
	"{{.CastImport}}"
{{- end}}
)
{{range .Targets}}
// {{.Func}} converts v to {{.Type}}, returning None if v overflows or underflows {{.Type}}.
func {{.Func}}[From {{$.Qualifier}}Integer](v From) option.Option[{{.Type}}] {
	return {{$.Qualifier}}To[{{.Type}}](v)
}
{{end}}`))

// Generate renders the configured targets into a single formatted file.
func (g *Generator) Generate() (*GeneratedFile, error) {
	if err := g.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	data := g.buildTemplateData()

	var buf bytes.Buffer
	if err := targetsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, &FormatError{Filename: g.config.Output, Source: buf.Bytes(), Err: err}
	}

	return &GeneratedFile{
		Filename: g.config.Output,
		Content:  formatted,
	}, nil
}

func (g *Generator) buildTemplateData() *templateData {
	data := &templateData{
		Package:      g.config.Package,
		CastImport:   g.config.CastImport,
		OptionImport: g.config.optionImportPath(),
	}

	if data.CastImport != "" {
		data.Qualifier = path.Base(data.CastImport) + "."
	}

	for _, k := range g.config.Kinds() {
		data.Targets = append(data.Targets, targetData{
			Func: funcName(k),
			Type: k.TypeName(),
		})
	}

	return data
}

// funcName returns "ToUint8" for KindUint8.
func funcName(k primitive.KindEnum) string {
	name := k.TypeName()
	return "To" + strings.ToUpper(name[:1]) + name[1:]
}

// FormatError is returned when the rendered code does not parse. Source holds
// the unformatted output for debugging.
type FormatError struct {
	Filename string
	Source   []byte
	Err      error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting %s: %v", e.Filename, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
