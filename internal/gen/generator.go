package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"type-layout-importer/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables offset and size comments on every field.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "layouts",
		OutputDir:        "./generated",
		GenerateComments: true,
	}
}

// Generator renders materialization plans as Go source.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "type_sizes_layouts.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// fileData holds all data needed for the layouts template.
type fileData struct {
	PackageName string
	Source      string
	NeedsUnsafe bool
	Decls       []declData
}

// Generate renders every declaration of p into one file named after the
// report it came from.
func (g *Generator) Generate(source string, p *plan.Plan) (*GeneratedFile, error) {
	data := &fileData{
		PackageName: g.config.PackageName,
		Source:      source,
	}

	names := typeNames(p)
	seen := make(map[string]bool, len(p.Decls))

	for _, d := range p.Decls {
		// Duplicate names in one report keep the first declaration.
		if seen[d.DeclName()] {
			continue
		}

		seen[d.DeclName()] = true

		switch d := d.(type) {
		case plan.TagDecl:
			data.Decls = append(data.Decls, g.tagDecl(d, p, names))
		case plan.StructDecl:
			if d.Union {
				decl := g.unionDecl(d, names)
				data.NeedsUnsafe = data.NeedsUnsafe || len(decl.Accessors) > 0
				data.Decls = append(data.Decls, decl)

				continue
			}

			data.Decls = append(data.Decls, g.structDecl(d, names))
		default:
			return nil, fmt.Errorf("unexpected declaration type %T", d)
		}
	}

	filename := FileName(source)

	var buf bytes.Buffer
	if err := layoutsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

var layoutsTemplate = template.Must(template.New("layouts").Parse(`// Code generated by layout-importer. DO NOT EDIT.
// Source: {{.Source}}

package {{.PackageName}}
{{if .NeedsUnsafe}}
import "unsafe"
{{end}}
{{- range $d := .Decls}}

// {{$d.Name}} is the layout of ` + "`{{$d.Original}}`" + ` ({{$d.Summary}}).
{{if $d.Underlying -}}
type {{$d.Name}} {{$d.Underlying}}
{{else -}}
type {{$d.Name}} struct {
{{- range $d.Fields}}
{{- if .Type}}
	{{.Name}} {{.Type}}{{with .Comment}} // {{.}}{{end}}
{{- else}}
	// {{.Name}}: zero-sized{{with .Comment}}, {{.}}{{end}}
{{- end}}
{{- end}}
}
{{end}}
{{- range $d.Accessors}}
// {{.Method}} views the storage as the ` + "`{{.Original}}`" + ` variant.
func (v *{{$d.Name}}) {{.Method}}() *{{.Type}} {
	return (*{{.Type}})(unsafe.Pointer(v))
}
{{end}}
{{- end}}
`))
