package gen

import (
	"fmt"

	"type-layout-importer/internal/plan"
	"type-layout-importer/primitive"
)

// defaultAlignCap bounds integer fields of declarations without a reported
// alignment.
const defaultAlignCap = 8

// declData is one rendered declaration.
type declData struct {
	Name     string
	Original string
	Summary  string
	// Underlying is set for tag and union declarations; struct declarations
	// use Fields.
	Underlying string
	Fields     []fieldData
	Accessors  []accessorData
}

// fieldData is one struct field. Fields without a Type are zero-sized and
// rendered as comments only.
type fieldData struct {
	Name    string
	Type    string
	Comment string
}

// accessorData is one typed view of a union's storage.
type accessorData struct {
	Method   string
	Type     string
	Original string
}

// typeNames maps every declaration of a plan to a unique exported Go name.
func typeNames(p *plan.Plan) map[string]string {
	names := make(map[string]string, len(p.Decls))
	n := newNamer()

	for _, d := range p.Decls {
		if _, done := names[d.DeclName()]; done {
			continue
		}

		names[d.DeclName()] = n.unique(exportedName(d.DeclName(), "T"))
	}

	return names
}

// alignCap is the widest integer a declaration may hold.
func alignCap(alignment uint64) uint64 {
	if alignment == 0 {
		return defaultAlignCap
	}

	return alignment
}

// fitsInteger reports whether an n-byte integer at offset off of a
// declaration keeps Go's layout identical to the reported one. The
// declaration starts at base within its record and is width bytes wide.
func fitsInteger(n, base, off, width, maxAlign uint64) bool {
	return n <= maxAlign &&
		base%n == 0 &&
		(base+off)%n == 0 &&
		width%n == 0
}

// fieldType picks the Go type for a placeholder of the given width.
func fieldType(repr primitive.Repr, base, off, width, maxAlign uint64) string {
	switch {
	case repr.Kind == primitive.KindUint128 && fitsInteger(8, base, off, width, maxAlign):
		return "[2]uint64"
	case repr.Kind.IsInteger() && repr.Kind != primitive.KindUint128 &&
		fitsInteger(repr.Width, base, off, width, maxAlign):
		return fmt.Sprintf("uint%d", repr.Kind.Bits())
	default:
		return byteArray(repr.Width)
	}
}

func byteArray(width uint64) string {
	return fmt.Sprintf("[%d]byte", width)
}

// alignField returns the zero-sized field type that raises a struct's Go
// alignment to the reported one, or "" when none is needed.
func alignField(alignment uint64) string {
	switch {
	case alignment >= 8:
		return "[0]uint64"
	case alignment >= 4:
		return "[0]uint32"
	case alignment >= 2:
		return "[0]uint16"
	default:
		return ""
	}
}

func sizeSummary(size uint64, alignment uint64) string {
	if alignment == 0 {
		return fmt.Sprintf("%d bytes", size)
	}

	return fmt.Sprintf("%d bytes, alignment %d", size, alignment)
}

func (g *Generator) tagDecl(d plan.TagDecl, p *plan.Plan, names map[string]string) declData {
	maxAlign := uint64(defaultAlignCap)
	if owner, ok := p.Lookup(d.Source); ok {
		if s, ok := owner.(plan.StructDecl); ok {
			maxAlign = alignCap(s.Alignment)
		}
	}

	underlying := byteArray(d.Repr.Width)
	if d.Repr.Kind.IsInteger() && d.Repr.Kind != primitive.KindUint128 && d.Repr.Width <= maxAlign {
		underlying = fmt.Sprintf("uint%d", d.Repr.Kind.Bits())
	}

	return declData{
		Name:       names[d.Name],
		Original:   d.Name,
		Summary:    fmt.Sprintf("%d bytes", d.Repr.Width),
		Underlying: underlying,
	}
}

func (g *Generator) unionDecl(d plan.StructDecl, names map[string]string) declData {
	out := declData{
		Name:       names[d.Name],
		Original:   d.Name,
		Summary:    fmt.Sprintf("%d bytes at offset %d", d.Width(), d.Base),
		Underlying: byteArray(d.Width()),
	}

	methods := newNamer()
	for _, f := range d.Fields {
		out.Accessors = append(out.Accessors, accessorData{
			Method:   methods.unique(exportedName(f.Name, "V")),
			Type:     names[f.Ref],
			Original: f.Name,
		})
	}

	return out
}

func (g *Generator) structDecl(d plan.StructDecl, names map[string]string) declData {
	width := d.Width()
	maxAlign := alignCap(d.Alignment)
	topLevel := d.Name == d.Source

	summary := sizeSummary(d.Size, d.Alignment)
	if !topLevel {
		summary = fmt.Sprintf("%d bytes at offset %d", d.Size, d.Base)
	}

	out := declData{
		Name:     names[d.Name],
		Original: d.Name,
		Summary:  summary,
	}

	if topLevel && width > 0 {
		if t := alignField(d.Alignment); t != "" {
			out.Fields = append(out.Fields, fieldData{Name: "_", Type: t})
		}
	}

	fields := newNamer()

	var off uint64
	for _, f := range d.Fields {
		fd := fieldData{Name: "_"}
		if !f.Padding {
			fd.Name = fields.unique(exportedName(f.Name, "F"))
		}

		switch {
		case f.Repr.IsVoid():
			fd.Comment = fmt.Sprintf("`%s` at offset %d", f.Name, d.Base+off)
		case f.Ref != "":
			fd.Type = names[f.Ref]
		case f.Padding:
			fd.Type = byteArray(f.Repr.Width)
		default:
			fd.Type = fieldType(f.Repr, d.Base, off, width, maxAlign)
		}

		if fd.Type != "" && g.config.GenerateComments {
			fd.Comment = fmt.Sprintf("offset %d, %d bytes", d.Base+off, f.Repr.Width)
		}

		out.Fields = append(out.Fields, fd)
		off += f.Repr.Width
	}

	return out
}
