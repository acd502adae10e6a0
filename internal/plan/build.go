package plan

import (
	"fmt"

	"type-layout-importer/internal/synth"
	"type-layout-importer/primitive"
)

// Plan is an ordered list of declarations.
type Plan struct {
	Decls  []Decl
	byName map[string]int
}

// New creates an empty Plan.
func New() *Plan {
	return &Plan{byName: make(map[string]int)}
}

// Build plans every layout, keeping their order.
func Build(layouts []synth.CompositeLayout) *Plan {
	p := New()
	for _, l := range layouts {
		p.Add(l)
	}

	return p
}

// Lookup returns the first declaration with the given name.
func (p *Plan) Lookup(name string) (Decl, bool) {
	i, ok := p.byName[name]
	if !ok {
		return nil, false
	}

	return p.Decls[i], true
}

// Add appends the declarations for one layout.
func (p *Plan) Add(layout synth.CompositeLayout) {
	switch l := layout.(type) {
	case synth.ProductLayout:
		p.push(productDecl(l.Name, l, 0))
	case synth.SumLayout:
		p.addSum(l)
	default:
		panic(fmt.Sprintf("unexpected layout type %T", layout))
	}
}

func (p *Plan) push(d Decl) {
	if _, dup := p.byName[d.DeclName()]; !dup {
		p.byName[d.DeclName()] = len(p.Decls)
	}

	p.Decls = append(p.Decls, d)
}

func (p *Plan) addSum(l synth.SumLayout) {
	outer := StructDecl{
		Name:      l.Name,
		Source:    l.Name,
		Size:      l.Size,
		Alignment: l.Alignment,
	}

	if l.Discriminant != nil {
		tag := TagDecl{
			Name:   TagName(l.Name),
			Source: l.Name,
			Repr:   primitive.FromWidth(l.Discriminant.Size),
		}
		p.push(tag)
		outer.Fields = append(outer.Fields, Field{Name: DiscriminantName, Ref: tag.Name, Repr: tag.Repr})
	}

	union := StructDecl{
		Name:      UnionName(l.Name),
		Source:    l.Name,
		Size:      l.Size - min(l.Size, l.DiscriminantWidth()),
		Alignment: l.Alignment,
		Base:      l.DiscriminantWidth(),
		Union:     true,
	}

	for _, v := range l.Variants {
		vd := productDecl(VariantName(l.Name, v.Name), v, l.DiscriminantWidth())
		vd.Source = l.Name
		vd.Alignment = l.Alignment
		p.push(vd)

		union.Fields = append(union.Fields, Field{
			Name: v.Name,
			Ref:  vd.Name,
			Repr: primitive.FromWidth(vd.Width()),
		})
	}

	p.push(union)

	outer.Fields = append(outer.Fields, Field{
		Name: VariantsName,
		Ref:  union.Name,
		Repr: primitive.FromWidth(union.Width()),
	})
	p.push(outer)
}

func productDecl(name string, l synth.ProductLayout, base uint64) StructDecl {
	d := StructDecl{
		Name:      name,
		Source:    name,
		Size:      l.Size,
		Alignment: l.Alignment,
		Base:      base,
	}

	for _, slot := range l.Members {
		d.Fields = append(d.Fields, fieldOf(slot))
	}

	return d
}

// TagName is the name of the tag type of a sum type.
func TagName(typeName string) string {
	return typeName + "::" + DiscriminantName
}

// VariantName is the name of the struct for one variant of a sum type.
func VariantName(typeName, variant string) string {
	return typeName + "::" + variant
}

// UnionName is the name of the union of all variants of a sum type.
func UnionName(typeName string) string {
	return typeName + "::" + VariantsName
}
