package synth

import (
	"type-layout-importer/internal/common"
	"type-layout-importer/internal/report"
	"type-layout-importer/primitive"
)

// Slot is one member of a ProductLayout. It is implemented only by
// PrimitiveField and OpaquePadding.
type Slot interface {
	Width() uint64
	slot()
}

// PrimitiveField is a named field with a placeholder representation.
type PrimitiveField struct {
	Name string
	Repr primitive.Repr
	// Alignment is nil unless the report stated it.
	Alignment *uint64
}

// OpaquePadding is an anonymous run of unused bytes.
type OpaquePadding struct {
	Repr primitive.Repr
}

func (f PrimitiveField) Width() uint64 { return f.Repr.Width }
func (p OpaquePadding) Width() uint64  { return p.Repr.Width }

func (PrimitiveField) slot() {}
func (OpaquePadding) slot()  {}

// CompositeLayout is a ProductLayout or a SumLayout.
type CompositeLayout interface {
	// LayoutName is the type name as reported.
	LayoutName() string
	// ReportedSize is the size the compiler reported.
	ReportedSize() uint64
	// Width is the synthesized size.
	Width() uint64
	composite()
}

// ProductLayout is a structure: slots laid out back to back in offset order.
type ProductLayout struct {
	Name string
	Size uint64
	// Alignment is 0 for variant layouts, which have no reported alignment.
	Alignment uint64
	Members   []Slot
}

func (p ProductLayout) LayoutName() string   { return p.Name }
func (p ProductLayout) ReportedSize() uint64 { return p.Size }

// Width returns the sum of the slot widths.
func (p ProductLayout) Width() uint64 {
	return common.SumBy(p.Members, Slot.Width)
}

// SumLayout is a tagged union: an optional discriminant followed by a union
// of the variants, all starting at the same offset.
type SumLayout struct {
	Name         string
	Size         uint64
	Alignment    uint64
	Discriminant *report.DiscriminantMember
	// Variants are named by the variant name alone, e.g. "Ok".
	Variants []ProductLayout
}

func (s SumLayout) LayoutName() string   { return s.Name }
func (s SumLayout) ReportedSize() uint64 { return s.Size }

// UnionWidth returns the width of the widest variant.
func (s SumLayout) UnionWidth() uint64 {
	return common.MaxBy(s.Variants, ProductLayout.Width)
}

// DiscriminantWidth returns the tag width, or 0 without a discriminant.
func (s SumLayout) DiscriminantWidth() uint64 {
	if s.Discriminant == nil {
		return 0
	}

	return s.Discriminant.Size
}

// Width returns the discriminant width plus the union width.
func (s SumLayout) Width() uint64 {
	return s.DiscriminantWidth() + s.UnionWidth()
}

func (ProductLayout) composite() {}
func (SumLayout) composite()     {}
