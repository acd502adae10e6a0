package synth

import (
	"fmt"

	"type-layout-importer/internal/common"
	"type-layout-importer/internal/diagnostic"
	"type-layout-importer/internal/report"
	"type-layout-importer/primitive"
)

// Result is the outcome of synthesizing one record.
type Result struct {
	Layout CompositeLayout
	// Mismatches holds one entry per composite (the record or one of its
	// variants) whose synthesized width disagrees with the reported size.
	Mismatches []*LayoutSizeMismatch
	// Diagnostics carries the mismatches as warnings plus policy notes.
	Diagnostics diagnostic.Diagnostics
}

// Synthesize derives the layout of one record. It never fails for a parsed
// record; disagreements are reported in the Result.
func Synthesize(rec report.TypeRecord) Result {
	var res Result

	if rec.IsSum() {
		res.Layout = synthesizeSum(rec, &res)
	} else {
		res.Layout = synthesizeProduct(rec, &res)
	}

	return res
}

// SynthesizeAll synthesizes every record, keeping their order.
func SynthesizeAll(records []report.TypeRecord) []Result {
	results := make([]Result, len(records))
	for i, rec := range records {
		results[i] = Synthesize(rec)
	}

	return results
}

func synthesizeProduct(rec report.TypeRecord, res *Result) ProductLayout {
	layout := ProductLayout{
		Name:      rec.Name,
		Size:      rec.Size,
		Alignment: rec.Alignment,
	}

	for _, m := range rec.Members {
		switch m := m.(type) {
		case report.FieldMember:
			layout.Members = append(layout.Members, fieldSlot(m))
		case report.PaddingMember:
			layout.Members = append(layout.Members, paddingSlot(m))
		case report.DiscriminantMember:
			// A tag without variants still occupies its bytes.
			layout.Members = append(layout.Members, PrimitiveField{
				Name: "discriminant",
				Repr: primitive.FromWidth(m.Size),
			})
			res.Diagnostics.AddInfo(diagnostic.CodeDiscriminantOutside,
				"discriminant reported for a type without variants; kept as a field",
				rec.Name, "discriminant")
		case report.VariantMember:
			panic("variant in a product record: " + rec.Name)
		default:
			panic(fmt.Sprintf("unexpected member type %T", m))
		}
	}

	res.check(rec.Name, "", rec.Size, layout.Width())

	return layout
}

func synthesizeSum(rec report.TypeRecord, res *Result) SumLayout {
	layout := SumLayout{
		Name:      rec.Name,
		Size:      rec.Size,
		Alignment: rec.Alignment,
	}

	for _, m := range rec.Members {
		switch m := m.(type) {
		case report.DiscriminantMember:
			layout.Discriminant = &m
		case report.VariantMember:
			variant := variantLayout(m)
			res.check(rec.Name, m.Name, m.Size, variant.Width())
			layout.Variants = append(layout.Variants, variant)
		case report.FieldMember, report.PaddingMember:
			// Only reachable for hand-built records; the parser puts these
			// inside a variant once the first variant has opened.
			res.Diagnostics.AddWarning(diagnostic.CodeMemberOutsideVariant,
				"field or padding outside any variant is ignored", rec.Name, "")
		default:
			panic(fmt.Sprintf("unexpected member type %T", m))
		}
	}

	switch {
	case layout.Discriminant == nil && common.IsSingle(layout.Variants):
		res.Diagnostics.AddInfo(diagnostic.CodeSingleVariantNoTag,
			"single variant without a discriminant; imported as a one-arm union with no tag",
			rec.Name, layout.Variants[0].Name)
	case common.AllBy(layout.Variants, func(v ProductLayout) bool { return v.Width() == 0 }):
		res.Diagnostics.AddInfo(diagnostic.CodeFieldlessEnum,
			"every variant is empty; the type could be a plain enumeration",
			rec.Name, "")
	}

	res.check(rec.Name, "", rec.Size, layout.Width())

	return layout
}

func variantLayout(v report.VariantMember) ProductLayout {
	layout := ProductLayout{Name: v.Name, Size: v.Size}

	for _, item := range v.Members {
		switch item := item.(type) {
		case report.FieldMember:
			layout.Members = append(layout.Members, fieldSlot(item))
		case report.PaddingMember:
			layout.Members = append(layout.Members, paddingSlot(item))
		default:
			panic(fmt.Sprintf("unexpected variant item type %T", item))
		}
	}

	return layout
}

func fieldSlot(f report.FieldMember) PrimitiveField {
	return PrimitiveField{
		Name:      f.Name,
		Repr:      primitive.FromWidth(f.Size),
		Alignment: f.Alignment,
	}
}

func paddingSlot(p report.PaddingMember) OpaquePadding {
	return OpaquePadding{Repr: primitive.FromWidth(p.Size)}
}

// check records a mismatch if actual differs from expected.
func (r *Result) check(typeName, variant string, expected, actual uint64) {
	if expected == actual {
		return
	}

	m := &LayoutSizeMismatch{
		TypeName: typeName,
		Variant:  variant,
		Expected: expected,
		Actual:   actual,
	}
	r.Mismatches = append(r.Mismatches, m)
	r.Diagnostics.AddWarning(diagnostic.CodeLayoutSizeMismatch, m.Error(), typeName, variant)
}
