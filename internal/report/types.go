package report

// Member is one member line of a type block. It is implemented only by
// FieldMember, PaddingMember, DiscriminantMember and VariantMember.
type Member interface {
	member()
}

// VariantItem is a member allowed inside a variant block: a FieldMember or
// a PaddingMember.
type VariantItem interface {
	Member
	variantItem()
}

// FieldMember is one named leaf field.
type FieldMember struct {
	Name string
	Size uint64
	// Alignment is nil unless the report states it for this field.
	Alignment *uint64
}

// PaddingMember is an anonymous byte run. Interior and trailing
// ("end padding") runs both produce it.
type PaddingMember struct {
	Size uint64
}

// DiscriminantMember declares the tag width of a sum type.
type DiscriminantMember struct {
	Size uint64
}

// VariantMember is one arm of a sum type. Members are in layout order.
type VariantMember struct {
	Name    string
	Size    uint64
	Members []VariantItem
}

func (FieldMember) member()        {}
func (PaddingMember) member()      {}
func (DiscriminantMember) member() {}
func (VariantMember) member()      {}

func (FieldMember) variantItem()   {}
func (PaddingMember) variantItem() {}

// TypeRecord is one fully parsed top-level type. Members are in report
// order, which is increasing offset order.
type TypeRecord struct {
	Name      string
	Size      uint64
	Alignment uint64
	Members   []Member
}

// IsSum returns true if the record has at least one variant.
func (r TypeRecord) IsSum() bool {
	for _, m := range r.Members {
		if _, ok := m.(VariantMember); ok {
			return true
		}
	}

	return false
}

// Discriminant returns the record's discriminant, if it has one.
func (r TypeRecord) Discriminant() (DiscriminantMember, bool) {
	for _, m := range r.Members {
		if d, ok := m.(DiscriminantMember); ok {
			return d, true
		}
	}

	return DiscriminantMember{}, false
}

// Variants returns the record's variants in report order.
func (r TypeRecord) Variants() []VariantMember {
	var variants []VariantMember

	for _, m := range r.Members {
		if v, ok := m.(VariantMember); ok {
			variants = append(variants, v)
		}
	}

	return variants
}
