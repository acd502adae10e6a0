package plan

import (
	"type-layout-importer/internal/common"
	"type-layout-importer/internal/synth"
	"type-layout-importer/primitive"
)

// Member names every materializer uses.
const (
	PaddingName      = "_padding"
	DiscriminantName = "discriminant"
	VariantsName     = "variants"
)

// Decl is one named host declaration. It is implemented only by TagDecl and
// StructDecl.
type Decl interface {
	DeclName() string
	Width() uint64
	decl()
}

// TagDecl is an enumeration-like tag type of the given width.
type TagDecl struct {
	Name   string
	Source string
	Repr   primitive.Repr
}

// StructDecl is a composite type. With Union set, all fields start at
// offset 0; otherwise they are laid out back to back.
type StructDecl struct {
	Name string
	// Source is the reported name of the type this declaration belongs to.
	Source string
	// Size is the reported size; Alignment is 0 when not reported.
	Size      uint64
	Alignment uint64
	// Base is the offset of this declaration within the enclosing reported
	// type: the discriminant width for variants, 0 otherwise.
	Base   uint64
	Union  bool
	Fields []Field
}

// Field is one member of a StructDecl.
type Field struct {
	Name string
	// Ref names another declaration of the plan; empty for placeholder fields.
	Ref string
	// Repr is the placeholder representation. For Ref fields it describes
	// the referenced declaration's width.
	Repr    primitive.Repr
	Padding bool
}

func (t TagDecl) DeclName() string    { return t.Name }
func (s StructDecl) DeclName() string { return s.Name }

func (t TagDecl) Width() uint64 { return t.Repr.Width }

// Width returns the widest field for unions and the sum of the fields
// otherwise.
func (s StructDecl) Width() uint64 {
	width := func(f Field) uint64 { return f.Repr.Width }
	if s.Union {
		return common.MaxBy(s.Fields, width)
	}

	return common.SumBy(s.Fields, width)
}

func (TagDecl) decl()    {}
func (StructDecl) decl() {}

// fieldOf converts one synthesized slot to a field.
func fieldOf(slot synth.Slot) Field {
	switch s := slot.(type) {
	case synth.PrimitiveField:
		return Field{Name: s.Name, Repr: s.Repr}
	case synth.OpaquePadding:
		return Field{Name: PaddingName, Repr: s.Repr, Padding: true}
	default:
		panic("unexpected slot type")
	}
}
