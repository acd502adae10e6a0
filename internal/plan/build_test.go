package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-layout-importer/internal/report"
	"type-layout-importer/internal/synth"
	"type-layout-importer/primitive"
)

func layoutsOf(t *testing.T, input string) []synth.CompositeLayout {
	t.Helper()

	records, err := report.ParseString(input)
	require.NoError(t, err)

	var layouts []synth.CompositeLayout
	for _, res := range synth.SynthesizeAll(records) {
		layouts = append(layouts, res.Layout)
	}

	return layouts
}

func declNames(p *Plan) []string {
	names := make([]string, len(p.Decls))
	for i, d := range p.Decls {
		names[i] = d.DeclName()
	}

	return names
}

func TestBuildProduct(t *testing.T) {
	t.Parallel()

	p := Build(layoutsOf(t, "print-type-size type: `Header`: 8 bytes, alignment: 4 bytes\n"+
		"print-type-size     field `.kind`: 1 bytes\n"+
		"print-type-size     padding: 3 bytes\n"+
		"print-type-size     field `.len`: 4 bytes\n"))

	require.Equal(t, []string{"Header"}, declNames(p))

	d, ok := p.Lookup("Header")
	require.True(t, ok)

	s := d.(StructDecl)
	assert.False(t, s.Union)
	assert.Equal(t, uint64(8), s.Width())
	assert.Equal(t, []Field{
		{Name: ".kind", Repr: primitive.FromWidth(1)},
		{Name: PaddingName, Repr: primitive.FromWidth(3), Padding: true},
		{Name: ".len", Repr: primitive.FromWidth(4)},
	}, s.Fields)
}

func TestBuildSum(t *testing.T) {
	t.Parallel()

	p := Build(layoutsOf(t, "print-type-size type: `Result`: 4 bytes, alignment: 2 bytes\n"+
		"print-type-size     discriminant: 1 bytes\n"+
		"print-type-size     variant `Ok`: 3 bytes\n"+
		"print-type-size         padding: 1 bytes\n"+
		"print-type-size         field `.0`: 2 bytes\n"+
		"print-type-size     variant `Err`: 1 bytes\n"+
		"print-type-size         field `.0`: 1 bytes\n"))

	assert.Equal(t, []string{
		"Result::discriminant",
		"Result::Ok",
		"Result::Err",
		"Result::variants",
		"Result",
	}, declNames(p))

	tag, ok := p.Lookup("Result::discriminant")
	require.True(t, ok)
	assert.Equal(t, uint64(1), tag.Width())

	ok1, _ := p.Lookup("Result::Ok")
	assert.Equal(t, uint64(1), ok1.(StructDecl).Base)
	assert.Equal(t, uint64(3), ok1.Width())

	union, _ := p.Lookup("Result::variants")
	u := union.(StructDecl)
	assert.True(t, u.Union)
	assert.Equal(t, uint64(3), u.Width())
	assert.Equal(t, uint64(3), u.Size)
	assert.Equal(t, []Field{
		{Name: "Ok", Ref: "Result::Ok", Repr: primitive.FromWidth(3)},
		{Name: "Err", Ref: "Result::Err", Repr: primitive.FromWidth(1)},
	}, u.Fields)

	outer, _ := p.Lookup("Result")
	o := outer.(StructDecl)
	assert.Equal(t, []Field{
		{Name: DiscriminantName, Ref: "Result::discriminant", Repr: primitive.FromWidth(1)},
		{Name: VariantsName, Ref: "Result::variants", Repr: primitive.FromWidth(3)},
	}, o.Fields)
	assert.Equal(t, uint64(4), o.Width())
}

func TestBuildSumWithoutDiscriminant(t *testing.T) {
	t.Parallel()

	p := Build(layoutsOf(t, "print-type-size type: `Option<&u8>`: 8 bytes, alignment: 8 bytes\n"+
		"print-type-size     variant `Some`: 8 bytes\n"+
		"print-type-size         field `.0`: 8 bytes\n"+
		"print-type-size     variant `None`: 0 bytes\n"))

	assert.Equal(t, []string{
		"Option<&u8>::Some",
		"Option<&u8>::None",
		"Option<&u8>::variants",
		"Option<&u8>",
	}, declNames(p))

	outer, _ := p.Lookup("Option<&u8>")
	o := outer.(StructDecl)
	require.Len(t, o.Fields, 1)
	assert.Equal(t, VariantsName, o.Fields[0].Name)
	assert.Equal(t, uint64(8), o.Width())
}

func TestLookupMissing(t *testing.T) {
	t.Parallel()

	_, ok := New().Lookup("nope")
	assert.False(t, ok)
}
