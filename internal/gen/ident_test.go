package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []string
	}{
		{"Result<u16, ParseIntError>", []string{"Result", "u16", "Parse", "Int", "Error"}},
		{"Option<&u8>::Some", []string{"Option", "u8", "Some"}},
		{"HTTPHeader", []string{"HTTP", "Header"}},
		{"orderID", []string{"order", "ID"}},
		{".0", []string{"0"}},
		{"_padding", []string{"padding"}},
		{"", nil},
		{"::<>", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tokenize(tt.input))
		})
	}
}

func TestExportedName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		prefix   string
		expected string
	}{
		{"Result<u16, ParseIntError>::Ok", "T", "ResultU16ParseIntErrorOk"},
		{"Option<&u8>", "T", "OptionU8"},
		{"[closure@src/main.rs:3:5]", "T", "ClosureSrcMainRs35"},
		{".0", "F", "F0"},
		{".len", "F", "Len"},
		{"discriminant", "F", "Discriminant"},
		{"__", "T", "T"},
		{"日本", "T", "T日本"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, exportedName(tt.input, tt.prefix))
		})
	}
}

func TestNamerUnique(t *testing.T) {
	t.Parallel()

	n := newNamer("Reserved")

	assert.Equal(t, "A", n.unique("A"))
	assert.Equal(t, "A2", n.unique("A"))
	assert.Equal(t, "A3", n.unique("A"))
	assert.Equal(t, "Reserved2", n.unique("Reserved"))

	assert.Equal(t, "B2", n.unique("B2"))
	assert.Equal(t, "B", n.unique("B"))
	assert.Equal(t, "B3", n.unique("B"))
}

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "type_sizes_layouts.go", FileName("reports/type-sizes.txt"))
	assert.Equal(t, "sample_layouts.go", FileName("sample.txt"))
	assert.Equal(t, "layouts.go", FileName(""))
}
