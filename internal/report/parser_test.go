package report

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func align(v uint64) *uint64 {
	return &v
}

func TestParseProductType(t *testing.T) {
	t.Parallel()

	input := "print-type-size type: `Pair`: 8 bytes, alignment: 4 bytes\n" +
		"print-type-size     field `.a`: 4 bytes\n" +
		"print-type-size     field `.b`: 4 bytes\n"

	records, err := ParseString(input)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, TypeRecord{
		Name:      "Pair",
		Size:      8,
		Alignment: 4,
		Members: []Member{
			FieldMember{Name: ".a", Size: 4},
			FieldMember{Name: ".b", Size: 4},
		},
	}, records[0])
	assert.False(t, records[0].IsSum())
}

func TestParseSumType(t *testing.T) {
	t.Parallel()

	input := `print-type-size type: ` + "`Result`" + `: 4 bytes, alignment: 2 bytes
print-type-size     discriminant: 1 bytes
print-type-size     variant ` + "`Ok`" + `: 3 bytes
print-type-size         padding: 1 bytes
print-type-size         field ` + "`.0`" + `: 2 bytes, alignment: 2 bytes
print-type-size     variant ` + "`Err`" + `: 1 bytes
print-type-size         field ` + "`.0`" + `: 1 bytes
`

	records, err := ParseString(input)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.True(t, rec.IsSum())
	assert.Equal(t, []Member{
		DiscriminantMember{Size: 1},
		VariantMember{Name: "Ok", Size: 3, Members: []VariantItem{
			PaddingMember{Size: 1},
			FieldMember{Name: ".0", Size: 2, Alignment: align(2)},
		}},
		VariantMember{Name: "Err", Size: 1, Members: []VariantItem{
			FieldMember{Name: ".0", Size: 1},
		}},
	}, rec.Members)

	disc, ok := rec.Discriminant()
	require.True(t, ok)
	assert.Equal(t, uint64(1), disc.Size)
	assert.Len(t, rec.Variants(), 2)
}

func TestParseGenericName(t *testing.T) {
	t.Parallel()

	name := "std::result::Result<u16, std::num::ParseIntError>"
	records, err := ParseString("print-type-size type: `" + name + "`: 4 bytes, alignment: 2 bytes")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, name, records[0].Name)
	assert.Empty(t, records[0].Members)
}

func TestParseSampleFile(t *testing.T) {
	t.Parallel()

	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()

	records, err := Parse(f)
	require.NoError(t, err)
	require.Len(t, records, 5, spew.Sdump(records))

	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}

	assert.Equal(t, []string{
		"miniz_oxide::inflate::core::DecompressorOxide",
		"std::result::Result<u16, std::num::ParseIntError>",
		"std::option::Option<&u8>",
		"std::mem::MaybeUninit<u64>",
		"std::num::ParseIntError",
	}, names)

	oxide := records[0]
	assert.Len(t, oxide.Members, 17)
	assert.Equal(t, PaddingMember{Size: 6}, oxide.Members[16])

	var total uint64
	for _, m := range oxide.Members {
		switch m := m.(type) {
		case FieldMember:
			total += m.Size
		case PaddingMember:
			total += m.Size
		default:
			t.Fatalf("unexpected member %T", m)
		}
	}

	assert.Equal(t, oxide.Size, total)

	option := records[2]
	_, hasDisc := option.Discriminant()
	assert.False(t, hasDisc)
	assert.Len(t, option.Variants(), 2)
	assert.Empty(t, option.Variants()[1].Members)
}

func TestParseMemberCountMatchesLines(t *testing.T) {
	t.Parallel()

	lines := []string{
		"print-type-size     field `.a`: 1 bytes",
		"print-type-size     padding: 3 bytes",
		"print-type-size     field `.b`: 4 bytes, alignment: 4 bytes",
		"print-type-size     end padding: 2 bytes",
	}

	for n := 0; n <= 12; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			t.Parallel()

			var sb strings.Builder
			sb.WriteString("print-type-size type: `T`: 64 bytes, alignment: 8 bytes\n")

			for i := range n {
				sb.WriteString(lines[i%len(lines)])
				sb.WriteByte('\n')
			}

			records, err := ParseString(sb.String())
			require.NoError(t, err)
			require.Len(t, records, 1)
			require.Len(t, records[0].Members, n)

			for i, m := range records[0].Members {
				l, err := MatchLine(lines[i%len(lines)])
				require.NoError(t, err)

				switch m := m.(type) {
				case FieldMember:
					assert.Equal(t, LineField, l.Kind)
					assert.Equal(t, l.Name, m.Name)
					assert.Equal(t, l.Size, m.Size)
				case PaddingMember:
					assert.Contains(t, []LineKind{LinePadding, LineEndPadding}, l.Kind)
					assert.Equal(t, l.Size, m.Size)
				default:
					t.Fatalf("unexpected member %T", m)
				}
			}
		})
	}
}

func TestParseVariantScope(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"print-type-size type: `E`: 8 bytes, alignment: 4 bytes",
		"print-type-size     discriminant: 4 bytes",
		"print-type-size     variant `A`: 4 bytes",
		"print-type-size         field `.0`: 4 bytes",
		"print-type-size     variant `B`: 0 bytes",
		"print-type-size     end padding: 4 bytes",
		"print-type-size type: `F`: 1 bytes, alignment: 1 bytes",
		"print-type-size     field `.x`: 1 bytes",
	}, "\n")

	records, err := ParseString(input)
	require.NoError(t, err)
	require.Len(t, records, 2)

	variants := records[0].Variants()
	require.Len(t, variants, 2)
	assert.Equal(t, []VariantItem{FieldMember{Name: ".0", Size: 4}}, variants[0].Members)
	assert.Equal(t, []VariantItem{PaddingMember{Size: 4}}, variants[1].Members)

	// The type header closes the variant; F's field belongs to F.
	assert.Equal(t, []Member{FieldMember{Name: ".x", Size: 1}}, records[1].Members)
}

func TestParseWhitespaceAndLineEndings(t *testing.T) {
	t.Parallel()

	input := "\r\n\n  print-type-size   type:   `Weird Name<A , B>` :  2   bytes ,  alignment:  1 bytes\r\n" +
		"\t\tprint-type-size field `.0`:1 bytes\r\n" +
		"   \n" +
		"print-type-size end   padding: 1 bytes"

	records, err := ParseString(input)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Weird Name<A , B>", records[0].Name)
	assert.Equal(t, []Member{
		FieldMember{Name: ".0", Size: 1},
		PaddingMember{Size: 1},
	}, records[0].Members)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	records, err := ParseString("")
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = ParseString("\n  \n")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	header := "print-type-size type: `T`: 4 bytes, alignment: 4 bytes\n"

	tests := []struct {
		name     string
		input    string
		line     int
		column   int
		expected []string
	}{
		{
			name:     "missing bytes keyword on trailing line",
			input:    header + "print-type-size     field `.a`: 4",
			line:     2,
			column:   34,
			expected: []string{"bytes"},
		},
		{
			name:     "unrecognized trailing text",
			input:    header + "print-type-size     field `.a`: 4 bytes\nhello",
			line:     3,
			column:   1,
			expected: []string{"print-type-size"},
		},
		{
			name:     "member before any type",
			input:    "print-type-size     field `.a`: 4 bytes\n",
			line:     1,
			column:   21,
			expected: []string{"type:"},
		},
		{
			name:   "discriminant inside variant",
			input:  header + "print-type-size variant `A`: 4 bytes\nprint-type-size discriminant: 1 bytes",
			line:   3,
			column: 17,
			expected: []string{
				"type:", "field", "padding:", "end padding:", "variant",
			},
		},
		{
			name:   "second discriminant",
			input:  header + "print-type-size discriminant: 1 bytes\nprint-type-size discriminant: 1 bytes",
			line:   3,
			column: 17,
			expected: []string{
				"type:", "field", "padding:", "end padding:", "variant",
			},
		},
		{
			name:     "trailing text after field",
			input:    header + "print-type-size field `.a`: 4 bytes extra",
			line:     2,
			column:   37,
			expected: []string{",", "end of line"},
		},
		{
			name:     "header without alignment",
			input:    "print-type-size type: `T`: 4 bytes",
			line:     1,
			column:   35,
			expected: []string{","},
		},
		{
			name:     "empty name",
			input:    "print-type-size type: ``: 4 bytes, alignment: 4 bytes",
			line:     1,
			column:   23,
			expected: []string{"`<name>`"},
		},
		{
			name:     "unterminated name",
			input:    "print-type-size type: `T: 4 bytes, alignment: 4 bytes",
			line:     1,
			column:   23,
			expected: []string{"`<name>`"},
		},
		{
			name:     "size overflows",
			input:    header + "print-type-size padding: 18446744073709551616 bytes",
			line:     2,
			column:   26,
			expected: []string{"<size>"},
		},
		{
			name:     "glued keyword",
			input:    header + "print-type-size padding: 4bytes",
			line:     2,
			column:   27,
			expected: []string{"bytes"},
		},
		{
			name:     "negative size",
			input:    header + "print-type-size padding: -1 bytes",
			line:     2,
			column:   26,
			expected: []string{"<size>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records, err := ParseString(tt.input)
			require.Error(t, err)
			assert.Nil(t, records)

			var gerr *GrammarError
			require.True(t, errors.As(err, &gerr), "got %T: %v", err, err)
			assert.Equal(t, tt.line, gerr.Line, err.Error())
			assert.Equal(t, tt.column, gerr.Column, err.Error())
			assert.Equal(t, tt.expected, gerr.Expected, err.Error())
		})
	}
}

func TestGrammarErrorOffset(t *testing.T) {
	t.Parallel()

	header := "print-type-size type: `T`: 4 bytes, alignment: 4 bytes\r\n"
	_, err := ParseString(header + "print-type-size bogus")

	var gerr *GrammarError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, 2, gerr.Line)
	assert.Equal(t, 17, gerr.Column)
	assert.Equal(t, len(header)+16, gerr.Offset)
	assert.Equal(t, "print-type-size bogus", gerr.Text)
	assert.Equal(t, `"bogus"`, gerr.Found())
	assert.Contains(t, err.Error(), "line 2, column 17")
	assert.Contains(t, err.Error(), `expected one of "type:", "field"`)
}

func TestMatchLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Line
	}{
		{
			"print-type-size type: `a::B<C, D>`: 16 bytes, alignment: 8 bytes",
			Line{Kind: LineTypeHeader, Name: "a::B<C, D>", Size: 16, Alignment: 8, HasAlignment: true},
		},
		{
			"print-type-size     field `.x`: 2 bytes",
			Line{Kind: LineField, Name: ".x", Size: 2},
		},
		{
			"print-type-size     field `.x`: 2 bytes, alignment: 2 bytes",
			Line{Kind: LineField, Name: ".x", Size: 2, Alignment: 2, HasAlignment: true},
		},
		{
			"print-type-size     padding: 7 bytes",
			Line{Kind: LinePadding, Size: 7},
		},
		{
			"print-type-size     end padding: 0 bytes",
			Line{Kind: LineEndPadding, Size: 0},
		},
		{
			"print-type-size     discriminant: 4 bytes",
			Line{Kind: LineDiscriminant, Size: 4},
		},
		{
			"print-type-size     variant `Some`: 40 bytes",
			Line{Kind: LineVariantHeader, Name: "Some", Size: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.want.Kind.String(), func(t *testing.T) {
			t.Parallel()

			got, err := MatchLine(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIsDeterministicAcrossGoroutines(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	want, err := ParseString(string(data))
	require.NoError(t, err)

	var wg sync.WaitGroup

	results := make([][]TypeRecord, 16)
	errs := make([]error, len(results))

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i], errs[i] = ParseString(string(data))
		}()
	}

	wg.Wait()

	for i, got := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want, got)
	}
}
