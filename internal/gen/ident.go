package gen

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// tokenize splits a reported name into identifier tokens. Every rune that is
// neither a letter nor a digit separates tokens, and CamelCase boundaries
// start new ones.
// Examples:
//   - "Result<u16, ParseIntError>" -> ["Result", "u16", "Parse", "Int", "Error"]
//   - "Option<&u8>::Some" -> ["Option", "u8", "Some"]
//   - "HTTPHeader" -> ["HTTP", "Header"]
//   - ".0" -> ["0"]
func tokenize(s string) []string {
	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && current.Len() > 0 && startsToken(runes, i) {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// startsToken reports whether a new token starts at position i.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	// "orderID" -> split before 'I'
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser" -> split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(r) && unicode.IsUpper(prev) && hasNextLower
}

// exportedName turns a reported name into an exported Go identifier.
// prefix is used when the name has no letters to start with.
func exportedName(s, prefix string) string {
	var b strings.Builder

	for _, tok := range tokenize(s) {
		runes := []rune(tok)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	name := b.String()
	if name == "" {
		return prefix
	}

	first := []rune(name)[0]
	if !unicode.IsUpper(first) {
		return prefix + name
	}

	return name
}

// namer hands out unique identifiers within one scope.
type namer struct {
	used map[string]int
}

func newNamer(reserved ...string) *namer {
	n := &namer{used: make(map[string]int)}
	for _, r := range reserved {
		n.used[r] = 1
	}

	return n
}

// unique returns name, or name with the lowest numeric suffix not yet taken.
func (n *namer) unique(name string) string {
	count, taken := n.used[name]
	if !taken {
		n.used[name] = 1

		return name
	}

	for {
		count++

		candidate := name + strconv.Itoa(count)
		if _, dup := n.used[candidate]; !dup {
			n.used[name] = count
			n.used[candidate] = 1

			return candidate
		}
	}
}

// FileName returns the generated file name for a report path:
// "reports/type-sizes.txt" -> "type_sizes_layouts.go".
func FileName(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	tokens := tokenize(base)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	if len(tokens) == 0 {
		return "layouts.go"
	}

	return strings.Join(tokens, "_") + "_layouts.go"
}
