package report

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:generate go tool stringer -type=LineKind -output=line_string.go

// LineKind identifies which of the six line shapes a report line has.
type LineKind int

const (
	_ LineKind = iota

	LineTypeHeader
	LineField
	LinePadding
	LineEndPadding
	LineDiscriminant
	LineVariantHeader
)

// Line is one recognized report line. Name is set for type, field and
// variant lines; Alignment is set for type lines and for field lines that
// state it.
type Line struct {
	Kind         LineKind
	Name         string
	Size         uint64
	Alignment    uint64
	HasAlignment bool
}

const (
	lineMarker = "print-type-size"
	endOfLine  = "end of line"
)

// cursor walks one line of text.
type cursor struct {
	text string
	pos  int
}

func (c *cursor) skipSpace() {
	for c.pos < len(c.text) && (c.text[c.pos] == ' ' || c.text[c.pos] == '\t') {
		c.pos++
	}
}

func (c *cursor) atEnd() bool {
	c.skipSpace()
	return c.pos >= len(c.text)
}

func isIdentChar(b byte) bool {
	return b == '_' || b == '$' ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// step recognizes one token. On failure it leaves the cursor where the
// token was expected.
type step struct {
	expect string
	match  func(c *cursor, l *Line) bool
}

// keyword matches word as a whole word: it may not touch an identifier
// character on either side.
func keyword(word string) step {
	return keywordAs(word, word)
}

func keywordAs(word, expect string) step {
	return step{
		expect: expect,
		match: func(c *cursor, _ *Line) bool {
			if !strings.HasPrefix(c.text[c.pos:], word) {
				return false
			}

			if c.pos > 0 && isIdentChar(c.text[c.pos-1]) {
				return false
			}

			end := c.pos + len(word)
			if end < len(c.text) && isIdentChar(c.text[end]) {
				return false
			}

			c.pos = end

			return true
		},
	}
}

func punct(ch byte) step {
	return step{
		expect: string(ch),
		match: func(c *cursor, _ *Line) bool {
			if c.pos >= len(c.text) || c.text[c.pos] != ch {
				return false
			}

			c.pos++

			return true
		},
	}
}

// quotedName matches a backtick-delimited name of one or more printable
// runes. The name may contain spaces and any punctuation except the
// backtick.
func quotedName() step {
	return step{
		expect: "`<name>`",
		match: func(c *cursor, l *Line) bool {
			rest := c.text[c.pos:]
			if !strings.HasPrefix(rest, "`") {
				return false
			}

			end := strings.IndexByte(rest[1:], '`')
			if end <= 0 {
				return false
			}

			name := rest[1 : 1+end]
			if !utf8.ValidString(name) {
				return false
			}

			for _, r := range name {
				if !unicode.IsPrint(r) {
					return false
				}
			}

			l.Name = name
			c.pos += end + 2

			return true
		},
	}
}

// number matches a non-negative decimal integer that fits in 64 bits.
func number(expect string, set func(l *Line, v uint64)) step {
	return step{
		expect: expect,
		match: func(c *cursor, l *Line) bool {
			end := c.pos
			for end < len(c.text) && '0' <= c.text[end] && c.text[end] <= '9' {
				end++
			}

			if end == c.pos {
				return false
			}

			v, err := strconv.ParseUint(c.text[c.pos:end], 10, 64)
			if err != nil {
				return false
			}

			set(l, v)
			c.pos = end

			return true
		},
	}
}

func setSize(l *Line, v uint64) {
	l.Size = v
}

func setAlignment(l *Line, v uint64) {
	l.Alignment = v
	l.HasAlignment = true
}

// pattern is one line shape: mandatory steps, then an optional group that
// either matches completely or not at all before the end of line.
type pattern struct {
	kind     LineKind
	steps    []step
	optional []step
}

// mismatch describes where a pattern stopped matching and what it wanted.
type mismatch struct {
	pos      int
	expected []string
}

func (p pattern) match(text string) (Line, *mismatch) {
	c := cursor{text: text}
	l := Line{Kind: p.kind}

	if m := runSteps(&c, &l, p.steps); m != nil {
		return Line{}, m
	}

	if c.atEnd() {
		return l, nil
	}

	if len(p.optional) > 0 {
		start := c.pos
		if m := runSteps(&c, &l, p.optional); m != nil {
			if m.pos == start {
				m.expected = append(m.expected, endOfLine)
			}

			return Line{}, m
		}

		if c.atEnd() {
			return l, nil
		}
	}

	return Line{}, &mismatch{pos: c.pos, expected: []string{endOfLine}}
}

func runSteps(c *cursor, l *Line, steps []step) *mismatch {
	for _, s := range steps {
		c.skipSpace()

		if !s.match(c, l) {
			return &mismatch{pos: c.pos, expected: []string{s.expect}}
		}
	}

	return nil
}

var (
	marker    = keyword(lineMarker)
	sizeBytes = []step{number("<size>", setSize), keyword("bytes")}
	alignment = []step{keyword("alignment:"), number("<align>", setAlignment), keyword("bytes")}
)

func concat(parts ...[]step) []step {
	var out []step
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

var (
	typeHeaderPattern = pattern{
		kind: LineTypeHeader,
		steps: concat(
			[]step{marker, keyword("type:"), quotedName(), punct(':')},
			sizeBytes,
			[]step{punct(',')},
			alignment,
		),
	}
	fieldPattern = pattern{
		kind:     LineField,
		steps:    concat([]step{marker, keyword("field"), quotedName(), punct(':')}, sizeBytes),
		optional: concat([]step{punct(',')}, alignment),
	}
	paddingPattern = pattern{
		kind:  LinePadding,
		steps: concat([]step{marker, keyword("padding:")}, sizeBytes),
	}
	endPaddingPattern = pattern{
		kind:  LineEndPadding,
		steps: concat([]step{marker, keywordAs("end", "end padding:"), keyword("padding:")}, sizeBytes),
	}
	discriminantPattern = pattern{
		kind:  LineDiscriminant,
		steps: concat([]step{marker, keyword("discriminant:")}, sizeBytes),
	}
	variantPattern = pattern{
		kind:  LineVariantHeader,
		steps: concat([]step{marker, keyword("variant"), quotedName(), punct(':')}, sizeBytes),
	}
)

// MatchLine recognizes a single report line against all six shapes,
// regardless of where it appears in a document.
func MatchLine(text string) (Line, error) {
	l, m := matchAny(text, allPatterns)
	if m != nil {
		return Line{}, newGrammarError(1, 0, text, m)
	}

	return l, nil
}

var allPatterns = []pattern{
	typeHeaderPattern,
	fieldPattern,
	paddingPattern,
	endPaddingPattern,
	discriminantPattern,
	variantPattern,
}

// matchAny returns the first pattern that matches text. If none does, the
// mismatch reports the furthest position any pattern reached and the union
// of what the patterns stopping there expected, in pattern order.
func matchAny(text string, patterns []pattern) (Line, *mismatch) {
	var best *mismatch

	for _, p := range patterns {
		l, m := p.match(text)
		if m == nil {
			return l, nil
		}

		switch {
		case best == nil || m.pos > best.pos:
			best = &mismatch{pos: m.pos, expected: append([]string(nil), m.expected...)}
		case m.pos == best.pos:
			for _, e := range m.expected {
				if !slices.Contains(best.expected, e) {
					best.expected = append(best.expected, e)
				}
			}
		}
	}

	return Line{}, best
}
