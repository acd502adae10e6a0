package report

import (
	"fmt"
	"io"
	"strings"
)

// state is the position of the parser relative to the block structure.
type state int

const (
	stateStart     state = iota // before the first type header
	stateInType                 // inside a type block, outside any variant
	stateInTagged               // inside a type block that already has its discriminant
	stateInVariant              // inside a variant block
)

// candidates lists the line shapes accepted in each state, in grammar order.
var candidates = [...][]pattern{
	stateStart: {typeHeaderPattern},
	stateInType: {
		typeHeaderPattern,
		fieldPattern,
		paddingPattern,
		endPaddingPattern,
		discriminantPattern,
		variantPattern,
	},
	stateInTagged: {
		typeHeaderPattern,
		fieldPattern,
		paddingPattern,
		endPaddingPattern,
		variantPattern,
	},
	stateInVariant: {
		typeHeaderPattern,
		fieldPattern,
		paddingPattern,
		endPaddingPattern,
		variantPattern,
	},
}

// Parser builds TypeRecords from report lines fed one at a time.
// A Parser is not safe for concurrent use; independent documents should use
// independent Parsers.
type Parser struct {
	state   state
	records []TypeRecord
	current *TypeRecord
	variant *VariantMember
	line    int
	offset  int
}

// NewParser creates a Parser positioned at the start of a document.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the whole report from r and parses it.
func Parse(r io.Reader) ([]TypeRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading layout report: %w", err)
	}

	return ParseString(string(data))
}

// ParseString parses a complete report held in memory.
func ParseString(input string) ([]TypeRecord, error) {
	p := NewParser()

	for len(input) > 0 {
		text := input
		next := len(input)

		if i := strings.IndexByte(input, '\n'); i >= 0 {
			text = input[:i]
			next = i + 1
		}

		if err := p.Feed(text); err != nil {
			return nil, err
		}

		input = input[next:]
	}

	return p.Finish(), nil
}

// Feed consumes one line, without its '\n' terminator. Blank lines are
// skipped and a trailing '\r' is ignored.
func (p *Parser) Feed(text string) error {
	p.line++
	lineOffset := p.offset
	p.offset += len(text) + 1

	text = strings.TrimSuffix(text, "\r")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	l, m := matchAny(text, candidates[p.state])
	if m != nil {
		return newGrammarError(p.line, lineOffset, text, m)
	}

	p.apply(l)

	return nil
}

func (p *Parser) apply(l Line) {
	switch l.Kind {
	case LineTypeHeader:
		p.closeType()
		p.current = &TypeRecord{Name: l.Name, Size: l.Size, Alignment: l.Alignment}
		p.state = stateInType

	case LineVariantHeader:
		p.closeVariant()
		p.variant = &VariantMember{Name: l.Name, Size: l.Size}
		p.state = stateInVariant

	case LineDiscriminant:
		p.current.Members = append(p.current.Members, DiscriminantMember{Size: l.Size})
		p.state = stateInTagged

	case LineField, LinePadding, LineEndPadding:
		item := variantItemOf(l)
		if p.state == stateInVariant {
			p.variant.Members = append(p.variant.Members, item)
		} else {
			p.current.Members = append(p.current.Members, item)
		}

	default:
		panic("unexpected line kind: " + l.Kind.String())
	}
}

func variantItemOf(l Line) VariantItem {
	if l.Kind == LineField {
		f := FieldMember{Name: l.Name, Size: l.Size}
		if l.HasAlignment {
			align := l.Alignment
			f.Alignment = &align
		}

		return f
	}

	return PaddingMember{Size: l.Size}
}

func (p *Parser) closeVariant() {
	if p.variant == nil {
		return
	}

	p.current.Members = append(p.current.Members, *p.variant)
	p.variant = nil
}

func (p *Parser) closeType() {
	p.closeVariant()

	if p.current == nil {
		return
	}

	p.records = append(p.records, *p.current)
	p.current = nil
}

// Finish closes any open blocks and returns the records parsed so far.
// The Parser is reset afterwards.
func (p *Parser) Finish() []TypeRecord {
	p.closeType()
	records := p.records
	*p = Parser{}

	return records
}
