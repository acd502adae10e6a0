package report

import (
	"fmt"
	"strconv"
	"strings"
)

// GrammarError reports a line that matches no line shape valid at its
// position in the document.
type GrammarError struct {
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based byte column within the line.
	Column int
	// Offset is the 0-based byte offset within the whole document.
	Offset int
	// Text is the offending line, without its line terminator.
	Text string
	// Expected lists the tokens that would have been accepted at Column.
	Expected []string
}

func newGrammarError(lineNo, lineOffset int, text string, m *mismatch) *GrammarError {
	return &GrammarError{
		Line:     lineNo,
		Column:   m.pos + 1,
		Offset:   lineOffset + m.pos,
		Text:     text,
		Expected: m.expected,
	}
}

// Found returns a short excerpt of what was found at Column.
func (e *GrammarError) Found() string {
	pos := e.Column - 1
	if pos >= len(e.Text) {
		return endOfLine
	}

	found := e.Text[pos:]
	if len(found) > 32 {
		found = found[:32] + "..."
	}

	return strconv.Quote(found)
}

func (e *GrammarError) Error() string {
	quoted := make([]string, len(e.Expected))
	for i, tok := range e.Expected {
		quoted[i] = strconv.Quote(tok)
	}

	want := strings.Join(quoted, ", ")
	if len(quoted) > 1 {
		want = "one of " + want
	}

	return fmt.Sprintf("line %d, column %d (offset %d): expected %s, found %s",
		e.Line, e.Column, e.Offset, want, e.Found())
}
