package importer

import (
	"strings"

	"type-layout-importer/internal/match"
	"type-layout-importer/internal/report"
)

// minSuggestionScore is the similarity a token needs to be suggested.
const minSuggestionScore = 0.5

// suggest returns the expected tokens that look like a misspelling of the
// word found where a grammar error occurred.
func suggest(gErr *report.GrammarError) []string {
	word := foundWord(gErr)
	if word == "" {
		return nil
	}

	return match.RankCandidates(word, gErr.Expected, minSuggestionScore).Words()
}

// foundWord returns the whitespace-delimited word at the error column.
func foundWord(gErr *report.GrammarError) string {
	pos := gErr.Column - 1
	if pos < 0 || pos >= len(gErr.Text) {
		return ""
	}

	rest := gErr.Text[pos:]
	if end := strings.IndexAny(rest, " \t`"); end >= 0 {
		rest = rest[:end]
	}

	return rest
}
