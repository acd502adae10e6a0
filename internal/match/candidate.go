package match

import (
	"sort"
)

// Candidate is one word scored against what was written.
type Candidate struct {
	Word  string
	Score float64
}

// CandidateList is a list of candidates, best first.
type CandidateList []Candidate

// RankCandidates scores every word against written and keeps those scoring
// at least minScore. Ties keep the order of words.
func RankCandidates(written string, words []string, minScore float64) CandidateList {
	var candidates CandidateList

	for _, w := range words {
		score := Similarity(written, w)
		if score < minScore {
			continue
		}

		candidates = append(candidates, Candidate{Word: w, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// Best returns the best candidate, or false for an empty list.
func (cl CandidateList) Best() (Candidate, bool) {
	if len(cl) == 0 {
		return Candidate{}, false
	}

	return cl[0], true
}

// Words returns the candidate words in rank order, or nil for an empty
// list.
func (cl CandidateList) Words() []string {
	if len(cl) == 0 {
		return nil
	}

	words := make([]string, len(cl))
	for i, c := range cl {
		words[i] = c.Word
	}

	return words
}
