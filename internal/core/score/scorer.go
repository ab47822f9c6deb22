// Package score computes whole-document similarity metrics between two
// normalized texts.
package score

import (
	"math"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driven"
)

// Scorer computes domain.SimilarityMetrics. The character-level metric
// is always computed; the token-order-invariant metrics are present
// only when a fuzzy scorer capability was injected.
type Scorer struct {
	fuzzy driven.FuzzyScorer
}

// NewScorer creates a scorer. fuzzy may be nil, in which case the
// optional metrics are left absent rather than reported as zero.
func NewScorer(fuzzy driven.FuzzyScorer) *Scorer {
	return &Scorer{fuzzy: fuzzy}
}

// Score compares two normalized texts.
func (s *Scorer) Score(a, b string) domain.SimilarityMetrics {
	m := domain.SimilarityMetrics{
		CharRatio: charRatio(a, b),
	}

	if s.fuzzy != nil {
		token := float64(s.fuzzy.Score(a, b))
		edit := s.fuzzy.EditSimilarity(a, b)
		m.TokenSortRatio = &token
		m.EditSimilarity = &edit
	}

	return m
}

// charRatio is 2*matching/(lenA+lenB)*100 rounded to two decimal
// places, with matching characters taken from a minimal character diff
// (the total length of equal runs equals the LCS length).
func charRatio(a, b string) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	if la+lb == 0 {
		return 100
	}

	dmp := diffmatchpatch.New()
	// The default 1s timeout may return a non-minimal diff on very large
	// inputs, understating the ratio. Disable it so equal runs always
	// total the LCS length.
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMain(a, b, false)

	matching := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			matching += utf8.RuneCountInString(d.Text)
		}
	}

	ratio := 200 * float64(matching) / float64(la+lb)
	return math.Round(ratio*100) / 100
}
