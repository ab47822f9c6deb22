// Package fuzzy implements the token-order-invariant similarity
// capability used for whole-document scoring and sentence alignment.
package fuzzy

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driven"
)

// Ensure TokenSortScorer implements the interface.
var _ driven.FuzzyScorer = (*TokenSortScorer)(nil)

// TokenSortScorer scores strings by lower-casing, stripping
// non-alphanumeric characters, sorting the tokens of each input, and
// comparing the sorted token sequences. Reordered but lexically
// identical strings score 100.
type TokenSortScorer struct{}

// NewTokenSort creates a token-sort scorer.
func NewTokenSort() *TokenSortScorer {
	return &TokenSortScorer{}
}

// Score returns the indel ratio of the two sorted-token strings,
// 2*lcs/(lenA+lenB)*100, rounded to the nearest integer.
func (s *TokenSortScorer) Score(a, b string) int {
	sa := sortedTokens(a)
	sb := sortedTokens(b)
	if len(sa) == 0 && len(sb) == 0 {
		return 100
	}
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	l := lcsLength(sa, sb)
	return int(math.Round(200 * float64(l) / float64(len(sa)+len(sb))))
}

// EditSimilarity returns 100*(1 - distance/longerLength) over the raw
// inputs, rounded to two decimal places.
func (s *TokenSortScorer) EditSimilarity(a, b string) float64 {
	if a == b {
		return 100
	}
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	sim := 100 * (1 - float64(dist)/float64(maxLen))
	return math.Round(sim*100) / 100
}

// sortedTokens lower-cases the input, maps every non-alphanumeric rune
// to a space, sorts the resulting tokens, and returns them as one
// space-joined rune slice.
func sortedTokens(text string) []rune {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	tokens := strings.Fields(mapped)
	if len(tokens) == 0 {
		return nil
	}
	sort.Strings(tokens)
	return []rune(strings.Join(tokens, " "))
}

// lcsLength computes the longest-common-subsequence length with a
// two-row dynamic program. Kept hand-rolled: the per-sentence alignment
// loop calls this O(n*m) times and must not allocate diff structures.
func lcsLength(a, b []rune) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
