package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_Identity(t *testing.T) {
	s := NewTokenSort()
	assert.Equal(t, 100, s.Score("The cat sat on the mat.", "The cat sat on the mat."))
}

func TestScore_OrderInvariant(t *testing.T) {
	s := NewTokenSort()
	assert.Equal(t, 100, s.Score("the cat sat", "sat the cat"))
	assert.Equal(t, 100, s.Score("Alpha Bravo Charlie", "charlie alpha bravo"))
}

func TestScore_PunctuationAndCaseIgnored(t *testing.T) {
	s := NewTokenSort()
	assert.Equal(t, 100, s.Score("The cat sat on the mat.", "the cat sat on the mat!"))
}

func TestScore_AddedWord(t *testing.T) {
	s := NewTokenSort()
	// Sorted tokens "happy it was" vs "happy it very was":
	// lcs 12, lengths 12+17 -> round(200*12/29) = 83.
	assert.Equal(t, 83, s.Score("It was happy.", "It was very happy."))
}

func TestScore_Disjoint(t *testing.T) {
	s := NewTokenSort()
	assert.Equal(t, 0, s.Score("aaa", "zzz"))
}

func TestScore_Empty(t *testing.T) {
	s := NewTokenSort()
	assert.Equal(t, 100, s.Score("", ""))
	assert.Equal(t, 100, s.Score("...", "!!!"), "punctuation-only inputs have identical empty token sets")
	assert.Equal(t, 0, s.Score("words here", ""))
	assert.Equal(t, 0, s.Score("", "words here"))
}

func TestScore_Range(t *testing.T) {
	s := NewTokenSort()
	pairs := [][2]string{
		{"one two three", "two three four"},
		{"completely different phrasing", "another unrelated clause"},
		{"a", "a b c d e f g"},
	}
	for _, p := range pairs {
		got := s.Score(p[0], p[1])
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestEditSimilarity(t *testing.T) {
	s := NewTokenSort()

	assert.Equal(t, float64(100), s.EditSimilarity("same text", "same text"))
	assert.Equal(t, float64(100), s.EditSimilarity("", ""))
	assert.Equal(t, float64(0), s.EditSimilarity("abc", "xyz"))

	// One edit over four characters: 75%.
	assert.Equal(t, float64(75), s.EditSimilarity("abcd", "abcx"))
}
