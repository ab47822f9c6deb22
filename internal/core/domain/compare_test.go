package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityMetrics_OptionalMetricsDefaultAbsent(t *testing.T) {
	m := SimilarityMetrics{CharRatio: 42.5}

	assert.Nil(t, m.TokenSortRatio, "absent must be distinguishable from zero")
	assert.Nil(t, m.EditSimilarity)

	zero := 0.0
	m.TokenSortRatio = &zero
	assert.NotNil(t, m.TokenSortRatio, "computed zero is not absent")
}

func TestAlignmentResult_Counts(t *testing.T) {
	r := AlignmentResult{
		SourceCount: 3,
		TargetCount: 2,
		Threshold:   80,
		Matched: []SentenceMatch{
			{Sentence: "a", Score: 95, TargetIndex: 0},
			{Sentence: "b", Score: 88, TargetIndex: 1},
		},
		Unmatched: []UnmatchedSentence{
			{Sentence: "c", Score: 12},
		},
	}

	assert.Equal(t, r.SourceCount, len(r.Matched)+len(r.Unmatched))
}

func TestErrors_Distinct(t *testing.T) {
	errs := []error{
		ErrInvalidInput,
		ErrInputNotFound,
		ErrUnsupportedFormat,
		ErrExtractionFailed,
		ErrFuzzyUnavailable,
	}
	seen := make(map[string]bool)
	for _, err := range errs {
		assert.False(t, seen[err.Error()], "duplicate error message %q", err.Error())
		seen[err.Error()] = true
	}
}
