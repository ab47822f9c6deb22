package domain

import "time"

// DefaultThreshold is the alignment threshold used when the caller
// does not supply one.
const DefaultThreshold = 80

// SimilarityMetrics holds whole-document similarity scores between two
// normalized texts. Optional metrics are nil when the capability that
// computes them is unavailable; callers must distinguish "not computed"
// from "computed as zero".
type SimilarityMetrics struct {
	// CharRatio is the character-level similarity, 0-100, rounded to
	// two decimal places. Defined as 2*matching/(lenA+lenB)*100 over
	// a longest-common-subsequence alignment of the raw characters.
	CharRatio float64

	// TokenSortRatio is the token-order-invariant similarity, 0-100.
	// Nil when no fuzzy scorer is configured.
	TokenSortRatio *float64

	// EditSimilarity is a complementary metric: Levenshtein distance
	// normalized by the longer text length, scaled to 0-100.
	// Nil when no fuzzy scorer is configured.
	EditSimilarity *float64
}

// SentenceMatch records a source sentence whose best target score
// reached the threshold.
type SentenceMatch struct {
	// Sentence is the source sentence text.
	Sentence string

	// Score is the best token-order-invariant score found, 0-100.
	Score int

	// TargetIndex is the index of the first target sentence achieving
	// the best score. Ties go to the earliest index.
	TargetIndex int
}

// UnmatchedSentence records a source sentence whose best target score
// fell below the threshold.
type UnmatchedSentence struct {
	// Sentence is the source sentence text.
	Sentence string

	// Score is the best (sub-threshold) score found, 0-100.
	Score int
}

// AlignmentResult classifies every source sentence against the target
// sentences. Matching is one-directional and non-exclusive: several
// source sentences may share a best target, and no target sentence is
// ever consumed.
type AlignmentResult struct {
	// SourceCount is the number of source sentences examined.
	SourceCount int

	// TargetCount is the number of target sentences scanned.
	TargetCount int

	// Threshold is the score at or above which a sentence counts as
	// matched.
	Threshold int

	// Matched holds source sentences with best score >= Threshold,
	// in source order.
	Matched []SentenceMatch

	// Unmatched holds source sentences with best score < Threshold,
	// in source order.
	Unmatched []UnmatchedSentence
}

// Comparison is the complete, immutable output of one comparison run.
// It is what the report writer and the CLI summary consume.
type Comparison struct {
	// Source is the document whose sentences were searched for.
	Source Document

	// Target is the document searched within.
	Target Document

	// Metrics holds the whole-document similarity scores.
	Metrics SimilarityMetrics

	// Alignment holds the per-sentence classification.
	Alignment AlignmentResult

	// GeneratedAt is when the run completed.
	GeneratedAt time.Time
}
