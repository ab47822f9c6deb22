package driven

// FuzzyScorer computes token-order-invariant string similarity.
// It is required by sentence alignment and used for the optional
// whole-document token metric.
type FuzzyScorer interface {
	// Score returns a similarity in [0,100] that is insensitive to
	// word order: reordered but lexically identical strings score 100.
	Score(a, b string) int

	// EditSimilarity returns a complementary metric in [0,100] based
	// on edit distance normalized by the longer input length.
	EditSimilarity(a, b string) float64
}
