package driven

// SentenceTokenizer detects language-aware sentence boundaries.
// It is an optional capability: when its data asset cannot be obtained
// at startup, segmentation silently uses the heuristic fallback
// instead of failing.
//
// Asset loading happens once at process start; the loaded tokenizer is
// passed explicitly into the segmenter rather than probed per call.
type SentenceTokenizer interface {
	// Tokenize splits text into an ordered sequence of sentences.
	Tokenize(text string) []string
}
