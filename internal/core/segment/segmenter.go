// Package segment splits normalized text into an ordered sequence of
// sentence-like units.
//
// Two named strategies exist behind one interface: a tokenizer-backed
// segmenter used when a language-aware sentence tokenizer capability is
// available, and a deterministic heuristic fallback that needs no
// runtime resources. Selection happens once at startup, never per call.
package segment

import (
	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driven"
)

// Segmenter splits normalized text into sentences.
// Output ordering matches source order; sentences are trimmed and
// non-empty.
type Segmenter interface {
	// Segment splits text into sentences.
	Segment(text string) []string

	// Name identifies the strategy for logging.
	Name() string
}

// Select returns the tokenizer-backed segmenter when a tokenizer
// capability is present, and the heuristic fallback otherwise.
func Select(tok driven.SentenceTokenizer) Segmenter {
	if tok != nil {
		return NewTokenizer(tok)
	}
	return NewHeuristic()
}

// TokenizerSegmenter delegates sentence boundaries to an injected
// language-aware tokenizer. This is the preferred, most accurate path.
type TokenizerSegmenter struct {
	tok driven.SentenceTokenizer
}

// NewTokenizer wraps a sentence tokenizer capability.
func NewTokenizer(tok driven.SentenceTokenizer) *TokenizerSegmenter {
	return &TokenizerSegmenter{tok: tok}
}

// Name returns the strategy name.
func (s *TokenizerSegmenter) Name() string {
	return "tokenizer"
}

// Segment splits text using the tokenizer, trimming each sentence and
// discarding empties.
func (s *TokenizerSegmenter) Segment(text string) []string {
	return cleanPieces(s.tok.Tokenize(text))
}
