package segment

import (
	"strings"
	"unicode/utf8"
)

// longBlockThreshold is the block length in runes beyond which a block
// is re-split on sentence-terminal punctuation.
const longBlockThreshold = 500

// HeuristicSegmenter is the deterministic fallback strategy: split on
// blank lines, then re-split long blocks after terminal punctuation.
// It depends on no runtime resource.
type HeuristicSegmenter struct{}

// NewHeuristic creates the fallback segmenter.
func NewHeuristic() *HeuristicSegmenter {
	return &HeuristicSegmenter{}
}

// Name returns the strategy name.
func (s *HeuristicSegmenter) Name() string {
	return "heuristic"
}

// Segment splits text on double line-breaks into blocks, discards blank
// blocks, and further splits blocks longer than 500 characters on
// whitespace that follows '.', '?' or '!'. Pieces are trimmed; empties
// dropped.
func (s *HeuristicSegmenter) Segment(text string) []string {
	var pieces []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if utf8.RuneCountInString(block) > longBlockThreshold {
			pieces = append(pieces, splitAfterTerminals(block)...)
		} else {
			pieces = append(pieces, block)
		}
	}
	return cleanPieces(pieces)
}

// splitAfterTerminals cuts block on whitespace runs that immediately
// follow a sentence-terminal punctuation mark, keeping the mark with
// the preceding piece.
func splitAfterTerminals(block string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(block); i++ {
		if !isTerminal(block[i]) {
			continue
		}
		j := i + 1
		for j < len(block) && isSpace(block[j]) {
			j++
		}
		if j == i+1 {
			continue // no whitespace after the mark
		}
		parts = append(parts, block[start:i+1])
		start = j
		i = j - 1
	}
	if start < len(block) {
		parts = append(parts, block[start:])
	}
	return parts
}

func isTerminal(c byte) bool {
	return c == '.' || c == '?' || c == '!'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// cleanPieces trims every piece and drops the empty ones, preserving
// order.
func cleanPieces(pieces []string) []string {
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
