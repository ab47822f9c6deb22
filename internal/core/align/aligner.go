// Package align finds, for each source sentence, its best match among
// the target sentences and classifies it against a score threshold.
package align

import (
	"fmt"
	"sync"

	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driven"
)

// parallelGate is the source*target sentence-count product above which
// the scan is sharded across workers. Each source sentence's search is
// independent, so shards write disjoint result slots.
const parallelGate = 4096

// bestMatch is the per-source-sentence scan result.
type bestMatch struct {
	score int
	index int
}

// Aligner performs the O(n*m) best-match scan. It requires the fuzzy
// scoring capability; there is no meaningful fallback.
type Aligner struct {
	fuzzy driven.FuzzyScorer
}

// NewAligner creates an aligner. A nil fuzzy scorer is a hard error:
// the caller must check capabilities once, before the pipeline runs.
func NewAligner(fuzzy driven.FuzzyScorer) (*Aligner, error) {
	if fuzzy == nil {
		return nil, fmt.Errorf("sentence alignment: %w", domain.ErrFuzzyUnavailable)
	}
	return &Aligner{fuzzy: fuzzy}, nil
}

// Align scans every source sentence against every target sentence,
// tracking the maximum score and the first target index achieving it
// (strict-greater comparison, so the earliest index wins ties).
// A sentence is matched when its best score is >= threshold.
//
// Raising the threshold can only move sentences from matched to
// unmatched; scores themselves are threshold-independent.
func (a *Aligner) Align(source, target []string, threshold int) (domain.AlignmentResult, error) {
	if threshold < 0 || threshold > 100 {
		return domain.AlignmentResult{}, fmt.Errorf("threshold %d outside [0,100]: %w", threshold, domain.ErrInvalidInput)
	}

	best := make([]bestMatch, len(source))
	if len(source)*len(target) >= parallelGate {
		a.scanParallel(source, target, best)
	} else {
		for i, s := range source {
			best[i] = a.scan(s, target)
		}
	}

	result := domain.AlignmentResult{
		SourceCount: len(source),
		TargetCount: len(target),
		Threshold:   threshold,
	}
	for i, s := range source {
		if best[i].score >= threshold {
			result.Matched = append(result.Matched, domain.SentenceMatch{
				Sentence:    s,
				Score:       best[i].score,
				TargetIndex: best[i].index,
			})
		} else {
			result.Unmatched = append(result.Unmatched, domain.UnmatchedSentence{
				Sentence: s,
				Score:    best[i].score,
			})
		}
	}

	return result, nil
}

// scan finds the best-scoring target for one source sentence.
func (a *Aligner) scan(s string, target []string) bestMatch {
	b := bestMatch{index: -1}
	for j, t := range target {
		if score := a.fuzzy.Score(s, t); score > b.score {
			b.score = score
			b.index = j
		}
	}
	return b
}

// scanParallel shards the scan by source index. Workers write disjoint
// slots of best, so no synchronization is needed beyond the WaitGroup.
func (a *Aligner) scanParallel(source, target []string, best []bestMatch) {
	var wg sync.WaitGroup
	indices := make(chan int)

	workers := 4
	if len(source) < workers {
		workers = len(source)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				best[i] = a.scan(source[i], target)
			}
		}()
	}

	for i := range source {
		indices <- i
	}
	close(indices)
	wg.Wait()
}
