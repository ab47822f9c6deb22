package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/proofdrift/proofdrift-cli/internal/core/align"
	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
	"github.com/proofdrift/proofdrift-cli/internal/core/normalize"
	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driven"
	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driving"
	"github.com/proofdrift/proofdrift-cli/internal/core/score"
	"github.com/proofdrift/proofdrift-cli/internal/core/segment"
	"github.com/proofdrift/proofdrift-cli/internal/logger"
)

// Ensure ComparisonService implements the interface.
var _ driving.Comparer = (*ComparisonService)(nil)

// ExtractorLookup resolves the extractor for a document path.
type ExtractorLookup interface {
	// Lookup returns the extractor handling path's extension, or an
	// error wrapping domain.ErrUnsupportedFormat.
	Lookup(path string) (driven.Extractor, error)
}

// ComparisonService runs the comparison pipeline. All capabilities are
// injected at construction; no probing happens inside the run.
type ComparisonService struct {
	extractors ExtractorLookup
	normalizer *normalize.Normalizer
	segmenter  segment.Segmenter
	scorer     *score.Scorer
	aligner    *align.Aligner
}

// NewComparisonService wires the pipeline. The aligner constructor has
// already verified the fuzzy capability, so the service itself cannot
// be built without it.
func NewComparisonService(
	extractors ExtractorLookup,
	normalizer *normalize.Normalizer,
	segmenter segment.Segmenter,
	scorer *score.Scorer,
	aligner *align.Aligner,
) *ComparisonService {
	return &ComparisonService{
		extractors: extractors,
		normalizer: normalizer,
		segmenter:  segmenter,
		scorer:     scorer,
		aligner:    aligner,
	}
}

// Compare extracts, normalizes, segments, scores and aligns the two
// documents. Either both metrics and alignment complete, or the run
// fails before producing output; partial results are never returned.
func (s *ComparisonService) Compare(ctx context.Context, sourcePath, targetPath string, threshold int) (*domain.Comparison, error) {
	// Both inputs are checked before any processing begins.
	for _, path := range []string{sourcePath, targetPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%q: %w", path, domain.ErrInputNotFound)
		}
	}

	logger.Section("Extracting text")
	src, err := s.extract(ctx, sourcePath)
	if err != nil {
		return nil, err
	}
	tgt, err := s.extract(ctx, targetPath)
	if err != nil {
		return nil, err
	}

	logger.Section("Normalizing text")
	srcText := s.normalizer.Normalize(src.Text)
	tgtText := s.normalizer.Normalize(tgt.Text)

	logger.Section("Computing similarity metrics")
	metrics := s.scorer.Score(srcText, tgtText)
	logger.Debug("char ratio: %.2f", metrics.CharRatio)

	logger.Section("Segmenting sentences")
	logger.Debug("segmentation strategy: %s", s.segmenter.Name())
	srcSents := s.segmenter.Segment(srcText)
	tgtSents := s.segmenter.Segment(tgtText)
	logger.Debug("source sentences: %d, target sentences: %d", len(srcSents), len(tgtSents))

	logger.Section("Aligning sentences")
	alignment, err := s.aligner.Align(srcSents, tgtSents, threshold)
	if err != nil {
		return nil, err
	}
	logger.Debug("matched: %d, unmatched: %d", len(alignment.Matched), len(alignment.Unmatched))

	return &domain.Comparison{
		Source:      src,
		Target:      tgt,
		Metrics:     metrics,
		Alignment:   alignment,
		GeneratedAt: time.Now(),
	}, nil
}

// extract resolves the extractor for path and runs it.
func (s *ComparisonService) extract(ctx context.Context, path string) (domain.Document, error) {
	extractor, err := s.extractors.Lookup(path)
	if err != nil {
		return domain.Document{}, err
	}
	doc, err := extractor.Extract(ctx, path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%q: %w", path, err)
	}
	logger.Debug("extracted %d bytes from %s (%s)", len(doc.Text), path, doc.Format)
	return doc, nil
}
