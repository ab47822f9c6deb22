package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofdrift/proofdrift-cli/internal/adapters/driven/extract"
	"github.com/proofdrift/proofdrift-cli/internal/adapters/driven/extract/plaintext"
	"github.com/proofdrift/proofdrift-cli/internal/adapters/driven/fuzzy"
	"github.com/proofdrift/proofdrift-cli/internal/core/align"
	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
	"github.com/proofdrift/proofdrift-cli/internal/core/normalize"
	"github.com/proofdrift/proofdrift-cli/internal/core/score"
	"github.com/proofdrift/proofdrift-cli/internal/core/segment"
)

// newTestService wires the pipeline with the plaintext extractor and
// the heuristic segmenter.
func newTestService(t *testing.T) *ComparisonService {
	t.Helper()

	scorer := fuzzy.NewTokenSort()
	aligner, err := align.NewAligner(scorer)
	require.NoError(t, err)

	return NewComparisonService(
		extract.NewRegistry(plaintext.New()),
		normalize.New(),
		segment.Select(nil),
		score.NewScorer(scorer),
		aligner,
	)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCompare_IdenticalDocuments(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()
	text := "First paragraph of body text.\n\nSecond paragraph, unchanged."
	src := writeFile(t, dir, "a.txt", text)
	tgt := writeFile(t, dir, "b.txt", text)

	cmp, err := s.Compare(context.Background(), src, tgt, 80)
	require.NoError(t, err)

	assert.Equal(t, 100.0, cmp.Metrics.CharRatio)
	require.NotNil(t, cmp.Metrics.TokenSortRatio)
	assert.Equal(t, 100.0, *cmp.Metrics.TokenSortRatio)
	assert.Equal(t, 2, cmp.Alignment.SourceCount)
	assert.Len(t, cmp.Alignment.Matched, 2)
	assert.Empty(t, cmp.Alignment.Unmatched)
	assert.False(t, cmp.GeneratedAt.IsZero())
}

func TestCompare_DriftedDocuments(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "a.txt",
		"The cat sat on the mat. It was happy.\n\nOnly the source carries this entirely unique closing paragraph.")
	tgt := writeFile(t, dir, "b.txt",
		"The cat sat on the mat! It was very happy.")

	cmp, err := s.Compare(context.Background(), src, tgt, 80)
	require.NoError(t, err)

	assert.Less(t, cmp.Metrics.CharRatio, 100.0)
	require.Len(t, cmp.Alignment.Unmatched, 1)
	assert.Contains(t, cmp.Alignment.Unmatched[0].Sentence, "unique closing paragraph")
	assert.Len(t, cmp.Alignment.Matched, 1)
}

func TestCompare_MissingInput(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()
	existing := writeFile(t, dir, "a.txt", "content")

	_, err := s.Compare(context.Background(), filepath.Join(dir, "absent.txt"), existing, 80)
	assert.ErrorIs(t, err, domain.ErrInputNotFound)

	_, err = s.Compare(context.Background(), existing, filepath.Join(dir, "absent.txt"), 80)
	assert.ErrorIs(t, err, domain.ErrInputNotFound)
}

func TestCompare_UnsupportedFormat(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "a.xyz", "content")
	tgt := writeFile(t, dir, "b.txt", "content")

	_, err := s.Compare(context.Background(), src, tgt, 80)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestCompare_InvalidThreshold(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "a.txt", "content")
	tgt := writeFile(t, dir, "b.txt", "content")

	_, err := s.Compare(context.Background(), src, tgt, 150)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompare_PageFurnitureIgnored(t *testing.T) {
	s := newTestService(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "a.txt", "Body paragraph stays the same.\nPage 3\n")
	tgt := writeFile(t, dir, "b.txt", "Body paragraph stays the same.\n12 / 40\n")

	cmp, err := s.Compare(context.Background(), src, tgt, 80)
	require.NoError(t, err)

	assert.Equal(t, 100.0, cmp.Metrics.CharRatio, "page furniture must not count as drift")
	assert.Empty(t, cmp.Alignment.Unmatched)
}
