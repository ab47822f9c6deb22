package driving

import (
	"context"

	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
)

// Comparer runs a complete comparison between two document renderings.
// It is the single entry point exposed by the core: either both metrics
// and alignment complete, or the run fails before producing output.
type Comparer interface {
	// Compare extracts, normalizes, segments, scores and aligns the two
	// documents. threshold must be in [0,100].
	Compare(ctx context.Context, sourcePath, targetPath string, threshold int) (*domain.Comparison, error)
}
