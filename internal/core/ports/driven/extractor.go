package driven

import (
	"context"

	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
)

// Extractor pulls plain text out of one document container format.
// Each extractor handles specific file extensions (e.g. .pdf, .docx).
//
// Extractors must preserve paragraph-level structure via blank-line
// separation but need not preserve layout.
type Extractor interface {
	// Extensions returns the lower-case file extensions this extractor
	// handles, including the leading dot.
	Extensions() []string

	// Extract reads the document at path and returns its plain text.
	// Malformed content is reported as an error wrapping
	// domain.ErrExtractionFailed; the run is never retried.
	Extract(ctx context.Context, path string) (domain.Document, error)
}
