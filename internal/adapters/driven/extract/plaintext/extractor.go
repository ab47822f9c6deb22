// Package plaintext extracts text from files that already are text.
package plaintext

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text documents. The file content is the
// extracted text; paragraph structure is whatever the file carries.
type Extractor struct{}

// New creates a plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".txt", ".text", ".md"}
}

// Extract reads the file verbatim.
func (e *Extractor) Extract(_ context.Context, path string) (domain.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("reading %q: %w", path, domain.ErrInputNotFound)
	}

	return domain.Document{
		ID:     uuid.New().String(),
		URI:    path,
		Format: "text",
		Text:   string(content),
	}, nil
}
