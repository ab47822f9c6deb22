// Package pdf extracts text from PDF documents.
package pdf

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ajroetker/pdf"
	"github.com/google/uuid"

	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// yLineTolerance is the vertical distance in points within which two
// text fragments count as the same line.
const yLineTolerance = 2.0

// Extractor handles PDF documents. Text fragments are regrouped into
// lines by their vertical position; pages become blank-line-separated
// blocks.
type Extractor struct{}

// New creates a PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".pdf"}
}

// Extract reads every page's text content.
// The underlying reader panics on malformed files; that is converted
// into an error wrapping domain.ErrExtractionFailed.
func (e *Extractor) Extract(_ context.Context, path string) (doc domain.Document, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		return domain.Document{}, fmt.Errorf("reading %q: %w", path, domain.ErrInputNotFound)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf %q: %v: %w", path, r, domain.ErrExtractionFailed)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("opening pdf %q: %v: %w", path, err, domain.ErrExtractionFailed)
	}
	defer f.Close()

	var pages []string
	for num := 1; num <= reader.NumPage(); num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}
		if text := pageText(page); text != "" {
			pages = append(pages, text)
		}
	}

	return domain.Document{
		ID:     uuid.New().String(),
		URI:    path,
		Format: "pdf",
		Text:   strings.Join(pages, "\n\n"),
	}, nil
}

// pageText regroups a page's text fragments into lines.
func pageText(page pdf.Page) string {
	var (
		b     strings.Builder
		lastY float64
		first = true
	)
	for _, t := range page.Content().Text {
		if t.S == "" {
			continue
		}
		if !first && math.Abs(t.Y-lastY) > yLineTolerance {
			b.WriteString("\n")
		}
		b.WriteString(t.S)
		lastY = t.Y
		first = false
	}
	return strings.TrimSpace(b.String())
}
