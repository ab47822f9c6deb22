// Package extract provides text extractors for the supported document
// container formats, selected by file extension through a registry.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driven"
)

// Registry maps file extensions to their extractors.
type Registry struct {
	byExt map[string]driven.Extractor
}

// NewRegistry creates a registry over the given extractors.
// Later extractors win when extensions collide.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	r := &Registry{byExt: make(map[string]driven.Extractor)}
	for _, e := range extractors {
		for _, ext := range e.Extensions() {
			r.byExt[strings.ToLower(ext)] = e
		}
	}
	return r
}

// Lookup returns the extractor handling path's extension.
// Returns an error wrapping domain.ErrUnsupportedFormat when no
// extractor is registered for it.
func (r *Registry) Lookup(path string) (driven.Extractor, error) {
	ext := strings.ToLower(filepath.Ext(path))
	e, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%q: %w", ext, domain.ErrUnsupportedFormat)
	}
	return e, nil
}

// Extensions returns all registered extensions.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	return exts
}
