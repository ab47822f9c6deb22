// Package normalize canonicalizes raw extracted text before comparison.
//
// Normalization is deterministic and idempotent: applying it twice with
// the same options yields the same output as applying it once.
package normalize

import (
	"regexp"
	"strings"
)

// DefaultHeaderKeywords are running-header lines stripped as page
// furniture. Matched as whole lines, case-insensitively.
var DefaultHeaderKeywords = []string{"Chapter", "Resumen", "Abstract", "References"}

var (
	// Lines holding only a page number, "page N", or an "N / M" pager.
	pagerLine = regexp.MustCompile(`(?mi)^[ \t]*(page[ \t]*)?\d+[ \t]*(/[ \t]*\d+)?[ \t]*$`)

	// Three or more consecutive line breaks.
	blankRun = regexp.MustCompile(`\n{3,}`)

	// Two or more horizontal whitespace characters.
	hspaceRun = regexp.MustCompile(`[ \t]{2,}`)
)

// Typographic variants replaced with plain-ASCII equivalents.
var asciiReplacer = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"—", "-", // em dash
	"–", "-", // en dash
)

// Normalizer cleans raw extracted text into a canonical comparable form.
type Normalizer struct {
	removePageFurniture bool
	collapseBlankLines  bool
	headerLine          *regexp.Regexp
}

// Option configures the normalizer.
type Option func(*Normalizer)

// WithKeepPageFurniture disables page-number and running-header removal.
func WithKeepPageFurniture() Option {
	return func(n *Normalizer) {
		n.removePageFurniture = false
	}
}

// WithKeepBlankLines disables capping of blank-line runs.
func WithKeepBlankLines() Option {
	return func(n *Normalizer) {
		n.collapseBlankLines = false
	}
}

// WithHeaderKeywords adds running-header keywords on top of
// DefaultHeaderKeywords.
func WithHeaderKeywords(keywords []string) Option {
	return func(n *Normalizer) {
		n.headerLine = compileHeaderLine(append(DefaultHeaderKeywords, keywords...))
	}
}

// New creates a normalizer with page-furniture removal and blank-line
// collapsing enabled.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		removePageFurniture: true,
		collapseBlankLines:  true,
		headerLine:          compileHeaderLine(DefaultHeaderKeywords),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Normalize applies, in order: line-ending unification, typographic
// character replacement, page-furniture removal, blank-line capping,
// horizontal whitespace collapsing, and trimming.
//
// Empty or whitespace-only input yields an empty string, never an error.
func (n *Normalizer) Normalize(text string) string {
	// Unify line endings to a single LF.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = asciiReplacer.Replace(text)

	if n.removePageFurniture {
		text = pagerLine.ReplaceAllString(text, "")
		text = n.headerLine.ReplaceAllString(text, "")
	}

	if n.collapseBlankLines {
		text = blankRun.ReplaceAllString(text, "\n\n")
	}

	text = hspaceRun.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// compileHeaderLine builds a whole-line, case-insensitive pattern for
// the given keywords.
func compileHeaderLine(keywords []string) *regexp.Regexp {
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(k))
	}
	if len(quoted) == 0 {
		// Matches nothing.
		return regexp.MustCompile(`[^\s\S]`)
	}
	return regexp.MustCompile(`(?mi)^[ \t]*(` + strings.Join(quoted, "|") + `)[ \t]*$`)
}
