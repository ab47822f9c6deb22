// Package report renders a comparison result into a human-viewable
// HTML artifact. It is a pure formatting layer over the core's output.
package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
)

// snippetLimit caps how much of an unmatched sentence the report shows.
const snippetLimit = 300

const reportTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Document comparison</title></head>
<body>
<h1>Comparison: {{.SourceName}} &harr; {{.TargetName}}</h1>
<h2>Metrics</h2>
<ul>
<li>Character-level similarity: {{printf "%.2f" .Metrics.CharRatio}}%</li>
<li>Token-sort similarity: {{if .Metrics.TokenSortRatio}}{{printf "%.0f" (deref .Metrics.TokenSortRatio)}}{{else}}n/a (fuzzy scoring unavailable){{end}}</li>
<li>Edit similarity: {{if .Metrics.EditSimilarity}}{{printf "%.2f" (deref .Metrics.EditSimilarity)}}%{{else}}n/a (fuzzy scoring unavailable){{end}}</li>
<li>Source sentences: {{.Alignment.SourceCount}}; target sentences: {{.Alignment.TargetCount}}</li>
<li>Matched source sentences (threshold {{.Alignment.Threshold}}): {{len .Alignment.Matched}}</li>
<li>Unmatched source sentences: {{len .Alignment.Unmatched}}</li>
</ul>
<h2>Unmatched source sentences, worst first (score)</h2>
<ol>
{{range .Unmatched}}<li><b>{{.Score}}</b>: {{.Sentence}}</li>
{{end}}</ol>
<p>Generated at {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
</body>
</html>
`

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"deref": func(f *float64) float64 { return *f },
}).Parse(reportTemplate))

// reportData is the template payload.
type reportData struct {
	SourceName  string
	TargetName  string
	Metrics     domain.SimilarityMetrics
	Alignment   domain.AlignmentResult
	Unmatched   []domain.UnmatchedSentence
	GeneratedAt time.Time
}

// WriteHTML renders cmp to an HTML file at path.
func WriteHTML(cmp *domain.Comparison, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %q: %w", path, err)
	}
	defer f.Close()

	data := reportData{
		SourceName:  filepath.Base(cmp.Source.URI),
		TargetName:  filepath.Base(cmp.Target.URI),
		Metrics:     cmp.Metrics,
		Alignment:   cmp.Alignment,
		Unmatched:   sortedUnmatched(cmp.Alignment.Unmatched),
		GeneratedAt: cmp.GeneratedAt,
	}

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

// sortedUnmatched orders unmatched sentences worst first and truncates
// long sentences to a snippet.
func sortedUnmatched(unmatched []domain.UnmatchedSentence) []domain.UnmatchedSentence {
	out := make([]domain.UnmatchedSentence, len(unmatched))
	copy(out, unmatched)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score < out[j].Score
	})
	for i := range out {
		if runes := []rune(out[i].Sentence); len(runes) > snippetLimit {
			out[i].Sentence = string(runes[:snippetLimit]) + "..."
		}
	}
	return out
}
