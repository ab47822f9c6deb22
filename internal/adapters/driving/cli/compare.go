package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
	"github.com/proofdrift/proofdrift-cli/internal/report"
)

var (
	compareThreshold int
	compareReport    string
	compareJSON      bool
)

var compareCmd = &cobra.Command{
	Use:   "compare [source] [target]",
	Short: "Compare two document renderings",
	Long: `Compares the textual content of two documents (.pdf, .docx, .txt).
Each source sentence is matched against the target with token-sort fuzzy
scoring; sentences scoring below the threshold are reported as drift.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().IntVarP(&compareThreshold, "threshold", "t", -1, "match threshold 0-100 (default from config)")
	compareCmd.Flags().StringVarP(&compareReport, "report", "r", "", "write an HTML report to this path")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "output the full result as JSON")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	threshold := compareThreshold
	if threshold < 0 {
		threshold = configStore.Threshold()
	}

	cmp, err := comparer.Compare(context.Background(), args[0], args[1], threshold)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	// The flag overrides the configured path; an empty configured path
	// disables the report.
	reportPath := compareReport
	if reportPath == "" {
		reportPath = configStore.ReportPath()
	}
	if reportPath != "" {
		if err := report.WriteHTML(cmp, reportPath); err != nil {
			return err
		}
		cmd.Printf("Report written to %s\n", reportPath)
	}

	if compareJSON {
		return outputCompareJSON(cmd, cmp)
	}
	return outputCompareSummary(cmd, cmp)
}

func outputCompareJSON(cmd *cobra.Command, cmp *domain.Comparison) error {
	data, err := json.MarshalIndent(cmp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputCompareSummary(cmd *cobra.Command, cmp *domain.Comparison) error {
	cmd.Println(titleStyle.Render(fmt.Sprintf("%s vs %s", cmp.Source.URI, cmp.Target.URI)))

	cmd.Println(metricStyle.Render(fmt.Sprintf("Character similarity:  %.2f%%", cmp.Metrics.CharRatio)))
	if cmp.Metrics.TokenSortRatio != nil {
		cmd.Println(metricStyle.Render(fmt.Sprintf("Token-sort similarity: %.0f", *cmp.Metrics.TokenSortRatio)))
	} else {
		cmd.Println(mutedStyle.Render("Token-sort similarity: n/a"))
	}
	if cmp.Metrics.EditSimilarity != nil {
		cmd.Println(metricStyle.Render(fmt.Sprintf("Edit similarity:       %.2f%%", *cmp.Metrics.EditSimilarity)))
	}

	a := cmp.Alignment
	cmd.Println(matchedStyle.Render(fmt.Sprintf("Matched sentences:   %d/%d (threshold %d)", len(a.Matched), a.SourceCount, a.Threshold)))
	if len(a.Unmatched) == 0 {
		cmd.Println(matchedStyle.Render("No drift detected."))
		return nil
	}

	cmd.Println(unmatchedStyle.Render(fmt.Sprintf("Unmatched sentences: %d", len(a.Unmatched))))
	for _, u := range a.Unmatched {
		cmd.Println(unmatchedStyle.Render(fmt.Sprintf("  [%3d] %s", u.Score, u.Sentence)))
	}
	return nil
}
