// Package cli provides the cobra command tree driving the comparison
// core.
package cli

import (
	"github.com/spf13/cobra"

	configfile "github.com/proofdrift/proofdrift-cli/internal/adapters/driven/config/file"
	"github.com/proofdrift/proofdrift-cli/internal/adapters/driven/extract"
	"github.com/proofdrift/proofdrift-cli/internal/adapters/driven/extract/docx"
	"github.com/proofdrift/proofdrift-cli/internal/adapters/driven/extract/pdf"
	"github.com/proofdrift/proofdrift-cli/internal/adapters/driven/extract/plaintext"
	"github.com/proofdrift/proofdrift-cli/internal/adapters/driven/fuzzy"
	"github.com/proofdrift/proofdrift-cli/internal/core/align"
	"github.com/proofdrift/proofdrift-cli/internal/core/normalize"
	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driven"
	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driving"
	"github.com/proofdrift/proofdrift-cli/internal/core/score"
	"github.com/proofdrift/proofdrift-cli/internal/core/segment"
	"github.com/proofdrift/proofdrift-cli/internal/core/services"
	"github.com/proofdrift/proofdrift-cli/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
)

// Services wired once in initServices and consumed by the commands.
var (
	comparer    driving.Comparer
	configStore driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "proofdrift",
	Short: "Audit textual drift between two renderings of a document",
	Long: `proofdrift compares two independently produced renderings of the same
document (for example a typeset PDF and a manually corrected DOCX) and
reports how much their textual content has diverged, highlighting
sentences present in one but not matched in the other.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print pipeline details to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.proofdrift)")
}

// initServices builds the capability set once, before any command
// runs. The sentence tokenizer is the sole optional capability; its
// absence selects the heuristic segmenter instead of failing.
func initServices() error {
	if comparer != nil {
		return nil
	}

	store, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return err
	}
	configStore = store

	scorer := fuzzy.NewTokenSort()
	aligner, err := align.NewAligner(scorer)
	if err != nil {
		return err
	}

	registry := extract.NewRegistry(plaintext.New(), docx.New(), pdf.New())
	normalizer := normalize.New(normalize.WithHeaderKeywords(store.HeaderKeywords()))
	segmenter := segment.Select(loadTokenizer())

	comparer = services.NewComparisonService(
		registry,
		normalizer,
		segmenter,
		score.NewScorer(scorer),
		aligner,
	)
	return nil
}

// loadTokenizer probes for a language-aware sentence tokenizer asset.
// None ships with the binary today, so segmentation uses the heuristic
// fallback; the hook exists so a tokenizer can be wired in one place.
func loadTokenizer() driven.SentenceTokenizer {
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
