package cli

import (
	"github.com/spf13/cobra"

	"github.com/proofdrift/proofdrift-cli/internal/adapters/driven/sample"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [dir]",
	Short: "Generate a sample document pair",
	Long: `Writes a small DOCX and a drifted plaintext twin into the given
directory (default ".") so the compare command can be tried end to end.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	docxPath, txtPath, err := sample.Generate(dir)
	if err != nil {
		return err
	}

	cmd.Printf("Wrote %s and %s\n", docxPath, txtPath)
	cmd.Printf("Try: proofdrift compare %s %s\n", docxPath, txtPath)
	return nil
}
