package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eZtaR1/ticktick-to-todoist/internal/convert"
	"github.com/eZtaR1/ticktick-to-todoist/internal/output"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Summarize a TickTick backup without converting it",
	Long: `Parses a TickTick backup CSV and reports what a conversion would produce:
record counts, per-list breakdown, hierarchy depth distribution and the
number of import files a convert run would write. Nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	input := args[0]
	if err := ensureInputFile(input); err != nil {
		return err
	}

	if _, err := loadConfig(); err != nil {
		return err
	}

	report, warnings, err := convert.Inspect(input)
	if err != nil {
		return err
	}

	for _, w := range warnings {
		output.Warnf(os.Stderr, "skipping malformed row at line %d: %v", w.Line, w.Err)
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, report)
	}

	output.Messagef(os.Stdout, "%s", input)
	output.InspectTable(os.Stdout, report)
	return nil
}
