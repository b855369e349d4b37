package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eZtaR1/ticktick-to-todoist/internal/output"
	"github.com/eZtaR1/ticktick-to-todoist/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-convert a TickTick backup whenever it changes",
	Long: `Watches a TickTick backup CSV and re-runs the conversion each time the
file is written or replaced. Conversion errors are reported but do not
stop the watch. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringP("output", "o", "", "output directory (default: input file's directory)")
	watchCmd.Flags().Bool("no-priority", false, "disable priority mapping; all tasks get Todoist priority 4")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	if err := ensureInputFile(input); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := resolveOptions(cmd, cfg)

	// In watch mode a failing run is a warning, not an exit: the next
	// save may fix the file.
	runOnce := func() {
		res, err := convertOnce(input, opts)
		if err != nil {
			output.Warnf(os.Stderr, "conversion failed: %v", err)
			return
		}
		printWarnings(res)
		output.ConvertResult(os.Stdout, res)
	}

	runOnce()

	w, err := watcher.New(input, runOnce)
	if err != nil {
		return err
	}
	defer w.Close() //nolint:errcheck // watcher teardown on exit

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	output.Messagef(os.Stdout, "Watching %s (Ctrl+C to stop)", input)
	w.Run(ctx, func(err error) {
		output.Warnf(os.Stderr, "watch error: %v", err)
	})

	return nil
}
