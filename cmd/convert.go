package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eZtaR1/ticktick-to-todoist/internal/config"
	"github.com/eZtaR1/ticktick-to-todoist/internal/convert"
	"github.com/eZtaR1/ticktick-to-todoist/internal/filelock"
	"github.com/eZtaR1/ticktick-to-todoist/internal/output"
)

// lockFileName guards an output directory against interleaved runs
// (e.g. a watch-triggered conversion racing a manual one).
const lockFileName = ".ticktick2todoist.lock"

var convertCmd = &cobra.Command{
	Use:     "convert FILE",
	Aliases: []string{"run"},
	Short:   "Convert a TickTick backup CSV to Todoist import files",
	Long: `Converts a TickTick backup CSV into one or more Todoist import files.

Output goes next to the input file unless --output is given. Backups with
more than 300 tasks are split into todoist_import_partN.csv files, each
record tagged part_N_of_M so the split is traceable after import.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output directory (default: input file's directory)")
	convertCmd.Flags().Bool("no-priority", false, "disable priority mapping; all tasks get Todoist priority 4")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	if err := ensureInputFile(input); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := resolveOptions(cmd, cfg)

	res, err := convertOnce(input, opts)
	if err != nil {
		return err
	}

	printWarnings(res)
	return outputConvertResult(res, opts)
}

// resolveOptions merges flags over config values over defaults.
func resolveOptions(cmd *cobra.Command, cfg *config.Config) convert.Options {
	opts := convert.Options{IncludePriority: true}

	if cfg.IncludePriority != nil {
		opts.IncludePriority = *cfg.IncludePriority
	}
	if cmd.Flags().Changed("no-priority") {
		noPriority, _ := cmd.Flags().GetBool("no-priority")
		opts.IncludePriority = !noPriority
	}

	opts.OutputDir = cfg.OutputDir
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		opts.OutputDir = v
	}

	return opts
}

// convertOnce runs one conversion while holding the output directory's
// advisory lock.
func convertOnce(input string, opts convert.Options) (*convert.Result, error) {
	lockDir := opts.OutputDir
	if lockDir == "" {
		lockDir = filepath.Dir(input)
	} else if err := os.MkdirAll(lockDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	unlock, err := filelock.Lock(filepath.Join(lockDir, lockFileName))
	if err != nil {
		return nil, fmt.Errorf("acquiring lock: %w", err)
	}
	defer unlock() //nolint:errcheck // best-effort unlock on exit

	return convert.Run(input, opts)
}

func outputConvertResult(res *convert.Result, opts convert.Options) error {
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, res)
	}

	output.ConvertResult(os.Stdout, res)
	if opts.IncludePriority {
		output.Messagef(os.Stdout, "Priority mapping is enabled")
	} else {
		output.Messagef(os.Stdout, "Priority mapping is disabled")
	}
	return nil
}
