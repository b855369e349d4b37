// Package cmd implements the ticktick2todoist CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/eZtaR1/ticktick-to-todoist/internal/clierr"
	"github.com/eZtaR1/ticktick-to-todoist/internal/config"
	"github.com/eZtaR1/ticktick-to-todoist/internal/convert"
	"github.com/eZtaR1/ticktick-to-todoist/internal/output"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON    bool
	flagNoColor bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "ticktick2todoist",
	Short: "Convert TickTick backups to Todoist import files",
	Long: `ticktick2todoist converts a TickTick backup CSV into Todoist's import format.

Large backups are split into multiple files (Todoist caps projects at 300
tasks), task hierarchy becomes indentation, and text is sanitized so the
import never produces corrupt rows.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor || os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
			output.DisableColor()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: nearest "+config.FileName+")")
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	// Determine if JSON mode is active.
	jsonMode := flagJSON
	if !jsonMode {
		jsonMode = os.Getenv("TICKTICK2TODOIST_OUTPUT") == "json"
	}

	if jsonMode {
		var cliErr *clierr.Error
		if errors.As(err, &cliErr) {
			output.JSONError(os.Stdout, cliErr.Code, cliErr.Message, cliErr.Details)
			os.Exit(cliErr.ExitCode())
		}
		// Unknown error — wrap as INTERNAL_ERROR.
		output.JSONError(os.Stdout, clierr.InternalError, err.Error(), nil)
		os.Exit(2) //nolint:mnd // exit code 2 for internal errors
	}

	// Non-JSON mode: print to stderr.
	fmt.Fprintln(os.Stderr, err)
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(1)
}

// loadConfig loads the config from --config or the nearest config file,
// falling back to defaults. A config-level color toggle applies here.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
		if errors.Is(err, config.ErrNotFound) {
			return nil, clierr.Newf(clierr.FileNotFound, "config file not found: %s", flagConfig)
		}
	} else {
		cwd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, fmt.Errorf("getting working directory: %w", wdErr)
		}
		cfg, err = config.Discover(cwd)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Color != nil && !*cfg.Color {
		output.DisableColor()
	}
	return cfg, nil
}

// ensureInputFile verifies that the conversion input exists and is a file.
func ensureInputFile(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return clierr.Newf(clierr.FileNotFound, "input file not found: %s", path)
	}
	if err != nil {
		return clierr.Newf(clierr.IOError, "checking %s: %v", path, err)
	}
	if info.IsDir() {
		return clierr.Newf(clierr.InvalidInput, "%s is a directory, expected a TickTick backup CSV", path)
	}
	return nil
}

// printWarnings writes non-fatal conversion warnings to stderr.
func printWarnings(res *convert.Result) {
	for _, w := range res.ReadWarnings {
		output.Warnf(os.Stderr, "skipping malformed row at line %d: %v", w.Line, w.Err)
	}
	for _, d := range res.NoteDiscards {
		output.Warnf(os.Stderr, "removed note for task %q: characters Todoist cannot import", d.Title)
	}
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON)
}
