// Package cmd wires the dotscan command line.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/riadafridishibly/dotscan/config"
	"github.com/riadafridishibly/dotscan/report"
	"github.com/riadafridishibly/dotscan/scanner"
	"github.com/riadafridishibly/dotscan/tui"
)

var (
	flagSave      bool
	flagOutput    string
	flagFormat    string
	flagExcludes  []string
	flagWorkers   int
	flagNoPreview bool
	flagNoColor   bool
	flagBrowse    bool
	flagTheme     string
	flagLogLevel  string

	version = "2.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "dotscan [path | auto]",
	Short: "Find hidden files and suspiciously named files",
	Long: `dotscan walks a directory tree and lists hidden files and directories
together with files whose names hint at secrets, flags or leftover backups.

Pass "auto", "common" or "smart" instead of a path to sweep the usual temp,
config and home locations of this platform. Without an argument dotscan asks
interactively.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&flagSave, "save", false, "save the report without asking")
	f.StringVarP(&flagOutput, "output", "o", report.DefaultFileName, "report file name")
	f.StringVar(&flagFormat, "format", string(report.FormatText), "report format: text|json|yaml")
	f.StringArrayVar(&flagExcludes, "exclude", nil, "skip paths matching this glob, relative to the scan root (repeatable)")
	f.IntVar(&flagWorkers, "workers", 0, "walker goroutines (0 = default)")
	f.BoolVar(&flagNoPreview, "no-preview", false, "do not print the content preview of small files")
	f.BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	f.BoolVar(&flagBrowse, "browse", false, "browse results in an interactive table")
	f.StringVar(&flagTheme, "theme", "", "color theme of the results browser: "+strings.Join(tui.ThemeNames(), "|"))
	f.StringVar(&flagLogLevel, "log-level", "info", "log level: debug|info|warn|error (env "+config.LogLevelEnv+")")
}

func runRoot(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	scanOpts := scanner.Options{Excludes: flagExcludes, Workers: flagWorkers}
	if err := scanOpts.Validate(); err != nil {
		return err
	}
	if err := tui.CheckTheme(flagTheme); err != nil {
		return err
	}

	level := flagLogLevel
	if !cmd.Flags().Changed("log-level") {
		if v := os.Getenv(config.LogLevelEnv); v != "" {
			level = v
		}
	}
	logger, closeLog, err := setupLogger(level)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)
	scanOpts.Logger = logger

	out := cmd.OutOrStdout()
	env := config.Load()
	r := &runner{
		out:       out,
		in:        bufio.NewReader(cmd.InOrStdin()),
		env:       env,
		logger:    logger,
		scanOpts:  scanOpts,
		printOpts: report.PrintOptions{Color: !flagNoColor && isTerminal(out)},
		format:    format,
		output:    flagOutput,
		save:      flagSave,
		preview:   !flagNoPreview,
		theme:     flagTheme,
	}
	if flagBrowse {
		r.browser = runBrowser
	}
	return r.run(cmd.Context(), args)
}

// setupLogger sends logs to a temp file. If the file can't be created the
// logs are dropped rather than mixed into the scan output.
func setupLogger(level string) (*slog.Logger, func(), error) {
	lc := &config.Logger{Level: level}

	f, err := config.OpenLogFile()
	if err != nil {
		logger, cerr := lc.Configure(io.Discard)
		return logger, func() {}, cerr
	}

	logger, err := lc.Configure(f)
	if err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
