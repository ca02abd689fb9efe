package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/riadafridishibly/dotscan/config"
	"github.com/riadafridishibly/dotscan/report"
	"github.com/riadafridishibly/dotscan/scanner"
	"github.com/riadafridishibly/dotscan/tui"
)

const commonLocationsTitle = "common locations"

// browseFunc shows results interactively instead of the line listing.
type browseFunc func(conf tui.Config, items []scanner.ScanResult, summary tui.Summary) error

// walker is the part of scanner.Scanner the runner needs.
type walker interface {
	Scan() ([]scanner.ScanResult, error)
	FileCount() int64
	ElapsedTime() time.Duration
}

func newWalker(path string, opts scanner.Options) walker {
	return scanner.NewScanner(path, opts)
}

// runner drives one invocation: choose the mode, scan, show, maybe save.
type runner struct {
	out    io.Writer
	in     *bufio.Reader
	env    config.Environment
	logger *slog.Logger

	scanOpts  scanner.Options
	printOpts report.PrintOptions
	format    report.Format
	output    string
	save      bool
	preview   bool
	browser   browseFunc
	theme     string

	// newWalker is swapped in tests
	newWalker func(path string, opts scanner.Options) walker

	summary tui.Summary
}

func isCommonMode(arg string) bool {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "auto", "common", "smart":
		return true
	}
	return false
}

func (r *runner) run(ctx context.Context, args []string) error {
	fmt.Fprintln(r.out, "Hidden File Detector v"+version)

	var scanPath string
	if len(args) > 0 {
		scanPath = args[0]
	} else {
		fmt.Fprintln(r.out, "\nOptions:")
		fmt.Fprintln(r.out, "1. Enter specific path")
		fmt.Fprintln(r.out, "2. Type 'auto' for smart scanning")
		fmt.Fprintln(r.out, "3. Type '.' for current directory")
		answer, err := prompt(ctx, r.in, r.out, "Choose option: ")
		if err != nil {
			r.logger.Debug("path prompt aborted", "error", err)
			fmt.Fprintln(r.out, "\nExiting...")
			return nil
		}
		scanPath = answer
	}

	if isCommonMode(scanPath) {
		r.runCommon()
		return nil
	}

	if strings.TrimSpace(scanPath) == "" {
		scanPath = "."
	}

	items := r.scan(scanPath)
	r.present(scanPath, items)
	if len(items) == 0 {
		return nil
	}
	r.offerSave(ctx, items)
	return nil
}

func (r *runner) runCommon() {
	fmt.Fprintln(r.out, "\nScanning common hiding locations...")

	var all []scanner.ScanResult
	for _, p := range scanner.CommonLocations(r.env) {
		fmt.Fprintln(r.out, "Checking: "+p)
		all = append(all, r.scan(p)...)
	}

	r.present(commonLocationsTitle, all)
	if r.save && len(all) > 0 {
		report.SaveReport(r.out, r.output, r.env.Platform, all, r.format)
	}
}

// scan runs one walk and turns its errors into console messages.
func (r *runner) scan(path string) []scanner.ScanResult {
	fmt.Fprintln(r.out, strings.Repeat("=", 50))
	fmt.Fprintln(r.out, "Hidden File Detector")
	fmt.Fprintln(r.out, "Directory: "+path)
	fmt.Fprintln(r.out, "System: "+r.env.Platform)
	fmt.Fprintln(r.out, strings.Repeat("=", 50))

	mk := r.newWalker
	if mk == nil {
		mk = newWalker
	}
	s := mk(path, r.scanOpts)
	items, err := s.Scan()
	r.summary.Entries += s.FileCount()
	r.summary.Elapsed += s.ElapsedTime()

	switch {
	case errors.Is(err, scanner.ErrRootNotFound):
		fmt.Fprintln(r.out, "ERROR: Directory not found - "+path)
	case err != nil:
		fmt.Fprintln(r.out, "ERROR: Permission denied or access error")
		fmt.Fprintln(r.out, "Details: "+err.Error())
	}
	return items
}

func (r *runner) present(title string, items []scanner.ScanResult) {
	if r.browser != nil && len(items) > 0 {
		conf := tui.Config{
			Title:                title,
			UserHomeDir:          r.env.Home,
			ReplaceHomeWithTilde: true,
			Theme:                r.theme,
		}
		err := r.browser(conf, items, r.summary)
		if err == nil {
			return
		}
		r.logger.Error("results browser failed", "error", err)
		fmt.Fprintln(r.out, "ERROR: could not start the results browser: "+err.Error())
	}

	report.Display(r.out, items, r.printOpts)
	if len(items) > 0 && r.preview {
		report.Preview(r.out, items)
	}
}

func (r *runner) offerSave(ctx context.Context, items []scanner.ScanResult) {
	if r.save {
		report.SaveReport(r.out, r.output, r.env.Platform, items, r.format)
		return
	}

	answer, err := prompt(ctx, r.in, r.out, "\nSave report to file? (y/n): ")
	if err != nil {
		r.logger.Debug("save prompt aborted", "error", err)
		fmt.Fprintln(r.out, "\nExiting without saving...")
		return
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		report.SaveReport(r.out, r.output, r.env.Platform, items, r.format)
	}
}

func runBrowser(conf tui.Config, items []scanner.ScanResult, summary tui.Summary) error {
	start := time.Now()
	defer func() { slog.Debug("results browser closed", "open_for", time.Since(start)) }()
	return tui.NewApp(conf, items, summary).Run()
}
