// Package report renders scan results to the console and to report files.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riadafridishibly/dotscan/scanner"
)

type PrintOptions struct {
	// Color enables lipgloss styling of the kind tags. Callers decide based on
	// whether the writer is a terminal.
	Color bool
}

var (
	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Display prints the result count followed by one line per result.
func Display(w io.Writer, items []scanner.ScanResult, opts PrintOptions) {
	if len(items) == 0 {
		fmt.Fprintln(w, "\nNo hidden files or suspicious items found!")
		return
	}

	fmt.Fprintf(w, "\nFound %d suspicious items:\n", len(items))
	fmt.Fprintln(w, strings.Repeat("-", 70))

	for _, item := range items {
		tag := item.Kind.Tag()
		if opts.Color {
			tag = colorTag(item.Kind)
		}
		switch item.Kind {
		case scanner.HiddenDirectory:
			fmt.Fprintf(w, "%s  %s\n", tag, item.Path)
		default:
			fmt.Fprintf(w, "%s %s (%s KB)\n", tag, item.Path, FormatKB(item.Size))
		}
	}
}

// FormatKB renders size in kilobytes with one decimal. Empty files print as
// a bare 0.
func FormatKB(size int64) string {
	if size <= 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(size)/1024.0, 'f', 1, 64)
}

func colorTag(k scanner.Kind) string {
	switch k {
	case scanner.HiddenDirectory:
		return dirStyle.Render(k.Tag())
	case scanner.HiddenFile:
		return hiddenStyle.Render(k.Tag())
	default:
		return flagStyle.Render(k.Tag())
	}
}
