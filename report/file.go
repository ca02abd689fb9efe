package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/riadafridishibly/dotscan/scanner"
)

const DefaultFileName = "hidden_files_report.txt"

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", goerr.New("unknown report format", goerr.V("format", s))
}

// Document is the structured form of a report used by the json and yaml
// formats.
type Document struct {
	System string `json:"system" yaml:"system"`
	Total  int    `json:"total" yaml:"total"`
	Items  []Item `json:"items" yaml:"items"`
}

type Item struct {
	Kind string `json:"kind" yaml:"kind"`
	Path string `json:"path" yaml:"path"`
	Size int64  `json:"size" yaml:"size"`
}

func NewDocument(system string, items []scanner.ScanResult) Document {
	doc := Document{
		System: system,
		Total:  len(items),
		Items:  make([]Item, 0, len(items)),
	}
	for _, it := range items {
		doc.Items = append(doc.Items, Item{Kind: it.Kind.String(), Path: it.Path, Size: it.Size})
	}
	return doc
}

// Write renders the report for items in the given format.
func Write(w io.Writer, system string, items []scanner.ScanResult, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewDocument(system, items)); err != nil {
			return goerr.Wrap(err, "failed to encode json report")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(system, items)); err != nil {
			return goerr.Wrap(err, "failed to encode yaml report")
		}
		if err := enc.Close(); err != nil {
			return goerr.Wrap(err, "failed to flush yaml report")
		}
		return nil
	}
	return writeText(w, system, items)
}

func writeText(w io.Writer, system string, items []scanner.ScanResult) error {
	var b strings.Builder
	b.WriteString("Hidden File Detection Report\n")
	fmt.Fprintf(&b, "System: %s\n", system)
	fmt.Fprintf(&b, "Total Items Found: %d\n", len(items))
	b.WriteString(strings.Repeat("-", 50) + "\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "[%s] %s (%d bytes)\n", it.Kind, it.Path, it.Size)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write text report")
	}
	return nil
}

// Save writes the report to path, replacing any existing file.
func Save(path, system string, items []scanner.ScanResult, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create report file", goerr.V("path", path))
	}
	if err := Write(f, system, items, format); err != nil {
		f.Close()
		return goerr.Wrap(err, "failed to write report file", goerr.V("path", path))
	}
	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close report file", goerr.V("path", path))
	}
	return nil
}

// SaveReport is Save with console feedback on w. It reports success instead
// of returning the error.
func SaveReport(w io.Writer, path, system string, items []scanner.ScanResult, format Format) bool {
	if err := Save(path, system, items, format); err != nil {
		fmt.Fprintln(w, "ERROR: Could not save report file")
		fmt.Fprintln(w, "Details: "+err.Error())
		return false
	}
	fmt.Fprintln(w, "Report saved to: "+path)
	return true
}
