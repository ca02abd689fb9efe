package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/riadafridishibly/dotscan/scanner"
)

const (
	previewMaxSize   = 500
	previewReadBytes = 100
	previewMaxRunes  = 80
	previewMinRunes  = 5
)

// Preview prints the first characters of every small, readable text file in
// items. Unreadable and binary files are skipped silently.
func Preview(w io.Writer, items []scanner.ScanResult) {
	fmt.Fprintln(w, "\nContent Preview (small files only):")
	fmt.Fprintln(w, strings.Repeat("-", 40))

	for _, item := range items {
		if item.Size <= 0 || item.Size >= previewMaxSize {
			continue
		}
		text, ok := Snippet(item.Path)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s: %s...\n", filepath.Base(item.Path), text)
	}
}

// Snippet reads up to 100 bytes of path and returns the trimmed text, cut to
// 80 runes. ok is false when the file can't be read, isn't UTF-8 text, or has
// 5 runes or fewer after trimming.
func Snippet(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	buf := make([]byte, previewReadBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", false
	}
	b := buf[:n]
	if n == previewReadBytes {
		b = trimPartialRune(b)
	}
	if !utf8.Valid(b) {
		return "", false
	}

	text := strings.TrimSpace(string(b))
	if utf8.RuneCountInString(text) <= previewMinRunes {
		return "", false
	}
	if runes := []rune(text); len(runes) > previewMaxRunes {
		text = string(runes[:previewMaxRunes])
	}
	return text, true
}

// trimPartialRune drops a multi-byte sequence cut off at the end of b.
func trimPartialRune(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			break
		}
	}
	return b
}
