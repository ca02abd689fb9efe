package cmd

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riadafridishibly/dotscan/config"
	"github.com/riadafridishibly/dotscan/report"
	"github.com/riadafridishibly/dotscan/scanner"
	"github.com/riadafridishibly/dotscan/tui"
)

func newTestRunner(t *testing.T, input string) (*runner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &runner{
		out:      &out,
		in:       bufio.NewReader(strings.NewReader(input)),
		env:      config.Environment{GOOS: "linux", Platform: "Linux", User: "tester", Home: t.TempDir()},
		logger:   logger,
		scanOpts: scanner.Options{Logger: logger},
		format:   report.FormatText,
		output:   filepath.Join(t.TempDir(), report.DefaultFileName),
		preview:  true,
	}, &out
}

func fixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("API_TOKEN=abc"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "passwords.bak"), []byte("hunter2hunter2hunter2"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("nothing to see here"), 0o644))
	return root
}

func TestRun_PathArgumentAndSave(t *testing.T) {
	root := fixtureTree(t)
	r, out := newTestRunner(t, "yes\n")

	require.NoError(t, r.run(context.Background(), []string{root}))

	s := out.String()
	assert.Contains(t, s, "Directory: "+root)
	assert.Contains(t, s, "System: Linux")
	assert.Contains(t, s, "Found 2 suspicious items:")
	assert.Contains(t, s, "[HIDDEN] "+filepath.Join(root, ".env"))
	assert.Contains(t, s, "[FLAG?] "+filepath.Join(root, "passwords.bak"))
	assert.NotContains(t, s, "readme.txt")
	assert.Contains(t, s, ".env: API_TOKEN=abc...")
	assert.Contains(t, s, "Save report to file? (y/n): ")
	assert.Contains(t, s, "Report saved to: "+r.output)

	b, err := os.ReadFile(r.output)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Total Items Found: 2")
	assert.Contains(t, string(b), "[Potential Flag] "+filepath.Join(root, "passwords.bak")+" (21 bytes)")
}

func TestRun_DeclineSave(t *testing.T) {
	r, out := newTestRunner(t, "n\n")
	require.NoError(t, r.run(context.Background(), []string{fixtureTree(t)}))

	assert.NotContains(t, out.String(), "Report saved")
	_, err := os.Stat(r.output)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_SaveFlagSkipsPrompt(t *testing.T) {
	r, out := newTestRunner(t, "")
	r.save = true
	r.format = report.FormatJSON
	require.NoError(t, r.run(context.Background(), []string{fixtureTree(t)}))

	assert.NotContains(t, out.String(), "Save report to file?")
	b, err := os.ReadFile(r.output)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"total": 2`)
}

func TestRun_SavePromptClosedInput(t *testing.T) {
	r, out := newTestRunner(t, "")
	require.NoError(t, r.run(context.Background(), []string{fixtureTree(t)}))
	assert.Contains(t, out.String(), "\nExiting without saving...\n")
}

func TestRun_InteractivePath(t *testing.T) {
	root := fixtureTree(t)
	r, out := newTestRunner(t, root+"\nn\n")
	require.NoError(t, r.run(context.Background(), nil))

	s := out.String()
	assert.Contains(t, s, "Choose option: ")
	assert.Contains(t, s, "Directory: "+root)
	assert.Contains(t, s, "Found 2 suspicious items:")
}

func TestRun_InteractiveEmptyInputScansCurrentDir(t *testing.T) {
	r, out := newTestRunner(t, "\nn\n")
	require.NoError(t, r.run(context.Background(), nil))
	assert.Contains(t, out.String(), "Directory: .\n")
}

func TestRun_InteractiveInterrupted(t *testing.T) {
	r, out := newTestRunner(t, "")
	require.NoError(t, r.run(context.Background(), nil))

	assert.True(t, strings.HasSuffix(out.String(), "\nExiting...\n"))
	assert.NotContains(t, out.String(), "Directory:")
}

func TestRun_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	r, out := newTestRunner(t, "")
	require.NoError(t, r.run(context.Background(), []string{missing}))

	s := out.String()
	assert.Contains(t, s, "ERROR: Directory not found - "+missing)
	assert.Contains(t, s, "No hidden files or suspicious items found!")
	assert.NotContains(t, s, "Save report")
}

func TestRun_CommonMode(t *testing.T) {
	r, out := newTestRunner(t, "")
	home := r.env.Home
	// visit only the top level of each location
	r.scanOpts.Excludes = []string{"**"}

	require.NoError(t, r.run(context.Background(), []string{"SMART"}))

	s := out.String()
	assert.Contains(t, s, "Scanning common hiding locations...")
	assert.Contains(t, s, "Checking: "+home)
	assert.NotContains(t, s, "Save report to file?")
}

func TestRun_BrowserReplacesListing(t *testing.T) {
	r, out := newTestRunner(t, "n\n")
	called := false
	r.browser = func(conf tui.Config, items []scanner.ScanResult, summary tui.Summary) error {
		called = true
		assert.Len(t, items, 2)
		assert.Positive(t, summary.Entries)
		return nil
	}
	require.NoError(t, r.run(context.Background(), []string{fixtureTree(t)}))

	assert.True(t, called)
	assert.NotContains(t, out.String(), "Found 2 suspicious items:")
}

func TestRun_BrowserFailureFallsBack(t *testing.T) {
	r, out := newTestRunner(t, "n\n")
	r.browser = func(tui.Config, []scanner.ScanResult, tui.Summary) error {
		return errors.New("no tty")
	}
	require.NoError(t, r.run(context.Background(), []string{fixtureTree(t)}))

	assert.Contains(t, out.String(), "ERROR: could not start the results browser: no tty")
	assert.Contains(t, out.String(), "Found 2 suspicious items:")
}

type stubWalker struct {
	items []scanner.ScanResult
	err   error
}

func (w stubWalker) Scan() ([]scanner.ScanResult, error) { return w.items, w.err }
func (w stubWalker) FileCount() int64                    { return int64(len(w.items)) }
func (w stubWalker) ElapsedTime() time.Duration          { return time.Millisecond }

func TestRun_WalkAbortedKeepsPartialResults(t *testing.T) {
	r, out := newTestRunner(t, "n\n")
	partial := []scanner.ScanResult{{Kind: scanner.HiddenDirectory, Path: "/srv/.cache"}}
	r.newWalker = func(string, scanner.Options) walker {
		return stubWalker{items: partial, err: goerr.Wrap(os.ErrPermission, "walk aborted")}
	}

	require.NoError(t, r.run(context.Background(), []string{"/srv"}))

	s := out.String()
	assert.Contains(t, s, "ERROR: Permission denied or access error\n")
	assert.Contains(t, s, "Details: walk aborted")
	assert.NotContains(t, s, "Directory not found")
	assert.Contains(t, s, "Found 1 suspicious items:")
	assert.Contains(t, s, "[DIR]  /srv/.cache")
	assert.Contains(t, s, "Save report to file? (y/n): ")
}

func TestRun_BrowserGetsTheme(t *testing.T) {
	r, _ := newTestRunner(t, "n\n")
	r.theme = "dracula"
	var got tui.Config
	r.browser = func(conf tui.Config, _ []scanner.ScanResult, _ tui.Summary) error {
		got = conf
		return nil
	}
	require.NoError(t, r.run(context.Background(), []string{fixtureTree(t)}))
	assert.Equal(t, "dracula", got.Theme)
}

func TestIsCommonMode(t *testing.T) {
	for _, s := range []string{"auto", "AUTO", "Common", "smart", " smart "} {
		assert.True(t, isCommonMode(s), s)
	}
	for _, s := range []string{"", ".", "/tmp", "automatic"} {
		assert.False(t, isCommonMode(s), s)
	}
}
