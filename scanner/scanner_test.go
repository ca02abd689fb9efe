package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", size)), 0o644))
}

func TestScanner_ClassifiesFixture(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".env"), 10)
	writeFile(t, filepath.Join(root, "passwords.bak"), 20)
	writeFile(t, filepath.Join(root, "readme.txt"), 20)

	results, err := NewScanner(root, Options{}).Scan()
	require.NoError(t, err)

	want := []ScanResult{
		{Kind: HiddenFile, Path: filepath.Join(root, ".env"), Size: 10},
		{Kind: PotentialFlag, Path: filepath.Join(root, "passwords.bak"), Size: 20},
	}
	assert.Equal(t, want, results)
}

func TestScanner_NestedTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git", "config"), 5)
	writeFile(t, filepath.Join(root, "src", "main.go"), 5)
	writeFile(t, filepath.Join(root, "src", "api_token.txt"), 7)
	writeFile(t, filepath.Join(root, "secrets", "notes.txt"), 3)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", ".cache"), 0o755))

	s := NewScanner(root, Options{Workers: 4})
	results, err := s.Scan()
	require.NoError(t, err)

	want := []ScanResult{
		{Kind: HiddenDirectory, Path: filepath.Join(root, ".git")},
		{Kind: PotentialFlag, Path: filepath.Join(root, ".git", "config"), Size: 5},
		{Kind: HiddenDirectory, Path: filepath.Join(root, "src", ".cache")},
		{Kind: PotentialFlag, Path: filepath.Join(root, "src", "api_token.txt"), Size: 7},
	}
	assert.Equal(t, want, results)
	// .git, .git/config, src, src/main.go, src/api_token.txt, src/.cache,
	// secrets, secrets/notes.txt
	assert.Equal(t, int64(8), s.FileCount())
}

func TestScanner_DirectoriesAreNeverFlagged(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "backup_keys"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".hidden_secret"), 0o755))

	results, err := NewScanner(root, Options{}).Scan()
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, HiddenDirectory, results[0].Kind)
	assert.Equal(t, filepath.Join(root, ".hidden_secret"), results[0].Path)
	for _, r := range results {
		if r.IsDir() {
			assert.NotEqual(t, PotentialFlag, r.Kind)
		}
	}
}

func TestScanner_HiddenAndFlagAreExclusive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".secret.bak"), 4)

	results, err := NewScanner(root, Options{}).Scan()
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, HiddenFile, results[0].Kind)
}

func TestScanner_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")

	results, err := NewScanner(root, Options{}).Scan()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRootNotFound)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestScanner_EmptyTree(t *testing.T) {
	results, err := NewScanner(t.TempDir(), Options{}).Scan()
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestScanner_Excludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "node_modules", ".bin", "x"), 1)
	writeFile(t, filepath.Join(root, "a", "node_modules", "token.js"), 1)
	writeFile(t, filepath.Join(root, "keep", "key.pem"), 1)
	writeFile(t, filepath.Join(root, "old.tmp"), 1)

	results, err := NewScanner(root, Options{Excludes: []string{"**/node_modules", "*.tmp"}}).Scan()
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, filepath.Join(root, "keep", "key.pem"), results[0].Path)
}

func TestScanner_InvalidExclude(t *testing.T) {
	results, err := NewScanner(t.TempDir(), Options{Excludes: []string{"[unterminated"}}).Scan()
	require.Error(t, err)
	assert.Empty(t, results)
}

func TestScanner_UnreadableSubtreeDoesNotAbort(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	writeFile(t, filepath.Join(locked, "flag.txt"), 1)
	writeFile(t, filepath.Join(root, "zz", "flag.txt"), 2)
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	results, err := NewScanner(root, Options{}).Scan()
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, filepath.Join(root, "zz", "flag.txt"), results[0].Path)
}

func TestScanner_SymlinkToDirectoryIsNotFollowed(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}
	root := t.TempDir()
	target := t.TempDir()
	writeFile(t, filepath.Join(target, "flag.txt"), 3)
	require.NoError(t, os.Symlink(target, filepath.Join(root, ".link")))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "config_link")))

	results, err := NewScanner(root, Options{}).Scan()
	require.NoError(t, err)

	// the hidden link is a directory; the non-hidden one is a directory too
	// and therefore never flag-checked
	want := []ScanResult{
		{Kind: HiddenDirectory, Path: filepath.Join(root, ".link")},
	}
	assert.Equal(t, want, results)
}
