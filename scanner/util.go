package scanner

import (
	"io/fs"
	"os"
)

// FileSize returns the size of path in bytes, following symlinks.
// Any error (permission, file removed mid-scan) yields 0.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// isDirEntry reports whether d should be treated as a directory. Symlinks are
// resolved so a link to a directory is classified like one, but the walk
// itself never follows them.
func isDirEntry(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.IsDir()
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
