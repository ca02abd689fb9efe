package scanner

import (
	"path/filepath"
	"strings"
)

// IsHidden reports whether the entry at path is hidden. The platform
// attribute wins when it can be read; otherwise the dot-prefix rule on the
// base name decides. The path does not need to exist.
func IsHidden(path string) bool {
	if hidden, ok := readHiddenAttr(path); ok {
		return hidden
	}
	return IsHiddenName(filepath.Base(path))
}

func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, ".")
}
