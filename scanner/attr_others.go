//go:build !windows

package scanner

// Unix-like systems have no hidden attribute, only the dot-prefix convention.
func readHiddenAttr(string) (hidden, ok bool) {
	return false, false
}
