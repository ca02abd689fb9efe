//go:build windows

package scanner

import "golang.org/x/sys/windows"

// readHiddenAttr reads FILE_ATTRIBUTE_HIDDEN. ok is false when the
// attributes are unavailable (missing file, access denied, bad path).
func readHiddenAttr(path string) (hidden, ok bool) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0, true
}
