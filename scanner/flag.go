package scanner

import "strings"

var flagKeywords = []string{
	"flag", "secret", "password", "key", "hint",
	"token", "admin", "config", "backup", "hidden",
}

var suspiciousExtensions = []string{".bak", ".old", ".tmp", ".swp", ".orig"}

// IsPotentialFlag reports whether a base file name looks like it may hold a
// flag, credential or leftover backup. Matching is case-insensitive.
func IsPotentialFlag(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range flagKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, ext := range suspiciousExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
