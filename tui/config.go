package tui

import "time"

type Config struct {
	// Title is shown in the header, usually the scanned root or "common locations".
	Title                string `json:"title"`
	UserHomeDir          string `json:"user_home_dir"`
	ReplaceHomeWithTilde bool   `json:"replace_home_with_tilde"`
	Theme                string `json:"theme"`
}

// Summary carries walk statistics for the header line.
type Summary struct {
	Entries int64
	Elapsed time.Duration
}
