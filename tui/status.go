package tui

import (
	"fmt"
	"time"

	"codeberg.org/tslocum/cview"
	"github.com/dustin/go-humanize"
)

func headerStatus(title string, found int, summary Summary) string {
	return fmt.Sprintf(" %s | Found: %d items | Entries scanned: %s | Elapsed: %s ",
		cview.Escape(title),
		found,
		humanize.Comma(summary.Entries),
		summary.Elapsed.Round(time.Millisecond),
	)
}

func footerMenu(theme *Theme) string {
	key := theme.accent.String()
	return fmt.Sprintf(" [%s]↑/↓[-]: Navigate  [%s]i[-]: Details  [%s]t[-]: Theme  [%s]q[-]: Quit ", key, key, key, key)
}
