package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"codeberg.org/tslocum/cview"
	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v3"

	"github.com/riadafridishibly/dotscan/report"
	"github.com/riadafridishibly/dotscan/scanner"
)

func (a *App) replaceHomeWithTilde(p string) string {
	if !a.conf.ReplaceHomeWithTilde || a.conf.UserHomeDir == "" {
		return p
	}
	if after, ok := strings.CutPrefix(p, a.conf.UserHomeDir); ok {
		p = "~" + after
	}
	return p
}

func (t *Theme) kindColor(k scanner.Kind) tcell.Color {
	switch k {
	case scanner.HiddenDirectory:
		return t.dirFg
	case scanner.HiddenFile:
		return t.hiddenFg
	}
	return t.flagFg
}

func sizeLabel(item scanner.ScanResult) string {
	if item.IsDir() {
		return " - "
	}
	return fmt.Sprintf(" %s ", humanize.Bytes(uint64(item.Size)))
}

// buildTable renders items in scan order, one row per result. The tag cell
// carries the result as its reference.
func (a *App) buildTable() *cview.Table {
	theme := a.currentTheme
	table := a.table
	table.Clear()
	for row := range a.items {
		item := &a.items[row]

		tagCell := cview.NewTableCell(" " + item.Kind.Tag())
		tagCell.SetTextColor(theme.kindColor(item.Kind))
		tagCell.SetAlign(cview.AlignLeft)
		tagCell.SetReference(item)
		table.SetCell(row, 0, tagCell)

		sizeCell := cview.NewTableCell(sizeLabel(*item))
		sizeCell.SetTextColor(theme.sizeFg)
		sizeCell.SetAlign(cview.AlignRight)
		table.SetCell(row, 1, sizeCell)

		pathCell := cview.NewTableCell(cview.Escape(a.replaceHomeWithTilde(item.Path)))
		pathCell.SetTextColor(theme.fg)
		pathCell.SetAlign(cview.AlignLeft)
		pathCell.SetExpansion(1)
		table.SetCell(row, 2, pathCell)
	}

	table.SetBorder(false)
	table.SetBorders(false)
	table.SetSelectable(true, false)
	table.SetSeparator(' ')

	return table
}

func (a *App) selectedItem() (*scanner.ScanResult, bool) {
	row, _ := a.table.GetSelection()
	cell := a.table.GetCell(row, 0) // the reference lives on the tag column
	if cell == nil {
		return nil, false
	}
	item, ok := cell.GetReference().(*scanner.ScanResult)
	if !ok {
		slog.Debug("unexpected table reference", "type", fmt.Sprintf("%T", cell.GetReference()))
		return nil, false
	}
	return item, true
}

func (a *App) showItemDetail() {
	item, ok := a.selectedItem()
	if !ok {
		return
	}
	a.detailModal.SetText(itemDetail(*item))
	a.showDetail = true
	a.setRoot(a.detailModal, false)
}

// itemDetail is shown in a modal, which reads [...] as color tags, so the
// path and the file content are escaped.
func itemDetail(item scanner.ScanResult) string {
	var detail strings.Builder
	fmt.Fprintf(&detail, "Kind: %s\n", item.Kind)
	fmt.Fprintf(&detail, "Path: %s\n", cview.Escape(item.Path))
	if !item.IsDir() {
		fmt.Fprintf(&detail, "Size: %s (%d bytes)\n", humanize.Bytes(uint64(item.Size)), item.Size)
	}
	if item.Size > 0 {
		if text, ok := report.Snippet(item.Path); ok {
			fmt.Fprintf(&detail, "\n%s...\n", cview.Escape(text))
		}
	}
	return detail.String()
}
