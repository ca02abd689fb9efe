package tui

import (
	"fmt"
	"log/slog"

	"codeberg.org/tslocum/cview"

	"github.com/riadafridishibly/dotscan/scanner"
)

// App is a read-only browser over a finished scan.
type App struct {
	app *cview.Application

	layout      *cview.Flex
	header      *cview.TextView
	footer      *cview.TextView
	table       *cview.Table
	panels      *cview.Panels
	detailModal *cview.Modal
	themeModal  *cview.Modal

	items   []scanner.ScanResult
	summary Summary
	conf    Config

	showDetail bool
	showTheme  bool

	currentTheme Theme
}

func NewApp(conf Config, items []scanner.ScanResult, summary Summary) *App {
	app := cview.NewApplication()

	theme := lookupTheme(conf.Theme)

	header := cview.NewTextView()
	header.SetDynamicColors(true)
	header.SetTextAlign(cview.AlignCenter)

	footer := cview.NewTextView()
	footer.SetDynamicColors(true)
	footer.SetTextAlign(cview.AlignCenter)

	detailModal := cview.NewModal()
	detailModal.SetText("")
	detailModal.AddButtons([]string{"Okay"})

	themeModal := cview.NewModal()
	themeModal.SetText("")
	themeNames := getThemeNames()
	themeModal.AddButtons(themeNames)

	panels := cview.NewPanels()
	table := cview.NewTable()
	panels.AddPanel("table", table, true, true)

	layout := cview.NewFlex()
	layout.SetDirection(cview.FlexRow)
	layout.AddItem(header, 1, 0, false)
	layout.AddItem(panels, 0, 1, true)
	layout.AddItem(footer, 1, 0, false)

	a := &App{
		app:          app,
		layout:       layout,
		header:       header,
		footer:       footer,
		table:        table,
		panels:       panels,
		detailModal:  detailModal,
		themeModal:   themeModal,
		items:        items,
		summary:      summary,
		conf:         conf,
		currentTheme: theme,
	}

	app.SetInputCapture(a.handleInput)

	detailModal.SetDoneFunc(func(_ int, _ string) {
		a.showDetail = false
		a.setRoot(a.layout, true)
	})

	themeModal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		a.showTheme = false
		a.setRoot(a.layout, true)

		if buttonIndex >= 0 && buttonIndex < len(themeNames) {
			a.switchTheme(buttonLabel)
			a.applyTheme()
		}
	})

	a.applyTheme()
	app.SetRoot(layout, true)

	return a
}

func (a *App) switchTheme(themeName string) {
	if th, ok := themes[themeName]; ok {
		a.currentTheme = th
	}
}

func (a *App) applyTheme() {
	theme := a.currentTheme

	a.header.SetBackgroundColor(theme.headerBg)
	a.header.SetTextColor(theme.headerFg)

	a.footer.SetBackgroundColor(theme.footerBg)
	a.footer.SetTextColor(theme.footerFg)

	for _, m := range []*cview.Modal{a.detailModal, a.themeModal} {
		m.SetBackgroundColor(theme.modalBg)
		m.SetTextColor(theme.modalFg)
		m.SetButtonBackgroundColor(theme.buttonBg)
		m.SetButtonTextColor(theme.buttonFg)
	}

	a.table.SetBackgroundColor(theme.bg)
	a.panels.SetBackgroundColor(theme.bg)

	a.header.SetText(headerStatus(a.conf.Title, len(a.items), a.summary))
	a.footer.SetText(footerMenu(&theme))
	a.buildTable()
}

func (a *App) showThemeSelector() {
	theme := a.currentTheme
	text := fmt.Sprintf("Select Theme (Current: [%s]%s[-])", theme.accent.String(), theme.Name)
	a.themeModal.SetText(text)
	a.showTheme = true
	a.setRoot(a.themeModal, false)
}

// setRoot queues a SetRoot operation to avoid data races
func (a *App) setRoot(primitive cview.Primitive, focus bool) {
	a.app.QueueUpdateDraw(func() {
		a.app.SetRoot(primitive, focus)
	})
}

func (a *App) Stop() {
	a.app.Stop()
}

func (a *App) Run() error {
	slog.Debug("starting results browser", "items", len(a.items), "theme", a.currentTheme.Name)
	return a.app.Run()
}
