package tui

import (
	"sort"

	"github.com/gdamore/tcell/v3"
	"github.com/m-mizutani/goerr/v2"
)

type Theme struct {
	Name     string
	bg       tcell.Color
	fg       tcell.Color
	accent   tcell.Color
	headerBg tcell.Color
	headerFg tcell.Color
	footerBg tcell.Color
	footerFg tcell.Color
	sizeFg   tcell.Color
	buttonBg tcell.Color
	buttonFg tcell.Color
	modalBg  tcell.Color
	modalFg  tcell.Color

	// per kind colors for the tag column
	dirFg    tcell.Color
	hiddenFg tcell.Color
	flagFg   tcell.Color
}

const defaultThemeName = "nord"

var themes = map[string]Theme{
	"gruvbox-dark": {
		Name:     "Gruvbox Dark",
		bg:       tcell.NewRGBColor(40, 40, 40),
		fg:       tcell.NewRGBColor(235, 219, 178),
		accent:   tcell.NewRGBColor(214, 93, 14),
		headerBg: tcell.NewRGBColor(214, 93, 14),
		headerFg: tcell.NewRGBColor(60, 56, 54),
		footerBg: tcell.NewRGBColor(60, 56, 54),
		footerFg: tcell.NewRGBColor(235, 219, 178),
		sizeFg:   tcell.NewRGBColor(215, 153, 33),
		buttonBg: tcell.NewRGBColor(214, 93, 14),
		buttonFg: tcell.NewRGBColor(60, 56, 54),
		modalBg:  tcell.NewRGBColor(40, 40, 40),
		modalFg:  tcell.NewRGBColor(235, 219, 178),
		dirFg:    tcell.NewRGBColor(69, 133, 136),
		hiddenFg: tcell.NewRGBColor(215, 153, 33),
		flagFg:   tcell.NewRGBColor(204, 36, 29),
	},
	"nord": {
		Name:     "Nord",
		bg:       tcell.NewRGBColor(46, 52, 64),
		fg:       tcell.NewRGBColor(216, 222, 233),
		accent:   tcell.NewRGBColor(191, 97, 106),
		headerBg: tcell.NewRGBColor(129, 161, 193),
		headerFg: tcell.NewRGBColor(46, 52, 64),
		footerBg: tcell.NewRGBColor(67, 76, 94),
		footerFg: tcell.NewRGBColor(216, 222, 233),
		sizeFg:   tcell.NewRGBColor(235, 203, 139),
		buttonBg: tcell.NewRGBColor(129, 161, 193),
		buttonFg: tcell.NewRGBColor(46, 52, 64),
		modalBg:  tcell.NewRGBColor(46, 52, 64),
		modalFg:  tcell.NewRGBColor(216, 222, 233),
		dirFg:    tcell.NewRGBColor(136, 192, 208),
		hiddenFg: tcell.NewRGBColor(235, 203, 139),
		flagFg:   tcell.NewRGBColor(191, 97, 106),
	},
	"dracula": {
		Name:     "Dracula",
		bg:       tcell.NewRGBColor(40, 42, 54),
		fg:       tcell.NewRGBColor(248, 248, 242),
		accent:   tcell.NewRGBColor(255, 184, 108),
		headerBg: tcell.NewRGBColor(189, 147, 249),
		headerFg: tcell.NewRGBColor(40, 42, 54),
		footerBg: tcell.NewRGBColor(68, 71, 90),
		footerFg: tcell.NewRGBColor(248, 248, 242),
		sizeFg:   tcell.NewRGBColor(255, 184, 108),
		buttonBg: tcell.NewRGBColor(189, 147, 249),
		buttonFg: tcell.NewRGBColor(40, 42, 54),
		modalBg:  tcell.NewRGBColor(40, 42, 54),
		modalFg:  tcell.NewRGBColor(248, 248, 242),
		dirFg:    tcell.NewRGBColor(139, 233, 253),
		hiddenFg: tcell.NewRGBColor(241, 250, 140),
		flagFg:   tcell.NewRGBColor(255, 85, 85),
	},
}

func lookupTheme(name string) Theme {
	if th, ok := themes[name]; ok {
		return th
	}
	return themes[defaultThemeName]
}

// CheckTheme reports whether name selects a known theme. The empty name picks
// the default.
func CheckTheme(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := themes[name]; !ok {
		return goerr.New("unknown theme", goerr.V("theme", name), goerr.V("available", getThemeNames()))
	}
	return nil
}

// ThemeNames lists the selectable theme names.
func ThemeNames() []string {
	return getThemeNames()
}

// getThemeNames returns the theme keys in a stable order for the selector.
func getThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
