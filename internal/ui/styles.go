package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
)

// menuStyles colours the menu chrome only. Narration is never styled.
type menuStyles struct {
	enabled bool
}

func newMenuStyles(enabled bool) menuStyles {
	return menuStyles{enabled: enabled}
}

func (s menuStyles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func (s menuStyles) number(text string) string { return s.render(green, text) }
func (s menuStyles) prompt(text string) string { return s.render(brightGreen, text) }
func (s menuStyles) diag(text string) string   { return s.render(dimGreen, text) }

// IsTerminal reports whether w writes to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
