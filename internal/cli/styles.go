package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette - keeping it minimal and accessible.
var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorSuccess = lipgloss.Color("34")  // Green
	colorWarning = lipgloss.Color("214") // Orange
	colorMuted   = lipgloss.Color("240") // Dark gray
)

const (
	symbolCheck  = "✓"
	symbolCross  = "✗"
	symbolBullet = "•"
)

// styler renders human-readable output. Styling is disabled when the writer
// is not a terminal or NO_COLOR is set, so piped output stays plain.
type styler struct {
	enabled bool
	title   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

func newStyler(w io.Writer) styler {
	s := styler{enabled: isTerminal(w) && os.Getenv("NO_COLOR") == ""}
	if !s.enabled {
		return s
	}

	renderer := lipgloss.NewRenderer(w)
	s.title = renderer.NewStyle().Bold(true).Foreground(colorPrimary)
	s.success = renderer.NewStyle().Foreground(colorSuccess)
	s.warning = renderer.NewStyle().Foreground(colorWarning)
	s.muted = renderer.NewStyle().Foreground(colorMuted)
	return s
}

func (s styler) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func (s styler) Title(text string) string   { return s.render(s.title, text) }
func (s styler) Success(text string) string { return s.render(s.success, text) }
func (s styler) Warning(text string) string { return s.render(s.warning, text) }
func (s styler) Muted(text string) string   { return s.render(s.muted, text) }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
