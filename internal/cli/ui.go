package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette (ANSI 256).
var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorFail   = lipgloss.Color("167")
	colorBright = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240")
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleDim     = lipgloss.NewStyle().Foreground(colorFaint)
	StyleValue   = lipgloss.NewStyle().Foreground(colorBright)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorAccent)
	StyleWarning = lipgloss.NewStyle().Foreground(colorWarn)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleKey         = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconSwatch  = "██"
)

// status is one kind of single-line message: a colored icon followed by
// text, optionally styled as a whole.
type status struct {
	icon string
	mark lipgloss.Style
	body *lipgloss.Style
}

var (
	statusSuccess = status{icon: iconSuccess, mark: lipgloss.NewStyle().Foreground(colorOK)}
	statusError   = status{icon: iconError, mark: lipgloss.NewStyle().Foreground(colorFail)}
	statusWarning = status{icon: iconWarning, mark: lipgloss.NewStyle().Foreground(colorWarn), body: &StyleWarning}
	statusInfo    = status{icon: iconInfo, mark: lipgloss.NewStyle().Foreground(colorMuted)}
)

func (s status) print(w io.Writer, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if s.body != nil {
		text = s.body.Render(text)
	}
	fmt.Fprintln(w, s.mark.Render(s.icon)+" "+text)
}

func printSuccess(w io.Writer, format string, args ...any) { statusSuccess.print(w, format, args...) }
func printError(w io.Writer, format string, args ...any)   { statusError.print(w, format, args...) }
func printWarning(w io.Writer, format string, args ...any) { statusWarning.print(w, format, args...) }
func printInfo(w io.Writer, format string, args ...any)    { statusInfo.print(w, format, args...) }

// printDetail prints an indented, dimmed line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// swatch renders a color sample for a "#rrggbb" value.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(iconSwatch)
}
