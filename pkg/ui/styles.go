package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Light values are darker so text stays readable on white terminals.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "55", Dark: "141"}  // brand violet
	ColorAccent  = lipgloss.AdaptiveColor{Light: "25", Dark: "75"}   // links, chips
	ColorSuccess = lipgloss.AdaptiveColor{Light: "28", Dark: "78"}   // green
	ColorWarning = lipgloss.AdaptiveColor{Light: "130", Dark: "214"} // amber
	ColorError   = lipgloss.AdaptiveColor{Light: "124", Dark: "203"} // red
	ColorInfo    = lipgloss.AdaptiveColor{Light: "30", Dark: "80"}   // teal
	ColorMuted   = lipgloss.AdaptiveColor{Light: "244", Dark: "243"}
	ColorDefault = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
)

// Icons
const (
	IconSuccess = "✔"
	IconError   = "✘"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconImage   = "🖼"
	IconLink    = "🔗"
	IconHome    = "←"
)

var (
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleInfo    lipgloss.Style
	StylePrimary lipgloss.Style
	StyleAccent  lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleSubtle  lipgloss.Style
	StyleBold    lipgloss.Style
	StyleTitle   lipgloss.Style
	StyleHeader  lipgloss.Style

	StyleTableHeader lipgloss.Style
	StyleTableRow    lipgloss.Style
	StyleTableRowAlt lipgloss.Style
	StyleTableBorder lipgloss.Style

	// Browser widgets: category tabs, result cards, tag chips and the preview overlay
	StyleTabActive   lipgloss.Style
	StyleTabInactive lipgloss.Style
	StyleCard        lipgloss.Style
	StyleCardActive  lipgloss.Style
	StyleCardInert   lipgloss.Style
	StyleChip        lipgloss.Style
	StyleOverlay     lipgloss.Style
)

func init() {
	SetTheme("auto")
}

// SetTheme applies the color_theme setting ("auto", "dark" or "light") and
// rebuilds every style. Unknown values behave like "auto".
func SetTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	fg := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	StyleSuccess = fg(ColorSuccess).Bold(true)
	StyleError = fg(ColorError).Bold(true)
	StyleWarning = fg(ColorWarning).Bold(true)
	StyleInfo = fg(ColorInfo)
	StylePrimary = fg(ColorPrimary).Bold(true)
	StyleAccent = fg(ColorAccent)
	StyleMuted = fg(ColorMuted)
	StyleSubtle = fg(ColorMuted).Italic(true)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleTitle = StylePrimary.Underline(true)
	StyleHeader = StylePrimary

	StyleTableHeader = StylePrimary.Align(lipgloss.Left)
	StyleTableRow = fg(ColorDefault)
	StyleTableRowAlt = StyleTableRow.Faint(true)
	StyleTableBorder = StyleMuted

	StyleTabActive = StylePrimary.Underline(true).Padding(0, 1)
	StyleTabInactive = StyleMuted.Padding(0, 1)

	StyleCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)
	StyleCardActive = StyleCard.BorderForeground(ColorPrimary)
	StyleCardInert = StyleCard.Faint(true)
	StyleChip = StyleAccent.
		Padding(0, 1).
		Border(lipgloss.RoundedBorder(), false, true)
	StyleOverlay = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
}

func FormatSuccess(msg string) string { return StyleSuccess.Render(IconSuccess + " " + msg) }
func FormatError(msg string) string   { return StyleError.Render(IconError + " " + msg) }
func FormatInfo(msg string) string    { return StyleInfo.Render(IconInfo + " " + msg) }
func FormatWarning(msg string) string { return StyleWarning.Render(IconWarning + " " + msg) }
func FormatTitle(title string) string { return StyleTitle.Render(title) }
func FormatMuted(text string) string  { return StyleMuted.Render(text) }

// FormatChips renders each non-empty label as a chip on one line
func FormatChips(labels ...string) string {
	chips := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != "" {
			chips = append(chips, StyleChip.Render(l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, chips...)
}
