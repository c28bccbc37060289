package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/sightcalc/internal/version"
)

var helpParagraphs = []struct {
	text      string
	important bool
}{
	{text: "A calculator for sight reduction by the Law of Cosines, intended for students of celestial navigation. " +
		"No almanac data is used: work out Local Hour Angle and declination first, and have an approximate latitude ready."},
	{text: "Enter each angle either as decimal degrees or as degrees and minutes. " +
		"Enter moves to the next field, or select any field directly with the arrow keys. " +
		"The active field is highlighted in yellow."},
	{text: "Enter North latitude as positive and South latitude as NEGATIVE. " +
		"The formula uses the absolute latitude but needs the hemisphere to resolve Zn. " +
		"Declination is positive when it has the same name as latitude and negative when contrary.", important: true},
	{text: "Results update on every keystroke, so for repeated sights only re-enter what changed. " +
		"Press C to clear everything and start over."},
}

// HelpModel renders the usage page.
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help page.
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// SetSize updates the viewport size.
func (m HelpModel) SetSize(width, height int) HelpModel {
	m.width = width
	m.height = height
	return m
}

// View renders the help page.
func (m HelpModel) View() string {
	width := m.width - 4
	if width > 72 {
		width = 72
	}
	if width < 20 {
		width = 20
	}

	body := lipgloss.NewStyle().Width(width)
	important := body.Foreground(lipgloss.Color(colorActive))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sight Calc " + version.Version))
	b.WriteString("\n\n")
	for _, p := range helpParagraphs {
		if p.important {
			b.WriteString(important.Render(p.text))
		} else {
			b.WriteString(body.Render(p.text))
		}
		b.WriteString("\n\n")
	}
	b.WriteString(errorStyle.Bold(true).Render("Not for use in actual navigation."))

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}
