package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/sightcalc/internal/astro"
	"github.com/litescript/sightcalc/internal/entry"
	"github.com/litescript/sightcalc/internal/state"
)

// keypadRows is the on-screen keypad layout.
var keypadRows = [][]string{
	{"7", "8", "9", "Enter"},
	{"4", "5", "6", "CE"},
	{"1", "2", "3", "C"},
	{"-", "0", ".", "°"},
}

func isOperatorKey(label string) bool {
	switch label {
	case "Enter", "CE", "C", "°":
		return true
	}
	return false
}

// CalculatorModel renders the results, the six entry fields and the keypad.
type CalculatorModel struct {
	width    int
	height   int
	snapshot state.Snapshot
	pressed  string // Label of the last keypad button pressed
}

// NewCalculatorModel creates a new calculator view.
func NewCalculatorModel() CalculatorModel {
	return CalculatorModel{}
}

// SetSize updates the viewport size.
func (m CalculatorModel) SetSize(width, height int) CalculatorModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m CalculatorModel) UpdateData(snapshot state.Snapshot) CalculatorModel {
	m.snapshot = snapshot
	return m
}

// SetPressed highlights a keypad button.
func (m CalculatorModel) SetPressed(label string) CalculatorModel {
	m.pressed = label
	return m
}

// View renders the calculator.
func (m CalculatorModel) View() string {
	results := panelStyle.Render(m.renderResults())
	fields := panelStyle.Render(m.renderFields())
	keypad := m.renderKeypad()

	return lipgloss.JoinVertical(lipgloss.Left, results, fields, "", keypad)
}

func (m CalculatorModel) renderResults() string {
	var b strings.Builder
	d := m.snapshot.Display
	r := m.snapshot.Reduction

	b.WriteString(sectionStyle.Render("Intercept and Azimuth by Law of Cosines"))
	b.WriteString("\n")

	hc := labelStyle.Render("Hc:")
	if r.HcValid() {
		hc += resultStyle.Render(fmt.Sprintf("%s°   %s° %s'", d.Hc, d.HcDeg, d.HcMin))
	} else {
		hc += errorStyle.Render(d.Hc)
	}
	b.WriteString(hc + "\n")

	b.WriteString(labelStyle.Render("Z:") + m.renderAzimuth(d.Z, r) + "\n")
	b.WriteString(labelStyle.Render("Zn:") + m.renderAzimuth(d.Zn, r))

	return b.String()
}

func (m CalculatorModel) renderAzimuth(s string, r astro.Reduction) string {
	if !r.ZValid() {
		return errorStyle.Render(s)
	}
	return resultStyle.Render(s + "°")
}

func (m CalculatorModel) renderFields() string {
	var b strings.Builder

	header := labelStyle.Render("") + " " +
		fieldHeaderStyle().Render("Degrees") + " " +
		fieldHeaderStyle().Render("Minutes")
	b.WriteString(dimStyle.Render(header))

	for _, deg := range []entry.Field{entry.LHADegrees, entry.LatDegrees, entry.DecDegrees} {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(deg.Quantity().String() + ":"))
		b.WriteString(" " + m.renderField(deg))
		b.WriteString(" " + m.renderField(deg.Partner()))
	}

	return b.String()
}

func fieldHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Width(fieldStyle.GetWidth()).Align(lipgloss.Right).Padding(0, 1)
}

func (m CalculatorModel) renderField(f entry.Field) string {
	text := m.snapshot.Buffers.Get(f)
	switch {
	case text == entry.OverflowMarker:
		return overflowFieldStyle.Render(text)
	case f == m.snapshot.Active:
		return activeFieldStyle.Render(text)
	default:
		return fieldStyle.Render(text)
	}
}

func (m CalculatorModel) renderKeypad() string {
	var rows []string
	for _, row := range keypadRows {
		var keys []string
		for _, label := range row {
			style := keyStyle
			if isOperatorKey(label) {
				style = opKeyStyle
			}
			if label == m.pressed {
				style = style.Reverse(true)
			}
			keys = append(keys, style.Render(label))
		}
		rows = append(rows, "  "+strings.Join(keys, " "))
	}
	return strings.Join(rows, "\n")
}
