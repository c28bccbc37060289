package ui

import "github.com/charmbracelet/lipgloss"

// Calculator palette
const (
	colorAccent   = "#9D4EDD"
	colorDim      = "60"
	colorActive   = "#FFD700" // Active field background
	colorDigitKey = "#1E6FD9"
	colorOpKey    = "#F08A24"
	colorReject   = "#E84A27"
	colorAdvance  = "#7CFC00"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDim))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(5)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorReject))

	fieldStyle = lipgloss.NewStyle().
			Width(12).
			Align(lipgloss.Right).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("252")).
			Padding(0, 1)

	activeFieldStyle = fieldStyle.
				Background(lipgloss.Color(colorActive)).
				Bold(true)

	overflowFieldStyle = fieldStyle.
				Foreground(lipgloss.Color(colorReject))

	keyStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color(colorDigitKey))

	opKeyStyle = keyStyle.
			Width(7).
			Background(lipgloss.Color(colorOpKey))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorDim)).
			Padding(0, 1)
)
