// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/sightcalc/internal/entry"
	"github.com/litescript/sightcalc/internal/logging"
	"github.com/litescript/sightcalc/internal/state"
	"github.com/litescript/sightcalc/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewCalculator ViewMode = iota
	ViewHelp
)

// bellMsg reports that the bell was rung.
type bellMsg struct{}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager
	log   *logging.Logger
	bell  io.Writer // nil disables the audible bell

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	keys     keyMap
	help     help.Model

	lastFeedback entry.Feedback
	lastInput    string

	// Sub-models
	calculator CalculatorModel
	helpPage   HelpModel

	snapshot state.Snapshot
}

// New creates a new root UI model. A nil logger discards output.
func New(stateMgr *state.Manager, log *logging.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}
	m := Model{
		state:      stateMgr,
		log:        log,
		viewMode:   ViewCalculator,
		keys:       defaultKeyMap(),
		help:       help.New(),
		calculator: NewCalculatorModel(),
		helpPage:   NewHelpModel(),
	}
	m.refresh()
	return m
}

// WithBell makes rejected input write BEL to w.
func (m Model) WithBell(w io.Writer) Model {
	m.bell = w
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width

		// Header takes 3 lines, footer 2
		contentHeight := msg.Height - 5
		m.calculator = m.calculator.SetSize(msg.Width, contentHeight)
		m.helpPage = m.helpPage.SetSize(msg.Width, contentHeight)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.viewMode == ViewHelp && msg.String() != "ctrl+c" {
			m.viewMode = ViewCalculator
			m.help.ShowAll = false
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.viewMode == ViewHelp {
			m.viewMode = ViewCalculator
		} else {
			m.viewMode = ViewHelp
		}
		m.help.ShowAll = m.viewMode == ViewHelp
		return m, nil
	}

	if m.viewMode != ViewCalculator {
		return m, nil
	}

	in, label, ok := m.inputFor(msg)
	if !ok {
		return m, nil
	}
	return m.apply(in, label)
}

// inputFor maps a key press to a keypad input and the label of the
// on-screen button it corresponds to.
func (m Model) inputFor(msg tea.KeyMsg) (state.Input, string, bool) {
	s := msg.String()
	switch {
	case key.Matches(msg, m.keys.Digit, m.keys.Sign, m.keys.Point):
		return state.Digit([]rune(s)[0]), s, true
	case key.Matches(msg, m.keys.Enter):
		return state.Press(state.OpEnter), "Enter", true
	case key.Matches(msg, m.keys.ClearEntry):
		return state.Press(state.OpClearEntry), "CE", true
	case key.Matches(msg, m.keys.ClearAll):
		return state.Press(state.OpClearAll), "C", true
	case key.Matches(msg, m.keys.Fold):
		return state.Press(state.OpFoldMinutes), "°", true
	}

	active := m.snapshot.Active
	var target entry.Field
	switch {
	case key.Matches(msg, m.keys.Left, m.keys.Right):
		target = active.Partner()
	case key.Matches(msg, m.keys.Up):
		target = shiftRow(active, -1)
	case key.Matches(msg, m.keys.Down):
		target = shiftRow(active, 1)
	case key.Matches(msg, m.keys.NextField):
		target = active.Next()
	case key.Matches(msg, m.keys.PrevField):
		target = active.Prev()
	default:
		return state.Input{}, "", false
	}
	if !active.Valid() {
		target = entry.LHADegrees
	}
	return state.SelectField(target), "", true
}

// shiftRow moves between LHA, Lat and Dec keeping the degrees/minutes column.
func shiftRow(f entry.Field, dir int) entry.Field {
	if !f.Valid() {
		return entry.LHADegrees
	}
	i := (int(f) - 1 + 2*dir + 2*entry.FieldCount) % entry.FieldCount
	return entry.Field(i + 1)
}

func (m Model) apply(in state.Input, label string) (tea.Model, tea.Cmd) {
	fb := m.state.Apply(in)
	m.lastFeedback = fb
	m.lastInput = in.String()
	m.calculator = m.calculator.SetPressed(label)
	m.refresh()

	if fb != entry.FeedbackRejected {
		return m, nil
	}
	m.log.Debug("rejected %s on %s", in, m.snapshot.Active)
	return m, m.ringBell()
}

func (m Model) ringBell() tea.Cmd {
	if m.bell == nil {
		return nil
	}
	w := m.bell
	return func() tea.Msg {
		_, _ = io.WriteString(w, "\a")
		return bellMsg{}
	}
}

func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.calculator = m.calculator.UpdateData(m.snapshot)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewHelp:
		content = m.helpPage.View()
	default:
		content = m.calculator.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("  Sight Calc")
	ver := dimStyle.Render(fmt.Sprintf(" v%s · Law of Cosines sight reduction", version.Version))
	return "\n" + title + ver + "\n"
}

func (m Model) renderFooter() string {
	var parts []string
	if status := m.renderFeedback(); status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, m.help.View(m.keys))
	return "  " + strings.Join(parts, dimStyle.Render("  |  "))
}

func (m Model) renderFeedback() string {
	if m.lastInput == "" {
		return ""
	}
	text := fmt.Sprintf("%s: %s", m.lastInput, m.lastFeedback)
	switch m.lastFeedback {
	case entry.FeedbackRejected:
		return errorStyle.Render(text)
	case entry.FeedbackAdvanced:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorAdvance)).Render(text)
	default:
		return dimStyle.Render(text)
	}
}

// Snapshot returns the state last rendered.
func (m Model) Snapshot() state.Snapshot {
	return m.snapshot
}
