package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/deskcalc"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#89b4fa")).
			Padding(1, 2)

	historyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cdd6f4")).
			Align(lipgloss.Right)

	displayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f5e0dc")).
			Background(lipgloss.Color("#313244")).
			Align(lipgloss.Right).
			MarginTop(1).
			MarginBottom(1)

	keyStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("#1e1e2e")).
			MarginRight(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// Key colors follow the button classes of a desk calculator.
var (
	numKeyStyle  = keyStyle.Background(lipgloss.Color("#45475a")).Foreground(lipgloss.Color("#cdd6f4"))
	opKeyStyle   = keyStyle.Background(lipgloss.Color("#89b4fa"))
	funcKeyStyle = keyStyle.Background(lipgloss.Color("#f38ba8"))
	eqKeyStyle   = keyStyle.Background(lipgloss.Color("#a6e3a1"))
)

var keypad = [][]string{
	{"C", "±", "%", "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", "="},
}

const keyHint = "enter = · c clear · n ± · x × · q quit"

// minPanelWidth is the narrowest the display panel gets.
const minPanelWidth = 24

func runTUI(cmd *cobra.Command, args []string) (err error) {
	s, done, err := newSession()
	if err != nil {
		return err
	}
	defer closeLog(done, &err)
	p := tea.NewProgram(newModel(s), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok {
		return m.err
	}
	return nil
}

// model is the bubbletea model of the calculator. It forwards key presses to
// the session and renders its display and history.
type model struct {
	sess  *deskcalc.Session
	width int
	// err is the error that stopped the program, if any.
	err error
}

func newModel(s *deskcalc.Session) model {
	return model{sess: s}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		if label, ok := keyLabel(msg.String()); ok {
			return m.key(label)
		}
	}
	return m, nil
}

// key applies a key label to the session. A label the session rejects stops
// the program.
func (m model) key(label string) (tea.Model, tea.Cmd) {
	if err := m.sess.Key(label); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// keyLabel maps a terminal key to a calculator key label.
func keyLabel(key string) (string, bool) {
	switch key {
	case "enter", "=":
		return "=", true
	case "esc", "c", "C":
		return "C", true
	case "n", "_":
		return "±", true
	case "*", "x", "X":
		return "×", true
	case "/":
		return "÷", true
	case "+", "-", ".", "%":
		return key, true
	}
	if len(key) == 1 && '0' <= key[0] && key[0] <= '9' {
		return key, true
	}
	return "", false
}

func (m model) panelWidth() int {
	w := max(minPanelWidth, m.sess.DisplayLimit()+2)
	if m.width > 0 {
		// Leave room for the frame's border and padding.
		w = min(w, max(minPanelWidth, m.width-6))
	}
	return w
}

func (m model) View() string {
	w := m.panelWidth()
	var parts []string
	if h := m.sess.History().Render(); h != "" {
		parts = append(parts, historyStyle.Width(w).Render(h))
	}
	parts = append(parts, displayStyle.Width(w).Render(m.sess.Display()))
	parts = append(parts, renderKeypad())
	body := lipgloss.JoinVertical(lipgloss.Right, parts...)
	return frameStyle.Render(body) + "\n" + hintStyle.Render(keyHint) + "\n"
}

func renderKeypad() string {
	rows := make([]string, 0, len(keypad))
	for _, row := range keypad {
		keys := make([]string, 0, len(row))
		for _, k := range row {
			keys = append(keys, keyStyleFor(k).Render(k))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rows...)
}

func keyStyleFor(label string) lipgloss.Style {
	tok, err := deskcalc.Classify(label)
	if err != nil {
		return keyStyle
	}
	switch tok.Kind {
	case deskcalc.TokenOperator:
		return opKeyStyle
	case deskcalc.TokenEquals:
		return eqKeyStyle
	case deskcalc.TokenClear, deskcalc.TokenNegate, deskcalc.TokenPercent:
		return funcKeyStyle
	default:
		return numKeyStyle
	}
}
