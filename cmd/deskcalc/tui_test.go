package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/deskcalc"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends each message to the model and returns the final model.
func press(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		assert.Nil(t, cmd)
		m = next.(model)
	}
	return m
}

func TestKeyLabel(t *testing.T) {
	cases := []struct {
		key   string
		label string
		ok    bool
	}{
		{"0", "0", true},
		{"9", "9", true},
		{".", ".", true},
		{"+", "+", true},
		{"-", "-", true},
		{"*", "×", true},
		{"x", "×", true},
		{"/", "÷", true},
		{"%", "%", true},
		{"=", "=", true},
		{"enter", "=", true},
		{"c", "C", true},
		{"esc", "C", true},
		{"n", "±", true},
		{"a", "", false},
		{"up", "", false},
		{"12", "", false},
	}
	for _, c := range cases {
		label, ok := keyLabel(c.key)
		assert.Equal(t, c.ok, ok, "key %q", c.key)
		assert.Equal(t, c.label, label, "key %q", c.key)
	}
}

func TestModelKeys(t *testing.T) {
	m := newModel(deskcalc.NewSession())
	m = press(t, m, runes("5"), runes("x"), runes("3"))
	assert.Equal(t, "5×3", m.sess.Display())
	assert.Equal(t, "5*3", m.sess.Expression())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "15", m.sess.Display())
	assert.Equal(t, []string{"5*3 = 15"}, m.sess.History().Entries())

	m = press(t, m, runes("n"))
	assert.Equal(t, "-15", m.sess.Display())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "0", m.sess.Display())

	// Keys that are not on the keypad change nothing.
	m = press(t, m, runes("z"), tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "0", m.sess.Display())
}

func TestModelRejectedKey(t *testing.T) {
	m := newModel(deskcalc.NewSession())
	next, cmd := m.key("z")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	var ke *deskcalc.KeyError
	require.ErrorAs(t, next.(model).err, &ke)
	assert.Equal(t, "z", ke.Label)
	assert.NoError(t, m.err)
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newModel(deskcalc.NewSession())
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, "key %v", msg)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModelView(t *testing.T) {
	m := newModel(deskcalc.NewSession())
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m = press(t, m, runes("5"), runes("+"), runes("3"), runes("="), runes("7"))

	v := m.View()
	assert.Contains(t, v, "5+3 = 8")
	assert.Contains(t, v, "7")
	assert.Contains(t, v, keyHint)
	for _, row := range keypad {
		for _, k := range row {
			assert.Contains(t, v, k)
		}
	}
}

func TestModelPanelWidth(t *testing.T) {
	m := newModel(deskcalc.NewSession(deskcalc.DisplayLimit(deskcalc.MinDisplayLimit)))
	assert.Equal(t, minPanelWidth, m.panelWidth())

	m = newModel(deskcalc.NewSession())
	assert.Equal(t, deskcalc.DefaultDisplayLimit+2, m.panelWidth())

	m.width = 40
	assert.Equal(t, 34, m.panelWidth())

	m.width = 10
	assert.Equal(t, minPanelWidth, m.panelWidth())
}
