package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  enter ", "enter"},
		{"Return", "enter"},
		{"ESC", "esc"},
		{"escape", "esc"},
		{"PageUp", "pgup"},
		{"pagedown", "pgdn"},
		{"space", " "},
		{"Ctrl+C", "ctrl+c"},
		{"control+shift+Tab", "ctrl+shift+tab"},
		{"ctrl+ctrl+a", "ctrl+a"},
		{"alt + X", "alt+x"},
		{"+", "+"},
		{"ctrl+", ""},
		{"Rune[x]", "x"},
		{"backtab", "shift+tab"},
		{"G", "G"},
		{"F1", "f1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeKey(tt.in))
		})
	}
}

func TestNewKeybind(t *testing.T) {
	kb := NewKeybind(WithKeys("Enter", "", "ctrl+J"), WithHelp("enter", "select"))

	assert.Equal(t, []string{"enter", "ctrl+j"}, kb.Keys())
	assert.Equal(t, Help{Key: "enter", Desc: "select"}, kb.Help())
	assert.True(t, kb.Enabled())

	kb.SetKeys("q")
	kb.SetHelp("q", "quit")
	assert.Equal(t, []string{"q"}, kb.Keys())
	assert.Equal(t, "quit", kb.Help().Desc)

	kb.SetEnabled(false)
	assert.False(t, kb.Enabled())
	assert.Equal(t, []string{"q"}, kb.Keys())
	kb.SetEnabled(true)
	assert.True(t, kb.Enabled())

	assert.False(t, NewKeybind(WithHelp("x", "nothing")).Enabled())
	assert.False(t, NewKeybind(WithKeys("x"), WithDisabled()).Enabled())
}

func TestMatches(t *testing.T) {
	down := NewKeybind(WithKeys("down", "j"))
	quit := NewKeybind(WithKeys("esc", "ctrl+c"))
	bottom := NewKeybind(WithKeys("G"))
	prev := NewKeybind(WithKeys("shift+tab"))
	alt := NewKeybind(WithKeys("alt+x"))

	tests := []struct {
		name    string
		event   *tcell.EventKey
		keybind Keybind
		want    bool
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone), down, true},
		{"rune", tcell.NewEventKey(tcell.KeyRune, "j", tcell.ModNone), down, true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, "k", tcell.ModNone), down, false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, "", tcell.ModNone), quit, true},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, "c", tcell.ModCtrl), quit, true},
		{"plain c", tcell.NewEventKey(tcell.KeyRune, "c", tcell.ModNone), quit, false},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, "G", tcell.ModShift), bottom, true},
		{"lower case", tcell.NewEventKey(tcell.KeyRune, "g", tcell.ModNone), bottom, false},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, "", tcell.ModNone), prev, true},
		{"tab", tcell.NewEventKey(tcell.KeyTab, "", tcell.ModNone), prev, false},
		{"alt", tcell.NewEventKey(tcell.KeyRune, "x", tcell.ModAlt), alt, true},
		{"enter is not ctrl+m", tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone), NewKeybind(WithKeys("ctrl+m")), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.event, tt.keybind))
		})
	}
}

func TestMatchesSkipsDisabled(t *testing.T) {
	event := tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone)
	kb := NewKeybind(WithKeys("enter"))

	assert.True(t, Matches(event, kb))
	kb.SetEnabled(false)
	assert.False(t, Matches(event, kb))
	assert.True(t, Matches(event, kb, NewKeybind(WithKeys("esc", "enter"))))

	assert.False(t, Matches(nil, kb))
	assert.False(t, Matches(event))
}
