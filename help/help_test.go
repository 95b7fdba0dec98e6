package help

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/picker"
	"github.com/xqrs/picker/internal/screentest"
	"github.com/xqrs/picker/keybind"
)

type testKeyMap struct {
	short []keybind.Keybind
	full  [][]keybind.Keybind
}

func (k testKeyMap) ShortHelp() []keybind.Keybind  { return k.short }
func (k testKeyMap) FullHelp() [][]keybind.Keybind { return k.full }

func bind(key, desc string, keys ...string) keybind.Keybind {
	return keybind.NewKeybind(keybind.WithKeys(keys...), keybind.WithHelp(key, desc))
}

var (
	upBind     = bind("↑/k", "up", "up", "k")
	downBind   = bind("↓/j", "down", "down", "j")
	selectBind = bind("enter", "select", "enter")
	cancelBind = bind("esc", "cancel", "esc")
)

func lineStrings(lines []picker.Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.String()
	}
	return out
}

func TestShortLine(t *testing.T) {
	h := New(nil)
	bindings := []keybind.Keybind{selectBind, cancelBind}

	assert.Equal(t, "enter select • esc cancel", h.ShortLine(bindings, 0).String())
	assert.Equal(t, "enter select • esc cancel", h.ShortLine(bindings, 25).String())
	assert.Equal(t, "enter select …", h.ShortLine(bindings, 20).String())
	assert.Equal(t, "enter select", h.ShortLine(bindings, 13).String())
	assert.Nil(t, h.ShortLine(bindings, 5))
	assert.Nil(t, h.ShortLine(nil, 0))
}

func TestShortLineSkipsDisabledAndEmpty(t *testing.T) {
	h := New(nil).SetShortSeparator(" | ")
	disabled := bind("q", "quit", "q")
	disabled.SetEnabled(false)
	noHelp := keybind.NewKeybind(keybind.WithKeys("x"))
	noKeys := bind("z", "nothing")
	descOnly := bind("", "scroll", "pgdn")

	line := h.ShortLine([]keybind.Keybind{disabled, selectBind, noHelp, noKeys, descOnly}, 0)
	assert.Equal(t, "enter select | scroll", line.String())
}

func TestShortLineStyles(t *testing.T) {
	h := New(nil)
	line := h.ShortLine([]keybind.Keybind{selectBind, cancelBind}, 0)
	require.NotEmpty(t, line)

	assert.Equal(t, "enter", line[0].Text)
	assert.Equal(t, h.Styles.ShortKeyStyle, line[0].Style)
	assert.Equal(t, h.Styles.ShortDescStyle, line[len(line)-1].Style)
	for _, segment := range line {
		if segment.Text == " • " {
			assert.Equal(t, h.Styles.ShortSeparatorStyle, segment.Style)
		}
	}
}

func TestFullLines(t *testing.T) {
	h := New(nil)
	groups := [][]keybind.Keybind{
		{upBind, downBind},
		{selectBind},
	}

	assert.Equal(t, []string{
		"↑/k up      enter select",
		"↓/j down    ",
	}, lineStrings(h.FullLines(groups, 0)))
}

func TestFullLinesStyles(t *testing.T) {
	key := tcell.StyleDefault.Bold(true)
	desc := tcell.StyleDefault.Dim(true)
	sep := tcell.StyleDefault.Italic(true)
	h := New(nil).SetFullSeparator(" | ").SetStyles(Styles{
		FullKeyStyle:       key,
		FullDescStyle:      desc,
		FullSeparatorStyle: sep,
	})

	lines := h.FullLines([][]keybind.Keybind{{upBind, selectBind}, {cancelBind}}, 0)

	assert.Equal(t, picker.Line{
		{Text: "↑/k  ", Style: key},
		{Text: " up    ", Style: desc},
		{Text: " | ", Style: sep},
		{Text: "esc", Style: key},
		{Text: " cancel", Style: desc},
	}, lines[0])
	assert.Equal(t, "enter select | ", lines[1].String())
}

func TestFullLinesTruncates(t *testing.T) {
	h := New(nil)
	groups := [][]keybind.Keybind{
		{upBind, downBind},
		{selectBind},
	}

	assert.Equal(t, []string{"↑/k up …", "↓/j down"}, lineStrings(h.FullLines(groups, 10)))
	assert.Equal(t, []string{"…"}, lineStrings(h.FullLines(groups, 3)))
	assert.Nil(t, h.FullLines([][]keybind.Keybind{{bind("", "")}}, 0))
}

func TestHelpLines(t *testing.T) {
	keyMap := testKeyMap{
		short: []keybind.Keybind{selectBind, cancelBind},
		full:  [][]keybind.Keybind{{upBind, downBind}, {selectBind, cancelBind}},
	}
	h := New(keyMap)

	assert.Equal(t, []string{"enter select • esc cancel"}, lineStrings(h.Lines(40)))
	assert.Equal(t, 1, h.Height(40))

	h.SetShowAll(true)
	assert.True(t, h.ShowAll())
	assert.Equal(t, 2, h.Height(40))

	h.SetKeyMap(testKeyMap{})
	h.SetShowAll(false)
	assert.Nil(t, h.Lines(40))
	assert.Zero(t, h.Height(40))

	assert.Zero(t, New(nil).Height(40))
}

func TestHelpRender(t *testing.T) {
	h := New(testKeyMap{short: []keybind.Keybind{selectBind, cancelBind}})
	screen := screentest.New(20, 2)

	h.Render(screen, picker.Rect{X: 0, Y: 1, Width: 20, Height: 1})

	assert.Equal(t, []string{"", "enter select …"}, screen.Rows())
	assert.Equal(t, picker.Styles.SecondaryTextColor, screen.CellAt(0, 1).Style.GetForeground())
}

func TestHelpCustomEllipsis(t *testing.T) {
	h := New(nil).SetEllipsis("...").SetFullSeparator(" ")
	groups := [][]keybind.Keybind{{selectBind}, {cancelBind}}

	assert.Equal(t, []string{"enter select esc cancel"}, lineStrings(h.FullLines(groups, 0)))
	assert.Equal(t, []string{"enter select ..."}, lineStrings(h.FullLines(groups, 16)))
}
