package picker

import (
	"strconv"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/picker/keybind"
)

// SelectionKeys are the key bindings of a [SelectionList].
type SelectionKeys struct {
	Up       keybind.Keybind
	Down     keybind.Keybind
	PageUp   keybind.Keybind
	PageDown keybind.Keybind
	Top      keybind.Keybind
	Bottom   keybind.Keybind
	Select   keybind.Keybind
	Jump     keybind.Keybind
	Cancel   keybind.Keybind
}

// DefaultSelectionKeys returns the default bindings: arrows and j/k move,
// enter selects, a digit selects the option with that number, and escape
// cancels.
func DefaultSelectionKeys() SelectionKeys {
	return SelectionKeys{
		Up: keybind.NewKeybind(
			keybind.WithKeys("up", "k"),
			keybind.WithHelp("↑/k", "up"),
		),
		Down: keybind.NewKeybind(
			keybind.WithKeys("down", "j"),
			keybind.WithHelp("↓/j", "down"),
		),
		PageUp: keybind.NewKeybind(
			keybind.WithKeys("pgup"),
			keybind.WithHelp("pgup", "page up"),
		),
		PageDown: keybind.NewKeybind(
			keybind.WithKeys("pgdn"),
			keybind.WithHelp("pgdn", "page down"),
		),
		Top: keybind.NewKeybind(
			keybind.WithKeys("home", "g"),
			keybind.WithHelp("g", "top"),
		),
		Bottom: keybind.NewKeybind(
			keybind.WithKeys("end", "G"),
			keybind.WithHelp("G", "bottom"),
		),
		Select: keybind.NewKeybind(
			keybind.WithKeys("enter"),
			keybind.WithHelp("enter", "select"),
		),
		Jump: keybind.NewKeybind(
			keybind.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			keybind.WithHelp("1-9", "choose"),
		),
		Cancel: keybind.NewKeybind(
			keybind.WithKeys("esc", "q", "ctrl+c"),
			keybind.WithHelp("esc", "cancel"),
		),
	}
}

// SelectionList is a titled box showing numbered options, one
// [SelectionRow] per option, with an optional footer below them.
//
// The options are held by an inner [List] whose builder creates a fresh
// SelectionRow for every layout pass, so the row under the cursor is always
// drawn with the selection marker.
type SelectionList struct {
	*Box

	list      *List
	scrollBar *ScrollBar
	items     []string
	footer    Renderable

	Keys SelectionKeys

	selected  func(index int, label string) Command
	cancelled func() Command
}

// NewSelectionList returns a selection list with a rounded border.
func NewSelectionList() *SelectionList {
	s := &SelectionList{
		Box:       NewBox(),
		list:      NewList(),
		scrollBar: NewScrollBar(),
		Keys:      DefaultSelectionKeys(),
	}
	s.SetBorders(BordersAll)
	s.list.SetSnapToItems(true)
	s.list.SetBuilder(s.buildRow)
	return s
}

func (s *SelectionList) buildRow(index int, cursor int) Renderable {
	if index < 0 || index >= len(s.items) {
		return nil
	}
	return NewSelectionRow(index, s.items[index], index == cursor)
}

// SetItems replaces the options and moves the cursor to the first one.
func (s *SelectionList) SetItems(items ...string) *SelectionList {
	s.items = append(s.items[:0:0], items...)
	s.list.scroll = listState{}
	if len(s.items) == 0 {
		s.list.SetCursor(-1)
	} else {
		s.list.SetCursor(0)
	}
	s.MarkDirty()
	return s
}

// Items returns the options.
func (s *SelectionList) Items() []string {
	return s.items
}

// SetCursor moves the cursor to the option at index. Out of range indices
// are ignored.
func (s *SelectionList) SetCursor(index int) *SelectionList {
	if index < 0 || index >= len(s.items) {
		return s
	}
	s.list.SetCursor(index)
	s.MarkDirty()
	return s
}

// Cursor returns the index of the option under the cursor, or -1 when there
// are no options.
func (s *SelectionList) Cursor() int {
	return s.list.Cursor()
}

// SetGap sets the number of blank rows between options.
func (s *SelectionList) SetGap(gap int) *SelectionList {
	s.list.SetGap(gap)
	s.MarkDirty()
	return s
}

// SetFooter sets a renderable drawn below the options, separated by one
// blank row. nil removes it.
func (s *SelectionList) SetFooter(footer Renderable) *SelectionList {
	s.footer = footer
	s.MarkDirty()
	return s
}

// SetScrollBar sets the bar drawn in the rightmost column when the options
// don't fit. nil disables it.
func (s *SelectionList) SetScrollBar(bar *ScrollBar) *SelectionList {
	s.scrollBar = bar
	s.MarkDirty()
	return s
}

// SetSelectedFunc sets the handler called when an option is chosen. The
// returned command is executed by the application.
func (s *SelectionList) SetSelectedFunc(handler func(index int, label string) Command) *SelectionList {
	s.selected = handler
	return s
}

// SetCancelledFunc sets the handler called when the selection is cancelled.
func (s *SelectionList) SetCancelledFunc(handler func() Command) *SelectionList {
	s.cancelled = handler
	return s
}

// SetChangedFunc sets a handler called whenever the cursor moves.
func (s *SelectionList) SetChangedFunc(handler func(index int)) *SelectionList {
	s.list.SetChangedFunc(handler)
	return s
}

// ShortHelp returns the bindings worth showing in a one-line footer.
func (s *SelectionList) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{s.Keys.Up, s.Keys.Down, s.Keys.Jump, s.Keys.Select, s.Keys.Cancel}
}

// FullHelp returns all bindings grouped into navigation and actions.
func (s *SelectionList) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{s.Keys.Up, s.Keys.Down, s.Keys.PageUp, s.Keys.PageDown, s.Keys.Top, s.Keys.Bottom},
		{s.Keys.Jump, s.Keys.Select, s.Keys.Cancel},
	}
}

// Height returns the number of rows needed to show the frame, all options,
// and the footer at the given total width.
func (s *SelectionList) Height(width int) int {
	top, bottom, left, right := s.frameSize()
	width = max(width-left-right, 0)
	height := top + bottom + s.list.Height(width)
	if s.footer != nil {
		height += 1 + s.footer.Height(width)
	}
	return height
}

// Draw draws this primitive onto the screen.
func (s *SelectionList) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)
	defer s.MarkClean()

	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	footerHeight := 0
	if s.footer != nil {
		footerHeight = min(s.footer.Height(width), height)
	}
	listHeight := height - footerHeight
	if footerHeight > 0 && listHeight > 1 {
		listHeight--
	}

	// Options which don't fit give up one column for the scroll bar.
	listWidth := width
	if s.scrollBar != nil && width > 1 && s.list.Height(width) > listHeight {
		listWidth--
	}
	s.list.SetRect(x, y, listWidth, listHeight)
	s.list.Draw(screen)

	if listWidth < width {
		s.scrollBar.SetLengths(ScrollLengths{
			ContentLen:  s.list.Height(listWidth),
			ViewportLen: listHeight,
		}).SetOffset(s.list.ScrollOffset())
		s.scrollBar.Render(screen, Rect{X: x + listWidth, Y: y, Width: 1, Height: listHeight})
	}

	if footerHeight > 0 {
		s.footer.Render(screen, Rect{X: x, Y: y + height - footerHeight, Width: width, Height: footerHeight})
	}
}

// IsDirty returns whether the box or the options need redrawing.
func (s *SelectionList) IsDirty() bool {
	return s.Box.IsDirty() || s.list.IsDirty()
}

// InputHandler moves the cursor and chooses or cancels.
func (s *SelectionList) InputHandler(event *tcell.EventKey) Command {
	switch {
	case keybind.Matches(event, s.Keys.Up):
		return s.moved(s.list.PrevItem())
	case keybind.Matches(event, s.Keys.Down):
		return s.moved(s.list.NextItem())
	case keybind.Matches(event, s.Keys.Top):
		return s.moveTo(0)
	case keybind.Matches(event, s.Keys.Bottom):
		return s.moveTo(len(s.items) - 1)
	case keybind.Matches(event, s.Keys.PageUp):
		return s.moveTo(max(s.list.Cursor()-s.pageSize(), 0))
	case keybind.Matches(event, s.Keys.PageDown):
		return s.moveTo(min(s.list.Cursor()+s.pageSize(), len(s.items)-1))
	case keybind.Matches(event, s.Keys.Select):
		return s.choose(s.list.Cursor())
	case keybind.Matches(event, s.Keys.Jump):
		number, err := strconv.Atoi(event.Str())
		if err != nil || number < 1 || number > len(s.items) {
			return nil
		}
		s.list.SetCursor(number - 1)
		return AppendCommand(RedrawCommand{}, s.choose(number-1))
	case keybind.Matches(event, s.Keys.Cancel):
		if s.cancelled == nil {
			return nil
		}
		return s.cancelled()
	}
	return nil
}

func (s *SelectionList) moved(ok bool) Command {
	if !ok {
		return nil
	}
	s.MarkDirty()
	return RedrawCommand{}
}

func (s *SelectionList) moveTo(index int) Command {
	if index < 0 || index >= len(s.items) || index == s.list.Cursor() {
		return nil
	}
	s.list.SetCursor(index)
	return s.moved(true)
}

func (s *SelectionList) pageSize() int {
	_, _, width, height := s.list.GetInnerRect()
	return s.list.visibleItemCount(width, height)
}

func (s *SelectionList) choose(index int) Command {
	if index < 0 || index >= len(s.items) || s.selected == nil {
		return nil
	}
	return s.selected(index, s.items[index])
}

var _ Primitive = &SelectionList{}
