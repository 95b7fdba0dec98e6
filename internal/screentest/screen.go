// Package screentest provides an in-memory tcell screen for tests.
package screentest

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// Cell is one cell of the screen.
type Cell struct {
	Text  string
	Style tcell.Style
	Width int
}

// Screen records what is put on it. Methods which are not overridden panic,
// so a test fails loudly when drawing code starts using them.
type Screen struct {
	tcell.Screen

	mu      sync.Mutex
	width   int
	height  int
	cells   []Cell
	events  chan tcell.Event
	title   string
	shows   int
	clears  int
	stopped bool
}

// New returns a blank screen of the given size.
func New(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		events: make(chan tcell.Event, 64),
	}
	s.Clear()
	s.clears = 0
	return s
}

func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// SetSize changes the size and blanks the screen.
func (s *Screen) SetSize(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	s.mu.Unlock()
	s.Clear()
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// Put stores the first grapheme cluster of str at (x,y) and returns the
// remainder and the cluster's width.
func (s *Screen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	cluster, rest, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inBounds(x, y) || cluster == "" {
		return rest, 0
	}
	s.cells[y*s.width+x] = Cell{Text: cluster, Style: style, Width: width}
	return rest, width
}

func (s *Screen) Get(x, y int) (string, tcell.Style, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inBounds(x, y) {
		return "", tcell.StyleDefault, 0
	}
	c := s.cells[y*s.width+x]
	return c.Text, c.Style, c.Width
}

func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells = make([]Cell, s.width*s.height)
	for i := range s.cells {
		s.cells[i] = Cell{Text: " ", Style: tcell.StyleDefault, Width: 1}
	}
	s.clears++
}

func (s *Screen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows++
}

func (s *Screen) HideCursor() {}

func (s *Screen) ShowCursor(x, y int) {}

func (s *Screen) EventQ() chan tcell.Event {
	return s.events
}

func (s *Screen) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
}

// InjectKey queues a key event.
func (s *Screen) InjectKey(key tcell.Key, str string, mod tcell.ModMask) {
	s.events <- tcell.NewEventKey(key, str, mod)
}

// InjectRune queues a printable key.
func (s *Screen) InjectRune(str string) {
	s.InjectKey(tcell.KeyRune, str, tcell.ModNone)
}

// CellAt returns the cell at (x,y).
func (s *Screen) CellAt(x, y int) Cell {
	text, style, width := s.Get(x, y)
	return Cell{Text: text, Style: style, Width: width}
}

// Row returns the text of row y. The cell after a wide cluster is skipped.
func (s *Screen) Row(y int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if y < 0 || y >= s.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < s.width; x++ {
		c := s.cells[y*s.width+x]
		b.WriteString(c.Text)
		if c.Width > 1 {
			x += c.Width - 1
		}
	}
	return b.String()
}

// Rows returns the text of every row with trailing spaces removed.
func (s *Screen) Rows() []string {
	_, height := s.Size()
	rows := make([]string, height)
	for y := range rows {
		rows[y] = strings.TrimRight(s.Row(y), " ")
	}
	return rows
}

// LastTitle returns the last terminal title set.
func (s *Screen) LastTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// Shows returns how often the screen was shown.
func (s *Screen) Shows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shows
}

// Clears returns how often the screen was cleared since it was created.
func (s *Screen) Clears() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clears
}

// Stopped reports whether Fini was called.
func (s *Screen) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

var _ tcell.Screen = &Screen{}
