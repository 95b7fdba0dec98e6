package picker

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// ListBuilder returns the renderable for the given index and cursor position.
// It must return nil when the index is out of range.
type ListBuilder func(index int, cursor int) Renderable

// List displays a virtual list of renderables returned by a builder function.
//
// Items are built on demand for every layout pass, measured with
// [Renderable.Height] at the list's inner width, and drawn with
// [Renderable.Render] into exactly the rows they asked for. Builders are
// expected to be cheap and to return a fresh item whenever its content
// depends on the cursor.
type List struct {
	*Box

	Builder     ListBuilder
	gap         int
	snapToItems bool

	cursor int
	scroll listState

	changed func(index int)

	lastDraw []listDrawnItem
	lastRect Rect
}

type listState struct {
	// Index of the top item in the viewport.
	top int
	// Line offset into the top item; negative values mean the item is scrolled up.
	offset int
	// Pending scroll delta in lines to apply on the next draw.
	pending int
	// Ensure the cursor is visible on the next draw.
	wantsCursor bool
}

type listDrawnItem struct {
	index  int
	item   Renderable
	row    int
	height int
}

// NewList returns a new list.
func NewList() *List {
	return &List{
		Box:    NewBox(),
		cursor: -1,
	}
}

// SetBuilder sets the builder used to create list items on demand.
func (l *List) SetBuilder(builder ListBuilder) *List {
	l.Builder = builder
	l.MarkDirty()
	return l
}

// Clear removes all items from the list by clearing the builder and resetting
// scroll state.
func (l *List) Clear() *List {
	l.Builder = nil
	l.cursor = -1
	l.scroll = listState{}
	l.lastDraw = nil
	l.lastRect = Rect{}
	l.MarkDirty()
	return l
}

// SetGap sets the number of blank rows between items.
func (l *List) SetGap(gap int) *List {
	gap = max(gap, 0)
	if l.gap != gap {
		l.gap = gap
		l.MarkDirty()
	}
	return l
}

// SetSnapToItems toggles snapping so only fully visible items are shown.
func (l *List) SetSnapToItems(snap bool) *List {
	if l.snapToItems != snap {
		l.snapToItems = snap
		l.MarkDirty()
	}
	return l
}

// SetCursor sets the currently selected item index. -1 removes the cursor.
func (l *List) SetCursor(index int) *List {
	index = max(index, -1)
	if l.cursor != index {
		l.cursor = index
		l.ensureScroll()
		l.MarkDirty()
		if l.changed != nil {
			l.changed(l.cursor)
		}
	}
	return l
}

// Cursor returns the current cursor index.
func (l *List) Cursor() int {
	return l.cursor
}

// ItemCount returns the number of items the builder produces.
func (l *List) ItemCount() int {
	if l.Builder == nil {
		return 0
	}
	count := 0
	for l.Builder(count, l.cursor) != nil {
		count++
	}
	return count
}

// NextItem moves the cursor to the next item, if any.
func (l *List) NextItem() bool {
	if l.Builder == nil || l.Builder(l.cursor+1, l.cursor) == nil {
		return false
	}
	l.SetCursor(l.cursor + 1)
	return true
}

// PrevItem moves the cursor to the previous item, if any.
func (l *List) PrevItem() bool {
	if l.cursor <= 0 || l.Builder == nil || l.Builder(l.cursor-1, l.cursor) == nil {
		return false
	}
	l.SetCursor(l.cursor - 1)
	return true
}

// SetChangedFunc sets a handler that is called when the cursor changes.
func (l *List) SetChangedFunc(handler func(index int)) *List {
	l.changed = handler
	return l
}

// Height returns the number of rows needed to show all items at the given
// width, including the frame of the box.
func (l *List) Height(width int) int {
	top, bottom, left, right := l.frameSize()
	width -= left + right
	height := top + bottom
	if l.Builder == nil || width <= 0 {
		return height
	}
	for index := 0; ; index++ {
		item := l.Builder(index, l.cursor)
		if item == nil {
			break
		}
		if index > 0 {
			height += l.gap
		}
		height += l.itemHeight(item, width)
	}
	return height
}

// Draw draws this primitive onto the screen.
func (l *List) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)
	defer l.MarkClean()

	x, y, width, height := l.GetInnerRect()
	if width <= 0 || height <= 0 || l.Builder == nil {
		return
	}
	l.lastRect = Rect{X: x, Y: y, Width: width, Height: height}

	// In snap mode, ensure the cursor item is within the fully visible window.
	if l.snapToItems && l.scroll.wantsCursor && l.cursor >= 0 {
		visible := l.visibleItemCount(width, height)
		if l.cursor < l.scroll.top || l.cursor >= l.scroll.top+visible {
			l.scroll.top = l.cursor
			l.scroll.offset = 0
		}
		l.scroll.wantsCursor = false
	}

	pendingDelta := l.scroll.pending
	ah := -(l.scroll.offset + pendingDelta)
	l.scroll.pending = 0

	if ah > 0 && l.scroll.top == 0 {
		ah = 0
		l.scroll.offset = 0
	}

	children := make([]listDrawnItem, 0, 16)
	start := l.scroll.top
	if ah > 0 {
		// We scrolled upward into the previous top item; prepend enough items above.
		l.insertChildren(&children, width, ah)
		if len(children) > 0 {
			last := children[len(children)-1]
			ah = last.row + last.height + l.gap
		}
	}

	endReached := false
	for i := start; ; i++ {
		item := l.Builder(i, l.cursor)
		if item == nil {
			endReached = true
			break
		}

		itemHeight := l.itemHeight(item, width)
		children = append(children, listDrawnItem{
			index:  i,
			item:   item,
			row:    ah,
			height: itemHeight,
		})
		ah += itemHeight + l.gap

		if l.scroll.wantsCursor && i <= l.cursor {
			continue
		}
		if ah >= height {
			break
		}
	}

	if len(children) == 0 {
		l.scroll.top = 0
		l.scroll.offset = 0
		l.lastDraw = nil
		return
	}

	if l.snapToItems {
		// Drop partial items so only fully visible ones remain.
		children = trimToFullItems(children, height)
		if len(children) == 0 {
			l.scroll.top = 0
			l.scroll.offset = 0
			l.lastDraw = nil
			return
		}
	}

	// When scrolling down at the end, clamp so the last item aligns to the bottom.
	if endReached && pendingDelta > 0 {
		last := children[len(children)-1]
		bottom := last.row + last.height
		if children[0].row < 0 && bottom < height {
			shiftRows(children, height-bottom)
		}
	}

	// Adjust rows so the cursor item is fully visible.
	if l.scroll.wantsCursor {
		for _, child := range children {
			if child.index != l.cursor {
				continue
			}
			if bottom := child.row + child.height; bottom > height {
				shiftRows(children, height-bottom)
			}
			l.scroll.wantsCursor = false
			break
		}
	}

	// The first partially visible item becomes the top anchor.
	l.scroll.top, l.scroll.offset = children[0].index, 0
	for _, child := range children {
		if child.row <= 0 && child.row+child.height+l.gap > 0 {
			l.scroll.top = child.index
			l.scroll.offset = -child.row
			break
		}
	}

	l.lastDraw = children

	clipped := newClippedScreen(screen, x, y, width, height)
	for _, child := range children {
		child.item.Render(clipped, Rect{X: x, Y: y + child.row, Width: width, Height: child.height})
	}
}

func (l *List) itemHeight(item Renderable, width int) int {
	if item == nil {
		return 0
	}
	return max(item.Height(width), 1)
}

func (l *List) insertChildren(children *[]listDrawnItem, width int, ah int) {
	if l.scroll.top <= 0 {
		return
	}

	l.scroll.top--
	for ah > 0 {
		// Account for the gap between the inserted item and the current top.
		ah -= l.gap
		item := l.Builder(l.scroll.top, l.cursor)
		if item == nil {
			break
		}
		height := l.itemHeight(item, width)
		ah -= height
		entry := listDrawnItem{
			index:  l.scroll.top,
			item:   item,
			row:    ah,
			height: height,
		}
		*children = append([]listDrawnItem{entry}, *children...)

		if l.scroll.top == 0 {
			break
		}
		l.scroll.top--
	}

	l.scroll.offset = ah

	if l.scroll.top == 0 && ah > 0 {
		// We hit the absolute top; normalize rows to avoid overscrolling.
		l.scroll.offset = 0
		row := 0
		for i := range *children {
			(*children)[i].row = row
			row += (*children)[i].height + l.gap
		}
	}
}

func (l *List) ensureScroll() {
	if l.cursor < 0 {
		l.scroll.wantsCursor = false
		return
	}
	if l.cursor < l.scroll.top {
		l.scroll.top = l.cursor
		l.scroll.offset = 0
	}
	l.scroll.wantsCursor = true
}

func (l *List) scrollByItems(delta int, count int) {
	if l.Builder == nil {
		return
	}
	count = max(count, 1)
	for range count {
		if delta > 0 {
			if l.Builder(l.scroll.top+1, l.cursor) == nil {
				break
			}
			l.scroll.top++
		} else {
			if l.scroll.top <= 0 {
				break
			}
			l.scroll.top--
		}
	}
	l.scroll.offset = 0
	l.scroll.wantsCursor = false
	l.lastDraw = nil
}

func (l *List) visibleItemCount(width int, height int) int {
	if l.Builder == nil || width <= 0 || height <= 0 {
		return 0
	}
	total := 0
	count := 0
	for idx := l.scroll.top; ; idx++ {
		item := l.Builder(idx, l.cursor)
		if item == nil {
			break
		}
		if count > 0 {
			total += l.gap
		}
		itemHeight := l.itemHeight(item, width)
		if total+itemHeight > height {
			break
		}
		total += itemHeight
		count++
	}
	// Always move at least one item so navigation feels responsive.
	return max(count, 1)
}

// InputHandler handles cursor movement and paging.
func (l *List) InputHandler(event *tcell.EventKey) Command {
	_, _, width, height := l.GetInnerRect()
	switch event.Key() {
	case tcell.KeyDown:
		if !l.NextItem() {
			return nil
		}
	case tcell.KeyUp:
		if !l.PrevItem() {
			return nil
		}
	case tcell.KeyHome:
		if l.ItemCount() == 0 {
			return nil
		}
		l.SetCursor(0)
	case tcell.KeyEnd:
		count := l.ItemCount()
		if count == 0 {
			return nil
		}
		l.SetCursor(count - 1)
	case tcell.KeyPgDn:
		if l.snapToItems {
			l.scrollByItems(1, l.visibleItemCount(width, height))
		} else {
			l.scroll.pending += max(height, 1)
		}
	case tcell.KeyPgUp:
		if l.snapToItems {
			l.scrollByItems(-1, l.visibleItemCount(width, height))
		} else {
			l.scroll.pending -= max(height, 1)
		}
	default:
		return nil
	}
	l.MarkDirty()
	return RedrawCommand{}
}

// ScrollOffset returns the number of rows above the viewport at the last
// draw, counting gaps.
func (l *List) ScrollOffset() int {
	if l.Builder == nil || l.lastRect.Width <= 0 {
		return 0
	}
	rows := 0
	for index := range l.scroll.top {
		item := l.Builder(index, l.cursor)
		if item == nil {
			break
		}
		rows += l.itemHeight(item, l.lastRect.Width) + l.gap
	}
	return rows + l.scroll.offset
}

// IndexAtPoint returns the index of the item drawn at the given screen
// position during the last draw, or -1.
func (l *List) IndexAtPoint(x, y int) int {
	r := l.lastRect
	if len(l.lastDraw) == 0 || x < r.X || x >= r.X+r.Width || y < r.Y || y >= r.Y+r.Height {
		return -1
	}

	row := y - r.Y
	for _, child := range l.lastDraw {
		if row >= child.row && row < child.row+child.height {
			return child.index
		}
	}
	return -1
}

var _ Primitive = &List{}

func shiftRows(children []listDrawnItem, delta int) {
	for i := range children {
		children[i].row += delta
	}
}

func trimToFullItems(children []listDrawnItem, height int) []listDrawnItem {
	// Drop any items that start above the viewport.
	start := 0
	for start < len(children) && children[start].row < 0 {
		start++
	}
	children = children[start:]
	if len(children) == 0 {
		return children
	}

	// Realign the first item to row 0.
	shiftRows(children, -children[0].row)

	// Trim trailing items that don't fully fit.
	end := len(children)
	for end > 0 && children[end-1].row+children[end-1].height > height {
		end--
	}
	return children[:end]
}

// clippedScreen drops all drawing outside its rectangle.
type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.inBounds(x, y) {
		return str, 0
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		cluster := gr.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		if x >= s.x+s.width {
			return
		}
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.ShowCursor(-1, -1)
		return
	}
	s.Screen.ShowCursor(x, y)
}
