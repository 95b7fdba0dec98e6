package picker

import "github.com/gdamore/tcell/v3"

// Rect is a rectangular screen area.
type Rect struct {
	X, Y, Width, Height int
}

// Renderable is content which can report the number of rows it needs for a
// given width and draw itself into a rectangle of the screen.
//
// Implementations must be consistent: for any width w > 0, Render into a
// rectangle of width w paints exactly Height(w) rows.
type Renderable interface {
	// Height returns the number of rows needed at the given width.
	Height(width int) int
	// Render draws the content into rect, starting at its top-left corner.
	Render(screen tcell.Screen, rect Rect)
}

// Height returns 1. A line never wraps by itself.
func (l Line) Height(width int) int {
	return 1
}

// Render prints the line into the first row of rect, clipped to its width.
func (l Line) Render(screen tcell.Screen, rect Rect) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	printLine(screen, l, rect.X, rect.Y, rect.Width)
}

// Column stacks renderables from top to bottom.
type Column []Renderable

// NewColumn returns a column holding the given children.
func NewColumn(children ...Renderable) Column {
	return Column(children)
}

// ColumnFromLines returns a column with one row per line.
func ColumnFromLines(lines []Line) Column {
	column := make(Column, 0, len(lines))
	for _, line := range lines {
		column = append(column, line)
	}
	return column
}

// Push appends a child to the bottom of the column.
func (c *Column) Push(child Renderable) {
	*c = append(*c, child)
}

// Height returns the sum of the children's heights.
func (c Column) Height(width int) (height int) {
	for _, child := range c {
		height += child.Height(width)
	}
	return
}

// Render draws the children one below the other, each at its own height.
// Children which start below the bottom of rect are not drawn, the last one
// drawn is cut off at the bottom. Rows of rect below the last child are left
// untouched.
func (c Column) Render(screen tcell.Screen, rect Rect) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	y, bottom := rect.Y, rect.Y+rect.Height
	for _, child := range c {
		if y >= bottom {
			return
		}
		height := min(child.Height(rect.Width), bottom-y)
		if height <= 0 {
			continue
		}
		child.Render(screen, Rect{X: rect.X, Y: y, Width: rect.Width, Height: height})
		y += height
	}
}
