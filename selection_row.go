package picker

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// SelectionMarker is the glyph placed in front of the selected option.
const SelectionMarker = "›"

// SelectionRow is one numbered option of a selection list. Its label is
// word-wrapped to whatever width it is given, with continuation lines aligned
// to the start of the label:
//
//	› 3. Enable automatic
//	     updates for the
//	     workspace
//
// A SelectionRow is immutable. Every call to [SelectionRow.Height],
// [SelectionRow.Render], or [SelectionRow.Lines] wraps the label again from
// the same fields, so the rows reported by Height are exactly the rows
// painted by Render. It is safe to use from multiple goroutines.
type SelectionRow struct {
	index       int
	selected    bool
	prefix      string
	prefixWidth int
	label       string
	style       tcell.Style
}

// NewSelectionRow returns the row for the option at the zero-based index.
// The option is shown with its one-based number, prefixed by
// [SelectionMarker] and highlighted in [Theme].SelectedTextColor when
// selected. The unselected prefix has the same width as the selected one.
func NewSelectionRow(index int, label string, selected bool) *SelectionRow {
	marker := strings.Repeat(" ", StringWidth(SelectionMarker))
	style := tcell.StyleDefault
	if selected {
		marker = SelectionMarker
		style = style.Foreground(Styles.SelectedTextColor)
	}
	prefix := marker + " " + strconv.Itoa(index+1) + ". "

	return &SelectionRow{
		index:       index,
		selected:    selected,
		prefix:      prefix,
		prefixWidth: StringWidth(prefix),
		label:       label,
		style:       style,
	}
}

// Index returns the zero-based index of the option.
func (r *SelectionRow) Index() int {
	return r.index
}

// Selected returns whether the row is drawn as the selected option.
func (r *SelectionRow) Selected() bool {
	return r.selected
}

// Prefix returns the marker and number printed in front of the label.
func (r *SelectionRow) Prefix() string {
	return r.prefix
}

// PrefixWidth returns the screen width of the prefix.
func (r *SelectionRow) PrefixWidth() int {
	return r.prefixWidth
}

// Label returns the option's text.
func (r *SelectionRow) Label() string {
	return r.label
}

// Style returns the style applied to all text of the row.
func (r *SelectionRow) Style() tcell.Style {
	return r.style
}

// Lines returns the row wrapped to the given total width. The first line
// starts with the prefix, all others with as many spaces as the prefix is
// wide. The label always gets at least one cell per line, even when the
// prefix alone fills the width. The returned lines are owned by the caller.
func (r *SelectionRow) Lines(width int) []Line {
	labelWidth := max(width-r.prefixWidth, 1)

	initialIndent := NewLine(r.prefix, r.style)
	subsequentIndent := NewLine(strings.Repeat(" ", r.prefixWidth), r.style)

	opts := NewWrapOptions(labelWidth).
		WithInitialIndent(initialIndent).
		WithSubsequentIndent(subsequentIndent)
	return WrapLine(NewLine(r.label, r.style), opts)
}

// Height returns the number of lines the row needs at the given width. A
// row always takes at least one line.
func (r *SelectionRow) Height(width int) int {
	if width <= 0 {
		return 1
	}
	return len(r.Lines(width))
}

// Render draws the wrapped row into rect, one line per screen row. Lines
// beyond rect's height are not drawn. Nothing is drawn into an area without
// width.
func (r *SelectionRow) Render(screen tcell.Screen, rect Rect) {
	if rect.Width <= 0 {
		return
	}
	ColumnFromLines(r.Lines(rect.Width)).Render(screen, rect)
}

var _ Renderable = &SelectionRow{}
