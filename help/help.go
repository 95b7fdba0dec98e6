// Package help renders key binding help as styled lines, either as a single
// "key desc • key desc" line or as aligned columns.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/picker"
	"github.com/xqrs/picker/keybind"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

// Help is a renderable footer listing the bindings of a key map.
type Help struct {
	Styles Styles

	keyMap         KeyMap
	showAll        bool
	shortSeparator string
	fullSeparator  string
	ellipsis       string
}

func New(keyMap KeyMap) *Help {
	return &Help{
		Styles:         DefaultStyles(),
		keyMap:         keyMap,
		shortSeparator: " • ",
		fullSeparator:  "    ",
		ellipsis:       "…",
	}
}

// SetKeyMap sets the key map whose bindings are listed.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	return h
}

// ShowAll returns whether full help mode is enabled.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetShortSeparator sets the separator used in short help mode.
func (h *Help) SetShortSeparator(separator string) *Help {
	h.shortSeparator = separator
	return h
}

// SetFullSeparator sets the separator used between full help columns.
func (h *Help) SetFullSeparator(separator string) *Help {
	h.fullSeparator = separator
	return h
}

// SetEllipsis sets the marker appended when bindings are left out.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	return h
}

// SetStyles sets help styles.
func (h *Help) SetStyles(styles Styles) *Help {
	h.Styles = styles
	return h
}

// Lines returns the help for the given width. A width of 0 or less means
// unlimited.
func (h *Help) Lines(width int) []picker.Line {
	if h.keyMap == nil {
		return nil
	}
	if h.showAll {
		return h.FullLines(h.keyMap.FullHelp(), width)
	}
	if line := h.ShortLine(h.keyMap.ShortHelp(), width); len(line) > 0 {
		return []picker.Line{line}
	}
	return nil
}

// Height returns the number of lines of help at the given width.
func (h *Help) Height(width int) int {
	return len(h.Lines(width))
}

// Render draws the help into rect.
func (h *Help) Render(screen tcell.Screen, rect picker.Rect) {
	if rect.Width <= 0 {
		return
	}
	picker.ColumnFromLines(h.Lines(rect.Width)).Render(screen, rect)
}

// ShortLine joins the enabled bindings into one line. Bindings which would
// not fit into maxWidth are replaced by the ellipsis.
func (h *Help) ShortLine(bindings []keybind.Keybind, maxWidth int) picker.Line {
	items := make([]picker.Line, 0, len(bindings))
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		if item := itemLine(kb, h.Styles.ShortKeyStyle, h.Styles.ShortDescStyle); len(item) > 0 {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	sepText := h.shortSeparator
	if sepText == "" {
		sepText = " "
	}
	sep := picker.NewLine(sepText, h.Styles.ShortSeparatorStyle)

	out := items[0].Clone()
	if maxWidth > 0 && out.Width() > maxWidth {
		return nil
	}
	for _, item := range items[1:] {
		candidate := append(append(out.Clone(), sep...), item...)
		if maxWidth > 0 && candidate.Width() > maxWidth {
			return append(out, h.truncationTail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

// FullLines lays out the groups side by side as columns of "key desc" rows.
// Columns which would not fit into maxWidth are left out.
func (h *Help) FullLines(groups [][]keybind.Keybind, maxWidth int) []picker.Line {
	type column struct {
		entries []keybind.Help
		keyW    int
		colW    int
	}

	columns := make([]column, 0, len(groups))
	for _, group := range groups {
		col := column{}
		for _, kb := range group {
			if !kb.Enabled() {
				continue
			}
			hp := kb.Help()
			if hp.Key == "" && hp.Desc == "" {
				continue
			}
			col.entries = append(col.entries, hp)
			col.keyW = max(col.keyW, picker.StringWidth(hp.Key))
		}
		if len(col.entries) == 0 {
			continue
		}
		// colW is the widest row so that separators line up.
		for _, e := range col.entries {
			w := col.keyW + picker.StringWidth(e.Desc)
			if e.Key != "" && e.Desc != "" {
				w++
			}
			col.colW = max(col.colW, w)
		}
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return nil
	}

	sepText := h.fullSeparator
	if sepText == "" {
		sepText = " "
	}
	sepW := picker.StringWidth(sepText)

	included, totalW := 0, 0
	for i, col := range columns {
		nextW := col.colW
		if i > 0 {
			nextW += sepW
		}
		if maxWidth > 0 && totalW+nextW > maxWidth {
			break
		}
		included++
		totalW += nextW
	}
	if included == 0 {
		return []picker.Line{picker.NewLine(h.ellipsis, h.Styles.EllipsisStyle)}
	}

	rows := 0
	for _, col := range columns[:included] {
		rows = max(rows, len(col.entries))
	}

	b := picker.NewLineBuilder()
	for row := range rows {
		for i, col := range columns[:included] {
			if i > 0 {
				b.Write(sepText, h.Styles.FullSeparatorStyle)
			}

			var cell picker.Line
			if row < len(col.entries) {
				e := col.entries[row]
				cell = append(cell, picker.NewLine(e.Key, h.Styles.FullKeyStyle)...)
				if pad := col.keyW - picker.StringWidth(e.Key); pad > 0 {
					cell = append(cell, picker.NewLine(strings.Repeat(" ", pad), h.Styles.FullKeyStyle)...)
				}
				if e.Key != "" && e.Desc != "" {
					cell = append(cell, picker.NewLine(" ", h.Styles.FullDescStyle)...)
				}
				cell = append(cell, picker.NewLine(e.Desc, h.Styles.FullDescStyle)...)
			}
			// Every column but the last is padded so that later columns
			// start at the same offset in every row.
			if i < included-1 {
				if pad := col.colW - cell.Width(); pad > 0 {
					cell = append(cell, picker.NewLine(strings.Repeat(" ", pad), h.Styles.FullDescStyle)...)
				}
			}
			b.WriteLine(cell)
		}
		b.NewLine()
	}
	lines := b.Finish()

	if included < len(columns) {
		lines[0] = append(lines[0], h.truncationTail(lines[0], maxWidth)...)
	}
	return lines
}

// truncationTail returns " …" if it fits behind current, else nothing.
func (h *Help) truncationTail(current picker.Line, maxWidth int) picker.Line {
	if maxWidth <= 0 || h.ellipsis == "" {
		return nil
	}
	tail := picker.NewLine(" "+h.ellipsis, h.Styles.EllipsisStyle)
	if current.Width()+tail.Width() <= maxWidth {
		return tail
	}
	return nil
}

func itemLine(kb keybind.Keybind, keyStyle, descStyle tcell.Style) picker.Line {
	hp := kb.Help()
	switch {
	case hp.Key == "" && hp.Desc == "":
		return nil
	case hp.Key == "":
		return picker.NewLine(hp.Desc, descStyle)
	case hp.Desc == "":
		return picker.NewLine(hp.Key, keyStyle)
	default:
		line := picker.NewLine(hp.Key, keyStyle)
		line = append(line, picker.NewLine(" ", descStyle)...)
		return append(line, picker.NewLine(hp.Desc, descStyle)...)
	}
}

var _ picker.Renderable = &Help{}
