package picker

import (
	"github.com/gdamore/tcell/v3"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the box at (x,y,maxWidth,1), not
// exceeding that box. Text wider than the box is cut off on the right. If the
// style has the default background, the screen's background is kept.
//
// Returns the screen width of the text actually printed.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) int {
	if maxWidth <= 0 || text == "" {
		return 0
	}

	// Reduce all alignments to AlignmentLeft.
	if textWidth := StringWidth(text); textWidth < maxWidth {
		switch alignment {
		case AlignmentRight:
			x, maxWidth = x+maxWidth-textWidth, textWidth
		case AlignmentCenter:
			x, maxWidth = x+(maxWidth-textWidth)/2, textWidth
		}
	}

	return printLine(screen, NewLine(text, style), x, y, maxWidth)
}

// printLine prints the segments of line from left to right, starting at
// (x,y), and stops before the first grapheme cluster that would cross
// x+maxWidth or the right screen edge. It returns the printed width.
func printLine(screen tcell.Screen, line Line, x, y, maxWidth int) (printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || y < 0 || y >= totalHeight {
		return 0
	}

	rightBorder := min(x+maxWidth, totalWidth)
	for _, segment := range line {
		var state *stepState
		text := segment.Text
		for len(text) > 0 {
			var c string
			c, text, state = step(text, state)
			width := state.Width()
			if x+width > rightBorder {
				return
			}
			if width > 0 && x >= 0 {
				finalStyle := segment.Style
				if finalStyle.GetBackground() == tcell.ColorDefault {
					_, existingStyle, _ := screen.Get(x, y)
					finalStyle = finalStyle.Background(existingStyle.GetBackground())
				}
				for offset := width - 1; offset >= 0; offset-- {
					// To avoid undesired effects, we populate all cells.
					if offset == 0 {
						screen.Put(x+offset, y, c, finalStyle)
					} else {
						screen.Put(x+offset, y, " ", finalStyle)
					}
				}
			}
			x += width
			printedWidth += width
		}
	}
	return
}
