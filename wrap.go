package picker

import (
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// WrapOptions configures [WrapLine].
type WrapOptions struct {
	// Width is the number of cells available to the wrapped text on each
	// output line, not counting the indent. Values below 1 are treated as 1.
	Width int

	// InitialIndent is prepended to the first output line.
	InitialIndent Line

	// SubsequentIndent is prepended to every output line but the first.
	SubsequentIndent Line
}

// NewWrapOptions returns options for wrapping text to the given width without
// indents.
func NewWrapOptions(width int) WrapOptions {
	return WrapOptions{Width: width}
}

// WithInitialIndent returns a copy of the options using indent for the first
// line.
func (o WrapOptions) WithInitialIndent(indent Line) WrapOptions {
	o.InitialIndent = indent
	return o
}

// WithSubsequentIndent returns a copy of the options using indent for all
// lines after the first.
func (o WrapOptions) WithSubsequentIndent(indent Line) WrapOptions {
	o.SubsequentIndent = indent
	return o
}

type wrapCell struct {
	text  string
	width int
	style tcell.Style
}

// wrapToken is a word plus the whitespace following it, ending at a line
// break opportunity.
type wrapToken struct {
	word       []wrapCell
	wordWidth  int
	space      []wrapCell
	spaceWidth int
	newline    bool
}

// WrapLine splits a styled line such that the text on each resulting line
// does not exceed opts.Width cells. Lines are broken at word boundaries. A
// word longer than the width is broken between grapheme clusters. Newlines
// in the text always start a new line. Whitespace at a soft break is
// consumed by the break. Segment styles are carried over to the wrapped
// lines.
//
// The first line is prefixed with opts.InitialIndent, every other line with
// opts.SubsequentIndent. The result always contains at least one line and
// shares no memory with the arguments.
func WrapLine(line Line, opts WrapOptions) []Line {
	width := max(opts.Width, 1)

	var (
		rows         [][]wrapCell
		current      []wrapCell
		currentWidth int
		pending      []wrapCell
		pendingWidth int
	)
	flush := func() {
		rows = append(rows, current)
		current, currentWidth = nil, 0
		pending, pendingWidth = nil, 0
	}

	for _, token := range tokenizeLine(line) {
		if len(token.word) > 0 {
			// Leading whitespace is kept but wraps like the cells of a word.
			if len(current) == 0 {
				for _, cell := range pending {
					if len(current) > 0 && currentWidth+cell.width > width {
						flush()
					}
					current = append(current, cell)
					currentWidth += cell.width
				}
				pending, pendingWidth = nil, 0
			}
			if len(current) > 0 && currentWidth+pendingWidth+token.wordWidth > width {
				flush()
			} else {
				current = append(current, pending...)
				currentWidth += pendingWidth
			}
			pending, pendingWidth = nil, 0

			// Words wider than the line are broken wherever they overflow.
			for _, cell := range token.word {
				if len(current) > 0 && currentWidth+cell.width > width {
					flush()
				}
				current = append(current, cell)
				currentWidth += cell.width
			}
		}

		pending = append(pending, token.space...)
		pendingWidth += token.spaceWidth

		if token.newline {
			flush()
		}
	}
	flush()

	lines := make([]Line, 0, len(rows))
	for index, row := range rows {
		indent := opts.SubsequentIndent
		if index == 0 {
			indent = opts.InitialIndent
		}
		wrapped := indent.Clone()
		for _, cell := range row {
			wrapped = appendSegment(wrapped, cell.text, cell.style)
		}
		lines = append(lines, wrapped)
	}
	return lines
}

// tokenizeLine splits the text of a line into tokens at uniseg line break
// opportunities.
func tokenizeLine(line Line) (tokens []wrapToken) {
	if len(line) == 0 {
		return nil
	}

	var (
		token   wrapToken
		state   *stepState
		segment int
		offset  int
		end     = len(line[0].Text)
	)
	for text := line.String(); len(text) > 0; {
		var cluster string
		cluster, text, state = step(text, state)

		// Find the segment the cluster starts in.
		for segment < len(line)-1 && offset >= end {
			segment++
			end += len(line[segment].Text)
		}
		offset += state.GrossLength()
		cell := wrapCell{
			text:  cluster,
			width: state.Width(),
			style: line[segment].Style,
		}
		if cluster == "\t" {
			// Tabs are shown as a single space.
			cell.text, cell.width = " ", 1
		}

		switch {
		case uniseg.HasTrailingLineBreakInString(cluster):
			token.newline = true
		case isBreakingSpace(cluster):
			token.space = append(token.space, cell)
			token.spaceWidth += cell.width
		default:
			if len(token.space) > 0 {
				// No break was allowed after the whitespace, so it belongs
				// to the word.
				token.word = append(token.word, token.space...)
				token.wordWidth += token.spaceWidth
				token.space, token.spaceWidth = nil, 0
			}
			token.word = append(token.word, cell)
			token.wordWidth += cell.width
		}

		if lineBreak, _ := state.LineBreak(); lineBreak || token.newline {
			tokens = append(tokens, token)
			token = wrapToken{}
		}
	}
	if len(token.word) > 0 || len(token.space) > 0 {
		tokens = append(tokens, token)
	}
	return
}

func isBreakingSpace(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsSpace(r) && r != '\u00a0' && r != '\u202f'
}
