package picker

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// Segment is a styled piece of text.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Line is a list of styled segments.
type Line []Segment

// NewLine returns a line holding a single segment. An empty text yields an
// empty line.
func NewLine(text string, style tcell.Style) Line {
	if text == "" {
		return Line{}
	}
	return Line{{Text: text, Style: style}}
}

// Width returns the number of screen cells needed to print the line.
func (l Line) Width() (width int) {
	for _, segment := range l {
		width += StringWidth(segment.Text)
	}
	return
}

// String returns the unstyled text of the line.
func (l Line) String() string {
	var b strings.Builder
	for _, segment := range l {
		b.WriteString(segment.Text)
	}
	return b.String()
}

// Clone returns a copy of the line which shares no memory with l.
func (l Line) Clone() Line {
	out := make(Line, len(l))
	copy(out, l)
	return out
}

// WithStyle returns a copy of the line with every segment set to style.
func (l Line) WithStyle(style tcell.Style) Line {
	out := make(Line, 0, len(l))
	for _, segment := range l {
		out = appendSegment(out, segment.Text, style)
	}
	return out
}

// appendSegment appends text to line, merging it into the last segment when
// the styles match.
func appendSegment(line Line, text string, style tcell.Style) Line {
	if text == "" {
		return line
	}
	if n := len(line); n > 0 && line[n-1].Style == style {
		line[n-1].Text += text
		return line
	}
	return append(line, Segment{Text: text, Style: style})
}

// LineBuilder incrementally builds styled lines from text writes.
type LineBuilder struct {
	lines   []Line
	current Line
}

// NewLineBuilder returns a new line builder.
func NewLineBuilder() *LineBuilder {
	return &LineBuilder{}
}

// Write appends text with style and splits on newline boundaries.
func (b *LineBuilder) Write(text string, style tcell.Style) {
	for len(text) > 0 {
		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			b.current = appendSegment(b.current, text, style)
			return
		}
		b.current = appendSegment(b.current, text[:nl], style)
		b.NewLine()
		text = text[nl+1:]
	}
}

// WriteLine appends the segments of line to the current line.
func (b *LineBuilder) WriteLine(line Line) {
	for _, segment := range line {
		b.current = appendSegment(b.current, segment.Text, segment.Style)
	}
}

// NewLine flushes the current line into the builder output.
func (b *LineBuilder) NewLine() {
	b.lines = append(b.lines, b.current.Clone())
	b.current = nil
}

// Finish returns all built lines. There is always at least one line.
func (b *LineBuilder) Finish() []Line {
	if len(b.current) > 0 || len(b.lines) == 0 {
		b.NewLine()
	}
	return b.lines
}

// stepState represents the current state of the grapheme parser.
type stepState struct {
	unisegState int
	boundaries  int
	grossLength int
}

// LineBreak returns whether the string can be broken into the next line after
// the returned grapheme cluster.
func (s *stepState) LineBreak() (lineBreak, optional bool) {
	switch s.boundaries & uniseg.MaskLine {
	case uniseg.LineCanBreak:
		return true, true
	case uniseg.LineMustBreak:
		return true, false
	}
	return false, false
}

// Width returns the grapheme cluster's width in cells.
func (s *stepState) Width() int {
	return s.boundaries >> uniseg.ShiftWidth
}

// GrossLength returns the grapheme cluster's length in bytes.
func (s *stepState) GrossLength() int {
	return s.grossLength
}

// step iterates over grapheme clusters of a string.
func step(str string, state *stepState) (cluster, rest string, newState *stepState) {
	if state == nil {
		state = &stepState{
			unisegState: -1,
		}
	}
	if len(str) == 0 {
		newState = state
		return
	}

	preState := state.unisegState
	cluster, rest, state.boundaries, state.unisegState = uniseg.StepString(str, preState)
	state.grossLength = len(cluster)
	if rest == "" && !uniseg.HasTrailingLineBreakInString(cluster) {
		state.boundaries &^= uniseg.MaskLine
	}

	newState = state
	return
}

// StringWidth returns the number of screen cells needed to print text. Each
// grapheme cluster contributes 0, 1, or 2 cells.
func StringWidth(text string) (width int) {
	var state *stepState
	for len(text) > 0 {
		_, text, state = step(text, state)
		width += state.Width()
	}
	return
}
