package picker

import "github.com/gdamore/tcell/v3"

// ScrollLengths bundles content and viewport lengths in rows.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

// Every cell is split into eighths so the thumb can move smoothly.
const subcell = 8

// GlyphSet defines the track glyph and the fractional thumb glyphs. Index i
// of the thumb arrays covers i+1 eighths of a cell.
type GlyphSet struct {
	Track string

	ThumbLower [subcell]string
	ThumbUpper [subcell]string
}

// MinimalGlyphSet draws a blank track and a fractional block thumb.
func MinimalGlyphSet() GlyphSet {
	g := UnicodeGlyphSet()
	g.Track = " "
	return g
}

// UnicodeGlyphSet draws a line track and approximates upper fractions with
// the half block.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		Track:      boxDrawingsLightVertical,
		ThumbLower: [subcell]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbUpper: [subcell]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"},
	}
}

// ScrollBar is a one column wide vertical scroll indicator. It is drawn
// next to a list whose content is taller than its viewport and stays blank
// otherwise.
type ScrollBar struct {
	contentLen  int
	viewportLen int
	offset      int

	glyphSet   GlyphSet
	trackStyle tcell.Style
	thumbStyle tcell.Style
}

// NewScrollBar returns a scroll bar with a blank track and a thumb in the
// border color.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		glyphSet:   MinimalGlyphSet(),
		trackStyle: tcell.StyleDefault.Dim(true),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.BorderColor),
	}
}

// SetLengths sets the content and viewport lengths.
func (s *ScrollBar) SetLengths(lengths ScrollLengths) *ScrollBar {
	s.contentLen = max(lengths.ContentLen, 0)
	s.viewportLen = max(lengths.ViewportLen, 0)
	return s
}

// SetOffset sets the number of content rows above the viewport.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	s.offset = max(offset, 0)
	return s
}

func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	return s
}

func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	s.trackStyle = style
	return s
}

func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

// Visible reports whether the content overflows the viewport.
func (s *ScrollBar) Visible() bool {
	return s.contentLen > max(s.viewportLen, 1)
}

// Height returns the viewport length. The bar always spans the viewport.
func (s *ScrollBar) Height(width int) int {
	return s.viewportLen
}

// Render draws the bar into the first column of rect. Nothing is drawn when
// the content fits into the viewport.
func (s *ScrollBar) Render(screen tcell.Screen, rect Rect) {
	if rect.Width <= 0 || rect.Height <= 0 || !s.Visible() {
		return
	}
	m := computeScrollMetrics(rect.Height, s.contentLen, s.viewportLen, s.offset)
	for cell := range m.trackCells {
		start, fill := cellFill(m, cell)
		glyph, style := s.glyph(start, fill)
		screen.Put(rect.X, rect.Y+cell, glyph, style)
	}
}

func (s *ScrollBar) glyph(start, fill int) (string, tcell.Style) {
	switch {
	case fill <= 0:
		return s.glyphSet.Track, s.trackStyle
	case fill >= subcell:
		return s.glyphSet.ThumbLower[subcell-1], s.thumbStyle
	case start == 0:
		return s.glyphSet.ThumbUpper[fill-1], s.thumbStyle
	default:
		return s.glyphSet.ThumbLower[fill-1], s.thumbStyle
	}
}

// scrollMetrics is the bar geometry in eighths of a cell.
type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

func computeScrollMetrics(trackCells, contentLen, viewportLen, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen <= 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := contentLen - viewportLen
	offset = min(max(offset, 0), maxOffset)
	if maxOffset == 0 {
		return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	// The thumb is at least one cell long.
	thumbLen := min(max(trackLen*viewportLen/contentLen, subcell), trackLen)
	thumbStart := (trackLen - thumbLen) * offset / maxOffset
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

// cellFill returns where the thumb starts inside the given cell and how many
// eighths of it are covered.
func cellFill(m scrollMetrics, cell int) (start int, fill int) {
	cellStart := cell * subcell
	from := max(m.thumbStart, cellStart)
	to := min(m.thumbStart+m.thumbLen, cellStart+subcell)
	if to <= from {
		return 0, 0
	}
	return from - cellStart, to - from
}

var _ Renderable = &ScrollBar{}
