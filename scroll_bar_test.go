package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xqrs/picker/internal/screentest"
)

func TestComputeScrollMetrics(t *testing.T) {
	tests := []struct {
		name      string
		track     int
		content   int
		viewport  int
		offset    int
		wantLen   int
		wantStart int
	}{
		{"fits", 4, 3, 4, 0, 32, 0},
		{"top", 4, 8, 4, 0, 16, 0},
		{"bottom", 4, 8, 4, 4, 16, 16},
		{"middle", 4, 8, 4, 2, 16, 8},
		{"offset clamped", 4, 8, 4, 99, 16, 16},
		{"thumb at least one cell", 2, 100, 2, 0, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := computeScrollMetrics(tt.track, tt.content, tt.viewport, tt.offset)
			assert.Equal(t, tt.track*subcell, m.trackLen)
			assert.Equal(t, tt.wantLen, m.thumbLen)
			assert.Equal(t, tt.wantStart, m.thumbStart)
		})
	}

	assert.Equal(t, scrollMetrics{}, computeScrollMetrics(0, 10, 2, 0))
}

func TestCellFill(t *testing.T) {
	m := scrollMetrics{trackCells: 3, trackLen: 24, thumbLen: 8, thumbStart: 6}

	start, fill := cellFill(m, 0)
	assert.Equal(t, []int{6, 2}, []int{start, fill})
	start, fill = cellFill(m, 1)
	assert.Equal(t, []int{0, 6}, []int{start, fill})
	start, fill = cellFill(m, 2)
	assert.Equal(t, []int{0, 0}, []int{start, fill})
}

func TestScrollBarRender(t *testing.T) {
	screen := screentest.New(1, 4)
	bar := NewScrollBar().SetGlyphSet(UnicodeGlyphSet()).SetLengths(ScrollLengths{ContentLen: 8, ViewportLen: 4})

	assert.True(t, bar.Visible())
	assert.Equal(t, 4, bar.Height(1))

	bar.SetOffset(2).Render(screen, Rect{Width: 1, Height: 4})
	assert.Equal(t, []string{"│", "█", "█", "│"}, screen.Rows())
	assert.Equal(t, Styles.BorderColor, screen.CellAt(0, 1).Style.GetForeground())

	bar.SetOffset(1).Render(screen, Rect{Width: 1, Height: 4})
	assert.Equal(t, []string{"▄", "█", "▀", "│"}, screen.Rows())
}

func TestScrollBarHiddenWhenContentFits(t *testing.T) {
	screen := screentest.New(1, 2)
	bar := NewScrollBar().SetLengths(ScrollLengths{ContentLen: 2, ViewportLen: 2})

	assert.False(t, bar.Visible())
	bar.Render(screen, Rect{Width: 1, Height: 2})
	assert.Equal(t, []string{"", ""}, screen.Rows())
}
