package picker

// Glyphs used for drawing box frames.
const (
	horizontalEllipsis = "\u2026" // …

	boxDrawingsLightHorizontal      = "\u2500" // ─
	boxDrawingsLightVertical        = "\u2502" // │
	boxDrawingsLightDownAndRight    = "\u250c" // ┌
	boxDrawingsLightDownAndLeft     = "\u2510" // ┐
	boxDrawingsLightUpAndRight      = "\u2514" // └
	boxDrawingsLightUpAndLeft       = "\u2518" // ┘
	boxDrawingsLightArcDownAndRight = "\u256d" // ╭
	boxDrawingsLightArcDownAndLeft  = "\u256e" // ╮
	boxDrawingsLightArcUpAndLeft    = "\u256f" // ╯
	boxDrawingsLightArcUpAndRight   = "\u2570" // ╰
)

// BorderSet defines the glyphs of a box frame.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

func BorderSetHidden() BorderSet {
	return BorderSet{
		Top:         " ",
		Bottom:      " ",
		Left:        " ",
		Right:       " ",
		TopLeft:     " ",
		TopRight:    " ",
		BottomLeft:  " ",
		BottomRight: " ",
	}
}

func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         boxDrawingsLightHorizontal,
		Bottom:      boxDrawingsLightHorizontal,
		Left:        boxDrawingsLightVertical,
		Right:       boxDrawingsLightVertical,
		TopLeft:     boxDrawingsLightDownAndRight,
		TopRight:    boxDrawingsLightDownAndLeft,
		BottomLeft:  boxDrawingsLightUpAndRight,
		BottomRight: boxDrawingsLightUpAndLeft,
	}
}

func BorderSetRound() BorderSet {
	return BorderSet{
		Top:         boxDrawingsLightHorizontal,
		Bottom:      boxDrawingsLightHorizontal,
		Left:        boxDrawingsLightVertical,
		Right:       boxDrawingsLightVertical,
		TopLeft:     boxDrawingsLightArcDownAndRight,
		TopRight:    boxDrawingsLightArcDownAndLeft,
		BottomLeft:  boxDrawingsLightArcUpAndRight,
		BottomRight: boxDrawingsLightArcUpAndLeft,
	}
}

type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

func (b Borders) Has(flag Borders) bool {
	return b&flag == flag
}
