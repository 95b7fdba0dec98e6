package picker

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Secondary text (e.g. key names in help).
	TertiaryTextColor        tcell.Color // Tertiary text (e.g. help descriptions).
	SelectedTextColor        tcell.Color // The selected option of a selection list.
}

// Styles defines the theme for applications. The default keeps the
// terminal's own background and highlights the selected option in teal.
var Styles = Theme{
	PrimitiveBackgroundColor: tcell.ColorDefault,
	BorderColor:              color.Gray,
	TitleColor:               color.White,
	PrimaryTextColor:         color.White,
	SecondaryTextColor:       color.Silver,
	TertiaryTextColor:        color.Gray,
	SelectedTextColor:        color.Teal,
}
