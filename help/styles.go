package help

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/picker"
)

type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles prints keys in the secondary and descriptions in the
// tertiary text color of the current theme.
func DefaultStyles() Styles {
	key := tcell.StyleDefault.Foreground(picker.Styles.SecondaryTextColor)
	desc := tcell.StyleDefault.Foreground(picker.Styles.TertiaryTextColor)
	dim := desc.Dim(true)
	return Styles{
		ShortKeyStyle:       key,
		ShortDescStyle:      desc,
		ShortSeparatorStyle: dim,
		FullKeyStyle:        key,
		FullDescStyle:       desc,
		FullSeparatorStyle:  dim,
		EllipsisStyle:       dim,
	}
}
