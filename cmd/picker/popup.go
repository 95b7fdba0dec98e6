package main

import (
	"github.com/xqrs/picker"
)

// popup centers a selection list on the screen, sized to its content.
type popup struct {
	*picker.SelectionList
	maxWidth int
}

func newPopup(list *picker.SelectionList, maxWidth int) *popup {
	return &popup{SelectionList: list, maxWidth: maxWidth}
}

// SetRect places the list in the middle of the given area. The list is as
// tall as its options need and no wider than maxWidth, if set.
func (p *popup) SetRect(x, y, width, height int) {
	w := width
	if p.maxWidth > 0 {
		w = min(w, p.maxWidth)
	}
	h := min(height, p.Height(w))
	p.SelectionList.SetRect(x+(width-w)/2, y+(height-h)/2, w, h)
}

var _ picker.Primitive = &popup{}
