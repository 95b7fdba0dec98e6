// Package termout writes styled lines to a plain output stream, such as a
// pipe or a terminal the picker does not take over.
package termout

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/muesli/termenv"

	"github.com/xqrs/picker"
)

// Writer converts cell styles to escape sequences of a termenv profile.
type Writer struct {
	out *termenv.Output
}

// NewWriter returns a writer using the given color profile. The Ascii
// profile writes plain text.
func NewWriter(w io.Writer, profile termenv.Profile) *Writer {
	return &Writer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// NewEnvWriter returns a writer with the color profile detected from w and
// the environment, honoring NO_COLOR and CLICOLOR_FORCE.
func NewEnvWriter(w io.Writer) *Writer {
	out := termenv.NewOutput(w)
	out.Profile = out.EnvColorProfile()
	return &Writer{out: out}
}

// Profile returns the color profile of the writer.
func (w *Writer) Profile() termenv.Profile {
	return w.out.Profile
}

// Styled returns text decorated with the colors and attributes of style.
func (w *Writer) Styled(text string, style tcell.Style) string {
	s := w.out.String(text)
	if c := w.color(style.GetForeground()); c != nil {
		s = s.Foreground(c)
	}
	if c := w.color(style.GetBackground()); c != nil {
		s = s.Background(c)
	}

	attrs := style.GetAttributes()
	if attrs&tcell.AttrBold != 0 {
		s = s.Bold()
	}
	if attrs&tcell.AttrDim != 0 {
		s = s.Faint()
	}
	if attrs&tcell.AttrItalic != 0 {
		s = s.Italic()
	}
	if attrs&tcell.AttrReverse != 0 {
		s = s.Reverse()
	}
	return s.String()
}

func (w *Writer) color(c tcell.Color) termenv.Color {
	if c == tcell.ColorDefault {
		return nil
	}
	hex := c.Hex()
	if hex < 0 {
		return nil
	}
	return w.out.Color(fmt.Sprintf("#%06x", hex))
}

// Line renders one line without a line break.
func (w *Writer) Line(line picker.Line) string {
	var b strings.Builder
	for _, segment := range line {
		if segment.Text == "" {
			continue
		}
		b.WriteString(w.Styled(segment.Text, segment.Style))
	}
	return b.String()
}

// WriteLines writes each line followed by a line break.
func (w *Writer) WriteLines(lines []picker.Line) error {
	for _, line := range lines {
		if _, err := io.WriteString(w.out, w.Line(line)+"\n"); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}
	return nil
}
