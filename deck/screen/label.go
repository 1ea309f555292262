package screen

import (
	"image"

	"tinygo.org/x/tinyfont"

	"taskdeck/deck/text"
)

// Align is the horizontal placement of a label's text.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
)

// Label is one text box. It redraws only after its text changes.
type Label struct {
	Rect     image.Rectangle
	Align    Align
	Ellipsis bool

	txt   text.Text
	dirty bool
}

// Set replaces the text, marking the label dirty when it differs.
func (l *Label) Set(t text.Text) {
	if l.txt.Equal(&t) {
		return
	}
	l.txt = t
	l.dirty = true
}

func (l *Label) SetString(s string) {
	l.Set(text.New(s, text.MaxBytes))
}

func (l *Label) Text() text.Text { return l.txt }

func (l *Label) Dirty() bool { return l.dirty }

// truncateToWidth shortens s with a trailing ellipsis until it fits in maxW pixels.
func truncateToWidth(f tinyfont.Fonter, s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if textWidth(f, s) <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		if textWidth(f, string(r)+"…") <= maxW {
			return string(r) + "…"
		}
	}
	return ""
}

func textWidth(f tinyfont.Fonter, s string) int {
	_, w := tinyfont.LineWidth(f, s)
	return int(w)
}
