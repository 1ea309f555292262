package screen

import (
	"image"
	"image/color"
	"strconv"

	"tinygo.org/x/tinyfont"

	"taskdeck/deck/face"
	"taskdeck/deck/scroll"
	"taskdeck/deck/taskstore"
	"taskdeck/deck/text"
)

// Style is the look of one panel type.
type Style struct {
	Background color.RGBA
	Foreground color.RGBA
	Accent     color.RGBA

	// CountPrefix is written before the task count.
	CountPrefix string

	// Labels shown before the first push.
	ClockInitial string
	CountInitial string
	SlotInitial  string
	DueInitial   string
}

var (
	// LCDStyle is the colour panel look.
	LCDStyle = Style{
		Background: color.RGBA{R: 0x12, G: 0x16, B: 0x20, A: 0xFF},
		Foreground: color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF},
		Accent:     color.RGBA{R: 0x5C, G: 0xC8, B: 0xFF, A: 0xFF},
	}

	// EPaperStyle is black on white with the status texts of the e-paper build.
	EPaperStyle = Style{
		Background:   color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Foreground:   color.RGBA{A: 0xFF},
		Accent:       color.RGBA{A: 0xFF},
		CountPrefix:  "待办: ",
		ClockInitial: "连接中...",
		CountInitial: "0",
		SlotInitial:  "等待数据...",
		DueInitial:   "--/-- --:--",
	}
)

type row struct {
	summary Label
	due     Label
}

// Screen is the label tree: a status bar with clock and count, a divider, and
// one summary/due pair per visible slot. It implements render.Sink; callers
// hold the Driver lock.
type Screen struct {
	style   Style
	font    tinyfont.Fonter
	ascent  int16
	size    image.Point
	divider image.Rectangle

	clock Label
	count Label
	rows  [scroll.VisibleSlots]row

	full     bool
	countBuf [32]byte
}

// New lays out a screen for a w x h panel. A nil font uses face.Pixel12.
func New(w, h int, style Style, font tinyfont.Fonter) *Screen {
	if font == nil {
		font = face.Pixel12
	}
	s := &Screen{style: style, font: font, size: image.Pt(w, h), full: true}
	s.layout()

	s.clock.SetString(style.ClockInitial)
	s.count.SetString(style.CountInitial)
	for i := range s.rows {
		s.rows[i].summary.SetString(style.SlotInitial)
		s.rows[i].due.SetString(style.DueInitial)
	}
	return s
}

func (s *Screen) layout() {
	w, h := s.size.X, s.size.Y
	lineH := int(s.font.GetYAdvance()) + 2
	s.ascent = int16(s.font.GetYAdvance()) * 3 / 4
	if a, ok := s.font.(interface{ Ascent() int16 }); ok {
		s.ascent = a.Ascent()
	}

	header := lineH + 4
	split := w * 3 / 5
	s.clock.Rect = image.Rect(2, 2, split, 2+lineH)
	s.count.Rect = image.Rect(split, 2, w-5, 2+lineH)
	s.count.Align = AlignRight
	s.divider = image.Rect(0, header, w, header+2)

	top := header + 6
	rowH := max((h-top)/len(s.rows), 2*lineH)
	for i := range s.rows {
		y := top + i*rowH
		s.rows[i].summary.Rect = image.Rect(5, y, w-5, y+lineH)
		s.rows[i].summary.Ellipsis = true
		s.rows[i].due.Rect = image.Rect(5, y+lineH, w-5, y+2*lineH)
	}
}

func (s *Screen) UpdateVisible(slots []taskstore.Record) {
	for i := range s.rows {
		r := &s.rows[i]
		if i < len(slots) && slots[i].Valid {
			r.summary.Set(slots[i].Summary)
			r.due.Set(slots[i].Due)
			continue
		}
		r.summary.Set(text.Text{})
		r.due.Set(text.Text{})
	}
}

func (s *Screen) UpdateClock(t text.Text) {
	s.clock.Set(t)
}

func (s *Screen) UpdateCount(n int) {
	b := append(s.countBuf[:0], s.style.CountPrefix...)
	b = strconv.AppendInt(b, int64(n), 10)
	var t text.Text
	t.SetBytes(b, text.MaxBytes)
	s.count.Set(t)
}

// Invalidate forces a full repaint on the next Draw.
func (s *Screen) Invalidate() { s.full = true }

func (s *Screen) labels(yield func(*Label)) {
	yield(&s.clock)
	yield(&s.count)
	for i := range s.rows {
		yield(&s.rows[i].summary)
		yield(&s.rows[i].due)
	}
}

// Draw rasterises dirty labels into c and returns the area that changed.
func (s *Screen) Draw(c *Canvas) image.Rectangle {
	var area image.Rectangle
	if s.full {
		s.full = false
		c.Fill(c.Bounds(), s.style.Background)
		c.Fill(s.divider, s.style.Accent)
		s.labels(func(l *Label) { l.dirty = true })
		area = c.Bounds()
	}
	s.labels(func(l *Label) {
		if !l.dirty {
			return
		}
		l.dirty = false
		s.drawLabel(c, l)
		area = area.Union(l.Rect.Intersect(c.Bounds()))
	})
	return area
}

func (s *Screen) drawLabel(c *Canvas, l *Label) {
	c.Fill(l.Rect, s.style.Background)
	str := l.txt.String()
	if str == "" {
		return
	}
	if l.Ellipsis {
		str = truncateToWidth(s.font, str, l.Rect.Dx())
	}
	x := l.Rect.Min.X
	if l.Align == AlignRight {
		x = l.Rect.Max.X - textWidth(s.font, str)
	}

	restore := c.clipTo(l.Rect)
	defer restore()
	tinyfont.WriteLine(c, s.font, int16(x), int16(l.Rect.Min.Y)+s.ascent, str, s.style.Foreground)
}
