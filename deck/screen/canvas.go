// Package screen is the display layer: a label tree drawn with tinyfont into an
// RGB565 canvas, and a pump that flushes changed areas to a panel.
package screen

import (
	"image"
	"image/color"
)

// Canvas is an RGB565 draw buffer. It implements drivers.Displayer so tinyfont
// can draw into it; Display is a no-op because the Driver owns flushing.
type Canvas struct {
	w, h int
	px   []uint16
	clip image.Rectangle
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{w: w, h: h, px: make([]uint16, w*h)}
	c.clip = c.Bounds()
	return c
}

func (c *Canvas) Size() (x, y int16) { return int16(c.w), int16(c.h) }

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	p := image.Pt(int(x), int(y))
	if !p.In(c.clip) {
		return
	}
	c.px[p.Y*c.w+p.X] = rgb565From888(col.R, col.G, col.B)
}

func (c *Canvas) Display() error { return nil }

func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.w, c.h) }

// Pix returns the backing pixels, row-major with Stride pixels per row.
func (c *Canvas) Pix() []uint16 { return c.px }

func (c *Canvas) Stride() int { return c.w }

// At returns the RGB565 value at (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) uint16 {
	if !image.Pt(x, y).In(c.Bounds()) {
		return 0
	}
	return c.px[y*c.w+x]
}

// Fill paints r (clipped to the canvas) with col.
func (c *Canvas) Fill(r image.Rectangle, col color.RGBA) {
	r = r.Intersect(c.Bounds())
	v := rgb565From888(col.R, col.G, col.B)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.px[y*c.w+r.Min.X : y*c.w+r.Max.X]
		for i := range row {
			row[i] = v
		}
	}
}

// clipTo limits SetPixel to r until the returned func is called.
func (c *Canvas) clipTo(r image.Rectangle) func() {
	prev := c.clip
	c.clip = r.Intersect(c.Bounds())
	return func() { c.clip = prev }
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

// luma565 is the Rec. 601 luminance of an RGB565 pixel, 0..255.
func luma565(p uint16) uint8 {
	r := uint32((p>>11)&0x1F) * 255 / 31
	g := uint32((p>>5)&0x3F) * 255 / 63
	b := uint32(p&0x1F) * 255 / 31
	return uint8((r*299 + g*587 + b*114) / 1000)
}
