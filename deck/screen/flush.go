package screen

import (
	"fmt"
	"image"
	"image/color"

	"taskdeck/hal"
)

// Flusher pushes a canvas area to a panel. px holds the whole canvas, stride
// pixels per row.
type Flusher interface {
	Flush(area image.Rectangle, px []uint16, stride int) error
}

// fullFramer is implemented by flushers that can only take the whole canvas.
type fullFramer interface {
	FullFrame() bool
}

// FramebufferFlusher copies into an RGB565 framebuffer and presents it. The copy
// runs under the framebuffer's lock when it has one.
type FramebufferFlusher struct {
	FB hal.Framebuffer
}

func (f FramebufferFlusher) Flush(area image.Rectangle, px []uint16, stride int) error {
	fb := f.FB
	if fb == nil {
		return hal.ErrNotImplemented
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return fmt.Errorf("screen: unsupported pixel format %d", fb.Format())
	}
	area = area.Intersect(image.Rect(0, 0, fb.Width(), fb.Height()))
	fbStride := fb.StrideBytes()
	blit := func(buf []byte) {
		for y := area.Min.Y; y < area.Max.Y; y++ {
			src := y * stride
			dst := y * fbStride
			for x := area.Min.X; x < area.Max.X; x++ {
				off := dst + x*2
				if off+1 >= len(buf) || src+x >= len(px) {
					break
				}
				p := px[src+x]
				buf[off] = byte(p)
				buf[off+1] = byte(p >> 8)
			}
		}
	}

	if lf, ok := fb.(hal.LockedFramebuffer); ok {
		lf.WithBuffer(blit)
		return fb.Present()
	}
	buf := fb.Buffer()
	if buf == nil {
		return hal.ErrNotImplemented
	}
	blit(buf)
	return fb.Present()
}

// DefaultThreshold splits pixels into ink and paper at mid luminance.
const DefaultThreshold = 128

var (
	ink   = color.RGBA{A: 0xFF}
	paper = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Binarizer maps RGB565 pixels to black and white for a 1bpp panel. A pixel whose
// luminance is below Threshold is ink. It always redraws the full frame: the page
// buffer is cleared first, then a partial refresh is issued for the area.
type Binarizer struct {
	Panel     hal.Panel
	Threshold uint8
}

func NewBinarizer(p hal.Panel) *Binarizer {
	return &Binarizer{Panel: p, Threshold: DefaultThreshold}
}

func (b *Binarizer) FullFrame() bool { return true }

// Ink reports whether p is drawn black.
func (b *Binarizer) Ink(p uint16) bool {
	return luma565(p) < b.Threshold
}

func (b *Binarizer) Flush(area image.Rectangle, px []uint16, stride int) error {
	if b.Panel == nil {
		return hal.ErrNotImplemented
	}
	w, h := b.Panel.Size()
	area = area.Intersect(image.Rect(0, 0, int(w), int(h)))
	if area.Empty() {
		return nil
	}

	b.Panel.ClearBuffer()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			i := y*stride + x
			if i >= len(px) {
				break
			}
			if b.Ink(px[i]) {
				b.Panel.SetPixel(int16(x), int16(y), ink)
			} else {
				b.Panel.SetPixel(int16(x), int16(y), paper)
			}
		}
	}
	return b.Panel.DisplayRegion(int16(area.Min.X), int16(area.Min.Y), int16(area.Dx()), int16(area.Dy()))
}
