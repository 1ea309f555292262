//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostPanel emulates a 1bpp e-paper module. Refreshes blit the page buffer into
// the host framebuffer so the window and snapshots show what the glass would.
type hostPanel struct {
	mu        sync.Mutex
	fb        *hostFramebuffer
	w, h      int16
	stride    int
	page      []byte // 1 = ink
	refreshes uint64
	partials  uint64
}

func newHostPanel(fb *hostFramebuffer) *hostPanel {
	stride := (fb.width + 7) / 8
	return &hostPanel{
		fb:     fb,
		w:      int16(fb.width),
		h:      int16(fb.height),
		stride: stride,
		page:   make([]byte, stride*fb.height),
	}
}

func (p *hostPanel) Size() (x, y int16) { return p.w, p.h }

// SetPixel inks the pixel when c is closer to black than white.
func (p *hostPanel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	ink := isInk(c.R, c.G, c.B)

	p.mu.Lock()
	defer p.mu.Unlock()
	off := int(y)*p.stride + int(x)/8
	bit := byte(0x80) >> (uint(x) % 8)
	if ink {
		p.page[off] |= bit
	} else {
		p.page[off] &^= bit
	}
}

func (p *hostPanel) ClearBuffer() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.page)
}

func (p *hostPanel) Display() error {
	p.mu.Lock()
	p.refreshes++
	p.mu.Unlock()
	return p.blit(0, 0, p.w, p.h)
}

func (p *hostPanel) DisplayRegion(x, y, w, h int16) error {
	p.mu.Lock()
	p.partials++
	p.mu.Unlock()
	return p.blit(x, y, w, h)
}

func (p *hostPanel) blit(x, y, w, h int16) error {
	x0, y0 := max(int(x), 0), max(int(y), 0)
	x1, y1 := min(int(x)+int(w), int(p.w)), min(int(y)+int(h), int(p.h))
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fb := p.fb
	fb.mu.Lock()
	defer fb.mu.Unlock()

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			v := paperWhite
			if p.page[py*p.stride+px/8]&(0x80>>(uint(px)%8)) != 0 {
				v = paperInk
			}
			off := py*fb.stride + px*2
			fb.buf[off] = byte(v)
			fb.buf[off+1] = byte(v >> 8)
		}
	}
	return nil
}

func (p *hostPanel) counts() (full, partial uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refreshes, p.partials
}
