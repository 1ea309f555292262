//go:build !tinygo

package hal

import (
	"image"
	"image/png"
	"io"
	"sync"
)

type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) WithBuffer(fn func(buf []byte)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.buf)
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	f.presents++
	f.mu.Unlock()
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *hostFramebuffer) presented() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// toRGBA expands an RGB565 snapshot into dst.Pix.
func toRGBA(dst *image.RGBA, src []byte) {
	pix := dst.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(pix); i += 2 {
		r, g, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		pix[j+0] = r
		pix[j+1] = g
		pix[j+2] = b
		pix[j+3] = 0xFF
	}
}

func (f *hostFramebuffer) encodePNG(w io.Writer) error {
	scratch := make([]byte, len(f.buf))
	f.snapshotRGB565(scratch)
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	toRGBA(img, scratch)
	return png.Encode(w, img)
}
