//go:build tinygo

package hal

// memFramebuffer is an in-RAM RGB565 buffer. present pushes it to the panel
// when the board wires one up.
type memFramebuffer struct {
	w       int
	h       int
	stride  int
	buf     []byte
	present func([]byte) error
}

func newMemFramebuffer(w, h int, present func([]byte) error) *memFramebuffer {
	stride := w * 2
	return &memFramebuffer{
		w:       w,
		h:       h,
		stride:  stride,
		buf:     make([]byte, stride*h),
		present: present,
	}
}

func (f *memFramebuffer) Width() int          { return f.w }
func (f *memFramebuffer) Height() int         { return f.h }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *memFramebuffer) Present() error {
	if f.present == nil {
		return nil
	}
	return f.present(f.buf)
}

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }
func (d tinyGoDisplay) Panel() Panel             { return nil }
