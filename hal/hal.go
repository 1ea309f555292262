package hal

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a colour pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// LockedFramebuffer is a Framebuffer that another goroutine reads, such as the
// host window. Writers go through WithBuffer, which holds the buffer for fn.
type LockedFramebuffer interface {
	Framebuffer
	WithBuffer(fn func(buf []byte))
}

// Panel is a monochrome page-buffered panel, such as an e-paper module.
//
// SetPixel only touches the page buffer. Display refreshes the whole panel and
// DisplayRegion refreshes a window of it.
type Panel interface {
	drivers.Displayer
	DisplayRegion(x, y, w, h int16) error
	ClearBuffer()
}

// Display provides the output surfaces. Either may be nil when the board has none.
type Display interface {
	Framebuffer() Framebuffer
	Panel() Panel
}

// Clock is the wall clock.
type Clock interface {
	Now() time.Time
}

// Options sizes the display surfaces.
type Options struct {
	Width  int
	Height int

	// EPaper attaches a monochrome Panel next to the framebuffer.
	EPaper bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 240
	}
	if o.Height <= 0 {
		o.Height = 240
	}
	return o
}

// HAL provides the only contact point between the deck and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Clock() Clock
}
