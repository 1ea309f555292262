//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	panel  *hostPanel
}

// New returns a host HAL implementation logging to stderr.
func New(opts Options) HAL {
	return newHost(opts, os.Stderr)
}

// NewWithOutput is New with log lines written to w.
func NewWithOutput(opts Options, w io.Writer) HAL {
	return newHost(opts, w)
}

func newHost(opts Options, w io.Writer) *hostHAL {
	opts = opts.withDefaults()
	h := &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(opts.Width, opts.Height),
	}
	if opts.EPaper {
		h.panel = newHostPanel(h.fb)
	}
	return h
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb, panel: h.panel} }
func (h *hostHAL) Clock() Clock     { return hostClock{} }

type hostDisplay struct {
	fb    *hostFramebuffer
	panel *hostPanel
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

func (d hostDisplay) Panel() Panel {
	if d.panel == nil {
		return nil
	}
	return d.panel
}

type hostClock struct{}

func (hostClock) Now() time.Time { return time.Now() }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
