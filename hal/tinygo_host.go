//go:build tinygo && !baremetal

package hal

import "time"

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *memFramebuffer
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
func New(opts Options) HAL {
	opts = opts.withDefaults()
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		fb:     newMemFramebuffer(opts.Width, opts.Height, nil),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Clock() Clock     { return tinyGoHostClock{} }

type tinyGoHostClock struct{}

func (tinyGoHostClock) Now() time.Time { return time.Now() }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
