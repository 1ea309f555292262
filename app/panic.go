package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"taskdeck/hal"
)

// guard runs fn and turns a panic into an error, after dumping the stack to the
// HAL logger and painting it on the framebuffer.
func (d *Deck) guard(task string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			reportPanic(d.h, task, v, stack)
			err = fmt.Errorf("task %s panicked: %v", task, v)
		}()
		return fn()
	}
}

func reportPanic(h hal.HAL, task string, v any, stack []byte) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("taskdeck panic: task=%s panic=%v", task, v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	font := &freemono.Regular9pt7b
	fontHeight := int16(font.GetYAdvance())
	fontOffset := fontHeight * 3 / 4
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = fb.Present()
		return
	}

	lines := []string{
		"taskdeck panic:",
		"task: " + task,
		fmt.Sprintf("panic: %v", v),
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	d := panicDisplay{fb: fb}
	fg := color.RGBA{A: 255}
	cols := max(int16(fb.Width())/fontWidth, 1)
	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > int16(fb.Height()) {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y+fontOffset, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

// panicDisplay draws straight into the framebuffer, bypassing the screen driver
// whose lock may be held by the panicking task.
type panicDisplay struct {
	fb hal.Framebuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if buf == nil || ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d panicDisplay) Display() error { return nil }

// takeRunes splits s after n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
