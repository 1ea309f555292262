//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHostPanelBlitsIntoFramebuffer(t *testing.T) {
	h := newHost(Options{Width: 16, Height: 8, EPaper: true}, &bytes.Buffer{})
	p := h.Display().Panel()
	if p == nil {
		t.Fatal("e-paper host has no panel")
	}

	p.SetPixel(3, 2, color.RGBA{A: 0xFF})
	p.SetPixel(4, 2, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	if err := p.DisplayRegion(0, 0, 8, 8); err != nil {
		t.Fatal(err)
	}

	fb := h.fb
	at := func(x, y int) uint16 {
		off := y*fb.stride + x*2
		return uint16(fb.buf[off]) | uint16(fb.buf[off+1])<<8
	}
	if at(3, 2) == at(4, 2) {
		t.Fatal("ink and paper pixels look the same")
	}
	if at(12, 2) != 0 {
		t.Fatal("refresh outside the region touched the framebuffer")
	}
	if full, partial := h.panel.counts(); full != 0 || partial != 1 {
		t.Fatalf("refreshes = %d full, %d partial", full, partial)
	}

	p.ClearBuffer()
	if err := p.Display(); err != nil {
		t.Fatal(err)
	}
	if at(3, 2) != at(4, 2) {
		t.Fatal("ClearBuffer left ink behind")
	}
}

func TestLCDHostHasNoPanel(t *testing.T) {
	h := New(Options{})
	if h.Display().Panel() != nil {
		t.Fatal("unexpected panel")
	}
	fb := h.Display().Framebuffer()
	if fb.Width() != 240 || fb.Height() != 240 || fb.StrideBytes() != 480 {
		t.Fatalf("default framebuffer %dx%d stride %d", fb.Width(), fb.Height(), fb.StrideBytes())
	}
}

func TestRunHeadlessWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.png")
	cfg := HeadlessConfig{Snapshot: path, SnapshotEvery: 5 * time.Millisecond}
	err := RunHeadless(context.Background(), Options{Width: 8, Height: 4}, cfg, func(ctx context.Context, h HAL) error {
		fb := h.Display().Framebuffer()
		fb.ClearRGB(0xFF, 0, 0)
		return fb.Present()
	})
	if err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	r, g, _, _ := img.At(1, 1).RGBA()
	if r>>8 != 0xFF || g != 0 {
		t.Fatalf("pixel = %v", img.At(1, 1))
	}
}

func TestRunHeadlessDuration(t *testing.T) {
	err := RunHeadless(context.Background(), Options{}, HeadlessConfig{Duration: 10 * time.Millisecond}, func(ctx context.Context, h HAL) error {
		<-ctx.Done()
		return ctx.Err()
	})
	if err != nil {
		t.Fatalf("RunHeadless = %v", err)
	}
}

func TestFramebufferWithBufferHoldsLock(t *testing.T) {
	fb := newHostFramebuffer(2, 2)
	var lf LockedFramebuffer = fb
	lf.WithBuffer(func(buf []byte) {
		if fb.mu.TryLock() {
			fb.mu.Unlock()
			t.Fatal("buffer handed out without the lock")
		}
		buf[0] = 0xAB
	})

	dst := make([]byte, len(fb.buf))
	fb.snapshotRGB565(dst)
	if dst[0] != 0xAB {
		t.Fatalf("snapshot[0] = %#x", dst[0])
	}
}
