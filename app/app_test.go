package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"taskdeck/deck/feed"
	"taskdeck/deck/logger"
	"taskdeck/deck/taskstore"
	"taskdeck/deck/text"
	"taskdeck/hal"
)

type discard struct{}

func (discard) WriteLineString(string) {}
func (discard) WriteLineBytes([]byte)  {}

type fakeClock struct{}

func (fakeClock) Now() time.Time { return time.Unix(1700000000, 0) }

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) Present() error          { f.presents++; return nil }
func (f *fakeFB) ClearRGB(r, g, b uint8) {
	for i := range f.buf {
		f.buf[i] = 0xFF
	}
}

type fakeHAL struct{ fb *fakeFB }

func newFakeHAL() *fakeHAL {
	return &fakeHAL{fb: &fakeFB{w: 120, h: 120, buf: make([]byte, 120*120*2)}}
}

func (h *fakeHAL) Logger() hal.Logger           { return discard{} }
func (h *fakeHAL) Display() hal.Display         { return h }
func (h *fakeHAL) Clock() hal.Clock             { return fakeClock{} }
func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Panel() hal.Panel             { return nil }

func quiet() Config {
	return Config{Logger: logger.New(discard{}, logger.Options{})}
}

func TestRunIngestsFeed(t *testing.T) {
	h := newFakeHAL()
	cfg := quiet()
	cfg.Source = feed.Static([]byte(`[{"summary":"a"},{"summary":"b"},{"summary":"c"},{"summary":"d"}]`))
	cfg.Scroll = 5 * time.Millisecond

	d, err := New(h, cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	deadline := time.After(5 * time.Second)
	for d.store.Count() != 4 || d.win.Offset() == 0 {
		select {
		case <-deadline:
			t.Fatalf("count = %d offset = %d", d.store.Count(), d.win.Offset())
		case <-time.After(time.Millisecond):
		}
	}
	for d.driver.Flushes() == 0 {
		select {
		case <-deadline:
			t.Fatal("display never flushed")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run = %v", err)
	}

	recs := make([]taskstore.Record, taskstore.Capacity)
	if n := d.store.Records(recs); n != 4 || recs[3].Summary.String() != "d" {
		t.Fatalf("records = %d", n)
	}
}

type fakeDisplay struct {
	sync.Mutex
	count   int
	summary string
	closed  chan struct{}
}

func (f *fakeDisplay) UpdateVisible(slots []taskstore.Record) {
	if len(slots) > 0 {
		f.summary = slots[0].Summary.String()
	}
}
func (f *fakeDisplay) UpdateClock(text.Text) {}
func (f *fakeDisplay) UpdateCount(n int)     { f.count = n }

func (f *fakeDisplay) Run(ctx context.Context) error {
	select {
	case <-f.closed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestInjectedDisplayReplacesHAL(t *testing.T) {
	h := newFakeHAL()
	disp := &fakeDisplay{closed: make(chan struct{})}
	cfg := quiet()
	cfg.Display = disp
	cfg.Source = feed.Static([]byte(`[{"summary":"写周报"},{"summary":"b"}]`))

	d, err := New(h, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d.driver != nil {
		t.Fatal("HAL driver built next to an injected display")
	}
	done := make(chan error, 1)
	go func() { done <- d.Run(context.Background()) }()

	deadline := time.After(5 * time.Second)
	for {
		disp.Lock()
		count, summary := disp.count, disp.summary
		disp.Unlock()
		if count == 2 && summary == "写周报" {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("count = %d summary = %q", count, summary)
		case <-time.After(time.Millisecond):
		}
	}

	close(disp.closed)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run after close = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("closing the display did not stop the deck")
	}
	if h.fb.presents != 0 {
		t.Fatalf("HAL framebuffer presented %d times", h.fb.presents)
	}
}

func TestNewRejectsUnknownMode(t *testing.T) {
	cfg := quiet()
	cfg.Mode = "oled"
	if _, err := New(newFakeHAL(), cfg); err == nil {
		t.Fatal("unknown mode accepted")
	}
}

func TestEPaperFallsBackToFramebuffer(t *testing.T) {
	cfg := quiet()
	cfg.Mode = ModeEPaper
	d, err := New(newFakeHAL(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d.driver == nil {
		t.Fatal("no display driver")
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	h := newFakeHAL()
	d, err := New(h, quiet())
	if err != nil {
		t.Fatal(err)
	}
	err = d.guard("boom", func() error { panic("bad") })()
	if err == nil || h.fb.presents == 0 {
		t.Fatalf("guard = %v, presents = %d", err, h.fb.presents)
	}
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("日本語abc", 2)
	if p != "日本" || r != "語abc" {
		t.Fatalf("takeRunes = %q %q", p, r)
	}
	if p, r := takeRunes("ab", 5); p != "ab" || r != "" {
		t.Fatalf("short = %q %q", p, r)
	}
}
