package screen

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"tinygo.org/x/tinyfont/freemono"

	"taskdeck/deck/face"
	"taskdeck/deck/taskstore"
	"taskdeck/deck/text"
	"taskdeck/hal"
)

func record(summary, due string) taskstore.Record {
	return taskstore.Record{
		Summary: text.New(summary, taskstore.SummaryBytes),
		Due:     text.New(due, taskstore.DueBytes),
		Valid:   true,
	}
}

func TestLabelDirtyOnlyOnChange(t *testing.T) {
	var l Label
	l.SetString("a")
	if !l.Dirty() {
		t.Fatal("new text did not mark the label dirty")
	}
	l.dirty = false
	l.SetString("a")
	if l.Dirty() {
		t.Fatal("same text marked the label dirty")
	}
}

func TestUpdateVisibleClearsMissingSlots(t *testing.T) {
	s := New(200, 200, EPaperStyle, nil)
	if got := s.rows[2].summary.Text().String(); got != "等待数据..." {
		t.Fatalf("initial slot = %q", got)
	}
	s.UpdateVisible([]taskstore.Record{record("a", "01-02 03:04"), {}, record("c", "x")})

	var got []string
	for _, r := range s.rows {
		got = append(got, r.summary.Text().String()+"|"+r.due.Text().String())
	}
	want := []string{"a|01-02 03:04", "|", "c|x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestUpdateCount(t *testing.T) {
	s := New(200, 200, EPaperStyle, nil)
	s.UpdateCount(7)
	if got := s.count.Text().String(); got != "待办: 7" {
		t.Fatalf("count = %q", got)
	}
	l := New(240, 240, LCDStyle, nil)
	l.UpdateCount(12)
	if got := l.count.Text().String(); got != "12" {
		t.Fatalf("count = %q", got)
	}
}

func TestDrawIsIncremental(t *testing.T) {
	s := New(240, 240, LCDStyle, nil)
	c := NewCanvas(240, 240)

	if area := s.Draw(c); area != c.Bounds() {
		t.Fatalf("first draw = %v", area)
	}
	if area := s.Draw(c); !area.Empty() {
		t.Fatalf("idle draw = %v", area)
	}

	s.UpdateClock(text.New("11-15 06:13", 32))
	area := s.Draw(c)
	if area != s.clock.Rect {
		t.Fatalf("clock draw = %v, want %v", area, s.clock.Rect)
	}
	lit := false
	bg := rgb565From888(LCDStyle.Background.R, LCDStyle.Background.G, LCDStyle.Background.B)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if c.At(x, y) != bg {
				lit = true
			}
		}
	}
	if !lit {
		t.Fatal("clock text left no pixels")
	}
}

func TestDrawStaysInsideLabel(t *testing.T) {
	s := New(240, 240, LCDStyle, nil)
	c := NewCanvas(240, 240)
	s.Draw(c)
	before := append([]uint16(nil), c.Pix()...)

	s.UpdateVisible([]taskstore.Record{record(strings.Repeat("W", 80), "x")})
	area := s.Draw(c)
	for y := 0; y < 240; y++ {
		for x := 0; x < 240; x++ {
			if image.Pt(x, y).In(area) {
				continue
			}
			if c.At(x, y) != before[y*240+x] {
				t.Fatalf("pixel (%d,%d) outside %v changed", x, y, area)
			}
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	f := &freemono.Regular9pt7b
	if got := truncateToWidth(f, "short", 1000); got != "short" {
		t.Fatalf("fitting text changed: %q", got)
	}
	got := truncateToWidth(f, strings.Repeat("x", 100), 100)
	if !strings.HasSuffix(got, "…") || textWidth(f, got) > 100 {
		t.Fatalf("truncated = %q (%dpx)", got, textWidth(f, got))
	}
	if got := truncateToWidth(f, "abc", 0); got != "" {
		t.Fatalf("zero width = %q", got)
	}
}

func inkIn(c *Canvas, r image.Rectangle, bg uint16) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c.At(x, y) != bg {
				n++
			}
		}
	}
	return n
}

func TestChineseSummaryDrawsInk(t *testing.T) {
	s := New(200, 200, EPaperStyle, nil)
	c := NewCanvas(200, 200)
	s.Draw(c)

	s.UpdateVisible([]taskstore.Record{record("暂无任务", "无截止")})
	s.Draw(c)
	bg := rgb565From888(0xFF, 0xFF, 0xFF)
	if n := inkIn(c, s.rows[0].summary.Rect, bg); n == 0 {
		t.Fatal("summary 暂无任务 left no ink")
	}
	if n := inkIn(c, s.rows[0].due.Rect, bg); n == 0 {
		t.Fatal("due 无截止 left no ink")
	}
	if n := inkIn(c, s.count.Rect, bg); n == 0 {
		t.Fatal("count label left no ink")
	}
}

func TestChineseTextWidth(t *testing.T) {
	if got := textWidth(face.Pixel12, "暂无任务"); got != 48 {
		t.Fatalf("width = %d, want 48", got)
	}
	if got := textWidth(face.Pixel12, "ab"); got != 12 {
		t.Fatalf("width = %d, want 12", got)
	}
	got := truncateToWidth(face.Pixel12, strings.Repeat("任务", 20), 100)
	if !strings.HasSuffix(got, "…") || textWidth(face.Pixel12, got) > 100 {
		t.Fatalf("truncated = %q (%dpx)", got, textWidth(face.Pixel12, got))
	}
}

func TestBinarizerThreshold(t *testing.T) {
	b := NewBinarizer(nil)
	cases := []struct {
		rgb  [3]uint8
		want bool
	}{
		{[3]uint8{0, 0, 0}, true},
		{[3]uint8{0xFF, 0xFF, 0xFF}, false},
		{[3]uint8{127, 127, 127}, true},
		{[3]uint8{128, 128, 128}, false},
		{[3]uint8{0xFF, 0, 0}, true},
		{[3]uint8{0, 0xFF, 0}, false},
	}
	for _, tc := range cases {
		p := rgb565From888(tc.rgb[0], tc.rgb[1], tc.rgb[2])
		if got := b.Ink(p); got != tc.want {
			t.Fatalf("Ink(%v) = %v, want %v", tc.rgb, got, tc.want)
		}
	}
}

type fakePanel struct {
	w, h    int16
	ink     map[image.Point]bool
	cleared int
	regions []image.Rectangle
}

func newFakePanel(w, h int16) *fakePanel {
	return &fakePanel{w: w, h: h, ink: map[image.Point]bool{}}
}

func (p *fakePanel) Size() (int16, int16) { return p.w, p.h }
func (p *fakePanel) SetPixel(x, y int16, c color.RGBA) {
	p.ink[image.Pt(int(x), int(y))] = c.R == 0
}
func (p *fakePanel) Display() error { return p.DisplayRegion(0, 0, p.w, p.h) }
func (p *fakePanel) DisplayRegion(x, y, w, h int16) error {
	p.regions = append(p.regions, image.Rect(int(x), int(y), int(x+w), int(y+h)))
	return nil
}
func (p *fakePanel) ClearBuffer() {
	p.cleared++
	clear(p.ink)
}

var _ hal.Panel = (*fakePanel)(nil)

func TestBinarizerFlush(t *testing.T) {
	p := newFakePanel(4, 2)
	b := NewBinarizer(p)
	px := []uint16{
		0x0000, 0xFFFF, 0x0000, 0xFFFF,
		0xFFFF, 0x0000, 0xFFFF, 0x0000,
	}
	if err := b.Flush(image.Rect(0, 0, 8, 8), px, 4); err != nil {
		t.Fatal(err)
	}
	if p.cleared != 1 {
		t.Fatalf("cleared %d times", p.cleared)
	}
	if diff := cmp.Diff([]image.Rectangle{image.Rect(0, 0, 4, 2)}, p.regions); diff != "" {
		t.Fatalf("regions (-want +got):\n%s", diff)
	}
	for i, v := range px {
		pt := image.Pt(i%4, i/4)
		if p.ink[pt] != (v == 0) {
			t.Fatalf("pixel %v ink = %v", pt, p.ink[pt])
		}
	}
}

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
func (f *fakeFB) ClearRGB(r, g, b uint8)  {}
func (f *fakeFB) Present() error          { f.presents++; return nil }

func TestFramebufferFlusherCopiesArea(t *testing.T) {
	fb := &fakeFB{w: 3, h: 2, buf: make([]byte, 12)}
	px := []uint16{1, 2, 3, 4, 0xABCD, 6}
	if err := (FramebufferFlusher{FB: fb}).Flush(image.Rect(1, 1, 2, 2), px, 3); err != nil {
		t.Fatal(err)
	}
	want := make([]byte, 12)
	want[8], want[9] = 0xCD, 0xAB
	if diff := cmp.Diff(want, fb.buf); diff != "" {
		t.Fatalf("buffer (-want +got):\n%s", diff)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d", fb.presents)
	}
}

// lockedFB only hands out its buffer through WithBuffer.
type lockedFB struct {
	fakeFB
	held  bool
	calls int
}

func (f *lockedFB) Buffer() []byte { return nil }

func (f *lockedFB) WithBuffer(fn func([]byte)) {
	f.held = true
	f.calls++
	fn(f.buf)
	f.held = false
}

func (f *lockedFB) Present() error {
	if f.held {
		return errors.New("present while the buffer is held")
	}
	return f.fakeFB.Present()
}

func TestFramebufferFlusherWritesUnderLock(t *testing.T) {
	fb := &lockedFB{fakeFB: fakeFB{w: 2, h: 1, buf: make([]byte, 4)}}
	if err := (FramebufferFlusher{FB: fb}).Flush(image.Rect(0, 0, 2, 1), []uint16{0x1234, 0x5678}, 2); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0x34, 0x12, 0x78, 0x56}, fb.buf); diff != "" {
		t.Fatalf("buffer (-want +got):\n%s", diff)
	}
	if fb.calls != 1 || fb.presents != 1 {
		t.Fatalf("locked writes = %d presents = %d", fb.calls, fb.presents)
	}
}

type recordingFlusher struct {
	areas []image.Rectangle
	full  bool
}

func (r *recordingFlusher) Flush(area image.Rectangle, _ []uint16, _ int) error {
	r.areas = append(r.areas, area)
	return nil
}

func (r *recordingFlusher) FullFrame() bool { return r.full }

func TestDriverHandleBacksOff(t *testing.T) {
	f := &recordingFlusher{}
	d := NewDriver(New(100, 100, LCDStyle, nil), NewCanvas(100, 100), f, nil)

	if got := d.Handle(); got != MinDelay {
		t.Fatalf("first delay = %v", got)
	}
	want := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 40 * time.Millisecond}
	for _, w := range want {
		if got := d.Handle(); got != w {
			t.Fatalf("idle delay = %v, want %v", got, w)
		}
	}
	for i := 0; i < 10; i++ {
		d.Handle()
	}
	if got := d.Handle(); got != MaxDelay {
		t.Fatalf("capped delay = %v", got)
	}

	d.Lock()
	d.Screen().UpdateCount(3)
	d.Unlock()
	if got := d.Handle(); got != MinDelay {
		t.Fatalf("delay after change = %v", got)
	}
	if d.Flushes() != 2 || len(f.areas) != 2 {
		t.Fatalf("flushes = %d", d.Flushes())
	}
	if f.areas[1] == image.Rect(0, 0, 100, 100) {
		t.Fatal("count change flushed the whole canvas")
	}
}

func TestDriverFullFrameFlusher(t *testing.T) {
	f := &recordingFlusher{full: true}
	d := NewDriver(New(100, 100, EPaperStyle, nil), NewCanvas(100, 100), f, nil)
	d.Handle()
	d.Screen().UpdateClock(text.New("x", 8))
	d.Handle()
	for _, a := range f.areas {
		if a != image.Rect(0, 0, 100, 100) {
			t.Fatalf("area = %v", a)
		}
	}
}
