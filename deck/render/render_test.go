package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"taskdeck/deck/scroll"
	"taskdeck/deck/taskstore"
	"taskdeck/deck/text"
	"taskdeck/deck/timefmt"
)

type trackingLock struct {
	held    bool
	locks   int
	unlocks int
}

func (l *trackingLock) Lock()   { l.held = true; l.locks++ }
func (l *trackingLock) Unlock() { l.held = false; l.unlocks++ }

type recordingSink struct {
	lock     *trackingLock
	unlocked int
	calls    []string
	visible  [][]string
	clock    string
	count    int
}

func (s *recordingSink) check() {
	if !s.lock.held {
		s.unlocked++
	}
}

func (s *recordingSink) UpdateVisible(slots []taskstore.Record) {
	s.check()
	s.calls = append(s.calls, "visible")
	row := make([]string, len(slots))
	for i, r := range slots {
		if r.Valid {
			row[i] = r.Summary.String() + "|" + r.Due.String()
		}
	}
	s.visible = append(s.visible, row)
}

func (s *recordingSink) UpdateClock(t text.Text) {
	s.check()
	s.calls = append(s.calls, "clock")
	s.clock = t.String()
}

func (s *recordingSink) UpdateCount(n int) {
	s.check()
	s.calls = append(s.calls, "count")
	s.count = n
}

func newTestPresenter() (*Presenter, *recordingSink, *trackingLock) {
	l := &trackingLock{}
	s := &recordingSink{lock: l}
	return NewPresenter(l, s, DefaultLocale, timefmt.Compact), s, l
}

func frameOf(seq uint64, summaries ...string) scroll.Frame {
	f := scroll.Frame{Seq: seq, Count: len(summaries)}
	for i, s := range summaries {
		if i >= scroll.VisibleSlots {
			break
		}
		f.Slots[i] = taskstore.Record{
			Summary: text.New(s, taskstore.SummaryBytes),
			Due:     text.New("d", taskstore.DueBytes),
			Valid:   true,
		}
	}
	return f
}

func TestFramePushesUnderLock(t *testing.T) {
	p, s, l := newTestPresenter()
	if !p.Frame(frameOf(1, "a", "b")) {
		t.Fatal("frame dropped")
	}
	p.Clock(text.New("11-15 06:13", 32))

	if s.unlocked != 0 {
		t.Fatalf("%d sink calls without the display lock", s.unlocked)
	}
	if l.held || l.locks != 2 || l.unlocks != 2 {
		t.Fatalf("lock state held=%v locks=%d unlocks=%d", l.held, l.locks, l.unlocks)
	}
	if diff := cmp.Diff([]string{"count", "visible", "clock"}, s.calls); diff != "" {
		t.Fatalf("calls (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a|d", "b|d", ""}, s.visible[0]); diff != "" {
		t.Fatalf("visible (-want +got):\n%s", diff)
	}
	if s.count != 2 || s.clock != "11-15 06:13" {
		t.Fatalf("count=%d clock=%q", s.count, s.clock)
	}
}

func TestFrameEmptyShowsPlaceholder(t *testing.T) {
	p, s, _ := newTestPresenter()
	p.Frame(frameOf(1))
	want := []string{"暂无任务|00月00日00:00", "", ""}
	if diff := cmp.Diff(want, s.visible[0]); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if s.count != 0 {
		t.Fatalf("count = %d", s.count)
	}
}

func TestFrameDropsStale(t *testing.T) {
	p, s, l := newTestPresenter()
	p.Frame(frameOf(5, "new"))
	if p.Frame(frameOf(4, "old")) {
		t.Fatal("stale frame was presented")
	}
	if len(s.visible) != 1 || s.visible[0][0] != "new|d" {
		t.Fatalf("visible = %v", s.visible)
	}
	if l.held {
		t.Fatal("lock leaked on early return")
	}
	if !p.Frame(frameOf(5, "same seq")) {
		t.Fatal("equal seq should be presented")
	}
}
