package scroll

import (
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"taskdeck/deck/taskstore"
	"taskdeck/deck/text"
)

func fill(s *taskstore.Store, n int) {
	recs := make([]taskstore.Record, n)
	for i := range recs {
		recs[i].Summary = text.New("t"+strconv.Itoa(i), taskstore.SummaryBytes)
	}
	s.ReplaceAll(recs)
}

func visible(f Frame) []string {
	out := make([]string, 0, VisibleSlots)
	for _, r := range f.Slots {
		if !r.Valid {
			out = append(out, "-")
			continue
		}
		out = append(out, r.Summary.String())
	}
	return out
}

func TestNext(t *testing.T) {
	tests := []struct {
		offset, count, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{2, 3, 0},
		{0, 4, 1},
		{3, 4, 0},
		{4, 5, 0},
		{7, 5, 3},
		{-2, 5, 1},
	}
	for _, tt := range tests {
		if got := Next(tt.offset, tt.count, VisibleSlots); got != tt.want {
			t.Fatalf("Next(%d, %d) = %d, want %d", tt.offset, tt.count, got, tt.want)
		}
	}
}

func TestStaticWindowNeverRotates(t *testing.T) {
	for count := 0; count <= 3; count++ {
		s := taskstore.New()
		fill(s, count)
		w := New(s)
		w.Reset()

		want := []string{"-", "-", "-"}
		for i := 0; i < count; i++ {
			want[i] = "t" + strconv.Itoa(i)
		}
		for tick := 0; tick < 7; tick++ {
			f, changed := w.Tick()
			if changed {
				t.Fatalf("count=%d tick=%d: static tick reported change", count, tick)
			}
			if f.Offset != 0 || f.Mode != Static || w.Offset() != 0 {
				t.Fatalf("count=%d tick=%d: frame %+v", count, tick, f)
			}
			if diff := cmp.Diff(want, visible(f)); diff != "" {
				t.Fatalf("count=%d tick=%d (-want +got):\n%s", count, tick, diff)
			}
		}
	}
}

func TestCircularWindowRotatesAndWraps(t *testing.T) {
	const count = 5
	s := taskstore.New()
	fill(s, count)
	w := New(s)
	start := w.Reset()

	for k := 1; k <= 2*count; k++ {
		f, changed := w.Tick()
		if !changed || f.Mode != Circular {
			t.Fatalf("tick %d: changed=%v mode=%s", k, changed, f.Mode)
		}
		want := []string{
			fmt.Sprintf("t%d", k%count),
			fmt.Sprintf("t%d", (k+1)%count),
			fmt.Sprintf("t%d", (k+2)%count),
		}
		if diff := cmp.Diff(want, visible(f)); diff != "" {
			t.Fatalf("tick %d (-want +got):\n%s", k, diff)
		}
		if k%count == 0 {
			if diff := cmp.Diff(visible(start), visible(f)); diff != "" {
				t.Fatalf("tick %d: not periodic (-start +got):\n%s", k, diff)
			}
		}
	}
}

func TestResetOnReplaceMidCycle(t *testing.T) {
	s := taskstore.New()
	fill(s, 6)
	w := New(s)
	w.Reset()
	w.Tick()
	w.Tick()
	if w.Offset() != 2 {
		t.Fatalf("offset = %d, want 2", w.Offset())
	}

	fill(s, 6)
	f := w.Reset()
	if f.Offset != 0 || w.Offset() != 0 {
		t.Fatalf("after reset offset = %d/%d", f.Offset, w.Offset())
	}
	if diff := cmp.Diff([]string{"t0", "t1", "t2"}, visible(f)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestResetAlwaysEmitsNewFrame(t *testing.T) {
	s := taskstore.New()
	fill(s, 2)
	w := New(s)
	a := w.Reset()
	b := w.Reset()
	if b.Seq <= a.Seq {
		t.Fatalf("seq %d then %d", a.Seq, b.Seq)
	}
}

func TestTickAfterUnseenReplaceRestartsAtZero(t *testing.T) {
	s := taskstore.New()
	fill(s, 8)
	w := New(s)
	w.Reset()
	for i := 0; i < 5; i++ {
		w.Tick()
	}

	// The store shrinks before the window hears about it.
	fill(s, 4)
	f, changed := w.Tick()
	if !changed || f.Offset != 0 || f.Count != 4 {
		t.Fatalf("frame %+v changed=%v", f, changed)
	}
}

func TestTickShrinkToStaticRenders(t *testing.T) {
	s := taskstore.New()
	fill(s, 5)
	w := New(s)
	w.Reset()
	w.Tick()

	fill(s, 2)
	f, changed := w.Tick()
	if !changed || f.Mode != Static || f.Offset != 0 {
		t.Fatalf("frame %+v changed=%v", f, changed)
	}
	if _, changed := w.Tick(); changed {
		t.Fatal("second static tick should be a no-op")
	}
}

func TestConcurrentTickAndReplaceStayInRange(t *testing.T) {
	s := taskstore.New()
	w := New(s)
	sizes := []int{0, 5, 1, 9, 4, 10, 3}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			fill(s, sizes[i%len(sizes)])
			w.Reset()
		}
	}()
	errs := make(chan string, 1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			f, _ := w.Tick()
			if f.Count > 0 && (f.Offset < 0 || f.Offset >= f.Count) {
				select {
				case errs <- fmt.Sprintf("offset %d outside [0,%d)", f.Offset, f.Count):
				default:
				}
				return
			}
			if f.Count <= VisibleSlots && f.Offset != 0 {
				select {
				case errs <- fmt.Sprintf("static frame with offset %d", f.Offset):
				default:
				}
				return
			}
		}
	}()
	wg.Wait()
	select {
	case msg := <-errs:
		t.Fatal(msg)
	default:
	}
}
