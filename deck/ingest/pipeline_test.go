package ingest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"taskdeck/deck/logger"
	"taskdeck/deck/render"
	"taskdeck/deck/scroll"
	"taskdeck/deck/taskstore"
	"taskdeck/deck/timefmt"
)

type discard struct{}

func (discard) WriteLineString(string) {}
func (discard) WriteLineBytes([]byte)  {}

func newPipeline() (*Pipeline, *taskstore.Store, *scroll.Window) {
	s := taskstore.New()
	w := scroll.New(s)
	p := New(s, w, WithLogger(logger.New(discard{}, logger.Options{})))
	return p, s, w
}

func stored(s *taskstore.Store) []string {
	recs := make([]taskstore.Record, taskstore.Capacity)
	n := s.Records(recs)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = recs[i].Summary.String() + "|" + recs[i].Due.String()
	}
	return out
}

func payloadOf(n int) []byte {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `{"summary":"task %d","dueTimestamp":%d}`, i, int64(1700000000000)+int64(i)*60000)
	}
	b.WriteByte(']')
	return []byte(b.String())
}

func TestIngestFormatsRecords(t *testing.T) {
	p, s, _ := newPipeline()
	payload := `[
		{"summary":"写周报","dueTimestamp":1700000000000},
		{"dueTimestamp":"1700000060000"},
		{"summary":"no due"},
		{"summary":"tiny due","dueTimestamp":999}
	]`
	if err := p.Ingest([]byte(payload)); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"写周报|11月15日06:13",
		"无标题|11月15日06:14",
		"no due|00月00日00:00",
		"tiny due|00月00日00:00",
	}
	if diff := cmp.Diff(want, stored(s)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestIngestCapacityClamp(t *testing.T) {
	for _, n := range []int{0, 1, 3, 9, 10, 11, 40} {
		p, s, _ := newPipeline()
		if err := p.Ingest(payloadOf(n)); err != nil {
			t.Fatal(err)
		}
		want := min(n, taskstore.Capacity)
		if s.Count() != want {
			t.Fatalf("n=%d: count = %d, want %d", n, s.Count(), want)
		}
		got := stored(s)
		for i := range got {
			if !strings.HasPrefix(got[i], fmt.Sprintf("task %d|", i)) {
				t.Fatalf("n=%d: slot %d = %q", n, i, got[i])
			}
		}
	}
}

func TestIngestTruncatesSummary(t *testing.T) {
	p, s, _ := newPipeline()
	long := strings.Repeat("界", 40)
	if err := p.Ingest([]byte(`[{"summary":"` + long + `"}]`)); err != nil {
		t.Fatal(err)
	}
	recs := make([]taskstore.Record, 1)
	s.Records(recs)
	if recs[0].Summary.Len() > taskstore.SummaryBytes {
		t.Fatalf("summary len %d", recs[0].Summary.Len())
	}
	if !strings.HasPrefix(long, recs[0].Summary.String()) || recs[0].Summary.Len() != 63 {
		t.Fatalf("summary = %q (%d bytes)", recs[0].Summary.String(), recs[0].Summary.Len())
	}
}

func TestMalformedPayloadKeepsStore(t *testing.T) {
	p, s, _ := newPipeline()
	if err := p.Ingest(payloadOf(3)); err != nil {
		t.Fatal(err)
	}
	before := stored(s)

	for _, bad := range []string{`{"summary":"x"}`, `"x"`, `[{`, ``} {
		if err := p.Ingest([]byte(bad)); err == nil {
			t.Fatalf("Ingest(%q) succeeded", bad)
		}
	}
	if s.Count() != 3 {
		t.Fatalf("count = %d, want 3", s.Count())
	}
	if diff := cmp.Diff(before, stored(s)); diff != "" {
		t.Fatalf("store changed (-before +after):\n%s", diff)
	}
}

func TestIngestResetsScrollAndNotifies(t *testing.T) {
	p, _, w := newPipeline()
	var frames []scroll.Frame
	p.OnCommit = func(f scroll.Frame) { frames = append(frames, f) }

	if err := p.Ingest(payloadOf(6)); err != nil {
		t.Fatal(err)
	}
	w.Tick()
	w.Tick()
	if w.Offset() != 2 {
		t.Fatalf("offset = %d", w.Offset())
	}

	if err := p.Ingest(payloadOf(6)); err != nil {
		t.Fatal(err)
	}
	if w.Offset() != 0 {
		t.Fatalf("offset after replace = %d", w.Offset())
	}
	if len(frames) != 2 || frames[1].Offset != 0 || frames[1].Count != 6 {
		t.Fatalf("frames = %+v", frames)
	}
	if frames[1].Seq <= frames[0].Seq {
		t.Fatal("commit frames must be newer than earlier ones")
	}
}

func TestIngestLayoutAndLocale(t *testing.T) {
	s := taskstore.New()
	p := New(s, nil,
		WithLogger(logger.New(discard{}, logger.Options{})),
		WithDueLayout(timefmt.Deadline),
		WithLocale(render.Locale{Untitled: "untitled", Empty: "none"}),
	)
	p.Apply([]Raw{{DueMillis: 1700000000000}, {Summary: "x", HasSummary: true}})
	want := []string{"untitled|截止: 11-15 06:13", "x|无截止"}
	if diff := cmp.Diff(want, stored(s)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestRunConsumesInbox(t *testing.T) {
	p, s, _ := newPipeline()
	in := NewInbox(2)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx, in) }()

	in.Offer(payloadOf(4))
	deadline := time.After(2 * time.Second)
	for s.Count() != 4 {
		select {
		case <-deadline:
			t.Fatal("payload not ingested")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("Run returned %v", err)
	}
}

func TestInboxDropsOldest(t *testing.T) {
	in := NewInbox(2)
	in.Offer([]byte("1"))
	in.Offer([]byte("2"))
	if !in.Offer([]byte("3")) {
		t.Fatal("expected a drop")
	}
	if in.Dropped() != 1 {
		t.Fatalf("dropped = %d", in.Dropped())
	}
	got := []string{string(<-in.C()), string(<-in.C())}
	if diff := cmp.Diff([]string{"2", "3"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
