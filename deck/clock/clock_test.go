package clock

import (
	"context"
	"testing"
	"time"

	"taskdeck/deck/text"
	"taskdeck/deck/timefmt"
)

func TestStepPresentsFormattedTime(t *testing.T) {
	now := time.Unix(1700000000, 0)
	var got []string
	task := NewTask(func() time.Time { return now }, timefmt.Compact, func(t text.Text) {
		got = append(got, t.String())
	}, 0)

	if l := task.Step(); l.String() != "11月15日06:13" {
		t.Fatalf("Step = %q", l.String())
	}
	now = now.Add(time.Minute)
	task.Step()
	if len(got) != 2 || got[1] != "11月15日06:14" {
		t.Fatalf("presented %q", got)
	}
}

func TestRunWaitsForStartDelay(t *testing.T) {
	calls := 0
	task := NewTask(nil, timefmt.Clock, func(text.Text) { calls++ }, time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_ = task.Run(ctx)
	if calls != 0 {
		t.Fatalf("presented %d times before the start delay", calls)
	}
}

func TestRunTicks(t *testing.T) {
	calls := make(chan struct{}, 8)
	task := NewTask(nil, timefmt.Clock, func(text.Text) {
		select {
		case calls <- struct{}{}:
		default:
		}
	}, time.Millisecond)
	task.first = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = task.Run(ctx)
		close(done)
	}()
	for i := 0; i < 3; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("clock did not tick")
		}
	}
	cancel()
	<-done
}
