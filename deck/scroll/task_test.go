package scroll

import (
	"context"
	"testing"
	"time"

	"taskdeck/deck/taskstore"
)

func TestTaskStepPresentsOnlyChanges(t *testing.T) {
	s := taskstore.New()
	fill(s, 2)
	w := New(s)
	w.Reset()

	var frames []Frame
	task := NewTask(w, func(f Frame) { frames = append(frames, f) }, time.Hour, nil)
	for i := 0; i < 3; i++ {
		if task.Step() {
			t.Fatal("static step presented a frame")
		}
	}

	fill(s, 4)
	if !task.Step() || !task.Step() {
		t.Fatal("circular steps should present")
	}
	if len(frames) != 2 || frames[0].Offset != 0 || frames[1].Offset != 1 {
		t.Fatalf("frames = %+v", frames)
	}
}

func TestTaskRunStops(t *testing.T) {
	s := taskstore.New()
	fill(s, 5)
	task := NewTask(New(s), nil, time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := task.Run(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
