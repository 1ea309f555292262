package loop

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestEveryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Every(ctx, 0, time.Millisecond, func() {
			if calls.Add(1) == 3 {
				cancel()
			}
		})
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Every did not stop")
	}
	if calls.Load() < 3 {
		t.Fatalf("calls = %d", calls.Load())
	}
}

func TestEveryCancelledBeforeFirst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := Every(ctx, time.Hour, time.Hour, func() { called = true })
	if !errors.Is(err, context.Canceled) || called {
		t.Fatalf("err=%v called=%v", err, called)
	}
}

func TestClamp(t *testing.T) {
	lo, hi := 5*time.Millisecond, 500*time.Millisecond
	cases := map[time.Duration]time.Duration{
		0:                     lo,
		10 * time.Millisecond: 10 * time.Millisecond,
		time.Second:           hi,
	}
	for in, want := range cases {
		if got := Clamp(in, lo, hi); got != want {
			t.Fatalf("Clamp(%v) = %v, want %v", in, got, want)
		}
	}
}
