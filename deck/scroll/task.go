package scroll

import (
	"context"
	"log/slog"
	"time"

	"taskdeck/deck/loop"
)

// Interval is the default scroll period.
const Interval = 3 * time.Second

// Task advances a Window on a fixed period and hands changed frames to present.
type Task struct {
	win     *Window
	present func(Frame)
	period  time.Duration
	log     *slog.Logger
}

// NewTask returns a scroll task. A non-positive period uses Interval.
func NewTask(win *Window, present func(Frame), period time.Duration, log *slog.Logger) *Task {
	if period <= 0 {
		period = Interval
	}
	if log == nil {
		log = slog.Default()
	}
	return &Task{win: win, present: present, period: period, log: log}
}

// Step runs one tick. It reports whether a frame was presented.
func (t *Task) Step() bool {
	f, changed := t.win.Tick()
	if !changed {
		return false
	}
	t.log.Debug("scroll", "offset", f.Offset, "count", f.Count, "mode", f.Mode.String())
	if t.present != nil {
		t.present(f)
	}
	return true
}

// Run ticks until ctx is done.
func (t *Task) Run(ctx context.Context) error {
	return loop.Every(ctx, t.period, t.period, func() { t.Step() })
}
