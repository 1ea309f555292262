// Package clock keeps the wall-clock label current.
package clock

import (
	"context"
	"time"

	"taskdeck/deck/loop"
	"taskdeck/deck/text"
	"taskdeck/deck/timefmt"
)

const (
	// Interval is the default refresh period.
	Interval = 10 * time.Second

	// StartDelay leaves time for the first time sync before the label is drawn.
	StartDelay = 2 * time.Second
)

// Task formats the current time and pushes it to present.
type Task struct {
	now     func() time.Time
	layout  timefmt.Layout
	present func(text.Text)
	first   time.Duration
	period  time.Duration
	last    text.Text
}

// NewTask returns a clock task. nil now uses time.Now; non-positive period uses Interval.
func NewTask(now func() time.Time, layout timefmt.Layout, present func(text.Text), period time.Duration) *Task {
	if now == nil {
		now = time.Now
	}
	if period <= 0 {
		period = Interval
	}
	return &Task{now: now, layout: layout, present: present, first: StartDelay, period: period}
}

// Step formats now and presents it. It returns the label pushed.
func (t *Task) Step() text.Text {
	t.layout.FormatTimeInto(&t.last, t.now())
	if t.present != nil {
		t.present(t.last)
	}
	return t.last
}

// Run steps after StartDelay and then every period until ctx is done.
func (t *Task) Run(ctx context.Context) error {
	return loop.Every(ctx, t.first, t.period, func() { t.Step() })
}
