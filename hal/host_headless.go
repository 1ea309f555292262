//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/natefinch/atomic"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	// Duration stops the run after the given time. Zero runs until ctx is done.
	Duration time.Duration

	// Snapshot, when set, is a PNG path rewritten with the framebuffer contents
	// every SnapshotEvery and once more on exit.
	Snapshot      string
	SnapshotEvery time.Duration
}

// RunHeadless runs the deck without opening a window.
func RunHeadless(ctx context.Context, opts Options, cfg HeadlessConfig, run func(context.Context, HAL) error) error {
	h := New(opts).(*hostHAL)
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}
	if cfg.SnapshotEvery <= 0 {
		cfg.SnapshotEvery = time.Second
	}

	done := make(chan error, 1)
	go func() { done <- run(ctx, h) }()

	var tick <-chan time.Time
	if cfg.Snapshot != "" {
		t := time.NewTicker(cfg.SnapshotEvery)
		defer t.Stop()
		tick = t.C
	}

	var last uint64
	for {
		select {
		case err := <-done:
			if cfg.Snapshot != "" {
				if serr := h.snapshot(cfg.Snapshot); serr != nil && err == nil {
					err = serr
				}
			}
			if errors.Is(err, context.DeadlineExceeded) && cfg.Duration > 0 {
				return nil
			}
			return err
		case <-tick:
			n := h.fb.presented()
			if h.panel != nil {
				full, partial := h.panel.counts()
				n += full + partial
			}
			if n == last {
				continue
			}
			last = n
			if err := h.snapshot(cfg.Snapshot); err != nil {
				h.logger.WriteLineString("headless: " + err.Error())
			}
		}
	}
}

func (h *hostHAL) snapshot(path string) error {
	var buf bytes.Buffer
	if err := h.fb.encodePNG(&buf); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}
