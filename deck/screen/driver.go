package screen

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"taskdeck/deck/loop"
)

const (
	MinDelay = 5 * time.Millisecond
	MaxDelay = 500 * time.Millisecond
)

// Driver owns the display lock and pumps the screen into a Flusher.
type Driver struct {
	mu      sync.Mutex
	screen  *Screen
	canvas  *Canvas
	flusher Flusher
	log     *slog.Logger

	idle    time.Duration
	flushes uint64
}

func NewDriver(s *Screen, c *Canvas, f Flusher, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{screen: s, canvas: c, flusher: f, log: log}
}

// Lock takes the display lock. Sink calls into the Screen must hold it.
func (d *Driver) Lock() { d.mu.Lock() }

func (d *Driver) Unlock() { d.mu.Unlock() }

// Screen returns the label tree guarded by the lock.
func (d *Driver) Screen() *Screen { return d.screen }

// Handle draws dirty labels, flushes the changed area and returns the delay
// before the next call. Idle rounds back off from MinDelay to MaxDelay.
func (d *Driver) Handle() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	area := d.screen.Draw(d.canvas)
	if area.Empty() {
		d.idle = loop.Clamp(d.idle*2, MinDelay, MaxDelay)
		return d.idle
	}
	if ff, ok := d.flusher.(fullFramer); ok && ff.FullFrame() {
		area = d.canvas.Bounds()
	}
	if err := d.flusher.Flush(area, d.canvas.Pix(), d.canvas.Stride()); err != nil {
		d.log.Warn("flush failed", "err", err, "area", area.String())
	}
	d.flushes++
	d.idle = MinDelay
	return d.idle
}

// Flushes is the number of flushes issued so far.
func (d *Driver) Flushes() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.flushes
}

// Run calls Handle until ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	t := time.NewTimer(0)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			t.Reset(d.Handle())
		}
	}
}
