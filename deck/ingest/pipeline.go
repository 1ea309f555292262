// Package ingest turns snapshot payloads from the network layer into one atomic
// task store replacement.
package ingest

import (
	"context"
	"log/slog"
	"sync"

	"taskdeck/deck/render"
	"taskdeck/deck/scroll"
	"taskdeck/deck/taskstore"
	"taskdeck/deck/timefmt"
)

// Pipeline validates, truncates and formats raw records, then commits them.
type Pipeline struct {
	store  *taskstore.Store
	win    *scroll.Window
	locale render.Locale
	due    timefmt.Layout
	log    *slog.Logger

	// OnCommit receives the reset frame after every successful commit.
	OnCommit func(scroll.Frame)

	mu  sync.Mutex
	buf [taskstore.Capacity]taskstore.Record
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLocale sets the untitled literal source.
func WithLocale(l render.Locale) Option { return func(p *Pipeline) { p.locale = l } }

// WithDueLayout sets the layout used for due labels.
func WithDueLayout(l timefmt.Layout) Option { return func(p *Pipeline) { p.due = l } }

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option { return func(p *Pipeline) { p.log = l } }

// New returns a pipeline committing into store and resetting win.
func New(store *taskstore.Store, win *scroll.Window, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:  store,
		win:    win,
		locale: render.DefaultLocale,
		due:    timefmt.Compact,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ingest decodes payload and applies it. A payload that is not a list leaves the
// store untouched; the error is logged and returned.
func (p *Pipeline) Ingest(payload []byte) error {
	raws, err := Decode(payload)
	if err != nil {
		p.log.Warn("rejected payload", "err", err, "bytes", len(payload))
		return err
	}
	p.Apply(raws)
	return nil
}

// Apply commits raws[:min(len, Capacity)] and returns the accepted count.
func (p *Pipeline) Apply(raws []Raw) int {
	n := len(raws)
	if n > taskstore.Capacity {
		n = taskstore.Capacity
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for i := 0; i < n; i++ {
		r := &raws[i]
		rec := &p.buf[i]
		if r.HasSummary {
			rec.Summary.Set(r.Summary, taskstore.SummaryBytes)
		} else {
			rec.Summary.Set(p.locale.Untitled, taskstore.SummaryBytes)
		}
		p.due.FormatInto(&rec.Due, r.DueMillis/1000)
		rec.Valid = true
	}

	count, gen := p.store.ReplaceAll(p.buf[:n])
	var f scroll.Frame
	if p.win != nil {
		f = p.win.Reset()
	}
	p.log.Info("committed", "count", count, "dropped", len(raws)-n, "gen", gen)

	if p.OnCommit != nil && p.win != nil {
		p.OnCommit(f)
	}
	return count
}

// Run consumes payloads from in until ctx is done.
func (p *Pipeline) Run(ctx context.Context, in *Inbox) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload := <-in.C():
			_ = p.Ingest(payload)
		}
	}
}
