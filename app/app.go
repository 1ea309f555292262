package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"taskdeck/deck/clock"
	"taskdeck/deck/feed"
	"taskdeck/deck/ingest"
	"taskdeck/deck/logger"
	"taskdeck/deck/render"
	"taskdeck/deck/screen"
	"taskdeck/deck/scroll"
	"taskdeck/deck/taskstore"
	"taskdeck/deck/timefmt"
	"taskdeck/hal"
)

const (
	ModeLCD    = "lcd"
	ModeEPaper = "epaper"
)

type Config struct {
	// Mode picks the layouts and the flusher: "lcd" or "epaper".
	Mode string

	Scroll time.Duration
	Clock  time.Duration

	// Source feeds snapshot payloads. Nil runs without a feed.
	Source feed.Source

	// Display replaces the HAL display, e.g. with a terminal preview. Nil
	// draws on the HAL.
	Display Display

	Logger *slog.Logger
}

// Display is a sink with its own loop. The presenter holds its lock while
// calling the sink methods; Run returning nil means the user closed it.
type Display interface {
	render.Sink
	sync.Locker
	Run(ctx context.Context) error
}

// errQuit stops the group when the user closes the Display.
var errQuit = errors.New("quit")

// Deck is one assembled device: store, window, ingest, tasks and a display sink.
type Deck struct {
	h   hal.HAL
	cfg Config
	log *slog.Logger

	store     *taskstore.Store
	win       *scroll.Window
	pipe      *ingest.Pipeline
	inbox     *ingest.Inbox
	presenter *render.Presenter
	scroll    *scroll.Task
	clock     *clock.Task

	driver *screen.Driver
}

// New wires a deck on h.
func New(h hal.HAL, cfg Config) (*Deck, error) {
	if cfg.Mode == "" {
		cfg.Mode = ModeLCD
	}
	log := cfg.Logger
	if log == nil {
		log = logger.New(h.Logger(), logger.Options{})
	}

	due, clockLayout, style := timefmt.Compact, timefmt.Compact, screen.LCDStyle
	switch cfg.Mode {
	case ModeLCD:
	case ModeEPaper:
		due, clockLayout, style = timefmt.Deadline, timefmt.Clock, screen.EPaperStyle
	default:
		return nil, fmt.Errorf("app: unknown display mode %q", cfg.Mode)
	}

	d := &Deck{h: h, cfg: cfg, log: log}
	d.store = taskstore.New()
	d.win = scroll.New(d.store)
	d.inbox = ingest.NewInbox(ingest.DefaultInboxDepth)

	var (
		lock sync.Locker
		sink render.Sink
	)
	if cfg.Display != nil {
		lock, sink = cfg.Display, cfg.Display
	} else {
		drv, err := newDriver(h, cfg.Mode, style, logger.For(log, "screen"))
		if err != nil {
			return nil, err
		}
		d.driver = drv
		lock, sink = drv, drv.Screen()
	}
	d.presenter = render.NewPresenter(lock, sink, render.DefaultLocale, due)

	d.pipe = ingest.New(d.store, d.win,
		ingest.WithDueLayout(due),
		ingest.WithLogger(logger.For(log, "ingest")),
	)
	d.pipe.OnCommit = func(f scroll.Frame) { d.presenter.Frame(f) }

	d.scroll = scroll.NewTask(d.win, func(f scroll.Frame) { d.presenter.Frame(f) }, cfg.Scroll, logger.For(log, "scroll"))
	d.clock = clock.NewTask(h.Clock().Now, clockLayout, d.presenter.Clock, cfg.Clock)
	return d, nil
}

func newDriver(h hal.HAL, mode string, style screen.Style, log *slog.Logger) (*screen.Driver, error) {
	disp := h.Display()
	if disp == nil {
		return nil, errors.New("app: no display")
	}

	var (
		w, ht   int
		flusher screen.Flusher
	)
	if p := disp.Panel(); mode == ModeEPaper && p != nil {
		pw, ph := p.Size()
		w, ht = int(pw), int(ph)
		flusher = screen.NewBinarizer(p)
	} else if fb := disp.Framebuffer(); fb != nil {
		w, ht = fb.Width(), fb.Height()
		flusher = screen.FramebufferFlusher{FB: fb}
	} else {
		return nil, errors.New("app: display has neither framebuffer nor panel")
	}

	return screen.NewDriver(screen.New(w, ht, style, nil), screen.NewCanvas(w, ht), flusher, log), nil
}

// Ingest queues a payload as if it arrived from the feed.
func (d *Deck) Ingest(payload []byte) {
	if d.inbox.Offer(payload) {
		d.log.Warn("inbox full, dropped oldest payload", "dropped", d.inbox.Dropped())
	}
}

// Run starts every task and blocks until ctx is done or one of them fails.
func (d *Deck) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	run := func(name string, fn func(context.Context) error) {
		g.Go(d.guard(name, func() error { return fn(ctx) }))
	}

	d.log.Info("starting", "mode", d.cfg.Mode, "hal_display", d.driver != nil)
	if d.cfg.Mode == ModeLCD {
		// Placeholder until the first snapshot.
		d.presenter.Frame(d.win.Current())
	}

	run("ingest", func(ctx context.Context) error { return d.pipe.Run(ctx, d.inbox) })
	run("scroll", d.scroll.Run)
	run("clock", d.clock.Run)
	if d.driver != nil {
		run("display", d.driver.Run)
	}
	if d.cfg.Display != nil {
		run("display", func(ctx context.Context) error {
			if err := d.cfg.Display.Run(ctx); err != nil {
				return err
			}
			return errQuit
		})
	}
	if d.cfg.Source != nil {
		run("feed", func(ctx context.Context) error {
			return d.cfg.Source.Run(ctx, d.Ingest)
		})
	}

	err := g.Wait()
	switch {
	case err == nil, errors.Is(err, errQuit), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		d.log.Info("stopped")
		return nil
	default:
		d.log.Error("stopped", "err", err)
		return err
	}
}
