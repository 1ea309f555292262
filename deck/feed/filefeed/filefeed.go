// Package filefeed delivers a JSON file as a snapshot payload whenever it changes.
package filefeed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 100 * time.Millisecond

// Source watches one file. The parent directory is watched so that editors
// which replace the file by rename keep being followed.
type Source struct {
	path     string
	debounce time.Duration
	log      *slog.Logger
}

// Option configures a Source.
type Option func(*Source)

func WithDebounce(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.debounce = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.log = l
		}
	}
}

func New(path string, opts ...Option) *Source {
	s := &Source{path: path, debounce: DefaultDebounce, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run delivers the file once on start (if it exists) and again after every
// debounced change.
func (s *Source) Run(ctx context.Context, deliver func([]byte)) error {
	abs, err := filepath.Abs(s.path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("filefeed: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("filefeed: watch %s: %w", filepath.Dir(abs), err)
	}

	s.load(abs, deliver)

	t := time.NewTimer(s.debounce)
	t.Stop()
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				t.Reset(s.debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watch error", "err", err)
		case <-t.C:
			s.load(abs, deliver)
		}
	}
}

func (s *Source) load(path string, deliver func([]byte)) {
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("read failed", "path", path, "err", err)
		}
		return
	}
	s.log.Debug("file changed", "path", path, "bytes", len(b))
	deliver(b)
}
