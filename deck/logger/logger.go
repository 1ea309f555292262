// Package logger renders slog records as single lines on a hal.Logger.
package logger

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/fatih/color"

	"taskdeck/hal"
)

// Options configures the line handler.
type Options struct {
	Level slog.Leveler
	// Color tags levels with ANSI colours.
	Color bool
	// Time prefixes each line with a wall-clock timestamp.
	Time bool
}

// New returns a logger writing to out.
func New(out hal.Logger, opts Options) *slog.Logger {
	return slog.New(NewHandler(out, opts))
}

// For returns l tagged with a component name.
func For(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With("component", component)
}

// Handler is a slog.Handler producing "LEVEL component: msg key=value" lines.
type Handler struct {
	out   hal.Logger
	opts  Options
	attrs []slog.Attr
	group string
	mu    *sync.Mutex
}

// NewHandler returns a line handler for out.
func NewHandler(out hal.Logger, opts Options) *Handler {
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	return &Handler{out: out, opts: opts, mu: &sync.Mutex{}}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.opts.Level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	if h.out == nil {
		return nil
	}

	buf := make([]byte, 0, 128)
	if h.opts.Time && !r.Time.IsZero() {
		buf = r.Time.AppendFormat(buf, time.TimeOnly)
		buf = append(buf, ' ')
	}
	buf = append(buf, h.levelTag(r.Level)...)
	buf = append(buf, ' ')

	component := ""
	for _, a := range h.attrs {
		if a.Key == "component" {
			component = a.Value.String()
		}
	}
	recAttrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "component" && h.group == "" {
			component = a.Value.String()
			return true
		}
		recAttrs = append(recAttrs, a)
		return true
	})

	if component != "" {
		buf = append(buf, component...)
		buf = append(buf, ": "...)
	}
	buf = append(buf, r.Message...)
	for _, a := range h.attrs {
		if a.Key == "component" {
			continue
		}
		// Prefixed with the group in WithAttrs already.
		buf = appendAttr(buf, "", a)
	}
	for _, a := range recAttrs {
		buf = appendAttr(buf, h.group, a)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.out.WriteLineBytes(buf)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" && a.Key != "component" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if nh.group != "" {
		nh.group += "." + name
	} else {
		nh.group = name
	}
	return &nh
}

func (h *Handler) levelTag(l slog.Level) string {
	tag := l.String()
	if !h.opts.Color {
		return tag
	}
	switch {
	case l >= slog.LevelError:
		return color.New(color.FgRed, color.Bold).Sprint(tag)
	case l >= slog.LevelWarn:
		return color.New(color.FgYellow).Sprint(tag)
	case l >= slog.LevelInfo:
		return color.New(color.FgGreen).Sprint(tag)
	default:
		return color.New(color.FgHiBlack).Sprint(tag)
	}
}

func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := a.Key
		if group != "" {
			prefix = group + "." + a.Key
		}
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, prefix, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	if group != "" {
		buf = append(buf, group...)
		buf = append(buf, '.')
	}
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	s := a.Value.String()
	if needsQuote(s) {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == ' ' || c == '"' || c == '=' || c < 0x20 {
			return true
		}
	}
	return false
}
