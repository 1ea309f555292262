package logger

import (
	"errors"
	"log/slog"
	"testing"
)

type lines struct {
	got []string
}

func (l *lines) WriteLineString(s string) { l.got = append(l.got, s) }
func (l *lines) WriteLineBytes(b []byte)  { l.got = append(l.got, string(b)) }

func TestHandlerFormatsLine(t *testing.T) {
	out := &lines{}
	log := For(New(out, Options{}), "ingest")
	log.Info("committed", "count", 3, "dropped", 0)
	log.Warn("rejected payload", "err", errors.New("not a list"))
	log.Debug("hidden")

	want := []string{
		"INFO ingest: committed count=3 dropped=0",
		`WARN ingest: rejected payload err="not a list"`,
	}
	if len(out.got) != len(want) {
		t.Fatalf("lines = %q", out.got)
	}
	for i := range want {
		if out.got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, out.got[i], want[i])
		}
	}
}

func TestHandlerGroups(t *testing.T) {
	out := &lines{}
	log := New(out, Options{Level: slog.LevelDebug}).WithGroup("mqtt").With("broker", "tcp://x:1883")
	log.Debug("connected", "qos", 1)
	want := "DEBUG connected mqtt.broker=tcp://x:1883 mqtt.qos=1"
	if len(out.got) != 1 || out.got[0] != want {
		t.Fatalf("got %q, want %q", out.got, want)
	}
}

func TestHandlerQuotesEmpty(t *testing.T) {
	out := &lines{}
	New(out, Options{}).Info("x", "topic", "")
	if out.got[0] != `INFO x topic=""` {
		t.Fatalf("got %q", out.got[0])
	}
}
