package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"taskdeck/internal/publish"
)

const export = `[
  {"guid":"b","summary":"later","status":"todo","due":{"timestamp":"1700003600000"}},
  {"guid":"x","summary":"finished","status":"done"},
  {"guid":"c","summary":"whenever","status":"todo"},
  {"guid":"a","summary":"sooner","status":"todo","due":{"timestamp":"1700000000000"}}
]`

type fakePublisher struct {
	topic   string
	payload []byte
	closed  bool
}

func (f *fakePublisher) Publish(topic string, payload []byte) error {
	f.topic, f.payload = topic, payload
	return nil
}

func (f *fakePublisher) Close() { f.closed = true }

func isolate(t *testing.T) {
	t.Helper()
	color.NoColor = true
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"TASKDECK_BROKER_URL", "TASKDECK_TOPIC", "TASKDECK_USERNAME", "TASKDECK_PASSWORD"} {
		t.Setenv(k, "")
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPublishSendsSortedTodo(t *testing.T) {
	isolate(t)
	fp := &fakePublisher{}
	var got publish.BrokerConfig
	old := dial
	dial = func(cfg publish.BrokerConfig) (publisher, error) {
		got = cfg
		return fp, nil
	}
	t.Cleanup(func() { dial = old })

	out, err := run(t, export, "publish", "-", "--broker", "tcp://broker:1883", "--topic", "desk/tasks")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got.URL != "tcp://broker:1883" || fp.topic != "desk/tasks" || !fp.closed {
		t.Fatalf("broker = %+v topic = %q closed = %v", got, fp.topic, fp.closed)
	}
	if !strings.Contains(out, "published 3 of 4 tasks") {
		t.Fatalf("output = %q", out)
	}

	var items []publish.Item
	if err := json.Unmarshal(fp.payload, &items); err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, it := range items {
		ids = append(ids, it.TaskID)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}
}

func TestPublishNeedsBroker(t *testing.T) {
	isolate(t)
	old := dial
	dial = func(publish.BrokerConfig) (publisher, error) {
		t.Fatal("dialled without a broker")
		return nil, nil
	}
	t.Cleanup(func() { dial = old })

	if _, err := run(t, export, "publish"); err == nil || !strings.Contains(err.Error(), "no broker") {
		t.Fatalf("err = %v", err)
	}
}

func TestPreviewTable(t *testing.T) {
	isolate(t)
	out, err := run(t, export, "preview")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("preview:\n%s", out)
	}
	if !strings.Contains(lines[2], "sooner") || !strings.Contains(lines[2], "截止: 11-15 06:13") {
		t.Fatalf("first row = %q", lines[2])
	}
	if !strings.Contains(lines[4], "whenever") || !strings.Contains(lines[4], "无截止") {
		t.Fatalf("last row = %q", lines[4])
	}
}

func TestPreviewJSONFromYAMLFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	data := "items:\n  - guid: a\n    summary: only\n    status: todo\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "preview", path, "--json")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := strings.TrimSpace(out), `[{"taskId":"a","summary":"only","status":"todo"}]`; got != want {
		t.Fatalf("json = %s, want %s", got, want)
	}
}

func TestPreviewEmpty(t *testing.T) {
	isolate(t)
	out, err := run(t, "[]", "preview")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "no open tasks") {
		t.Fatalf("out = %q", out)
	}
}

// chanPublisher hands every payload to the test goroutine.
type chanPublisher struct {
	payloads chan []byte
}

func (c *chanPublisher) Publish(_ string, payload []byte) error {
	select {
	case c.payloads <- payload:
	default:
	}
	return nil
}

func (c *chanPublisher) Close() {}

func startWatch(t *testing.T, args ...string) (*chanPublisher, func() error) {
	t.Helper()
	isolate(t)
	cp := &chanPublisher{payloads: make(chan []byte, 16)}
	old := dial
	dial = func(publish.BrokerConfig) (publisher, error) { return cp, nil }
	t.Cleanup(func() { dial = old })

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"watch", "--broker", "tcp://broker:1883"}, args...))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()
	stop := func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("watch did not stop")
			return nil
		}
	}
	t.Cleanup(func() { cancel() })
	return cp, stop
}

func next(t *testing.T, cp *chanPublisher) []publish.Item {
	t.Helper()
	select {
	case b := <-cp.payloads:
		var items []publish.Item
		if err := json.Unmarshal(b, &items); err != nil {
			t.Fatal(err)
		}
		return items
	case <-time.After(5 * time.Second):
		t.Fatal("nothing published")
		return nil
	}
}

func TestWatchRepublishesOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte(export), 0o644); err != nil {
		t.Fatal(err)
	}
	cp, stop := startWatch(t, path, "--debounce", "10ms")

	if items := next(t, cp); len(items) != 3 {
		t.Fatalf("initial publish = %d items", len(items))
	}

	if err := os.WriteFile(path, []byte(`[{"guid":"n","summary":"new","status":"todo"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	// The truncate and the write may land in separate debounce windows.
	for {
		items := next(t, cp)
		if len(items) == 1 && items[0].Summary == "new" {
			break
		}
		if len(items) != 3 {
			t.Fatalf("after save = %+v", items)
		}
	}
	if err := stop(); err != nil {
		t.Fatalf("watch = %v", err)
	}
}

func TestWatchEveryRepublishesUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte(export), 0o644); err != nil {
		t.Fatal(err)
	}
	cp, stop := startWatch(t, path, "--every", "10ms")

	first := next(t, cp)
	again := next(t, cp)
	if diff := cmp.Diff(first, again); diff != "" {
		t.Fatalf("republished snapshot differs (-first +again):\n%s", diff)
	}
	if err := stop(); err != nil {
		t.Fatalf("watch = %v", err)
	}
}

func TestWatchNeedsFile(t *testing.T) {
	isolate(t)
	if _, err := run(t, "", "watch", "--broker", "tcp://broker:1883"); err == nil {
		t.Fatal("watch without a file accepted")
	}
}
