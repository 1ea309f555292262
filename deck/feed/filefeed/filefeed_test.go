package filefeed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunDeliversOnStartAndChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte(`[1]`), 0o644); err != nil {
		t.Fatal(err)
	}

	got := make(chan string, 8)
	src := New(path, WithDebounce(10*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- src.Run(ctx, func(p []byte) { got <- string(p) }) }()

	expect := func(want string) {
		t.Helper()
		for {
			select {
			case p := <-got:
				if p == want {
					return
				}
			case <-time.After(5 * time.Second):
				t.Fatalf("never delivered %q", want)
			}
		}
	}
	expect(`[1]`)

	if err := os.WriteFile(path, []byte(`[1,2]`), 0o644); err != nil {
		t.Fatal(err)
	}
	expect(`[1,2]`)

	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("Run = %v", err)
	}
}

func TestRunWithoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	delivered := false
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := New(path).Run(ctx, func([]byte) { delivered = true })
	if err != context.DeadlineExceeded {
		t.Fatalf("Run = %v", err)
	}
	if delivered {
		t.Fatal("delivered a missing file")
	}
}
