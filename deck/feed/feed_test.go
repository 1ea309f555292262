package feed

import (
	"context"
	"testing"
)

func TestStaticDeliversOnce(t *testing.T) {
	payload := []byte(`[{"summary":"a"}]`)
	src := Static(payload)
	payload[2] = 'X'

	ctx, cancel := context.WithCancel(context.Background())
	var got [][]byte
	done := make(chan error, 1)
	go func() {
		done <- src.Run(ctx, func(p []byte) {
			got = append(got, p)
			cancel()
		})
	}()
	if err := <-done; err != context.Canceled {
		t.Fatalf("Run = %v", err)
	}
	if len(got) != 1 || string(got[0]) != `[{"summary":"a"}]` {
		t.Fatalf("delivered %q", got)
	}
}
