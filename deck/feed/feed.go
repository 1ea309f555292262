// Package feed connects payload sources to the ingest inbox.
package feed

import (
	"bytes"
	"context"
)

// Source pushes raw snapshot payloads to deliver until ctx is done.
//
// deliver must not block; sources hand it a payload they no longer touch.
type Source interface {
	Run(ctx context.Context, deliver func([]byte)) error
}

// Func adapts a function to Source.
type Func func(ctx context.Context, deliver func([]byte)) error

func (f Func) Run(ctx context.Context, deliver func([]byte)) error { return f(ctx, deliver) }

// Static delivers payload once and then waits for ctx.
func Static(payload []byte) Source {
	p := bytes.Clone(payload)
	return Func(func(ctx context.Context, deliver func([]byte)) error {
		deliver(p)
		<-ctx.Done()
		return ctx.Err()
	})
}
