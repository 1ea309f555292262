package ingest

import "sync"

// DefaultInboxDepth is the number of pending snapshots kept.
const DefaultInboxDepth = 4

// Inbox is the bounded hand-off between network callbacks and the pipeline.
// Offer never blocks: a full inbox drops its oldest payload, since every snapshot
// supersedes the ones before it.
type Inbox struct {
	mu      sync.Mutex
	ch      chan []byte
	dropped uint64
}

// NewInbox returns an inbox holding up to depth payloads.
func NewInbox(depth int) *Inbox {
	if depth <= 0 {
		depth = DefaultInboxDepth
	}
	return &Inbox{ch: make(chan []byte, depth)}
}

// Offer enqueues payload and reports whether an older payload was dropped.
func (in *Inbox) Offer(payload []byte) (dropped bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	for {
		select {
		case in.ch <- payload:
			return dropped
		default:
		}
		select {
		case <-in.ch:
			dropped = true
			in.dropped++
		default:
		}
	}
}

// C returns the receive side.
func (in *Inbox) C() <-chan []byte { return in.ch }

// Dropped returns how many payloads were discarded.
func (in *Inbox) Dropped() uint64 {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.dropped
}
