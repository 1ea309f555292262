// Package scroll rotates a fixed number of visible slots over the task store.
package scroll

import (
	"sync"

	"taskdeck/deck/taskstore"
)

// VisibleSlots is the number of task rows on screen.
const VisibleSlots = 3

// Mode is the window state.
type Mode uint8

const (
	// Static pins the offset to 0; all records fit on screen.
	Static Mode = iota
	// Circular advances the offset by one record per tick, wrapping at count.
	Circular
)

func (m Mode) String() string {
	switch m {
	case Static:
		return "static"
	case Circular:
		return "circular"
	default:
		return "unknown"
	}
}

// ModeFor returns the window state for count records over slots rows.
func ModeFor(count, slots int) Mode {
	if taskstore.Circular(count, slots) {
		return Circular
	}
	return Static
}

// Next is the tick transition: (offset+1) mod count when circular, 0 otherwise.
func Next(offset, count, slots int) int {
	if ModeFor(count, slots) == Static {
		return 0
	}
	if offset < 0 {
		offset = 0
	}
	return (offset + 1) % count
}

// Frame is one render-ready window. Seq increases with every frame a Window emits.
type Frame struct {
	Seq    uint64
	Offset int
	Count  int
	Mode   Mode
	Slots  [VisibleSlots]taskstore.Record
}

// Window is the scroll cursor over a Store.
type Window struct {
	store *taskstore.Store

	mu     sync.Mutex
	offset int
	gen    uint64
	seq    uint64
}

// New returns a window over store starting at offset 0.
func New(store *taskstore.Store) *Window {
	return &Window{store: store}
}

// Offset returns the current rotation origin.
func (w *Window) Offset() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.offset
}

// Tick advances the window one step.
//
// The next offset is derived from the count observed under the store lock, so a
// concurrent ReplaceAll can never leave it outside [0, count). A store generation the
// window has not seen yet counts as a replace and restarts at 0. changed is false
// when a static window was already at 0; callers skip rendering in that case.
func (w *Window) Tick() (f Frame, changed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	prev := w.offset
	replaced := false
	v := w.store.WindowFunc(func(count int, gen uint64) int {
		if gen != w.gen {
			replaced = true
			return 0
		}
		return Next(prev, count, VisibleSlots)
	}, f.Slots[:])

	w.offset = v.Offset
	w.gen = v.Gen
	if !replaced && v.Offset == prev && ModeFor(v.Count, VisibleSlots) == Static {
		return w.fill(&f, v), false
	}
	w.seq++
	return w.fill(&f, v), true
}

// Reset moves the window back to the first record. It always yields a frame to render,
// even when the offset was already 0.
func (w *Window) Reset() Frame {
	w.mu.Lock()
	defer w.mu.Unlock()

	var f Frame
	v := w.store.WindowFunc(func(int, uint64) int { return 0 }, f.Slots[:])
	w.offset = 0
	w.gen = v.Gen
	w.seq++
	return w.fill(&f, v)
}

// Current returns the frame at the current offset without advancing.
func (w *Window) Current() Frame {
	w.mu.Lock()
	defer w.mu.Unlock()

	var f Frame
	offset := w.offset
	v := w.store.WindowFunc(func(int, uint64) int { return offset }, f.Slots[:])
	w.offset = v.Offset
	return w.fill(&f, v)
}

func (w *Window) fill(f *Frame, v taskstore.View) Frame {
	f.Seq = w.seq
	f.Offset = v.Offset
	f.Count = v.Count
	f.Mode = ModeFor(v.Count, VisibleSlots)
	return *f
}
