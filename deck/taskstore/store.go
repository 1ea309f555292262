// Package taskstore holds the bounded task list shown on the device.
//
// The store is replaced as a whole on every snapshot; there is no per-record
// add, update or delete. A single mutex guards the records and the count as one unit.
package taskstore

import (
	"sync"

	"taskdeck/deck/text"
)

const (
	// Capacity is the maximum number of records kept.
	Capacity = 10

	// SummaryBytes bounds Record.Summary.
	SummaryBytes = 64

	// DueBytes bounds Record.Due.
	DueBytes = 32
)

// Record is one task slot. Due is preformatted at ingest time.
type Record struct {
	Summary text.Text
	Due     text.Text
	Valid   bool
}

// View describes what a window read observed under the lock.
type View struct {
	Offset int
	Count  int
	Gen    uint64
}

// Circular reports whether count records overflow a window of the given size.
func Circular(count, slots int) bool {
	return count > slots
}

// Store is a fixed-capacity, mutex-guarded record list.
type Store struct {
	mu      sync.Mutex
	records [Capacity]Record
	count   int
	gen     uint64
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// ReplaceAll clears every slot and stores recs[:min(len(recs), Capacity)] in order.
// It returns the stored count and the new replace generation.
func (s *Store) ReplaceAll(recs []Record) (count int, gen uint64) {
	n := len(recs)
	if n > Capacity {
		n = Capacity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = [Capacity]Record{}
	for i := 0; i < n; i++ {
		s.records[i] = recs[i]
		s.records[i].Valid = true
	}
	s.count = n
	s.gen++
	return s.count, s.gen
}

// Count returns the number of valid records.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Gen returns the replace generation; it changes on every ReplaceAll.
func (s *Store) Gen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Window fills dst with the records visible from offset.
//
// With count <= len(dst) the window is static: offset is forced to 0 and slot i holds
// record i, or an empty Record past count. Otherwise slot i holds record
// (offset+i) mod count. Every slot of dst is written.
func (s *Store) Window(offset int, dst []Record) View {
	return s.WindowFunc(func(int, uint64) int { return offset }, dst)
}

// WindowFunc is Window with the offset chosen by pick from the count and generation
// observed under the lock. pick runs with the store locked and must not call back
// into the store.
func (s *Store) WindowFunc(pick func(count int, gen uint64) int, dst []Record) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	offset := normalize(pick(s.count, s.gen), s.count, len(dst))
	for i := range dst {
		idx := slotIndex(offset, i, s.count, len(dst))
		if idx < 0 {
			dst[i] = Record{}
			continue
		}
		dst[i] = s.records[idx]
	}
	return View{Offset: offset, Count: s.count, Gen: s.gen}
}

// Records copies every valid record into dst and returns how many were copied.
func (s *Store) Records(dst []Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copy(dst, s.records[:s.count])
}

func normalize(offset, count, slots int) int {
	if !Circular(count, slots) || offset < 0 {
		return 0
	}
	return offset % count
}

func slotIndex(offset, i, count, slots int) int {
	if Circular(count, slots) {
		return (offset + i) % count
	}
	if i < count {
		return i
	}
	return -1
}
