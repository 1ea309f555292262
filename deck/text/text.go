// Package text provides a fixed-capacity, owned text value.
//
// A Text never allocates on Set and never grows past MaxBytes; overflow is truncation
// on a UTF-8 boundary. The zero value is the empty string.
package text

import "unicode/utf8"

// MaxBytes is the storage capacity of a Text.
const MaxBytes = 64

// Text is a bounded UTF-8 string stored inline.
type Text struct {
	n uint8
	b [MaxBytes]byte
}

// New returns a Text holding s truncated to limit bytes.
func New(s string, limit int) Text {
	var t Text
	t.Set(s, limit)
	return t
}

// Set replaces the contents with s, truncated to min(limit, MaxBytes) bytes.
func (t *Text) Set(s string, limit int) {
	limit = clampLimit(limit)
	if len(s) > limit {
		s = s[:runeBoundary(s, limit)]
	}
	t.n = uint8(copy(t.b[:], s))
}

// SetBytes is Set for a byte slice.
func (t *Text) SetBytes(p []byte, limit int) {
	limit = clampLimit(limit)
	if len(p) > limit {
		p = p[:runeBoundaryBytes(p, limit)]
	}
	t.n = uint8(copy(t.b[:], p))
}

// Reset empties t.
func (t *Text) Reset() { t.n = 0 }

// Bytes returns the stored bytes. The slice aliases t and is valid until the next Set.
func (t *Text) Bytes() []byte { return t.b[:t.n] }

func (t Text) String() string { return string(t.b[:t.n]) }

func (t Text) Len() int { return int(t.n) }

func (t Text) Empty() bool { return t.n == 0 }

// Equal reports whether t and o hold the same bytes.
func (t *Text) Equal(o *Text) bool {
	if t.n != o.n {
		return false
	}
	for i := 0; i < int(t.n); i++ {
		if t.b[i] != o.b[i] {
			return false
		}
	}
	return true
}

func clampLimit(limit int) int {
	if limit < 0 {
		return 0
	}
	if limit > MaxBytes {
		return MaxBytes
	}
	return limit
}

// runeBoundary returns the largest n <= limit such that s[:n] does not end inside
// a multi-byte sequence.
func runeBoundary(s string, limit int) int {
	n := limit
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return n
}

func runeBoundaryBytes(p []byte, limit int) int {
	n := limit
	for n > 0 && !utf8.RuneStart(p[n]) {
		n--
	}
	return n
}
