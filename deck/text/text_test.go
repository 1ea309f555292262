package text

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSetTruncates(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "fits", in: "buy milk", limit: 64, want: "buy milk"},
		{name: "empty", in: "", limit: 64, want: ""},
		{name: "ascii overflow", in: "abcdef", limit: 4, want: "abcd"},
		{name: "limit above capacity", in: strings.Repeat("x", 100), limit: 1000, want: strings.Repeat("x", MaxBytes)},
		{name: "negative limit", in: "abc", limit: -1, want: ""},
		// "任务" is 6 bytes; cutting at 4 must not split the second rune.
		{name: "utf8 boundary", in: "任务", limit: 4, want: "任"},
		{name: "utf8 exact", in: "任务", limit: 6, want: "任务"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.in, tt.limit)
			if got.String() != tt.want {
				t.Fatalf("New(%q, %d) = %q, want %q", tt.in, tt.limit, got.String(), tt.want)
			}
			if !utf8.Valid(got.Bytes()) {
				t.Fatalf("result is not valid UTF-8: %x", got.Bytes())
			}
		})
	}
}

func TestSetBytesMatchesSet(t *testing.T) {
	in := strings.Repeat("截止日期", 10)
	for limit := 0; limit <= MaxBytes; limit++ {
		a := New(in, limit)
		var b Text
		b.SetBytes([]byte(in), limit)
		if !a.Equal(&b) {
			t.Fatalf("limit %d: Set=%q SetBytes=%q", limit, a.String(), b.String())
		}
	}
}

func TestResetAndEmpty(t *testing.T) {
	tx := New("x", 8)
	if tx.Empty() {
		t.Fatal("expected non-empty")
	}
	tx.Reset()
	if !tx.Empty() || tx.Len() != 0 {
		t.Fatalf("expected empty after Reset, got %q", tx.String())
	}
}

func TestSetDoesNotAllocate(t *testing.T) {
	var tx Text
	s := strings.Repeat("a", 200)
	allocs := testing.AllocsPerRun(100, func() {
		tx.Set(s, 32)
	})
	if allocs != 0 {
		t.Fatalf("Set allocated %.1f times", allocs)
	}
}
