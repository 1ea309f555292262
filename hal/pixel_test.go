package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {0xFF, 0xFF, 0xFF}, {0xFF, 0, 0}, {0, 0xFF, 0}, {0, 0, 0xFF}} {
		r, g, b := rgb888From565(rgb565(c[0], c[1], c[2]))
		if r != c[0] || g != c[1] || b != c[2] {
			t.Fatalf("%v -> %d,%d,%d", c, r, g, b)
		}
	}
}

func TestIsInk(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		ink     bool
	}{
		{0, 0, 0, true},
		{0xFF, 0xFF, 0xFF, false},
		{0xFF, 0, 0, true},  // luma 76
		{0, 0xFF, 0, false}, // luma 149
		{127, 127, 127, true},
		{128, 128, 128, false},
	}
	for _, tc := range cases {
		if got := isInk(tc.r, tc.g, tc.b); got != tc.ink {
			t.Fatalf("isInk(%d,%d,%d) = %v", tc.r, tc.g, tc.b, got)
		}
	}
}
