// Package face is the deck's bitmap font: 12 px simplified Chinese glyphs
// cut down to ASCII and GB2312. pixel12.go is generated; see LICENSE_FONTS.txt
// for where the glyphs come from.
//
//go:generate go run ../../cmd/mkfont -out pixel12.go -extra □★
package face

import (
	"sort"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/const1bit"
)

// Replacement is drawn for runes the font does not carry.
const Replacement = '□'

// Face wraps a const1bit font. Unlike const1bit.Font it returns a fresh glyph
// on every lookup, so one Face can be shared by several screens, and a
// missing rune draws Replacement instead of a neighbouring glyph.
type Face struct {
	font *const1bit.Font
}

// Pixel12 is the 12 px face used by the screens.
var Pixel12 = &Face{font: &pixel12}

func (f *Face) GetYAdvance() uint8 { return f.font.YAdvance }

func (f *Face) GetGlyph(r rune) tinyfont.Glypher {
	if g, ok := f.glyph(r); ok {
		return g
	}
	g, _ := f.glyph(Replacement)
	g.Rune = r
	return g
}

// Has reports whether the font carries r.
func (f *Face) Has(r rune) bool {
	_, ok := f.offset(r)
	return ok
}

// Ascent is the distance from the top of the tallest glyph to the baseline.
func (f *Face) Ascent() int16 {
	return int16(f.font.BBox[1]) + int16(f.font.BBox[3])
}

// Len is the number of glyphs in the font.
func (f *Face) Len() int { return len(f.font.OffsetMap) / 6 }

func (f *Face) offset(r rune) (int, bool) {
	m := f.font.OffsetMap
	at := func(i int) rune {
		return rune(m[i*6])<<16 | rune(m[i*6+1])<<8 | rune(m[i*6+2])
	}
	n := f.Len()
	i := sort.Search(n, func(i int) bool { return at(i) >= r })
	if i == n || at(i) != r {
		return 0, false
	}
	return int(m[i*6+3])<<16 | int(m[i*6+4])<<8 | int(m[i*6+5]), true
}

func (f *Face) glyph(r rune) (const1bit.Glyph, bool) {
	off, ok := f.offset(r)
	if !ok {
		return const1bit.Glyph{}, false
	}
	d := f.font.Data[off:]
	g := const1bit.Glyph{
		Rune:     r,
		Width:    d[0],
		Height:   d[1],
		XAdvance: d[2],
		XOffset:  int8(d[3]),
		YOffset:  int8(d[4]),
	}
	n := (int(g.Width)*int(g.Height) + 7) / 8
	g.Bitmaps = []byte(d[5 : 5+n])
	return g, true
}
