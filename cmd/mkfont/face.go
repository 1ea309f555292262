package main

import (
	"math"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// fromFace rasterises runes from face at the origin and crops each glyph to
// the rows that carry ink. Runes the face draws blank are left out unless
// they are spaces, so the deck falls back to its replacement glyph for them.
func fromFace(face font.Face, runes []rune) *bdfFont {
	out := &bdfFont{glyphs: make(map[rune]glyph)}
	top, bottom, width := math.MaxInt, math.MinInt, 0

	for _, r := range runes {
		dr, mask, mp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok || dr.Empty() {
			continue
		}
		g := glyph{r: r, w: dr.Dx(), xoff: dr.Min.X, xadvance: adv.Round()}

		first, last := -1, -1
		rows := make([][]byte, dr.Dy())
		for y := range rows {
			row := make([]byte, (g.w+7)/8)
			for x := 0; x < g.w; x++ {
				if _, _, _, a := mask.At(mp.X+x, mp.Y+y).RGBA(); a >= 0x8000 {
					row[x/8] |= 0x80 >> (x % 8)
					if first < 0 {
						first = y
					}
					last = y
				}
			}
			rows[y] = row
		}

		switch {
		case first >= 0:
			g.rows = rows[first : last+1]
			g.h = last + 1 - first
			g.yoff = -(dr.Min.Y + last + 1)
			top = min(top, dr.Min.Y+first)
			bottom = max(bottom, dr.Min.Y+last+1)
		case !unicode.IsSpace(r):
			continue
		}
		width = max(width, g.w)
		out.glyphs[r] = g
	}

	if bottom > top {
		out.bbox = [4]int{width, bottom - top, 0, -bottom}
	}
	return out
}
