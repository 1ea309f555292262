package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type bdfFont struct {
	bbox    [4]int // width, height, x offset, y offset
	version string
	glyphs  map[rune]glyph
}

type glyph struct {
	r        rune
	w, h     int
	xoff     int
	yoff     int // BDF: bottom of the box relative to the baseline
	xadvance int
	rows     [][]byte
}

// record is the const1bit layout: w, h, xadvance, xoffset, yoffset (top of the
// box relative to the baseline), then w*h pixels packed MSB first with no row
// padding.
func (g glyph) record() []byte {
	out := []byte{byte(g.w), byte(g.h), byte(g.xadvance), byte(int8(g.xoff)), byte(int8(-(g.h + g.yoff)))}
	var (
		acc  byte
		bits int
	)
	for y := 0; y < g.h; y++ {
		var row []byte
		if y < len(g.rows) {
			row = g.rows[y]
		}
		for x := 0; x < g.w; x++ {
			acc <<= 1
			if x/8 < len(row) && row[x/8]&(0x80>>(x%8)) != 0 {
				acc |= 1
			}
			bits++
			if bits == 8 {
				out = append(out, acc)
				acc, bits = 0, 0
			}
		}
	}
	if bits > 0 {
		out = append(out, acc<<(8-bits))
	}
	return out
}

func parseBDF(r io.Reader) (*bdfFont, error) {
	font := &bdfFont{glyphs: make(map[rune]glyph)}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var (
		cur      glyph
		inChar   bool
		inBitmap bool
		line     int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if inBitmap && fields[0] != "ENDCHAR" {
			row, err := hex.DecodeString(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: bitmap row: %w", line, err)
			}
			cur.rows = append(cur.rows, row)
			continue
		}

		var err error
		switch fields[0] {
		case "FONTBOUNDINGBOX":
			err = ints(fields[1:], &font.bbox[0], &font.bbox[1], &font.bbox[2], &font.bbox[3])
		case "FONT_VERSION":
			font.version = strings.Trim(strings.Join(fields[1:], " "), `"`)
		case "STARTCHAR":
			cur, inChar = glyph{r: -1}, true
		case "ENCODING":
			if inChar {
				var enc int
				err = ints(fields[1:2], &enc)
				cur.r = rune(enc)
			}
		case "DWIDTH":
			if inChar {
				err = ints(fields[1:2], &cur.xadvance)
			}
		case "BBX":
			if inChar {
				err = ints(fields[1:], &cur.w, &cur.h, &cur.xoff, &cur.yoff)
			}
		case "BITMAP":
			inBitmap = inChar
		case "ENDCHAR":
			if cur.r >= 0 {
				font.glyphs[cur.r] = cur
			}
			inChar, inBitmap = false, false
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, fields[0], err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if font.bbox[1] == 0 {
		return nil, fmt.Errorf("no FONTBOUNDINGBOX")
	}
	return font, nil
}

func ints(fields []string, dst ...*int) error {
	if len(fields) < len(dst) {
		return fmt.Errorf("want %d values, got %d", len(dst), len(fields))
	}
	for i, d := range dst {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}
