// Command mkfont cuts a bitmap font down to the runes the deck can show
// (ASCII, GB2312 and any extras) and writes it as a tinyfont const1bit font.
// The glyphs come from bitmapfont's simplified Chinese face unless -in names
// a BDF file.
//
//	go run ./cmd/mkfont -out deck/face/pixel12.go -extra "□★"
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/bitmapfont/v3"
	flag "github.com/spf13/pflag"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input BDF font (default: bitmapfont FaceSC).")
		outPath = flag.String("out", "", "Output Go file.")
		pkg     = flag.String("pkg", "face", "Package name of the output.")
		name    = flag.String("name", "pixel12", "Variable name of the font.")
		extra   = flag.String("extra", "", "Runes to keep in addition to ASCII and GB2312.")
		yadv    = flag.Int("yadvance", 0, "Line advance (default: bounding box height + 1).")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: mkfont -out face.go [-in font.bdf] [-pkg face] [-name pixel12] [-extra runes]")
	}

	runes := charset(*extra)
	var (
		font   *bdfFont
		source = "bitmapfont.FaceSC"
	)
	if *inPath == "" {
		font = fromFace(bitmapfont.FaceSC, runes)
	} else {
		f, err := os.Open(*inPath)
		if err != nil {
			fatalf("open: %v", err)
		}
		font, err = parseBDF(f)
		f.Close()
		if err != nil {
			fatalf("parse %s: %v", *inPath, err)
		}
		source = filepath.Base(*inPath)
	}
	var kept []glyph
	for _, r := range runes {
		if g, ok := font.glyphs[r]; ok {
			kept = append(kept, g)
		}
	}
	if *yadv <= 0 {
		*yadv = font.bbox[1] + 1
	}

	src, err := render(font, kept, *pkg, *name, source, *yadv)
	if err != nil {
		fatalf("render: %v", err)
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		fatalf("write: %v", err)
	}
	fmt.Printf("%s: %d of %d glyphs\n", *outPath, len(kept), len(runes))
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// charset is printable ASCII, every GB2312 character and extra, sorted and
// deduplicated.
func charset(extra string) []rune {
	var rs []rune
	for r := rune(0x20); r < 0x7F; r++ {
		rs = append(rs, r)
	}

	dec := simplifiedchinese.GBK.NewDecoder()
	for hi := 0xA1; hi <= 0xF7; hi++ {
		if hi >= 0xAA && hi <= 0xAF {
			continue // rows 10-15 are unassigned
		}
		for lo := 0xA1; lo <= 0xFE; lo++ {
			b, err := dec.Bytes([]byte{byte(hi), byte(lo)})
			if err != nil {
				continue
			}
			r, _ := utf8.DecodeRune(b)
			if r != utf8.RuneError {
				rs = append(rs, r)
			}
		}
	}
	rs = append(rs, []rune(extra)...)

	slices.Sort(rs)
	return slices.Compact(rs)
}

func render(font *bdfFont, glyphs []glyph, pkg, name, source string, yadvance int) ([]byte, error) {
	var (
		offsets bytes.Buffer
		data    bytes.Buffer
		off     int
	)
	for i, g := range glyphs {
		rec := g.record()
		sep := " +"
		if i == len(glyphs)-1 {
			sep = ""
		}
		fmt.Fprintf(&offsets, "\t%s + %s%s\n", hex3(int(g.r)), hex3(off), sep)
		fmt.Fprintf(&data, "\t%s%s\n", hexString(rec), sep)
		off += len(rec)
	}
	if off >= 1<<24 {
		return nil, fmt.Errorf("%d bytes of glyph data do not fit 24-bit offsets", off)
	}

	suffix := strings.ToUpper(name[:1]) + name[1:]
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by mkfont from %s; DO NOT EDIT.\n", source)
	if font.version != "" {
		fmt.Fprintf(&b, "// Font version %s.\n", font.version)
	}
	fmt.Fprintf(&b, "\npackage %s\n\n", pkg)
	fmt.Fprintf(&b, "import \"tinygo.org/x/tinyfont/const1bit\"\n\n")
	fmt.Fprintf(&b, "var %s = const1bit.Font{\n", name)
	fmt.Fprintf(&b, "\tBBox:      [4]int8{%d, %d, %d, %d},\n", font.bbox[0], font.bbox[1], font.bbox[2], font.bbox[3])
	fmt.Fprintf(&b, "\tOffsetMap: m%s,\n", suffix)
	fmt.Fprintf(&b, "\tData:      d%s,\n", suffix)
	fmt.Fprintf(&b, "\tYAdvance:  %d,\n", yadvance)
	fmt.Fprintf(&b, "\tName:      %q,\n", name)
	fmt.Fprintf(&b, "}\n\n")
	fmt.Fprintf(&b, "// rune (3 bytes) + offset into d%s (3 bytes)\n", suffix)
	fmt.Fprintf(&b, "const m%s = \"\" +\n", suffix)
	b.Write(offsets.Bytes())
	fmt.Fprintf(&b, "\n// width, height, x advance, x offset, y offset, 1-bit pixels\n")
	fmt.Fprintf(&b, "const d%s = \"\" +\n", suffix)
	b.Write(data.Bytes())
	return format.Source(b.Bytes())
}

func hex3(v int) string {
	return hexString([]byte{byte(v >> 16), byte(v >> 8), byte(v)})
}

func hexString(p []byte) string {
	var b bytes.Buffer
	b.WriteByte('"')
	for _, c := range p {
		fmt.Fprintf(&b, "\\x%02x", c)
	}
	b.WriteByte('"')
	return b.String()
}
