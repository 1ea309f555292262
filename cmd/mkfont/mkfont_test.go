package main

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/bitmapfont/v3"
)

const sampleBDF = `STARTFONT 2.1
FONT -Test-Sample
FONTBOUNDINGBOX 12 12 0 -2
STARTPROPERTIES 1
FONT_VERSION "1.0"
ENDPROPERTIES
CHARS 2
STARTCHAR 0041
ENCODING 65
DWIDTH 6 0
BBX 6 3 0 0
BITMAP
FC
84
FC
ENDCHAR
STARTCHAR 4E2D
ENCODING 20013
DWIDTH 12 0
BBX 12 2 0 -2
BITMAP
FFF0
8010
ENDCHAR
ENDFONT
`

func TestParseBDF(t *testing.T) {
	font, err := parseBDF(strings.NewReader(sampleBDF))
	if err != nil {
		t.Fatal(err)
	}
	if font.bbox != [4]int{12, 12, 0, -2} || font.version != "1.0" {
		t.Fatalf("bbox = %v version = %q", font.bbox, font.version)
	}
	if len(font.glyphs) != 2 {
		t.Fatalf("glyphs = %d", len(font.glyphs))
	}
	if g := font.glyphs['中']; g.w != 12 || g.h != 2 || g.xadvance != 12 || g.yoff != -2 {
		t.Fatalf("中 = %+v", g)
	}
}

func TestRecordPacksRowsWithoutPadding(t *testing.T) {
	font, err := parseBDF(strings.NewReader(sampleBDF))
	if err != nil {
		t.Fatal(err)
	}

	// 6x3 box: 111111 100001 111111, baseline at the bottom so y offset is -3.
	want := []byte{6, 3, 6, 0, 0xFD, 0b11111110, 0b00011111, 0b11000000}
	if diff := cmp.Diff(want, font.glyphs['A'].record()); diff != "" {
		t.Fatalf("A (-want +got):\n%s", diff)
	}

	// 12x2 box sitting 2px under the baseline: y offset is 0.
	want = []byte{12, 2, 12, 0, 0, 0xFF, 0xF8, 0x01}
	if diff := cmp.Diff(want, font.glyphs['中'].record()); diff != "" {
		t.Fatalf("中 (-want +got):\n%s", diff)
	}
}

func TestCharset(t *testing.T) {
	rs := charset("□★")
	has := func(r rune) bool {
		for _, x := range rs {
			if x == r {
				return true
			}
		}
		return false
	}
	for _, r := range "A~暂无任务待办连接截止月日…★" {
		if !has(r) {
			t.Fatalf("charset lacks %q", r)
		}
	}
	for i := 1; i < len(rs); i++ {
		if rs[i-1] >= rs[i] {
			t.Fatalf("charset not sorted at %d", i)
		}
	}
}

func TestRenderIsGoSource(t *testing.T) {
	font, err := parseBDF(strings.NewReader(sampleBDF))
	if err != nil {
		t.Fatal(err)
	}
	src, err := render(font, []glyph{font.glyphs['A'], font.glyphs['中']}, "face", "sample", "sample.bdf", 13)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "sample.go", src, 0); err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, src)
	}
	if !strings.Contains(string(src), `"\x00\x4e\x2d" + "\x00\x00\x08"`) {
		t.Fatalf("offset map:\n%s", src)
	}
	for _, want := range []string{"var sample = const1bit.Font{", "OffsetMap: mSample,", "const dSample = "} {
		if !strings.Contains(string(src), want) {
			t.Fatalf("missing %q in:\n%s", want, src)
		}
	}
}

func TestFromFaceCropsToInk(t *testing.T) {
	font := fromFace(bitmapfont.FaceSC, []rune("A 中佤"))

	a, ok := font.glyphs['A']
	if !ok {
		t.Fatal("A missing")
	}
	// A is drawn on rows 3-11 of the 16 row cell whose baseline is row 12.
	if a.w != 6 || a.xadvance != 6 || a.h != 9 {
		t.Fatalf("A = %+v", a)
	}
	if rec := a.record(); int8(rec[4]) != -9 {
		t.Fatalf("A y offset = %d", int8(rec[4]))
	}

	if g := font.glyphs['中']; g.w != 12 || g.xadvance != 12 || g.h == 0 {
		t.Fatalf("中 = %+v", g)
	}
	if g, ok := font.glyphs[' ']; !ok || g.h != 0 || g.xadvance != 6 {
		t.Fatalf("space = %+v, %v", g, ok)
	}
	if _, ok := font.glyphs['佤']; ok {
		t.Fatal("blank glyph kept")
	}
	if font.bbox[0] != 12 || font.bbox[1] == 0 {
		t.Fatalf("bbox = %v", font.bbox)
	}
}
