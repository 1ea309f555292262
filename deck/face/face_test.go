package face_test

import (
	"testing"

	"taskdeck/deck/face"
	"taskdeck/deck/render"
	"taskdeck/deck/screen"
	"taskdeck/deck/timefmt"
)

func TestCarriesDeviceText(t *testing.T) {
	texts := []string{
		render.DefaultLocale.Untitled,
		render.DefaultLocale.Empty,
		screen.EPaperStyle.CountPrefix,
		screen.EPaperStyle.ClockInitial,
		screen.EPaperStyle.SlotInitial,
		screen.EPaperStyle.DueInitial,
		"…",
		string(face.Replacement),
	}
	for _, l := range []timefmt.Layout{timefmt.Compact, timefmt.Deadline, timefmt.Clock} {
		texts = append(texts, l.Pattern, l.Sentinel)
	}
	for _, s := range texts {
		for _, r := range s {
			if !face.Pixel12.Has(r) {
				t.Fatalf("no glyph for %q in %q", r, s)
			}
		}
	}
	if n := face.Pixel12.Len(); n < 7000 {
		t.Fatalf("only %d glyphs", n)
	}
}

func TestGlyphMetrics(t *testing.T) {
	f := face.Pixel12
	if f.GetYAdvance() != 14 || f.Ascent() != 11 {
		t.Fatalf("y advance = %d ascent = %d", f.GetYAdvance(), f.Ascent())
	}

	a := f.GetGlyph('A')
	zh := f.GetGlyph('中')
	if got := a.Info(); got.Rune != 'A' || got.XAdvance != 6 || got.Height == 0 {
		t.Fatalf("A = %+v", got)
	}
	if got := zh.Info(); got.Rune != '中' || got.XAdvance != 12 || got.Width != 12 {
		t.Fatalf("中 = %+v", got)
	}
	if got := f.GetGlyph(' ').Info(); got.XAdvance != 6 || got.Height != 0 {
		t.Fatalf("space = %+v", got)
	}
}

func TestMissingRuneDrawsReplacement(t *testing.T) {
	f := face.Pixel12
	if f.Has('😀') {
		t.Fatal("font claims an emoji")
	}
	got := f.GetGlyph('😀').Info()
	want := f.GetGlyph(face.Replacement).Info()
	if got.Rune != '😀' || got.XAdvance != want.XAdvance || got.Height != want.Height {
		t.Fatalf("missing rune = %+v, replacement = %+v", got, want)
	}
}
