// Package timefmt renders epoch timestamps as short local date/time labels.
//
// All rendering happens in the fixed UTC+8 zone. Output is a text.Text bounded by
// LabelBytes, so callers can store it without further allocation.
package timefmt

import (
	"time"

	"taskdeck/deck/text"
)

// LabelBytes bounds every formatted label.
const LabelBytes = 32

// Zone is the process-wide display zone.
var Zone = time.FixedZone("CST", 8*60*60)

// Layout pairs a Go time layout with the literal shown for a missing timestamp.
type Layout struct {
	Pattern  string
	Sentinel string
}

var (
	// Compact is the month/day hour:minute style used on the LCD panel.
	Compact = Layout{Pattern: "01月02日15:04", Sentinel: "00月00日00:00"}

	// Deadline is the due-date style used on the e-paper panel.
	Deadline = Layout{Pattern: "截止: 01-02 15:04", Sentinel: "无截止"}

	// Clock is the wall-clock style used on the e-paper status bar.
	Clock = Layout{Pattern: "01-02 15:04", Sentinel: "--/-- --:--"}
)

// Format renders sec (seconds since the epoch) with the Compact layout.
func Format(sec int64) text.Text {
	return Compact.Format(sec)
}

// Format renders sec in Zone. sec == 0 yields the sentinel.
func (l Layout) Format(sec int64) text.Text {
	var out text.Text
	l.FormatInto(&out, sec)
	return out
}

// FormatInto is Format writing into an existing Text.
func (l Layout) FormatInto(dst *text.Text, sec int64) {
	if sec == 0 {
		dst.Set(l.Sentinel, LabelBytes)
		return
	}
	l.appendInto(dst, time.Unix(sec, 0))
}

// FormatTime renders t in Zone. The zero Time yields the sentinel.
func (l Layout) FormatTime(t time.Time) text.Text {
	var out text.Text
	l.FormatTimeInto(&out, t)
	return out
}

// FormatTimeInto is FormatTime writing into an existing Text.
func (l Layout) FormatTimeInto(dst *text.Text, t time.Time) {
	if t.IsZero() {
		dst.Set(l.Sentinel, LabelBytes)
		return
	}
	l.appendInto(dst, t)
}

func (l Layout) appendInto(dst *text.Text, t time.Time) {
	var buf [2 * LabelBytes]byte
	b := t.In(Zone).AppendFormat(buf[:0], l.Pattern)
	dst.SetBytes(b, LabelBytes)
}
