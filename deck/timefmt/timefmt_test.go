package timefmt

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		sec    int64
		want   string
	}{
		{name: "zero is sentinel", layout: Compact, sec: 0, want: "00月00日00:00"},
		// 2023-11-14T22:13:20Z is 2023-11-15 06:13 in UTC+8.
		{name: "compact", layout: Compact, sec: 1700000000, want: "11月15日06:13"},
		{name: "deadline", layout: Deadline, sec: 1700000000, want: "截止: 11-15 06:13"},
		{name: "deadline sentinel", layout: Deadline, sec: 0, want: "无截止"},
		{name: "clock", layout: Clock, sec: 1700000000, want: "11-15 06:13"},
		{name: "epoch plus one", layout: Compact, sec: 1, want: "01月01日08:00"},
		{name: "before epoch", layout: Compact, sec: -3600, want: "01月01日07:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.layout.Format(tt.sec)
			if got.String() != tt.want {
				t.Fatalf("Format(%d) = %q, want %q", tt.sec, got.String(), tt.want)
			}
		})
	}
}

func TestFormatDefaultsToCompact(t *testing.T) {
	if got, want := Format(1700000000).String(), Compact.Format(1700000000).String(); got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormatDeterministic(t *testing.T) {
	a := Format(1700000000)
	for i := 0; i < 10; i++ {
		b := Format(1700000000)
		if !a.Equal(&b) {
			t.Fatalf("call %d: %q != %q", i, b.String(), a.String())
		}
	}
}

func TestFormatIgnoresLocalZone(t *testing.T) {
	ts := time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC)
	got := Compact.FormatTime(ts.In(time.FixedZone("X", -5*3600)))
	if got.String() != "03月10日07:30" {
		t.Fatalf("FormatTime = %q", got.String())
	}
}

func TestFormatTimeZero(t *testing.T) {
	if got := Clock.FormatTime(time.Time{}); got.String() != Clock.Sentinel {
		t.Fatalf("FormatTime(zero) = %q", got.String())
	}
}

func TestFormatBounded(t *testing.T) {
	long := Layout{Pattern: "2006-01-02 15:04:05 2006-01-02 15:04:05 2006-01-02", Sentinel: "-"}
	got := long.Format(1700000000)
	if got.Len() > LabelBytes {
		t.Fatalf("len = %d, want <= %d", got.Len(), LabelBytes)
	}
}
