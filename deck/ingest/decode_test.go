package ingest

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []Raw
	}{
		{
			name:    "empty list",
			payload: `[]`,
			want:    []Raw{},
		},
		{
			name:    "number and string due",
			payload: `[{"summary":"a","dueTimestamp":1700000000000},{"summary":"b","dueTimestamp":"1700000060000"}]`,
			want: []Raw{
				{Summary: "a", HasSummary: true, DueMillis: 1700000000000},
				{Summary: "b", HasSummary: true, DueMillis: 1700000060000},
			},
		},
		{
			name:    "due alias",
			payload: `[{"summary":"c","due":42000}]`,
			want:    []Raw{{Summary: "c", HasSummary: true, DueMillis: 42000}},
		},
		{
			name:    "dueTimestamp wins over due",
			payload: `[{"due":1,"dueTimestamp":2}]`,
			want:    []Raw{{DueMillis: 2}},
		},
		{
			name:    "missing and mistyped fields",
			payload: `[{}, {"summary": 12, "dueTimestamp": true}, {"summary": null, "dueTimestamp": null}]`,
			want:    []Raw{{}, {}, {}},
		},
		{
			name:    "non-object elements",
			payload: `[1, "x", null, [], {"summary":"ok"}]`,
			want:    []Raw{{}, {}, {}, {}, {Summary: "ok", HasSummary: true}},
		},
		{
			name:    "empty summary is kept",
			payload: `[{"summary":""}]`,
			want:    []Raw{{Summary: "", HasSummary: true}},
		},
		{
			name:    "float due truncates",
			payload: `[{"dueTimestamp":1700000000999.9}]`,
			want:    []Raw{{DueMillis: 1700000000999}},
		},
		{
			name:    "comments and trailing commas",
			payload: "[\n  // first\n  {\"summary\": \"a\", \"dueTimestamp\": 5,},\n]",
			want:    []Raw{{Summary: "a", HasSummary: true, DueMillis: 5}},
		},
		{
			name:    "unknown fields ignored",
			payload: `[{"taskId":"x","status":"todo","summary":"s","dueIsAllDay":false}]`,
			want:    []Raw{{Summary: "s", HasSummary: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.payload))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeRejectsNonList(t *testing.T) {
	tests := []struct {
		payload string
		want    error
	}{
		{payload: `{"summary":"a"}`, want: ErrNotList},
		{payload: `"tasks"`, want: ErrNotList},
		{payload: `17`, want: ErrNotList},
		{payload: `null`, want: ErrNotList},
		{payload: `[{"summary":`, want: ErrMalformed},
		{payload: ``, want: ErrMalformed},
		{payload: `not json`, want: ErrMalformed},
	}
	for _, tt := range tests {
		raws, err := Decode([]byte(tt.payload))
		if !errors.Is(err, tt.want) {
			t.Fatalf("Decode(%q) err = %v, want %v", tt.payload, err, tt.want)
		}
		if raws != nil {
			t.Fatalf("Decode(%q) returned records", tt.payload)
		}
	}
}

func TestDecodeDoesNotModifyPayload(t *testing.T) {
	payload := []byte("[{\"summary\":\"a\",}]")
	orig := string(payload)
	if _, err := Decode(payload); err != nil {
		t.Fatal(err)
	}
	if string(payload) != orig {
		t.Fatalf("payload modified: %q", payload)
	}
}

func TestLeadingInt(t *testing.T) {
	tests := map[string]int64{
		"":                     0,
		"abc":                  0,
		"123":                  123,
		"  42":                 42,
		"17abc":                17,
		"-5":                   -5,
		"+9":                   9,
		"1.5e3":                1,
		"99999999999999999999": math.MaxInt64,
	}
	for in, want := range tests {
		if got := leadingInt(in); got != want {
			t.Fatalf("leadingInt(%q) = %d, want %d", in, got, want)
		}
	}
}
