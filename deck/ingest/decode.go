package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/tailscale/hujson"
)

var (
	// ErrNotList is returned for a well-formed payload whose top level is not an array.
	ErrNotList = errors.New("ingest: payload is not a list")

	// ErrMalformed is returned for a payload that does not parse at all.
	ErrMalformed = errors.New("ingest: malformed payload")
)

// Raw is one decoded task object before validation.
type Raw struct {
	Summary    string
	HasSummary bool
	DueMillis  int64
}

// Field names accepted for the due timestamp, in lookup order.
var dueKeys = [...]string{"dueTimestamp", "due"}

// Decode parses a snapshot payload into raw records.
//
// Comments and trailing commas are tolerated. Elements that are not objects decode
// to a zero Raw, so one bad record never rejects the batch.
func Decode(payload []byte) ([]Raw, error) {
	std, err := hujson.Standardize(bytes.Clone(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(std, &items); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w (got %s)", ErrNotList, typeErr.Value)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if items == nil {
		// Top-level null.
		return nil, ErrNotList
	}

	raws := make([]Raw, len(items))
	for i, item := range items {
		raws[i] = decodeRecord(item)
	}
	return raws, nil
}

func decodeRecord(item json.RawMessage) Raw {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return Raw{}
	}

	var r Raw
	if v, ok := fields["summary"]; ok && isString(v) {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			r.Summary = s
			r.HasSummary = true
		}
	}
	for _, k := range dueKeys {
		v, ok := fields[k]
		if !ok {
			continue
		}
		r.DueMillis = parseDue(v)
		break
	}
	return r
}

// isString reports whether v is a JSON string; null would otherwise decode as "".
func isString(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '"'
}

// parseDue accepts a JSON number or a numeric string. Anything else is 0.
func parseDue(v json.RawMessage) int64 {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return 0
	}
	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return 0
		}
		return leadingInt(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(v, &n); err != nil {
			return 0
		}
		if i, err := n.Int64(); err == nil {
			return i
		}
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) {
			return 0
		}
		return truncFloat(f)
	default:
		return 0
	}
}

// leadingInt parses an optional sign and leading decimal digits after leading
// whitespace, ignoring anything that follows. Overflow saturates.
func leadingInt(s string) int64 {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	var n int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int64(s[i] - '0')
		if n > (math.MaxInt64-d)/10 {
			if neg {
				return math.MinInt64
			}
			return math.MaxInt64
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}

func truncFloat(f float64) int64 {
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
