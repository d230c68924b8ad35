package program

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Reps is a rep prescription: either a plain count or a free-text token
// such as "1+1" for complexes. JSON encodes counts as numbers and tokens
// as strings, and accepts either on decode.
type Reps struct {
	count int
	text  string
}

// RepCount returns a numeric rep prescription.
func RepCount(n int) Reps { return Reps{count: n} }

// RepText returns a free-text rep prescription.
func RepText(s string) Reps { return Reps{text: s} }

// Count returns the numeric rep count and whether the prescription is numeric.
func (r Reps) Count() (int, bool) {
	if r.text != "" {
		return 0, false
	}
	return r.count, true
}

// ParseReps reads a rep prescription from text. Integers become counts;
// anything else is kept verbatim.
func ParseReps(s string) Reps {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return RepCount(n)
	}
	return RepText(s)
}

func (r Reps) String() string {
	if r.text != "" {
		return r.text
	}
	return strconv.Itoa(r.count)
}

func (r Reps) MarshalJSON() ([]byte, error) {
	if r.text != "" {
		return json.Marshal(r.text)
	}
	return json.Marshal(r.count)
}

func (r *Reps) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = Reps{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding reps: %w", err)
		}
		*r = ParseReps(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decoding reps: %w", err)
	}
	if f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		*r = RepCount(int(f))
		return nil
	}
	*r = RepText(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}
