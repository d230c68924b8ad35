package models

import (
	"bytes"
	"encoding/json"
	"math"
)

// Num is a numeric field from user input. It accepts JSON numbers,
// numeric strings, empty strings and null; anything unparseable decodes
// to 0 instead of failing the request.
type Num float64

func (n *Num) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		*n = Num(ParseNumber(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = Num(f)
	return nil
}

// NonNegative clamps negative input to 0.
func (n Num) NonNegative() float64 {
	if n < 0 {
		return 0
	}
	return float64(n)
}

// Int truncates n toward zero, saturating at the int32 range.
func (n Num) Int() int {
	return int(math.Trunc(max(min(float64(n), math.MaxInt32), math.MinInt32)))
}
