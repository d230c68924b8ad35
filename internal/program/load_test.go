package program

import (
	"encoding/json"
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

// TestEstimateLoad verifies percentage-to-load rounding to plate increments.
func TestEstimateLoad(t *testing.T) {
	tests := []struct {
		name    string
		oneRM   float64
		percent *float64
		step    float64
		want    float64
	}{
		{"exact", 100, f(50), 2.5, 50},
		{"rounds up to nearest step", 103, f(60), 2.5, 62.5},
		{"half rounds away from zero", 105, f(50), 5, 55},
		{"no 1RM", 0, f(50), 2.5, 0},
		{"no percent", 100, nil, 2.5, 0},
		{"negative 1RM", -100, f(50), 2.5, 0},
		{"NaN 1RM", math.NaN(), f(50), 2.5, 0},
		{"infinite percent", 100, f(math.Inf(1)), 2.5, 0},
		{"zero step uses default", 103, f(60), 0, 62.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateLoad(tc.oneRM, tc.percent, tc.step); got != tc.want {
				t.Errorf("EstimateLoad(%v, %v, %v) = %v, want %v", tc.oneRM, tc.percent, tc.step, got, tc.want)
			}
		})
	}
}

// TestTargetLoad verifies the scheme-row convenience wrapper.
func TestTargetLoad(t *testing.T) {
	if got := TargetLoad(70, pct(80, 3, r2)); got != 55 {
		t.Errorf("TargetLoad(70, 80%%) = %v, want 55", got)
	}
	if got := TargetLoad(70, SchemeRow{Sets: 3, Reps: r5}); got != 0 {
		t.Errorf("TargetLoad without percent = %v, want 0", got)
	}
}

// TestRepsJSON verifies numeric and token reps encode in their natural JSON form.
func TestRepsJSON(t *testing.T) {
	data, err := json.Marshal([]Reps{RepCount(5), RepText("1+1")})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[5,"1+1"]` {
		t.Errorf("marshal = %s, want [5,\"1+1\"]", data)
	}

	var got []Reps
	if err := json.Unmarshal([]byte(`[8,"1+1","12",null]`), &got); err != nil {
		t.Fatal(err)
	}
	if n, ok := got[0].Count(); !ok || n != 8 {
		t.Errorf("got[0] = %v, want 8", got[0])
	}
	if _, ok := got[1].Count(); ok || got[1].String() != "1+1" {
		t.Errorf("got[1] = %v, want token 1+1", got[1])
	}
	if n, ok := got[2].Count(); !ok || n != 12 {
		t.Errorf("got[2] = %v, want 12", got[2])
	}
	if n, ok := got[3].Count(); !ok || n != 0 {
		t.Errorf("got[3] = %v, want 0", got[3])
	}
}

// TestParseReps verifies integer text becomes a count and other text is kept.
func TestParseReps(t *testing.T) {
	tests := []struct {
		in        string
		want      string
		isNumeric bool
	}{
		{"8", "8", true},
		{" 12 ", "12", true},
		{"1+1", "1+1", false},
		{"AMRAP", "AMRAP", false},
	}
	for _, tt := range tests {
		r := ParseReps(tt.in)
		_, numeric := r.Count()
		if r.String() != tt.want || numeric != tt.isNumeric {
			t.Errorf("ParseReps(%q) = %q numeric=%v, want %q numeric=%v", tt.in, r, numeric, tt.want, tt.isNumeric)
		}
	}
}
