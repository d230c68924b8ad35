package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/meltforce/liftlog/internal/program"
)

// SetLogRow is the logged weights for one main-lift scheme row.
// A weight of 0 means the set was not logged.
type SetLogRow struct {
	SetWeights []float64 `json:"setWeights"`
	Notes      string    `json:"notes,omitempty"`
}

// LoggedSets counts weights greater than zero.
func (r SetLogRow) LoggedSets() int {
	n := 0
	for _, w := range r.SetWeights {
		if w > 0 {
			n++
		}
	}
	return n
}

// AccessoryLogRow is the logged result for one accessory exercise.
type AccessoryLogRow struct {
	Weight        *float64      `json:"weight,omitempty"`
	Reps          *program.Reps `json:"reps,omitempty"`
	SetsCompleted *int          `json:"setsCompleted,omitempty"`
}

// UnmarshalJSON decodes numeric fields leniently. The browser client stored
// whatever the input held, so setsCompleted may be fractional or a string.
func (r *AccessoryLogRow) UnmarshalJSON(data []byte) error {
	var raw struct {
		Weight        *Num          `json:"weight"`
		Reps          *program.Reps `json:"reps"`
		SetsCompleted *Num          `json:"setsCompleted"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = AccessoryLogRow{Reps: raw.Reps}
	if raw.Weight != nil {
		w := float64(*raw.Weight)
		r.Weight = &w
	}
	if raw.SetsCompleted != nil {
		n := raw.SetsCompleted.Int()
		r.SetsCompleted = &n
	}
	return nil
}

// Completed returns SetsCompleted, treating missing or negative values as 0.
func (r AccessoryLogRow) Completed() int {
	if r.SetsCompleted == nil || *r.SetsCompleted < 0 {
		return 0
	}
	return *r.SetsCompleted
}

// DayLog holds everything logged for one session, keyed by position in
// the session's scheme and accessory lists.
type DayLog struct {
	Main        map[int]SetLogRow       `json:"main"`
	Accessories map[int]AccessoryLogRow `json:"accessories"`
}

// NewDayLog returns an empty DayLog with initialised maps.
func NewDayLog() DayLog {
	return DayLog{Main: map[int]SetLogRow{}, Accessories: map[int]AccessoryLogRow{}}
}

// Clone returns a deep copy of the log.
func (d DayLog) Clone() DayLog {
	out := NewDayLog()
	for i, r := range d.Main {
		r.SetWeights = append([]float64(nil), r.SetWeights...)
		out.Main[i] = r
	}
	for i, r := range d.Accessories {
		out.Accessories[i] = AccessoryLogRow{
			Weight:        clonePtr(r.Weight),
			Reps:          clonePtr(r.Reps),
			SetsCompleted: clonePtr(r.SetsCompleted),
		}
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// LogStore maps "week-day" keys to day logs. It only ever grows.
type LogStore map[string]DayLog

// Day returns a copy of the log for week/day, or an empty log.
func (s LogStore) Day(week, day int) DayLog {
	if d, ok := s[DayKey(week, day)]; ok {
		return d.Clone()
	}
	return NewDayLog()
}

// DayKey formats the LogStore key for a session.
func DayKey(week, day int) string {
	return fmt.Sprintf("%d-%d", week, day)
}

// ParseDayKey splits a "week-day" key.
func ParseDayKey(key string) (week, day int, err error) {
	w, d, ok := strings.Cut(key, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid day key %q", key)
	}
	if week, err = strconv.Atoi(w); err != nil {
		return 0, 0, fmt.Errorf("invalid week in day key %q: %w", key, err)
	}
	if day, err = strconv.Atoi(d); err != nil {
		return 0, 0, fmt.Errorf("invalid day in day key %q: %w", key, err)
	}
	return week, day, nil
}

// OneRMProfile maps lifts to one-rep maxes in kilograms. Missing lifts read as 0.
type OneRMProfile map[program.Lift]float64

// DefaultOneRM is the profile used before the user enters their own maxes.
func DefaultOneRM() OneRMProfile {
	return OneRMProfile{
		program.Snatch:     70,
		program.CleanJerk:  90,
		program.Deadlift:   195,
		program.BenchPress: 110,
		program.BackSquat:  130,
		program.FrontSquat: 110,
	}
}

// Get returns the 1RM for lift, or 0 when unset.
func (p OneRMProfile) Get(lift program.Lift) float64 {
	return p[lift]
}

// Tab is the selected view in the client.
type Tab string

const (
	TabWorkout  Tab = "workout"
	TabSettings Tab = "settings"
)

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	return t == TabWorkout || t == TabSettings
}

// ParseNumber converts a user-entered numeric field. Anything that does
// not parse as a finite number is treated as 0 so input is never rejected.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
