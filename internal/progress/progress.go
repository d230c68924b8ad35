// Package progress derives completion metrics from the program and the
// user's log. Everything here is a pure function of its inputs.
package progress

import (
	"math"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/program"
)

// Result is set completion for one session.
type Result struct {
	Done    int `json:"done"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Session counts completed sets against the prescription. Main rows count
// logged weights above zero, capped at the row's sets; accessories count
// setsCompleted, capped likewise. Log entries for indices the session does
// not have are ignored.
func Session(s program.Session, log models.DayLog) Result {
	var r Result
	for i, row := range s.Main.Scheme {
		r.Total += row.Sets
		if l, ok := log.Main[i]; ok {
			r.Done += min(l.LoggedSets(), row.Sets)
		}
	}
	for i, acc := range s.Accessories {
		r.Total += acc.Sets
		if l, ok := log.Accessories[i]; ok {
			r.Done += min(l.Completed(), acc.Sets)
		}
	}
	r.Percent = percent(r.Done, r.Total)
	return r
}

// Position is where a (week, day) sits on the flattened 40-session calendar.
type Position struct {
	Week    int `json:"week"`
	Day     int `json:"day"`
	Index   int `json:"index"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Overall reports calendar position, not completion: it never reads the log.
// Week 1 day 1 is 0% and week 10 day 4 is 100%.
func Overall(week, day int) Position {
	total := program.Weeks * program.DaysPerWeek
	idx := (week-1)*program.DaysPerWeek + (day - 1)
	return Position{
		Week:    week,
		Day:     day,
		Index:   idx,
		Total:   total,
		Percent: percent(idx, total-1),
	}
}

// WeekSummary aggregates session results for one week.
type WeekSummary struct {
	Week     int      `json:"week"`
	Sessions []Result `json:"sessions"`
	Result
}

// Summary aggregates set completion across the whole program.
type Summary struct {
	Weeks []WeekSummary `json:"weeks"`
	Result
	// SessionsComplete counts sessions with every prescribed set done.
	SessionsComplete int `json:"sessionsComplete"`
}

// Program applies Session to every session in p using logs.
func Program(p program.Program, logs models.LogStore) Summary {
	var sum Summary
	for _, w := range p.Weeks {
		ws := WeekSummary{Week: w.Week}
		for _, s := range w.Days {
			r := Session(s, logs.Day(w.Week, s.Day))
			ws.Sessions = append(ws.Sessions, r)
			ws.Done += r.Done
			ws.Total += r.Total
			if r.Total > 0 && r.Done == r.Total {
				sum.SessionsComplete++
			}
		}
		ws.Percent = percent(ws.Done, ws.Total)
		sum.Weeks = append(sum.Weeks, ws)
		sum.Done += ws.Done
		sum.Total += ws.Total
	}
	sum.Percent = percent(sum.Done, sum.Total)
	return sum
}

func percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
