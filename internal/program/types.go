package program

const (
	// Weeks is the length of the program.
	Weeks = 10
	// DaysPerWeek is the number of sessions in each week.
	DaysPerWeek = 4
	// WarmupSize is the number of warm-up drills in every session.
	WarmupSize = 3
)

// SchemeRow is one prescribed block of working sets for a main lift.
// Percent is nil for rows without a load target.
type SchemeRow struct {
	Percent *float64 `json:"percent,omitempty"`
	Sets    int      `json:"sets"`
	Reps    Reps     `json:"reps"`
	Note    string   `json:"note,omitempty"`
}

// MainBlock is the main-lift prescription of a session.
type MainBlock struct {
	Lift   Lift        `json:"lift"`
	Scheme []SchemeRow `json:"scheme"`
}

// TotalSets sums the prescribed sets across all scheme rows.
func (m MainBlock) TotalSets() int {
	total := 0
	for _, r := range m.Scheme {
		total += r.Sets
	}
	return total
}

// AccessoryPrescription is one accessory exercise in a session.
type AccessoryPrescription struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps Reps   `json:"reps"`
}

// Session is one day's workout.
type Session struct {
	Day         int                     `json:"day"`
	Title       string                  `json:"title"`
	Warmup      []string                `json:"warmup"`
	Main        MainBlock               `json:"main"`
	Accessories []AccessoryPrescription `json:"accessories"`
}

// Week holds the four sessions of one program week.
type Week struct {
	Week      int       `json:"week"`
	SquatType Lift      `json:"squatType"`
	Days      []Session `json:"days"`
}

// Program is the full 10-week schedule. It is built once by Build and
// treated as read-only afterwards.
type Program struct {
	Weeks []Week `json:"weeks"`
}

// Week returns the week with the given number (1-based).
func (p Program) Week(n int) (Week, bool) {
	for _, w := range p.Weeks {
		if w.Week == n {
			return w, true
		}
	}
	return Week{}, false
}

// Session returns the session for the given week and day (both 1-based).
func (p Program) Session(week, day int) (Session, bool) {
	w, ok := p.Week(week)
	if !ok {
		return Session{}, false
	}
	for _, s := range w.Days {
		if s.Day == day {
			return s, true
		}
	}
	return Session{}, false
}

// ReconcileSetWeights returns weights resized to sets entries, padding with
// zeros or truncating. Logs never override the shape of the schedule.
func ReconcileSetWeights(weights []float64, sets int) []float64 {
	if sets < 0 {
		sets = 0
	}
	out := make([]float64, sets)
	copy(out, weights)
	return out
}
