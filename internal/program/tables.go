package program

// pct builds a scheme row at a percentage of the lift's 1RM.
func pct(percent float64, sets int, reps Reps) SchemeRow {
	return SchemeRow{Percent: &percent, Sets: sets, Reps: reps}
}

func (r SchemeRow) withNote(note string) SchemeRow {
	r.Note = note
	return r
}

var (
	r1 = RepCount(1)
	r2 = RepCount(2)
	r3 = RepCount(3)
	r4 = RepCount(4)
	r5 = RepCount(5)
	r6 = RepCount(6)

	// r11 is the clean + jerk complex token.
	r11 = RepText("1+1")
)

// mainSchemes maps each lift to its week-by-week periodization. Deadlift
// only has odd weeks and Bench Press only even weeks; squat variants list
// the weeks that deviate from squatBase.
var mainSchemes = map[Lift]map[int][]SchemeRow{
	Snatch: {
		1:  {pct(55, 2, r3), pct(60, 2, r3), pct(65, 2, r3)},
		2:  {pct(60, 2, r3), pct(65, 2, r3), pct(70, 2, r3)},
		3:  {pct(70, 3, r2), pct(72, 3, r2)},
		4:  {pct(72, 2, r2), pct(75, 2, r2), pct(78, 2, r2)},
		5:  {pct(75, 3, r2), pct(80, 3, r2)},
		6:  {pct(78, 2, r2), pct(82, 2, r2)},
		7:  {pct(80, 2, r2), pct(85, 2, r1)},
		8:  {pct(82, 3, r1), pct(85, 2, r1)},
		9:  {pct(85, 3, r1).withNote("build heavy singles"), pct(88, 1, r1), pct(90, 1, r1)},
		10: {pct(60, 2, r2), pct(65, 1, r2), pct(70, 1, r2)},
	},
	CleanJerk: {
		1:  {pct(55, 4, r11), pct(60, 2, r11), pct(65, 2, r11)},
		2:  {pct(60, 4, r11), pct(65, 2, r11), pct(70, 2, r11)},
		3:  {pct(70, 3, r11), pct(75, 3, r11)},
		4:  {pct(72, 2, r11), pct(78, 2, r11)},
		5:  {pct(75, 3, r11), pct(80, 3, r11)},
		6:  {pct(78, 2, r11), pct(82, 2, r11)},
		7:  {pct(80, 3, r11), pct(85, 2, r11)},
		8:  {pct(82, 3, r11), pct(85, 2, r11)},
		9:  {pct(85, 2, r11), pct(88, 1, r11), pct(90, 1, r11)},
		10: {pct(60, 2, r11), pct(65, 1, r11), pct(70, 1, r11)},
	},
	Deadlift: {
		1: {pct(60, 1, r5), pct(65, 1, r5), pct(70, 3, r5)},
		3: {pct(70, 1, r4), pct(75, 3, r4)},
		5: {pct(75, 1, r4), pct(80, 3, r4)},
		7: {pct(80, 4, r3)},
		9: {pct(85, 3, r3)},
	},
	BenchPress: {
		2:  {pct(60, 1, r6), pct(65, 1, r6), pct(70, 3, r5)},
		4:  {pct(72, 4, r4)},
		6:  {pct(75, 4, r4)},
		8:  {pct(80, 4, r3)},
		10: {pct(60, 3, r5)},
	},
	BackSquat: {
		3: {pct(70, 2, r4), pct(75, 2, r4), pct(80, 1, r3)},
		5: {pct(75, 2, r4), pct(80, 2, r3)},
		7: {pct(80, 3, r3)},
		9: {pct(85, 3, r2)},
	},
	FrontSquat: {
		4:  {pct(70, 2, r4), pct(75, 2, r3)},
		6:  {pct(75, 3, r3)},
		8:  {pct(80, 3, r2)},
		10: {pct(60, 3, r3)},
	},
}

// squatBase is used for squat weeks without an explicit entry.
var squatBase = map[Lift][]SchemeRow{
	BackSquat:  {pct(60, 2, r5), pct(70, 2, r4), pct(75, 2, r4)},
	FrontSquat: {pct(60, 2, r5), pct(65, 2, r4), pct(70, 2, r4)},
}

// SchemeFor returns a copy of the main-lift scheme for lift in week.
// Squat variants fall back to their base scheme; sparse lifts report
// ok=false for weeks they are not trained.
func SchemeFor(lift Lift, week int) ([]SchemeRow, bool) {
	if byWeek, ok := mainSchemes[lift]; ok {
		if rows, ok := byWeek[week]; ok {
			return cloneScheme(rows), true
		}
	}
	if week < 1 || week > Weeks {
		return nil, false
	}
	if base, ok := squatBase[lift]; ok {
		return cloneScheme(base), true
	}
	return nil, false
}

func cloneScheme(rows []SchemeRow) []SchemeRow {
	out := make([]SchemeRow, len(rows))
	for i, r := range rows {
		if r.Percent != nil {
			p := *r.Percent
			r.Percent = &p
		}
		out[i] = r
	}
	return out
}
