package program

import "fmt"

// Rotation seeds are week*mult + offset. Each slot has its own multiplier
// so slots drift independently from week to week.
type seed struct{ mult, offset int }

func (s seed) at(week int) int { return week*s.mult + s.offset }

var (
	// Warm-up offset is the session day, added at the call site.
	seedWarmup = seed{11, 0}

	seedSnatchHyper = seed{13, 1}
	seedSnatchCore  = seed{17, 1}

	seedSquatBar   = seed{5, 2}
	seedSquatHyper = seed{7, 2}
	seedSquatCore  = seed{9, 2}

	seedCJBar   = seed{19, 3}
	seedCJHyper = seed{23, 3}
	seedCJCore  = seed{29, 3}

	seedDeadliftBar   = seed{31, 4}
	seedDeadliftHyper = seed{37, 4}
	seedDeadliftCore  = seed{41, 4}

	seedBenchHyper = seed{43, 4}
	seedBenchCore  = seed{47, 4}
)

// Build generates the full program. It depends only on the static tables,
// so repeated calls return deeply equal values.
func Build() Program {
	p := Program{Weeks: make([]Week, 0, Weeks)}
	for w := 1; w <= Weeks; w++ {
		p.Weeks = append(p.Weeks, buildWeek(w))
	}
	return p
}

func buildWeek(week int) Week {
	squat := SquatTypeFor(week)
	dayFour := DayFourLift(week)

	days := []Session{
		newSession(week, 1, "Snatch Day", Snatch, snatchAccessories(week)),
		newSession(week, 2, string(squat)+" Day", squat, squatAccessories(week)),
		newSession(week, 3, "Clean & Jerk Day", CleanJerk, cleanJerkAccessories(week)),
	}
	if dayFour == Deadlift {
		days = append(days, newSession(week, 4, "Deadlift Day", Deadlift, deadliftAccessories(week)))
	} else {
		days = append(days, newSession(week, 4, "Bench Press Day", BenchPress, benchAccessories(week)))
	}

	return Week{Week: week, SquatType: squat, Days: days}
}

func newSession(week, day int, title string, lift Lift, acc []AccessoryPrescription) Session {
	scheme, ok := SchemeFor(lift, week)
	if !ok {
		panic(fmt.Sprintf("program: no %s scheme for week %d", lift, week))
	}
	return Session{
		Day:         day,
		Title:       title,
		Warmup:      mustPick(warmupPool, WarmupSize, seedWarmup.at(week)+day),
		Main:        MainBlock{Lift: lift, Scheme: scheme},
		Accessories: acc,
	}
}

func accessory(name string, sets, reps int) AccessoryPrescription {
	return AccessoryPrescription{Name: name, Sets: sets, Reps: RepCount(reps)}
}

func accessories(names []string, sets, reps int) []AccessoryPrescription {
	out := make([]AccessoryPrescription, 0, len(names))
	for _, n := range names {
		out = append(out, accessory(n, sets, reps))
	}
	return out
}

// pickOne rotates pool and returns the single selected exercise.
func pickOne(pool []string, s seed, week int) string {
	return mustPick(pool, 1, s.at(week))[0]
}

// Upper-body days get three hypertrophy picks, lower-body days two.
func snatchAccessories(week int) []AccessoryPrescription {
	acc := []AccessoryPrescription{accessory(snatchBarbell, 3, 3)}
	acc = append(acc, accessories(mustPick(upperHyperPool, 3, seedSnatchHyper.at(week)), 3, 10)...)
	return append(acc, accessory(pickOne(corePool, seedSnatchCore, week), 3, 12))
}

func squatAccessories(week int) []AccessoryPrescription {
	acc := []AccessoryPrescription{accessory(pickOne(squatAssistPool, seedSquatBar, week), 3, 3)}
	acc = append(acc, accessories(mustPick(lowerHyperPool, 2, seedSquatHyper.at(week)), 3, 12)...)
	return append(acc, accessory(pickOne(corePool, seedSquatCore, week), 3, 12))
}

func cleanJerkAccessories(week int) []AccessoryPrescription {
	bar, forced := forcedCJBarbell[week]
	if !forced {
		bar = pickOne(cjBarbellPool, seedCJBar, week)
	}
	acc := []AccessoryPrescription{accessory(bar, 3, 3)}
	acc = append(acc, accessories(mustPick(upperHyperPool, 3, seedCJHyper.at(week)), 3, 10)...)
	return append(acc, accessory(pickOne(corePool, seedCJCore, week), 3, 12))
}

func deadliftAccessories(week int) []AccessoryPrescription {
	acc := []AccessoryPrescription{accessory(pickOne(deadliftBarPool, seedDeadliftBar, week), 3, 6)}
	acc = append(acc, accessories(mustPick(lowerHyperPool, 2, seedDeadliftHyper.at(week)), 3, 10)...)
	return append(acc, accessory(pickOne(corePool, seedDeadliftCore, week), 3, 12))
}

// Bench day has no barbell assistance slot.
func benchAccessories(week int) []AccessoryPrescription {
	acc := accessories(mustPick(upperHyperPool, 4, seedBenchHyper.at(week)), 3, 10)
	return append(acc, accessory(pickOne(corePool, seedBenchCore, week), 3, 12))
}
