package program

import "fmt"

// Lift identifies a competition or strength lift that carries a 1RM.
type Lift string

const (
	Snatch     Lift = "Snatch"
	CleanJerk  Lift = "Clean & Jerk"
	Deadlift   Lift = "Deadlift"
	BenchPress Lift = "Bench Press"
	BackSquat  Lift = "Back Squat"
	FrontSquat Lift = "Front Squat"
)

// AllLifts lists every lift in settings display order.
var AllLifts = []Lift{Snatch, CleanJerk, Deadlift, BenchPress, BackSquat, FrontSquat}

// ParseLift returns the Lift with the given display name.
func ParseLift(s string) (Lift, error) {
	for _, l := range AllLifts {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown lift %q", s)
}

// SquatTypeFor returns the squat variant trained in the given week.
// Odd weeks back squat, even weeks front squat.
func SquatTypeFor(week int) Lift {
	if week%2 == 1 {
		return BackSquat
	}
	return FrontSquat
}

// DayFourLift returns the lift trained on day 4. It follows the same
// parity as the squat variant: deadlift on odd weeks, bench on even.
func DayFourLift(week int) Lift {
	if week%2 == 1 {
		return Deadlift
	}
	return BenchPress
}
