package program

// Exercise pools. Order matters: rotation seeds index into these slices,
// so reordering changes every generated week and misaligns stored logs.
var (
	warmupPool = []string{
		"SAS / band warm-up", "Bird Dog", "Glute Bridge", "Superman / Hyper",
		"Overhead Duck Walk", "T-plank", "90/90 Hip Flow", "Rack Lats Stretch",
		"Shoulder Spins", "Hip Mobilization",
	}

	snatchBarbell   = "Snatch Pull (to knee)"
	cjBarbellPool   = []string{"Push Press", "Jerk Behind Neck (tech)", "Clean Pull (to knee)"}
	squatAssistPool = []string{"Paused Squat (3s)", "Tempo Squat (3-0-3)"}
	deadliftBarPool = []string{"Romanian Deadlift", "Good Morning", "Snatch Grip RDL"}

	upperHyperPool = []string{
		"DB Lateral Raise", "Rear Delt Fly (DB/Cable)", "Incline DB Press",
		"Lat Pulldown / Pull-up", "Seated Cable Row", "Face Pull",
		"Single-arm DB Row", "Cable Fly", "Triceps Pressdown", "Biceps Curl (DB)",
	}
	lowerHyperPool = []string{
		"Walking Lunges", "Leg Press", "Hack/Goblet Squat", "Hamstring Curl (machine)",
		"Reverse Hyper", "Seated Calf Raise", "Standing Calf Raise", "Spanish Squat",
	}
	corePool = []string{
		"Hanging Leg Raise", "Cable Crunch", "Pallof Press", "Back Extension",
		"Weighted Plank 30–45s", "Dead Bug", "Side Plank 30–45s",
	}
)

// forcedCJBarbell overrides the rotated clean & jerk barbell slot by week.
var forcedCJBarbell = map[int]string{3: "Push Press"}
