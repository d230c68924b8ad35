package program

import "math"

// DefaultRoundStep is the plate increment target loads are rounded to, in kg.
const DefaultRoundStep = 2.5

// EstimateLoad converts a percentage of a 1RM into a target load rounded to
// the nearest multiple of step (half away from zero). It returns 0 when
// either input is missing, non-positive or not finite, meaning no target.
// A non-positive step falls back to DefaultRoundStep.
func EstimateLoad(oneRM float64, percent *float64, step float64) float64 {
	if percent == nil || !finite(oneRM) || !finite(*percent) || oneRM <= 0 {
		return 0
	}
	if !finite(step) || step <= 0 {
		step = DefaultRoundStep
	}
	v := math.Round(oneRM**percent/100/step) * step
	if !finite(v) {
		return 0
	}
	return v
}

// TargetLoad is EstimateLoad for a scheme row with the default step.
func TargetLoad(oneRM float64, row SchemeRow) float64 {
	return EstimateLoad(oneRM, row.Percent, DefaultRoundStep)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
