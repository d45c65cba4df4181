package services

import "math"

// TotalScore computes the aggregate session score: the arithmetic mean of the
// five category scores rounded to one decimal place. This is the single
// formula for total score everywhere; the dashboard never recomputes it with
// a different one.
func TotalScore(innovation, feasibility, marketPotential, pitchClarity, problemSolutionFit float64) float64 {
	mean := (innovation + feasibility + marketPotential + pitchClarity + problemSolutionFit) / 5
	return math.Round(mean*10) / 10
}

// ClampScore bounds a model-produced score to the [0,10] range.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
