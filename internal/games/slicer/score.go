package slicer

import (
	"fmt"
	"math"
)

// ScorePolicy returns the points for one cut given the score multiplier of
// the mode and the combo count before the cut. Policies must return a
// positive value for any combo >= 0 so the score never decreases.
type ScorePolicy func(multiplier float64, combo int) float64

// Log2Score rewards chains with diminishing returns.
func Log2Score(multiplier float64, combo int) float64 {
	return multiplier * math.Log2(float64(combo)+2)
}

// LinearScore adds the combo count on top of the multiplier.
func LinearScore(multiplier float64, combo int) float64 {
	return multiplier + float64(combo)
}

// FlatScore gives one point per cut.
func FlatScore(float64, int) float64 {
	return 1
}

// ScorePolicyByName resolves a policy name from the config.
func ScorePolicyByName(name string) (ScorePolicy, error) {
	switch name {
	case "", "log2":
		return Log2Score, nil
	case "linear":
		return LinearScore, nil
	case "flat":
		return FlatScore, nil
	default:
		return nil, fmt.Errorf("slicer: unknown score policy %q", name)
	}
}
