// Package blend computes the volume and effective alcohol content of a
// cocktail from its ingredient pours.
package blend

import "math"

// Portion is one pour: how much liquid and how strong it is.
type Portion struct {
	VolumeMl   float64
	AbvPercent float64 // 0–100
}

type Result struct {
	TotalVolumeMl  float64
	TotalAlcoholMl float64
	// FinalAbv is the volume-weighted alcohol percentage of the mix.
	// Zero when nothing is poured.
	FinalAbv float64
}

// Mix aggregates the portions. An empty mix or all-zero volumes yield a
// FinalAbv of 0 rather than a division fault.
func Mix(portions []Portion) Result {
	var r Result
	for _, p := range portions {
		r.TotalVolumeMl += p.VolumeMl
		r.TotalAlcoholMl += p.VolumeMl * p.AbvPercent / 100
	}
	if r.TotalVolumeMl > 0 {
		r.FinalAbv = r.TotalAlcoholMl / r.TotalVolumeMl * 100
	}
	return r
}

// Round1 rounds to one decimal place. Display only: stored values keep full
// precision so repeated edits never compound rounding error.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
