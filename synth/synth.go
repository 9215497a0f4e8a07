// Package synth generates the plausible demo statistics that fill the
// inequality database. Every generator draws from a single seeded source so
// a fixed seed reproduces the exact same dataset.
package synth

import (
	"math"
	"math/rand"
	"time"
)

const (
	// BaseYear anchors every time series; growth and improvement terms are
	// computed from years elapsed since it.
	BaseYear  = 2015
	FinalYear = 2023

	// ShockYear is the shared negative-growth year applied to all countries.
	ShockYear = 2020
)

// SurveyYears are the biennial years carrying inequality and poverty rows.
var SurveyYears = []int{2015, 2017, 2019, 2021, 2023}

type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with seed. A zero seed falls back to the
// wall clock, making the output non-reproducible.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

type span struct {
	lo, hi float64
}

func (g *Generator) uniform(s span) float64 {
	return s.lo + g.rng.Float64()*(s.hi-s.lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
