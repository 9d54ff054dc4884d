package metrics

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Spread describes how evenly work was spread across workers.
type Spread struct {
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	StdDev time.Duration
	// Relative is (Max-Min)/Mean; 0 means perfectly balanced.
	Relative float64
	// CV is the coefficient of variation, StdDev/Mean.
	CV float64
}

// ComputeSpread summarizes worker durations. An empty input yields the
// zero Spread.
func ComputeSpread(durations []time.Duration) Spread {
	if len(durations) == 0 {
		return Spread{}
	}
	xs := make([]float64, len(durations))
	for i, d := range durations {
		xs[i] = float64(d)
	}

	lo, hi := floats.Min(xs), floats.Max(xs)
	var mean, std float64
	if len(xs) == 1 {
		mean = xs[0]
	} else {
		mean, std = stat.MeanStdDev(xs, nil)
	}

	s := Spread{
		Min:    time.Duration(lo),
		Max:    time.Duration(hi),
		Mean:   time.Duration(mean),
		StdDev: time.Duration(std),
	}
	if mean > 0 {
		s.Relative = (hi - lo) / mean
		s.CV = std / mean
	}
	return s
}
