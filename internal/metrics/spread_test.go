package metrics

import (
	"math"
	"testing"
	"time"
)

func TestComputeSpread(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		durations    []time.Duration
		wantMin      time.Duration
		wantMax      time.Duration
		wantMean     time.Duration
		wantRelative float64
	}{
		{"empty", nil, 0, 0, 0, 0},
		{"single", []time.Duration{time.Second}, time.Second, time.Second, time.Second, 0},
		{"balanced", []time.Duration{time.Second, time.Second, time.Second}, time.Second, time.Second, time.Second, 0},
		{"skewed", []time.Duration{time.Second, 3 * time.Second}, time.Second, 3 * time.Second, 2 * time.Second, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := ComputeSpread(tt.durations)
			if s.Min != tt.wantMin || s.Max != tt.wantMax || s.Mean != tt.wantMean {
				t.Errorf("min/max/mean = %v/%v/%v, want %v/%v/%v", s.Min, s.Max, s.Mean, tt.wantMin, tt.wantMax, tt.wantMean)
			}
			if math.Abs(s.Relative-tt.wantRelative) > 1e-9 {
				t.Errorf("Relative = %f, want %f", s.Relative, tt.wantRelative)
			}
		})
	}
}

func TestComputeSpread_StdDev(t *testing.T) {
	t.Parallel()
	// Sample standard deviation of {1, 3} seconds is sqrt(2) seconds.
	s := ComputeSpread([]time.Duration{time.Second, 3 * time.Second})
	sqrt2 := math.Sqrt2
	want := time.Duration(sqrt2 * float64(time.Second))
	if diff := s.StdDev - want; diff < -time.Microsecond || diff > time.Microsecond {
		t.Errorf("StdDev = %v, want %v", s.StdDev, want)
	}
	if math.Abs(s.CV-math.Sqrt2/2) > 1e-6 {
		t.Errorf("CV = %f, want %f", s.CV, math.Sqrt2/2)
	}
}
