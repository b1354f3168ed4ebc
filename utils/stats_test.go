package utils

import (
	"math"
	"testing"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 10)
	if s.AveragePopulation != 10 || s.PeakPopulation != 10 {
		t.Fatalf("first update should seed average and peak, got %+v", s)
	}

	s.Update(2, 20)
	if s.TotalGenerations != 2 {
		t.Fatalf("expected 2 generations, got %d", s.TotalGenerations)
	}
	if s.PeakPopulation != 20 {
		t.Fatalf("expected peak 20, got %d", s.PeakPopulation)
	}
	if math.Abs(s.AveragePopulation-11) > 1e-9 {
		t.Fatalf("expected moving average 11, got %f", s.AveragePopulation)
	}

	s.Update(3, 5)
	if s.PeakPopulation != 20 {
		t.Fatalf("peak should not drop, got %d", s.PeakPopulation)
	}
	if s.Elapsed() < 0 {
		t.Fatalf("elapsed should not be negative")
	}
}
