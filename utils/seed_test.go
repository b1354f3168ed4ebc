package utils

import "testing"

func TestNewRandIsDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := range 100 {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs for equal seeds: %d != %d", i, x, y)
		}
	}
}

func TestResolveSeedKeepsExplicitSeed(t *testing.T) {
	seed, err := ResolveSeed(7)
	if err != nil {
		t.Fatalf("resolve seed: %v", err)
	}
	if seed != 7 {
		t.Fatalf("expected seed 7, got %d", seed)
	}
}

func TestResolveSeedDrawsWhenZero(t *testing.T) {
	if _, err := ResolveSeed(0); err != nil {
		t.Fatalf("resolve seed: %v", err)
	}
}
