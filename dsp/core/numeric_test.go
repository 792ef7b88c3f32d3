package core

import (
	"math"
	"testing"
)

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{name: "zero", x: 0, want: true},
		{name: "negative", x: -3.5, want: true},
		{name: "max", x: math.MaxFloat64, want: true},
		{name: "nan", x: math.NaN(), want: false},
		{name: "+inf", x: math.Inf(1), want: false},
		{name: "-inf", x: math.Inf(-1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.x); got != tt.want {
				t.Fatalf("IsFinite(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestInUnitInterval(t *testing.T) {
	for _, x := range []float64{0, 0.25, 1} {
		if !InUnitInterval(x) {
			t.Fatalf("InUnitInterval(%v) = false, want true", x)
		}
	}
	for _, x := range []float64{-1e-9, 1.0000001, math.NaN(), math.Inf(1)} {
		if InUnitInterval(x) {
			t.Fatalf("InUnitInterval(%v) = true, want false", x)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(0, 1e-13, 0) {
		t.Fatal("expected default epsilon for eps <= 0")
	}
}

func TestDBConversions(t *testing.T) {
	if got := LinearToDB(10); !NearlyEqual(got, 20, 1e-12) {
		t.Fatalf("LinearToDB(10) = %v, want 20", got)
	}
	if got := LinearPowerToDB(10); !NearlyEqual(got, 10, 1e-12) {
		t.Fatalf("LinearPowerToDB(10) = %v, want 10", got)
	}
	if !math.IsInf(LinearToDB(0), -1) || !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) || !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative input")
	}
}
