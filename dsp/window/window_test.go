package window

import (
	"math"
	"testing"
)

func TestGenerateRectangular(t *testing.T) {
	coeffs := Generate(TypeRectangular, 8)
	for i, c := range coeffs {
		if c != 1 {
			t.Fatalf("coeff %d: got %v want 1", i, c)
		}
	}
}

func TestGenerateHannSymmetric(t *testing.T) {
	coeffs := Generate(TypeHann, 9)

	if coeffs[0] != 0 || coeffs[8] != 0 {
		t.Fatalf("edges: got %v, %v want 0, 0", coeffs[0], coeffs[8])
	}

	if math.Abs(coeffs[4]-1) > 1e-12 {
		t.Fatalf("center: got %v want 1", coeffs[4])
	}

	for i := 0; i < 4; i++ {
		if math.Abs(coeffs[i]-coeffs[8-i]) > 1e-12 {
			t.Fatalf("asymmetric at %d: %v vs %v", i, coeffs[i], coeffs[8-i])
		}
	}
}

func TestGenerateHannPeriodic(t *testing.T) {
	coeffs := Generate(TypeHann, 8, WithPeriodic())

	if coeffs[0] != 0 {
		t.Fatalf("first coeff: got %v want 0", coeffs[0])
	}
	// Periodic windows do not return to zero at the last sample.
	if coeffs[7] == 0 {
		t.Fatal("last coeff of periodic window should be nonzero")
	}
}

func TestGenerateBlackmanEdges(t *testing.T) {
	coeffs := Generate(TypeBlackman, 17)

	if math.Abs(coeffs[0]) > 1e-12 || math.Abs(coeffs[16]) > 1e-12 {
		t.Fatalf("edges: got %v, %v want ~0", coeffs[0], coeffs[16])
	}

	if math.Abs(coeffs[8]-1) > 1e-12 {
		t.Fatalf("center: got %v want 1", coeffs[8])
	}
}

func TestGenerateDegenerateSizes(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("size 0: got %v want nil", got)
	}

	coeffs := Generate(TypeHann, 1)
	if len(coeffs) != 1 || coeffs[0] != 1 {
		t.Fatalf("size 1: got %v want [1]", coeffs)
	}
}

func TestApply(t *testing.T) {
	samples := []float64{2, 2, 2, 2}
	Apply(samples, []float64{0, 0.5, 1, 0.25})

	want := []float64{0, 1, 2, 0.5}
	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("sample %d: got %v want %v", i, samples[i], want[i])
		}
	}
}
