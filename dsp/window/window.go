// Package window generates analysis window coefficients for the seam
// measurement pipeline.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeBlackman
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic generates a periodic (DFT-even) window instead of a
// symmetric one.
func WithPeriodic() Option {
	return func(cfg *config) {
		cfg.periodic = true
	}
}

// Generate returns size coefficients for the given window type.
// Unknown types fall back to rectangular. A non-positive size returns nil.
func Generate(t Type, size int, opts ...Option) []float64 {
	if size <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	coeffs := make([]float64, size)
	if size == 1 {
		coeffs[0] = 1
		return coeffs
	}

	denom := float64(size - 1)
	if cfg.periodic {
		denom = float64(size)
	}

	for i := range coeffs {
		phase := 2 * math.Pi * float64(i) / denom
		switch t {
		case TypeHann:
			coeffs[i] = 0.5 * (1 - math.Cos(phase))
		case TypeBlackman:
			coeffs[i] = 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
		default:
			coeffs[i] = 1
		}
	}
	return coeffs
}

// Apply multiplies samples by coeffs in place. The slices must have the
// same length.
func Apply(samples, coeffs []float64) {
	vecmath.MulBlockInPlace(samples, coeffs)
}
