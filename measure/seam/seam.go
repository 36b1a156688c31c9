// Package seam measures the discontinuity at a loop's wrap point.
//
// A recorded loop whose end does not meet its start produces an audible
// click once per traversal. The analyzer quantifies that seam three ways:
// the raw amplitude step across the wrap, the correlation between the
// loop's head and tail, and the high-frequency energy ratio of an analysis
// frame centered on the wrap point. Comparing results before and after a
// splice shows how much of the click the crossfade removes.
package seam

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-looper/dsp/window"
)

const (
	defaultFrameSize = 1024
	minFrameSize     = 16
	powerFloor       = 1e-12
)

// Config holds seam analysis parameters.
type Config struct {
	// FrameSize is the analysis frame length in samples, a power of two.
	// Zero selects 1024.
	FrameSize int
	// WindowType shapes the analysis frame. Zero value is rectangular;
	// Hann is the usual choice.
	WindowType window.Type
}

// Result holds seam measurements.
type Result struct {
	// Step is the absolute amplitude jump from the last loop sample back
	// to the first.
	Step float64
	// HeadTailCorrelation is the Pearson correlation between the first and
	// last half-frame of the loop. It is NaN for constant signals.
	HeadTailCorrelation float64
	// SeamHFRatio is the fraction of spectral energy above a quarter of
	// Nyquist in a frame centered on the wrap point. Clicks concentrate
	// energy there; a clean seam keeps the ratio near the signal's own.
	SeamHFRatio float64
}

// Analyze measures the wrap-point seam of the given loop.
func Analyze(loop []float64, cfg Config) (Result, error) {
	cfg = normalizeConfig(cfg)

	if cfg.FrameSize < minFrameSize || cfg.FrameSize&(cfg.FrameSize-1) != 0 {
		return Result{}, fmt.Errorf("seam frame size must be a power of two >= %d: %d",
			minFrameSize, cfg.FrameSize)
	}
	if len(loop) < cfg.FrameSize {
		return Result{}, fmt.Errorf("seam analysis needs at least %d samples: %d",
			cfg.FrameSize, len(loop))
	}

	n := len(loop)
	half := cfg.FrameSize / 2

	result := Result{
		Step:                math.Abs(loop[0] - loop[n-1]),
		HeadTailCorrelation: stat.Correlation(loop[:half], loop[n-half:], nil),
	}

	// Frame centered on the wrap point: the last half-frame followed by
	// the first.
	frame := make([]float64, cfg.FrameSize)
	start := n - half
	for i := range frame {
		frame[i] = loop[(start+i)%n]
	}
	window.Apply(frame, window.Generate(cfg.WindowType, cfg.FrameSize, window.WithPeriodic()))

	plan, err := algofft.NewPlan64(cfg.FrameSize)
	if err != nil {
		return Result{}, fmt.Errorf("seam analysis: %w", err)
	}

	in := make([]complex128, cfg.FrameSize)
	for i, v := range frame {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, cfg.FrameSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("seam analysis: %w", err)
	}

	bins := cfg.FrameSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	// Quarter of Nyquist: bin FrameSize/8 of FrameSize/2.
	hfStart := cfg.FrameSize / 8
	var total, hf float64
	for k := 1; k < bins; k++ {
		total += power[k]
		if k >= hfStart {
			hf += power[k]
		}
	}
	if total > powerFloor {
		result.SeamHFRatio = hf / total
	}

	return result, nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.FrameSize == 0 {
		cfg.FrameSize = defaultFrameSize
	}
	return cfg
}
