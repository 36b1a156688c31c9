// Command loopseam reports loop-boundary seam metrics for a synthesized
// test loop, before and after splicing.
//
// It records a sine whose period does not divide the loop length (a worst
// case loop point), then prints the wrap-point step, the head/tail
// correlation, and the high-frequency seam energy ratio for the raw loop,
// the fixed 2048-sample splice, and a guarded splice at a chosen fade.
//
// Usage:
//
//	loopseam [flags]
//
// Examples:
//
//	loopseam
//	loopseam -length 16384 -periods 200.5
//	loopseam -fade 512 -frame 2048
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-looper/dsp/loop"
	"github.com/cwbudde/algo-looper/dsp/window"
	"github.com/cwbudde/algo-looper/measure/seam"
)

func main() {
	length := flag.Int("length", 8192, "loop length in samples")
	periods := flag.Float64("periods", 100.5, "sine periods per loop (non-integer values produce a seam)")
	amplitude := flag.Float64("amplitude", 0.9, "sine amplitude")
	fade := flag.Int("fade", 1024, "fade length for the guarded splice, in samples")
	frame := flag.Int("frame", 1024, "analysis frame size, power of two")
	flag.Parse()

	if *length < *frame {
		fmt.Fprintf(os.Stderr, "loopseam: length %d shorter than analysis frame %d\n", *length, *frame)
		os.Exit(1)
	}

	cfg := seam.Config{FrameSize: *frame, WindowType: window.TypeHann}

	rows := []struct {
		name   string
		splice func(*loop.Buffer[float64])
	}{
		{"raw", func(*loop.Buffer[float64]) {}},
		{"splice 2048", func(b *loop.Buffer[float64]) { b.Splice() }},
		{fmt.Sprintf("splice range %d", *fade), func(b *loop.Buffer[float64]) {
			b.SpliceRange(*fade, 0, *length-1)
		}},
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "variant\tstep\thead/tail corr\tseam HF ratio")

	for _, row := range rows {
		b, err := record(*length, *periods, *amplitude)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loopseam: %v\n", err)
			os.Exit(1)
		}
		row.splice(b)

		res, err := seam.Analyze(playback(b, *length), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loopseam: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(w, "%s\t%.6f\t%.4f\t%.6f\n",
			row.name, res.Step, res.HeadTailCorrelation, res.SeamHFRatio)
	}

	w.Flush()
}

// record writes one loop of a sine with the given period count into a
// fresh buffer and locks the loop length.
func record(length int, periods, amplitude float64) (*loop.Buffer[float64], error) {
	b, err := loop.New[float64](length)
	if err != nil {
		return nil, err
	}

	step := 2 * math.Pi * periods / float64(length)
	for i := 0; i < length; i++ {
		b.Write(amplitude * math.Sin(step*float64(i)))
	}
	b.SetLength(length)
	return b, nil
}

// playback reads the loop through exactly one traversal, returning the
// cursor to its starting point.
func playback(b *loop.Buffer[float64], length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = b.Read()
	}
	return out
}
