package loop

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-looper/internal/testutil"
)

func TestSpliceRampsBothEnds(t *testing.T) {
	b, err := New[float64](8192)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 6000; i++ {
		b.Write(1)
	}
	b.SetLength(6000)

	pre := make([]float64, 6000)
	copy(pre, b.data[:6000])

	b.Splice()

	for i := 0; i < 2048; i++ {
		gain := float64(i) / 2048
		if got, want := b.data[i], pre[i]*gain; got != want {
			t.Fatalf("ramp-up[%d]: got %v want %v", i, got, want)
		}
		if got, want := b.data[5999-i], pre[5999-i]*gain; got != want {
			t.Fatalf("ramp-down[%d]: got %v want %v", i, got, want)
		}
	}

	// Samples outside both ramps are untouched.
	for i := 2048; i < 6000-2048; i++ {
		if b.data[i] != pre[i] {
			t.Fatalf("middle[%d]: got %v want %v", i, b.data[i], pre[i])
		}
	}
}

func TestSpliceRange(t *testing.T) {
	b, err := New[float64](128)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		b.Write(1)
	}
	b.SetLength(100)

	b.SpliceRange(10, 0, 89)

	for i := 0; i < 100; i++ {
		var want float64
		switch {
		case i < 10:
			want = float64(i) / 10
		case i < 80:
			want = 1
		case i < 89:
			want = float64(89-i) / 10
		default:
			// Truncated past the fade-out point.
			want = 0
		}
		if math.Abs(b.data[i]-want) > 1e-15 {
			t.Fatalf("sample %d: got %v want %v", i, b.data[i], want)
		}
	}
}

func TestSpliceRangeNoOpLaw(t *testing.T) {
	noise := testutil.Noise(3, 1, 100)

	cases := []struct {
		name             string
		fade, start, end int
	}{
		{"fade too long", 50, 0, 99},
		{"negative start", 10, -1, 89},
		{"end past loop", 10, 0, 100},
	}

	for _, tc := range cases {
		b, err := New[float64](128)
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range noise {
			b.Write(s)
		}
		b.SetLength(100)

		pre := make([]float64, 100)
		copy(pre, b.data[:100])

		b.SpliceRange(tc.fade, tc.start, tc.end)

		for i := range pre {
			if b.data[i] != pre[i] {
				t.Fatalf("%s: sample %d mutated: got %v want %v", tc.name, i, b.data[i], pre[i])
			}
		}
	}
}

func TestSpliceRangeZeroesTail(t *testing.T) {
	b, err := New[float64](64)
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range testutil.Noise(5, 1, 60) {
		b.Write(s)
	}
	b.SetLength(60)

	b.SpliceRange(5, 0, 40)

	for i := 40; i < 60; i++ {
		if b.data[i] != 0 {
			t.Fatalf("tail sample %d: got %v want 0", i, b.data[i])
		}
	}
}
