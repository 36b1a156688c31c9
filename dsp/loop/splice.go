package loop

// spliceFadeLength is the fixed ramp size of the no-arg Splice.
const spliceFadeLength = 2048

// Splice crossfades the loop boundary in place: a linear ramp-up over the
// first 2048 samples and a linear ramp-down over the last 2048 samples of
// the current loop length.
//
// The loop must be longer than 4096 samples; Splice performs no bounds
// check and panics on shorter loops. Call it at loop-boundary events, never
// on the per-sample path.
func (b *Buffer[T]) Splice() {
	for i := 0; i < spliceFadeLength; i++ {
		gain := T(float64(i) / float64(spliceFadeLength))
		b.data[i] *= gain
		b.data[b.length-1-i] *= gain
	}
}

// SpliceRange is the guarded splice: it ramps fadeLength samples up from
// startPoint, ramps fadeLength samples down toward endPoint, and zeroes the
// remainder of the loop from endPoint onward, truncating the clip past the
// fade-out.
//
// The call is a silent no-op unless 2*fadeLength < length, startPoint >= 0,
// and endPoint < length.
func (b *Buffer[T]) SpliceRange(fadeLength, startPoint, endPoint int) {
	if 2*fadeLength >= b.length || startPoint < 0 || endPoint >= b.length {
		return
	}
	for i := 0; i < fadeLength; i++ {
		gain := T(float64(i) / float64(fadeLength))
		b.data[startPoint+i] *= gain
		b.data[endPoint-i] *= gain
	}
	for i := endPoint; i < b.length; i++ {
		b.data[i] = 0
	}
}
