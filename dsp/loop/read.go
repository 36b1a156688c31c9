package loop

import "math"

// Read returns the sample under the read cursor and advances the cursor
// modulo the loop length. Playback wraps forever.
func (b *Buffer[T]) Read() T {
	a := b.data[b.readPos%b.length]
	b.readPos = (b.readPos + 1) % b.length
	return a
}

// ReadOnce plays the loop through exactly once: it returns the recorded
// samples in order and, after the last one, returns silence on every
// further call without moving the cursor again.
func (b *Buffer[T]) ReadOnce() T {
	var a T
	if b.readPos < b.length {
		a = b.data[b.readPos%b.length]
		b.readPos++
	}
	return a
}

// ReadClipped plays a sub-loop confined to the first clipEnd*length samples
// of the loop. minClip floors the window so the advance modulus stays
// strictly positive.
func (b *Buffer[T]) ReadClipped(clipEnd float64, minClip int) T {
	newEnd := int(clipEnd * float64(b.length))
	if newEnd < minClip {
		newEnd = minClip
	}
	a := b.data[b.readPos%newEnd]
	b.readPos = (b.readPos + 1) % newEnd
	return a
}

// ReadWindowed plays a sub-loop of clipEnd*length samples starting at
// clipStart*length. The fetch index wraps over the full loop length while
// the cursor advances modulo the clip window; the two moduli differ, so
// fetch position and cursor drift apart over repeated traversals.
func (b *Buffer[T]) ReadWindowed(clipStart, clipEnd float64, minClip int) T {
	newEnd := int(clipEnd * float64(b.length))
	if newEnd < minClip {
		newEnd = minClip
	}
	offset := int(clipStart * float64(b.length))

	a := b.data[(b.readPos+offset)%b.length]
	b.readPos = (b.readPos + 1) % newEnd
	return a
}

// ReadRandomized is [Buffer.ReadWindowed] with optional randomization.
//
// With randomStart set, the window offset is re-rolled as
// clipStart*random(0, length) only at the instant the cursor is back at 0,
// once per traversal of the window; clipStart then scales how far the start
// may stray from the loop start. randomLength applies the same per-traversal
// rule to the window length. With a flag clear, the corresponding value is
// recomputed from the knob position on every call.
//
// The window is bounded to [minClip, length].
func (b *Buffer[T]) ReadRandomized(clipStart, clipEnd float64, minClip int, randomLength, randomStart bool) T {
	if !randomStart {
		b.clipOffset = int(clipStart * float64(b.length))
	} else if b.readPos == 0 {
		b.clipOffset = int(clipStart * float64(b.rng.Intn(b.length)))
	}

	if !randomLength {
		b.clipWindow = int(clipEnd * float64(b.length))
	} else if b.readPos == 0 {
		b.clipWindow = int(clipEnd * float64(b.rng.Intn(b.length)))
	}

	newEnd := b.clipWindow
	if newEnd < minClip {
		newEnd = minClip
	}
	if newEnd >= b.length {
		newEnd = b.length
	}

	a := b.data[(b.readPos+b.clipOffset)%b.length]
	b.readPos = (b.readPos + 1) % newEnd
	return a
}

// ReadVariSpeed is [Buffer.ReadRandomized] with fractional playback speed
// and linear interpolation between neighboring samples. speed is in loop
// samples per output sample; negative values play backwards.
//
// A loop of one sample or less returns silence so no degenerate modulus is
// ever formed. On a random start re-roll the offset is floored at 10
// samples; the firmware added that floor to suppress clicks near the loop
// start and playback depends on it.
func (b *Buffer[T]) ReadVariSpeed(clipStart, clipEnd, speed float64, minClip int, randomLength, randomStart bool) T {
	if b.length <= 1 {
		return 0
	}

	if !randomStart {
		b.clipOffset = int(clipStart * float64(b.length))
	} else if b.readPos == 0 {
		b.clipOffset = int(clipStart * float64(b.rng.Intn(b.length)))
		if b.clipOffset < 10 {
			b.clipOffset = 10
		}
	}

	if !randomLength {
		b.clipWindow = int(clipEnd * float64(b.length))
	} else if b.readPos == 0 {
		b.clipWindow = int(clipEnd * float64(b.rng.Intn(b.length)))
	}

	newEnd := b.clipWindow
	if newEnd < minClip {
		newEnd = minClip
	}
	if newEnd >= b.length {
		newEnd = b.length
	}

	rpo := b.readPos + b.clipOffset
	a := b.data[rpo%b.length]
	var neighbor T
	switch {
	case speed >= 0:
		neighbor = b.data[(rpo+1)%b.length]
	case rpo-1 > 0:
		neighbor = b.data[(rpo-1)%b.length]
	default:
		// No sample behind the fetch position; use the last sample of the
		// loop as a safe neighbor.
		neighbor = b.data[b.length-1]
	}

	intPart, fracPart := math.Modf(speed + b.frac)
	b.frac = fracPart
	b.readPos = (b.readPos + int(intPart)) % newEnd
	if b.readPos < 0 {
		b.readPos = newEnd - 1
	}

	return a + (neighbor-a)*T(b.frac)
}

// ReadSpeed plays the full loop at a fractional speed with linear
// interpolation. The cursor advances by floor(speed+frac) before the fetch,
// wrapping negative results to length-1.
func (b *Buffer[T]) ReadSpeed(speed float64) T {
	sum := speed + b.frac
	b.readPos = (b.readPos + int(math.Floor(sum))) % b.length
	if b.readPos < 0 {
		b.readPos = b.length - 1
	}
	b.frac = sum - math.Trunc(sum)

	a := b.data[b.readPos%b.length]
	next := b.data[(b.readPos+1)%b.length]
	return a + (next-a)*T(b.frac)
}
