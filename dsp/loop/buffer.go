package loop

import (
	"fmt"
	"math/rand"
)

const defaultSeed = 1

// Float constrains the sample types a Buffer can store.
type Float interface {
	~float32 | ~float64
}

// Buffer is a fixed-capacity circular sample store with a logical loop
// length that grows as samples are written, up to capacity.
//
// The write cursor, the loop length, and each read window advance under
// independent moduli; see the Read variants for the exact indexing rules.
type Buffer[T Float] struct {
	data     []T
	writePos int
	readPos  int
	length   int
	frac     float64

	// Per-traversal window state cached by the randomized read policies.
	// Held per instance so independent buffers never share it.
	clipOffset int
	clipWindow int

	rng *rand.Rand
}

// New returns a zeroed Buffer with the given fixed capacity in samples.
// The capacity is never resized after construction.
func New[T Float](capacity int) (*Buffer[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("loop buffer capacity must be >= 1: %d", capacity)
	}
	b := &Buffer[T]{
		data: make([]T, capacity),
		rng:  rand.New(rand.NewSource(defaultSeed)),
	}
	b.Reset()
	return b, nil
}

// Init clears every stored sample and resets all cursor and length state.
func (b *Buffer[T]) Init() {
	for i := range b.data {
		b.data[i] = 0
	}
	b.Reset()
}

// Reset rewinds both cursors, sets the loop length to one sample, and clears
// the fractional phase. Stored samples are kept until overwritten, so a
// caller can restart loop bookkeeping while retaining the old audio.
func (b *Buffer[T]) Reset() {
	b.writePos = 0
	b.readPos = 0
	b.length = 1
	b.frac = 0
	b.clipOffset = 0
	b.clipWindow = 0
}

// SetRandomSeed seeds the generator used by the randomized read policies,
// making their start/length re-rolls reproducible.
func (b *Buffer[T]) SetRandomSeed(seed int64) {
	b.rng.Seed(seed)
}

// Capacity returns the fixed storage size in samples.
func (b *Buffer[T]) Capacity() int {
	return len(b.data)
}

// Write stores sample at the write cursor and advances it circularly.
// The loop length grows to cover everything written so far: once the cursor
// wraps past index 0, further writes overwrite old samples but the length
// stays locked at its longest recorded extent.
func (b *Buffer[T]) Write(sample T) {
	b.data[b.writePos] = sample
	b.writePos = (b.writePos + 1) % len(b.data)
	if b.writePos >= b.length {
		b.length = b.writePos + 1
	}
}

// SetLength sets the loop length in whole samples, capped at capacity,
// and clears the fractional phase.
func (b *Buffer[T]) SetLength(length int) {
	b.frac = 0
	if length >= len(b.data) {
		length = len(b.data)
	}
	if length < 1 {
		length = 1
	}
	b.length = length
}

// SetLengthFractional sets the loop length from a fractional sample count.
// The integer part becomes the length, capped at capacity-1 (a tighter cap
// than [Buffer.SetLength]); the remainder is kept as the fractional phase
// for interpolating reads.
func (b *Buffer[T]) SetLengthFractional(length float64) {
	intLength := int(length)
	b.frac = length - float64(intLength)
	if intLength >= len(b.data) {
		intLength = len(b.data) - 1
	}
	if intLength < 1 {
		intLength = 1
	}
	b.length = intLength
}

// Length returns the effective loop length in samples, including the
// fractional phase.
func (b *Buffer[T]) Length() float64 {
	return float64(b.length) + b.frac
}

// SetReadPosition moves the read cursor.
//
// The bound check is kept exactly as the looper firmware shipped it: the
// position is accepted only when it is >= the loop length, and is otherwise
// forced to length-1. Callers depend on both branches.
func (b *Buffer[T]) SetReadPosition(position int) {
	if position >= b.length {
		b.readPos = position
	} else {
		b.readPos = b.length - 1
	}
	if b.readPos < 0 {
		b.readPos = 0
	}
}

// ReadPosition returns the read cursor.
func (b *Buffer[T]) ReadPosition() int {
	return b.readPos
}

// WritePosition returns the write cursor.
func (b *Buffer[T]) WritePosition() int {
	return b.writePos
}
