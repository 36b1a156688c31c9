// Package looper provides a record/play processor built on a
// [loop.Buffer]. It owns the transport state machine and the knob-style
// parameter surface, leaving the audio callback to feed it one sample at a
// time.
package looper

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-looper/dsp/loop"
)

const (
	defaultMinClip    = 16
	defaultSpliceFade = 2048
	defaultMix        = 1.0
	defaultSpeed      = 1.0

	minSpeed = -2.0
	maxSpeed = 2.0
)

// Mode is the transport state of a [Processor].
type Mode int

const (
	// ModeIdle passes input through untouched.
	ModeIdle Mode = iota
	// ModeRecord streams input into the loop buffer.
	ModeRecord
	// ModePlay plays the recorded loop through the active read policy.
	ModePlay
	// ModeOnce plays the recorded loop through exactly once.
	ModeOnce
)

// Policy selects the read policy used while playing.
type Policy int

const (
	// PolicyLoop plays the full loop at unit speed.
	PolicyLoop Policy = iota
	// PolicyClipped confines playback to the head of the loop.
	PolicyClipped
	// PolicyWindowed plays a movable sub-window of the loop.
	PolicyWindowed
	// PolicyRandomized re-rolls the window start/length once per traversal.
	PolicyRandomized
	// PolicyVariSpeed adds fractional playback speed to PolicyRandomized.
	PolicyVariSpeed
	// PolicySpeed plays the full loop at fractional speed.
	PolicySpeed
)

// Option mutates processor construction parameters.
type Option func(*config) error

type config struct {
	policy     Policy
	minClip    int
	spliceFade int
	seed       int64
	hasSeed    bool
}

func defaultLooperConfig() config {
	return config{
		policy:     PolicyLoop,
		minClip:    defaultMinClip,
		spliceFade: defaultSpliceFade,
	}
}

// WithPolicy sets the initial read policy.
func WithPolicy(policy Policy) Option {
	return func(cfg *config) error {
		if policy < PolicyLoop || policy > PolicySpeed {
			return fmt.Errorf("looper policy out of range: %d", policy)
		}
		cfg.policy = policy
		return nil
	}
}

// WithMinClip sets the shortest allowed clip window in samples.
func WithMinClip(minClip int) Option {
	return func(cfg *config) error {
		if minClip < 1 {
			return fmt.Errorf("looper min clip must be >= 1: %d", minClip)
		}
		cfg.minClip = minClip
		return nil
	}
}

// WithSpliceFade sets the crossfade length in samples applied when a
// recording ends. Zero disables the splice.
func WithSpliceFade(fade int) Option {
	return func(cfg *config) error {
		if fade < 0 {
			return fmt.Errorf("looper splice fade must be >= 0: %d", fade)
		}
		cfg.spliceFade = fade
		return nil
	}
}

// WithSeed seeds the randomized read policies for reproducible playback.
func WithSeed(seed int64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		cfg.hasSeed = true
		return nil
	}
}

// Processor is a mono looper: it records a live stream into a fixed
// capacity loop buffer and plays the loop back under a selectable read
// policy with a dry/wet mix.
//
// The processor is real-time safe (no allocation after construction) and
// not thread-safe.
type Processor[T loop.Float] struct {
	sampleRate float64
	buf        *loop.Buffer[T]

	mode   Mode
	policy Policy

	clipStart    float64
	clipEnd      float64
	speed        float64
	minClip      int
	randomLength bool
	randomStart  bool
	mix          float64

	spliceFade int
	spliced    bool
}

// NewProcessor creates a looper with the given maximum loop duration.
func NewProcessor[T loop.Float](sampleRate, capacitySeconds float64, opts ...Option) (*Processor[T], error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("looper sample rate must be > 0: %f", sampleRate)
	}
	if capacitySeconds <= 0 || math.IsNaN(capacitySeconds) || math.IsInf(capacitySeconds, 0) {
		return nil, fmt.Errorf("looper capacity must be > 0 seconds: %f", capacitySeconds)
	}

	cfg := defaultLooperConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	capacity := int(math.Ceil(sampleRate * capacitySeconds))
	buf, err := loop.New[T](capacity)
	if err != nil {
		return nil, err
	}
	if cfg.hasSeed {
		buf.SetRandomSeed(cfg.seed)
	}

	return &Processor[T]{
		sampleRate: sampleRate,
		buf:        buf,
		policy:     cfg.policy,
		clipEnd:    1,
		speed:      defaultSpeed,
		minClip:    cfg.minClip,
		mix:        defaultMix,
		spliceFade: cfg.spliceFade,
	}, nil
}

// SampleRate returns sample rate in Hz.
func (p *Processor[T]) SampleRate() float64 { return p.sampleRate }

// Mode returns the transport state.
func (p *Processor[T]) Mode() Mode { return p.mode }

// Policy returns the active read policy.
func (p *Processor[T]) Policy() Policy { return p.policy }

// ClipStart returns the window start knob in [0, 1].
func (p *Processor[T]) ClipStart() float64 { return p.clipStart }

// ClipEnd returns the window length knob in [0, 1].
func (p *Processor[T]) ClipEnd() float64 { return p.clipEnd }

// Speed returns playback speed in [-2, 2].
func (p *Processor[T]) Speed() float64 { return p.speed }

// Mix returns wet amount in [0, 1].
func (p *Processor[T]) Mix() float64 { return p.mix }

// LoopLength returns the recorded loop length in samples, including the
// fractional part.
func (p *Processor[T]) LoopLength() float64 { return p.buf.Length() }

// Buffer exposes the underlying loop buffer for boundary operations such
// as manual splicing or cursor inspection.
func (p *Processor[T]) Buffer() *loop.Buffer[T] { return p.buf }

// SetPolicy selects the read policy used while playing.
func (p *Processor[T]) SetPolicy(policy Policy) error {
	if policy < PolicyLoop || policy > PolicySpeed {
		return fmt.Errorf("looper policy out of range: %d", policy)
	}
	p.policy = policy
	return nil
}

// SetClipStart sets the window start knob in [0, 1].
func (p *Processor[T]) SetClipStart(clipStart float64) error {
	if clipStart < 0 || clipStart > 1 || math.IsNaN(clipStart) || math.IsInf(clipStart, 0) {
		return fmt.Errorf("looper clip start must be in [0, 1]: %f", clipStart)
	}
	p.clipStart = clipStart
	return nil
}

// SetClipEnd sets the window length knob in [0, 1].
func (p *Processor[T]) SetClipEnd(clipEnd float64) error {
	if clipEnd < 0 || clipEnd > 1 || math.IsNaN(clipEnd) || math.IsInf(clipEnd, 0) {
		return fmt.Errorf("looper clip end must be in [0, 1]: %f", clipEnd)
	}
	p.clipEnd = clipEnd
	return nil
}

// SetSpeed sets playback speed in [-2, 2]; negative plays backwards.
func (p *Processor[T]) SetSpeed(speed float64) error {
	if speed < minSpeed || speed > maxSpeed || math.IsNaN(speed) {
		return fmt.Errorf("looper speed must be in [%v, %v]: %f", minSpeed, maxSpeed, speed)
	}
	p.speed = speed
	return nil
}

// SetMix sets wet amount in [0, 1].
func (p *Processor[T]) SetMix(mix float64) error {
	if mix < 0 || mix > 1 || math.IsNaN(mix) || math.IsInf(mix, 0) {
		return fmt.Errorf("looper mix must be in [0, 1]: %f", mix)
	}
	p.mix = mix
	return nil
}

// SetRandomLength toggles per-traversal window length randomization.
func (p *Processor[T]) SetRandomLength(on bool) { p.randomLength = on }

// SetRandomStart toggles per-traversal window start randomization.
func (p *Processor[T]) SetRandomStart(on bool) { p.randomStart = on }

// SetRandomSeed reseeds the randomized read policies.
func (p *Processor[T]) SetRandomSeed(seed int64) { p.buf.SetRandomSeed(seed) }

// SetMode switches the transport.
//
// Entering ModeRecord restarts loop bookkeeping while keeping old audio in
// storage until it is overwritten. Leaving ModeRecord applies the guarded
// boundary crossfade exactly once per recording.
func (p *Processor[T]) SetMode(mode Mode) error {
	if mode < ModeIdle || mode > ModeOnce {
		return fmt.Errorf("looper mode out of range: %d", mode)
	}
	if mode == p.mode {
		return nil
	}

	if mode == ModeRecord {
		p.buf.Reset()
		p.spliced = false
	}

	if p.mode == ModeRecord && !p.spliced && p.spliceFade > 0 {
		length := int(p.buf.Length())
		p.buf.SpliceRange(p.spliceFade, 0, length-1)
		p.spliced = true
	}

	p.mode = mode
	return nil
}

// Reset returns the processor to idle and rewinds the loop buffer without
// clearing stored audio.
func (p *Processor[T]) Reset() {
	p.buf.Reset()
	p.mode = ModeIdle
	p.spliced = false
}

// ProcessSample advances the looper by one audio tick: it records input
// while in ModeRecord and otherwise mixes the active read policy's output
// with the dry input.
func (p *Processor[T]) ProcessSample(input T) T {
	switch p.mode {
	case ModeRecord:
		p.buf.Write(input)
		return input
	case ModeIdle:
		return input
	}

	var wet T
	if p.mode == ModeOnce {
		wet = p.buf.ReadOnce()
	} else {
		switch p.policy {
		case PolicyLoop:
			wet = p.buf.Read()
		case PolicyClipped:
			wet = p.buf.ReadClipped(p.clipEnd, p.minClip)
		case PolicyWindowed:
			wet = p.buf.ReadWindowed(p.clipStart, p.clipEnd, p.minClip)
		case PolicyRandomized:
			wet = p.buf.ReadRandomized(p.clipStart, p.clipEnd, p.minClip, p.randomLength, p.randomStart)
		case PolicyVariSpeed:
			wet = p.buf.ReadVariSpeed(p.clipStart, p.clipEnd, p.speed, p.minClip, p.randomLength, p.randomStart)
		case PolicySpeed:
			wet = p.buf.ReadSpeed(p.speed)
		}
	}

	return input*T(1-p.mix) + wet*T(p.mix)
}

// ProcessInPlace runs ProcessSample over buf in place.
func (p *Processor[T]) ProcessInPlace(buf []T) {
	for i := range buf {
		buf[i] = p.ProcessSample(buf[i])
	}
}
