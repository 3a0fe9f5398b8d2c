package ledwave

// This module implements the waveform policies that shape the animation.
// Both policies are pure functions of the wave offset and the channel
// position, each channel trails its neighbour by a fixed phase so the
// brightness travels along the row.

import (
	"math"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
)

// Waveform produces a normalized intensity in 0.0 to 1.0 for one channel.
type Waveform interface {
	Intensity(offset float64, index int, count int) (v float64)
}

// Sine spreads one full sine period across the channels.  At offset zero
// the first channel sits at the waves midpoint, 0.5, not its peak, the
// wave is continuous from the very first frame.
type Sine struct{}

func (Sine) Intensity(offset float64, index int, count int) (v float64) {
	if count <= 0 {
		return 0
	}
	phase := float64(index) * 2.0 * math.Pi / float64(count)
	return (1.0 + math.Sin(offset+phase)) / 2.0
}

// Triangle ramps linearly up then back down with a period of two offset
// units.
type Triangle struct{}

func (Triangle) Intensity(offset float64, index int, count int) (v float64) {
	if count <= 0 {
		return 0
	}
	position := math.Mod(offset+float64(index)/float64(count), 2.0)
	if position < 0 {
		position += 2.0
	}
	if position <= 1.0 {
		return position
	}
	return 2.0 - position
}

// NewWaveform creates the waveform policy for the named mode.
func NewWaveform(mode string) (w Waveform, err errors.Error) {
	switch mode {
	case "sine":
		return Sine{}, nil
	case "triangle":
		return Triangle{}, nil
	}
	return nil, errors.New("unknown waveform").With("mode", mode).With("stack", stack.Trace().TrimRuntime())
}

// MapRange rescales a normalized intensity into the lo to hi output range.
func MapRange(v, lo, hi float64) (mapped float64) {
	return lo + v*(hi-lo)
}
