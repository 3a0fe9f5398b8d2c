package ledwave

// This module implements the animation loop.  Each frame the waveform is
// sampled once per channel, the results pushed through the sink, and the
// wave offset advances by a fixed step.  The loop is deliberately unpaced,
// the sinks own I/O latency governs the frame rate.  A cap is available
// for backends that would otherwise spin.

import (
	"time"

	"github.com/karlmutch/errors"
)

// Options carries the animation parameters.  Start from DefaultOptions,
// the zero value produces a dead wave.
type Options struct {
	// WaveSpeed is the offset increment applied after every frame.
	WaveSpeed float64

	// MinPWM and MaxPWM bound the intensity sent to the sink, the
	// normalized wave value is mapped linearly between them.
	MinPWM float64
	MaxPWM float64

	// FrameCap, when non zero, is a pause inserted after every frame.
	// Zero runs the loop flat out.
	FrameCap time.Duration
}

// DefaultOptions is the stock slow wave with a 10 percent floor so the
// trailing LEDs never go fully dark.
func DefaultOptions() (opts Options) {
	return Options{
		WaveSpeed: 0.1,
		MinPWM:    0.1,
		MaxPWM:    1.0,
	}
}

// Runner owns one sink for its whole life and drives it until stopped.
type Runner struct {
	sink   Sink
	wave   Waveform
	opts   Options
	offset float64
}

func NewRunner(sink Sink, wave Waveform, opts Options) (run *Runner) {
	return &Runner{
		sink: sink,
		wave: wave,
		opts: opts,
	}
}

// Run drives frames until quitC closes or a sink call fails.  The sink is
// shut down exactly once on every exit path, a cancellation is a normal
// return and a sink error comes back to the caller after the shutdown.
func (run *Runner) Run(quitC <-chan struct{}) (err errors.Error) {

	defer func() {
		if errGo := run.sink.Shutdown(); errGo != nil && err == nil {
			err = errGo
		}
	}()

	for {
		select {
		case <-quitC:
			return nil
		default:
		}

		if err = run.frame(); err != nil {
			return err
		}

		if run.opts.FrameCap == 0 {
			continue
		}
		select {
		case <-quitC:
			return nil
		case <-time.After(run.opts.FrameCap):
		}
	}
}

// frame pushes one complete set of channel intensities and advances the
// wave.
func (run *Runner) frame() (err errors.Error) {
	count := run.sink.Count()
	for i := 0; i < count; i++ {
		v := run.wave.Intensity(run.offset, i, count)
		if err = run.sink.SetIntensity(i, MapRange(v, run.opts.MinPWM, run.opts.MaxPWM)); err != nil {
			return err
		}
	}
	run.offset += run.opts.WaveSpeed
	return run.sink.Tick()
}
