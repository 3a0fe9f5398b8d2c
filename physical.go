package ledwave

// This module implements the physical sink, real LEDs driven through
// hardware PWM channels.  The sink is monochrome, an intensity maps
// straight onto a duty value with no color handling.

import (
	"fmt"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
)

// PWMPin is one hardware PWM channel.
type PWMPin interface {
	// SetFrequency sets the PWM carrier frequency in Hz.
	SetFrequency(hz int) (err error)

	// SetDuty sets the on time as a fraction duty/1023.
	SetDuty(duty int) (err error)

	// Release returns the pin to its unclaimed state.
	Release() (err error)
}

// PinOpener claims a GPIO by number and hands back its PWM channel.
type PinOpener func(gpio int) (pin PWMPin, err error)

// DefaultPins is the pin list used when the caller does not supply one.
var DefaultPins = []int{2, 4, 5, 18, 19, 21}

const (
	pwmFrequency = 1000 // Hz
	dutyMax      = 1023
)

// PhysicalSink drives its channels as PWM duty cycles.
type PhysicalSink struct {
	pins  []PWMPin
	gpios []int
	stats *frameStats
}

// NewPhysicalSink claims min(numLeds, len(gpios)) channels, an empty gpio
// list selects DefaultPins.  Asking for more LEDs than there are pins is
// not an error, the count is simply reconciled down.  Every channel starts
// at duty zero so nothing flickers while the rest come up.
func NewPhysicalSink(open PinOpener, numLeds int, gpios []int) (sink *PhysicalSink, err errors.Error) {
	if len(gpios) == 0 {
		gpios = DefaultPins
	}
	if numLeds < 0 {
		numLeds = 0
	}
	if numLeds < len(gpios) {
		gpios = gpios[:numLeds]
	}

	sink = &PhysicalSink{
		gpios: gpios,
		stats: newFrameStats("ledwave.physical.frames"),
	}

	for _, gpio := range gpios {
		pin, errGo := open(gpio)
		if errGo == nil {
			errGo = pin.SetFrequency(pwmFrequency)
		}
		if errGo == nil {
			errGo = pin.SetDuty(0)
		}
		if errGo != nil {
			sink.Shutdown()
			return nil, errors.Wrap(errGo).With("gpio", gpio).With("stack", stack.Trace().TrimRuntime())
		}
		sink.pins = append(sink.pins, pin)
	}

	logger.Info(fmt.Sprintf("physical LEDs initialized on pins %v", gpios))

	return sink, nil
}

func (s *PhysicalSink) Count() (count int) {
	return len(s.pins)
}

// SetIntensity converts the intensity to a duty value in 0 to 1023 using
// truncation, 0.5 becomes 511, and sets it on the channel.  Unknown
// indices are ignored.
func (s *PhysicalSink) SetIntensity(index int, v float64) (err errors.Error) {
	if index < 0 || index >= len(s.pins) {
		return nil
	}

	duty := int(v * dutyMax)
	if duty < 0 {
		duty = 0
	}
	if duty > dutyMax {
		duty = dutyMax
	}

	if errGo := s.pins[index].SetDuty(duty); errGo != nil {
		return errors.Wrap(errGo).With("gpio", s.gpios[index]).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}

// Tick counts the frame, reporting the rate to the log only, there is no
// panel to overlay on.
func (s *PhysicalSink) Tick() (err errors.Error) {
	if fps, report := s.stats.frame(); report {
		logger.Info(fmt.Sprintf("FPS: %.1f", fps))
	}
	return nil
}

// Shutdown turns every LED off and releases the claimed pins.  All pins
// are visited even when one fails, the first failure is the one reported.
func (s *PhysicalSink) Shutdown() (err errors.Error) {
	for i, pin := range s.pins {
		if errGo := pin.SetDuty(0); errGo != nil && err == nil {
			err = errors.Wrap(errGo).With("gpio", s.gpios[i]).With("stack", stack.Trace().TrimRuntime())
		}
		if errGo := pin.Release(); errGo != nil && err == nil {
			err = errors.Wrap(errGo).With("gpio", s.gpios[i]).With("stack", stack.Trace().TrimRuntime())
		}
	}
	return err
}
