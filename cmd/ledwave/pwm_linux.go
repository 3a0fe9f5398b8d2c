//go:build linux

package main

// On linux the pwm sink tries the Raspberry Pi hardware first and falls
// back to console pins when the GPIO memory range is not available, which
// is the common case when developing on a workstation.

import (
	"fmt"

	"github.com/karlmutch/errors"

	"github.com/karlmutch/ledwave"
	"github.com/karlmutch/ledwave/rpi"
	"github.com/karlmutch/ledwave/sim"
)

func newPWMSink(cfg *ledwave.Config) (sink ledwave.Sink, err errors.Error) {
	if errGo := rpi.Open(); errGo != nil {
		logger.Warn(fmt.Sprintf("hardware PWM unavailable, using console pins: %s", errGo.Error()))
		return ledwave.NewPhysicalSink(consolePins, cfg.NumLeds, cfg.Pins)
	}
	opener := func(gpio int) (pin ledwave.PWMPin, errGo error) {
		return rpi.OpenPin(gpio)
	}
	return ledwave.NewPhysicalSink(opener, cfg.NumLeds, cfg.Pins)
}

func consolePins(gpio int) (pin ledwave.PWMPin, err error) {
	return sim.OpenPin(gpio)
}
