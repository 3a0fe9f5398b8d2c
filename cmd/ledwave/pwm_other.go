//go:build !linux

package main

// Off linux there is no GPIO to reach, the pwm sink always runs against
// console pins.

import (
	"github.com/karlmutch/errors"

	"github.com/karlmutch/ledwave"
	"github.com/karlmutch/ledwave/sim"
)

func newPWMSink(cfg *ledwave.Config) (sink ledwave.Sink, err errors.Error) {
	return ledwave.NewPhysicalSink(consolePins, cfg.NumLeds, cfg.Pins)
}

func consolePins(gpio int) (pin ledwave.PWMPin, err error) {
	return sim.OpenPin(gpio)
}
