//go:build linux

package rpi

// This module implements the PWM channel contract on Raspberry Pi class
// hardware through the BCM283x PWM peripheral using go-rpio.  Only the
// GPIOs routed to the hardware PWM channels, 12, 13, 18 and 19 on most
// boards, produce a real carrier.

import (
	rpio "github.com/stianeikeland/go-rpio/v4"
)

// The duty scale is 0..1023 so the hardware cycle uses 1024 steps.
const cycleLength = 1024

// Open maps the GPIO memory range.  Call once before OpenPin, usually
// needs root or membership of the gpio group.
func Open() (err error) {
	return rpio.Open()
}

// Close unmaps the GPIO memory range.
func Close() (err error) {
	return rpio.Close()
}

// Pin is one GPIO claimed for PWM.
type Pin struct {
	pin rpio.Pin
}

// OpenPin configures a GPIO for hardware PWM.
func OpenPin(gpio int) (pin *Pin, err error) {
	p := rpio.Pin(gpio)
	p.Mode(rpio.Pwm)
	return &Pin{pin: p}, nil
}

// SetFrequency sets the PWM carrier.  go-rpio takes the PWM clock rate,
// which is the carrier frequency times the cycle length.
func (p *Pin) SetFrequency(hz int) (err error) {
	p.pin.Freq(hz * cycleLength)
	return nil
}

// SetDuty sets the on time out of 1023.
func (p *Pin) SetDuty(duty int) (err error) {
	if duty < 0 {
		duty = 0
	}
	if duty > cycleLength-1 {
		duty = cycleLength - 1
	}
	p.pin.DutyCycle(uint32(duty), cycleLength)
	return nil
}

// Release parks the GPIO as a low output so the LED is left dark.
func (p *Pin) Release() (err error) {
	p.pin.Mode(rpio.Output)
	p.pin.Low()
	return nil
}
