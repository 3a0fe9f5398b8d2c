package sim

// Console stand in for hardware PWM pins, useful when developing the
// physical sink away from a Raspberry Pi.  Duty changes surface as debug
// log lines rather than photons.

import (
	"fmt"

	logxi "github.com/mgutz/logxi/v1"
)

var logger = logxi.New("ledwave.sim")

// ConsolePin mimics one PWM channel.
type ConsolePin struct {
	gpio int
	freq int
	duty int
}

// OpenPin satisfies ledwave.PinOpener once wrapped, every gpio succeeds.
func OpenPin(gpio int) (pin *ConsolePin, err error) {
	return &ConsolePin{gpio: gpio}, nil
}

func (p *ConsolePin) SetFrequency(hz int) (err error) {
	p.freq = hz
	return nil
}

func (p *ConsolePin) SetDuty(duty int) (err error) {
	p.duty = duty
	logger.Debug(fmt.Sprintf("gpio %d duty %d", p.gpio, duty))
	return nil
}

func (p *ConsolePin) Release() (err error) {
	p.duty = 0
	return nil
}
