package ledwave

// This module defines the contract shared by every LED output backend.
// Animation code is written once against this interface and runs unchanged
// whether the channels are circles on a pixel display, hardware PWM pins,
// or pixels on an OPC server.

import (
	"github.com/karlmutch/errors"
	logxi "github.com/mgutz/logxi/v1"
)

var logger = logxi.New("ledwave")

// Sink consumes per channel intensities produced by the animation loop.
// A sink owns its channel geometry, or pin list, for its entire life and
// the channel count never changes after construction.
type Sink interface {
	// SetIntensity updates one channel with a normalized intensity in the
	// range 0.0 to 1.0.  Out of range indices are ignored.
	SetIntensity(index int, v float64) (err errors.Error)

	// Count reports the number of usable channels.  This can be lower than
	// the number requested when channels did not fit the display or there
	// were not enough pins.
	Count() (count int)

	// Tick marks the end of a frame and performs the sinks frame rate
	// accounting.
	Tick() (err errors.Error)

	// Shutdown turns every channel dark and releases whatever the sink
	// claimed during construction.
	Shutdown() (err errors.Error)
}
