package ledwave

// Frame rate accounting shared by the sinks.  The rate is sampled over a
// fixed window of frames and the wall clock reference resets after each
// report, so a slow first window does not drag down later readings.

import (
	"time"

	metrics "github.com/launchdarkly/go-metrics"
)

const fpsInterval = 50

type frameStats struct {
	frames int
	start  time.Time
	meter  metrics.Meter
}

func newFrameStats(name string) (stats *frameStats) {
	return &frameStats{
		start: time.Now(),
		meter: metrics.GetOrRegisterMeter(name, metrics.DefaultRegistry),
	}
}

// frame records one finished frame.  Every fpsInterval frames it reports
// the rate over the window just ended and starts a fresh window.
func (s *frameStats) frame() (fps float64, report bool) {
	s.meter.Mark(1)
	s.frames++
	if s.frames%fpsInterval != 0 {
		return 0, false
	}
	if elapsed := time.Since(s.start).Seconds(); elapsed > 0 {
		fps = float64(fpsInterval) / elapsed
	}
	s.start = time.Now()
	return fps, true
}
