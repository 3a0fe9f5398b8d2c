package ledwave

// This module implements a sink for fadecandy class controllers spoken to
// over the Open Pixel Control protocol.  Channel levels are buffered and
// flushed as a single OPC message per frame.  A hash of the outgoing frame
// is kept so frames identical to the previous one are not resent.

import (
	"bytes"
	"fmt"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"

	"github.com/cnf/structhash"
	"github.com/kellydunn/go-opc"
)

type opcSender interface {
	Send(m *opc.Message) (err error)
}

type opcFrame struct {
	Levels []uint8
}

// OPCSink drives its channels as pixels on OPC channel zero.
type OPCSink struct {
	sender opcSender
	base   Color565
	frame  opcFrame
	last   []byte
	stats  *frameStats
}

// NewOPCSink connects to an OPC server, an fcserver instance for fadecandy
// hardware, and prepares numLeds channels.
func NewOPCSink(server string, numLeds int, base Color565) (sink *OPCSink, err errors.Error) {
	oc := opc.NewClient()
	if errGo := oc.Connect("tcp", server); errGo != nil {
		return nil, errors.Wrap(errGo).With("url", server).With("stack", stack.Trace().TrimRuntime())
	}
	return newOPCSink(oc, numLeds, base), nil
}

func newOPCSink(sender opcSender, numLeds int, base Color565) (sink *OPCSink) {
	if numLeds < 0 {
		numLeds = 0
	}
	return &OPCSink{
		sender: sender,
		base:   base,
		frame:  opcFrame{Levels: make([]uint8, numLeds)},
		stats:  newFrameStats("ledwave.opc.frames"),
	}
}

func (s *OPCSink) Count() (count int) {
	return len(s.frame.Levels)
}

// SetIntensity stores the level for one channel, the wire write happens in
// Tick so the whole frame goes out together.  Unknown indices are ignored.
func (s *OPCSink) SetIntensity(index int, v float64) (err errors.Error) {
	if index < 0 || index >= len(s.frame.Levels) {
		return nil
	}
	if v < 0.0 {
		v = 0.0
	}
	if v > 1.0 {
		v = 1.0
	}
	s.frame.Levels[index] = uint8(v * 255.0)
	return nil
}

// Tick flushes the buffered frame and counts it, reporting the rate to the
// log only.
func (s *OPCSink) Tick() (err errors.Error) {
	if err = s.flush(false); err != nil {
		return err
	}
	if fps, report := s.stats.frame(); report {
		logger.Info(fmt.Sprintf("FPS: %.1f", fps))
	}
	return nil
}

// flush sends the current frame unless it hashes the same as the last one
// sent.  Levels scale the base color per pixel.
func (s *OPCSink) flush(force bool) (err errors.Error) {
	hash := structhash.Md5(s.frame, 1)
	if !force && bytes.Equal(hash, s.last) {
		return nil
	}

	m := opc.NewMessage(0)
	m.SetLength(uint16(len(s.frame.Levels) * 3))

	r, g, b := s.base.RGB()
	for i, level := range s.frame.Levels {
		m.SetPixelColor(i,
			uint8(int(r)*int(level)/255),
			uint8(int(g)*int(level)/255),
			uint8(int(b)*int(level)/255))
	}

	if errGo := s.sender.Send(m); errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	s.last = hash
	return nil
}

// Shutdown pushes one all black frame so the strip goes dark.
func (s *OPCSink) Shutdown() (err errors.Error) {
	for i := range s.frame.Levels {
		s.frame.Levels[i] = 0
	}
	return s.flush(true)
}
