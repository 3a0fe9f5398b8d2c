package ledwave

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePin struct {
	gpio     int
	freq     int
	duties   []int
	released bool

	failDuty error
}

func (p *fakePin) SetFrequency(hz int) (err error) {
	p.freq = hz
	return nil
}

func (p *fakePin) SetDuty(duty int) (err error) {
	if p.failDuty != nil {
		return p.failDuty
	}
	p.duties = append(p.duties, duty)
	return nil
}

func (p *fakePin) Release() (err error) {
	p.released = true
	return nil
}

type pinBoard struct {
	pins map[int]*fakePin
}

func newPinBoard() *pinBoard {
	return &pinBoard{pins: map[int]*fakePin{}}
}

func (b *pinBoard) open(gpio int) (pin PWMPin, err error) {
	p := &fakePin{gpio: gpio}
	b.pins[gpio] = p
	return p, nil
}

func TestPhysicalCountMatchesPins(t *testing.T) {
	board := newPinBoard()
	sink, err := NewPhysicalSink(board.open, 6, []int{2, 4, 5, 18, 19, 21})
	assert.Nil(t, err)
	assert.Equal(t, 6, sink.Count())
}

func TestPhysicalCountReconciled(t *testing.T) {
	// More LEDs than pins truncates to the pin list, not an error
	board := newPinBoard()
	sink, err := NewPhysicalSink(board.open, 10, []int{2, 4, 5, 18, 19, 21})
	assert.Nil(t, err)
	assert.Equal(t, 6, sink.Count())

	// Fewer LEDs than pins claims only what was asked for
	board = newPinBoard()
	sink, err = NewPhysicalSink(board.open, 3, nil)
	assert.Nil(t, err)
	assert.Equal(t, 3, sink.Count())
	assert.Len(t, board.pins, 3)
	assert.Contains(t, board.pins, 2)
	assert.Contains(t, board.pins, 4)
	assert.Contains(t, board.pins, 5)
}

func TestPhysicalDefaultPins(t *testing.T) {
	board := newPinBoard()
	sink, err := NewPhysicalSink(board.open, 6, nil)
	assert.Nil(t, err)
	assert.Equal(t, 6, sink.Count())
	for _, gpio := range DefaultPins {
		assert.Contains(t, board.pins, gpio)
	}
}

func TestPhysicalStartsDark(t *testing.T) {
	board := newPinBoard()
	_, err := NewPhysicalSink(board.open, 6, nil)
	assert.Nil(t, err)

	for _, pin := range board.pins {
		assert.Equal(t, 1000, pin.freq)
		assert.Equal(t, []int{0}, pin.duties)
	}
}

func TestPhysicalDutyMapping(t *testing.T) {
	board := newPinBoard()
	sink, err := NewPhysicalSink(board.open, 1, []int{18})
	assert.Nil(t, err)

	cases := []struct {
		v    float64
		duty int
	}{
		{0.0, 0},
		{1.0, 1023},
		{0.5, 511}, // truncating conversion
		{-0.3, 0},
		{1.8, 1023},
	}
	for _, tc := range cases {
		assert.Nil(t, sink.SetIntensity(0, tc.v))
		duties := board.pins[18].duties
		assert.Equal(t, tc.duty, duties[len(duties)-1], "v=%v", tc.v)
	}
}

func TestPhysicalOutOfRangeIsIgnored(t *testing.T) {
	board := newPinBoard()
	sink, err := NewPhysicalSink(board.open, 2, []int{2, 4})
	assert.Nil(t, err)

	assert.Nil(t, sink.SetIntensity(-1, 1.0))
	assert.Nil(t, sink.SetIntensity(2, 1.0))
	// Only the construction duty is present
	assert.Equal(t, []int{0}, board.pins[2].duties)
	assert.Equal(t, []int{0}, board.pins[4].duties)
}

func TestPhysicalShutdown(t *testing.T) {
	board := newPinBoard()
	sink, err := NewPhysicalSink(board.open, 6, nil)
	assert.Nil(t, err)

	for i := 0; i < sink.Count(); i++ {
		assert.Nil(t, sink.SetIntensity(i, 1.0))
	}
	assert.Nil(t, sink.Shutdown())

	for _, pin := range board.pins {
		assert.True(t, pin.released)
		assert.Equal(t, 0, pin.duties[len(pin.duties)-1])
	}
}

func TestPhysicalOpenFailureReleasesClaimed(t *testing.T) {
	board := newPinBoard()
	open := func(gpio int) (pin PWMPin, err error) {
		if gpio == 5 {
			return nil, fmt.Errorf("gpio %d busy", gpio)
		}
		return board.open(gpio)
	}

	_, err := NewPhysicalSink(open, 6, nil)
	assert.NotNil(t, err)
	assert.True(t, board.pins[2].released)
	assert.True(t, board.pins[4].released)
}

func TestPhysicalDutyFailurePropagates(t *testing.T) {
	board := newPinBoard()
	sink, err := NewPhysicalSink(board.open, 1, []int{18})
	assert.Nil(t, err)

	board.pins[18].failDuty = fmt.Errorf("pwm peripheral fault")
	assert.NotNil(t, sink.SetIntensity(0, 0.7))
}
