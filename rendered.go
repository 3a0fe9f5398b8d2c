package ledwave

// This module implements the rendered sink.  LEDs are simulated as filled
// circles drawn across the middle of a pixel display.  Every update redraws
// the circles full bounding box in a single block transfer, overwriting the
// previous frame, so no separate erase pass is needed and the panel sees
// one write per LED per frame.

import (
	"fmt"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
)

// RenderedConfig carries the construction parameters for a rendered sink.
type RenderedConfig struct {
	NumLeds int
	Radius  int
	Padding int

	// BaseColor is the color of an LED at full intensity.
	BaseColor Color565

	// GradientColor, when set, spreads a Lab space blend running from
	// BaseColor to GradientColor across the LED positions.
	GradientColor *Color565

	// FontName names the bitmap font for the FPS overlay, loaded through
	// LoadFont.  A failed or absent load is not fatal, the displays built
	// in glyphs are used instead.
	FontName string
	LoadFont FontLoader
}

// RenderedSink draws its channels as circles on a pixel display.
type RenderedSink struct {
	display   Display
	radius    int
	centerY   int
	positions []int
	colors    []Color565
	font      Font
	stats     *frameStats
}

// NewRenderedSink lays the requested LEDs out horizontally, centered on
// the display.  Positions that would overhang the right edge are dropped,
// so Count can come back lower than NumLeds on a narrow panel.
func NewRenderedSink(display Display, cfg RenderedConfig) (sink *RenderedSink, err errors.Error) {
	width, height := display.Size()

	total := cfg.NumLeds*cfg.Radius*2 + (cfg.NumLeds-1)*cfg.Padding
	startX := (width-total)/2 + cfg.Radius

	positions := make([]int, 0, cfg.NumLeds)
	for i := 0; i < cfg.NumLeds; i++ {
		x := startX + i*(cfg.Radius*2+cfg.Padding)
		if x+cfg.Radius <= width {
			positions = append(positions, x)
		}
	}

	colors := make([]Color565, len(positions))
	for i := range colors {
		colors[i] = cfg.BaseColor
		if cfg.GradientColor != nil && len(positions) > 1 {
			colors[i] = Blend(cfg.BaseColor, *cfg.GradientColor, float64(i)/float64(len(positions)-1))
		}
	}

	sink = &RenderedSink{
		display:   display,
		radius:    cfg.Radius,
		centerY:   height / 2,
		positions: positions,
		colors:    colors,
		stats:     newFrameStats("ledwave.rendered.frames"),
	}

	if cfg.LoadFont != nil {
		font, errGo := cfg.LoadFont(cfg.FontName)
		if errGo != nil {
			logger.Warn(fmt.Sprintf("font %s not found, using built in text", cfg.FontName))
		} else {
			sink.font = font
		}
	}

	if errGo := display.Clear(Black); errGo != nil {
		return nil, errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}

	logger.Info(fmt.Sprintf("rendered sink initialized with %d LEDs at %v", len(positions), positions))

	return sink, nil
}

func (s *RenderedSink) Count() (count int) {
	return len(s.positions)
}

// SetIntensity redraws one LED circle with its base color scaled by the
// intensity.  Unknown indices are ignored.
func (s *RenderedSink) SetIntensity(index int, v float64) (err errors.Error) {
	if index < 0 || index >= len(s.positions) {
		return nil
	}
	return s.drawCircle(s.positions[index], s.centerY, s.radius, AdjustBrightness(s.colors[index], v))
}

// drawCircle rasterizes a filled circle into a single row major buffer of
// big endian 16 bit colors and submits it as one block transfer.  Pixels
// inside the bounding box but outside the circle are left black, which is
// what erases the previous frame.
func (s *RenderedSink) drawCircle(x0, y0, radius int, c Color565) (err errors.Error) {
	width, height := s.display.Size()

	xMin := max(0, x0-radius)
	xMax := min(width-1, x0+radius)
	yMin := max(0, y0-radius)
	yMax := min(height-1, y0+radius)

	cols := xMax - xMin + 1
	rows := yMax - yMin + 1
	r2 := radius * radius

	hi, lo := c.Bytes()

	// The buffers zero value is already black
	pixels := make([]byte, cols*rows*2)
	i := 0
	for y := yMin; y <= yMax; y++ {
		dy := y - y0
		dy2 := dy * dy
		for x := xMin; x <= xMax; x++ {
			dx := x - x0
			if dx*dx+dy2 <= r2 {
				pixels[i] = hi
				pixels[i+1] = lo
			}
			i += 2
		}
	}

	if errGo := s.display.Block(xMin, yMin, xMax, yMax, pixels); errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}

// Tick counts the frame and, on reporting frames, writes the measured rate
// to the log and overlays it in the bottom left corner of the display.
func (s *RenderedSink) Tick() (err errors.Error) {
	fps, report := s.stats.frame()
	if !report {
		return nil
	}

	logger.Info(fmt.Sprintf("FPS: %.1f", fps))

	_, height := s.display.Size()
	if height < 50 {
		// The overlay would stomp the LED row on panels this short
		return nil
	}

	text := fmt.Sprintf("FPS: %.1f", fps)
	if errGo := s.display.FillRectangle(0, height-25, 120, 25, Black); errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}

	var errGo error
	if s.font != nil {
		errGo = s.display.DrawText(5, height-20, text, s.font, yellow, Black)
	} else {
		errGo = s.display.DrawText8x8(5, height-15, text, yellow, Black)
	}
	if errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}

// Shutdown blanks the whole display.
func (s *RenderedSink) Shutdown() (err errors.Error) {
	if errGo := s.display.Clear(Black); errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}
