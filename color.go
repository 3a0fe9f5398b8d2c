package ledwave

// This module implements the device color handling used by the rendered
// sink.  Colors travel to the display packed 5/6/5 with the high byte
// first.  Brightness scaling is done in 8 bit space so the hue survives
// the round trip.

import (
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"

	"github.com/lucasb-eyer/go-colorful"
)

// Color565 is a packed 5/6/5 bit RGB value as consumed by the display.
type Color565 uint16

const (
	Black Color565 = 0x0000
	White Color565 = 0xFFFF
)

var yellow = RGB565(255, 255, 0)

// RGB565 packs 8 bit RGB channels into a 5/6/5 device color.
func RGB565(r, g, b uint8) (c Color565) {
	return Color565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// RGB unpacks the color back into 8 bit channels using truncating integer
// scaling, a full scale channel expands back to 255 exactly.
func (c Color565) RGB() (r, g, b uint8) {
	r5 := (uint16(c) >> 11) & 0x1F
	g6 := (uint16(c) >> 5) & 0x3F
	b5 := uint16(c) & 0x1F
	return uint8(r5 * 255 / 31), uint8(g6 * 255 / 63), uint8(b5 * 255 / 31)
}

// Bytes returns the big endian halves used for display block transfers.
func (c Color565) Bytes() (hi byte, lo byte) {
	return byte(c >> 8), byte(c)
}

// AdjustBrightness scales the luminance of a device color while keeping
// its hue.  The channels are expanded to 8 bits, scaled, clamped and
// repacked.  Brightness is clamped into 0.0 to 1.0 first so that out of
// range inputs behave exactly like their clamped equivalents, a zero
// brightness always produces black and a full brightness returns the
// original color subject only to the 5/6/5 quantization.
func AdjustBrightness(c Color565, brightness float64) (scaled Color565) {
	if brightness < 0.0 {
		brightness = 0.0
	}
	if brightness > 1.0 {
		brightness = 1.0
	}
	r, g, b := c.RGB()
	return RGB565(
		clamp8(float64(r)*brightness),
		clamp8(float64(g)*brightness),
		clamp8(float64(b)*brightness))
}

func clamp8(v float64) (c uint8) {
	n := int(v)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

// ParseColor converts a #RRGGBB style string into a device color.
func ParseColor(hex string) (c Color565, err errors.Error) {
	col, errGo := colorful.Hex(hex)
	if errGo != nil {
		return 0, errors.Wrap(errGo).With("color", hex).With("stack", stack.Trace().TrimRuntime())
	}
	r, g, b := col.RGB255()
	return RGB565(r, g, b), nil
}

// Blend mixes two device colors in Lab space, t runs from 0.0 at c1 to
// 1.0 at c2.
func Blend(c1, c2 Color565, t float64) (c Color565) {
	r, g, b := colorfulFrom(c1).BlendLab(colorfulFrom(c2), t).Clamped().RGB255()
	return RGB565(r, g, b)
}

func colorfulFrom(c Color565) (col colorful.Color) {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}
