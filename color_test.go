package ledwave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGB565Pack(t *testing.T) {
	assert.Equal(t, Color565(0x0000), RGB565(0, 0, 0))
	assert.Equal(t, Color565(0xFFFF), RGB565(255, 255, 255))
	assert.Equal(t, Color565(0xF800), RGB565(255, 0, 0))
	assert.Equal(t, Color565(0x07E0), RGB565(0, 255, 0))
	assert.Equal(t, Color565(0x001F), RGB565(0, 0, 255))
}

func TestBytesBigEndian(t *testing.T) {
	hi, lo := RGB565(255, 0, 0).Bytes()
	assert.Equal(t, byte(0xF8), hi)
	assert.Equal(t, byte(0x00), lo)

	hi, lo = White.Bytes()
	assert.Equal(t, byte(0xFF), hi)
	assert.Equal(t, byte(0xFF), lo)
}

func TestBrightnessZeroIsBlack(t *testing.T) {
	for _, c := range []Color565{White, RGB565(255, 0, 0), RGB565(12, 200, 99), 0x1234} {
		assert.Equal(t, Black, AdjustBrightness(c, 0.0))
	}
}

func TestFullBrightnessRoundTrip(t *testing.T) {
	// The 8 bit expansion and repack are lossless for any packed value, so
	// full brightness must reproduce the input exactly
	for _, c := range []Color565{White, Black, RGB565(255, 0, 0), RGB565(200, 100, 50), 0x1234, 0xABCD} {
		assert.Equal(t, c, AdjustBrightness(c, 1.0))
	}
}

func TestBrightnessClamped(t *testing.T) {
	for _, c := range []Color565{White, RGB565(128, 64, 32)} {
		assert.Equal(t, AdjustBrightness(c, 0.0), AdjustBrightness(c, -0.5))
		assert.Equal(t, AdjustBrightness(c, 1.0), AdjustBrightness(c, 1.7))
	}
}

func TestHalfBrightness(t *testing.T) {
	// White at half brightness truncates each channel to 127 and repacks
	assert.Equal(t, RGB565(127, 127, 127), AdjustBrightness(White, 0.5))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF0000")
	assert.Nil(t, err)
	assert.Equal(t, Color565(0xF800), c)

	c, err = ParseColor("#FFFFFF")
	assert.Nil(t, err)
	assert.Equal(t, White, c)

	_, err = ParseColor("not a color")
	assert.NotNil(t, err)
}

func TestBlendEndpoints(t *testing.T) {
	red := RGB565(255, 0, 0)
	blue := RGB565(0, 0, 255)

	assert.Equal(t, red, Blend(red, blue, 0.0))
	assert.Equal(t, blue, Blend(red, blue, 1.0))
}
