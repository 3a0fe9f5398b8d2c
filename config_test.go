package ledwave

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "display", cfg.Sink)
	assert.Equal(t, 6, cfg.NumLeds)
	assert.Equal(t, 8, cfg.Radius)
	assert.Equal(t, 5, cfg.Padding)
	assert.Equal(t, "#FFFFFF", cfg.BaseColor)
	assert.Equal(t, "sine", cfg.Waveform)
	assert.Equal(t, 0.1, cfg.WaveSpeed)
	assert.Equal(t, 0.1, cfg.MinPWM)
	assert.Equal(t, 1.0, cfg.MaxPWM)
	assert.Empty(t, cfg.Pins)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	body := `
sink: pwm
numLeds: 4
pins: [12, 13, 18, 19]
waveform: triangle
frameCap: 10ms
`
	path := filepath.Join(t.TempDir(), "ledwave.yaml")
	assert.Nil(t, os.WriteFile(path, []byte(body), 0600))

	cfg, err := LoadConfig(path)
	assert.Nil(t, err)

	assert.Equal(t, "pwm", cfg.Sink)
	assert.Equal(t, 4, cfg.NumLeds)
	assert.Equal(t, []int{12, 13, 18, 19}, cfg.Pins)
	assert.Equal(t, "triangle", cfg.Waveform)

	// Untouched values keep their defaults
	assert.Equal(t, 8, cfg.Radius)
	assert.Equal(t, 0.1, cfg.MinPWM)

	opts, err := cfg.Options()
	assert.Nil(t, err)
	assert.Equal(t, 10*time.Millisecond, opts.FrameCap)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NotNil(t, err)
}

func TestOptionsBadFrameCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameCap = "fast"
	_, err := cfg.Options()
	assert.NotNil(t, err)
}

func TestOptionsUnpacedByDefault(t *testing.T) {
	opts, err := DefaultConfig().Options()
	assert.Nil(t, err)
	assert.Equal(t, time.Duration(0), opts.FrameCap)
	assert.Equal(t, DefaultOptions(), opts)
}
