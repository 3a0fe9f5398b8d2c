package ledwave

// This module implements the optional YAML configuration file.  Everything
// in it has a flag or a default, the file exists for values that are
// awkward on a command line such as pin lists and gradient colors.

import (
	"os"
	"time"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"

	yaml "gopkg.in/yaml.v2"
)

// Config mirrors the constructor parameters of the sinks and the runner.
type Config struct {
	// Sink selects the output backend, one of display, pwm or opc
	Sink string `yaml:"sink"`

	NumLeds int `yaml:"numLeds"`
	Radius  int `yaml:"radius"`
	Padding int `yaml:"padding"`

	// BaseColor is a #RRGGBB string, GradientColor when present spreads a
	// blend from BaseColor across the LED row
	BaseColor     string `yaml:"baseColor"`
	GradientColor string `yaml:"gradientColor"`

	Waveform  string  `yaml:"waveform"`
	WaveSpeed float64 `yaml:"waveSpeed"`
	MinPWM    float64 `yaml:"minPwm"`
	MaxPWM    float64 `yaml:"maxPwm"`

	// FrameCap is a Go duration string, empty or 0 runs unpaced
	FrameCap string `yaml:"frameCap"`

	// Pins lists the GPIO numbers for the pwm sink, empty selects the
	// built in default list
	Pins []int `yaml:"pins"`

	// OPCServer is the host:port of an fcserver instance for the opc sink
	OPCServer string `yaml:"opcServer"`
}

// DefaultConfig returns the stock six LED white wave.
func DefaultConfig() (cfg *Config) {
	return &Config{
		Sink:      "display",
		NumLeds:   6,
		Radius:    8,
		Padding:   5,
		BaseColor: "#FFFFFF",
		Waveform:  "sine",
		WaveSpeed: 0.1,
		MinPWM:    0.1,
		MaxPWM:    1.0,
		OPCServer: "127.0.0.1:7890",
	}
}

// LoadConfig reads a YAML file over the defaults, values absent from the
// file keep their default.
func LoadConfig(path string) (cfg *Config, err errors.Error) {
	cfg = DefaultConfig()

	data, errGo := os.ReadFile(path)
	if errGo != nil {
		return nil, errors.Wrap(errGo).With("path", path).With("stack", stack.Trace().TrimRuntime())
	}
	if errGo = yaml.Unmarshal(data, cfg); errGo != nil {
		return nil, errors.Wrap(errGo).With("path", path).With("stack", stack.Trace().TrimRuntime())
	}
	return cfg, nil
}

// Options extracts the animation loop parameters.
func (cfg *Config) Options() (opts Options, err errors.Error) {
	opts = Options{
		WaveSpeed: cfg.WaveSpeed,
		MinPWM:    cfg.MinPWM,
		MaxPWM:    cfg.MaxPWM,
	}
	if cfg.FrameCap != "" && cfg.FrameCap != "0" {
		pause, errGo := time.ParseDuration(cfg.FrameCap)
		if errGo != nil {
			return opts, errors.Wrap(errGo).With("frameCap", cfg.FrameCap).With("stack", stack.Trace().TrimRuntime())
		}
		opts.FrameCap = pause
	}
	return opts, nil
}
