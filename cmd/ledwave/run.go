package main

// This file assembles the configured sink and waveform and hands them to
// the animation loop.  Hardware errors surface here, are logged by the
// caller, and have already been routed through the sinks shutdown.

import (
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"

	"github.com/karlmutch/ledwave"
	"github.com/karlmutch/ledwave/sim"
)

func run(cfg *ledwave.Config, quitC chan struct{}, stop func()) (err errors.Error) {

	wave, err := ledwave.NewWaveform(cfg.Waveform)
	if err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	var sink ledwave.Sink
	switch cfg.Sink {
	case "display":
		display, errGo := sim.NewTerminalDisplay()
		if errGo != nil {
			return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
		}
		defer display.Fini()
		go display.WatchKeys(stop)

		rcfg, err := renderedConfig(cfg)
		if err != nil {
			return err
		}
		if sink, err = ledwave.NewRenderedSink(display, rcfg); err != nil {
			return err
		}
	case "pwm":
		if sink, err = newPWMSink(cfg); err != nil {
			return err
		}
	case "opc":
		base, err := ledwave.ParseColor(cfg.BaseColor)
		if err != nil {
			return err
		}
		if sink, err = ledwave.NewOPCSink(cfg.OPCServer, cfg.NumLeds, base); err != nil {
			return err
		}
	default:
		return errors.New("unknown sink").With("sink", cfg.Sink).With("stack", stack.Trace().TrimRuntime())
	}

	return ledwave.NewRunner(sink, wave, opts).Run(quitC)
}

func renderedConfig(cfg *ledwave.Config) (rcfg ledwave.RenderedConfig, err errors.Error) {
	rcfg = ledwave.RenderedConfig{
		NumLeds:  cfg.NumLeds,
		Radius:   cfg.Radius,
		Padding:  cfg.Padding,
		FontName: "fonts/FixedFont5x8.c",
		LoadFont: sim.LoadFont,
	}

	if rcfg.BaseColor, err = ledwave.ParseColor(cfg.BaseColor); err != nil {
		return rcfg, err
	}
	if cfg.GradientColor != "" {
		gradient, err := ledwave.ParseColor(cfg.GradientColor)
		if err != nil {
			return rcfg, err
		}
		rcfg.GradientColor = &gradient
	}
	return rcfg, nil
}
