package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"sync"
	"syscall"

	logxi "github.com/mgutz/logxi/v1"

	"github.com/karlmutch/envflag" // Forked copy of https://github.com/GoBike/envflag

	"github.com/karlmutch/ledwave"
	"github.com/karlmutch/ledwave/version"
)

var (
	logger = logxi.New("ledwave")

	verbose = flag.Bool("v", false, "When enabled will print internal logging for this tool")
	cfgPath = flag.String("config", "", "Optional YAML configuration file")

	sinkKind = flag.String("sink", "display", "LED output backend, one of display, pwm or opc")
	numLeds  = flag.Int("leds", 6, "Number of LED channels")
	radius   = flag.Int("radius", 8, "Radius in pixels of the rendered LEDs")
	padding  = flag.Int("padding", 5, "Gap in pixels between rendered LEDs")

	waveMode  = flag.String("wave", "sine", "Waveform policy, sine or triangle")
	waveSpeed = flag.Float64("wave-speed", 0.1, "Wave offset increment per frame")
	minPWM    = flag.Float64("min-pwm", 0.1, "Lowest intensity in the wave")
	maxPWM    = flag.Float64("max-pwm", 1.0, "Highest intensity in the wave")
	frameCap  = flag.String("frame-cap", "", "Optional pause per frame as a duration, empty runs unpaced")

	baseColor = flag.String("base-color", "#FFFFFF", "LED color at full intensity")
	gradient  = flag.String("gradient-color", "", "Optional second color blended across the LED row")

	opcServer = flag.String("opc-server", "127.0.0.1:7890", "host:port of an OPC server such as fcserver")
)

func usage() {
	fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]       wave animation → LED sink (ledwave)      ", version.GitHash, "    ", version.BuildTime)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "ledwave animates a row of LEDs with a travelling brightness wave, the LEDs")
	fmt.Fprintln(os.Stderr, "being circles on a display, PWM driven hardware, or pixels on an OPC server")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment Variables:")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "options can also be extracted from environment variables by changing dashes '-' to underscores and using upper case.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "log levels are handled by the LOGXI env variables, these are documented at https://github.com/mgutz/logxi")
}

func init() {
	flag.Usage = usage
}

func main() {

	// Parse the CLI flags
	if !flag.Parsed() {
		envflag.Parse()
	}

	// Turn off logging regardless of the default levels if the verbose flag is not enabled
	if *verbose {
		logger.SetLevel(logxi.LevelDebug)
	}

	logger.Debug(fmt.Sprintf("%s built at %s, against commit id %s", os.Args[0], version.BuildTime, version.GitHash))

	cfg := ledwave.DefaultConfig()
	if *cfgPath != "" {
		loaded, err := ledwave.LoadConfig(*cfgPath)
		if err != nil {
			logger.Error(err.Error())
			os.Exit(-1)
		}
		cfg = loaded
	}
	applyFlags(cfg)

	// A closed quitC unwinds the animation loop through its cleanup path.
	// Closing happens exactly once whether the stop came from a signal or
	// from the keyboard watcher of the terminal display.
	quitC := make(chan struct{})
	stopOnce := sync.Once{}
	stop := func() {
		stopOnce.Do(func() { close(quitC) })
	}

	go func() {
		sigC := make(chan os.Signal, 1)
		signal.Notify(sigC, os.Interrupt, syscall.SIGTERM)
		<-sigC
		stop()
	}()

	if err := run(cfg, quitC, stop); err != nil {
		logger.Error(err.Error())
		os.Exit(-1)
	}

	logger.Info("animation stopped")
}

// applyFlags copies onto the configuration only the flags the user
// actually set, so a configuration file is not clobbered by flag defaults
func applyFlags(cfg *ledwave.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sink":
			cfg.Sink = *sinkKind
		case "leds":
			cfg.NumLeds = *numLeds
		case "radius":
			cfg.Radius = *radius
		case "padding":
			cfg.Padding = *padding
		case "wave":
			cfg.Waveform = *waveMode
		case "wave-speed":
			cfg.WaveSpeed = *waveSpeed
		case "min-pwm":
			cfg.MinPWM = *minPWM
		case "max-pwm":
			cfg.MaxPWM = *maxPWM
		case "frame-cap":
			cfg.FrameCap = *frameCap
		case "base-color":
			cfg.BaseColor = *baseColor
		case "gradient-color":
			cfg.GradientColor = *gradient
		case "opc-server":
			cfg.OPCServer = *opcServer
		}
	})
}
