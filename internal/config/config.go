package config

import (
	"fmt"
	"time"
)

const (
	// Reading scale
	MaxValue = 2.5 // Full scale of the dial (‰ BAC)

	// Frame loop
	TargetFPS = 60 // Ticks per second; all durations below are in ticks

	// Phase durations
	InstructionsTicks = 300 // 5 seconds at 60 Hz
	ReadingTicks      = 300 // 5 seconds of blowing
	ResultTicks       = 300 // 5 seconds of result

	// Smoothing
	ValueSmoothing  = 0.1  // Reading approach per tick
	NeedleSmoothing = 0.15 // Needle approach per tick

	// Pulse and glow animation
	PulseStep        = 0.1
	WaitingPulseStep = 0.05
	GlowStep         = 5
	GlowMax          = 100

	// Virtual canvas the core works in (pixels)
	ScreenWidth  = 1024
	ScreenHeight = 768
	GaugeCenterX = ScreenWidth / 2
	GaugeCenterY = ScreenHeight/2 + 100
	GaugeRadius  = 250

	// Particles
	ParticleCapacity  = 1024 // Arena slots; spawns beyond this are dropped
	ParticleLife      = 255
	ParticleDecay     = 3
	ParticleShrink    = 0.1
	ParticleMinSize   = 1.0
	ParticleSpeed     = 2.0
	ParticleThreshold = 0.5 // Reading above which particles spawn
	ParticleJitterX   = 50
	ParticleJitterY   = 30

	// Input
	ManualStep     = 0.1                    // Up/down nudge in manual mode
	ButtonDebounce = 300 * time.Millisecond // Minimum gap between accepted presses
	PollInterval   = 100 * time.Millisecond // Reader retry delay
	HistorySize    = ReadingTicks / 2       // One sample every other reading tick

	// App
	AppName    = "ETILOMETRO"
	AppVersion = "1.0"
	Title      = "Alcohol test Barboun"
)

// Source selects where readings come from.
type Source string

const (
	SourceSerial Source = "serial"
	SourceBLE    Source = "ble"
	SourceSim    Source = "sim"
	SourceNone   Source = "none"
)

// Hardware reports whether the source is a physical sensor.
func (s Source) Hardware() bool {
	return s == SourceSerial || s == SourceBLE
}

// Options holds the runtime settings collected from command-line flags.
type Options struct {
	Source    Source
	Port      string
	Baud      int
	BLEName   string
	ButtonPin string
	NoButton  bool
	LogFile   string
	Debug     bool
}

// DefaultOptions returns the settings used when no flags are given.
func DefaultOptions() Options {
	return Options{
		Source:    SourceSerial,
		Port:      "/dev/ttyUSB0",
		Baud:      9600,
		BLEName:   "ETILOMETRO",
		ButtonPin: "GPIO18",
	}
}

// Validate checks flag combinations before the display starts.
func (o Options) Validate() error {
	switch o.Source {
	case SourceSerial, SourceBLE, SourceSim, SourceNone:
	default:
		return fmt.Errorf("unknown source %q (want serial, ble, sim or none)", o.Source)
	}
	if o.Source == SourceSerial {
		if o.Port == "" {
			return fmt.Errorf("serial source needs --port")
		}
		if o.Baud <= 0 {
			return fmt.Errorf("invalid baud rate %d", o.Baud)
		}
	}
	if o.Source == SourceBLE && o.BLEName == "" {
		return fmt.Errorf("ble source needs --ble-name")
	}
	return nil
}
