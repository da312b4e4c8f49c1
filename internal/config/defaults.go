package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/horsejump.yaml
var defaultYAML []byte

// Backend names understood by terminal.backend.
const (
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

// DefaultConfig returns the built-in configuration.
// It matches defaults/horsejump.yaml.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			LaunchVelocity: 5,
			ApexHoldTicks:  5,
		},
		Obstacles: Obstacles{
			SpawnInset: 2,
			GapMinBase: 10,
			GapMinStep: 4,
			GapMaxBase: 15,
			GapMaxStep: 6,
		},
		Pacing: Pacing{
			FrameInterval: 100 * time.Millisecond,
			SpeedupEvery:  5 * time.Second,
			SpeedupFactor: 0.9,
			CrashPause:    time.Second,
		},
		Viewport: Viewport{
			MinWidth:  40,
			MinHeight: 9,
		},
		Terminal: Terminal{
			Backend: BackendBubbleTea,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
