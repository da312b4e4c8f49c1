// Package config provides YAML-based game configuration loading and
// difficulty handling for horse-jump.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for a horse-jump session.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Pacing    Pacing    `yaml:"pacing"`
	Viewport  Viewport  `yaml:"viewport"`
	Terminal  Terminal  `yaml:"terminal"`
	Log       Log       `yaml:"log"`
}

// Physics defines the jump parameters.
type Physics struct {
	LaunchVelocity int `yaml:"launch_velocity"`
	ApexHoldTicks  int `yaml:"apex_hold_ticks"`
}

// DescentFloor is the velocity at which a falling horse lands.
// It mirrors the launch so every jump ends on the baseline row.
func (p Physics) DescentFloor() int {
	return -(p.LaunchVelocity - 1)
}

// JumpTicks is the number of ticks from liftoff to landing.
func (p Physics) JumpTicks() int {
	return 2*p.LaunchVelocity + p.ApexHoldTicks
}

// Obstacles defines obstacle spawning parameters.
type Obstacles struct {
	SpawnInset int `yaml:"spawn_inset"`
	GapMinBase int `yaml:"gap_min_base"`
	GapMinStep int `yaml:"gap_min_step"`
	GapMaxBase int `yaml:"gap_max_base"`
	GapMaxStep int `yaml:"gap_max_step"`
}

// Pacing defines frame timing.
type Pacing struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	SpeedupEvery  time.Duration `yaml:"speedup_every"`
	SpeedupFactor float64       `yaml:"speedup_factor"`
	CrashPause    time.Duration `yaml:"crash_pause"`
}

// Viewport defines the minimum terminal size.
type Viewport struct {
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
}

// Terminal selects the terminal backend.
type Terminal struct {
	Backend string `yaml:"backend"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate reports the first setting that would make the game unplayable.
func (c Config) Validate() error {
	switch {
	case c.Physics.LaunchVelocity < 2:
		return fmt.Errorf("config: physics.launch_velocity must be at least 2, got %d", c.Physics.LaunchVelocity)
	case c.Physics.ApexHoldTicks < 0:
		return fmt.Errorf("config: physics.apex_hold_ticks must not be negative, got %d", c.Physics.ApexHoldTicks)
	case c.Obstacles.SpawnInset < 1:
		return fmt.Errorf("config: obstacles.spawn_inset must be at least 1, got %d", c.Obstacles.SpawnInset)
	case c.Obstacles.GapMinBase < 1 || c.Obstacles.GapMinStep < 0:
		return fmt.Errorf("config: obstacles minimum gap must be positive")
	case c.Obstacles.GapMaxBase < c.Obstacles.GapMinBase || c.Obstacles.GapMaxStep < c.Obstacles.GapMinStep:
		return fmt.Errorf("config: obstacles maximum gap must not be below the minimum gap")
	case c.Pacing.FrameInterval <= 0:
		return fmt.Errorf("config: pacing.frame_interval must be positive, got %s", c.Pacing.FrameInterval)
	case c.Pacing.SpeedupEvery <= 0:
		return fmt.Errorf("config: pacing.speedup_every must be positive, got %s", c.Pacing.SpeedupEvery)
	case c.Pacing.SpeedupFactor <= 0 || c.Pacing.SpeedupFactor > 1:
		return fmt.Errorf("config: pacing.speedup_factor must be in (0, 1], got %g", c.Pacing.SpeedupFactor)
	case c.Pacing.CrashPause < 0:
		return fmt.Errorf("config: pacing.crash_pause must not be negative, got %s", c.Pacing.CrashPause)
	case c.Viewport.MinWidth < 1 || c.Viewport.MinHeight < 1:
		return fmt.Errorf("config: viewport minimums must be positive")
	}
	return nil
}
