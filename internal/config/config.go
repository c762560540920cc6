// Package config provides YAML-based engine tuning and pacing presets for
// the alert console.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/alert-rush/internal/engine"
)

// Tunables holds every numeric knob of the engine: the unlock progression,
// the spawn schedule and the timer cadences. All durations carry their unit
// in the field name.
type Tunables struct {
	Unlock UnlockConfig `yaml:"unlock"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Timing TimingConfig `yaml:"timing"`
}

// UnlockConfig defines the tier progression system.
type UnlockConfig struct {
	// Order is the sequence in which task types unlock; the first entry is
	// always pre-unlocked.
	Order []engine.TaskType `yaml:"order"`
	// EveryNCompletions is the completion count per organic tier unlock.
	EveryNCompletions int `yaml:"every_n_completions"`
	// FallbackAfterSec force-unlocks the next tier after this long without
	// an organic unlock, so struggling players still see every task type.
	FallbackAfterSec float64 `yaml:"fallback_after_sec"`
}

// SpawnConfig defines the alert spawn schedule.
type SpawnConfig struct {
	BaseIntervalMs     int `yaml:"base_interval_ms"`
	DifficultyStepMs   int `yaml:"difficulty_step_ms"`    // interval reduction per difficulty point
	EntropyStepMs      int `yaml:"entropy_step_ms"`       // interval reduction per entropy point
	ReductionPerTierMs int `yaml:"reduction_per_tier_ms"` // interval reduction per tier
	MinIntervalMs      int `yaml:"min_interval_ms"`
	JitterMs           int `yaml:"jitter_ms"`      // uniform random added to every interval
	FirstDelayMs       int `yaml:"first_delay_ms"` // delay of the first spawn after play begins
}

// TimingConfig defines the tick and escalation cadences and the tier-based
// time-limit scaling applied to spawned alerts.
type TimingConfig struct {
	TickMs          int `yaml:"tick_ms"`
	EscalateEveryMs int `yaml:"escalate_every_ms"`

	InitialTimeMultiplier float64 `yaml:"initial_time_multiplier"`
	DecayPerTier          float64 `yaml:"decay_per_tier"`
	MultiplierFloor       float64 `yaml:"multiplier_floor"`
}

// Rules extracts the subset of tunables the reducer needs.
func (t Tunables) Rules() engine.Rules {
	return engine.Rules{
		UnlockOrder:  t.Unlock.Order,
		UnlockEveryN: t.Unlock.EveryNCompletions,
	}
}

// TickInterval returns the tick cadence as a duration.
func (t Tunables) TickInterval() time.Duration {
	return time.Duration(t.Timing.TickMs) * time.Millisecond
}

// EscalateInterval returns the difficulty escalation cadence as a duration.
func (t Tunables) EscalateInterval() time.Duration {
	return time.Duration(t.Timing.EscalateEveryMs) * time.Millisecond
}

// FallbackDelay returns the struggle timeout as a duration.
func (t Tunables) FallbackDelay() time.Duration {
	return time.Duration(t.Unlock.FallbackAfterSec * float64(time.Second))
}

// TimeMultiplier returns the time-limit scale for the given tier, decayed
// per tier and floored.
func (t Tunables) TimeMultiplier(tier int) float64 {
	m := t.Timing.InitialTimeMultiplier - float64(tier)*t.Timing.DecayPerTier
	if m < t.Timing.MultiplierFloor {
		m = t.Timing.MultiplierFloor
	}
	return m
}

// Validate checks the tunables for values the engine cannot run with.
func (t Tunables) Validate() error {
	if len(t.Unlock.Order) == 0 {
		return fmt.Errorf("config: unlock.order must not be empty")
	}
	seen := make(map[engine.TaskType]bool, len(t.Unlock.Order))
	for _, tt := range t.Unlock.Order {
		if seen[tt] {
			return fmt.Errorf("config: unlock.order lists %q twice", tt)
		}
		seen[tt] = true
	}
	if t.Unlock.EveryNCompletions <= 0 {
		return fmt.Errorf("config: unlock.every_n_completions must be positive")
	}
	if t.Timing.TickMs <= 0 {
		return fmt.Errorf("config: timing.tick_ms must be positive")
	}
	if t.Spawn.MinIntervalMs <= 0 {
		return fmt.Errorf("config: spawn.min_interval_ms must be positive")
	}
	if t.Timing.MultiplierFloor <= 0 {
		return fmt.Errorf("config: timing.multiplier_floor must be positive")
	}
	return nil
}

// Preset names a spawn pacing profile.
type Preset string

const (
	PresetRelaxed  Preset = "relaxed"
	PresetStandard Preset = "standard"
	PresetOverrun  Preset = "overrun"
	PresetFixed    Preset = "fixed"
)

// ApplyPreset adjusts the spawn schedule for a named pacing profile.
// Unknown presets leave the tunables untouched.
func ApplyPreset(t *Tunables, preset Preset) {
	switch preset {
	case PresetRelaxed:
		t.Spawn.BaseIntervalMs += 2000
		t.Spawn.MinIntervalMs += 1000
		t.Unlock.FallbackAfterSec += 10
	case PresetOverrun:
		t.Spawn.BaseIntervalMs -= 1500
		t.Spawn.FirstDelayMs = 500
		t.Timing.EscalateEveryMs = 20000
	case PresetFixed:
		// Freeze escalation; spawn pressure then varies only with entropy.
		t.Timing.EscalateEveryMs = 0
	}
}
