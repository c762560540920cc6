package config

import (
	_ "embed"

	"github.com/vovakirdan/alert-rush/internal/engine"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultTunables returns the stock engine tuning.
func DefaultTunables() Tunables {
	return Tunables{
		Unlock: UnlockConfig{
			Order: []engine.TaskType{
				engine.TaskTyping, engine.TaskDrag, engine.TaskSort,
				engine.TaskHold, engine.TaskConnect, engine.TaskTrack,
			},
			EveryNCompletions: 5,
			FallbackAfterSec:  25,
		},
		Spawn: SpawnConfig{
			BaseIntervalMs:     5000,
			DifficultyStepMs:   300,
			EntropyStepMs:      20,
			ReductionPerTierMs: 400,
			MinIntervalMs:      2000,
			JitterMs:           1000,
			FirstDelayMs:       1000,
		},
		Timing: TimingConfig{
			TickMs:                100,
			EscalateEveryMs:       30000,
			InitialTimeMultiplier: 1.5,
			DecayPerTier:          0.1,
			MultiplierFloor:       0.8,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultEngineYAML
}
