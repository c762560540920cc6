package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/alert-rush/internal/engine"
)

func TestDefaultTunablesValid(t *testing.T) {
	cfg := DefaultTunables()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default tunables must validate: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg Tunables
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded YAML must validate: %v", err)
	}

	want := DefaultTunables()
	if cfg.Spawn != want.Spawn {
		t.Errorf("embedded spawn config %+v differs from defaults %+v", cfg.Spawn, want.Spawn)
	}
	if cfg.Timing != want.Timing {
		t.Errorf("embedded timing config %+v differs from defaults %+v", cfg.Timing, want.Timing)
	}
	if cfg.Unlock.EveryNCompletions != want.Unlock.EveryNCompletions {
		t.Errorf("EveryNCompletions = %d, want %d", cfg.Unlock.EveryNCompletions, want.Unlock.EveryNCompletions)
	}
	if len(cfg.Unlock.Order) != len(want.Unlock.Order) {
		t.Fatalf("unlock order length %d, want %d", len(cfg.Unlock.Order), len(want.Unlock.Order))
	}
	for i := range cfg.Unlock.Order {
		if cfg.Unlock.Order[i] != want.Unlock.Order[i] {
			t.Errorf("unlock order[%d] = %v, want %v", i, cfg.Unlock.Order[i], want.Unlock.Order[i])
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tuning.yaml")

	custom := DefaultTunables()
	custom.Spawn.BaseIntervalMs = 7000
	data, err := yaml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Spawn.BaseIntervalMs != 7000 {
		t.Errorf("BaseIntervalMs = %d, want 7000", cfg.Spawn.BaseIntervalMs)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path must fail")
	}
}

func TestLoadRejectsInvalidCustomConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("unlock:\n  order: []\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() must reject a config with an empty unlock order")
	}
}

func TestValidateCatchesBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tunables)
	}{
		{"empty order", func(c *Tunables) { c.Unlock.Order = nil }},
		{"duplicate order entry", func(c *Tunables) {
			c.Unlock.Order = []engine.TaskType{engine.TaskTyping, engine.TaskTyping}
		}},
		{"zero completions", func(c *Tunables) { c.Unlock.EveryNCompletions = 0 }},
		{"zero tick", func(c *Tunables) { c.Timing.TickMs = 0 }},
		{"zero min interval", func(c *Tunables) { c.Spawn.MinIntervalMs = 0 }},
		{"zero multiplier floor", func(c *Tunables) { c.Timing.MultiplierFloor = 0 }},
	}

	for _, tc := range cases {
		cfg := DefaultTunables()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() accepted a broken config", tc.name)
		}
	}
}

func TestTimeMultiplierDecay(t *testing.T) {
	cfg := DefaultTunables()

	if m := cfg.TimeMultiplier(0); m != 1.5 {
		t.Errorf("TimeMultiplier(0) = %f, want 1.5", m)
	}
	if m := cfg.TimeMultiplier(3); m != 1.2 {
		t.Errorf("TimeMultiplier(3) = %f, want 1.2", m)
	}
	// Decay floors rather than dropping forever.
	if m := cfg.TimeMultiplier(50); m != 0.8 {
		t.Errorf("TimeMultiplier(50) = %f, want the 0.8 floor", m)
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := DefaultTunables()

	if d := cfg.TickInterval(); d != 100*time.Millisecond {
		t.Errorf("TickInterval = %v, want 100ms", d)
	}
	if d := cfg.EscalateInterval(); d != 30*time.Second {
		t.Errorf("EscalateInterval = %v, want 30s", d)
	}
	if d := cfg.FallbackDelay(); d != 25*time.Second {
		t.Errorf("FallbackDelay = %v, want 25s", d)
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultTunables()

	relaxed := base
	ApplyPreset(&relaxed, PresetRelaxed)
	if relaxed.Spawn.BaseIntervalMs <= base.Spawn.BaseIntervalMs {
		t.Error("relaxed preset must slow spawns down")
	}

	overrun := base
	ApplyPreset(&overrun, PresetOverrun)
	if overrun.Spawn.BaseIntervalMs >= base.Spawn.BaseIntervalMs {
		t.Error("overrun preset must speed spawns up")
	}

	fixed := base
	ApplyPreset(&fixed, PresetFixed)
	if fixed.Timing.EscalateEveryMs != 0 {
		t.Errorf("fixed preset EscalateEveryMs = %d, want 0", fixed.Timing.EscalateEveryMs)
	}

	unknown := base
	ApplyPreset(&unknown, Preset("bogus"))
	if unknown.Spawn != base.Spawn || unknown.Timing != base.Timing {
		t.Error("unknown presets must leave the tunables untouched")
	}
}

func TestRulesExtraction(t *testing.T) {
	cfg := DefaultTunables()
	rules := cfg.Rules()

	if rules.UnlockEveryN != cfg.Unlock.EveryNCompletions {
		t.Errorf("UnlockEveryN = %d, want %d", rules.UnlockEveryN, cfg.Unlock.EveryNCompletions)
	}
	if len(rules.UnlockOrder) != len(cfg.Unlock.Order) {
		t.Errorf("UnlockOrder length = %d, want %d", len(rules.UnlockOrder), len(cfg.Unlock.Order))
	}
}
