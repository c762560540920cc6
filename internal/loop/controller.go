// Package loop drives the game engine in wall-clock time. The controller
// owns the four timing processes of a run (countdown tick, jittered alert
// spawn, difficulty escalation, fallback unlock) and is the only component
// that reads the clock or randomness on the engine's behalf.
package loop

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alert-rush/internal/config"
	"github.com/vovakirdan/alert-rush/internal/engine"
)

// Controller schedules engine actions for one game session. All timer
// callbacks re-read live state at fire time and carry the run generation
// they were armed under, so callbacks surviving a run reset detect the
// staleness and self-cancel instead of corrupting the fresh run.
type Controller struct {
	store  *engine.Store
	cfg    config.Tunables
	logger *log.Logger

	mu          sync.Mutex
	rng         *rand.Rand
	gen         uint64 // bumped on every process start/stop; stale guard
	cancel      context.CancelFunc
	fallback    *time.Timer
	lastSpawned engine.TaskType

	unsubscribe func()
}

// New creates a controller bound to the given store. Seed 0 derives a seed
// from the clock. A nil logger discards output.
func New(store *engine.Store, cfg config.Tunables, seed int64, logger *log.Logger) *Controller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		store:  store,
		cfg:    cfg,
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
	}
	c.unsubscribe = store.Subscribe(c.onStateChange)
	return c
}

// Store returns the underlying state container.
func (c *Controller) Store() *engine.Store { return c.store }

// State returns the current state snapshot.
func (c *Controller) State() *engine.State { return c.store.State() }

// Close tears down all timing processes and detaches from the store.
func (c *Controller) Close() {
	c.stopProcesses()
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}

// --- mutator surface for presentation collaborators ---

// Boot resets the session and enters the boot sequence.
func (c *Controller) Boot() { c.store.Dispatch(engine.Boot{}) }

// ShowStart moves to the start screen.
func (c *Controller) ShowStart() { c.store.Dispatch(engine.ShowStart{}) }

// StartTutorial begins a tutorial run.
func (c *Controller) StartTutorial() {
	c.store.Dispatch(engine.StartTutorial{At: time.Now()})
}

// StartGame begins a scored run.
func (c *Controller) StartGame() {
	c.store.Dispatch(engine.StartGame{At: time.Now()})
}

// Pause suspends a running game.
func (c *Controller) Pause() { c.store.Dispatch(engine.PauseGame{}) }

// Resume continues a paused game.
func (c *Controller) Resume() { c.store.Dispatch(engine.ResumeGame{}) }

// EndRun forces the run to game over.
func (c *Controller) EndRun() { c.store.Dispatch(engine.EndGame{}) }

// ToggleMute flips the session mute flag.
func (c *Controller) ToggleMute() { c.store.Dispatch(engine.ToggleMute{}) }

// SelectAlert moves the active selection.
func (c *Controller) SelectAlert(id string) {
	c.store.Dispatch(engine.SelectAlert{ID: id})
}

// CompleteTask resolves an alert successfully with an optional bonus.
func (c *Controller) CompleteTask(id string, bonus int) {
	c.store.Dispatch(engine.CompleteTask{ID: id, Bonus: bonus, At: time.Now()})
}

// FailTask records a failed resolution.
func (c *Controller) FailTask(id string) {
	c.store.Dispatch(engine.FailTask{ID: id})
}

// Dispatch submits a raw action.
func (c *Controller) Dispatch(a engine.Action) { c.store.Dispatch(a) }

// --- process lifecycle ---

// onStateChange reacts to reducer transitions: entering play or tutorial
// starts the timing processes, leaving them cancels all four synchronously,
// and an organic tier advance re-arms the fallback unlock timer.
func (c *Controller) onStateChange(old, next *engine.State) {
	if old.Status != next.Status {
		switch next.Status {
		case engine.StatusPlaying, engine.StatusTutorial:
			c.startProcesses(next.Status)
		default:
			c.stopProcesses()
			if next.Status == engine.StatusGameOver && old.Status == engine.StatusPlaying {
				c.logger.Info("run over",
					"score", next.Score,
					"completed", next.CompletedTasks,
					"failed", next.FailedTasks,
					"maxStreak", next.MaxStreak)
			}
		}
		return
	}
	if next.Status == engine.StatusPlaying && old.Tier != next.Tier {
		c.armFallback(c.currentGen())
	}
}

func (c *Controller) startProcesses(status engine.Status) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	if c.fallback != nil {
		c.fallback.Stop()
		c.fallback = nil
	}
	c.gen++
	gen := c.gen
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.lastSpawned = ""
	c.mu.Unlock()

	go c.tickLoop(ctx, gen)
	if status == engine.StatusPlaying {
		go c.spawnLoop(ctx, gen)
		if c.cfg.Timing.EscalateEveryMs > 0 {
			go c.escalateLoop(ctx, gen)
		}
		c.armFallback(gen)
	}
}

func (c *Controller) stopProcesses() {
	c.mu.Lock()
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.fallback != nil {
		c.fallback.Stop()
		c.fallback = nil
	}
	c.mu.Unlock()
}

func (c *Controller) currentGen() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

func (c *Controller) live(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen == gen
}

// tickLoop decrements alert countdowns on a fixed cadence. Runs during play
// and tutorial.
func (c *Controller) tickLoop(ctx context.Context, gen uint64) {
	ticker := time.NewTicker(c.cfg.TickInterval())
	defer ticker.Stop()

	delta := float64(c.cfg.Timing.TickMs) / 1000

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if !c.live(gen) {
			return
		}
		st := c.store.State()
		if st.Status != engine.StatusPlaying && st.Status != engine.StatusTutorial {
			return
		}
		c.store.Dispatch(engine.Tick{Delta: delta})
	}
}

// spawnLoop generates alerts on a self-rescheduling, jittered schedule that
// tightens with difficulty, entropy and tier.
func (c *Controller) spawnLoop(ctx context.Context, gen uint64) {
	timer := time.NewTimer(time.Duration(c.cfg.Spawn.FirstDelayMs) * time.Millisecond)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		if !c.live(gen) {
			return
		}
		// Decisions are made against the state at fire time, never against
		// the state that existed when the timer was armed.
		st := c.store.State()
		if st.Status != engine.StatusPlaying {
			return
		}
		c.spawnOne(st)
		timer.Reset(c.nextSpawnDelay(c.store.State()))
	}
}

func (c *Controller) spawnOne(st *engine.State) {
	c.mu.Lock()
	taskType := chooseSpawnType(st, c.lastSpawned, c.rng)
	alert := engine.GenerateAlert(c.rng, time.Now(),
		st.Difficulty, st.Entropy, st.AITrust, []engine.TaskType{taskType})
	c.lastSpawned = taskType
	c.mu.Unlock()

	scale := c.cfg.TimeMultiplier(st.Tier)
	alert.TimeLimit *= scale
	alert.TimeRemain = alert.TimeLimit

	c.logger.Debug("spawn",
		"type", alert.TaskType,
		"urgency", alert.Urgency,
		"timeLimit", alert.TimeLimit)
	c.store.Dispatch(engine.AddAlert{Alert: alert})
}

func (c *Controller) nextSpawnDelay(st *engine.State) time.Duration {
	c.mu.Lock()
	jitter := 0
	if c.cfg.Spawn.JitterMs > 0 {
		jitter = c.rng.Intn(c.cfg.Spawn.JitterMs)
	}
	c.mu.Unlock()
	return spawnInterval(c.cfg.Spawn, st) + time.Duration(jitter)*time.Millisecond
}

// escalateLoop raises difficulty on a fixed cadence; the reducer saturates it.
func (c *Controller) escalateLoop(ctx context.Context, gen uint64) {
	ticker := time.NewTicker(c.cfg.EscalateInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if !c.live(gen) {
			return
		}
		if c.store.State().Status != engine.StatusPlaying {
			return
		}
		c.store.Dispatch(engine.RaiseDifficulty{})
	}
}

// armFallback schedules the one-shot forced unlock of the next tier. It is
// re-armed on every run start and every tier change, so a player who unlocks
// organically keeps pushing the deadline ahead of themselves.
func (c *Controller) armFallback(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fallback != nil {
		c.fallback.Stop()
		c.fallback = nil
	}
	if nextLockedPanel(c.store.State(), c.cfg.Unlock.Order) == "" {
		return
	}

	c.fallback = time.AfterFunc(c.cfg.FallbackDelay(), func() {
		if !c.live(gen) {
			return
		}
		st := c.store.State()
		if st.Status != engine.StatusPlaying {
			return
		}
		target := nextLockedPanel(st, c.cfg.Unlock.Order)
		if target == "" {
			return
		}
		c.logger.Info("fallback unlock", "panel", target, "tier", st.Tier+1)
		c.store.Dispatch(engine.UnlockPanel{Type: target})
	})
}

// chooseSpawnType picks the task type for the next alert: unlocked types
// without a live alert first, the full unlocked set as fallback, avoiding an
// immediate repeat of the previous type when an alternative exists.
func chooseSpawnType(st *engine.State, last engine.TaskType, rng *rand.Rand) engine.TaskType {
	eligible := make([]engine.TaskType, 0, len(st.UnlockedPanels))
	for _, t := range st.UnlockedPanels {
		if !st.HasAlertOfType(t) {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) == 0 {
		eligible = append(eligible, st.UnlockedPanels...)
	}
	if len(eligible) > 1 && last != "" {
		withoutLast := make([]engine.TaskType, 0, len(eligible))
		for _, t := range eligible {
			if t != last {
				withoutLast = append(withoutLast, t)
			}
		}
		if len(withoutLast) > 0 {
			eligible = withoutLast
		}
	}
	return eligible[rng.Intn(len(eligible))]
}

// spawnInterval computes the un-jittered delay until the next spawn.
func spawnInterval(cfg config.SpawnConfig, st *engine.State) time.Duration {
	ms := cfg.BaseIntervalMs -
		st.Difficulty*cfg.DifficultyStepMs -
		st.Entropy*cfg.EntropyStepMs -
		st.Tier*cfg.ReductionPerTierMs
	if ms < cfg.MinIntervalMs {
		ms = cfg.MinIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}

// nextLockedPanel returns the first entry of the unlock order that is not
// yet unlocked, or empty when every panel is available.
func nextLockedPanel(st *engine.State, order []engine.TaskType) engine.TaskType {
	for _, t := range order {
		if !st.PanelUnlocked(t) {
			return t
		}
	}
	return ""
}
