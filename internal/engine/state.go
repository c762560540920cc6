package engine

import "time"

// Status is the top-level state machine phase.
type Status string

const (
	StatusIdle        Status = "idle"
	StatusBooting     Status = "booting"
	StatusStartScreen Status = "start_screen"
	StatusTutorial    Status = "tutorial"
	StatusPlaying     Status = "playing"
	StatusPaused      Status = "paused"
	StatusGameOver    Status = "game_over"
)

const (
	// MaxStability is the stability cap; reaching 0 while playing ends the run.
	MaxStability = 100
	// MaxDifficulty is the difficulty ceiling.
	MaxDifficulty = 10
	// MaxTrust is the aiTrust cap; decoys only spawn below half of it.
	MaxTrust = 100

	initialTrust = 50
)

// State is the single source of truth for a game session. It is owned by the
// reducer: consumers hold read-only snapshots and submit actions through a
// Store. All mutating transitions clone before writing, so any *State handed
// out stays stable.
type State struct {
	Status Status

	Score     int
	Stability int // [0, MaxStability]

	Alerts        []Alert // live alerts in insertion order
	ActiveAlertID string  // empty, or the id of a live alert

	CompletedTasks int
	FailedTasks    int
	Streak         int
	MaxStreak      int

	Difficulty  int // [1, MaxDifficulty], only increases within a run
	Entropy     int // chaos accumulator, >= 0
	CommandDebt int // >= 0
	AITrust     int // [0, MaxTrust]

	Tier           int        // unlock progression, monotonic within a run
	UnlockedPanels []TaskType // task types available for spawning, never shrinks

	CompletionTimes []time.Time // append-only, for speed-burst detection
	RunStart        time.Time
	Elapsed         float64 // seconds of play time this run

	// Session-scoped: survive run resets.
	Muted             bool
	TutorialCompleted bool
}

// Alert returns the live alert with the given id.
func (s *State) Alert(id string) (Alert, bool) {
	for _, a := range s.Alerts {
		if a.ID == id {
			return a, true
		}
	}
	return Alert{}, false
}

// HasAlert reports whether an alert with the given id is live.
func (s *State) HasAlert(id string) bool {
	_, ok := s.Alert(id)
	return ok
}

// HasAlertOfType reports whether any live alert has the given task type.
func (s *State) HasAlertOfType(t TaskType) bool {
	for _, a := range s.Alerts {
		if a.TaskType == t {
			return true
		}
	}
	return false
}

// PanelUnlocked reports whether the task type is available for spawning.
func (s *State) PanelUnlocked(t TaskType) bool {
	for _, p := range s.UnlockedPanels {
		if p == t {
			return true
		}
	}
	return false
}

// clone makes a deep enough copy for the reducer to mutate safely: the alert
// queue, panel set and timestamp log are copied, everything else is value.
func (s *State) clone() *State {
	next := *s
	next.Alerts = append([]Alert(nil), s.Alerts...)
	next.UnlockedPanels = append([]TaskType(nil), s.UnlockedPanels...)
	next.CompletionTimes = append([]time.Time(nil), s.CompletionTimes...)
	return &next
}
