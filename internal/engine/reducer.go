package engine

import "math"

// Rules are the progression tunables the reducer needs. They come from the
// config layer so balancing does not require touching engine code.
type Rules struct {
	// UnlockOrder is the fixed order in which task types become available.
	// The first entry is always pre-unlocked.
	UnlockOrder []TaskType
	// UnlockEveryN is the number of completions per organic tier unlock.
	UnlockEveryN int
}

// DefaultRules returns the stock progression rules.
func DefaultRules() Rules {
	return Rules{
		UnlockOrder: []TaskType{
			TaskTyping, TaskDrag, TaskSort, TaskHold, TaskConnect, TaskTrack,
		},
		UnlockEveryN: 5,
	}
}

// Reducer is the pure state-transition function over the closed action set.
// It never fails: unknown actions and operations against missing ids return
// the input state unchanged, pointer-identical, so consumers can detect
// changes by comparison.
type Reducer struct {
	rules Rules
}

// NewReducer creates a reducer with the given progression rules.
func NewReducer(rules Rules) *Reducer {
	if len(rules.UnlockOrder) == 0 {
		rules.UnlockOrder = DefaultRules().UnlockOrder
	}
	if rules.UnlockEveryN <= 0 {
		rules.UnlockEveryN = DefaultRules().UnlockEveryN
	}
	return &Reducer{rules: rules}
}

// InitialState returns a fresh idle state with the first panel unlocked.
func (r *Reducer) InitialState() *State {
	return &State{
		Status:         StatusIdle,
		Stability:      MaxStability,
		Difficulty:     1,
		AITrust:        initialTrust,
		UnlockedPanels: []TaskType{r.rules.UnlockOrder[0]},
	}
}

// Reduce applies an action and returns the next state. No-op transitions
// return s itself.
func (r *Reducer) Reduce(s *State, action Action) *State {
	switch a := action.(type) {
	case Boot:
		next := r.InitialState()
		next.Status = StatusBooting
		next.Muted = s.Muted
		next.TutorialCompleted = s.TutorialCompleted
		return next

	case ShowStart:
		if s.Status == StatusStartScreen {
			return s
		}
		next := s.clone()
		next.Status = StatusStartScreen
		return next

	case StartTutorial:
		next := r.InitialState()
		next.Status = StatusTutorial
		next.Muted = s.Muted
		next.TutorialCompleted = false
		next.RunStart = a.At
		// The tutorial starts with two panels so the player sees variety.
		if len(r.rules.UnlockOrder) > 1 {
			next.UnlockedPanels = append(next.UnlockedPanels, r.rules.UnlockOrder[1])
		}
		return next

	case StartGame:
		next := r.InitialState()
		next.Status = StatusPlaying
		next.Muted = s.Muted
		next.TutorialCompleted = true
		next.RunStart = a.At
		return next

	case PauseGame:
		if s.Status != StatusPlaying {
			return s
		}
		next := s.clone()
		next.Status = StatusPaused
		return next

	case ResumeGame:
		if s.Status != StatusPaused {
			return s
		}
		next := s.clone()
		next.Status = StatusPlaying
		return next

	case EndGame:
		if s.Status == StatusGameOver {
			return s
		}
		next := s.clone()
		next.Status = StatusGameOver
		return next

	case AddAlert:
		return r.addAlert(s, a.Alert)

	case RemoveAlert:
		if !s.HasAlert(a.ID) {
			return s
		}
		next := s.clone()
		next.removeAlert(a.ID)
		return next

	case SelectAlert:
		if s.HasAlert(a.ID) {
			if s.ActiveAlertID == a.ID {
				return s
			}
			next := s.clone()
			next.ActiveAlertID = a.ID
			return next
		}
		if s.ActiveAlertID == "" {
			return s
		}
		next := s.clone()
		next.ActiveAlertID = ""
		return next

	case CompleteTask:
		return r.completeTask(s, a)

	case FailTask:
		return r.failTask(s, a)

	case SetStability:
		value := clamp(a.Value, 0, MaxStability)
		if value == s.Stability {
			return s
		}
		next := s.clone()
		next.Stability = value
		next.applyGameOverRule()
		return next

	case Tick:
		return r.tick(s, a)

	case RaiseDifficulty:
		if s.Difficulty >= MaxDifficulty {
			return s
		}
		next := s.clone()
		next.Difficulty++
		return next

	case UnlockPanel:
		if s.PanelUnlocked(a.Type) {
			return s
		}
		next := s.clone()
		next.Tier++
		next.UnlockedPanels = append(next.UnlockedPanels, a.Type)
		return next

	case ToggleMute:
		next := s.clone()
		next.Muted = !next.Muted
		return next
	}

	// Unknown action: referential no-op.
	return s
}

func (r *Reducer) addAlert(s *State, alert Alert) *State {
	// Alerts only exist inside a run. A spawn racing a run transition is
	// dropped here rather than guarded against at every timer site.
	if s.Status != StatusPlaying && s.Status != StatusTutorial {
		return s
	}
	// Redundant scheduling must not double-count: drop both id duplicates
	// and live alerts that are the same work item under a fresh id.
	if s.HasAlert(alert.ID) {
		return s
	}
	for _, live := range s.Alerts {
		if live.TaskType == alert.TaskType &&
			live.Title == alert.Title &&
			live.Description == alert.Description {
			return s
		}
	}
	next := s.clone()
	next.Alerts = append(next.Alerts, alert)
	return next
}

func (r *Reducer) completeTask(s *State, a CompleteTask) *State {
	alert, ok := s.Alert(a.ID)
	if !ok {
		return s
	}

	next := s.clone()
	next.removeAlert(a.ID)

	points := 100 + int(math.Floor(alert.TimeRemain*2)) + a.Bonus
	next.Score += points * scoreMultiplier[alert.Urgency]
	next.CompletedTasks++
	next.Streak++
	if next.Streak > next.MaxStreak {
		next.MaxStreak = next.Streak
	}
	next.Stability = clamp(next.Stability+5, 0, MaxStability)
	next.Entropy = max(0, next.Entropy-8)
	next.CommandDebt = max(0, next.CommandDebt-3)
	next.AITrust = clamp(next.AITrust+1, 0, MaxTrust)
	next.CompletionTimes = append(next.CompletionTimes, a.At)

	// Organic tier unlock: throughput-driven, at most one advance per
	// completion even if the threshold was crossed by more.
	if next.Status == StatusPlaying &&
		next.CompletedTasks >= r.rules.UnlockEveryN*(next.Tier+1) &&
		next.Tier+1 < len(r.rules.UnlockOrder) {
		next.Tier++
		unlock := r.rules.UnlockOrder[next.Tier]
		if !next.PanelUnlocked(unlock) {
			next.UnlockedPanels = append(next.UnlockedPanels, unlock)
		}
	}

	return next
}

func (r *Reducer) failTask(s *State, a FailTask) *State {
	next := s.clone()

	// Default to the low-tier penalty when the alert already expired or was
	// otherwise removed; the UI race must still cost something consistent.
	penalty := failPenalty[UrgencyLow]
	if alert, ok := next.Alert(a.ID); ok {
		penalty = failPenalty[alert.Urgency]
		next.removeAlert(a.ID)
	}

	next.FailedTasks++
	next.Streak = 0
	next.Stability = max(0, next.Stability-penalty)
	next.Entropy += 10
	next.CommandDebt += 5
	next.AITrust = max(0, next.AITrust-5)
	next.applyGameOverRule()
	return next
}

func (r *Reducer) tick(s *State, a Tick) *State {
	if s.Status != StatusPlaying && s.Status != StatusTutorial {
		return s
	}

	next := s.clone()
	next.Elapsed += a.Delta

	valid := next.Alerts[:0]
	var expired []Alert
	for _, alert := range next.Alerts {
		alert.TimeRemain -= a.Delta
		if alert.Expired() {
			expired = append(expired, alert)
			continue
		}
		valid = append(valid, alert)
	}
	next.Alerts = valid

	if len(expired) > 0 {
		loss := 0
		for _, alert := range expired {
			loss += expiryPenalty[alert.Urgency]
			if next.ActiveAlertID == alert.ID {
				next.ActiveAlertID = ""
			}
		}
		next.FailedTasks += len(expired)
		next.Streak = 0
		next.Stability = max(0, next.Stability-loss)
		next.Entropy += 5 * len(expired)
	}

	next.applyGameOverRule()
	return next
}

// applyGameOverRule flips the run to game over when stability is exhausted
// mid-game. Happens in the same transition that drained stability: there is
// never an observable state with zero stability still playing.
func (s *State) applyGameOverRule() {
	if s.Stability <= 0 && s.Status == StatusPlaying {
		s.Status = StatusGameOver
	}
}

func (s *State) removeAlert(id string) {
	for i, a := range s.Alerts {
		if a.ID == id {
			s.Alerts = append(s.Alerts[:i], s.Alerts[i+1:]...)
			break
		}
	}
	if s.ActiveAlertID == id {
		s.ActiveAlertID = ""
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
