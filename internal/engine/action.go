package engine

import "time"

// Action is the closed set of state transitions the reducer understands.
// Concrete actions are plain payload structs; the reducer switches over them.
type Action interface {
	isAction()
}

// Boot resets everything except session-scoped fields and enters the boot
// sequence.
type Boot struct{}

// ShowStart moves from the boot sequence to the start screen.
type ShowStart struct{}

// StartTutorial begins a fresh tutorial run.
type StartTutorial struct {
	At time.Time
}

// StartGame begins a fresh scored run.
type StartGame struct {
	At time.Time
}

// PauseGame suspends a running game.
type PauseGame struct{}

// ResumeGame continues a paused game.
type ResumeGame struct{}

// EndGame forces the run to game over from any status.
type EndGame struct{}

// AddAlert appends a freshly generated alert to the queue. Duplicate
// submissions (same id, or same type/title/description triple already live)
// are dropped silently.
type AddAlert struct {
	Alert Alert
}

// RemoveAlert drops an alert by id. A no-op if the id is not live.
type RemoveAlert struct {
	ID string
}

// SelectAlert points the active selection at a live alert, or clears the
// selection when the id is not live.
type SelectAlert struct {
	ID string
}

// CompleteTask resolves an alert successfully. A no-op if the id is not live.
type CompleteTask struct {
	ID    string
	Bonus int
	At    time.Time
}

// FailTask records a failed resolution. The alert is removed if still live;
// the penalty applies either way (low-urgency default when already gone).
type FailTask struct {
	ID string
}

// SetStability clamps stability to the given value.
type SetStability struct {
	Value int
}

// Tick advances all alert countdowns by Delta seconds and expires alerts
// whose budget ran out. Only honored while playing or in the tutorial.
type Tick struct {
	Delta float64
}

// RaiseDifficulty increments difficulty, saturating at the maximum.
type RaiseDifficulty struct{}

// UnlockPanel force-unlocks a task type, advancing the tier. A no-op if the
// type is already unlocked.
type UnlockPanel struct {
	Type TaskType
}

// ToggleMute flips the session-scoped mute flag.
type ToggleMute struct{}

func (Boot) isAction()            {}
func (ShowStart) isAction()       {}
func (StartTutorial) isAction()   {}
func (StartGame) isAction()       {}
func (PauseGame) isAction()       {}
func (ResumeGame) isAction()      {}
func (EndGame) isAction()         {}
func (AddAlert) isAction()        {}
func (RemoveAlert) isAction()     {}
func (SelectAlert) isAction()     {}
func (CompleteTask) isAction()    {}
func (FailTask) isAction()        {}
func (SetStability) isAction()    {}
func (Tick) isAction()            {}
func (RaiseDifficulty) isAction() {}
func (UnlockPanel) isAction()     {}
func (ToggleMute) isAction()      {}
