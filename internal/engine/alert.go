// Package engine implements the alert-triage game state machine: the alert
// lifecycle, the pure state reducer, the alert factory and the task payload
// generators. The package contains pure logic with no external dependencies;
// timers, rendering and persistence live in the platform layers around it.
package engine

import "time"

// TaskType identifies the kind of mini-task an alert requires.
type TaskType string

const (
	TaskTyping   TaskType = "type"
	TaskDrag     TaskType = "drag"
	TaskSort     TaskType = "sort"
	TaskConnect  TaskType = "connect"
	TaskHold     TaskType = "hold"
	TaskTrack    TaskType = "track"
	TaskSentence TaskType = "sentence"
)

// AllTaskTypes returns every task type in declaration order.
func AllTaskTypes() []TaskType {
	return []TaskType{
		TaskTyping, TaskDrag, TaskSort, TaskConnect,
		TaskHold, TaskTrack, TaskSentence,
	}
}

// Urgency classifies how severe an alert is. It is fixed at creation and
// drives both the alert's time budget and its scoring/penalty weight.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyMedium
	UrgencyHigh
	UrgencyCritical
)

// String returns a human-readable name for the urgency.
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyMedium:
		return "medium"
	case UrgencyHigh:
		return "high"
	case UrgencyCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Scoring and penalty tables. These constants are the entire difficulty
// curve, the balancing depends on their exact values.
var (
	scoreMultiplier = map[Urgency]int{
		UrgencyLow:      1,
		UrgencyMedium:   2,
		UrgencyHigh:     3,
		UrgencyCritical: 4,
	}
	failPenalty = map[Urgency]int{
		UrgencyLow:      5,
		UrgencyMedium:   10,
		UrgencyHigh:     15,
		UrgencyCritical: 25,
	}
	expiryPenalty = map[Urgency]int{
		UrgencyLow:      4,
		UrgencyMedium:   8,
		UrgencyHigh:     12,
		UrgencyCritical: 20,
	}
	baseTimeLimit = map[Urgency]float64{
		UrgencyLow:      25,
		UrgencyMedium:   18,
		UrgencyHigh:     12,
		UrgencyCritical: 8,
	}
)

// Alert is a spawned, time-boxed unit of work tied to one task type.
type Alert struct {
	ID          string
	TaskType    TaskType
	Title       string
	Description string
	Urgency     Urgency
	TimeLimit   float64 // seconds allotted, fixed at creation
	TimeRemain  float64 // seconds left, decremented by ticks
	CreatedAt   time.Time
	IsDecoy     bool // flavor hook for presentation, ignored by game logic
	Payload     TaskPayload
}

// Expired reports whether the alert's time budget is used up.
func (a Alert) Expired() bool {
	return a.TimeRemain <= 0
}
