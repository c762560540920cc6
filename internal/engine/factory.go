package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Flavor text per task type. Cosmetic only; the pair picked for an alert also
// serves as its de-duplication triple together with the task type.
var alertFlavors = map[TaskType][]struct {
	title, description string
}{
	TaskTyping: {
		{"Override Required", "Type the override sequence before lockout"},
		{"Checksum Mismatch", "Re-enter the verification code"},
		{"Console Locked", "Key in the release code"},
	},
	TaskDrag: {
		{"Module Displaced", "Drag the module back to its bay"},
		{"Cargo Shift", "Route each crate to its hold"},
		{"Relay Loose", "Seat the relay in the marked slot"},
	},
	TaskSort: {
		{"Queue Corrupted", "Reorder the job queue by priority"},
		{"Log Scramble", "Sort the log entries chronologically"},
		{"Manifest Jumbled", "Restore the manifest ordering"},
	},
	TaskConnect: {
		{"Bus Severed", "Reconnect each line to its terminal"},
		{"Patchboard Down", "Match inputs to their outputs"},
		{"Circuit Open", "Pair the contacts to close the loop"},
	},
	TaskHold: {
		{"Pressure Spike", "Hold the vent release until stable"},
		{"Thermal Runaway", "Keep the damper engaged"},
		{"Surge Incoming", "Hold the breaker closed"},
	},
	TaskTrack: {
		{"Signal Drift", "Keep the cursor on the moving carrier"},
		{"Target Wander", "Track the beacon until lock"},
		{"Dish Misaligned", "Follow the satellite trace"},
	},
	TaskSentence: {
		{"Broadcast Garbled", "Retransmit the status sentence verbatim"},
		{"Ack Required", "Type the acknowledgement phrase"},
		{"Relay Readback", "Read the directive back exactly"},
	},
}

// GenerateAlert synthesizes a new alert for the current pressure level.
// Urgency is drawn from a stochastic threshold ladder: difficulty and entropy
// stack the thresholds so the probability mass of the urgent tiers grows
// monotonically with both. The only side effects are draws from rng; now is
// used for the id and creation timestamp.
func GenerateAlert(rng *rand.Rand, now time.Time, difficulty, entropy, trust int, allowed []TaskType) Alert {
	if len(allowed) == 0 {
		allowed = AllTaskTypes()
	}
	taskType := allowed[rng.Intn(len(allowed))]

	urgency := rollUrgency(rng, difficulty, entropy)

	timeLimit := baseTimeLimit[urgency] - 0.5*float64(difficulty)
	if timeLimit < 5 {
		timeLimit = 5
	}

	isDecoy := false
	if trust < initialTrust {
		isDecoy = rng.Float64() < float64(initialTrust-trust)/100
	}

	flavors := alertFlavors[taskType]
	flavor := flavors[rng.Intn(len(flavors))]

	return Alert{
		ID:          fmt.Sprintf("alert-%d-%03d", now.UnixNano(), rng.Intn(1000)),
		TaskType:    taskType,
		Title:       flavor.title,
		Description: flavor.description,
		Urgency:     urgency,
		TimeLimit:   timeLimit,
		TimeRemain:  timeLimit,
		CreatedAt:   now,
		IsDecoy:     isDecoy,
		Payload:     GeneratePayload(rng, taskType),
	}
}

// rollUrgency draws a uniform value in [0,100) against stacked thresholds.
func rollUrgency(rng *rand.Rand, difficulty, entropy int) Urgency {
	roll := rng.Float64() * 100

	criticalCut := 5 + 2*float64(difficulty) + 0.5*float64(entropy)
	highCut := criticalCut + 15 + 3*float64(difficulty)
	mediumCut := highCut + 30

	switch {
	case roll < criticalCut:
		return UrgencyCritical
	case roll < highCut:
		return UrgencyHigh
	case roll < mediumCut:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}
