package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// TaskPayload is the puzzle content a presentation layer needs to run one
// mini-task instance. Payloads are generated once at alert creation and are
// structurally valid by construction; the reducer never inspects them.
type TaskPayload interface {
	isPayload()
}

// TypingPayload is a code the operator must type back exactly.
type TypingPayload struct {
	Code string
}

// SortItem is one sortable element; IDs are pairwise distinct within a payload.
type SortItem struct {
	ID    string
	Value int
}

// SortPayload is a shuffled set of items to order by value.
type SortPayload struct {
	Items []SortItem
}

// DragPayload maps draggable items onto target zones, one zone per item.
type DragPayload struct {
	Items   []string
	Zones   []string
	Mapping map[string]string // item id -> zone id
}

// ConnectPayload pairs left nodes with right nodes. Pairs is a bijection
// between the two equal-sized sets.
type ConnectPayload struct {
	Left  []string
	Right []string
	Pairs map[string]string // left id -> right id
}

// HoldPayload names a key to hold and for how long.
type HoldPayload struct {
	Key     string
	Seconds float64
}

// TrackPoint is one waypoint of a tracking path, in unit coordinates.
type TrackPoint struct {
	X, Y float64
}

// TrackPayload is a moving-target path to follow.
type TrackPayload struct {
	Waypoints []TrackPoint
	Seconds   float64
}

// SentencePayload is a phrase to retransmit verbatim.
type SentencePayload struct {
	Text string
}

func (TypingPayload) isPayload()   {}
func (SortPayload) isPayload()     {}
func (DragPayload) isPayload()     {}
func (ConnectPayload) isPayload()  {}
func (HoldPayload) isPayload()     {}
func (TrackPayload) isPayload()    {}
func (SentencePayload) isPayload() {}

// GeneratePayload produces the puzzle content for one task instance.
func GeneratePayload(rng *rand.Rand, t TaskType) TaskPayload {
	switch t {
	case TaskTyping:
		return GenerateTypingPayload(rng)
	case TaskDrag:
		return GenerateDragPayload(rng)
	case TaskSort:
		return GenerateSortPayload(rng)
	case TaskConnect:
		return GenerateConnectPayload(rng)
	case TaskHold:
		return GenerateHoldPayload(rng)
	case TaskTrack:
		return GenerateTrackPayload(rng)
	case TaskSentence:
		return GenerateSentencePayload(rng)
	default:
		return GenerateTypingPayload(rng)
	}
}

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateTypingPayload produces a short segmented override code.
func GenerateTypingPayload(rng *rand.Rand) TypingPayload {
	var b strings.Builder
	for seg := 0; seg < 3; seg++ {
		if seg > 0 {
			b.WriteByte('-')
		}
		for i := 0; i < 4; i++ {
			b.WriteByte(codeAlphabet[rng.Intn(len(codeAlphabet))])
		}
	}
	return TypingPayload{Code: b.String()}
}

// GenerateSortPayload produces 4-6 items with distinct ids and distinct
// values in shuffled order.
func GenerateSortPayload(rng *rand.Rand) SortPayload {
	n := 4 + rng.Intn(3)
	values := rng.Perm(n * 10) // distinct by construction
	items := make([]SortItem, n)
	for i := range items {
		items[i] = SortItem{
			ID:    fmt.Sprintf("job-%d", i+1),
			Value: values[i],
		}
	}
	rng.Shuffle(n, func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return SortPayload{Items: items}
}

// GenerateDragPayload produces an item-to-zone assignment with exactly one
// zone per item.
func GenerateDragPayload(rng *rand.Rand) DragPayload {
	n := 3 + rng.Intn(3)
	items := make([]string, n)
	zones := make([]string, n)
	for i := 0; i < n; i++ {
		items[i] = fmt.Sprintf("module-%c", 'A'+i)
		zones[i] = fmt.Sprintf("bay-%d", i+1)
	}
	mapping := make(map[string]string, n)
	for i, zi := range rng.Perm(n) {
		mapping[items[i]] = zones[zi]
	}
	return DragPayload{Items: items, Zones: zones, Mapping: mapping}
}

// GenerateConnectPayload produces equal-sized left/right node sets and a
// random bijection between them.
func GenerateConnectPayload(rng *rand.Rand) ConnectPayload {
	n := 3 + rng.Intn(3)
	left := make([]string, n)
	right := make([]string, n)
	for i := 0; i < n; i++ {
		left[i] = fmt.Sprintf("in-%d", i+1)
		right[i] = fmt.Sprintf("out-%d", i+1)
	}
	pairs := make(map[string]string, n)
	for i, ri := range rng.Perm(n) {
		pairs[left[i]] = right[ri]
	}
	return ConnectPayload{Left: left, Right: right, Pairs: pairs}
}

var holdKeys = []string{"space", "v", "b", "h"}

// GenerateHoldPayload produces a key and a hold duration of 1.5-4 seconds.
func GenerateHoldPayload(rng *rand.Rand) HoldPayload {
	return HoldPayload{
		Key:     holdKeys[rng.Intn(len(holdKeys))],
		Seconds: 1.5 + rng.Float64()*2.5,
	}
}

// GenerateTrackPayload produces a waypoint path in the unit square.
func GenerateTrackPayload(rng *rand.Rand) TrackPayload {
	n := 4 + rng.Intn(5)
	points := make([]TrackPoint, n)
	for i := range points {
		points[i] = TrackPoint{X: rng.Float64(), Y: rng.Float64()}
	}
	return TrackPayload{
		Waypoints: points,
		Seconds:   2 + rng.Float64()*3,
	}
}

var (
	sentenceSubjects = []string{"reactor", "uplink", "backup array", "cooling loop", "telemetry"}
	sentenceStates   = []string{"nominal", "degraded", "restored", "isolated", "holding"}
	sentenceSuffixes = []string{"confirm and proceed", "standing by", "awaiting orders", "logging complete"}
)

// GenerateSentencePayload assembles a status phrase from fixed word banks.
func GenerateSentencePayload(rng *rand.Rand) SentencePayload {
	return SentencePayload{
		Text: fmt.Sprintf("%s %s, %s",
			sentenceSubjects[rng.Intn(len(sentenceSubjects))],
			sentenceStates[rng.Intn(len(sentenceStates))],
			sentenceSuffixes[rng.Intn(len(sentenceSuffixes))]),
	}
}
