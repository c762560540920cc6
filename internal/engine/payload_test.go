package engine

import (
	"math/rand"
	"testing"
)

func TestSortPayloadDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		p := GenerateSortPayload(rng)
		if len(p.Items) < 4 || len(p.Items) > 6 {
			t.Fatalf("len(Items) = %d, want 4-6", len(p.Items))
		}
		ids := make(map[string]bool)
		values := make(map[int]bool)
		for _, item := range p.Items {
			if ids[item.ID] {
				t.Fatalf("duplicate item id %q", item.ID)
			}
			if values[item.Value] {
				t.Fatalf("duplicate value %d", item.Value)
			}
			ids[item.ID] = true
			values[item.Value] = true
		}
	}
}

func TestDragPayloadIsBijection(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 100; i++ {
		p := GenerateDragPayload(rng)
		if len(p.Items) != len(p.Zones) {
			t.Fatalf("items/zones size mismatch: %d vs %d", len(p.Items), len(p.Zones))
		}
		if len(p.Mapping) != len(p.Items) {
			t.Fatalf("mapping covers %d of %d items", len(p.Mapping), len(p.Items))
		}
		used := make(map[string]bool)
		for _, item := range p.Items {
			zone, ok := p.Mapping[item]
			if !ok {
				t.Fatalf("item %q has no zone", item)
			}
			if used[zone] {
				t.Fatalf("zone %q assigned twice", zone)
			}
			used[zone] = true
		}
	}
}

func TestConnectPayloadIsBijection(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		p := GenerateConnectPayload(rng)
		if len(p.Left) != len(p.Right) {
			t.Fatalf("left/right size mismatch: %d vs %d", len(p.Left), len(p.Right))
		}
		used := make(map[string]bool)
		for _, l := range p.Left {
			r, ok := p.Pairs[l]
			if !ok {
				t.Fatalf("left node %q has no pair", l)
			}
			if used[r] {
				t.Fatalf("right node %q paired twice", r)
			}
			used[r] = true
		}
	}
}

func TestTypingPayloadFormat(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	p := GenerateTypingPayload(rng)
	// Three 4-char segments joined by dashes.
	if len(p.Code) != 14 {
		t.Errorf("len(Code) = %d, want 14 (%q)", len(p.Code), p.Code)
	}
	if p.Code[4] != '-' || p.Code[9] != '-' {
		t.Errorf("Code = %q, want dash-separated segments", p.Code)
	}
}

func TestHoldAndTrackDurations(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		h := GenerateHoldPayload(rng)
		if h.Seconds < 1.5 || h.Seconds > 4 {
			t.Fatalf("hold Seconds = %f, want [1.5, 4]", h.Seconds)
		}
		tr := GenerateTrackPayload(rng)
		if len(tr.Waypoints) < 4 {
			t.Fatalf("track has %d waypoints, want >= 4", len(tr.Waypoints))
		}
		for _, wp := range tr.Waypoints {
			if wp.X < 0 || wp.X > 1 || wp.Y < 0 || wp.Y > 1 {
				t.Fatalf("waypoint (%f, %f) outside the unit square", wp.X, wp.Y)
			}
		}
	}
}

func TestGeneratePayloadCoversEveryType(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	for _, taskType := range AllTaskTypes() {
		p := GeneratePayload(rng, taskType)
		if p == nil {
			t.Errorf("GeneratePayload(%v) = nil", taskType)
		}
	}
}
