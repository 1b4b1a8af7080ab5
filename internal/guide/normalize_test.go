package guide

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeRenumbersSteps(t *testing.T) {
	g := Guide{
		Steps: []Step{
			{Number: 7, Title: "first"},
			{Number: 0, Title: "second"},
			{Number: 2, Title: "third"},
		},
	}

	g.Normalize()

	for i, s := range g.Steps {
		if s.Number != i+1 {
			t.Errorf("step %d: got number %d, want %d", i, s.Number, i+1)
		}
	}
	if g.Steps[0].Title != "first" || g.Steps[2].Title != "third" {
		t.Error("Normalize must not reorder steps")
	}
}

func TestNormalizeReplacesNilSlices(t *testing.T) {
	var g Guide
	g.Normalize()

	if g.Steps == nil || g.Troubleshooting == nil || g.Safety == nil {
		t.Fatal("expected all nil slices to be replaced with empty ones")
	}

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("normalized guide must not serialize null arrays, got %s", data)
	}
}

func TestNormalizePreservesExistingContent(t *testing.T) {
	g := Guide{
		Title:           "How to replace a bike chain",
		Safety:          []string{"wear gloves"},
		Troubleshooting: []TroubleshootingEntry{{Issue: "chain slips", Fix: "check tension"}},
	}

	g.Normalize()

	if len(g.Safety) != 1 || g.Safety[0] != "wear gloves" {
		t.Errorf("safety modified: %v", g.Safety)
	}
	if len(g.Troubleshooting) != 1 || g.Troubleshooting[0].Fix != "check tension" {
		t.Errorf("troubleshooting modified: %v", g.Troubleshooting)
	}
}
