package main

import (
	"testing"

	"github.com/milk9111/flappycube/ecs/entity"
	"github.com/milk9111/flappycube/settings"
)

func TestRunStopsAtFrameLimit(t *testing.T) {
	res, err := Run(settings.Default(), 1, 10, entity.RollGapRow)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Frames != 10 {
		t.Fatalf("expected 10 frames, got %d", res.Frames)
	}
	if res.Crashed {
		t.Fatal("player crashed within 10 frames")
	}
	if res.Score != 0 {
		t.Fatalf("expected no score yet, got %d", res.Score)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := settings.Default()
	a, err := Run(cfg, 7, 600, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(cfg, 7, 600, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a != b {
		t.Fatalf("same seed gave different results: %+v vs %+v", a, b)
	}
	if a.Frames == 0 || a.Frames > 600 {
		t.Fatalf("frames out of range: %d", a.Frames)
	}
	if a.Score < 0 {
		t.Fatalf("negative score %d", a.Score)
	}
}
