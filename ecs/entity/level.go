package entity

import (
	"math/rand/v2"

	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/settings"
)

// GapRoller picks the row a pipe column's gap starts at.
type GapRoller func(rng *rand.Rand, startRow, column int) int

// RollGapRow picks the row a pipe column's gap starts at, uniformly over the
// column's rows.
func RollGapRow(rng *rand.Rand, startRow, column int) int {
	return startRow + rng.IntN(column)
}

// PipeBlockY places the block at row: rows at or above the gap are lifted by
// the gap height, rows below it stay put.
func PipeBlockY(row, gapRow int, gapHeight float64) float64 {
	if row >= gapRow {
		return float64(row) + gapHeight
	}
	return float64(row)
}

// NewLevel builds the ground strip and the pipe columns. Pipe blocks are
// created column by column, bottom row first; the movement system relies on
// that order. A nil roll falls back to RollGapRow.
func NewLevel(w *ecs.World, cfg *settings.Settings, rng *rand.Rand, roll GapRoller) error {
	if roll == nil {
		roll = RollGapRow
	}
	lvl := cfg.Level
	if cfg.Debug.Collision {
		_, err := newBlock(w, TagGroundBlock, 2, 0, cfg.Textures.Ground)
		return err
	}

	half := lvl.GroundBlocks / 2
	for i := 0; i < lvl.GroundBlocks; i++ {
		if _, err := newBlock(w, TagGroundBlock, float64(i-half), lvl.GroundY, cfg.Textures.Ground); err != nil {
			return err
		}
	}

	for i := 0; i < lvl.Pipes; i++ {
		x := float64(i)*lvl.PipeSpacing + lvl.PipeStartX
		gap := roll(rng, lvl.PipeStartY, lvl.PipeColumn)
		for j := 0; j < lvl.PipeColumn; j++ {
			row := j + lvl.PipeStartY
			if _, err := newBlock(w, TagPipeBlock, x, PipeBlockY(row, gap, lvl.GapHeight), cfg.Textures.Pipe); err != nil {
				return err
			}
		}
	}
	return nil
}

// NewScene builds everything a game needs: player, camera, lights, level.
func NewScene(w *ecs.World, cfg *settings.Settings, rng *rand.Rand, roll GapRoller) error {
	if _, err := NewPlayer(w, cfg); err != nil {
		return err
	}
	if _, err := NewCamera(w, cfg); err != nil {
		return err
	}
	if _, _, err := NewLights(w); err != nil {
		return err
	}
	return NewLevel(w, cfg, rng, roll)
}
