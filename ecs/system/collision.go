package system

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/ecs/entity"
	"github.com/milk9111/flappycube/settings"
)

// CollisionSystem tests the player against every ground and pipe block. A hit
// tints the block a random colour and ends the game.
//
// Positions are multiplied by scale before comparing: the model transform
// applies scale after translation, so a scaled entity's on-screen offset is
// position*scale.
type CollisionSystem struct {
	mode string
	rng  *rand.Rand
}

func NewCollisionSystem(mode string, rng *rand.Rand) *CollisionSystem {
	if mode == "" {
		mode = settings.CollisionAABB
	}
	return &CollisionSystem{mode: mode, rng: rng}
}

type box struct {
	x, y   float64
	sx, sy float64
}

func scaledBox(w *ecs.World, e ecs.Entity) (box, bool) {
	pos, ok := ecs.Get[*component.Position](w, e, component.KindPosition)
	if !ok {
		return box{}, false
	}
	scale, ok := ecs.Get[*component.Scale](w, e, component.KindScale)
	if !ok {
		return box{}, false
	}
	return box{x: pos.X * scale.X, y: pos.Y * scale.Y, sx: scale.X, sy: scale.Y}, true
}

func (c *CollisionSystem) Update(w *ecs.World) {
	ctrl, ok := ecs.Resource[component.Controls](w)
	if !ok {
		return
	}
	player, ok := w.First(entity.TagPlayer)
	if !ok {
		return
	}
	pb, ok := scaledBox(w, player)
	if !ok {
		return
	}

	blocks := append(w.Collection(entity.TagGroundBlock), w.Collection(entity.TagPipeBlock)...)
	for _, e := range blocks {
		bb, ok := scaledBox(w, e)
		if !ok || !c.overlaps(pb, bb) {
			continue
		}

		if diffuse, ok := ecs.Get[*component.Diffuse](w, e, component.KindDiffuse); ok {
			diffuse.R = c.rng.Float64()
			diffuse.G = c.rng.Float64()
			diffuse.B = c.rng.Float64()
		}
		if !ctrl.GameOver {
			score := 0
			if s, ok := ecs.Resource[component.Score](w); ok {
				score = s.Value
			}
			w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Data: ecs.GameOverEvent{Block: e, Score: score}})
		}
		ctrl.GameOver = true
	}
}

func (c *CollisionSystem) overlaps(p, b box) bool {
	if c.mode == settings.CollisionAABB {
		pbb := cp.NewBBForExtents(cp.Vector{X: p.x, Y: p.y}, p.sx/2, p.sy/2)
		bbb := cp.NewBBForExtents(cp.Vector{X: b.x, Y: b.y}, b.sx/2, b.sy/2)
		// strict, so touching edges do not count
		return pbb.L < bbb.R && bbb.L < pbb.R && pbb.B < bbb.T && bbb.B < pbb.T
	}
	return legacyAxisOverlap(p.x, p.sx, b.x, b.sx) && legacyAxisOverlap(p.y, p.sy, b.y, b.sy)
}

// legacyAxisOverlap is the legacy per-axis test. When the player is on the
// positive side of the block it measures from |p| rather than p, which is
// only exact while both sit on the same side of the origin.
func legacyAxisOverlap(p, ps, b, bs float64) bool {
	reach := bs/2 + ps/2
	switch {
	case p > b:
		return math.Abs(math.Abs(p)-b) < reach
	case p < b:
		return math.Abs(b-p) < reach
	default:
		return true
	}
}
