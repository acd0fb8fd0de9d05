package system

import (
	"math"

	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/ecs/entity"
	"github.com/milk9111/flappycube/settings"
)

// GravitySystem integrates the player's vertical motion: constant gravity down
// to a terminal fall speed, a one-shot jump impulse, and the y of attached
// children.
type GravitySystem struct {
	gravity   float64
	maxFall   float64
	jumpSpeed float64
}

func NewGravitySystem(cfg *settings.Settings) *GravitySystem {
	return &GravitySystem{
		gravity:   cfg.Player.Gravity,
		maxFall:   cfg.Player.MaxFallSpeed,
		jumpSpeed: cfg.Player.JumpSpeed,
	}
}

func (g *GravitySystem) Update(w *ecs.World) {
	player, ok := w.First(entity.TagPlayer)
	if !ok {
		return
	}
	vel, ok := ecs.Get[*component.Velocity](w, player, component.KindVelocity)
	if !ok {
		return
	}
	pos, ok := ecs.Get[*component.Position](w, player, component.KindPosition)
	if !ok {
		return
	}

	if vel.Y > g.maxFall {
		vel.Y = math.Max(vel.Y+g.gravity, g.maxFall)
	} else {
		vel.Y = g.maxFall
	}

	if ctrl, ok := ecs.Resource[component.Controls](w); ok && ctrl.PlayerJump {
		if ctrl.PlayerFinishJump {
			vel.Y = g.jumpSpeed
			ctrl.PlayerFinishJump = false
			ctrl.JumpApex = false
		} else if vel.Y == 0 {
			// Apex only; re-arming waits for the key release.
			ctrl.JumpApex = true
		}
	}

	pos.Y += vel.Y

	g.updateChildren(w, player, pos)
}

// updateChildren keeps children rigidly attached on the y axis:
// child.y = (parent.y*parent.scale.y + child.YInitial) / child.scale.y.
func (g *GravitySystem) updateChildren(w *ecs.World, parent ecs.Entity, pos *component.Position) {
	children, ok := ecs.Get[*component.Children](w, parent, component.KindChildren)
	if !ok {
		return
	}
	parentScale := 1.0
	if scale, ok := ecs.Get[*component.Scale](w, parent, component.KindScale); ok {
		parentScale = scale.Y
	}
	for _, child := range children.Entities {
		cpos, ok := ecs.Get[*component.Position](w, child, component.KindPosition)
		if !ok {
			continue
		}
		cscale, ok := ecs.Get[*component.Scale](w, child, component.KindScale)
		if !ok || cscale.Y == 0 {
			continue
		}
		cpos.Y = (pos.Y*parentScale + cpos.YInitial) / cscale.Y
	}
}
