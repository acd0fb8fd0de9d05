package system

import (
	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/ecs/entity"
)

// DebugMovementSystem moves the player directly with the arrow keys. It
// stands in for scrolling and gravity when tuning collisions.
type DebugMovementSystem struct {
	speed float64
}

func NewDebugMovementSystem(speed float64) *DebugMovementSystem {
	return &DebugMovementSystem{speed: speed}
}

func (d *DebugMovementSystem) Update(w *ecs.World) {
	ctrl, ok := ecs.Resource[component.Controls](w)
	if !ok {
		return
	}
	player, ok := w.First(entity.TagPlayer)
	if !ok {
		return
	}
	pos, ok := ecs.Get[*component.Position](w, player, component.KindPosition)
	if !ok {
		return
	}
	if ctrl.PlayerUp {
		pos.Y += d.speed
	}
	if ctrl.PlayerDown {
		pos.Y -= d.speed
	}
	if ctrl.PlayerLeft {
		pos.X -= d.speed
	}
	if ctrl.PlayerRight {
		pos.X += d.speed
	}
}
