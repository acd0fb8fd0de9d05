package entity

import (
	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
)

// NewLights builds the fixed global light and the light that follows the
// player. Both are directional (w = 0).
func NewLights(w *ecs.World) (global, player ecs.Entity, err error) {
	global = w.CreateEntity(TagGlobalLight)
	if err := addAll(w, global, TagGlobalLight, light(-10, 10, 10)...); err != nil {
		return 0, 0, err
	}
	player = w.CreateEntity(TagPlayerLight)
	if err := addAll(w, player, TagPlayerLight, light(0, 0, 0)...); err != nil {
		return 0, 0, err
	}
	return global, player, nil
}

func light(x, y, z float64) []ecs.Component {
	return []ecs.Component{
		component.NewPosition(x, y, z, 0),
		component.NewAmbient(0.2, 0.2, 0.2, 1),
		component.NewDiffuse(1, 1, 1, 1),
		component.NewSpecular(1, 1, 1, 1, 100),
	}
}
