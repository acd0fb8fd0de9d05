package system

import (
	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
)

// InputSource is the platform collaborator that turns device state into
// control flags.
type InputSource interface {
	Poll(c *component.Controls)
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i.source == nil {
		return
	}
	if ctrl, ok := ecs.Resource[component.Controls](w); ok {
		i.source.Poll(ctrl)
	}
}

// Playing is the gate predicate for the simulation systems.
func Playing(w *ecs.World) bool {
	ctrl, ok := ecs.Resource[component.Controls](w)
	return ok && ctrl.Playing()
}
