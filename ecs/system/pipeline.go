package system

import (
	"math/rand/v2"

	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/entity"
	"github.com/milk9111/flappycube/settings"
)

// NewPipeline returns the per-frame system order: input, the simulation
// systems gated on Playing, then camera, lighting and render. In collision
// debug mode the scroller and gravity are replaced by direct player movement.
// renderer and input may be nil for headless runs; roll may be nil.
func NewPipeline(cfg *settings.Settings, rng *rand.Rand, input InputSource, renderer Renderer, roll entity.GapRoller) *ecs.Scheduler {
	collision := NewCollisionSystem(cfg.Collision.Mode, rng)

	var simulation *ecs.Gate
	if cfg.Debug.Collision {
		simulation = ecs.NewGate(Playing,
			NewDebugMovementSystem(cfg.Player.MoveSpeed),
			collision,
		)
	} else {
		movement := NewMovementSystem(cfg, rng)
		movement.SetGapRoller(roll)
		simulation = ecs.NewGate(Playing,
			movement,
			NewGravitySystem(cfg),
			collision,
		)
	}

	return ecs.NewScheduler(
		NewInputSystem(input),
		simulation,
		NewCameraSystem(renderer, cfg.Camera.Step),
		NewLightingSystem(renderer, cfg.Light.Step, rng),
		NewRenderSystem(renderer),
	)
}
