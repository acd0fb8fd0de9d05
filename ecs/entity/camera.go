package entity

import (
	"math"

	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/settings"
)

// NewCamera builds the orbit camera: azimuth pi/2 and elevation 0 put it on
// the +z axis at the configured radius, looking at the origin.
func NewCamera(w *ecs.World, cfg *settings.Settings) (ecs.Entity, error) {
	camera := w.CreateEntity(TagCamera)
	projection := component.NewProjection(cfg.Camera.Fov, cfg.Aspect(), cfg.Camera.Near, cfg.Camera.ViewDistance)
	if cfg.Camera.Radius > 0 {
		projection.Radius = cfg.Camera.Radius
	}
	if err := addAll(w, camera, TagCamera,
		component.NewPosition(0, 0, projection.Radius, 1),
		component.NewRotation(math.Pi/2, 0, 0, 1),
		projection,
	); err != nil {
		return 0, err
	}
	return camera, nil
}
