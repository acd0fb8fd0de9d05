package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/ecs/entity"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// CameraSystem orbits the camera around the origin. The orbit radius lives in
// the projection component; rotation X is the azimuth and Y the elevation.
// View and projection are published every frame.
type CameraSystem struct {
	renderer Renderer
	step     float64
}

func NewCameraSystem(renderer Renderer, step float64) *CameraSystem {
	return &CameraSystem{renderer: renderer, step: step}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camera, ok := w.First(entity.TagCamera)
	if !ok {
		return
	}
	projection, ok := ecs.Get[*component.Projection](w, camera, component.KindProjection)
	if !ok {
		return
	}
	pos, ok := ecs.Get[*component.Position](w, camera, component.KindPosition)
	if !ok {
		return
	}
	rot, ok := ecs.Get[*component.Rotation](w, camera, component.KindRotation)
	if !ok {
		return
	}

	if ctrl, ok := ecs.Resource[component.Controls](w); ok {
		if ctrl.CameraForward {
			projection.Radius -= cs.step
		}
		if ctrl.CameraBackward {
			projection.Radius += cs.step
		}
		if ctrl.CameraUp {
			rot.Y += cs.step
		}
		if ctrl.CameraDown {
			rot.Y -= cs.step
		}
		if ctrl.CameraLeft {
			rot.X += cs.step
		}
		if ctrl.CameraRight {
			rot.X -= cs.step
		}
	}

	pos.X = math.Cos(rot.X) * projection.Radius
	pos.Y = math.Sin(rot.Y) * projection.Radius
	pos.Z = math.Sin(rot.X) * projection.Radius

	if cs.renderer == nil {
		return
	}
	cs.renderer.SetUniform(UniformView, mgl64.LookAtV(pos.Vec3(), mgl64.Vec3{}, worldUp))
	cs.renderer.SetUniform(UniformProjection, projection.Matrix())
}
