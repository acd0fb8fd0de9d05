package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/flappycube/ecs"
)

const DefaultOrbitRadius = 5.0

// Projection is a perspective projection. Radius is the camera's orbit
// distance from the origin.
type Projection struct {
	Fov    float64 // degrees
	Aspect float64
	Near   float64
	Far    float64
	Radius float64
}

func NewProjection(fov, aspect, near, far float64) *Projection {
	return &Projection{Fov: fov, Aspect: aspect, Near: near, Far: far, Radius: DefaultOrbitRadius}
}

func (p *Projection) Kind() ecs.Kind { return KindProjection }

func (p *Projection) Matrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(p.Fov), p.Aspect, p.Near, p.Far)
}
