package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/flappycube/ecs"
)

// Position is a homogeneous point. YInitial keeps the y it was built with so
// attached children can be re-derived from their parent each frame.
type Position struct {
	X, Y, Z, W float64
	YInitial   float64
}

func NewPosition(x, y, z, w float64) *Position {
	return &Position{X: x, Y: y, Z: z, W: w, YInitial: y}
}

func (p *Position) Kind() ecs.Kind { return KindPosition }

func (p *Position) Vec3() mgl64.Vec3 { return mgl64.Vec3{p.X, p.Y, p.Z} }

func (p *Position) Vec4() mgl64.Vec4 { return mgl64.Vec4{p.X, p.Y, p.Z, p.W} }

type Scale struct {
	X, Y, Z, W float64
}

func NewScale(x, y, z, w float64) *Scale {
	return &Scale{X: x, Y: y, Z: z, W: w}
}

func (s *Scale) Kind() ecs.Kind { return KindScale }

func (s *Scale) Vec3() mgl64.Vec3 { return mgl64.Vec3{s.X, s.Y, s.Z} }

// Rotation holds per-axis model rotation in degrees. The camera reuses X as
// azimuth and Y as elevation, in radians.
type Rotation struct {
	X, Y, Z, W float64
}

func NewRotation(x, y, z, w float64) *Rotation {
	return &Rotation{X: x, Y: y, Z: z, W: w}
}

func (r *Rotation) Kind() ecs.Kind { return KindRotation }

type Velocity struct {
	X, Y, Z, W float64
}

func NewVelocity(x, y, z, w float64) *Velocity {
	return &Velocity{X: x, Y: y, Z: z, W: w}
}

func (v *Velocity) Kind() ecs.Kind { return KindVelocity }
