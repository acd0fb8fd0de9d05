package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/flappycube/ecs"
)

// Color is an RGBA quadruple shared by the material components.
type Color struct {
	R, G, B, A float64
}

func (c Color) Vec3() mgl64.Vec3 { return mgl64.Vec3{c.R, c.G, c.B} }

func (c Color) Vec4() mgl64.Vec4 { return mgl64.Vec4{c.R, c.G, c.B, c.A} }

type Ambient struct {
	Color
}

func NewAmbient(r, g, b, a float64) *Ambient {
	return &Ambient{Color{R: r, G: g, B: b, A: a}}
}

func (a *Ambient) Kind() ecs.Kind { return KindAmbient }

type Diffuse struct {
	Color
}

func NewDiffuse(r, g, b, a float64) *Diffuse {
	return &Diffuse{Color{R: r, G: g, B: b, A: a}}
}

func (d *Diffuse) Kind() ecs.Kind { return KindDiffuse }

type Specular struct {
	Color
	Shininess float64
}

func NewSpecular(r, g, b, a, shininess float64) *Specular {
	return &Specular{Color: Color{R: r, G: g, B: b, A: a}, Shininess: shininess}
}

func (s *Specular) Kind() ecs.Kind { return KindSpecular }
