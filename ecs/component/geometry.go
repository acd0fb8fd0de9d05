package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/flappycube/ecs"
)

// Vertices is a triangle list, three vertices per triangle.
type Vertices struct {
	Vertices []mgl64.Vec4
}

func NewVertices(v []mgl64.Vec4) *Vertices {
	return &Vertices{Vertices: v}
}

func (v *Vertices) Kind() ecs.Kind { return KindVertices }

// Normals holds one normal per vertex.
type Normals struct {
	Normals []mgl64.Vec3
}

func NewNormals(n []mgl64.Vec3) *Normals {
	return &Normals{Normals: n}
}

func (n *Normals) Kind() ecs.Kind { return KindNormals }

// Texture references an image by an opaque source id that the rendering
// backend resolves, plus one UV per vertex.
type Texture struct {
	Source      string
	Coordinates []mgl64.Vec2
}

func NewTexture(source string, coords []mgl64.Vec2) *Texture {
	return &Texture{Source: source, Coordinates: coords}
}

func (t *Texture) Kind() ecs.Kind { return KindTexture }
