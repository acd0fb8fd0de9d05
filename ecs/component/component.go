package component

import "github.com/milk9111/flappycube/ecs"

const (
	KindPosition   ecs.Kind = "position"
	KindScale      ecs.Kind = "scale"
	KindRotation   ecs.Kind = "rotation"
	KindVelocity   ecs.Kind = "velocity"
	KindAmbient    ecs.Kind = "ambient"
	KindDiffuse    ecs.Kind = "diffuse"
	KindSpecular   ecs.Kind = "specular"
	KindVertices   ecs.Kind = "vertices"
	KindNormals    ecs.Kind = "normals"
	KindTexture    ecs.Kind = "texture"
	KindProjection ecs.Kind = "projection"
	KindChildren   ecs.Kind = "children"
)

// Test is a blank component carrying an arbitrary kind.
type Test struct {
	Label ecs.Kind
}

func NewTest(label ecs.Kind) *Test {
	return &Test{Label: label}
}

func (t *Test) Kind() ecs.Kind { return t.Label }
