package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/flappycube/ecs"
)

// Uniform names published to the rendering backend.
const (
	UniformView       = "uViewMatrix"
	UniformProjection = "uProjectionMatrix"

	UniformPlayerLightOn       = "uPlayerLightOn"
	UniformPlayerLightPosition = "uPlayerLightPosition"
	UniformPlayerLightAmbient  = "uPlayerLightAmbient"
	UniformPlayerLightDiffuse  = "uPlayerLightDiffuse"
	UniformPlayerLightSpecular = "uPlayerLightSpecular"
	UniformGlobalLightPosition = "uGlobalLightPosition"
	UniformGlobalLightAmbient  = "uGlobalLightAmbient"
	UniformGlobalLightDiffuse  = "uGlobalLightDiffuse"
	UniformGlobalLightSpecular = "uGlobalLightSpecular"
)

// Renderer is the rendering backend the systems publish to. Values passed to
// SetUniform are mgl64.Mat4, mgl64.Vec4 or float64.
type Renderer interface {
	SetUniform(name string, value any)
	Draw(call DrawCall)
}

// Material is the lighting response of a drawn entity.
type Material struct {
	Ambient   mgl64.Vec4
	Diffuse   mgl64.Vec4
	Specular  mgl64.Vec4
	Shininess float64
}

// DrawCall carries one renderable entity for one frame. Normals, UVs,
// Material and Texture are optional.
type DrawCall struct {
	Entity    ecs.Entity
	Vertices  []mgl64.Vec4
	Normals   []mgl64.Vec3
	UVs       []mgl64.Vec2
	Transform mgl64.Mat4
	Material  *Material
	Texture   string
}
