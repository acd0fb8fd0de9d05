package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
)

// RenderSystem hands every active entity with geometry to the renderer, once
// per frame, in store order.
type RenderSystem struct {
	renderer Renderer
}

func NewRenderSystem(renderer Renderer) *RenderSystem {
	return &RenderSystem{renderer: renderer}
}

func (r *RenderSystem) Update(w *ecs.World) {
	if r.renderer == nil {
		return
	}
	ecs.ForEach(w, component.KindVertices, func(e ecs.Entity, v *component.Vertices) {
		call := DrawCall{
			Entity:    e,
			Vertices:  v.Vertices,
			Transform: ModelTransform(w, e),
		}

		// Materials and textures only apply to lit geometry.
		if normals, ok := ecs.Get[*component.Normals](w, e, component.KindNormals); ok {
			call.Normals = normals.Normals
			call.Material = material(w, e)
			if tex, ok := ecs.Get[*component.Texture](w, e, component.KindTexture); ok {
				call.UVs = tex.Coordinates
				call.Texture = tex.Source
			}
		}
		r.renderer.Draw(call)
	})
}

// ModelTransform composes scale, rotation (degrees, X then Y then Z, skipping
// zero angles) and translation in that order.
func ModelTransform(w *ecs.World, e ecs.Entity) mgl64.Mat4 {
	m := mgl64.Ident4()
	if s, ok := ecs.Get[*component.Scale](w, e, component.KindScale); ok {
		m = m.Mul4(mgl64.Scale3D(s.X, s.Y, s.Z))
	}
	if rot, ok := ecs.Get[*component.Rotation](w, e, component.KindRotation); ok {
		if rot.X != 0 {
			m = m.Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(rot.X)))
		}
		if rot.Y != 0 {
			m = m.Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(rot.Y)))
		}
		if rot.Z != 0 {
			m = m.Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(rot.Z)))
		}
	}
	if p, ok := ecs.Get[*component.Position](w, e, component.KindPosition); ok {
		m = m.Mul4(mgl64.Translate3D(p.X, p.Y, p.Z))
	}
	return m
}

func material(w *ecs.World, e ecs.Entity) *Material {
	ambient, ok := ecs.Get[*component.Ambient](w, e, component.KindAmbient)
	if !ok {
		return nil
	}
	diffuse, ok := ecs.Get[*component.Diffuse](w, e, component.KindDiffuse)
	if !ok {
		return nil
	}
	specular, ok := ecs.Get[*component.Specular](w, e, component.KindSpecular)
	if !ok {
		return nil
	}
	return &Material{
		Ambient:   ambient.Vec4(),
		Diffuse:   diffuse.Vec4(),
		Specular:  specular.Vec4(),
		Shininess: specular.Shininess,
	}
}
