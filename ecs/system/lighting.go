package system

import (
	"math/rand/v2"

	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/ecs/entity"
)

// LightingSystem moves the player light and publishes both lights.
type LightingSystem struct {
	renderer Renderer
	step     float64
	rng      *rand.Rand
}

func NewLightingSystem(renderer Renderer, step float64, rng *rand.Rand) *LightingSystem {
	return &LightingSystem{renderer: renderer, step: step, rng: rng}
}

type lightParts struct {
	position *component.Position
	ambient  *component.Ambient
	diffuse  *component.Diffuse
	specular *component.Specular
}

func lightOf(w *ecs.World, tag string) (lightParts, bool) {
	var l lightParts
	e, ok := w.First(tag)
	if !ok {
		return l, false
	}
	if l.position, ok = ecs.Get[*component.Position](w, e, component.KindPosition); !ok {
		return l, false
	}
	if l.ambient, ok = ecs.Get[*component.Ambient](w, e, component.KindAmbient); !ok {
		return l, false
	}
	if l.diffuse, ok = ecs.Get[*component.Diffuse](w, e, component.KindDiffuse); !ok {
		return l, false
	}
	if l.specular, ok = ecs.Get[*component.Specular](w, e, component.KindSpecular); !ok {
		return l, false
	}
	return l, true
}

func (ls *LightingSystem) Update(w *ecs.World) {
	ctrl, ok := ecs.Resource[component.Controls](w)
	if !ok {
		return
	}
	player, ok := lightOf(w, entity.TagPlayerLight)
	if !ok {
		return
	}
	global, ok := lightOf(w, entity.TagGlobalLight)
	if !ok {
		return
	}

	if ctrl.LightManual {
		if ctrl.LightUp {
			player.position.Y += ls.step
		}
		if ctrl.LightDown {
			player.position.Y -= ls.step
		}
		if ctrl.LightLeft {
			player.position.X -= ls.step
		}
		if ctrl.LightRight {
			player.position.X += ls.step
		}
	} else {
		ls.followPlayer(w, player.position)
	}

	if ctrl.LightStrobe {
		player.diffuse.R = ls.rng.Float64()
		player.diffuse.G = ls.rng.Float64()
		player.diffuse.B = ls.rng.Float64()
	} else {
		player.diffuse.R, player.diffuse.G, player.diffuse.B = 1, 1, 1
	}

	if ls.renderer == nil {
		return
	}
	on := 0.0
	if ctrl.LightOn {
		on = 1.0
	}
	ls.renderer.SetUniform(UniformPlayerLightOn, on)
	ls.renderer.SetUniform(UniformPlayerLightPosition, player.position.Vec4())
	ls.renderer.SetUniform(UniformGlobalLightPosition, global.position.Vec4())
	ls.renderer.SetUniform(UniformPlayerLightAmbient, player.ambient.Vec4())
	ls.renderer.SetUniform(UniformGlobalLightAmbient, global.ambient.Vec4())
	ls.renderer.SetUniform(UniformPlayerLightDiffuse, player.diffuse.Vec4())
	ls.renderer.SetUniform(UniformGlobalLightDiffuse, global.diffuse.Vec4())
	ls.renderer.SetUniform(UniformPlayerLightSpecular, player.specular.Vec4())
	ls.renderer.SetUniform(UniformGlobalLightSpecular, global.specular.Vec4())
}

// followPlayer puts the light on the player's on-screen position.
func (ls *LightingSystem) followPlayer(w *ecs.World, light *component.Position) {
	player, ok := w.First(entity.TagPlayer)
	if !ok {
		return
	}
	pos, ok := ecs.Get[*component.Position](w, player, component.KindPosition)
	if !ok {
		return
	}
	scale, ok := ecs.Get[*component.Scale](w, player, component.KindScale)
	if !ok {
		return
	}
	light.X = pos.X * scale.X
	light.Y = pos.Y * scale.Y
	light.Z = pos.Z * scale.Z
}
