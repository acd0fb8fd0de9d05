package entity

import (
	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/settings"
)

// NewPlayer builds the player body and its two wings. The wings are created
// first and attached through the body's children component.
func NewPlayer(w *ecs.World, cfg *settings.Settings) (ecs.Entity, error) {
	wings := make([]ecs.Entity, 0, 2)
	for _, z := range []float64{0.5, -0.5} {
		wing := w.CreateEntity(TagPlayerWing)
		comps := append([]ecs.Component{
			component.NewPosition(-0.25, 0, z, 1),
			component.NewScale(0.25, 0.125, 0.5, 1),
			component.NewRotation(0, 0, 0, 1),
		}, cube(cfg.Textures.PlayerWing)...)
		if err := addAll(w, wing, TagPlayerWing, comps...); err != nil {
			return 0, err
		}
		wings = append(wings, wing)
	}

	player := w.CreateEntity(TagPlayer)
	comps := append([]ecs.Component{
		component.NewPosition(0, 0, 0, 1),
		component.NewScale(0.5, 0.5, 0.5, 1),
		component.NewRotation(0, 0, 0, 1),
	}, cube(cfg.Textures.PlayerBody)...)
	comps = append(comps,
		component.NewVelocity(0, cfg.Player.MaxFallSpeed, 0, 0),
		component.NewChildren(wings...),
	)
	if err := addAll(w, player, TagPlayer, comps...); err != nil {
		return 0, err
	}
	return player, nil
}
