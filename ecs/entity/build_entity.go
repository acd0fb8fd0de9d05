package entity

import (
	"fmt"

	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/mesh"
)

// Entity tags the systems look entities up by.
const (
	TagPlayer      = "player"
	TagPlayerWing  = "player_wing"
	TagCamera      = "camera"
	TagGlobalLight = "global_light"
	TagPlayerLight = "player_light"
	TagGroundBlock = "ground_block"
	TagPipeBlock   = "pipe_block"
)

func addAll(w *ecs.World, e ecs.Entity, name string, comps ...ecs.Component) error {
	for _, c := range comps {
		if err := ecs.Add(w, e, c); err != nil {
			return fmt.Errorf("%s: add %s: %w", name, c.Kind(), err)
		}
	}
	return nil
}

// cube returns the shared geometry, white material and texture components of
// a textured unit cube.
func cube(texture string) []ecs.Component {
	return []ecs.Component{
		component.NewVertices(mesh.CubeVertices()),
		component.NewNormals(mesh.CubeNormals()),
		component.NewAmbient(1, 1, 1, 1),
		component.NewDiffuse(1, 1, 1, 1),
		component.NewSpecular(1, 1, 1, 1, 100),
		component.NewTexture(texture, mesh.CubeTextureCoordinates()),
	}
}

// newBlock creates a unit-scale textured cube at (x, y).
func newBlock(w *ecs.World, tag string, x, y float64, texture string) (ecs.Entity, error) {
	e := w.CreateEntity(tag)
	comps := append([]ecs.Component{
		component.NewPosition(x, y, 0, 1),
		component.NewScale(1, 1, 1, 1),
	}, cube(texture)...)
	if err := addAll(w, e, tag, comps...); err != nil {
		return 0, err
	}
	return e, nil
}
