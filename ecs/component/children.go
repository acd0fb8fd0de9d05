package component

import "github.com/milk9111/flappycube/ecs"

// Children lists attached entities. The references are weak: a parent does
// not own or outlive-guard its children, and callers must tolerate handles
// that are no longer alive.
type Children struct {
	Entities []ecs.Entity
}

func NewChildren(children ...ecs.Entity) *Children {
	return &Children{Entities: append([]ecs.Entity(nil), children...)}
}

func (c *Children) Kind() ecs.Kind { return KindChildren }

func (c *Children) AddChild(e ecs.Entity) {
	c.Entities = append(c.Entities, e)
}
