package ecs

import "reflect"

// resources holds world-scoped singletons, one per type.
type resources struct {
	items map[reflect.Type]any
}

func (r *resources) clear() {
	clear(r.items)
}

// SetResource stores res as the world's singleton of type T, replacing any
// previous one.
func SetResource[T any](w *World, res *T) {
	if w.resources.items == nil {
		w.resources.items = make(map[reflect.Type]any)
	}
	w.resources.items[reflect.TypeFor[T]()] = res
}

// Resource returns the world's singleton of type T.
func Resource[T any](w *World) (*T, bool) {
	if w == nil || w.resources.items == nil {
		return nil, false
	}
	res, ok := w.resources.items[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return res.(*T), true
}
