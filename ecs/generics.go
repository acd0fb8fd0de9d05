package ecs

import "fmt"

// Get returns e's active component of the given kind as T.
func Get[T Component](w *World, e Entity, kind Kind) (T, bool) {
	var zero T
	value, ok := w.Component(e, kind)
	if !ok {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// MustGet is Get for callers that have just synchronized a world they built
// themselves. It panics when the component is missing.
func MustGet[T Component](w *World, e Entity, kind Kind) T {
	c, ok := Get[T](w, e, kind)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %s has no active %q component", e, kind))
	}
	return c
}

// Add is AddComponent for callers that do not need the index.
func Add(w *World, e Entity, c Component) error {
	_, err := w.AddComponent(e, c)
	return err
}

// Has reports whether e has an active component of the given kind.
func Has(w *World, e Entity, kind Kind) bool {
	_, ok := w.FindComponent(e, kind)
	return ok
}
