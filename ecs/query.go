package ecs

// Collection returns the active entities registered under tag, in creation
// order. Unknown tags yield an empty result.
func (w *World) Collection(tag string) []Entity {
	bucket := w.tags[tag]
	out := make([]Entity, 0, len(bucket))
	for _, e := range bucket {
		if w.IsActive(e) {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first active entity registered under tag.
func (w *World) First(tag string) (Entity, bool) {
	for _, e := range w.tags[tag] {
		if w.IsActive(e) {
			return e, true
		}
	}
	return 0, false
}

// Entities returns every active entity in store order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, w.active)
	for _, e := range w.order[:w.active] {
		if w.IsActive(e) {
			out = append(out, e)
		}
	}
	return out
}

// ForEach calls fn for every active entity in store order that has an active
// component of the given kind.
func ForEach[T Component](w *World, kind Kind, fn func(e Entity, c T)) {
	for _, e := range w.order[:w.active] {
		if c, ok := Get[T](w, e, kind); ok {
			fn(e, c)
		}
	}
}
