package ecs

// record is one entity's storage: an ordered component list, a kind->index
// lookup, the active-component snapshot taken at the last Sync and the kinds
// queued for removal.
type record struct {
	entity Entity
	tag    string
	active bool

	components   []Component
	lookup       map[Kind]int
	activeCount  int
	pendingKinds []Kind
	pendingSet   map[Kind]struct{}
}

func newRecord(e Entity, tag string) *record {
	return &record{
		entity: e,
		tag:    tag,
		lookup: make(map[Kind]int),
	}
}

func (r *record) add(c Component) (int, error) {
	kind := c.Kind()
	if _, ok := r.lookup[kind]; ok {
		return -1, ErrDuplicateComponent
	}
	r.components = append(r.components, c)
	idx := len(r.components) - 1
	r.lookup[kind] = idx
	return idx, nil
}

func (r *record) find(kind Kind) (int, bool) {
	idx, ok := r.lookup[kind]
	if !ok || idx >= r.activeCount {
		return -1, false
	}
	return idx, true
}

// queueDelete reports false when kind is already queued this frame.
func (r *record) queueDelete(kind Kind) bool {
	if r.pendingSet == nil {
		r.pendingSet = make(map[Kind]struct{})
	}
	if _, ok := r.pendingSet[kind]; ok {
		return false
	}
	r.pendingSet[kind] = struct{}{}
	r.pendingKinds = append(r.pendingKinds, kind)
	return true
}

// sync removes queued kinds by identity, rebuilds the lookup from the compacted
// list and refreshes the active snapshot. It returns how many components were
// removed.
func (r *record) sync() int {
	removed := 0
	if len(r.pendingKinds) > 0 {
		kept := r.components[:0]
		for _, c := range r.components {
			if _, drop := r.pendingSet[c.Kind()]; drop {
				removed++
				continue
			}
			kept = append(kept, c)
		}
		clear(r.components[len(kept):])
		r.components = kept

		clear(r.lookup)
		for i, c := range r.components {
			r.lookup[c.Kind()] = i
		}

		r.pendingKinds = r.pendingKinds[:0]
		clear(r.pendingSet)
	}
	r.activeCount = len(r.components)
	r.active = true
	return removed
}
