package ecs

// entityStore tracks slot generations and free slots. Slot 0 is reserved so the
// zero Entity is never alive.
type entityStore struct {
	records []*record
	gen     []generation
	free    []entityID
}

func (s *entityStore) create(tag string) (Entity, *record) {
	if len(s.gen) == 0 {
		s.gen = append(s.gen, 0)
		s.records = append(s.records, nil)
	}

	var id entityID
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		id = entityID(len(s.gen))
		s.gen = append(s.gen, 1)
		s.records = append(s.records, nil)
	}

	e := makeEntity(id, s.gen[id])
	rec := newRecord(e, tag)
	s.records[id] = rec
	return e, rec
}

func (s *entityStore) get(e Entity) *record {
	id := e.id()
	if id == 0 || int(id) >= len(s.gen) {
		return nil
	}
	if s.gen[id] != e.generation() {
		return nil
	}
	return s.records[id]
}

func (s *entityStore) destroy(e Entity) bool {
	if s.get(e) == nil {
		return false
	}
	id := e.id()
	s.gen[id]++
	if s.gen[id] == 0 {
		// wrapped generations retire the slot
		s.records[id] = nil
		return true
	}
	s.records[id] = nil
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	return s.get(e) != nil
}

func (s *entityStore) reset() {
	s.records = nil
	s.gen = nil
	s.free = nil
}
