package ecs

import (
	"errors"

	"go.uber.org/zap"
)

var (
	ErrEntityNotAlive     = errors.New("ecs: entity not alive")
	ErrNilComponent       = errors.New("ecs: component is nil")
	ErrDuplicateComponent = errors.New("ecs: entity already has a component of this kind")
)

// Kind is the discriminator every component carries. An entity holds at most
// one component per kind.
type Kind string

// Component is a tagged bundle of entity data.
type Component interface {
	Kind() Kind
}

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, their components, the tag index and the deferred
// mutation queues. It is not safe for concurrent use; all access happens on
// the frame goroutine.
type World struct {
	log *zap.Logger

	entities entityStore
	order    []Entity
	tags     map[string][]Entity
	active   int

	pendingDelete []Entity
	pendingSet    map[Entity]struct{}

	resources resources
	events    EventQueue
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// NewWorld creates an empty ECS world.
func NewWorld(opts ...Option) *World {
	w := &World{log: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}
	w.Init()
	return w
}

// Init resets the world to an empty store. Resources are kept.
func (w *World) Init() {
	w.entities.reset()
	w.order = nil
	w.tags = make(map[string][]Entity)
	w.active = 0
	w.pendingDelete = nil
	w.pendingSet = make(map[Entity]struct{})
	w.events.flush()
}

// Shutdown drops every entity, component, resource and queued event.
func (w *World) Shutdown() {
	if w == nil {
		return
	}
	w.Init()
	w.resources.clear()
}

// Logger returns the world's logger.
func (w *World) Logger() *zap.Logger {
	return w.log
}

// CreateEntity appends a new entity to the store and registers it under tag.
// The entity can be mutated immediately but systems only see it after the next
// Sync.
func (w *World) CreateEntity(tag string) Entity {
	e, _ := w.entities.create(tag)
	w.order = append(w.order, e)
	w.tags[tag] = append(w.tags[tag], e)
	return e
}

// DeleteEntity queues e for removal on the next Sync. Repeated requests within
// a frame and requests for dead handles are ignored.
func (w *World) DeleteEntity(e Entity) {
	if !w.entities.isAlive(e) {
		w.log.Debug("delete of dead entity ignored", zap.Stringer("entity", e))
		return
	}
	if _, ok := w.pendingSet[e]; ok {
		w.log.Debug("duplicate entity delete ignored", zap.Stringer("entity", e))
		return
	}
	w.pendingSet[e] = struct{}{}
	w.pendingDelete = append(w.pendingDelete, e)
}

// IsAlive reports whether e refers to a stored entity, active or not.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// IsActive reports whether e was present at the last Sync.
func (w *World) IsActive(e Entity) bool {
	rec := w.entities.get(e)
	return rec != nil && rec.active
}

// Tag returns the tag e was created with.
func (w *World) Tag(e Entity) (string, bool) {
	rec := w.entities.get(e)
	if rec == nil {
		return "", false
	}
	return rec.tag, true
}

// ActiveEntities returns the entity count snapshot taken at the last Sync.
func (w *World) ActiveEntities() int {
	return w.active
}

// AddComponent appends c to e's component list and returns its index. The
// component stays invisible to FindComponent until the next Sync.
func (w *World) AddComponent(e Entity, c Component) (int, error) {
	if c == nil {
		return -1, ErrNilComponent
	}
	rec := w.entities.get(e)
	if rec == nil {
		return -1, ErrEntityNotAlive
	}
	return rec.add(c)
}

// DeleteComponent queues the component of the given kind for removal on the
// next Sync.
func (w *World) DeleteComponent(e Entity, kind Kind) {
	rec := w.entities.get(e)
	if rec == nil {
		return
	}
	if _, ok := rec.lookup[kind]; !ok {
		return
	}
	if !rec.queueDelete(kind) {
		w.log.Debug("duplicate component delete ignored",
			zap.Stringer("entity", e), zap.String("kind", string(kind)))
	}
}

// FindComponent resolves kind to an index in e's component list. It reports
// false for unknown kinds and for components added since the last Sync.
func (w *World) FindComponent(e Entity, kind Kind) (int, bool) {
	rec := w.entities.get(e)
	if rec == nil {
		return -1, false
	}
	return rec.find(kind)
}

// Component returns e's active component of the given kind.
func (w *World) Component(e Entity, kind Kind) (Component, bool) {
	rec := w.entities.get(e)
	if rec == nil {
		return nil, false
	}
	idx, ok := rec.find(kind)
	if !ok {
		return nil, false
	}
	return rec.components[idx], true
}

// Components returns e's active components in insertion order. The slice is
// owned by the world and must not be retained across Sync.
func (w *World) Components(e Entity) []Component {
	rec := w.entities.get(e)
	if rec == nil {
		return nil
	}
	return rec.components[:rec.activeCount]
}

// ComponentCount returns the number of stored components, active or not.
func (w *World) ComponentCount(e Entity) int {
	rec := w.entities.get(e)
	if rec == nil {
		return 0
	}
	return len(rec.components)
}

// ActiveComponentCount returns e's component snapshot from the last Sync.
func (w *World) ActiveComponentCount(e Entity) int {
	rec := w.entities.get(e)
	if rec == nil {
		return 0
	}
	return rec.activeCount
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
