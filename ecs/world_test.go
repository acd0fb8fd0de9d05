package ecs

import (
	"errors"
	"fmt"
	"testing"
)

type testComp struct {
	kind  Kind
	value int
}

func (c *testComp) Kind() Kind { return c.kind }

func comp(kind Kind, v int) *testComp {
	return &testComp{kind: kind, value: v}
}

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity("block"))
			}
			if w.ActiveEntities() != 0 {
				t.Fatalf("new entities must not be active before Sync, got %d", w.ActiveEntities())
			}
			w.Sync()
			if w.ActiveEntities() != c.create {
				t.Fatalf("expected %d active entities, got %d", c.create, w.ActiveEntities())
			}
			if c.destroyIndex < 0 {
				return
			}

			doomed := ents[c.destroyIndex]
			w.DeleteEntity(doomed)
			if !w.IsAlive(doomed) || !w.IsActive(doomed) {
				t.Fatalf("deleted entity must stay visible until Sync")
			}
			w.Sync()
			if w.IsAlive(doomed) {
				t.Fatalf("entity should not be alive after Sync")
			}
			if got := len(w.Collection("block")); got != c.create-1 {
				t.Fatalf("expected %d blocks, got %d", c.create-1, got)
			}
		})
	}
}

func TestCreatedEntityInvisibleUntilSync(t *testing.T) {
	w := NewWorld()
	w.CreateEntity("a")
	w.Sync()

	e := w.CreateEntity("a")
	if err := Add(w, e, comp("pos", 1)); err != nil {
		t.Fatalf("add: %v", err)
	}

	// mutation is immediate, visibility is not
	if w.ComponentCount(e) != 1 {
		t.Fatalf("component should be stored immediately")
	}
	if _, ok := w.FindComponent(e, "pos"); ok {
		t.Fatalf("component must not be found before Sync")
	}
	if got := len(w.Collection("a")); got != 1 {
		t.Fatalf("collection should hold only the synced entity, got %d", got)
	}
	seen := 0
	ForEach(w, "pos", func(Entity, *testComp) { seen++ })
	if seen != 0 {
		t.Fatalf("ForEach visited %d unsynced entities", seen)
	}

	w.Sync()
	if idx, ok := w.FindComponent(e, "pos"); !ok || idx != 0 {
		t.Fatalf("FindComponent = %d, %v; want 0, true", idx, ok)
	}
	if got := len(w.Collection("a")); got != 2 {
		t.Fatalf("expected 2 entities after Sync, got %d", got)
	}
}

func TestDeleteEntityKeepsOrder(t *testing.T) {
	cases := []struct {
		name   string
		delete []int
		want   []int
	}{
		{"first", []int{0}, []int{1, 2, 3, 4}},
		{"last", []int{4}, []int{0, 1, 2, 3}},
		{"ascending", []int{1, 3}, []int{0, 2, 4}},
		{"descending", []int{3, 1}, []int{0, 2, 4}},
		{"duplicate", []int{2, 2, 2}, []int{0, 1, 3, 4}},
		{"all", []int{4, 0, 2, 1, 3}, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 5)
			for i := range ents {
				ents[i] = w.CreateEntity("block")
				if err := Add(w, ents[i], comp("id", i)); err != nil {
					t.Fatalf("add: %v", err)
				}
			}
			w.Sync()

			for _, i := range c.delete {
				w.DeleteEntity(ents[i])
			}
			stats := w.Sync()
			if stats.RemovedEntities != len(ents)-len(c.want) {
				t.Fatalf("removed %d entities, want %d", stats.RemovedEntities, len(ents)-len(c.want))
			}

			var got []int
			ForEach(w, "id", func(_ Entity, tc *testComp) {
				got = append(got, tc.value)
			})
			if len(got) != len(c.want) {
				t.Fatalf("survivors = %v, want %v", got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Fatalf("survivors = %v, want %v", got, c.want)
				}
			}
			if len(w.Collection("block")) != len(c.want) {
				t.Fatalf("tag bucket out of step with store")
			}
		})
	}
}

func TestStaleHandle(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity("a")
	w.Sync()
	w.DeleteEntity(old)
	w.Sync()

	// the freed slot is reused with a new generation
	fresh := w.CreateEntity("b")
	if old == fresh {
		t.Fatalf("reused slot must not reproduce the old handle")
	}
	if old.id() != fresh.id() {
		t.Fatalf("expected slot reuse, got %s and %s", old, fresh)
	}
	if w.IsAlive(old) {
		t.Fatalf("stale handle reported alive")
	}
	if err := Add(w, old, comp("pos", 1)); !errors.Is(err, ErrEntityNotAlive) {
		t.Fatalf("add on stale handle: got %v, want ErrEntityNotAlive", err)
	}

	// deleting a stale handle must not touch the slot's new owner
	w.DeleteEntity(old)
	w.Sync()
	if !w.IsAlive(fresh) {
		t.Fatalf("stale delete removed the new entity")
	}
	if tag, _ := w.Tag(fresh); tag != "b" {
		t.Fatalf("tag = %q, want b", tag)
	}
	if Entity(0).Valid() {
		t.Fatalf("zero entity must not be valid")
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity("a")

	tests := []struct {
		name  string
		setup func() error
		check func(t *testing.T)
	}{
		{
			name: "add_two_kinds",
			setup: func() error {
				if err := Add(w, e, comp("pos", 1)); err != nil {
					return err
				}
				return Add(w, e, comp("vel", 2))
			},
			check: func(t *testing.T) {
				if w.ActiveComponentCount(e) != 2 {
					t.Fatalf("active components = %d, want 2", w.ActiveComponentCount(e))
				}
				if v := MustGet[*testComp](w, e, "vel"); v.value != 2 {
					t.Fatalf("vel = %d, want 2", v.value)
				}
			},
		},
		{
			name: "duplicate_kind_rejected",
			setup: func() error {
				if err := Add(w, e, comp("pos", 9)); !errors.Is(err, ErrDuplicateComponent) {
					return fmt.Errorf("duplicate add: got %v, want ErrDuplicateComponent", err)
				}
				return nil
			},
			check: func(t *testing.T) {
				if p := MustGet[*testComp](w, e, "pos"); p.value != 1 {
					t.Fatalf("pos = %d, want first value 1", p.value)
				}
			},
		},
		{
			name: "nil_rejected",
			setup: func() error {
				if _, err := w.AddComponent(e, nil); !errors.Is(err, ErrNilComponent) {
					return fmt.Errorf("nil add: got %v, want ErrNilComponent", err)
				}
				return nil
			},
			check: func(t *testing.T) {},
		},
		{
			name: "delete_first_reindexes",
			setup: func() error {
				w.DeleteComponent(e, "pos")
				w.DeleteComponent(e, "pos")
				return nil
			},
			check: func(t *testing.T) {
				if Has(w, e, "pos") {
					t.Fatalf("pos should be gone")
				}
				if idx, ok := w.FindComponent(e, "vel"); !ok || idx != 0 {
					t.Fatalf("vel index = %d, %v; want 0, true", idx, ok)
				}
				if w.ComponentCount(e) != 1 {
					t.Fatalf("component count = %d, want 1", w.ComponentCount(e))
				}
			},
		},
		{
			name: "readd_after_delete",
			setup: func() error {
				return Add(w, e, comp("pos", 3))
			},
			check: func(t *testing.T) {
				if idx, ok := w.FindComponent(e, "pos"); !ok || idx != 1 {
					t.Fatalf("pos index = %d, %v; want 1, true", idx, ok)
				}
				if len(w.Components(e)) != 2 {
					t.Fatalf("components = %d, want 2", len(w.Components(e)))
				}
			},
		},
		{
			name: "unknown_kind",
			setup: func() error {
				w.DeleteComponent(e, "missing")
				return nil
			},
			check: func(t *testing.T) {
				if _, ok := Get[*testComp](w, e, "missing"); ok {
					t.Fatalf("unknown kind found")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup: %v", err)
			}
			w.Sync()
			tc.check(t)
		})
	}
}

func TestDeletedComponentReadableUntilSync(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity("a")
	if err := Add(w, e, comp("pos", 1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	w.Sync()

	w.DeleteComponent(e, "pos")

	p, ok := Get[*testComp](w, e, "pos")
	if !ok {
		t.Fatalf("queued component not readable before sync")
	}
	if idx, ok := w.FindComponent(e, "pos"); !ok || idx != 0 {
		t.Fatalf("pos index = %d, %v; want 0, true", idx, ok)
	}
	p.value = 42
	if again := MustGet[*testComp](w, e, "pos"); again.value != 42 {
		t.Fatalf("write lost before sync: pos = %d, want 42", again.value)
	}

	w.Sync()
	if _, ok := Get[*testComp](w, e, "pos"); ok {
		t.Fatalf("pos still present after sync")
	}
	if w.ComponentCount(e) != 0 {
		t.Fatalf("component count = %d, want 0", w.ComponentCount(e))
	}
}

func TestDeleteMiddleComponentReindexes(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity("a")
	for i, kind := range []Kind{"pos", "vel", "scale"} {
		if err := Add(w, e, comp(kind, i)); err != nil {
			t.Fatalf("add %s: %v", kind, err)
		}
	}
	w.Sync()

	w.DeleteComponent(e, "vel")
	w.Sync()

	tests := []struct {
		kind  Kind
		index int
		value int
	}{
		{kind: "pos", index: 0, value: 0},
		{kind: "scale", index: 1, value: 2},
	}
	comps := w.Components(e)
	if len(comps) != len(tests) {
		t.Fatalf("components = %d, want %d", len(comps), len(tests))
	}
	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			idx, ok := w.FindComponent(e, tc.kind)
			if !ok || idx != tc.index {
				t.Fatalf("index = %d, %v; want %d, true", idx, ok, tc.index)
			}
			if got := comps[idx].Kind(); got != tc.kind {
				t.Fatalf("components[%d].Kind() = %q, want %q", idx, got, tc.kind)
			}
			if got := comps[idx].(*testComp).value; got != tc.value {
				t.Fatalf("value = %d, want %d", got, tc.value)
			}
		})
	}
	if Has(w, e, "vel") {
		t.Fatalf("vel survived sync")
	}
}

func TestSyncStats(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity("a")
	b := w.CreateEntity("b")
	_ = Add(w, b, comp("pos", 0))
	_ = Add(w, b, comp("vel", 0))
	w.Sync()

	w.DeleteEntity(a)
	w.DeleteComponent(b, "vel")
	stats := w.Sync()
	want := SyncStats{RemovedEntities: 1, RemovedComponents: 1, Active: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
	if _, ok := w.First("a"); ok {
		t.Fatalf("empty tag should have no first entity")
	}
}

func TestResources(t *testing.T) {
	type counter struct{ n int }

	w := NewWorld()
	if _, ok := Resource[counter](w); ok {
		t.Fatalf("resource present before set")
	}
	SetResource(w, &counter{n: 3})
	c, ok := Resource[counter](w)
	if !ok || c.n != 3 {
		t.Fatalf("resource = %v, %v", c, ok)
	}

	// Init keeps resources, Shutdown drops them.
	w.Init()
	if _, ok := Resource[counter](w); !ok {
		t.Fatalf("Init dropped resources")
	}
	w.Shutdown()
	if _, ok := Resource[counter](w); ok {
		t.Fatalf("Shutdown kept resources")
	}
}

func TestEvents(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: EventScore, Data: ScoreEvent{Score: 1}})
	w.Events().Push(Event{Type: EventScore, Data: ScoreEvent{Score: 2}})

	got := w.Events().Drain()
	if len(got) != 2 || got[1].Data.(ScoreEvent).Score != 2 {
		t.Fatalf("drain = %+v", got)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("queue not cleared by Drain")
	}

	w.Events().Push(Event{Type: EventGameOver})
	w.Init()
	if w.Events().Drain() != nil {
		t.Fatalf("Init kept queued events")
	}
}

func TestLoop(t *testing.T) {
	w := NewWorld()
	type flag struct{ on bool }
	SetResource(w, &flag{})

	var order []string
	var seenActive []int
	track := func(name string) System {
		return SystemFunc(func(w *World) {
			order = append(order, name)
			seenActive = append(seenActive, w.ActiveEntities())
		})
	}
	gated := NewGate(func(w *World) bool {
		f, _ := Resource[flag](w)
		return f.on
	}, track("gated"))

	s := NewScheduler(track("first"), gated)
	s.Add(nil)
	s.Add(track("last"))

	loop := NewLoop(w, s)
	w.CreateEntity("a")
	if !loop.Step() {
		t.Fatalf("Step stopped early")
	}
	if seenActive[0] != 1 {
		t.Fatalf("systems ran before Sync: active = %d", seenActive[0])
	}

	f, _ := Resource[flag](w)
	f.on = true
	loop.Step()

	want := []string{"first", "last", "first", "gated", "last"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	loop.Stop()
	if loop.Step() {
		t.Fatalf("Step after Stop should report false")
	}
	if loop.Frames() != 2 {
		t.Fatalf("frames = %d, want 2", loop.Frames())
	}
}
