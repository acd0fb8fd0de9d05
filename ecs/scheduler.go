package ecs

// SystemFunc adapts a function to the System interface.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	f(w)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

// Add appends system after the ones already scheduled. nil is ignored.
func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Gate runs its systems only while pred holds for the world.
type Gate struct {
	pred    func(w *World) bool
	systems []System
}

func NewGate(pred func(w *World) bool, systems ...System) *Gate {
	return &Gate{pred: pred, systems: append([]System(nil), systems...)}
}

func (g *Gate) Update(w *World) {
	if g.pred != nil && !g.pred(w) {
		return
	}
	for _, system := range g.systems {
		system.Update(w)
	}
}

// Loop is a frame driver: each Step synchronizes the world and runs the
// scheduler once. A host calls Step repeatedly until it returns false.
type Loop struct {
	World     *World
	Scheduler *Scheduler

	frames  uint64
	stopped bool
}

func NewLoop(w *World, s *Scheduler) *Loop {
	return &Loop{World: w, Scheduler: s}
}

// Step runs one frame. It returns false once the loop has been stopped.
func (l *Loop) Step() bool {
	if l.stopped {
		return false
	}
	l.World.Sync()
	if l.Scheduler != nil {
		l.Scheduler.Update(l.World)
	}
	l.frames++
	return !l.stopped
}

// Stop makes the current and every later Step report false.
func (l *Loop) Stop() {
	l.stopped = true
}

// Frames returns how many frames have run.
func (l *Loop) Frames() uint64 {
	return l.frames
}
