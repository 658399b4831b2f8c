// Package engine runs the drop-arena simulation: a dense body store advanced
// by an ordered per-tick pipeline (spawn → integrate → walls → broad phase →
// gates → lifecycle). All positional mutation happens inside Tick; the level
// geometry is read-only and events flow out through a lock-free queue.
package engine

import (
	"errors"

	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/event"
	"github.com/conhill/vampdrop/level"
	"github.com/conhill/vampdrop/parameter"
	"github.com/conhill/vampdrop/vmath"
)

var (
	// ErrNoLevel rejects construction or spawning without baked geometry
	ErrNoLevel = errors.New("engine: no level loaded")

	// ErrUnknownType rejects spawn requests with an invalid body type
	ErrUnknownType = errors.New("engine: unknown body type")

	// ErrBodyLimit signals a spawn dropped at the body ceiling. Drops are
	// expected under heavy gate multiplication; they are also counted in
	// Stats and reported via EventSpawnDropped.
	ErrBodyLimit = errors.New("engine: body limit reached")
)

// Stats are monotonic per-sim counters, readable between ticks
type Stats struct {
	Spawned    uint64
	Dropped    uint64
	Destroyed  uint64
	Scored     uint64
	Multiplied uint64
	Resets     uint64
	PeakBodies int
}

// Sim is one simulation instance. Not safe for concurrent mutation: Tick,
// SpawnBody, and the accessors belong to a single owner goroutine. The
// event queue may be consumed from anywhere.
type Sim struct {
	bodies []core.Body
	index  map[core.Handle]int
	nextID core.Handle

	lv       *level.Level
	grid     *spatialHash
	sleepers *sleeperGrid
	events   *event.Queue
	rng      *vmath.FastRand

	tick uint64
	now  float32

	// Staged work, applied at defined pipeline points
	pending      []core.Body
	deadCount    int
	droppedCount int

	stats Stats
}

// New builds a simulation over a baked level. The queue may be nil for
// headless use; events are then discarded.
func New(lv *level.Level, q *event.Queue) (*Sim, error) {
	if lv == nil {
		return nil, ErrNoLevel
	}
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	return &Sim{
		bodies:   make([]core.Body, 0, 256),
		index:    make(map[core.Handle]int, 256),
		nextID:   1,
		lv:       lv,
		grid:     newSpatialHash(parameter.BroadCellSize),
		sleepers: newSleeperGrid(parameter.BroadCellSize),
		events:   q,
		rng:      vmath.NewFastRand(0x9E3779B97F4A7C15),
	}, nil
}

// Seed re-seeds the spawn jitter generator; tests use this for determinism
func (s *Sim) Seed(seed uint64) {
	s.rng = vmath.NewFastRand(seed)
}

// Tick advances the simulation one step. dt is clamped to parameter.MaxStep;
// no input can make Tick panic or halt.
func (s *Sim) Tick(dt float32) {
	if dt <= 0 || !vmath.Finite(dt) {
		return
	}
	if dt > parameter.MaxStep {
		dt = parameter.MaxStep
	}

	s.tick++
	s.now += dt

	s.integrate(dt)
	s.collideWalls()
	s.collideBodies()
	if s.tick%parameter.GateCheckInterval == 0 {
		s.checkGates()
	}
	s.sleepPass()
	s.cleanup()
	s.compact()
	s.flushSpawns()

	if n := len(s.bodies); n > s.stats.PeakBodies {
		s.stats.PeakBodies = n
	}
	event.EmitDropped(s.events, s.tick, s.droppedCount)
	s.droppedCount = 0
}

// Len returns the live body count
func (s *Sim) Len() int {
	return len(s.bodies)
}

// Body returns a copy of the body for h, if alive
func (s *Sim) Body(h core.Handle) (core.Body, bool) {
	i, ok := s.index[h]
	if !ok {
		return core.Body{}, false
	}
	return s.bodies[i], true
}

// Bodies calls fn for every live body. The pointer is only valid during
// the call; fn must not spawn or destroy.
func (s *Sim) Bodies(fn func(*core.Body)) {
	for i := range s.bodies {
		fn(&s.bodies[i])
	}
}

// Stats returns the counter block
func (s *Sim) Stats() Stats {
	return s.stats
}

// Now returns accumulated simulation time in seconds
func (s *Sim) Now() float32 {
	return s.now
}

// TickCount returns the number of completed ticks
func (s *Sim) TickCount() uint64 {
	return s.tick
}

// Level exposes the read-only geometry table (for renderers)
func (s *Sim) Level() *level.Level {
	return s.lv
}
