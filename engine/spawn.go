package engine

import (
	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/event"
	"github.com/conhill/vampdrop/parameter"
	"github.com/conhill/vampdrop/vmath"
)

// SpawnBody creates one body at pos with the profile for t. Synchronous:
// the body exists when the call returns. Unknown types are rejected;
// requests at the body ceiling return ErrBodyLimit and are counted as
// drops rather than queued.
func (s *Sim) SpawnBody(pos vmath.Vec3, t core.BodyType) (core.Handle, error) {
	if s.lv == nil {
		return 0, ErrNoLevel
	}
	if !t.Valid() {
		return 0, ErrUnknownType
	}
	if s.liveAndPending() >= parameter.MaxBodies {
		s.droppedCount++
		s.stats.Dropped++
		return 0, ErrBodyLimit
	}

	b := s.newBody(pos, t)
	h := s.commit(b)
	return h, nil
}

// liveAndPending counts bodies that will exist after staged work applies
func (s *Sim) liveAndPending() int {
	return len(s.bodies) - s.deadCount + len(s.pending)
}

// newBody builds a body from the type's tuning profile
func (s *Sim) newBody(pos vmath.Vec3, t core.BodyType) core.Body {
	p := parameter.BodyProfiles[t]
	return core.Body{
		Pos:              pos,
		Radius:           p.Radius,
		Mass:             p.Mass,
		Restitution:      p.Restitution,
		Friction:         p.Friction,
		SleepThreshold:   p.SleepThreshold,
		Type:             t,
		PointsMultiplier: p.PointsMultiplier,
		MultiplierBoost:  p.MultiplierBoost,
		SpawnTime:        s.now,
		MaxLifetime:      p.MaxLifetime,
	}
}

// commit assigns a handle, stores the body, and reports the spawn
func (s *Sim) commit(b core.Body) core.Handle {
	b.ID = s.nextID
	s.nextID++

	s.index[b.ID] = len(s.bodies)
	s.bodies = append(s.bodies, b)
	s.stats.Spawned++
	event.EmitSpawned(s.events, s.tick, b.ID, b.Type)
	return b.ID
}

// flushSpawns materializes clones staged by the gate pass. Runs after
// compaction so new bodies never shift indices mid-pipeline.
func (s *Sim) flushSpawns() {
	for i := range s.pending {
		s.commit(s.pending[i])
	}
	s.pending = s.pending[:0]
}

// DropRequest is one queued user drop
type DropRequest struct {
	Pos  vmath.Vec3
	Type core.BodyType
}

// DropQueue replaces coroutine-staggered spawning: the front-end queues
// drops and drains them at whatever rate it wants. The core itself has no
// notion of waiting.
type DropQueue struct {
	pending []DropRequest
}

func (q *DropQueue) Push(pos vmath.Vec3, t core.BodyType) {
	q.pending = append(q.pending, DropRequest{Pos: pos, Type: t})
}

func (q *DropQueue) Len() int {
	return len(q.pending)
}

// Drain spawns up to max queued drops into s, returning how many spawned.
// Requests rejected by the sim (bad type, body ceiling) are discarded.
func (q *DropQueue) Drain(s *Sim, max int) int {
	spawned := 0
	for spawned < max && len(q.pending) > 0 {
		req := q.pending[0]
		q.pending = q.pending[1:]
		if _, err := s.SpawnBody(req.Pos, req.Type); err == nil {
			spawned++
		}
	}
	return spawned
}
