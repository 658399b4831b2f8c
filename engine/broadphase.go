package engine

import (
	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/physics"
)

// collideBodies is the broad-phase pass: awake bodies are hashed into a
// uniform grid, then each scans its 3x3 neighborhood. Awake pairs resolve
// once (lower index owns the pair); sleeping bodies are never sources and
// never enter the per-tick hash, but an awake body can still push one via
// the sleeper grid, which wakes it within the same tick.
func (s *Sim) collideBodies() {
	s.grid.reset()

	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Asleep || b.Dead {
			continue
		}
		s.grid.insert(int32(i), b.Pos)
	}

	var sleeperHits []core.Handle

	for i := range s.bodies {
		a := &s.bodies[i]
		if a.Asleep || a.Dead {
			continue
		}

		// Awake vs awake
		s.grid.forNeighbors(a.Pos, func(jIdx int32) {
			j := int(jIdx)
			if j <= i {
				return
			}
			b := &s.bodies[j]
			if b.Dead {
				return
			}
			physics.SeparatePair(&a.Pos, &b.Pos, &a.Vel, &b.Vel,
				a.Radius, b.Radius, a.Mass, b.Mass)
		})

		// Awake vs asleep: collect first, since waking mutates the very
		// cells being scanned
		sleeperHits = sleeperHits[:0]
		s.sleepers.forNeighbors(a.Pos, func(h core.Handle) {
			sleeperHits = append(sleeperHits, h)
		})

		for _, h := range sleeperHits {
			j, ok := s.index[h]
			if !ok {
				continue
			}
			b := &s.bodies[j]
			if b.Dead || !b.Asleep || !overlaps(a, b) {
				continue
			}
			// Wake before the push so the sleeper-grid entry is removed
			// at the pre-push position
			s.wake(j)
			physics.SeparatePair(&a.Pos, &b.Pos, &a.Vel, &b.Vel,
				a.Radius, b.Radius, a.Mass, b.Mass)
		}
	}
}

func overlaps(a, b *core.Body) bool {
	dx := b.Pos.X - a.Pos.X
	dy := b.Pos.Y - a.Pos.Y
	dz := b.Pos.Z - a.Pos.Z
	r := a.Radius + b.Radius
	return dx*dx+dy*dy+dz*dz < r*r
}
