package engine

import (
	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/event"
)

// markDead stages body i for destruction. Nothing is removed mid-iteration;
// the compaction pass applies all staged deaths at once.
func (s *Sim) markDead(i int, reason core.DestroyReason) {
	b := &s.bodies[i]
	if b.Dead {
		return
	}
	b.Dead = true
	b.DeadReason = reason
	s.deadCount++
}

// cleanup stages bodies past their lifetime or below the kill plane.
// Sleeping bodies age out too; they only skip collision work.
func (s *Sim) cleanup() {
	kill := s.lv.Arena.KillPlaneY
	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Dead {
			continue
		}
		switch {
		case s.now-b.SpawnTime > b.MaxLifetime:
			s.markDead(i, core.ReasonExpired)
		case b.Pos.Y < kill:
			s.markDead(i, core.ReasonKillPlane)
		}
	}
}

// compact removes all staged bodies in one swap-remove sweep. The spatial
// hash is rebuilt every tick, so the index moves need no hash fixup; only
// the handle index and the sleeper grid are maintained.
func (s *Sim) compact() {
	if s.deadCount == 0 {
		return
	}

	for i := 0; i < len(s.bodies); {
		b := &s.bodies[i]
		if !b.Dead {
			i++
			continue
		}

		if b.Asleep {
			s.sleepers.remove(b.ID, b.Pos)
		}
		delete(s.index, b.ID)
		event.EmitDestroyed(s.events, s.tick, b.ID, b.DeadReason)
		s.stats.Destroyed++

		last := len(s.bodies) - 1
		if i != last {
			s.bodies[i] = s.bodies[last]
			s.index[s.bodies[i].ID] = i
		}
		s.bodies = s.bodies[:last]
	}
	s.deadCount = 0
}
