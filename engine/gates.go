package engine

import (
	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/event"
	"github.com/conhill/vampdrop/parameter"
)

// checkGates runs at the gate cadence (every parameter.GateCheckInterval
// ticks). Each gate instance triggers at most once per body, recorded in
// the body's gate mask. Goal gates score and stage destruction; multiplier
// gates stage clones that materialize after the pass ends.
func (s *Sim) checkGates() {
	gates := s.lv.Gates
	if len(gates) == 0 {
		return
	}

	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Asleep || b.Dead {
			continue
		}

		for gi := range gates {
			g := &gates[gi]
			if b.HitGates.Has(g.InstanceID) || !g.Bounds.Contains(b.Pos) {
				continue
			}
			b.HitGates.Set(g.InstanceID)

			if g.IsGoal() {
				event.EmitScore(s.events, s.tick, b.Type, b.PointsMultiplier)
				s.stats.Scored++
				s.markDead(i, core.ReasonScored)
				break
			}

			spawned := s.stageClones(b, g)
			event.EmitMultiply(s.events, s.tick, g.InstanceID, spawned)
			s.stats.Multiplied++
			// The original survives and may trigger further gates
		}
	}
}

// stageClones stages multiplier-1 copies of b above its position. Clones
// inherit type, multiplier fields, and the post-hit gate mask, so they can
// never re-trigger the gate that made them. Returns how many were actually
// staged; the rest hit the body ceiling and are counted as drops.
func (s *Sim) stageClones(b *core.Body, g *core.Gate) int {
	want := g.Multiplier - 1
	staged := 0

	for n := 0; n < want; n++ {
		if s.liveAndPending() >= parameter.MaxBodies {
			s.droppedCount += want - n
			s.stats.Dropped += uint64(want - n)
			break
		}

		clone := *b
		clone.ID = 0 // assigned at flush
		clone.Dead = false
		clone.SpawnTime = s.now
		clone.Pos.X += s.rng.Jitter(parameter.CloneJitterXZ)
		clone.Pos.Y += s.rng.Range(parameter.CloneLiftMin, parameter.CloneLiftMax)
		clone.Pos.Z += s.rng.Jitter(parameter.CloneJitterXZ * 0.5)

		s.pending = append(s.pending, clone)
		staged++
	}
	return staged
}
