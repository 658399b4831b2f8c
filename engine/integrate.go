package engine

import (
	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/parameter"
	"github.com/conhill/vampdrop/physics"
	"github.com/conhill/vampdrop/vmath"
)

// integrate advances every awake body and applies the corruption guard.
// Bad numbers are repaired locally and counted; nothing propagates.
func (s *Sim) integrate(dt float32) {
	gravity := vmath.Vec3{Y: parameter.GravityY}

	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Asleep || b.Dead {
			continue
		}

		physics.Integrate(b, gravity, parameter.TerminalSpeed, dt)

		if !vmath.V3Finite(b.Pos) || !vmath.V3Finite(b.Vel) || s.escaped(b.Pos) {
			s.resetBody(b)
			continue
		}

		s.clampToArena(b)
	}
}

// sleepPass runs after collision resolution, when resting-contact bodies
// genuinely settle: evaluated before the wall reflection, a supported body
// always carries one gravity step of speed and would never sleep. Bodies
// woken earlier in the same tick are left awake for at least one full step.
func (s *Sim) sleepPass() {
	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Asleep || b.Dead || b.WokeTick == s.tick {
			continue
		}
		if physics.BelowSleepThreshold(b) {
			s.sleep(i)
		}
	}
}

// escaped reports a position beyond the arena by more than the reset margin
func (s *Sim) escaped(p vmath.Vec3) bool {
	a := &s.lv.Arena
	const m = parameter.ResetMargin
	return p.X < a.Min.X-m || p.X > a.Max.X+m ||
		p.Y < a.Min.Y-m || p.Y > a.Max.Y+m ||
		p.Z < a.Min.Z-m || p.Z > a.Max.Z+m
}

// clampToArena hard-clamps small excursions. The lower Y face is left open:
// falling past it is the kill plane's job, not a clamp.
func (s *Sim) clampToArena(b *core.Body) {
	a := &s.lv.Arena
	b.Pos.X = vmath.Clamp(b.Pos.X, a.Min.X, a.Max.X)
	b.Pos.Z = vmath.Clamp(b.Pos.Z, a.Min.Z, a.Max.Z)
	if b.Pos.Y > a.Max.Y {
		b.Pos.Y = a.Max.Y
	}
}

// resetBody recovers a corrupted body in place: safe fallback position,
// zero velocity, awake. Never fatal, never propagated. WokeTick keeps the
// zero-velocity body out of this tick's sleep pass so it falls again.
func (s *Sim) resetBody(b *core.Body) {
	b.Pos = s.lv.Arena.Fallback
	b.Vel = vmath.Vec3{}
	b.WokeTick = s.tick
	s.stats.Resets++
}

// sleep transitions body i to the asleep state: velocity zeroed, excluded
// from every pass, registered in the sleeper grid so awake neighbors can
// still find and wake it.
func (s *Sim) sleep(i int) {
	b := &s.bodies[i]
	if b.Asleep {
		return
	}
	b.Vel = vmath.Vec3{}
	b.Asleep = true
	s.sleepers.add(b.ID, b.Pos)
}

// wake transitions body i back to fully simulated
func (s *Sim) wake(i int) {
	b := &s.bodies[i]
	if !b.Asleep {
		return
	}
	s.sleepers.remove(b.ID, b.Pos)
	b.Asleep = false
	b.WokeTick = s.tick
}
