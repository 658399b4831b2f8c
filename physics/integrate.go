package physics

import (
	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/vmath"

	"github.com/chewxy/math32"
)

// Integrate advances one awake body by dt:
// gravity, exponential drag, terminal speed clamp, position step.
// dt must already be clamped by the caller; the corruption and bounds
// guards live in the engine, which knows the arena.
func Integrate(b *core.Body, gravity vmath.Vec3, terminalSpeed, dt float32) {
	b.Vel = vmath.V3Add(b.Vel, vmath.V3Scale(gravity, dt))

	// Drag factor never goes negative on hitch-sized steps
	drag := 1 - b.Friction*dt
	if drag < 0 {
		drag = 0
	}
	b.Vel = vmath.V3Scale(b.Vel, drag)

	ClampSpeed(&b.Vel, terminalSpeed)

	b.Pos = vmath.V3Add(b.Pos, vmath.V3Scale(b.Vel, dt))
}

// ClampSpeed limits |v| to max, preserving direction
func ClampSpeed(v *vmath.Vec3, max float32) {
	magSq := vmath.V3MagSq(*v)
	if magSq <= max*max {
		return
	}
	scale := max / math32.Sqrt(magSq)
	v.X *= scale
	v.Y *= scale
	v.Z *= scale
}

// BelowSleepThreshold reports whether both the horizontal and vertical
// speed components are under the body's sleep threshold
func BelowSleepThreshold(b *core.Body) bool {
	t := b.SleepThreshold
	horizSq := b.Vel.X*b.Vel.X + b.Vel.Z*b.Vel.Z
	return horizSq < t*t && math32.Abs(b.Vel.Y) < t
}
