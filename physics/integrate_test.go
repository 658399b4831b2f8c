package physics

import (
	"testing"

	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/vmath"
)

func testBody() core.Body {
	return core.Body{
		Radius:         0.35,
		Mass:           1,
		Restitution:    0.45,
		Friction:       0.12,
		SleepThreshold: 0.15,
	}
}

// A body with zero lateral velocity and nothing to hit must change only its
// vertical state, consistent with constant gravity plus drag, for the whole
// range of plausible timesteps.
func TestFreeFallStaysVertical(t *testing.T) {
	gravity := vmath.Vec3{Y: -25}

	for _, dt := range []float32{1.0 / 240, 1.0 / 120, 1.0 / 60, 1.0 / 30} {
		b := testBody()
		b.Pos = vmath.Vec3{X: 3, Y: 10, Z: -1}

		prevY := b.Pos.Y
		for step := 0; step < 120; step++ {
			prevVelY := b.Vel.Y
			Integrate(&b, gravity, 1e9, dt)

			if b.Pos.X != 3 || b.Pos.Z != -1 || b.Vel.X != 0 || b.Vel.Z != 0 {
				t.Fatalf("dt=%v: lateral state drifted: %+v", dt, b)
			}
			// Each step: vy' = (vy + g*dt) * (1 - friction*dt)
			wantVel := (prevVelY + gravity.Y*dt) * (1 - b.Friction*dt)
			if diff := b.Vel.Y - wantVel; diff > 1e-2 || diff < -1e-2 {
				t.Fatalf("dt=%v step=%d: vy=%v want %v", dt, step, b.Vel.Y, wantVel)
			}
			if b.Pos.Y >= prevY {
				t.Fatalf("dt=%v step=%d: body not falling", dt, step)
			}
			prevY = b.Pos.Y
		}
	}
}

func TestDragSlowsLateralVelocity(t *testing.T) {
	b := testBody()
	b.Vel = vmath.Vec3{X: 10}

	Integrate(&b, vmath.Vec3{}, 1e9, 1.0/60)
	if b.Vel.X >= 10 {
		t.Fatalf("drag did not reduce speed: %v", b.Vel.X)
	}
	if b.Vel.X <= 0 {
		t.Fatalf("drag overshot: %v", b.Vel.X)
	}
}

func TestTerminalSpeedClamp(t *testing.T) {
	b := testBody()
	b.Vel = vmath.Vec3{Y: -100}

	Integrate(&b, vmath.Vec3{Y: -25}, 40, 1.0/60)
	if speed := vmath.V3Mag(b.Vel); speed > 40+1e-4 {
		t.Fatalf("speed %v exceeds terminal 40", speed)
	}

	// Direction preserved
	if b.Vel.Y >= 0 || b.Vel.X != 0 {
		t.Fatalf("clamp changed direction: %+v", b.Vel)
	}
}

func TestClampSpeedLeavesSlowBodies(t *testing.T) {
	v := vmath.Vec3{X: 1, Y: 2}
	ClampSpeed(&v, 40)
	if v.X != 1 || v.Y != 2 {
		t.Fatalf("clamp touched a slow vector: %+v", v)
	}
}

func TestBelowSleepThreshold(t *testing.T) {
	cases := []struct {
		name string
		vel  vmath.Vec3
		want bool
	}{
		{"at rest", vmath.Vec3{}, true},
		{"slow everywhere", vmath.Vec3{X: 0.05, Y: -0.05, Z: 0.05}, true},
		{"fast vertical", vmath.Vec3{Y: -1}, false},
		{"fast horizontal", vmath.Vec3{X: 1}, false},
		{"fast depth", vmath.Vec3{Z: 1}, false},
		{"horizontal combined", vmath.Vec3{X: 0.12, Z: 0.12}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := testBody()
			b.Vel = tc.vel
			if got := BelowSleepThreshold(&b); got != tc.want {
				t.Fatalf("vel %+v: got %v, want %v", tc.vel, got, tc.want)
			}
		})
	}
}
