package level

import (
	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/vmath"

	"github.com/chewxy/math32"
)

// Default returns the built-in demo board: a narrow vertical arena with two
// opposing 45° ramps, a pair of multiplier gates, and a goal gate above the
// kill plane. Used by the demo binary when no level file is given.
func Default() *Level {
	deg := func(d float32) float32 { return d * math32.Pi / 180 }
	zAxis := vmath.Vec3{Z: 1}

	lv := &Level{
		Name: "default",
		Arena: Arena{
			Min:        vmath.Vec3{X: -14, Y: -20, Z: -2},
			Max:        vmath.Vec3{X: 14, Y: 20, Z: 2},
			KillPlaneY: -19,
			Fallback:   vmath.Vec3{Y: 18},
		},
		Obstacles: []core.Obstacle{
			core.NewObstacle(
				vmath.Vec3{X: -6, Y: 8}, vmath.Vec3{X: 5, Y: 0.4, Z: 2},
				vmath.QuatFromAxisAngle(zAxis, deg(-20)), 0.5,
			),
			core.NewObstacle(
				vmath.Vec3{X: 6, Y: 2}, vmath.Vec3{X: 5, Y: 0.4, Z: 2},
				vmath.QuatFromAxisAngle(zAxis, deg(20)), 0.5,
			),
			core.NewObstacle(
				vmath.Vec3{X: -5, Y: -5}, vmath.Vec3{X: 4, Y: 0.4, Z: 2},
				vmath.QuatFromAxisAngle(zAxis, deg(-45)), 0.6,
			),
			// Side walls
			core.NewObstacle(
				vmath.Vec3{X: -13.5}, vmath.Vec3{X: 0.5, Y: 20, Z: 2},
				vmath.QuatIdentity(), 0.4,
			),
			core.NewObstacle(
				vmath.Vec3{X: 13.5}, vmath.Vec3{X: 0.5, Y: 20, Z: 2},
				vmath.QuatIdentity(), 0.4,
			),
		},
		Gates: []core.Gate{
			{
				Bounds:     vmath.AABB{Min: vmath.Vec3{X: -2, Y: 4.5, Z: -2}, Max: vmath.Vec3{X: 2, Y: 5.5, Z: 2}},
				Multiplier: 2,
				InstanceID: 0,
			},
			{
				Bounds:     vmath.AABB{Min: vmath.Vec3{X: 1, Y: -9, Z: -2}, Max: vmath.Vec3{X: 6, Y: -8, Z: 2}},
				Multiplier: 3,
				InstanceID: 1,
			},
			{
				Bounds:     vmath.AABB{Min: vmath.Vec3{X: -14, Y: -18, Z: -2}, Max: vmath.Vec3{X: 14, Y: -16.5, Z: 2}},
				Multiplier: 1, // goal
				InstanceID: 2,
			},
		},
	}
	return lv
}
