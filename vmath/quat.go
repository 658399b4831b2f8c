package vmath

import (
	"github.com/chewxy/math32"
)

// Quat is a unit quaternion for obstacle orientation
// Kept normalized by construction; Rotate assumes unit length
type Quat struct {
	W, X, Y, Z float32
}

// QuatIdentity is the no-rotation quaternion
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle builds a rotation of angle radians around axis
// A zero axis yields the identity
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	mag := V3Mag(axis)
	if mag == 0 {
		return QuatIdentity()
	}
	half := angle * 0.5
	s := math32.Sin(half) / mag
	return Quat{
		W: math32.Cos(half),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// Conjugate returns the inverse rotation for a unit quaternion
func (q Quat) Conjugate() Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Normalize rescales to unit length; degenerate input becomes identity
func (q Quat) Normalize() Quat {
	magSq := q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
	if magSq == 0 {
		return QuatIdentity()
	}
	inv := 1.0 / math32.Sqrt(magSq)
	return Quat{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

// Rotate applies the rotation to v using the expanded q*v*q' form
// (two cross products, no intermediate quaternion)
func (q Quat) Rotate(v Vec3) Vec3 {
	// t = 2 * (q.xyz × v)
	tx := 2 * (q.Y*v.Z - q.Z*v.Y)
	ty := 2 * (q.Z*v.X - q.X*v.Z)
	tz := 2 * (q.X*v.Y - q.Y*v.X)

	// v' = v + w*t + (q.xyz × t)
	return Vec3{
		X: v.X + q.W*tx + (q.Y*tz - q.Z*ty),
		Y: v.Y + q.W*ty + (q.Z*tx - q.X*tz),
		Z: v.Z + q.W*tz + (q.X*ty - q.Y*tx),
	}
}
