package vmath

import (
	"github.com/chewxy/math32"
)

// Vec3 is a float32 3D vector for physics-heavy calculations
// float32 keeps the body store compact at high body counts
type Vec3 struct {
	X, Y, Z float32
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3Dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3MagSq(v Vec3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float32 {
	return math32.Sqrt(V3MagSq(v))
}

func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3Finite reports whether all components are finite (no NaN/Inf)
func V3Finite(v Vec3) bool {
	return Finite(v.X) && Finite(v.Y) && Finite(v.Z)
}

// Finite reports whether a scalar is neither NaN nor infinite
func Finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
