package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func close(a, b float32) bool {
	return float64(a-b) < epsilon && float64(b-a) < epsilon
}

func TestQuatRotateKnownAngles(t *testing.T) {
	cases := []struct {
		name  string
		axis  Vec3
		deg   float32
		in    Vec3
		want  Vec3
	}{
		{"identity", Vec3{Z: 1}, 0, Vec3{X: 1}, Vec3{X: 1}},
		{"z90", Vec3{Z: 1}, 90, Vec3{X: 1}, Vec3{Y: 1}},
		{"z-90", Vec3{Z: 1}, -90, Vec3{X: 1}, Vec3{Y: -1}},
		{"z180", Vec3{Z: 1}, 180, Vec3{X: 1}, Vec3{X: -1}},
		{"z45", Vec3{Z: 1}, 45, Vec3{X: 1}, Vec3{X: 0.70710678, Y: 0.70710678}},
		{"x90", Vec3{X: 1}, 90, Vec3{Y: 1}, Vec3{Z: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := QuatFromAxisAngle(tc.axis, tc.deg*math.Pi/180)
			got := q.Rotate(tc.in)
			if !close(got.X, tc.want.X) || !close(got.Y, tc.want.Y) || !close(got.Z, tc.want.Z) {
				t.Fatalf("rotate = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestQuatConjugateInverts(t *testing.T) {
	rng := NewFastRand(42)
	for i := 0; i < 100; i++ {
		axis := Vec3{X: rng.Jitter(1), Y: rng.Jitter(1), Z: rng.Jitter(1)}
		if V3Mag(axis) == 0 {
			continue
		}
		q := QuatFromAxisAngle(axis, rng.Jitter(math.Pi))
		v := Vec3{X: rng.Jitter(10), Y: rng.Jitter(10), Z: rng.Jitter(10)}

		back := q.Conjugate().Rotate(q.Rotate(v))
		if V3Mag(V3Sub(back, v)) > 1e-3 {
			t.Fatalf("iteration %d: conjugate did not invert: %+v != %+v", i, back, v)
		}
	}
}

func TestQuatRotatePreservesLength(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 1, Y: 2, Z: 3}, 1.2)
	v := Vec3{X: 3, Y: -4, Z: 5}
	if got, want := V3Mag(q.Rotate(v)), V3Mag(v); !close(got, want) {
		t.Fatalf("rotation changed length: %v -> %v", want, got)
	}
}

func TestAABBContains(t *testing.T) {
	b := AABB{Min: Vec3{X: -1, Y: -1, Z: -1}, Max: Vec3{X: 1, Y: 1, Z: 1}}

	if !b.Contains(Vec3{}) {
		t.Error("center should be inside")
	}
	if !b.Contains(Vec3{X: -1, Y: -1, Z: -1}) {
		t.Error("min corner is inclusive")
	}
	if b.Contains(Vec3{X: 1, Y: 0, Z: 0}) {
		t.Error("max face is exclusive")
	}
	if b.Contains(Vec3{X: 0, Y: 2, Z: 0}) {
		t.Error("outside point reported inside")
	}
}

func TestAABBFromCenterExtents(t *testing.T) {
	b := AABBFromCenterExtents(Vec3{X: 5, Y: 5}, Vec3{X: 1, Y: 2, Z: 3})
	if b.Min.X != 4 || b.Max.X != 6 || b.Min.Y != 3 || b.Max.Y != 7 || b.Min.Z != -3 || b.Max.Z != 3 {
		t.Fatalf("unexpected box: %+v", b)
	}
	if !b.Valid() {
		t.Error("box should be valid")
	}
}

func TestFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	if Finite(nan) || Finite(inf) || Finite(-inf) {
		t.Error("NaN/Inf reported finite")
	}
	if !V3Finite(Vec3{X: 1, Y: 2, Z: 3}) {
		t.Error("finite vector reported non-finite")
	}
	if V3Finite(Vec3{Y: nan}) {
		t.Error("NaN component reported finite")
	}
}

func TestFastRandDeterminism(t *testing.T) {
	a := NewFastRand(7)
	b := NewFastRand(7)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed diverged")
		}
	}
}

func TestFastRandRanges(t *testing.T) {
	rng := NewFastRand(1234)
	for i := 0; i < 1000; i++ {
		if f := rng.Float32(); f < 0 || f >= 1 {
			t.Fatalf("Float32 out of [0,1): %v", f)
		}
		if v := rng.Range(2, 5); v < 2 || v >= 5 {
			t.Fatalf("Range out of [2,5): %v", v)
		}
		if j := rng.Jitter(3); j < -3 || j >= 3 {
			t.Fatalf("Jitter out of [-3,3): %v", j)
		}
		if n := rng.Intn(10); n < 0 || n >= 10 {
			t.Fatalf("Intn out of range: %d", n)
		}
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if got := V3Normalize(Vec3{}); got != (Vec3{}) {
		t.Fatalf("normalize zero = %+v", got)
	}
}
