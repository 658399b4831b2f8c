package physics

import (
	"testing"

	"github.com/conhill/vampdrop/parameter"
	"github.com/conhill/vampdrop/vmath"
)

func TestSeparatePairNoOverlap(t *testing.T) {
	pa, pb := vmath.Vec3{}, vmath.Vec3{X: 1}
	va, vb := vmath.Vec3{X: 1}, vmath.Vec3{}

	if SeparatePair(&pa, &pb, &va, &vb, 0.35, 0.35, 1, 1) {
		t.Fatal("separated pair reported overlapping")
	}
	if pa != (vmath.Vec3{}) || va != (vmath.Vec3{X: 1}) {
		t.Fatal("state modified without overlap")
	}
}

func TestSeparatePairPushesApart(t *testing.T) {
	pa, pb := vmath.Vec3{}, vmath.Vec3{X: 0.5}
	va, vb := vmath.Vec3{}, vmath.Vec3{}

	if !SeparatePair(&pa, &pb, &va, &vb, 0.35, 0.35, 1, 1) {
		t.Fatal("overlapping pair not detected")
	}

	after := pb.X - pa.X
	if after <= 0.5 {
		t.Fatalf("pair not pushed apart: gap %v", after)
	}
	// Equal masses: symmetric push
	if diff := pa.X + (pb.X - 0.5); diff > 1e-5 || diff < -1e-5 {
		t.Fatalf("asymmetric push for equal masses: %v vs %v", pa.X, pb.X)
	}
}

func TestSeparatePairCapsCorrection(t *testing.T) {
	// Near-total overlap: raw half-overlap far exceeds the cap
	pa, pb := vmath.Vec3{}, vmath.Vec3{X: 0.01}
	va, vb := vmath.Vec3{}, vmath.Vec3{}

	SeparatePair(&pa, &pb, &va, &vb, 0.35, 0.35, 1, 1)

	if moved := -pa.X; moved > parameter.MaxSeparation+1e-4 {
		t.Fatalf("push %v exceeds cap %v", moved, parameter.MaxSeparation)
	}
}

func TestSeparatePairMassRatio(t *testing.T) {
	pa, pb := vmath.Vec3{}, vmath.Vec3{X: 0.6}
	va, vb := vmath.Vec3{}, vmath.Vec3{}

	// A three times heavier than B: B absorbs most of the correction
	SeparatePair(&pa, &pb, &va, &vb, 0.35, 0.35, 3, 1)

	if -pa.X >= pb.X-0.6 {
		t.Fatalf("heavy body moved more than light one: %v vs %v", -pa.X, pb.X-0.6)
	}
}

func TestSeparatePairVelocityCorrection(t *testing.T) {
	pa, pb := vmath.Vec3{}, vmath.Vec3{X: 0.6}
	va, vb := vmath.Vec3{X: 2}, vmath.Vec3{X: -2}

	SeparatePair(&pa, &pb, &va, &vb, 0.35, 0.35, 1, 1)

	// Approach speed must shrink but the correction is soft, not elastic
	if va.X >= 2 || vb.X <= -2 {
		t.Fatal("approaching velocities not corrected")
	}
	relAfter := va.X - vb.X
	if relAfter >= 4 || relAfter < 0 {
		t.Fatalf("relative approach %v out of expected range", relAfter)
	}
}

func TestSeparatePairSeparatingVelocityUntouched(t *testing.T) {
	pa, pb := vmath.Vec3{}, vmath.Vec3{X: 0.6}
	va, vb := vmath.Vec3{X: -1}, vmath.Vec3{X: 1}

	SeparatePair(&pa, &pb, &va, &vb, 0.35, 0.35, 1, 1)

	if va.X != -1 || vb.X != 1 {
		t.Fatalf("separating velocities modified: %v %v", va.X, vb.X)
	}
}

func TestSeparatePairCoincidentCenters(t *testing.T) {
	pa, pb := vmath.Vec3{X: 1, Y: 1}, vmath.Vec3{X: 1, Y: 1}
	va, vb := vmath.Vec3{}, vmath.Vec3{}

	if !SeparatePair(&pa, &pb, &va, &vb, 0.35, 0.35, 1, 1) {
		t.Fatal("coincident pair not detected")
	}
	if pa == pb {
		t.Fatal("coincident pair not nudged apart")
	}
	if !vmath.V3Finite(pa) || !vmath.V3Finite(pb) {
		t.Fatal("coincident pair produced non-finite positions")
	}
}
