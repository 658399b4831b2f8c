package physics

import (
	"github.com/conhill/vampdrop/parameter"
	"github.com/conhill/vampdrop/vmath"

	"github.com/chewxy/math32"
)

// SeparatePair resolves one overlapping sphere pair in place: mass-ratio
// positional push-out (capped per body) plus a soft velocity correction
// along the contact normal. Returns false if the pair is not overlapping.
//
// A perfectly coincident pair is nudged along +X to break the stacking
// lock instead of dividing by zero.
func SeparatePair(posA, posB, velA, velB *vmath.Vec3, radiusA, radiusB, massA, massB float32) bool {
	dx := posB.X - posA.X
	dy := posB.Y - posA.Y
	dz := posB.Z - posA.Z

	distSq := dx*dx + dy*dy + dz*dz
	minDist := radiusA + radiusB
	if distSq >= minDist*minDist {
		return false
	}

	var nx, ny, nz, dist float32
	if distSq > 1e-12 {
		dist = math32.Sqrt(distSq)
		invDist := 1.0 / dist
		nx, ny, nz = dx*invDist, dy*invDist, dz*invDist
	} else {
		nx, dist = 1, 0
	}

	overlap := minDist - dist

	totalMass := massA + massB
	ratioA := massB / totalMass
	ratioB := massA / totalMass

	sepA := overlap * ratioA
	sepB := overlap * ratioB
	if sepA > parameter.MaxSeparation {
		sepA = parameter.MaxSeparation
	}
	if sepB > parameter.MaxSeparation {
		sepB = parameter.MaxSeparation
	}

	posA.X -= nx * sepA
	posA.Y -= ny * sepA
	posA.Z -= nz * sepA
	posB.X += nx * sepB
	posB.Y += ny * sepB
	posB.Z += nz * sepB

	// Soft velocity correction: damped impulse along the contact normal,
	// only when the pair is approaching
	relVx := velA.X - velB.X
	relVy := velA.Y - velB.Y
	relVz := velA.Z - velB.Z

	vn := relVx*nx + relVy*ny + relVz*nz
	if vn <= 0 {
		return true
	}

	invA := 1.0 / massA
	invB := 1.0 / massB
	j := parameter.SoftCorrection * vn / (invA + invB)

	jInvA := j * invA
	jInvB := j * invB

	velA.X -= jInvA * nx
	velA.Y -= jInvA * ny
	velA.Z -= jInvA * nz
	velB.X += jInvB * nx
	velB.Y += jInvB * ny
	velB.Z += jInvB * nz

	return true
}
