package core

import (
	"github.com/conhill/vampdrop/vmath"
)

// Obstacle is one static oriented box. Immutable after the level table is
// built; safe to share across goroutines without synchronization.
type Obstacle struct {
	Center      vmath.Vec3
	HalfExtents vmath.Vec3
	Rotation    vmath.Quat
	Restitution float32

	// InvRotation is the cached inverse of Rotation, set by NewObstacle
	InvRotation vmath.Quat
}

// NewObstacle builds an obstacle with its inverse rotation pre-computed
// The rotation is normalized; callers may pass raw axis-angle output
func NewObstacle(center, half vmath.Vec3, rot vmath.Quat, restitution float32) Obstacle {
	rot = rot.Normalize()
	return Obstacle{
		Center:      center,
		HalfExtents: half,
		Rotation:    rot,
		Restitution: restitution,
		InvRotation: rot.Conjugate(),
	}
}

// ToLocal transforms a world point into the obstacle's local frame
func (o *Obstacle) ToLocal(p vmath.Vec3) vmath.Vec3 {
	return o.InvRotation.Rotate(vmath.V3Sub(p, o.Center))
}

// Gate is one trigger volume. Multiplier >= 2 multiplies passing bodies;
// Multiplier == 1 is a goal gate that scores and destroys them.
// InstanceID is unique within a level and is the bit index in GateMask.
type Gate struct {
	Bounds     vmath.AABB
	Multiplier int
	InstanceID int
}

// IsGoal reports whether this is a scoring gate
func (g *Gate) IsGoal() bool {
	return g.Multiplier == 1
}
