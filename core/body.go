package core

import (
	"github.com/conhill/vampdrop/vmath"
)

// BodyType classifies a ball and selects its spawn profile
type BodyType uint8

const (
	TypeStandard BodyType = iota
	TypeBonusPoints
	TypeMultiplierBoost
	TypeLucky
	TypeHarmful
	BodyTypeCount
)

// Valid reports whether t names a known body type
func (t BodyType) Valid() bool {
	return t < BodyTypeCount
}

func (t BodyType) String() string {
	switch t {
	case TypeStandard:
		return "standard"
	case TypeBonusPoints:
		return "bonus_points"
	case TypeMultiplierBoost:
		return "multiplier_boost"
	case TypeLucky:
		return "lucky"
	case TypeHarmful:
		return "harmful"
	default:
		return "unknown"
	}
}

// Handle is a stable body identity, valid until the body is destroyed
// Zero is never a live handle
type Handle uint64

// GateMask records which gate instances a body has already triggered
// Append-only for the body's lifetime; bit index = Gate.InstanceID
type GateMask uint64

func (m GateMask) Has(id int) bool {
	return m&(1<<uint(id)) != 0
}

func (m *GateMask) Set(id int) {
	*m |= 1 << uint(id)
}

// Count returns the number of triggered gates
func (m GateMask) Count() int {
	n := 0
	for v := uint64(m); v != 0; v &= v - 1 {
		n++
	}
	return n
}

// DestroyReason explains a body's removal in BodyDestroyed events
type DestroyReason uint8

const (
	ReasonExpired DestroyReason = iota
	ReasonKillPlane
	ReasonScored
)

func (r DestroyReason) String() string {
	switch r {
	case ReasonExpired:
		return "expired"
	case ReasonKillPlane:
		return "kill_plane"
	case ReasonScored:
		return "scored"
	default:
		return "unknown"
	}
}

// Body is one simulated ball. Mutated only inside the tick pipeline;
// a body is either fully simulated or asleep (zero velocity, skipped by
// every collision pass), never anything in between.
type Body struct {
	ID  Handle
	Pos vmath.Vec3
	Vel vmath.Vec3

	Radius      float32
	Mass        float32
	Restitution float32
	Friction    float32

	Asleep         bool
	SleepThreshold float32

	Type             BodyType
	PointsMultiplier float32
	MultiplierBoost  float32
	HitGates         GateMask

	SpawnTime   float32
	MaxLifetime float32

	// dead stages deferred destruction; applied in one compaction pass
	Dead       bool
	DeadReason DestroyReason

	// WokeTick is the tick a collision last woke this body; the sleep
	// pass will not re-sleep a body woken in the same tick
	WokeTick uint64
}
