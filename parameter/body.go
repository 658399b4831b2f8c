package parameter

// BodyMaxRadius is the largest radius in the profile table; the broad-phase
// cell size derives from it
const BodyMaxRadius = 0.5

// BodyProfile is the per-type tuning block applied at spawn
type BodyProfile struct {
	Radius           float32
	Mass             float32
	Restitution      float32
	Friction         float32
	SleepThreshold   float32
	MaxLifetime      float32
	PointsMultiplier float32
	MultiplierBoost  float32
}

// BodyProfiles is indexed by the body type ordinal
// (Standard, BonusPoints, MultiplierBoost, Lucky, Harmful)
var BodyProfiles = [...]BodyProfile{
	{Radius: 0.35, Mass: 1.0, Restitution: 0.45, Friction: 0.12, SleepThreshold: SleepThreshold, MaxLifetime: BodyMaxLifetime, PointsMultiplier: 1.0, MultiplierBoost: 0},
	{Radius: 0.35, Mass: 1.0, Restitution: 0.45, Friction: 0.12, SleepThreshold: SleepThreshold, MaxLifetime: BodyMaxLifetime, PointsMultiplier: 3.0, MultiplierBoost: 0},
	{Radius: 0.40, Mass: 1.2, Restitution: 0.40, Friction: 0.12, SleepThreshold: SleepThreshold, MaxLifetime: BodyMaxLifetime, PointsMultiplier: 1.0, MultiplierBoost: 0.5},
	{Radius: 0.30, Mass: 0.8, Restitution: 0.60, Friction: 0.10, SleepThreshold: SleepThreshold, MaxLifetime: BodyMaxLifetime, PointsMultiplier: 1.0, MultiplierBoost: 0},
	{Radius: 0.45, Mass: 1.5, Restitution: 0.30, Friction: 0.16, SleepThreshold: SleepThreshold, MaxLifetime: BodyMaxLifetime, PointsMultiplier: -1.0, MultiplierBoost: 0},
}
