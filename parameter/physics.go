package parameter

// Integration constants
const (
	// GravityY is vertical acceleration in world units/s^2
	GravityY = -25.0

	// TerminalSpeed caps body speed to keep fast bodies from tunneling
	// through obstacles in a single step
	TerminalSpeed = 40.0

	// SleepThreshold is the default per-axis speed below which a body is
	// put to sleep (horizontal and vertical checked independently)
	SleepThreshold = 0.15
)

// Wall collision constants
const (
	// WallPushOvershoot scales the push-out so a resolved contact ends
	// slightly outside the surface instead of exactly on it
	WallPushOvershoot = 1.05

	// WallPushCapFrac caps a single push-out to this fraction of the body
	// radius; large one-step corrections launch bodies visibly
	WallPushCapFrac = 0.5

	// WallDeepEmbedFrac marks a contact as deeply embedded; embedded bodies
	// also lose half their velocity to fight tunneling
	WallDeepEmbedFrac = 0.5

	// WallFrictionFrac is the tangential velocity fraction removed per wall
	// contact, letting bodies slide along ramps without sticking
	WallFrictionFrac = 0.08
)

// Broad-phase constants
const (
	// BroadCellSize is the spatial hash cell edge, tuned to the largest
	// body radius * 1.5 so a 3x3 neighborhood covers every possible pair
	BroadCellSize = BodyMaxRadius * 1.5

	// MaxSeparation caps per-pair positional correction, resolving deep
	// stacks over several ticks instead of explosively
	MaxSeparation = 0.15

	// SoftCorrection scales the pairwise velocity impulse; 1.0 would be a
	// fully elastic response
	SoftCorrection = 0.55
)

// Spawn placement constants
const (
	// CloneJitterXZ is the horizontal randomization applied to gate clones
	CloneJitterXZ = 0.6

	// CloneLiftMin and CloneLiftMax bound the vertical offset above the
	// triggering body, preventing immediate re-stacking of clones
	CloneLiftMin = 0.4
	CloneLiftMax = 1.2
)
