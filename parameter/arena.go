package parameter

// Arena defaults. A level may narrow these; they also bound the corruption
// guard, which resets any body that escapes them by ResetMargin.
const (
	ArenaHalfWidth  = 50.0
	ArenaHalfHeight = 50.0
	ArenaHalfDepth  = 50.0

	// ResetMargin is how far past the arena a position must stray before
	// the body is treated as corrupted and reset instead of clamped
	ResetMargin = 10.0

	// KillPlaneY destroys anything falling below it (level-overridable)
	KillPlaneY = -45.0

	// BodyMaxLifetime is the default age ceiling in seconds
	BodyMaxLifetime = 90.0
)
