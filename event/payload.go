package event

import (
	"github.com/conhill/vampdrop/core"
)

// ScorePayload reports a body reaching a goal gate. The consumer converts
// this into currency; the core itself holds no economy state.
type ScorePayload struct {
	BodyType         core.BodyType
	PointsMultiplier float32
}

// MultiplyPayload reports a gate multiplication for telemetry/UI.
// Spawning the clones is internal to the core.
type MultiplyPayload struct {
	GateInstanceID int
	SpawnedCount   int
}

// SpawnedPayload reports a new body
type SpawnedPayload struct {
	Handle   core.Handle
	BodyType core.BodyType
}

// DestroyedPayload reports a removed body
type DestroyedPayload struct {
	Handle core.Handle
	Reason core.DestroyReason
}

// DroppedPayload reports spawn requests rejected at the body ceiling
type DroppedPayload struct {
	Count int
}
