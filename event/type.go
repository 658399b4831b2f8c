package event

// Type identifies a simulation event
type Type int

const (
	// EventScore fires when a body reaches a goal gate
	// Consumer: economy collaborator | Payload: ScorePayload
	EventScore Type = iota

	// EventMultiply fires when a gate multiplies a body
	// Consumer: telemetry/UI | Payload: MultiplyPayload
	EventMultiply

	// EventBodySpawned fires for every body that materializes,
	// drops and gate clones included | Payload: SpawnedPayload
	EventBodySpawned

	// EventBodyDestroyed fires when a body is compacted out
	// Payload: DestroyedPayload
	EventBodyDestroyed

	// EventSpawnDropped fires when spawn requests hit the body ceiling
	// Payload: DroppedPayload (count since last emit)
	EventSpawnDropped
)

func (t Type) String() string {
	switch t {
	case EventScore:
		return "score"
	case EventMultiply:
		return "multiply"
	case EventBodySpawned:
		return "body_spawned"
	case EventBodyDestroyed:
		return "body_destroyed"
	case EventSpawnDropped:
		return "spawn_dropped"
	default:
		return "unknown"
	}
}

// Event is one queued simulation event
// Tick is the simulation tick that produced it
type Event struct {
	Type    Type
	Tick    uint64
	Payload any
}
