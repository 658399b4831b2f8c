package parameter

import "time"

// Tick & Engine Timing
const (
	// TickRate is the nominal simulation frequency
	TickRate = 60

	// FixedStep is the nominal fixed timestep in seconds
	FixedStep = 1.0 / float32(TickRate)

	// MaxStep clamps dt on frame hitches; larger steps destabilize the
	// integrator and let fast bodies tunnel
	MaxStep = 1.0 / 30.0

	// FrameInterval is the demo front-end render interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Body population limits
const (
	// MaxBodies is the hard body ceiling; spawn requests beyond it are
	// dropped and counted, never queued
	MaxBodies = 4096

	// MaxGates is the number of gate instances addressable by the per-body
	// gate bitset
	MaxGates = 64
)

// GateCheckInterval throttles gate tests to every Nth tick. Trades score
// latency (bounded by GateCheckInterval ticks) for throughput at high body
// counts. Tunable, not a contract.
const GateCheckInterval = 3
