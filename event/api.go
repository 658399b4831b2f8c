package event

import (
	"github.com/conhill/vampdrop/core"
)

// Emit helpers keep payload construction next to the event contract.
// All are safe from any goroutine; a nil queue is a silent no-op so the
// core can run headless in tests.

func EmitScore(q *Queue, tick uint64, t core.BodyType, pointsMult float32) {
	if q == nil {
		return
	}
	q.Push(Event{
		Type:    EventScore,
		Tick:    tick,
		Payload: ScorePayload{BodyType: t, PointsMultiplier: pointsMult},
	})
}

func EmitMultiply(q *Queue, tick uint64, gateID, spawned int) {
	if q == nil {
		return
	}
	q.Push(Event{
		Type:    EventMultiply,
		Tick:    tick,
		Payload: MultiplyPayload{GateInstanceID: gateID, SpawnedCount: spawned},
	})
}

func EmitSpawned(q *Queue, tick uint64, h core.Handle, t core.BodyType) {
	if q == nil {
		return
	}
	q.Push(Event{
		Type:    EventBodySpawned,
		Tick:    tick,
		Payload: SpawnedPayload{Handle: h, BodyType: t},
	})
}

func EmitDestroyed(q *Queue, tick uint64, h core.Handle, reason core.DestroyReason) {
	if q == nil {
		return
	}
	q.Push(Event{
		Type:    EventBodyDestroyed,
		Tick:    tick,
		Payload: DestroyedPayload{Handle: h, Reason: reason},
	})
}

func EmitDropped(q *Queue, tick uint64, count int) {
	if q == nil || count == 0 {
		return
	}
	q.Push(Event{
		Type:    EventSpawnDropped,
		Tick:    tick,
		Payload: DroppedPayload{Count: count},
	})
}
