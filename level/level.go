// Package level is the load boundary between level authoring data and the
// simulation core. It decodes YAML records, validates them, and bakes an
// immutable geometry table the engine reads but never mutates.
package level

import (
	"fmt"

	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/parameter"
	"github.com/conhill/vampdrop/vmath"
)

// Arena bounds the playable volume. Positions slightly outside are clamped;
// positions past ResetMargin are treated as corruption and reset to Fallback.
type Arena struct {
	Min, Max   vmath.Vec3
	KillPlaneY float32
	Fallback   vmath.Vec3
}

// Contains reports whether p is inside the arena volume
func (a *Arena) Contains(p vmath.Vec3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Level is a baked, immutable geometry table: obstacle and gate records in
// fixed order plus the arena envelope. Built once per level, shared freely.
type Level struct {
	Name      string
	Arena     Arena
	Obstacles []core.Obstacle
	Gates     []core.Gate
}

// Validate checks the invariants the engine depends on
func (l *Level) Validate() error {
	if !(vmath.AABB{Min: l.Arena.Min, Max: l.Arena.Max}).Valid() {
		return fmt.Errorf("level %q: arena has non-positive extent", l.Name)
	}
	if len(l.Gates) > parameter.MaxGates {
		return fmt.Errorf("level %q: %d gates exceeds limit %d", l.Name, len(l.Gates), parameter.MaxGates)
	}

	seen := make(map[int]bool, len(l.Gates))
	for i := range l.Gates {
		g := &l.Gates[i]
		if g.Multiplier < 1 {
			return fmt.Errorf("level %q: gate %d multiplier %d < 1", l.Name, i, g.Multiplier)
		}
		if g.InstanceID < 0 || g.InstanceID >= parameter.MaxGates {
			return fmt.Errorf("level %q: gate %d instance id %d out of range", l.Name, i, g.InstanceID)
		}
		if seen[g.InstanceID] {
			return fmt.Errorf("level %q: duplicate gate instance id %d", l.Name, g.InstanceID)
		}
		seen[g.InstanceID] = true
		if !g.Bounds.Valid() {
			return fmt.Errorf("level %q: gate %d has degenerate bounds", l.Name, i)
		}
	}

	for i := range l.Obstacles {
		h := l.Obstacles[i].HalfExtents
		if h.X <= 0 || h.Y <= 0 || h.Z <= 0 {
			return fmt.Errorf("level %q: obstacle %d has non-positive half extents", l.Name, i)
		}
	}
	return nil
}
