package engine

import (
	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/vmath"

	"github.com/chewxy/math32"
)

// cellKey addresses one broad-phase cell on the X/Y board plane. The arena
// is 2.5D: depth is shallow relative to the cell size, so hashing two axes
// keeps the neighborhood scan at 9 cells instead of 27.
type cellKey struct {
	X, Y int32
}

// spatialHash buckets awake bodies by cell each tick. Cell slices are
// retained between ticks and truncated, not freed, so steady-state ticks
// allocate nothing.
type spatialHash struct {
	inv   float32
	cells map[cellKey][]int32
}

func newSpatialHash(cellSize float32) *spatialHash {
	return &spatialHash{
		inv:   1.0 / cellSize,
		cells: make(map[cellKey][]int32, 256),
	}
}

func (h *spatialHash) keyFor(p vmath.Vec3) cellKey {
	return cellKey{
		X: int32(math32.Floor(p.X * h.inv)),
		Y: int32(math32.Floor(p.Y * h.inv)),
	}
}

// reset truncates every cell, keeping capacity. The hash is rebuilt from
// scratch each tick and never reused across ticks.
func (h *spatialHash) reset() {
	for k, c := range h.cells {
		h.cells[k] = c[:0]
	}
}

func (h *spatialHash) insert(idx int32, p vmath.Vec3) {
	k := h.keyFor(p)
	h.cells[k] = append(h.cells[k], idx)
}

// forNeighbors calls fn for every stored index in the 3x3 neighborhood of p
func (h *spatialHash) forNeighbors(p vmath.Vec3, fn func(idx int32)) {
	center := h.keyFor(p)
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			for _, idx := range h.cells[cellKey{X: center.X + dx, Y: center.Y + dy}] {
				fn(idx)
			}
		}
	}
}

// sleeperGrid indexes sleeping bodies by cell. Sleepers have zero velocity
// and never move, so the grid persists across ticks and is only touched on
// sleep/wake/destroy transitions. It is what lets an awake body push (and
// wake) a sleeping neighbor that is absent from the per-tick hash.
type sleeperGrid struct {
	inv   float32
	cells map[cellKey][]core.Handle
}

func newSleeperGrid(cellSize float32) *sleeperGrid {
	return &sleeperGrid{
		inv:   1.0 / cellSize,
		cells: make(map[cellKey][]core.Handle, 64),
	}
}

func (g *sleeperGrid) keyFor(p vmath.Vec3) cellKey {
	return cellKey{
		X: int32(math32.Floor(p.X * g.inv)),
		Y: int32(math32.Floor(p.Y * g.inv)),
	}
}

func (g *sleeperGrid) add(h core.Handle, p vmath.Vec3) {
	k := g.keyFor(p)
	g.cells[k] = append(g.cells[k], h)
}

// remove deletes h from the cell containing p using swap-remove
func (g *sleeperGrid) remove(h core.Handle, p vmath.Vec3) {
	k := g.keyFor(p)
	cell := g.cells[k]
	for i, other := range cell {
		if other == h {
			cell[i] = cell[len(cell)-1]
			g.cells[k] = cell[:len(cell)-1]
			return
		}
	}
}

// forNeighbors calls fn for every sleeping handle in the 3x3 neighborhood
func (g *sleeperGrid) forNeighbors(p vmath.Vec3, fn func(h core.Handle)) {
	center := g.keyFor(p)
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			for _, h := range g.cells[cellKey{X: center.X + dx, Y: center.Y + dy}] {
				fn(h)
			}
		}
	}
}
