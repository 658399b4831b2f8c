package engine

import (
	"testing"

	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/vmath"
)

func collectNeighbors(h *spatialHash, p vmath.Vec3) []int32 {
	var got []int32
	h.forNeighbors(p, func(idx int32) { got = append(got, idx) })
	return got
}

func TestSpatialHashFindsAdjacentCells(t *testing.T) {
	h := newSpatialHash(1.0)

	h.insert(0, vmath.Vec3{X: 0.5, Y: 0.5})  // cell (0,0)
	h.insert(1, vmath.Vec3{X: 1.5, Y: 0.5})  // cell (1,0)
	h.insert(2, vmath.Vec3{X: 0.5, Y: -0.5}) // cell (0,-1)
	h.insert(3, vmath.Vec3{X: 5.5, Y: 5.5})  // far away

	got := collectNeighbors(h, vmath.Vec3{X: 0.5, Y: 0.5})
	seen := make(map[int32]bool)
	for _, idx := range got {
		seen[idx] = true
	}
	if !seen[0] || !seen[1] || !seen[2] {
		t.Fatalf("neighborhood %v missing adjacent-cell entries", got)
	}
	if seen[3] {
		t.Fatal("distant entry leaked into the neighborhood")
	}
}

func TestSpatialHashNegativeCoordinates(t *testing.T) {
	h := newSpatialHash(1.0)

	// Floor, not truncation: -0.1 and +0.1 land in different cells
	a := h.keyFor(vmath.Vec3{X: -0.1, Y: 0})
	b := h.keyFor(vmath.Vec3{X: 0.1, Y: 0})
	if a == b {
		t.Fatal("points straddling zero hashed to the same cell")
	}
	if a.X != -1 {
		t.Fatalf("keyFor(-0.1).X = %d, want -1", a.X)
	}

	// The entries still see each other across the zero boundary
	h.insert(0, vmath.Vec3{X: -0.1})
	h.insert(1, vmath.Vec3{X: 0.1})
	if got := collectNeighbors(h, vmath.Vec3{X: -0.1}); len(got) != 2 {
		t.Fatalf("neighborhood %v, want both straddling entries", got)
	}
}

func TestSpatialHashDepthIgnored(t *testing.T) {
	h := newSpatialHash(1.0)

	// The board is 2.5D: Z never separates entries
	h.insert(0, vmath.Vec3{X: 0.5, Y: 0.5, Z: -30})
	h.insert(1, vmath.Vec3{X: 0.5, Y: 0.5, Z: 30})

	if got := collectNeighbors(h, vmath.Vec3{X: 0.5, Y: 0.5}); len(got) != 2 {
		t.Fatalf("neighborhood %v, want both entries regardless of Z", got)
	}
}

func TestSpatialHashReset(t *testing.T) {
	h := newSpatialHash(1.0)
	h.insert(0, vmath.Vec3{})
	h.insert(1, vmath.Vec3{X: 0.2})

	h.reset()
	if got := collectNeighbors(h, vmath.Vec3{}); len(got) != 0 {
		t.Fatalf("entries %v survived reset", got)
	}

	// Cells are reusable after truncation
	h.insert(5, vmath.Vec3{})
	if got := collectNeighbors(h, vmath.Vec3{}); len(got) != 1 || got[0] != 5 {
		t.Fatalf("neighborhood %v after reinsert, want [5]", got)
	}
}

func TestSleeperGridAddRemove(t *testing.T) {
	g := newSleeperGrid(1.0)
	pos := vmath.Vec3{X: 2.5, Y: -3.5}

	g.add(7, pos)
	g.add(9, pos)

	var got []core.Handle
	g.forNeighbors(pos, func(h core.Handle) { got = append(got, h) })
	if len(got) != 2 {
		t.Fatalf("got %v, want two sleepers", got)
	}

	g.remove(7, pos)
	got = got[:0]
	g.forNeighbors(pos, func(h core.Handle) { got = append(got, h) })
	if len(got) != 1 || got[0] != 9 {
		t.Fatalf("got %v after remove, want [9]", got)
	}

	// Removing an absent handle is a no-op
	g.remove(7, pos)
	g.remove(9, vmath.Vec3{X: 40})
	got = got[:0]
	g.forNeighbors(pos, func(h core.Handle) { got = append(got, h) })
	if len(got) != 1 {
		t.Fatalf("got %v, removals must only hit their own cell", got)
	}
}
