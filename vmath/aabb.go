package vmath

// AABB is an axis-aligned box, used for gate trigger volumes and arena bounds
type AABB struct {
	Min, Max Vec3
}

// AABBFromCenterExtents builds a box from a center point and half-extents
func AABBFromCenterExtents(center, half Vec3) AABB {
	return AABB{
		Min: V3Sub(center, half),
		Max: V3Add(center, half),
	}
}

// Contains reports whether p lies inside the box (inclusive min, exclusive max)
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y &&
		p.Z >= b.Min.Z && p.Z < b.Max.Z
}

// Valid reports whether the box has positive volume on every axis
func (b AABB) Valid() bool {
	return b.Max.X > b.Min.X && b.Max.Y > b.Min.Y && b.Max.Z > b.Min.Z
}
