package physics

import (
	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/parameter"
	"github.com/conhill/vampdrop/vmath"

	"github.com/chewxy/math32"
)

// ResolveObstacle tests a sphere against one oriented box in the box's
// local frame and, on penetration, pushes the sphere out and reflects its
// velocity. Returns true if contact was resolved.
//
// The push-out is capped to half the radius and slightly overshot; deep
// embeds additionally halve velocity to fight tunneling. A fraction of the
// tangential velocity is removed so bodies slide along ramps.
func ResolveObstacle(pos, vel *vmath.Vec3, radius, restitution float32, ob *core.Obstacle) bool {
	local := ob.ToLocal(*pos)

	closest := vmath.Vec3{
		X: vmath.Clamp(local.X, -ob.HalfExtents.X, ob.HalfExtents.X),
		Y: vmath.Clamp(local.Y, -ob.HalfExtents.Y, ob.HalfExtents.Y),
		Z: vmath.Clamp(local.Z, -ob.HalfExtents.Z, ob.HalfExtents.Z),
	}

	delta := vmath.V3Sub(local, closest)
	distSq := vmath.V3MagSq(delta)

	var pen float32
	var nLocal vmath.Vec3

	if distSq > 1e-12 {
		dist := math32.Sqrt(distSq)
		pen = radius - dist
		if pen <= 0 {
			return false
		}
		nLocal = vmath.V3Scale(delta, 1/dist)
	} else {
		// Center inside the box: exit through the nearest face
		nLocal, pen = insideExit(local, ob.HalfExtents)
		pen += radius
	}

	n := ob.Rotation.Rotate(nLocal)

	push := pen
	if limit := radius * parameter.WallPushCapFrac; push > limit {
		push = limit
	}
	*pos = vmath.V3Add(*pos, vmath.V3Scale(n, push*parameter.WallPushOvershoot))

	vn := vmath.V3Dot(*vel, n)
	if vn < 0 {
		e := restitution * ob.Restitution
		velN := vmath.V3Scale(n, vn)
		velT := vmath.V3Sub(*vel, velN)
		velT = vmath.V3Scale(velT, 1-parameter.WallFrictionFrac)
		*vel = vmath.V3Sub(velT, vmath.V3Scale(velN, e))
	}

	if pen > radius*parameter.WallDeepEmbedFrac {
		*vel = vmath.V3Scale(*vel, 0.5)
	}

	return true
}

// SignedDistance returns the local-space distance from the sphere surface
// to the box surface; negative means penetration
func SignedDistance(pos vmath.Vec3, radius float32, ob *core.Obstacle) float32 {
	local := ob.ToLocal(pos)
	closest := vmath.Vec3{
		X: vmath.Clamp(local.X, -ob.HalfExtents.X, ob.HalfExtents.X),
		Y: vmath.Clamp(local.Y, -ob.HalfExtents.Y, ob.HalfExtents.Y),
		Z: vmath.Clamp(local.Z, -ob.HalfExtents.Z, ob.HalfExtents.Z),
	}
	delta := vmath.V3Sub(local, closest)
	distSq := vmath.V3MagSq(delta)
	if distSq > 0 {
		return math32.Sqrt(distSq) - radius
	}
	// Center inside: negative depth to the nearest face, minus radius
	_, depth := insideExit(local, ob.HalfExtents)
	return -depth - radius
}

// insideExit picks the face nearest to a local point inside the box,
// returning the outward local normal and the depth to that face
func insideExit(local, half vmath.Vec3) (vmath.Vec3, float32) {
	dx := half.X - math32.Abs(local.X)
	dy := half.Y - math32.Abs(local.Y)
	dz := half.Z - math32.Abs(local.Z)

	switch {
	case dx <= dy && dx <= dz:
		return vmath.Vec3{X: sign(local.X)}, dx
	case dy <= dz:
		return vmath.Vec3{Y: sign(local.Y)}, dy
	default:
		return vmath.Vec3{Z: sign(local.Z)}, dz
	}
}

func sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}
