package common

import "github.com/go-gl/mathgl/mgl64"

// LerpVec3 interpolates between a and b. t is clamped to [0, 1].
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = mgl64.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}

// Planar drops the vertical component.
func Planar(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// NormalizeOrZero returns the unit vector along v, or zero for a zero vector.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// ClampPlanar rescales the horizontal part of v to at most max, leaving Y alone.
func ClampPlanar(v mgl64.Vec3, max float64) mgl64.Vec3 {
	flat := Planar(v)
	speed := flat.Len()
	if speed <= max || speed == 0 {
		return v
	}
	flat = flat.Mul(max / speed)
	return mgl64.Vec3{flat.X(), v.Y(), flat.Z()}
}
