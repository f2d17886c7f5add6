package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// Orientation is the player's facing on the horizontal plane, written by the
// camera collaborator. Yaw 0 faces +Z; +π/2 faces +X.
type Orientation struct {
	Yaw float64
}

// Forward returns the unit facing vector.
func (o Orientation) Forward() mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(o.Yaw), 0, math.Cos(o.Yaw)}
}

// Right returns the unit vector 90° clockwise from Forward seen from above.
func (o Orientation) Right() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(o.Yaw), 0, -math.Sin(o.Yaw)}
}

var OrientationComponent = NewComponent[Orientation]()
