package component

import "github.com/go-gl/mathgl/mgl64"

// Layer is a bitmask of collision categories used to filter probes.
type Layer uint32

const (
	LayerGround Layer = 1 << iota
	LayerWall
	LayerObstacle
	LayerPlayer

	LayerNone Layer = 0
	LayerAll  Layer = ^Layer(0)
)

// ParseLayer maps a level-file layer name to its bit. Unknown names map to LayerNone.
func ParseLayer(name string) Layer {
	switch name {
	case "ground":
		return LayerGround
	case "wall":
		return LayerWall
	case "obstacle":
		return LayerObstacle
	case "player":
		return LayerPlayer
	default:
		return LayerNone
	}
}

// RaycastHit describes the closest surface a probe ray touched.
type RaycastHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Layer    Layer
}

// Probe is the physics query contract behind the ground/wall/vault sensors.
// A miss is reported as ok == false, never as an error.
type Probe interface {
	Raycast(origin, dir mgl64.Vec3, distance float64, mask Layer) (hit RaycastHit, ok bool)
}

// Sensor holds the probe and the masks each query uses.
type Sensor struct {
	Probe      Probe
	GroundMask Layer
	WallMask   Layer
	// VaultMask defaults to every layer except the player's own.
	VaultMask Layer
}

// DefaultSensor returns masks matching the level layer names.
func DefaultSensor(probe Probe) Sensor {
	return Sensor{
		Probe:      probe,
		GroundMask: LayerGround,
		WallMask:   LayerWall,
		VaultMask:  LayerAll &^ LayerPlayer,
	}
}

var SensorComponent = NewComponent[Sensor]()
