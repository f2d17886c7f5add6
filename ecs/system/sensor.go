package system

import (
	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
)

const (
	// groundProbeSlack extends the ground ray past the feet.
	groundProbeSlack = 0.1
	// vaultProbeRise lifts the vault ray above the body origin.
	vaultProbeRise = 0.5
)

// SensorSystem refreshes ground, wall and vault contacts from the probe.
type SensorSystem struct{}

func NewSensorSystem() *SensorSystem {
	return &SensorSystem{}
}

func (s *SensorSystem) Update(w *ecs.World, _ ecs.Clock) {
	if w == nil {
		return
	}

	for _, e := range w.Query(
		component.PlayerTagComponent.Kind(),
		component.SensorComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.OrientationComponent.Kind(),
		component.MovementComponent.Kind(),
		component.ContactsComponent.Kind(),
	) {
		sensor, _ := ecs.Get(w, e, component.SensorComponent.Kind())
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		orientation, _ := ecs.Get(w, e, component.OrientationComponent.Kind())
		tuning, _ := ecs.Get(w, e, component.MovementComponent.Kind())
		contacts, _ := ecs.Get(w, e, component.ContactsComponent.Kind())
		if sensor.Probe == nil || bodyComp.Body == nil {
			continue
		}

		grounded := IsGrounded(sensor, bodyComp.Body, tuning)
		contacts.WasGrounded = contacts.Grounded
		contacts.Grounded = grounded
		contacts.Landed = grounded && !contacts.WasGrounded
		contacts.TouchingWall = IsTouchingWall(sensor, bodyComp.Body, *orientation, tuning)
		contacts.VaultHeight, contacts.VaultHit = VaultObstacleHeight(sensor, bodyComp.Body, *orientation, tuning)
	}
}

// IsGrounded casts straight down from the body origin to just below the feet.
func IsGrounded(sensor *component.Sensor, body component.Body, tuning *component.Movement) bool {
	_, ok := sensor.Probe.Raycast(body.Position(), component.Up.Mul(-1), tuning.PlayerHeight*0.5+groundProbeSlack, sensor.GroundMask)
	return ok
}

// IsTouchingWall casts along the facing direction.
func IsTouchingWall(sensor *component.Sensor, body component.Body, orientation component.Orientation, tuning *component.Movement) bool {
	_, ok := sensor.Probe.Raycast(body.Position(), orientation.Forward(), tuning.WallCheckDistance, sensor.WallMask)
	return ok
}

// VaultObstacleHeight reports the height of the first obstacle ahead, measured
// from the body origin. ok is false when nothing is within vault range.
func VaultObstacleHeight(sensor *component.Sensor, body component.Body, orientation component.Orientation, tuning *component.Movement) (float64, bool) {
	pos := body.Position()
	origin := pos.Add(component.Up.Mul(vaultProbeRise))
	hit, ok := sensor.Probe.Raycast(origin, orientation.Forward(), tuning.VaultRange, sensor.VaultMask)
	if !ok {
		return 0, false
	}
	return hit.Point.Y() - pos.Y(), true
}
