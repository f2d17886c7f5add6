package component

import "github.com/go-gl/mathgl/mgl64"

// ForceMode selects how AddForce treats its argument.
type ForceMode int

const (
	// ForceContinuous is integrated over the next physics step (mass-scaled acceleration).
	ForceContinuous ForceMode = iota
	// ForceImpulse changes velocity immediately by impulse/mass.
	ForceImpulse
)

func (m ForceMode) String() string {
	switch m {
	case ForceContinuous:
		return "force"
	case ForceImpulse:
		return "impulse"
	default:
		return "unknown"
	}
}

// Body is the physics body contract the controller drives. Y is up. The
// controller never simulates the body itself; it only reads and writes
// through this interface.
type Body interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	Drag() float64
	SetDrag(drag float64)
	Kinematic() bool
	SetKinematic(kinematic bool)
	AddForce(f mgl64.Vec3, mode ForceMode)
	// ScaleY is the vertical scale of the body's collider (1 = standing).
	ScaleY() float64
	SetScaleY(scale float64)
}

// PhysicsBody binds an entity to its external body.
type PhysicsBody struct {
	Body Body
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
