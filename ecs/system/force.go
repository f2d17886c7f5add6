package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/vaultrun/common"
	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
)

const (
	// moveForceScale converts a target speed into a continuous force.
	moveForceScale = 10.0
	// jumpHoldGravityMultiplier is the gravity factor while rising with jump held.
	jumpHoldGravityMultiplier = 1.5
)

// ForceSystem shapes the body on the fixed physics tick: speed clamp, gravity
// shaping, ground drag and the continuous movement force. It stays out of the
// way while an ability session owns the body.
type ForceSystem struct{}

func NewForceSystem() *ForceSystem {
	return &ForceSystem{}
}

func (s *ForceSystem) Update(w *ecs.World, clock ecs.Clock) {
	if w == nil {
		return
	}

	for _, e := range w.Query(
		component.PlayerTagComponent.Kind(),
		component.MovementComponent.Kind(),
		component.MotionStateComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	) {
		state, _ := ecs.Get(w, e, component.MotionStateComponent.Kind())
		if state.Session.Active() {
			continue
		}
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if bodyComp.Body == nil {
			continue
		}
		tuning, _ := ecs.Get(w, e, component.MovementComponent.Kind())

		var in component.Input
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			in = *input
		}
		grounded := false
		if contacts, ok := ecs.Get(w, e, component.ContactsComponent.Kind()); ok {
			grounded = contacts.Grounded
		}

		integrate(bodyComp.Body, tuning, in, grounded, clock.Delta)
	}
}

func integrate(body component.Body, tuning *component.Movement, in component.Input, grounded bool, dt float64) {
	maxSpeed := MaxSpeed(tuning, in.SprintHeld, grounded)

	vel := common.ClampPlanar(body.Velocity(), maxSpeed)
	vel[1] += gravityShaping(tuning, vel.Y(), in.JumpHeld) * dt
	body.SetVelocity(vel)

	if grounded {
		body.SetDrag(tuning.GroundDrag)
	} else {
		body.SetDrag(0)
	}

	force := common.NormalizeOrZero(common.Planar(in.Move)).Mul(maxSpeed * moveForceScale)
	if !grounded {
		force = force.Mul(tuning.AirMultiplier)
	}
	if force != (mgl64.Vec3{}) {
		body.AddForce(force, component.ForceContinuous)
	}
}

// MaxSpeed is the horizontal speed limit: moveSpeed, times sprintMultiplier
// while sprinting on the ground.
func MaxSpeed(tuning *component.Movement, sprint, grounded bool) float64 {
	if sprint && grounded {
		return tuning.MoveSpeed * tuning.SprintMultiplier
	}
	return tuning.MoveSpeed
}

// gravityShaping returns the extra vertical acceleration on top of world
// gravity: heavier falls, and a short hop when jump is released early.
func gravityShaping(tuning *component.Movement, vy float64, jumpHeld bool) float64 {
	switch {
	case vy < 0:
		return tuning.Gravity * (tuning.FallMultiplier - 1)
	case vy > 0 && jumpHeld:
		return tuning.Gravity * (jumpHoldGravityMultiplier - 1)
	case vy > 0:
		return tuning.Gravity * (tuning.LowJumpMultiplier - 1)
	default:
		return 0
	}
}
