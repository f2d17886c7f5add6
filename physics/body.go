package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vaultrun/ecs/component"
)

// Body is a box-shaped Chipmunk body implementing component.Body. Rotation is
// locked; drag damps velocity linearly each step.
type Body struct {
	space *Space
	body  *cp.Body
	shape *cp.Shape

	mass          float64
	width, height float64
	scaleY        float64
	drag          float64
}

// NewBody adds a dynamic box body centered at pos.
func (s *Space) NewBody(pos mgl64.Vec3, width, height, mass float64) *Body {
	b := &Body{
		space:  s,
		mass:   mass,
		width:  width,
		height: height,
		scaleY: 1,
	}
	b.body = cp.NewBody(mass, math.Inf(1))
	b.body.SetPosition(cp.Vector{X: pos.X(), Y: pos.Y()})
	b.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity, damping*dragDamping(b.drag, dt), dt)
	})
	s.space.AddBody(b.body)
	b.rebuildShape()
	return b
}

func (b *Body) rebuildShape() {
	if b.shape != nil {
		b.space.space.RemoveShape(b.shape)
	}
	shape := cp.NewBox(b.body, b.width, b.height*b.scaleY, 0)
	shape.SetFriction(0)
	shape.SetFilter(layerFilter(component.LayerPlayer))
	b.shape = b.space.space.AddShape(shape)
}

// Size returns the collider's current width and height.
func (b *Body) Size() (float64, float64) {
	return b.width, b.height * b.scaleY
}

func (b *Body) Position() mgl64.Vec3 {
	p := b.body.Position()
	return mgl64.Vec3{p.X, p.Y, 0}
}

func (b *Body) SetPosition(p mgl64.Vec3) {
	b.body.SetPosition(cp.Vector{X: p.X(), Y: p.Y()})
}

func (b *Body) Velocity() mgl64.Vec3 {
	v := b.body.Velocity()
	return mgl64.Vec3{v.X, v.Y, 0}
}

func (b *Body) SetVelocity(v mgl64.Vec3) {
	b.body.SetVelocityVector(cp.Vector{X: v.X(), Y: v.Y()})
}

func (b *Body) Drag() float64 { return b.drag }

func (b *Body) SetDrag(drag float64) { b.drag = drag }

func (b *Body) Kinematic() bool {
	return b.body.GetType() == cp.BODY_KINEMATIC
}

// SetKinematic switches between scripted and simulated motion. A kinematic
// body is held still so only SetPosition moves it.
func (b *Body) SetKinematic(kinematic bool) {
	if kinematic == b.Kinematic() {
		return
	}
	if kinematic {
		b.body.SetType(cp.BODY_KINEMATIC)
		b.body.SetVelocityVector(cp.Vector{})
		return
	}
	b.body.SetType(cp.BODY_DYNAMIC)
	b.body.SetMass(b.mass)
	b.body.SetMoment(math.Inf(1))
}

func (b *Body) AddForce(f mgl64.Vec3, mode component.ForceMode) {
	if b.Kinematic() {
		return
	}
	v := cp.Vector{X: f.X(), Y: f.Y()}
	switch mode {
	case component.ForceImpulse:
		b.body.ApplyImpulseAtWorldPoint(v, b.body.Position())
	default:
		b.body.ApplyForceAtWorldPoint(v, b.body.Position())
	}
}

func (b *Body) ScaleY() float64 { return b.scaleY }

func (b *Body) SetScaleY(scale float64) {
	if scale <= 0 || scale == b.scaleY {
		return
	}
	b.scaleY = scale
	b.rebuildShape()
}
