package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vaultrun/ecs/component"
)

// Space wraps a Chipmunk space seen from the side: world X and Y (up) map to
// the Chipmunk plane and Z is dropped.
type Space struct {
	space *cp.Space
	boxes []Box
}

// Box is a static level shape.
type Box struct {
	BB    cp.BB
	Layer component.Layer
}

// NewSpace creates a space with the given downward gravity (negative is down).
func NewSpace(gravity float64) *Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &Space{space: space}
}

// Space returns the underlying Chipmunk space.
func (s *Space) Space() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

// SetGravity updates the world gravity, used when tuning is reloaded.
func (s *Space) SetGravity(gravity float64) {
	s.space.SetGravity(cp.Vector{X: 0, Y: gravity})
}

// Gravity returns the vertical gravity.
func (s *Space) Gravity() float64 {
	return s.space.Gravity().Y
}

// AddBox adds a static box with its lower-left corner at (x, y).
func (s *Space) AddBox(x, y, w, h float64, layer component.Layer) {
	bb := cp.BB{L: x, B: y, R: x + w, T: y + h}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetFilter(layerFilter(layer))
	s.space.AddShape(shape)
	s.boxes = append(s.boxes, Box{BB: bb, Layer: layer})
}

// Boxes returns the static shapes added so far.
func (s *Space) Boxes() []Box {
	return s.boxes
}

// Step advances the simulation by dt seconds.
func (s *Space) Step(dt float64) {
	if s == nil || dt <= 0 {
		return
	}
	s.space.Step(dt)
}

// Raycast implements component.Probe. Rays with no in-plane direction miss.
func (s *Space) Raycast(origin, dir mgl64.Vec3, distance float64, mask component.Layer) (component.RaycastHit, bool) {
	planar := cp.Vector{X: dir.X(), Y: dir.Y()}
	if distance <= 0 || planar.Length() < 1e-6 {
		return component.RaycastHit{}, false
	}
	start := cp.Vector{X: origin.X(), Y: origin.Y()}
	end := start.Add(planar.Mult(distance))

	info := s.space.SegmentQueryFirst(start, end, 0, cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: cp.ALL_CATEGORIES,
		Mask:       uint(mask),
	})
	if info.Shape == nil {
		return component.RaycastHit{}, false
	}
	return component.RaycastHit{
		Point:    mgl64.Vec3{info.Point.X, info.Point.Y, origin.Z()},
		Normal:   mgl64.Vec3{info.Normal.X, info.Normal.Y, 0},
		Distance: info.Alpha * start.Distance(end),
		Layer:    component.Layer(info.Shape.Filter.Categories),
	}, true
}

func layerFilter(layer component.Layer) cp.ShapeFilter {
	return cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(layer),
		Mask:       cp.ALL_CATEGORIES,
	}
}

// dragDamping converts a linear drag coefficient into a per-step velocity factor.
func dragDamping(drag, dt float64) float64 {
	return math.Max(0, 1-drag*dt)
}
