package component

import "github.com/go-gl/mathgl/mgl64"

// RawInput is what an input source reports for one frame: axes and held
// buttons only. Edges are derived by the input system.
type RawInput struct {
	// Horizontal is the strafe axis (-1 left, +1 right).
	Horizontal float64
	// Vertical is the forward axis (-1 back, +1 forward).
	Vertical float64

	// Yaw, when HasYaw is set, is the absolute facing reported by the camera.
	Yaw    float64
	HasYaw bool

	Jump       bool
	Crouch     bool
	Sprint     bool
	Dash       bool
	SlowMotion bool
}

// Input stores the resolved per-frame intents for an entity.
type Input struct {
	// Frame is the loop frame these intents were sampled on.
	Frame uint64

	// Move is the planar, orientation-relative move vector (not normalized).
	Move mgl64.Vec3

	JumpPressed       bool
	JumpHeld          bool
	CrouchPressed     bool
	CrouchReleased    bool
	CrouchHeld        bool
	SprintHeld        bool
	DashPressed       bool
	SlowMotionPressed bool

	// Raw is the unprocessed sample, kept for edge detection on the next frame.
	Raw RawInput
}

var InputComponent = NewComponent[Input]()
