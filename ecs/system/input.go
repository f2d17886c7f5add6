package system

import (
	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
)

// InputSource reports the raw state of the controls for a frame. t is the
// real time in seconds since the first sample.
type InputSource interface {
	Sample(frame uint64, t float64) component.RawInput
}

// InputSystem samples the source once per frame and resolves the sample into
// intents on every player: the orientation-relative move vector, held
// buttons, and press/release edges against the previous frame.
type InputSystem struct {
	source  InputSource
	elapsed float64
	sampled bool
	frame   uint64
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

// SetSource swaps the input source; edges continue from the last sample.
func (i *InputSystem) SetSource(source InputSource) {
	i.source = source
}

func (i *InputSystem) Update(w *ecs.World, clock ecs.Clock) {
	if w == nil || i.source == nil {
		return
	}
	if i.sampled && i.frame == clock.Frame {
		return
	}
	if i.sampled {
		i.elapsed += clock.RealDelta
	}
	i.sampled = true
	i.frame = clock.Frame

	raw := i.source.Sample(clock.Frame, i.elapsed)

	ecs.ForEach2(w, component.InputComponent.Kind(), component.OrientationComponent.Kind(), func(e ecs.Entity, input *component.Input, orientation *component.Orientation) {
		if raw.HasYaw {
			orientation.Yaw = raw.Yaw
		}
		*input = Resolve(raw, input.Raw, *orientation, clock.Frame)
	})
}

// Resolve turns a raw sample into intents, given the previous frame's sample.
func Resolve(raw, prev component.RawInput, orientation component.Orientation, frame uint64) component.Input {
	move := orientation.Forward().Mul(raw.Vertical).Add(orientation.Right().Mul(raw.Horizontal))
	return component.Input{
		Frame:             frame,
		Move:              move,
		JumpPressed:       raw.Jump && !prev.Jump,
		JumpHeld:          raw.Jump,
		CrouchPressed:     raw.Crouch && !prev.Crouch,
		CrouchReleased:    !raw.Crouch && prev.Crouch,
		CrouchHeld:        raw.Crouch,
		SprintHeld:        raw.Sprint,
		DashPressed:       raw.Dash && !prev.Dash,
		SlowMotionPressed: raw.SlowMotion && !prev.SlowMotion,
		Raw:               raw,
	}
}
