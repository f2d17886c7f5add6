package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/vaultrun/ecs/component"
)

const stickDeadzone = 0.2

// KeyboardSource reads the keyboard and the first standard gamepad.
//
// The sandbox is a side view, so left/right turn the player to face -X/+X
// and count as forward input; W/S are unused. The facing is reported as
// camera yaw.
type KeyboardSource struct {
	yaw float64
}

func NewKeyboardSource() *KeyboardSource {
	return &KeyboardSource{yaw: math.Pi / 2}
}

func (k *KeyboardSource) Sample(_ uint64, _ float64) component.RawInput {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	raw := component.RawInput{
		Jump:       ebiten.IsKeyPressed(ebiten.KeySpace),
		Crouch:     ebiten.IsKeyPressed(ebiten.KeyControlLeft),
		Sprint:     ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
		Dash:       ebiten.IsKeyPressed(ebiten.KeyAltLeft),
		SlowMotion: ebiten.IsKeyPressed(ebiten.KeyQ),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}
		raw.Jump = raw.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		raw.Crouch = raw.Crouch || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
		raw.Sprint = raw.Sprint || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		raw.Dash = raw.Dash || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		raw.SlowMotion = raw.SlowMotion || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}

	if moveX > 0 {
		k.yaw = math.Pi / 2
	} else if moveX < 0 {
		k.yaw = -math.Pi / 2
	}
	raw.Vertical = math.Abs(moveX)
	raw.Yaw = k.yaw
	raw.HasYaw = true
	return raw
}
