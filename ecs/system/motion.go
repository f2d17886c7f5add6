package system

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
)

const (
	// jumpMomentumFactor scales the forward impulse added by ground and double jumps.
	jumpMomentumFactor = 0.5
	// crouchImpulse pushes the body down when crouching starts.
	crouchImpulse = 5.0
	// moveThreshold is the move magnitude below which the player counts as idle.
	moveThreshold = 0.1
	// slideDuration is how long a slide owns the body.
	slideDuration = 1.0
	// wallJumpCooldown gates repeated wall jumps.
	wallJumpCooldown = 0.5
)

// MotionSystem arbitrates the player's per-frame intents into jumps, crouch,
// and the exclusive slide/vault/dash sessions.
type MotionSystem struct {
	log *slog.Logger
}

func NewMotionSystem(logger *slog.Logger) *MotionSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &MotionSystem{log: logger.With(slog.String("system", "motion"))}
}

func (s *MotionSystem) Update(w *ecs.World, clock ecs.Clock) {
	if w == nil {
		return
	}

	for _, e := range w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.MovementComponent.Kind(),
		component.MotionStateComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	) {
		ctx, ok := newMotionContext(w, e, clock, s.log)
		if !ok {
			continue
		}
		// intents from another frame were already acted on
		if ctx.input.Frame != clock.Frame {
			continue
		}
		s.arbitrate(ctx)
	}
}

func (s *MotionSystem) arbitrate(ctx *motionContext) {
	syncGatedAbilities(ctx)

	if ctx.contacts.Landed {
		ctx.state.Jumps.Used = 0
	}

	in := ctx.input
	if in.JumpPressed && resolveJump(ctx) {
		// a vault consumes the rest of the frame's input
		return
	}

	if in.CrouchPressed {
		startCrouch(ctx)
	}
	if in.CrouchReleased {
		stopCrouch(ctx)
	}

	if in.DashPressed {
		tryDash(ctx)
	}
}

// syncGatedAbilities copies the current tuning into the ability timers so a
// hot-reloaded tuning applies to the next activation.
func syncGatedAbilities(ctx *motionContext) {
	ctx.state.Slide.Duration = slideDuration
	ctx.state.Slide.Cooldown = ctx.tuning.SlideCooldown
	ctx.state.Dash.Duration = ctx.tuning.DashDuration
	ctx.state.Dash.Cooldown = ctx.tuning.DashCooldown
	ctx.state.WallJump.Duration = 0
	ctx.state.WallJump.Cooldown = wallJumpCooldown
}

// resolveJump handles one jump press. It reports whether a vault started.
func resolveJump(ctx *motionContext) bool {
	if ctx.state.Session.Kind == component.SessionVaulting {
		ctx.reject("jump", "vaulting")
		return false
	}

	if canVault(ctx) {
		ctx.beginSession(sessionVault)
		return true
	}

	switch {
	case ctx.contacts.Grounded:
		applyJumpImpulse(ctx, ctx.tuning.JumpForce)
		ctx.state.Jumps.Used = 1
		logJump(ctx, "ground")
	case ctx.contacts.TouchingWall && ctx.abilities.WallJump && ctx.state.WallJump.Ready():
		wallJump(ctx)
		logJump(ctx, "wall")
	case ctx.abilities.DoubleJump && ctx.state.Jumps.Used < ctx.tuning.MaxJumpCount:
		applyJumpImpulse(ctx, ctx.tuning.JumpForce)
		ctx.state.Jumps.Used++
		logJump(ctx, "double")
	default:
		ctx.reject("jump", "no jumps left")
	}
	return false
}

func canVault(ctx *motionContext) bool {
	if !ctx.abilities.Vault || ctx.state.Session.Active() {
		return false
	}
	return ctx.contacts.VaultHit && ctx.contacts.VaultHeight < ctx.tuning.VaultHeight
}

func applyJumpImpulse(ctx *motionContext, force float64) {
	zeroVerticalVelocity(ctx.body)
	ctx.body.AddForce(component.Up.Mul(force), component.ForceImpulse)
	momentum := ctx.orientation.Forward().Mul(ctx.tuning.MoveSpeed * jumpMomentumFactor)
	ctx.body.AddForce(momentum, component.ForceImpulse)
}

func wallJump(ctx *motionContext) {
	force := ctx.tuning.WallJumpForce
	zeroVerticalVelocity(ctx.body)
	ctx.body.AddForce(component.Up.Mul(force), component.ForceImpulse)
	away := component.Up.Sub(ctx.orientation.Forward()).Normalize()
	ctx.body.AddForce(away.Mul(force), component.ForceImpulse)
	if ctx.state.WallJump.Start() {
		ctx.state.WallJump.StartedFrame = ctx.clock.Frame
	}
}

func zeroVerticalVelocity(body component.Body) {
	vel := body.Velocity()
	body.SetVelocity(mgl64.Vec3{vel.X(), 0, vel.Z()})
}

func startCrouch(ctx *motionContext) {
	if !ctx.state.Stance.Crouched {
		ctx.state.Stance.StandingScaleY = ctx.body.ScaleY()
	}
	ctx.state.Stance.Crouched = true
	ctx.body.SetScaleY(ctx.tuning.CrouchYScale)
	ctx.body.AddForce(component.Up.Mul(-crouchImpulse), component.ForceImpulse)

	switch {
	case !ctx.abilities.Slide:
		ctx.reject("slide", "locked")
	case !ctx.contacts.Grounded || !ctx.input.SprintHeld || ctx.move().Len() <= moveThreshold:
		// plain crouch
	case ctx.state.Session.Active():
		ctx.reject("slide", "session active")
	case !ctx.state.Slide.Ready():
		ctx.reject("slide", "cooling down")
	default:
		ctx.state.Slide.Start()
		ctx.state.Slide.StartedFrame = ctx.clock.Frame
		ctx.beginSession(sessionSlide)
	}
}

func stopCrouch(ctx *motionContext) {
	if !ctx.state.Stance.Crouched {
		return
	}
	ctx.state.Stance.Crouched = false
	ctx.body.SetScaleY(ctx.state.Stance.StandingScaleY)
}

func tryDash(ctx *motionContext) {
	switch {
	case !ctx.abilities.Dash:
		ctx.reject("dash", "locked")
	case ctx.state.Session.Active():
		ctx.reject("dash", "session active")
	case !ctx.state.Dash.Ready():
		ctx.reject("dash", "cooling down")
	default:
		ctx.state.Dash.Start()
		ctx.state.Dash.StartedFrame = ctx.clock.Frame
		ctx.beginSession(sessionDash)
	}
}

func logJump(ctx *motionContext, kind string) {
	ctx.log.Debug("jump",
		slog.String("entity", ctx.entity.String()),
		slog.String("kind", kind),
		slog.Int("jumps", ctx.state.Jumps.Used),
	)
}
