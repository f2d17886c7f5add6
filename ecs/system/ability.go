package system

import (
	"log/slog"

	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
)

// AbilitySystem advances slide, dash and wall-jump timers on gameplay time,
// ends sessions whose time is up and drives the vault traversal.
type AbilitySystem struct {
	log *slog.Logger
}

func NewAbilitySystem(logger *slog.Logger) *AbilitySystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &AbilitySystem{log: logger.With(slog.String("system", "ability"))}
}

func (s *AbilitySystem) Update(w *ecs.World, clock ecs.Clock) {
	if w == nil {
		return
	}

	for _, e := range w.Query(
		component.PlayerTagComponent.Kind(),
		component.MotionStateComponent.Kind(),
		component.MovementComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	) {
		ctx, ok := newMotionContext(w, e, clock, s.log)
		if !ok {
			continue
		}
		state := ctx.state

		tickGated(&state.Slide, clock)
		tickGated(&state.Dash, clock)
		tickGated(&state.WallJump, clock)

		switch state.Session.Kind {
		case component.SessionSliding:
			if !state.Slide.Active() {
				ctx.endSession()
			}
		case component.SessionDashing:
			if !state.Dash.Active() {
				ctx.endSession()
			}
		case component.SessionVaulting:
			sessionVault.Update(ctx)
		}
	}
}

// tickGated charges dt to the ability unless it was started this frame.
func tickGated(a *component.GatedAbility, clock ecs.Clock) {
	if a.Phase == component.AbilityIdle || a.StartedFrame == clock.Frame {
		return
	}
	a.Tick(clock.Delta)
}
