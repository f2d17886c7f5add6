package system

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
)

// motionContext is the per-entity view the motion and ability systems share
// with the session states.
type motionContext struct {
	world  *ecs.World
	entity ecs.Entity
	clock  ecs.Clock
	log    *slog.Logger

	body        component.Body
	tuning      *component.Movement
	state       *component.MotionState
	input       *component.Input
	contacts    *component.Contacts
	orientation component.Orientation
	abilities   component.Abilities
	effects     component.Effects
}

// newMotionContext gathers the player components. ok is false when any
// required component is missing.
func newMotionContext(w *ecs.World, e ecs.Entity, clock ecs.Clock, log *slog.Logger) (*motionContext, bool) {
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || bodyComp.Body == nil {
		return nil, false
	}
	tuning, ok := ecs.Get(w, e, component.MovementComponent.Kind())
	if !ok {
		return nil, false
	}
	state, ok := ecs.Get(w, e, component.MotionStateComponent.Kind())
	if !ok {
		return nil, false
	}
	ctx := &motionContext{
		world:     w,
		entity:    e,
		clock:     clock,
		log:       log,
		body:      bodyComp.Body,
		tuning:    tuning,
		state:     state,
		abilities: component.AllAbilities(),
	}
	if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		ctx.input = input
	}
	if contacts, ok := ecs.Get(w, e, component.ContactsComponent.Kind()); ok {
		ctx.contacts = contacts
	} else {
		ctx.contacts = &component.Contacts{}
	}
	if orientation, ok := ecs.Get(w, e, component.OrientationComponent.Kind()); ok {
		ctx.orientation = *orientation
	}
	if abilities, ok := ecs.Get(w, e, component.AbilitiesComponent.Kind()); ok {
		ctx.abilities = *abilities
	}
	if effects, ok := ecs.Get(w, e, component.EffectsComponent.Kind()); ok {
		ctx.effects = *effects
	}
	return ctx, true
}

func (ctx *motionContext) move() mgl64.Vec3 {
	if ctx.input == nil {
		return mgl64.Vec3{}
	}
	return ctx.input.Move
}

func (ctx *motionContext) playAnimation(clip string) {
	if ctx.effects.Animator != nil {
		ctx.effects.Animator.Play(clip)
	}
}

// beginSession hands the body to next. The caller has already checked that
// no session is active.
func (ctx *motionContext) beginSession(next sessionState) {
	ctx.state.Session = component.AbilitySession{
		Kind:         next.Kind(),
		StartedFrame: ctx.clock.Frame,
	}
	next.Enter(ctx)
	ctx.log.Debug("session started",
		slog.String("entity", ctx.entity.String()),
		slog.String("session", next.Kind().String()),
		slog.Uint64("frame", ctx.clock.Frame),
	)
}

// endSession runs the active state's Exit and clears the session.
func (ctx *motionContext) endSession() {
	current := sessionStateFor(ctx.state.Session.Kind)
	if current == nil {
		return
	}
	current.Exit(ctx)
	ctx.state.Session = component.AbilitySession{}
	ctx.log.Debug("session ended",
		slog.String("entity", ctx.entity.String()),
		slog.String("session", current.Kind().String()),
		slog.Uint64("frame", ctx.clock.Frame),
	)
}

func (ctx *motionContext) reject(action, reason string) {
	ctx.log.Debug("transition rejected",
		slog.String("entity", ctx.entity.String()),
		slog.String("action", action),
		slog.String("reason", reason),
		slog.String("session", ctx.state.Session.Kind.String()),
	)
}
