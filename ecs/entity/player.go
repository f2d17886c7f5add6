package entity

import (
	"fmt"

	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
)

// PlayerConfig binds the collaborators a player needs. Body, Probe and
// Orientation are required; Animator and Particles are optional.
type PlayerConfig struct {
	Movement  component.Movement
	Abilities component.Abilities

	Body        component.Body
	Probe       component.Probe
	Orientation *component.Orientation

	Animator  component.Animator
	Particles component.Particles
}

// NewPlayer validates cfg and creates the player entity with its locomotion
// state. On error no entity is created.
func NewPlayer(w *ecs.World, cfg PlayerConfig) (ecs.Entity, error) {
	if w == nil {
		return 0, &ConfigurationError{Field: "world", Reason: "is nil"}
	}
	if cfg.Body == nil {
		return 0, &ConfigurationError{Field: "body", Reason: "is not bound"}
	}
	if cfg.Probe == nil {
		return 0, &ConfigurationError{Field: "probe", Reason: "is not bound"}
	}
	if cfg.Orientation == nil {
		return 0, &ConfigurationError{Field: "orientation", Reason: "is not bound"}
	}
	if err := ValidateMovement(cfg.Movement); err != nil {
		return 0, err
	}

	tuning := cfg.Movement
	abilities := cfg.Abilities
	orientation := *cfg.Orientation
	sensor := component.DefaultSensor(cfg.Probe)
	state := component.MotionState{
		Stance: component.Stance{StandingScaleY: cfg.Body.ScaleY()},
		Slide:  component.GatedAbility{Ability: component.NewAbility(1, tuning.SlideCooldown)},
		Dash:   component.GatedAbility{Ability: component.NewAbility(tuning.DashDuration, tuning.DashCooldown)},
		WallJump: component.GatedAbility{
			Ability: component.NewAbility(0, 0.5),
		},
	}

	e := ecs.CreateEntity(w)
	steps := []func() error{
		func() error { return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) },
		func() error { return ecs.Add(w, e, component.MovementComponent.Kind(), &tuning) },
		func() error { return ecs.Add(w, e, component.AbilitiesComponent.Kind(), &abilities) },
		func() error {
			return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: cfg.Body})
		},
		func() error { return ecs.Add(w, e, component.SensorComponent.Kind(), &sensor) },
		func() error { return ecs.Add(w, e, component.OrientationComponent.Kind(), &orientation) },
		func() error { return ecs.Add(w, e, component.ContactsComponent.Kind(), &component.Contacts{}) },
		func() error { return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}) },
		func() error { return ecs.Add(w, e, component.MotionStateComponent.Kind(), &state) },
		func() error {
			return ecs.Add(w, e, component.EffectsComponent.Kind(), &component.Effects{
				Animator: cfg.Animator,
				Dash:     cfg.Particles,
			})
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("player: add component: %w", err)
		}
	}
	return e, nil
}

// ValidateMovement rejects tuning the controller cannot run with.
func ValidateMovement(m component.Movement) error {
	positive := []struct {
		field string
		value float64
	}{
		{"move_speed", m.MoveSpeed},
		{"player_height", m.PlayerHeight},
		{"crouch_y_scale", m.CrouchYScale},
		{"slow_motion_factor", m.SlowMotionFactor},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return &ConfigurationError{Field: p.field, Reason: fmt.Sprintf("must be > 0, got %v", p.value)}
		}
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"sprint_multiplier", m.SprintMultiplier},
		{"ground_drag", m.GroundDrag},
		{"jump_force", m.JumpForce},
		{"air_multiplier", m.AirMultiplier},
		{"fall_multiplier", m.FallMultiplier},
		{"low_jump_multiplier", m.LowJumpMultiplier},
		{"slide_speed", m.SlideSpeed},
		{"slide_cooldown", m.SlideCooldown},
		{"wall_check_distance", m.WallCheckDistance},
		{"wall_jump_force", m.WallJumpForce},
		{"slow_motion_duration", m.SlowMotionDuration},
		{"vault_range", m.VaultRange},
		{"vault_height", m.VaultHeight},
		{"vault_duration", m.VaultDuration},
		{"dash_force", m.DashForce},
		{"dash_duration", m.DashDuration},
		{"dash_cooldown", m.DashCooldown},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return &ConfigurationError{Field: p.field, Reason: fmt.Sprintf("must be >= 0, got %v", p.value)}
		}
	}

	if m.MaxJumpCount < 0 {
		return &ConfigurationError{Field: "max_jump_count", Reason: fmt.Sprintf("must be >= 0, got %d", m.MaxJumpCount)}
	}
	if m.SlowMotionFactor > 1 {
		return &ConfigurationError{Field: "slow_motion_factor", Reason: fmt.Sprintf("must be <= 1, got %v", m.SlowMotionFactor)}
	}
	return nil
}
