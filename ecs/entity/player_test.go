package entity

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
)

type stubBody struct {
	pos, vel  mgl64.Vec3
	drag      float64
	kinematic bool
	scaleY    float64
}

func (b *stubBody) Position() mgl64.Vec3                     { return b.pos }
func (b *stubBody) SetPosition(p mgl64.Vec3)                 { b.pos = p }
func (b *stubBody) Velocity() mgl64.Vec3                     { return b.vel }
func (b *stubBody) SetVelocity(v mgl64.Vec3)                 { b.vel = v }
func (b *stubBody) Drag() float64                            { return b.drag }
func (b *stubBody) SetDrag(d float64)                        { b.drag = d }
func (b *stubBody) Kinematic() bool                          { return b.kinematic }
func (b *stubBody) SetKinematic(k bool)                      { b.kinematic = k }
func (b *stubBody) AddForce(mgl64.Vec3, component.ForceMode) {}
func (b *stubBody) ScaleY() float64                          { return b.scaleY }
func (b *stubBody) SetScaleY(s float64)                      { b.scaleY = s }

type stubProbe struct{}

func (stubProbe) Raycast(mgl64.Vec3, mgl64.Vec3, float64, component.Layer) (component.RaycastHit, bool) {
	return component.RaycastHit{}, false
}

func validConfig() PlayerConfig {
	return PlayerConfig{
		Movement:    component.DefaultMovement(),
		Abilities:   component.AllAbilities(),
		Body:        &stubBody{scaleY: 1.5},
		Probe:       stubProbe{},
		Orientation: &component.Orientation{},
	}
}

func TestNewPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayer(w, validConfig())
	if err != nil {
		t.Fatalf("new player: %v", err)
	}

	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		t.Fatal("expected player tag")
	}
	state, ok := ecs.Get(w, e, component.MotionStateComponent.Kind())
	if !ok {
		t.Fatal("expected motion state")
	}
	if state.Session.Active() {
		t.Fatalf("expected no session, got %v", state.Session.Kind)
	}
	if state.Stance.StandingScaleY != 1.5 {
		t.Fatalf("expected standing scale from body, got %v", state.Stance.StandingScaleY)
	}
	if !state.Dash.Ready() || !state.Slide.Ready() || !state.WallJump.Ready() {
		t.Fatal("expected every gated ability ready")
	}
	sensor, ok := ecs.Get(w, e, component.SensorComponent.Kind())
	if !ok || sensor.GroundMask != component.LayerGround || sensor.VaultMask&component.LayerPlayer != 0 {
		t.Fatalf("unexpected sensor %+v", sensor)
	}
}

func TestNewPlayerConfigurationErrors(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*PlayerConfig)
		field string
	}{
		{name: "missing body", edit: func(c *PlayerConfig) { c.Body = nil }, field: "body"},
		{name: "missing probe", edit: func(c *PlayerConfig) { c.Probe = nil }, field: "probe"},
		{name: "missing orientation", edit: func(c *PlayerConfig) { c.Orientation = nil }, field: "orientation"},
		{name: "zero move speed", edit: func(c *PlayerConfig) { c.Movement.MoveSpeed = 0 }, field: "move_speed"},
		{name: "negative dash cooldown", edit: func(c *PlayerConfig) { c.Movement.DashCooldown = -1 }, field: "dash_cooldown"},
		{name: "negative jump count", edit: func(c *PlayerConfig) { c.Movement.MaxJumpCount = -1 }, field: "max_jump_count"},
		{name: "slow motion speeds up", edit: func(c *PlayerConfig) { c.Movement.SlowMotionFactor = 2 }, field: "slow_motion_factor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			cfg := validConfig()
			tt.edit(&cfg)

			_, err := NewPlayer(w, cfg)
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tt.field {
				t.Fatalf("expected field %q, got %v", tt.field, err)
			}
			if n := len(ecs.Entities(w)); n != 0 {
				t.Fatalf("expected no entity created, got %d", n)
			}
		})
	}
}

func TestNewTimeKeeperIsSingleton(t *testing.T) {
	w := ecs.NewWorld()
	first, err := NewTimeKeeper(w)
	if err != nil {
		t.Fatalf("new time keeper: %v", err)
	}
	second, err := NewTimeKeeper(w)
	if err != nil {
		t.Fatalf("new time keeper again: %v", err)
	}
	if first != second {
		t.Fatalf("expected the same keeper, got %v and %v", first, second)
	}
	ts, ok := ecs.Get(w, first, component.TimeScaleComponent.Kind())
	if !ok || ts.Scale != 1 {
		t.Fatalf("expected scale 1, got %+v", ts)
	}
}
