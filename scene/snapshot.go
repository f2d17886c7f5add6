package scene

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
	"github.com/milk9111/vaultrun/ecs/system"
)

// Snapshot is the player state surfaced to the debug overlay and the replay
// trace.
type Snapshot struct {
	Frame     uint64
	Position  mgl64.Vec3
	Velocity  mgl64.Vec3
	Drag      float64
	ScaleY    float64
	Kinematic bool

	Session      component.SessionKind
	Jumps        int
	Grounded     bool
	TouchingWall bool

	Dash      component.AbilityPhase
	DashLeft  float64
	Slide     component.AbilityPhase
	SlideLeft float64
	WallJump  component.AbilityPhase

	TimeScale      float64
	SlowMotionLeft float64

	Clip      string
	Particles bool
}

func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:     s.Frame(),
		Position:  s.Body.Position(),
		Velocity:  s.Body.Velocity(),
		Drag:      s.Body.Drag(),
		ScaleY:    s.Body.ScaleY(),
		Kinematic: s.Body.Kinematic(),
		TimeScale: system.CurrentTimeScale(s.World),
		Clip:      s.animator.clip,
		Particles: s.particles.playing,
	}
	if state, ok := ecs.Get(s.World, s.Player, component.MotionStateComponent.Kind()); ok {
		snap.Session = state.Session.Kind
		snap.Jumps = state.Jumps.Used
		snap.Dash = state.Dash.Phase
		snap.DashLeft = state.Dash.Timer.Remaining()
		snap.Slide = state.Slide.Phase
		snap.SlideLeft = state.Slide.Timer.Remaining()
		snap.WallJump = state.WallJump.Phase
	}
	if contacts, ok := ecs.Get(s.World, s.Player, component.ContactsComponent.Kind()); ok {
		snap.Grounded = contacts.Grounded
		snap.TouchingWall = contacts.TouchingWall
	}
	if keeper, ok := s.World.First(component.TimeKeeperTagComponent.Kind(), component.TimeScaleComponent.Kind()); ok {
		ts, _ := ecs.Get(s.World, keeper, component.TimeScaleComponent.Kind())
		snap.SlowMotionLeft = ts.SlowMotion.Remaining
	}
	return snap
}

// LogValue renders the snapshot as a structured log group.
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("frame", s.Frame),
		slog.String("pos", formatVec(s.Position)),
		slog.String("vel", formatVec(s.Velocity)),
		slog.String("session", s.Session.String()),
		slog.Int("jumps", s.Jumps),
		slog.Bool("grounded", s.Grounded),
		slog.Bool("wall", s.TouchingWall),
		slog.String("dash", s.Dash.String()),
		slog.String("slide", s.Slide.String()),
		slog.Float64("scale", s.TimeScale),
	)
}
