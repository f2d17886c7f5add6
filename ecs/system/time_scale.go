package system

import (
	"log/slog"

	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
)

// TimeScaleSystem owns the single global slow-motion session. Sessions are
// timed in real seconds so the dilation does not stretch its own length.
type TimeScaleSystem struct {
	log *slog.Logger
}

func NewTimeScaleSystem(logger *slog.Logger) *TimeScaleSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &TimeScaleSystem{log: logger.With(slog.String("system", "time_scale"))}
}

func (s *TimeScaleSystem) Update(w *ecs.World, clock ecs.Clock) {
	if w == nil {
		return
	}
	keeper, ok := w.First(component.TimeKeeperTagComponent.Kind(), component.TimeScaleComponent.Kind())
	if !ok {
		return
	}
	ts, _ := ecs.Get(w, keeper, component.TimeScaleComponent.Kind())

	if ts.SlowMotion.Active {
		if ts.SlowMotion.StartedFrame != clock.Frame {
			ts.SlowMotion.Remaining -= clock.RealDelta
		}
		if ts.SlowMotion.Remaining <= timeScaleEpsilon {
			ts.Scale = 1
			ts.SlowMotion = component.SlowMotionSession{}
			s.log.Debug("slow motion ended", slog.Uint64("frame", clock.Frame))
		}
		// requests while a session runs are ignored
		return
	}

	request, factor, duration := slowMotionRequest(w, clock)
	if !request {
		return
	}
	ts.Scale = factor
	ts.SlowMotion = component.SlowMotionSession{
		Active:       true,
		Remaining:    duration,
		StartedFrame: clock.Frame,
	}
	s.log.Debug("slow motion started",
		slog.Float64("scale", factor),
		slog.Float64("duration", duration),
		slog.Uint64("frame", clock.Frame),
	)
}

const timeScaleEpsilon = 1e-9

// slowMotionRequest looks for a fresh slow-motion press from an unlocked player.
func slowMotionRequest(w *ecs.World, clock ecs.Clock) (bool, float64, float64) {
	for _, e := range w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.MovementComponent.Kind(),
	) {
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		if input.Frame != clock.Frame || !input.SlowMotionPressed {
			continue
		}
		if vaultStartedThisFrame(w, e, clock) {
			continue
		}
		if abilities, ok := ecs.Get(w, e, component.AbilitiesComponent.Kind()); ok && !abilities.SlowMotion {
			continue
		}
		tuning, _ := ecs.Get(w, e, component.MovementComponent.Kind())
		return true, tuning.SlowMotionFactor, tuning.SlowMotionDuration
	}
	return false, 0, 0
}

// vaultStartedThisFrame reports whether e began a vault on this frame; the
// vault consumes every other press made on that frame.
func vaultStartedThisFrame(w *ecs.World, e ecs.Entity, clock ecs.Clock) bool {
	state, ok := ecs.Get(w, e, component.MotionStateComponent.Kind())
	if !ok {
		return false
	}
	return state.Session.Kind == component.SessionVaulting && state.Session.StartedFrame == clock.Frame
}

// CurrentTimeScale returns the global scale, 1 when no time keeper exists.
// It is meant for ecs.Loop.Scale.
func CurrentTimeScale(w *ecs.World) float64 {
	if w == nil {
		return 1
	}
	keeper, ok := w.First(component.TimeKeeperTagComponent.Kind(), component.TimeScaleComponent.Kind())
	if !ok {
		return 1
	}
	ts, _ := ecs.Get(w, keeper, component.TimeScaleComponent.Kind())
	if ts.Scale <= 0 {
		return 1
	}
	return ts.Scale
}
