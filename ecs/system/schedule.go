package system

import (
	"log/slog"

	"github.com/milk9111/vaultrun/ecs"
)

// NewPlayerLoop schedules the locomotion systems: sensors, input and
// arbitration every frame, forces on the fixed tick, then ability timers and
// the time scale once the physics has caught up. step advances the physics
// world after each fixed tick and may be nil.
func NewPlayerLoop(source InputSource, logger *slog.Logger, fixedStep float64, step func(dt float64)) (*ecs.Loop, *InputSystem) {
	input := NewInputSystem(source)
	loop := &ecs.Loop{
		Frame:     ecs.NewScheduler(NewSensorSystem(), input, NewMotionSystem(logger)),
		Fixed:     ecs.NewScheduler(NewForceSystem()),
		Late:      ecs.NewScheduler(NewAbilitySystem(logger), NewTimeScaleSystem(logger)),
		FixedStep: fixedStep,
		Step:      step,
		Scale:     CurrentTimeScale,
	}
	return loop, input
}
