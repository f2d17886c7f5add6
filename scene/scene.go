package scene

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
	"github.com/milk9111/vaultrun/ecs/entity"
	"github.com/milk9111/vaultrun/ecs/system"
	"github.com/milk9111/vaultrun/levels"
	"github.com/milk9111/vaultrun/physics"
	"github.com/milk9111/vaultrun/prefabs"
)

// Scene is one playable world: a level in a Chipmunk space, the player bound
// to a body in it, and the loop that drives them.
type Scene struct {
	World  *ecs.World
	Space  *physics.Space
	Body   *physics.Body
	Player ecs.Entity
	Level  *levels.Level

	loop      *ecs.Loop
	input     *system.InputSystem
	animator  *logAnimator
	particles *logParticles
	log       *slog.Logger
}

type Options struct {
	Spec      *prefabs.PlayerSpec
	Level     *levels.Level
	Source    system.InputSource
	FixedStep float64
	Logger    *slog.Logger
	// Yaw is the initial facing; the sandbox starts facing +X.
	Yaw float64
}

func New(opts Options) (*Scene, error) {
	if opts.Spec == nil {
		return nil, fmt.Errorf("scene: player spec is nil")
	}
	if opts.Level == nil {
		return nil, fmt.Errorf("scene: level is nil")
	}
	if opts.FixedStep <= 0 {
		return nil, fmt.Errorf("scene: fixed step must be positive, got %v", opts.FixedStep)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	space := physics.NewSpace(opts.Spec.Movement.Gravity)
	opts.Level.Build(space)

	spawn := mgl64.Vec3{opts.Level.Spawn.X, opts.Level.Spawn.Y, 0}
	body := space.NewBody(spawn, opts.Spec.Body.Width, opts.Spec.Body.Height, opts.Spec.Body.Mass)
	effectsLog := logger.With(slog.String("component", "effects"))
	animator := &logAnimator{log: effectsLog}
	particles := &logParticles{log: effectsLog}

	w := ecs.NewWorld()
	player, err := entity.NewPlayer(w, entity.PlayerConfig{
		Movement:    opts.Spec.Movement,
		Abilities:   opts.Spec.Abilities,
		Body:        body,
		Probe:       space,
		Orientation: &component.Orientation{Yaw: opts.Yaw},
		Animator:    animator,
		Particles:   particles,
	})
	if err != nil {
		return nil, fmt.Errorf("scene: new player: %w", err)
	}
	if _, err := entity.NewTimeKeeper(w); err != nil {
		return nil, fmt.Errorf("scene: new time keeper: %w", err)
	}

	loop, input := system.NewPlayerLoop(opts.Source, logger, opts.FixedStep, space.Step)
	return &Scene{
		World:     w,
		Space:     space,
		Body:      body,
		Player:    player,
		Level:     opts.Level,
		loop:      loop,
		input:     input,
		animator:  animator,
		particles: particles,
		log:       logger,
	}, nil
}

// Advance runs one frame of realDelta wall-clock seconds.
func (s *Scene) Advance(realDelta float64) {
	s.loop.Advance(s.World, realDelta)
}

// Frame returns the number of frames advanced so far.
func (s *Scene) Frame() uint64 {
	return s.loop.CurrentFrame()
}

// SetSource swaps the input source.
func (s *Scene) SetSource(source system.InputSource) {
	s.input.SetSource(source)
}

// LoadScript compiles src and makes it the input source. On a compile error
// the current source stays in place.
func (s *Scene) LoadScript(src []byte) error {
	source, err := system.NewScriptSource(src, s.log)
	if err != nil {
		return fmt.Errorf("scene: load script: %w", err)
	}
	s.SetSource(source)
	return nil
}

// ApplySpec swaps the player's tuning and unlocks, e.g. after a hot reload.
// Running sessions keep their timing; new activations use the new values.
func (s *Scene) ApplySpec(spec *prefabs.PlayerSpec) error {
	if spec == nil {
		return fmt.Errorf("scene: player spec is nil")
	}
	if err := entity.ValidateMovement(spec.Movement); err != nil {
		return fmt.Errorf("scene: apply spec: %w", err)
	}
	tuning, ok := ecs.Get(s.World, s.Player, component.MovementComponent.Kind())
	if !ok {
		return fmt.Errorf("scene: player has no tuning")
	}
	*tuning = spec.Movement
	if abilities, ok := ecs.Get(s.World, s.Player, component.AbilitiesComponent.Kind()); ok {
		*abilities = spec.Abilities
	}
	s.Space.SetGravity(spec.Movement.Gravity)
	s.log.Info("player spec applied", slog.String("name", spec.Name))
	return nil
}
