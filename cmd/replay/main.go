// Command replay drives the player controller headlessly from a tengo input
// script and logs the player state frame by frame.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/milk9111/vaultrun/config"
	"github.com/milk9111/vaultrun/ecs/component"
	"github.com/milk9111/vaultrun/ecs/system"
	"github.com/milk9111/vaultrun/levels"
	"github.com/milk9111/vaultrun/prefabs"
	"github.com/milk9111/vaultrun/scene"
)

type options struct {
	script       string
	tuning       string
	level        string
	frames       int
	every        int
	allAbilities bool
}

func main() {
	var opts options
	flag.StringVar(&opts.script, "script", "run_and_jump", "input script in prefabs/scripts (.tengo optional)")
	flag.StringVar(&opts.tuning, "tuning", prefabs.PlayerFile, "player prefab in prefabs/")
	flag.StringVar(&opts.level, "level", "", "level file (overrides VAULTRUN_LEVEL)")
	flag.IntVar(&opts.frames, "frames", 300, "frames to simulate")
	flag.IntVar(&opts.every, "every", 1, "log every Nth frame")
	flag.BoolVar(&opts.allAbilities, "ab", false, "unlock all abilities")
	flag.Parse()

	settings, err := config.LoadSettings()
	if err != nil {
		slog.Error("load settings", slog.Any("err", err))
		os.Exit(1)
	}
	if opts.level != "" {
		settings.Level = opts.level
	}
	logger := config.NewLogger(settings.LogLevel, settings.LogFormat, os.Stderr)

	if err := run(opts, settings, logger); err != nil {
		logger.Error("replay failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(opts options, settings config.Settings, logger *slog.Logger) error {
	if opts.frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", opts.frames)
	}
	if opts.every <= 0 {
		opts.every = 1
	}

	src, err := prefabs.LoadScript(opts.script)
	if err != nil {
		return fmt.Errorf("load script %s: %w", opts.script, err)
	}
	source, err := system.NewScriptSource(src, logger)
	if err != nil {
		return err
	}
	spec, err := prefabs.LoadPlayerSpec(opts.tuning)
	if err != nil {
		return err
	}
	if opts.allAbilities {
		spec.Abilities = component.AllAbilities()
	}
	lvl, err := levels.LoadLevel(settings.Level)
	if err != nil {
		return err
	}

	sc, err := scene.New(scene.Options{
		Spec:      spec,
		Level:     lvl,
		Source:    source,
		FixedStep: settings.FixedStep(),
		Logger:    logger,
		Yaw:       math.Pi / 2,
	})
	if err != nil {
		return err
	}

	logger.Info("replay start",
		slog.String("script", opts.script),
		slog.String("level", lvl.Name),
		slog.Int("frames", opts.frames),
	)
	dt := settings.FixedStep()
	for i := 1; i <= opts.frames; i++ {
		sc.Advance(dt)
		if err := source.Err(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if i%opts.every == 0 || i == opts.frames {
			logger.Info("frame", slog.Any("player", sc.Snapshot()))
		}
	}
	logger.Info("replay done", slog.Any("player", sc.Snapshot()))
	return nil
}
