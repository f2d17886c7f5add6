package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/vaultrun/config"
	"github.com/milk9111/vaultrun/ecs/component"
	"github.com/milk9111/vaultrun/ecs/system"
	"github.com/milk9111/vaultrun/levels"
	"github.com/milk9111/vaultrun/prefabs"
	"github.com/milk9111/vaultrun/render"
	"github.com/milk9111/vaultrun/scene"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var background = color.RGBA{R: 24, G: 24, B: 32, A: 255}

type GameOptions struct {
	Settings config.Settings
	Tuning   string
	// Script, when set, drives the player from a tengo input script instead
	// of the keyboard. Edits to it are picked up while running.
	Script       string
	Debug        bool
	AllAbilities bool
	Logger       *slog.Logger
}

type Game struct {
	opts GameOptions
	log  *slog.Logger

	scene   *scene.Scene
	camera  *render.Camera
	input   *system.KeyboardSource
	watcher *prefabs.Watcher
	debug   bool
}

func NewGame(opts GameOptions) (*Game, error) {
	if opts.Tuning == "" {
		opts.Tuning = prefabs.PlayerFile
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Game{
		opts:   opts,
		log:    logger,
		camera: render.NewCamera(baseWidth, baseHeight),
		input:  system.NewKeyboardSource(),
		debug:  opts.Debug,
	}
	if err := g.reset(); err != nil {
		return nil, err
	}

	if opts.Settings.Watch {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			logger.Warn("prefab hot reload disabled", slog.Any("err", err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// reset rebuilds the scene from the level and tuning files.
func (g *Game) reset() error {
	lvl, err := levels.LoadLevel(levelPath(g.opts.Settings.Level))
	if err != nil {
		return fmt.Errorf("load level %s: %w", g.opts.Settings.Level, err)
	}
	spec, err := g.loadSpec()
	if err != nil {
		return err
	}

	sc, err := scene.New(scene.Options{
		Spec:      spec,
		Level:     lvl,
		Source:    g.input,
		FixedStep: g.opts.Settings.FixedStep(),
		Logger:    g.log,
		Yaw:       math.Pi / 2,
	})
	if err != nil {
		return err
	}
	if g.opts.Script != "" {
		if err := g.loadScript(sc); err != nil {
			return err
		}
	}
	g.scene = sc
	pos := sc.Body.Position()
	g.camera.X, g.camera.Y = pos.X(), pos.Y()
	g.log.Info("scene ready", slog.String("level", lvl.Name), slog.String("tuning", g.opts.Tuning))
	return nil
}

func (g *Game) loadSpec() (*prefabs.PlayerSpec, error) {
	spec, err := prefabs.LoadPlayerSpec(g.opts.Tuning)
	if err != nil {
		return nil, err
	}
	if g.opts.AllAbilities {
		spec.Abilities = component.AllAbilities()
	}
	return spec, nil
}

func (g *Game) loadScript(sc *scene.Scene) error {
	src, err := prefabs.LoadScript(g.opts.Script)
	if err != nil {
		return fmt.Errorf("load script %s: %w", g.opts.Script, err)
	}
	return sc.LoadScript(src)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			g.log.Error("reset scene", slog.Any("err", err))
		}
	}
	g.reload()

	g.scene.Advance(g.opts.Settings.FixedStep())

	pos := g.scene.Body.Position()
	g.camera.Follow(pos.X(), pos.Y())
	return nil
}

// reload applies tuning and script edits picked up by the watcher.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for _, change := range g.watcher.Poll() {
		var err error
		switch {
		case change.Kind == prefabs.ChangeTuning && change.Name() == filepath.Base(g.opts.Tuning):
			var spec *prefabs.PlayerSpec
			if spec, err = g.loadSpec(); err == nil {
				err = g.scene.ApplySpec(spec)
			}
		case change.Kind == prefabs.ChangeScript && g.opts.Script != "" && change.Name() == scriptName(g.opts.Script):
			err = g.loadScript(g.scene)
		default:
			g.log.Debug("ignoring change", slog.String("file", change.Path), slog.String("kind", change.Kind.String()))
			continue
		}
		if err != nil {
			g.log.Warn("hot reload", slog.String("file", change.Path), slog.Any("err", err))
			continue
		}
		g.log.Info("hot reload", slog.String("file", change.Path), slog.String("kind", change.Kind.String()))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	render.DrawSpace(g.scene.Space.Space(), g.camera, screen)
	if g.debug {
		render.DrawOverlay(screen, g.scene.Snapshot(), ebiten.ActualTPS())
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func scriptName(name string) string {
	base := filepath.Base(name)
	if filepath.Ext(base) == "" {
		base += ".tengo"
	}
	return base
}

func levelPath(name string) string {
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	return name
}
