package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/vaultrun/config"
)

func main() {
	allAbilities := flag.Bool("ab", false, "start with all abilities unlocked")
	debug := flag.Bool("debug", false, "show the state overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level file in levels/ (overrides VAULTRUN_LEVEL)")
	tuning := flag.String("tuning", "", "player prefab in prefabs/ (default player.yaml)")
	script := flag.String("script", "", "drive the player from an input script in prefabs/scripts instead of the keyboard")
	flag.Parse()

	settings, err := config.LoadSettings()
	if err != nil {
		slog.Error("load settings", slog.Any("err", err))
		os.Exit(1)
	}
	if *levelName != "" {
		settings.Level = *levelName
	}
	if *debug {
		settings.LogLevel = "debug"
	}
	logger := config.NewLogger(settings.LogLevel, settings.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("vaultrun")
	ebiten.SetTPS(settings.TPS)

	game, err := NewGame(GameOptions{
		Settings:     settings,
		Tuning:       *tuning,
		Script:       *script,
		Debug:        *debug,
		AllAbilities: *allAbilities,
		Logger:       logger,
	})
	if err != nil {
		logger.Error("start game", slog.Any("err", err))
		os.Exit(1)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", slog.Any("err", err))
		os.Exit(1)
	}
}
