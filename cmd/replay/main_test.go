package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/milk9111/vaultrun/config"
	"github.com/milk9111/vaultrun/levels"
)

func testSettings() config.Settings {
	return config.Settings{LogLevel: "info", LogFormat: "text", TPS: 60, Level: levels.DefaultLevel}
}

func TestRunEmbeddedScripts(t *testing.T) {
	for _, script := range []string{"run_and_jump", "vault"} {
		t.Run(script, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			err := run(options{script: script, tuning: "player.yaml", frames: 120, every: 60}, testSettings(), logger)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			out := buf.String()
			if got := strings.Count(out, "msg=frame"); got != 2 {
				t.Fatalf("expected 2 frame lines, got %d:\n%s", got, out)
			}
			if !strings.Contains(out, "msg=\"replay done\"") {
				t.Fatalf("missing done line:\n%s", out)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name string
		opts options
	}{
		{name: "missing script", opts: options{script: "nope", tuning: "player.yaml", frames: 1}},
		{name: "no frames", opts: options{script: "vault", tuning: "player.yaml"}},
		{name: "missing tuning", opts: options{script: "vault", tuning: "ghost.yaml", frames: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.opts, testSettings(), logger); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
