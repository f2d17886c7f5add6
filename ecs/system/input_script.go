package system

import (
	"fmt"
	"log/slog"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/vaultrun/ecs/component"
)

// The script defines sample(frame, t) returning a map with any of the keys
// horizontal, vertical, yaw, jump, crouch, sprint, dash, slow_motion.
const inputScriptDispatch = `
__out := sample(__frame, __time)
`

// ScriptSource is an InputSource backed by a tengo script, used for replays
// and scripted runs.
type ScriptSource struct {
	compiled *tengo.Compiled
	log      *slog.Logger
	err      error
}

// NewScriptSource compiles src. The script must define sample(frame, t).
func NewScriptSource(src []byte, logger *slog.Logger) (*ScriptSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	script := tengo.NewScript(append(append([]byte{}, src...), []byte(inputScriptDispatch)...))
	_ = script.Add("__frame", 0)
	_ = script.Add("__time", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input script: compile: %w", err)
	}
	return &ScriptSource{compiled: compiled, log: logger}, nil
}

// Err returns the last run error, if any.
func (s *ScriptSource) Err() error {
	return s.err
}

func (s *ScriptSource) Sample(frame uint64, t float64) component.RawInput {
	if s == nil || s.compiled == nil {
		return component.RawInput{}
	}
	if err := s.run(frame, t); err != nil {
		s.err = err
		s.log.Warn("input script failed", slog.Uint64("frame", frame), slog.Any("err", err))
		return component.RawInput{}
	}
	return rawInputFromMap(s.compiled.Get("__out").Map())
}

// run executes one sample. tengo panics on some runtime faults, such as
// integer division by zero; those are reported as errors.
func (s *ScriptSource) run(frame uint64, t float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("input script: run frame %d: panic: %v", frame, r)
		}
	}()
	if err := s.compiled.Set("__frame", int64(frame)); err != nil {
		return fmt.Errorf("input script: set frame: %w", err)
	}
	if err := s.compiled.Set("__time", t); err != nil {
		return fmt.Errorf("input script: set time: %w", err)
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("input script: run frame %d: %w", frame, err)
	}
	return nil
}

func rawInputFromMap(m map[string]any) component.RawInput {
	var raw component.RawInput
	raw.Horizontal = number(m["horizontal"])
	raw.Vertical = number(m["vertical"])
	if yaw, ok := m["yaw"]; ok {
		raw.Yaw = number(yaw)
		raw.HasYaw = true
	}
	raw.Jump = truthy(m["jump"])
	raw.Crouch = truthy(m["crouch"])
	raw.Sprint = truthy(m["sprint"])
	raw.Dash = truthy(m["dash"])
	raw.SlowMotion = truthy(m["slow_motion"])
	return raw
}

func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func truthy(v any) bool {
	b, _ := v.(bool)
	return b
}
