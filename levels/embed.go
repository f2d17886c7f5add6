package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/milk9111/vaultrun/ecs/component"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is the sandbox level shipped with the binary.
const DefaultLevel = "sandbox.json"

// Level is a side-view blockout: static boxes tagged with a collision layer
// and a spawn point for the player, in world units with Y up.
type Level struct {
	Name  string `json:"name"`
	Spawn Point  `json:"spawn"`
	Boxes []Box  `json:"boxes"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Box is an axis-aligned block with its lower-left corner at X, Y.
type Box struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Layer string  `json:"layer"`
}

// BoxBuilder receives the level's static geometry.
type BoxBuilder interface {
	AddBox(x, y, w, h float64, layer component.Layer)
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return ParseLevel(data)
}

// LoadLevel reads name from disk when it exists, else from the embedded set.
func LoadLevel(name string) (*Level, error) {
	if data, err := os.ReadFile(name); err == nil {
		return ParseLevel(data)
	}
	return LoadLevelFromFS(name)
}

func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks every box has a positive size and a known layer.
func (l *Level) Validate() error {
	for i, b := range l.Boxes {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("level %s: box %d: size %vx%v must be positive", l.Name, i, b.W, b.H)
		}
		if component.ParseLayer(b.Layer) == component.LayerNone {
			return fmt.Errorf("level %s: box %d: unknown layer %q", l.Name, i, b.Layer)
		}
	}
	return nil
}

// Build adds every box to the builder.
func (l *Level) Build(b BoxBuilder) {
	for _, box := range l.Boxes {
		b.AddBox(box.X, box.Y, box.W, box.H, component.ParseLayer(box.Layer))
	}
}
