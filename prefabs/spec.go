package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/milk9111/vaultrun/ecs/component"
	"gopkg.in/yaml.v3"
)

// PlayerFile is the tuning prefab the sandbox and replay tool load.
const PlayerFile = "player.yaml"

// PlayerSpec is the player prefab: locomotion tuning, ability unlocks and
// the reference body's collider.
type PlayerSpec struct {
	Name      string              `yaml:"name"`
	Movement  component.Movement  `yaml:"movement"`
	Abilities component.Abilities `yaml:"abilities"`
	Body      BodySpec            `yaml:"body"`
}

type BodySpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

// DefaultPlayerSpec is what a prefab file is decoded over, so a file only
// lists the values it changes.
func DefaultPlayerSpec() PlayerSpec {
	m := component.DefaultMovement()
	return PlayerSpec{
		Name:      "player",
		Movement:  m,
		Abilities: component.AllAbilities(),
		Body:      BodySpec{Width: 1, Height: m.PlayerHeight, Mass: 1},
	}
}

// LoadSpecOver decodes filename on top of base. Unknown keys are an error.
func LoadSpecOver[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := DecodeSpec(data, base)
	if err != nil {
		return base, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// DecodeSpec decodes yaml data on top of base.
func DecodeSpec[T any](data []byte, base T) (T, error) {
	spec := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return base, err
	}
	return spec, nil
}

func LoadPlayerSpec(filename string) (*PlayerSpec, error) {
	if filename == "" {
		filename = PlayerFile
	}
	spec, err := LoadSpecOver(filename, DefaultPlayerSpec())
	if err != nil {
		return nil, err
	}
	if spec.Body.Height <= 0 {
		spec.Body.Height = spec.Movement.PlayerHeight
	}
	return &spec, nil
}
