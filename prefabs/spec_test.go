package prefabs

import (
	"strings"
	"testing"

	"github.com/milk9111/vaultrun/ecs/component"
)

func TestEmbeddedPlayerSpecMatchesDefaults(t *testing.T) {
	spec, err := LoadPlayerSpec("")
	if err != nil {
		t.Fatalf("load player spec: %v", err)
	}
	if spec.Movement != component.DefaultMovement() {
		t.Fatalf("expected embedded tuning to match defaults:\n got %+v\nwant %+v", spec.Movement, component.DefaultMovement())
	}
	if spec.Abilities != component.AllAbilities() {
		t.Fatalf("expected every ability unlocked, got %+v", spec.Abilities)
	}
	if spec.Body.Height != spec.Movement.PlayerHeight {
		t.Fatalf("expected body height %v, got %v", spec.Movement.PlayerHeight, spec.Body.Height)
	}
}

func TestDecodeSpecOverDefaults(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(PlayerSpec) bool
		wantErr string
	}{
		{
			name:  "partial override keeps defaults",
			yaml:  "movement:\n  dash_force: 30\n",
			check: func(s PlayerSpec) bool { return s.Movement.DashForce == 30 && s.Movement.MoveSpeed == 7 },
		},
		{
			name:  "lock an ability",
			yaml:  "abilities:\n  dash: false\n",
			check: func(s PlayerSpec) bool { return !s.Abilities.Dash && s.Abilities.Vault },
		},
		{
			name:  "empty document",
			yaml:  "",
			check: func(s PlayerSpec) bool { return s == DefaultPlayerSpec() },
		},
		{
			name:    "unknown key",
			yaml:    "movement:\n  moov_speed: 3\n",
			wantErr: "moov_speed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := DecodeSpec([]byte(tt.yaml), DefaultPlayerSpec())
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !tt.check(spec) {
				t.Fatalf("unexpected spec %+v", spec)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"vault", "vault.tengo", "scripts/vault.tengo", "prefabs/scripts/vault.tengo"} {
		t.Run(name, func(t *testing.T) {
			data, err := LoadScript(name)
			if err != nil {
				t.Fatalf("load script: %v", err)
			}
			if !strings.Contains(string(data), "sample") {
				t.Fatal("expected a sample function in the script")
			}
		})
	}
}
