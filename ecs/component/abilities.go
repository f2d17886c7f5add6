package component

// Abilities defines which optional player abilities are enabled. A locked
// ability behaves like one that is on cooldown: the request is dropped.
type Abilities struct {
	DoubleJump bool `yaml:"double_jump"`
	WallJump   bool `yaml:"wall_jump"`
	Slide      bool `yaml:"slide"`
	Dash       bool `yaml:"dash"`
	Vault      bool `yaml:"vault"`
	SlowMotion bool `yaml:"slow_motion"`
}

// AllAbilities returns a set with everything unlocked.
func AllAbilities() Abilities {
	return Abilities{
		DoubleJump: true,
		WallJump:   true,
		Slide:      true,
		Dash:       true,
		Vault:      true,
		SlowMotion: true,
	}
}

var AbilitiesComponent = NewComponent[Abilities]()
