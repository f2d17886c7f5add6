package component

// Movement is the per-player tuning surface. Every field parameterizes one
// formula of the controller; durations and cooldowns are in seconds.
type Movement struct {
	MoveSpeed         float64 `yaml:"move_speed"`
	SprintMultiplier  float64 `yaml:"sprint_multiplier"`
	GroundDrag        float64 `yaml:"ground_drag"`
	JumpForce         float64 `yaml:"jump_force"`
	AirMultiplier     float64 `yaml:"air_multiplier"`
	FallMultiplier    float64 `yaml:"fall_multiplier"`
	LowJumpMultiplier float64 `yaml:"low_jump_multiplier"`
	MaxJumpCount      int     `yaml:"max_jump_count"`
	Gravity           float64 `yaml:"gravity"`

	CrouchYScale  float64 `yaml:"crouch_y_scale"`
	SlideSpeed    float64 `yaml:"slide_speed"`
	SlideCooldown float64 `yaml:"slide_cooldown"`

	PlayerHeight      float64 `yaml:"player_height"`
	WallCheckDistance float64 `yaml:"wall_check_distance"`
	WallJumpForce     float64 `yaml:"wall_jump_force"`

	SlowMotionFactor   float64 `yaml:"slow_motion_factor"`
	SlowMotionDuration float64 `yaml:"slow_motion_duration"`

	VaultRange    float64 `yaml:"vault_range"`
	VaultHeight   float64 `yaml:"vault_height"`
	VaultDuration float64 `yaml:"vault_duration"`

	DashForce    float64 `yaml:"dash_force"`
	DashDuration float64 `yaml:"dash_duration"`
	DashCooldown float64 `yaml:"dash_cooldown"`
}

// DefaultMovement returns the stock tuning. Files decode on top of it, so a
// prefab only lists the values it changes.
func DefaultMovement() Movement {
	return Movement{
		MoveSpeed:         7,
		SprintMultiplier:  1.5,
		GroundDrag:        5,
		JumpForce:         12,
		AirMultiplier:     0.4,
		FallMultiplier:    2.5,
		LowJumpMultiplier: 2,
		MaxJumpCount:      2,
		Gravity:           -9.81,

		CrouchYScale:  0.5,
		SlideSpeed:    7,
		SlideCooldown: 1,

		PlayerHeight:      2,
		WallCheckDistance: 1,
		WallJumpForce:     10,

		SlowMotionFactor:   0.3,
		SlowMotionDuration: 3,

		VaultRange:    1,
		VaultHeight:   1.2,
		VaultDuration: 0.4,

		DashForce:    20,
		DashDuration: 0.2,
		DashCooldown: 1,
	}
}

var MovementComponent = NewComponent[Movement]()
