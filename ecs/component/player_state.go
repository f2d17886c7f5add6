package component

import "github.com/go-gl/mathgl/mgl64"

// SessionKind tags the exclusive ability session that owns the body.
type SessionKind int

const (
	SessionNone SessionKind = iota
	SessionSliding
	SessionVaulting
	SessionDashing
)

func (k SessionKind) String() string {
	switch k {
	case SessionNone:
		return "none"
	case SessionSliding:
		return "sliding"
	case SessionVaulting:
		return "vaulting"
	case SessionDashing:
		return "dashing"
	default:
		return "unknown"
	}
}

// VaultSession is the scripted traversal in progress.
type VaultSession struct {
	Start    mgl64.Vec3
	End      mgl64.Vec3
	Elapsed  float64
	Duration float64
}

// Progress returns the interpolation parameter clamped to [0, 1].
func (v VaultSession) Progress() float64 {
	if v.Duration <= 0 {
		return 1
	}
	t := v.Elapsed / v.Duration
	if t > 1 {
		return 1
	}
	if t < 0 {
		return 0
	}
	return t
}

// AbilitySession is a tagged value: Kind says which payload is meaningful.
// Holding a single value makes sliding, vaulting and dashing exclusive.
type AbilitySession struct {
	Kind SessionKind
	// StartedFrame is the loop frame the session began on.
	StartedFrame uint64

	// RestoreDrag is the drag to put back when a dash ends.
	RestoreDrag float64
	// Vault is valid while Kind == SessionVaulting.
	Vault VaultSession
}

// Active reports whether any exclusive session is running.
func (s AbilitySession) Active() bool { return s.Kind != SessionNone }

// JumpBudget counts jumps used since the last landing.
type JumpBudget struct {
	Used int
}

// Stance tracks the crouch scale change.
type Stance struct {
	StandingScaleY float64
	Crouched       bool
}

// GatedAbility pairs an Ability with the frame it was last started on, so
// the timer system does not charge the starting frame's delta.
type GatedAbility struct {
	Ability
	StartedFrame uint64
}

// MotionState is the arbitration state of one player.
type MotionState struct {
	Session AbilitySession
	Jumps   JumpBudget
	Stance  Stance

	Slide    GatedAbility
	Dash     GatedAbility
	WallJump GatedAbility
}

var MotionStateComponent = NewComponent[MotionState]()
