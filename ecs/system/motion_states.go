package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/vaultrun/common"
	"github.com/milk9111/vaultrun/ecs/component"
)

const (
	// vaultForwardOffset and vaultUpOffset place the vault landing point.
	vaultForwardOffset = 1.0
	vaultUpOffset      = 1.0
	vaultClip          = "Vault"
)

// sessionState is one exclusive ability session. States are stateless
// singletons; everything they touch lives on the entity.
type sessionState interface {
	Kind() component.SessionKind
	Enter(ctx *motionContext)
	Exit(ctx *motionContext)
	// Update runs once per frame from the ability system.
	Update(ctx *motionContext)
}

// Session state singletons (avoid allocations on transitions).
var (
	sessionSlide sessionState = &slideState{}
	sessionDash  sessionState = &dashState{}
	sessionVault sessionState = &vaultState{}
)

func sessionStateFor(kind component.SessionKind) sessionState {
	switch kind {
	case component.SessionSliding:
		return sessionSlide
	case component.SessionDashing:
		return sessionDash
	case component.SessionVaulting:
		return sessionVault
	default:
		return nil
	}
}

type slideState struct{}

type dashState struct{}

type vaultState struct{}

func (slideState) Kind() component.SessionKind { return component.SessionSliding }
func (slideState) Enter(ctx *motionContext) {
	ctx.body.SetDrag(0)
	dir := common.NormalizeOrZero(common.Planar(ctx.move())).Mul(ctx.tuning.SlideSpeed)
	vel := ctx.body.Velocity()
	ctx.body.SetVelocity(mgl64.Vec3{dir.X(), vel.Y(), dir.Z()})
}
func (slideState) Exit(ctx *motionContext) {
	ctx.body.SetDrag(ctx.tuning.GroundDrag)
}
func (slideState) Update(ctx *motionContext) {}

func (dashState) Kind() component.SessionKind { return component.SessionDashing }
func (dashState) Enter(ctx *motionContext) {
	vel := ctx.body.Velocity()
	ctx.body.SetVelocity(mgl64.Vec3{vel.X(), 0, vel.Z()})
	ctx.state.Session.RestoreDrag = ctx.body.Drag()
	ctx.body.SetDrag(0)

	dir := ctx.orientation.Forward()
	if move := ctx.move(); move.Len() > moveThreshold {
		dir = move.Normalize()
	}
	ctx.body.AddForce(dir.Mul(ctx.tuning.DashForce), component.ForceImpulse)

	if ctx.effects.Dash != nil {
		ctx.effects.Dash.Play()
	}
}
func (dashState) Exit(ctx *motionContext) {
	ctx.body.SetDrag(ctx.state.Session.RestoreDrag)
	if ctx.effects.Dash != nil {
		ctx.effects.Dash.Stop()
	}
}
func (dashState) Update(ctx *motionContext) {}

func (vaultState) Kind() component.SessionKind { return component.SessionVaulting }
func (vaultState) Enter(ctx *motionContext) {
	ctx.body.SetKinematic(true)
	start := ctx.body.Position()
	end := start.
		Add(ctx.orientation.Forward().Mul(vaultForwardOffset)).
		Add(component.Up.Mul(vaultUpOffset))
	ctx.state.Session.Vault = component.VaultSession{
		Start:    start,
		End:      end,
		Duration: ctx.tuning.VaultDuration,
	}
	ctx.playAnimation(vaultClip)
}
func (vaultState) Exit(ctx *motionContext) {
	ctx.body.SetPosition(ctx.state.Session.Vault.End)
	ctx.body.SetKinematic(false)
}
func (vaultState) Update(ctx *motionContext) {
	vault := &ctx.state.Session.Vault
	vault.Elapsed += ctx.clock.Delta
	t := vault.Progress()
	ctx.body.SetPosition(common.LerpVec3(vault.Start, vault.End, t))
	if t >= 1 {
		ctx.endSession()
	}
}
