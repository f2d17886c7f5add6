package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/vaultrun/ecs"
	"github.com/milk9111/vaultrun/ecs/component"
	"github.com/milk9111/vaultrun/ecs/entity"
)

// frameDelta is an exact binary fraction so timer sums stay exact.
const frameDelta = 0.125

// vecNear compares component-wise with an absolute tolerance, so a trig
// residue like 6e-17 still matches an exact zero.
func vecNear(got, want mgl64.Vec3, eps float64) bool {
	for i := range got {
		if math.Abs(got[i]-want[i]) > eps {
			return false
		}
	}
	return true
}

type forceCall struct {
	force mgl64.Vec3
	mode  component.ForceMode
}

// fakeBody applies impulses straight to velocity (unit mass) and records
// every write.
type fakeBody struct {
	pos, vel  mgl64.Vec3
	drag      float64
	kinematic bool
	scaleY    float64

	forces          []forceCall
	kinematicWrites []bool
}

func (b *fakeBody) Position() mgl64.Vec3     { return b.pos }
func (b *fakeBody) SetPosition(p mgl64.Vec3) { b.pos = p }
func (b *fakeBody) Velocity() mgl64.Vec3     { return b.vel }
func (b *fakeBody) SetVelocity(v mgl64.Vec3) { b.vel = v }
func (b *fakeBody) Drag() float64            { return b.drag }
func (b *fakeBody) SetDrag(d float64)        { b.drag = d }
func (b *fakeBody) Kinematic() bool          { return b.kinematic }
func (b *fakeBody) SetKinematic(k bool) {
	b.kinematic = k
	b.kinematicWrites = append(b.kinematicWrites, k)
}
func (b *fakeBody) AddForce(f mgl64.Vec3, mode component.ForceMode) {
	b.forces = append(b.forces, forceCall{force: f, mode: mode})
	if mode == component.ForceImpulse {
		b.vel = b.vel.Add(f)
	}
}
func (b *fakeBody) ScaleY() float64     { return b.scaleY }
func (b *fakeBody) SetScaleY(s float64) { b.scaleY = s }

func (b *fakeBody) impulses() []mgl64.Vec3 {
	var out []mgl64.Vec3
	for _, f := range b.forces {
		if f.mode == component.ForceImpulse {
			out = append(out, f.force)
		}
	}
	return out
}

func (b *fakeBody) continuous() []mgl64.Vec3 {
	var out []mgl64.Vec3
	for _, f := range b.forces {
		if f.mode == component.ForceContinuous {
			out = append(out, f.force)
		}
	}
	return out
}

type ray struct {
	origin, dir mgl64.Vec3
	distance    float64
}

// fakeProbe answers by mask: ground, wall, or anything else as the vault ray.
type fakeProbe struct {
	ground      bool
	wall        bool
	vault       bool
	vaultHeight float64

	rays map[component.Layer]ray
}

func (p *fakeProbe) Raycast(origin, dir mgl64.Vec3, distance float64, mask component.Layer) (component.RaycastHit, bool) {
	if p.rays == nil {
		p.rays = map[component.Layer]ray{}
	}
	p.rays[mask] = ray{origin: origin, dir: dir, distance: distance}
	switch mask {
	case component.LayerGround:
		return component.RaycastHit{Layer: component.LayerGround}, p.ground
	case component.LayerWall:
		return component.RaycastHit{Layer: component.LayerWall}, p.wall
	default:
		if !p.vault {
			return component.RaycastHit{}, false
		}
		// origin is raised by vaultProbeRise above the body
		point := origin.Add(dir.Mul(distance * 0.5))
		point[1] = origin.Y() - vaultProbeRise + p.vaultHeight
		return component.RaycastHit{Point: point, Layer: component.LayerObstacle}, true
	}
}

type fakeParticles struct {
	plays, stops int
}

func (p *fakeParticles) Play() { p.plays++ }
func (p *fakeParticles) Stop() { p.stops++ }

type fakeAnimator struct {
	clips []string
}

func (a *fakeAnimator) Play(clip string) { a.clips = append(a.clips, clip) }

type sourceFunc func(frame uint64, t float64) component.RawInput

func (f sourceFunc) Sample(frame uint64, t float64) component.RawInput { return f(frame, t) }

// harness wires one player and the time keeper into a loop scheduled the way
// the game schedules it.
type harness struct {
	t *testing.T

	w         *ecs.World
	loop      *ecs.Loop
	player    ecs.Entity
	body      *fakeBody
	probe     *fakeProbe
	particles *fakeParticles
	animator  *fakeAnimator

	// raw is what the input source reports on the next frame.
	raw component.RawInput
}

func newHarness(t *testing.T, tuning component.Movement) *harness {
	t.Helper()

	h := &harness{
		t:         t,
		w:         ecs.NewWorld(),
		body:      &fakeBody{pos: mgl64.Vec3{0, 1, 0}, drag: tuning.GroundDrag, scaleY: 1},
		probe:     &fakeProbe{ground: true},
		particles: &fakeParticles{},
		animator:  &fakeAnimator{},
	}

	player, err := entity.NewPlayer(h.w, entity.PlayerConfig{
		Movement:    tuning,
		Abilities:   component.AllAbilities(),
		Body:        h.body,
		Probe:       h.probe,
		Orientation: &component.Orientation{},
		Animator:    h.animator,
		Particles:   h.particles,
	})
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	h.player = player
	if _, err := entity.NewTimeKeeper(h.w); err != nil {
		t.Fatalf("new time keeper: %v", err)
	}

	source := sourceFunc(func(uint64, float64) component.RawInput { return h.raw })
	h.loop, _ = NewPlayerLoop(source, nil, frameDelta, nil)
	return h
}

// step advances one frame of frameDelta real seconds.
func (h *harness) step() {
	h.loop.Advance(h.w, frameDelta)
}

// press reports the button held for one frame, then released for one.
func (h *harness) press(set func(*component.RawInput)) {
	set(&h.raw)
	h.step()
	h.raw = component.RawInput{Horizontal: h.raw.Horizontal, Vertical: h.raw.Vertical, Sprint: h.raw.Sprint}
	h.step()
}

func (h *harness) state() *component.MotionState {
	h.t.Helper()
	state, ok := ecs.Get(h.w, h.player, component.MotionStateComponent.Kind())
	if !ok {
		h.t.Fatal("player has no motion state")
	}
	return state
}

func (h *harness) timeScale() *component.TimeScale {
	h.t.Helper()
	keeper, ok := h.w.First(component.TimeKeeperTagComponent.Kind())
	if !ok {
		h.t.Fatal("no time keeper")
	}
	ts, _ := ecs.Get(h.w, keeper, component.TimeScaleComponent.Kind())
	return ts
}

func jump(r *component.RawInput)       { r.Jump = true }
func dash(r *component.RawInput)       { r.Dash = true }
func slowMotion(r *component.RawInput) { r.SlowMotion = true }
