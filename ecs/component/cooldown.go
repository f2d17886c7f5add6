package component

// timerEpsilon absorbs float drift when a countdown lands on zero.
const timerEpsilon = 1e-9

// Timer is a countdown in seconds. It refuses to start while running.
type Timer struct {
	remaining float64
	overflow  float64
	running   bool
	expired   bool
}

// Start begins a countdown of d seconds. It returns false, leaving the timer
// untouched, if a countdown is already running.
func (t *Timer) Start(d float64) bool {
	if t.running {
		return false
	}
	if d < 0 {
		d = 0
	}
	t.remaining = d
	t.overflow = 0
	t.running = true
	t.expired = false
	if d <= timerEpsilon {
		t.finish(0)
	}
	return true
}

// Tick advances the countdown and returns the remaining time.
func (t *Timer) Tick(dt float64) float64 {
	if !t.running || dt <= 0 {
		return t.remaining
	}
	t.remaining -= dt
	if t.remaining <= timerEpsilon {
		t.finish(-t.remaining)
	}
	return t.remaining
}

func (t *Timer) finish(overflow float64) {
	if overflow < 0 {
		overflow = 0
	}
	t.overflow = overflow
	t.remaining = 0
	t.running = false
	t.expired = true
}

// Expired reports whether the last countdown reached zero.
func (t *Timer) Expired() bool { return t.expired }

// Running reports whether a countdown is in progress.
func (t *Timer) Running() bool { return t.running }

// Remaining returns the seconds left, 0 when idle.
func (t *Timer) Remaining() float64 { return t.remaining }

// Overflow is how far the last Tick went past zero.
func (t *Timer) Overflow() float64 { return t.overflow }

// AbilityPhase is the lifecycle of a gated ability.
type AbilityPhase int

const (
	AbilityIdle AbilityPhase = iota
	AbilityActive
	AbilityCooldown
)

func (p AbilityPhase) String() string {
	switch p {
	case AbilityIdle:
		return "idle"
	case AbilityActive:
		return "active"
	case AbilityCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Ability is a gated ability: Idle → Active for Duration → Cooldown for
// Cooldown → Idle. Time past the end of the active phase is charged to the
// cooldown, so the ability is unavailable for exactly Duration+Cooldown.
type Ability struct {
	Duration float64
	Cooldown float64

	Phase AbilityPhase
	Timer Timer
}

// NewAbility returns an idle ability with the given phase lengths.
func NewAbility(duration, cooldown float64) Ability {
	return Ability{Duration: duration, Cooldown: cooldown}
}

// Ready reports whether Start would succeed.
func (a *Ability) Ready() bool { return a.Phase == AbilityIdle }

// Active reports whether the ability is in its active phase.
func (a *Ability) Active() bool { return a.Phase == AbilityActive }

// Start moves an idle ability into its active phase. A zero Duration goes
// straight to cooldown.
func (a *Ability) Start() bool {
	if a.Phase != AbilityIdle || a.Timer.Running() {
		return false
	}
	if a.Duration <= timerEpsilon {
		a.enterCooldown(0)
		return true
	}
	a.Phase = AbilityActive
	a.Timer.Start(a.Duration)
	return true
}

// Tick advances the ability and reports whether the active phase ended
// during this tick.
func (a *Ability) Tick(dt float64) (ended bool) {
	switch a.Phase {
	case AbilityActive:
		a.Timer.Tick(dt)
		if !a.Timer.Expired() {
			return false
		}
		a.enterCooldown(a.Timer.Overflow())
		return true
	case AbilityCooldown:
		a.Timer.Tick(dt)
		if a.Timer.Expired() {
			a.Phase = AbilityIdle
		}
	}
	return false
}

func (a *Ability) enterCooldown(spent float64) {
	a.Phase = AbilityCooldown
	a.Timer.Start(a.Cooldown)
	if spent > 0 {
		a.Timer.Tick(spent)
	}
	if a.Timer.Expired() {
		a.Phase = AbilityIdle
	}
}
