package ecs

// Clock is the time context handed to every system update. Delta is gameplay
// time (already dilated by Scale); RealDelta is wall time for the same tick.
type Clock struct {
	Frame     uint64
	Delta     float64
	RealDelta float64
	Scale     float64
	Fixed     bool
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World, clock Clock) {
	if s == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w, clock)
	}
}

// maxFixedSteps bounds catch-up work after a long frame.
const maxFixedSteps = 8

// Loop drives one frame: Frame systems, then as many fixed steps as the
// dilated accumulator allows (each followed by Step), then Late systems.
type Loop struct {
	Frame *Scheduler
	Fixed *Scheduler
	Late  *Scheduler

	// FixedStep is the physics tick length in gameplay seconds.
	FixedStep float64
	// Step advances the external physics world after each fixed tick.
	Step func(dt float64)
	// Scale reports the current global time scale; nil means 1.
	Scale func(w *World) float64

	frame       uint64
	accumulator float64
}

// Advance runs a single frame that took realDelta wall-clock seconds.
func (l *Loop) Advance(w *World, realDelta float64) {
	if l == nil || w == nil {
		return
	}
	if realDelta < 0 {
		realDelta = 0
	}
	scale := 1.0
	if l.Scale != nil {
		scale = l.Scale(w)
	}
	l.frame++
	clock := Clock{
		Frame:     l.frame,
		Delta:     realDelta * scale,
		RealDelta: realDelta,
		Scale:     scale,
	}

	l.Frame.Update(w, clock)

	if l.FixedStep > 0 {
		l.accumulator += clock.Delta
		steps := 0
		for l.accumulator >= l.FixedStep-fixedEpsilon && steps < maxFixedSteps {
			l.accumulator -= l.FixedStep
			steps++
			l.Fixed.Update(w, Clock{
				Frame:     l.frame,
				Delta:     l.FixedStep,
				RealDelta: l.FixedStep / nonZero(scale),
				Scale:     scale,
				Fixed:     true,
			})
			if l.Step != nil {
				l.Step(l.FixedStep)
			}
		}
		if steps == maxFixedSteps && l.accumulator > l.FixedStep {
			l.accumulator = 0
		}
		if l.accumulator < 0 {
			l.accumulator = 0
		}
	}

	l.Late.Update(w, clock)
}

// CurrentFrame returns the number of the last frame Advance ran.
func (l *Loop) CurrentFrame() uint64 {
	if l == nil {
		return 0
	}
	return l.frame
}

const fixedEpsilon = 1e-9

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
