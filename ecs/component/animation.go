package component

// Animator plays a named clip on the player's visual. Optional.
type Animator interface {
	Play(clip string)
}

// Particles toggles a particle effect. Optional.
type Particles interface {
	Play()
	Stop()
}

// Effects groups the presentation collaborators the controller triggers.
type Effects struct {
	Animator Animator
	Dash     Particles
}

var EffectsComponent = NewComponent[Effects]()
