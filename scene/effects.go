package scene

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// logAnimator stands in for a sprite animator: it logs clip changes and
// remembers the last one for the overlay.
type logAnimator struct {
	log  *slog.Logger
	clip string
}

func (a *logAnimator) Play(clip string) {
	a.clip = clip
	a.log.Debug("animation", slog.String("clip", clip))
}

// logParticles stands in for the dash trail emitter.
type logParticles struct {
	log     *slog.Logger
	playing bool
}

func (p *logParticles) Play() {
	p.playing = true
	p.log.Debug("particles", slog.Bool("playing", true))
}

func (p *logParticles) Stop() {
	p.playing = false
	p.log.Debug("particles", slog.Bool("playing", false))
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
}
