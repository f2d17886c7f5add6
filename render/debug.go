package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/vaultrun/ecs/component"
	"github.com/milk9111/vaultrun/scene"
	"golang.org/x/image/colornames"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
	defaultZoom         = 40
)

// Camera maps world units (Y up) to screen pixels (Y down), centered on X, Y.
type Camera struct {
	X, Y    float64
	Zoom    float64
	Width   float64
	Height  float64
	Damping float64
}

func NewCamera(width, height float64) *Camera {
	return &Camera{Zoom: defaultZoom, Width: width, Height: height, Damping: 0.15}
}

// Follow eases the camera toward target.
func (c *Camera) Follow(x, y float64) {
	k := c.Damping
	if k <= 0 || k > 1 {
		k = 1
	}
	c.X += (x - c.X) * k
	c.Y += (y - c.Y) * k
}

func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return (x-c.X)*zoom + c.Width/2, c.Height/2 - (y-c.Y)*zoom
}

// DrawSpace outlines every shape in the space, colored by collision layer.
func DrawSpace(space *cp.Space, cam *Camera, screen *ebiten.Image) {
	if space == nil || cam == nil || screen == nil {
		return
	}
	cp.DrawSpace(space, &spaceDrawer{screen: screen, cam: cam})
}

// DrawOverlay prints the locomotion state in the top-left corner.
func DrawOverlay(screen *ebiten.Image, snap scene.Snapshot, tps float64) {
	if screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, OverlayText(snap, tps), 10, 10)
}

func OverlayText(snap scene.Snapshot, tps float64) string {
	return fmt.Sprintf(
		"TPS: %.1f  Frame: %d\nSession: %s  Jumps: %d\nGrounded: %v  Wall: %v\nDash: %s (%.2fs)\nSlide: %s (%.2fs)\nWall jump: %s\nTime scale: %.2f (%.2fs)\nVel: (%.2f, %.2f)",
		tps, snap.Frame,
		snap.Session, snap.Jumps,
		snap.Grounded, snap.TouchingWall,
		snap.Dash, snap.DashLeft,
		snap.Slide, snap.SlideLeft,
		snap.WallJump,
		snap.TimeScale, snap.SlowMotionLeft,
		snap.Velocity.X(), snap.Velocity.Y(),
	)
}

// LayerColor is the outline color for shapes in layer.
func LayerColor(layer component.Layer) color.RGBA {
	switch {
	case layer&component.LayerPlayer != 0:
		return colornames.Gold
	case layer&component.LayerWall != 0:
		return colornames.Steelblue
	case layer&component.LayerObstacle != 0:
		return colornames.Orange
	case layer&component.LayerGround != 0:
		return colornames.Seagreen
	default:
		return colornames.Lightgrey
	}
}

type spaceDrawer struct {
	screen *ebiten.Image
	cam    *Camera
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / d.cam.Zoom / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return toFColor(colornames.Lightgrey)
}

func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return toFColor(LayerColor(component.Layer(shape.Filter.Categories)))
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return toFColor(colornames.Orange)
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return toFColor(colornames.Red)
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func (d *spaceDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.cam.ToScreen(a.X, a.Y)
	x2, y2 := d.cam.ToScreen(b.X, b.Y)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1.5, toNRGBA(c), true)
}

func (d *spaceDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *spaceDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	var ring [debugCircleSegments]cp.Vector
	step := 2 * math.Pi / debugCircleSegments
	for i := range ring {
		sin, cos := math.Sincos(float64(i) * step)
		ring[i] = center.Add(cp.Vector{X: cos * radius, Y: sin * radius})
	}
	d.drawPolygon(ring[:], c)
}

func toFColor(c color.RGBA) cp.FColor {
	return cp.FColor{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

// channel converts a [0, 1] color channel to a byte, saturating outside the range.
func channel(v float32) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, float64(v))) * 255))
}
