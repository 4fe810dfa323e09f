package ornament

import (
	gomath "math"
	"math/rand"

	"github.com/Faultbox/ornament/pkg/math"
)

// Config is one declarative ornament entry: what to draw, in which color,
// where on the screen, and on which monitor.
type Config struct {
	Shape  Shape
	Color  Color
	Anchor Anchor
	Screen int
}

// DefaultConfig is the fallback used when no valid entries are configured.
func DefaultConfig() Config {
	return Config{
		Shape:  ShapeCube,
		Color:  ColorGreen,
		Anchor: AnchorCenter,
		Screen: 0,
	}
}

// Instance is the mutable per-ornament runtime state. It owns its mesh,
// which is built once at creation and immutable afterwards. All other
// fields are advanced every frame by the Animator.
type Instance struct {
	Shape Shape
	Color Color

	// Hue cycling state (meaningful only for ColorRandom)
	Hue      float32 // base phase in [0,1)
	HueSpeed float32 // Hz

	// Orientation state machine
	Orient        math.Quat // current orientation, kept unit length
	Target        math.Quat // reorientation target
	ReorientT     float32   // progress in [0,1); 0 means spinning
	ReorientTimer float32   // seconds until the next reorientation
	ReorientDur   float32   // seconds one reorientation takes

	// Continuous spin rates, degrees per second
	SpinYaw   float32
	SpinPitch float32

	// Fixed placement offset in normalized device coordinates
	Offset math.Vec2

	Mesh WireMesh
}

// NewInstance builds the runtime instance for one config entry: the mesh for
// its shape, the placement offset, and randomized animation parameters drawn
// from rng.
func NewInstance(cfg Config, offset math.Vec2, rng *rand.Rand) *Instance {
	return &Instance{
		Shape:         cfg.Shape,
		Color:         cfg.Color,
		Hue:           rng.Float32(),
		HueSpeed:      randRange(rng, 0.25, 0.5),
		Orient:        math.QuatIdentity(),
		Target:        math.QuatIdentity(),
		ReorientTimer: randRange(rng, 4, 8),
		ReorientDur:   randRange(rng, 1.5, 2.5),
		SpinYaw:       randRange(rng, 180, 360),
		SpinPitch:     randRange(rng, 15, 45),
		Offset:        offset,
		Mesh:          BuildMesh(cfg.Shape),
	}
}

// Reorienting reports whether the instance is mid-reorientation.
func (o *Instance) Reorienting() bool {
	return o.ReorientT > 0
}

// ColorAt returns the RGB triple to draw with at the given elapsed time in
// seconds. Fixed colors are constant; ColorRandom cycles hue over time.
func (o *Instance) ColorAt(elapsed float64) math.Vec3 {
	if o.Color != ColorRandom {
		return o.Color.RGB()
	}
	h := frac(o.Hue + float32(elapsed)*o.HueSpeed)
	return HSVToRGB(h, 1, 1)
}

// ModelMatrix returns the model transform for drawing: placement translation,
// current orientation, and the shared shape scale.
func (o *Instance) ModelMatrix() math.Mat4 {
	t := math.Translate(o.Offset.X, o.Offset.Y, 0)
	r := o.Orient.ToMat4()
	s := math.ScaleUniform(shapeScale)
	return t.Mul(r.Mul(s))
}

// shapeScale shrinks the unit-sized meshes so they sit comfortably inside
// their anchor region.
const shapeScale = 0.6

func randRange(rng *rand.Rand, lo, hi float32) float32 {
	return lo + (hi-lo)*rng.Float32()
}

func frac(x float32) float32 {
	return x - float32(gomath.Floor(float64(x)))
}
