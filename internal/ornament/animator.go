package ornament

import (
	gomath "math"
	"math/rand"

	"github.com/Faultbox/ornament/pkg/math"
)

// Animation timing parameters.
const (
	reorientTimerMin = 4.0 // seconds between reorientations
	reorientTimerMax = 8.0
	reorientDurMin   = 1.5 // seconds one reorientation takes
	reorientDurMax   = 2.5
	reorientSpread   = 1.5 // radians, per Euler axis of a sampled target

	// Continuous spin slows down while reorienting so the slerp motion
	// stays visually distinguishable.
	reorientSpinScale = 0.5
)

// Animator advances ornament animation state. The random source is injected
// so tests can run against a deterministic sequence.
type Animator struct {
	rng *rand.Rand
}

// NewAnimator returns an Animator drawing from rng.
func NewAnimator(rng *rand.Rand) *Animator {
	return &Animator{rng: rng}
}

// Advance steps one instance by dt seconds: hue phase, the reorientation
// state machine, and continuous spin. The orientation is renormalized after
// every mutation so floating-point drift never accumulates.
func (a *Animator) Advance(o *Instance, dt float32) {
	o.Hue = frac(o.Hue + o.HueSpeed*dt)

	o.ReorientTimer -= dt

	spinScale := float32(1.0)
	if o.ReorientTimer <= 0 || o.ReorientT > 0 {
		if o.ReorientT == 0 {
			// Spinning -> Reorienting: sample a fresh target
			o.Target = math.QuatFromEuler(
				randRange(a.rng, -reorientSpread, reorientSpread),
				randRange(a.rng, -reorientSpread, reorientSpread),
				randRange(a.rng, -reorientSpread, reorientSpread),
			)
		}
		o.ReorientT += dt / o.ReorientDur
		if o.ReorientT >= 1 {
			// Reorienting -> Spinning: land exactly on the target
			o.Orient = o.Target
			o.ReorientT = 0
			o.ReorientTimer = randRange(a.rng, reorientTimerMin, reorientTimerMax)
			o.ReorientDur = randRange(a.rng, reorientDurMin, reorientDurMax)
		} else {
			o.Orient = o.Orient.Slerp(o.Target, o.ReorientT)
			spinScale = reorientSpinScale
		}
	}

	// Continuous spin, composed on the left as a world-space increment
	dYaw := o.SpinYaw * spinScale * dt * gomath.Pi / 180
	dPitch := o.SpinPitch * spinScale * dt * gomath.Pi / 180
	inc := math.QuatFromAxisAngle(math.Vec3{Y: 1}, dYaw).
		Mul(math.QuatFromAxisAngle(math.Vec3{X: 1}, dPitch))
	o.Orient = inc.Mul(o.Orient).Normalize()
}
