package ornament

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/Faultbox/ornament/pkg/math"
)

func testInstance(rng *rand.Rand) *Instance {
	o := NewInstance(DefaultConfig(), math.Vec2{}, rng)
	// Zero out continuous spin so orientation assertions see only the
	// reorientation machinery.
	o.SpinYaw = 0
	o.SpinPitch = 0
	return o
}

func quatClose(a, b math.Quat, tol float64) bool {
	d := a.Dot(b)
	if d < 0 {
		d = -d
	}
	return gomath.Abs(1-float64(d)) < tol
}

func TestAdvanceEntersReorientation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := NewAnimator(rng)
	o := testInstance(rng)

	o.ReorientTimer = 0.001
	a.Advance(o, 0.002)

	if !o.Reorienting() {
		t.Fatal("expected instance to be reorienting after timer expiry")
	}
	if o.ReorientT <= 0 || o.ReorientT >= 1 {
		t.Errorf("ReorientT = %v, want in (0,1)", o.ReorientT)
	}
	if o.Target == math.QuatIdentity() {
		t.Error("expected a freshly sampled target orientation")
	}
}

func TestReorientationCompletesOnTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := NewAnimator(rng)
	o := testInstance(rng)

	o.ReorientTimer = 0
	o.ReorientDur = 0.5
	a.Advance(o, 0.1) // enters reorientation, samples the target
	target := o.Target

	for i := 0; i < 100 && o.Reorienting(); i++ {
		a.Advance(o, 0.1)
	}

	if o.Reorienting() {
		t.Fatal("reorientation never completed")
	}
	if !quatClose(o.Orient, target, 1e-5) {
		t.Errorf("orientation after completion = %+v, want target %+v", o.Orient, target)
	}
	if o.ReorientTimer < reorientTimerMin || o.ReorientTimer > reorientTimerMax {
		t.Errorf("new countdown %v outside [%v,%v]", o.ReorientTimer, float32(reorientTimerMin), float32(reorientTimerMax))
	}
	if o.ReorientDur < reorientDurMin || o.ReorientDur > reorientDurMax {
		t.Errorf("new duration %v outside [%v,%v]", o.ReorientDur, float32(reorientDurMin), float32(reorientDurMax))
	}
}

func TestOrientationStaysUnitLength(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a := NewAnimator(rng)
	o := NewInstance(Config{Shape: ShapeSphere, Color: ColorRandom}, math.Vec2{}, rng)

	for i := 0; i < 2000; i++ {
		a.Advance(o, 0.016)
		n := float64(o.Orient.Dot(o.Orient))
		if gomath.Abs(n-1) > 1e-3 {
			t.Fatalf("orientation norm drifted to %v after %d ticks", gomath.Sqrt(n), i+1)
		}
	}
}

func TestSpinAdvancesOrientation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := NewAnimator(rng)
	o := NewInstance(DefaultConfig(), math.Vec2{}, rng)
	o.ReorientTimer = 1000 // stay in the spinning state

	before := o.Orient
	a.Advance(o, 0.016)
	if quatClose(before, o.Orient, 1e-9) {
		t.Error("expected continuous spin to change the orientation")
	}
}

func TestHueAdvanceWraps(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a := NewAnimator(rng)
	o := testInstance(rng)
	o.ReorientTimer = 1000
	o.Hue = 0
	o.HueSpeed = 0.25

	// 4 seconds at 0.25 Hz is exactly one full cycle
	for i := 0; i < 40; i++ {
		a.Advance(o, 0.1)
	}
	if o.Hue > 1e-4 && o.Hue < 1-1e-4 {
		t.Errorf("hue = %v, want ~0 after a full cycle", o.Hue)
	}
}

func TestNewInstanceRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		o := NewInstance(DefaultConfig(), math.Vec2{}, rng)
		if o.HueSpeed < 0.25 || o.HueSpeed > 0.5 {
			t.Errorf("HueSpeed %v outside [0.25,0.5]", o.HueSpeed)
		}
		if o.SpinYaw < 180 || o.SpinYaw > 360 {
			t.Errorf("SpinYaw %v outside [180,360]", o.SpinYaw)
		}
		if o.SpinPitch < 15 || o.SpinPitch > 45 {
			t.Errorf("SpinPitch %v outside [15,45]", o.SpinPitch)
		}
		if o.ReorientTimer < 4 || o.ReorientTimer > 8 {
			t.Errorf("ReorientTimer %v outside [4,8]", o.ReorientTimer)
		}
		if o.ReorientDur < 1.5 || o.ReorientDur > 2.5 {
			t.Errorf("ReorientDur %v outside [1.5,2.5]", o.ReorientDur)
		}
		if o.Reorienting() {
			t.Error("fresh instance should start in the spinning state")
		}
	}
}
