// Package camera provides the fixed scene camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/ornament/pkg/math"
)

// Camera is the fixed perspective camera every surface renders with: eye a
// short distance down +Z, looking at the origin. Only the aspect ratio
// varies, following the surface's framebuffer size.
type Camera struct {
	FOVY float32 // radians
	Near float32
	Far  float32
	Eye  math.Vec3
}

// New returns the default ornament camera.
func New() *Camera {
	return &Camera{
		FOVY: 50 * gomath.Pi / 180,
		Near: 0.01,
		Far:  100,
		Eye:  math.Vec3{X: 0, Y: 0, Z: 3},
	}
}

// Projection returns the perspective projection for the given framebuffer
// size.
func (c *Camera) Projection(width, height int) math.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(c.FOVY, aspect, c.Near, c.Far)
}

// View returns the view matrix.
func (c *Camera) View() math.Mat4 {
	return math.LookAt(c.Eye, math.Vec3{}, math.Vec3{Y: 1})
}

// ViewProjection returns projection * view for the given framebuffer size.
func (c *Camera) ViewProjection(width, height int) math.Mat4 {
	return c.Projection(width, height).Mul(c.View())
}
