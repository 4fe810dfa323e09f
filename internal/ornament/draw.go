package ornament

import "github.com/Faultbox/ornament/pkg/math"

// GlowPass is one repeated line draw of the same mesh; several passes at
// decreasing width and increasing alpha, additively blended, make the neon
// glow. Width and Alpha multiply the caller-supplied base thickness and
// brightness.
type GlowPass struct {
	Width float32
	Alpha float32
}

// GlowPasses is the fixed glow schedule: wide faint halo first, narrow
// bright core last.
var GlowPasses = [3]GlowPass{
	{Width: 3.0, Alpha: 0.15},
	{Width: 1.8, Alpha: 0.35},
	{Width: 1.1, Alpha: 0.8},
}

// DrawCommand is one ornament ready for rasterization: its mesh, the full
// model transform, and the current base color. The renderer repeats the
// mesh once per GlowPass.
type DrawCommand struct {
	Mesh  *WireMesh
	Model math.Mat4
	Color math.Vec3
}

// BuildDrawList returns the ordered draw commands for one surface's group of
// instances at the given elapsed time.
func BuildDrawList(instances []*Instance, group []int, elapsed float64) []DrawCommand {
	cmds := make([]DrawCommand, 0, len(group))
	for _, idx := range group {
		o := instances[idx]
		cmds = append(cmds, DrawCommand{
			Mesh:  &o.Mesh,
			Model: o.ModelMatrix(),
			Color: o.ColorAt(elapsed),
		})
	}
	return cmds
}
