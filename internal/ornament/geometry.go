package ornament

import (
	gomath "math"

	"github.com/Faultbox/ornament/pkg/math"
)

// WireMesh is a wireframe mesh: a list of vertex positions and a list of
// index pairs, each pair drawn as one straight line segment. Meshes are
// built once per ornament and never mutated afterwards.
type WireMesh struct {
	Vertices []math.Vec3
	Segments [][2]uint32
}

// Default tessellation parameters, matching the shipped visuals.
const (
	sphereLatBands    = 10
	sphereLonSegments = 16

	torusMajorSegments = 32
	torusMinorSegments = 12
	torusMajorRadius   = 1.0
	torusMinorRadius   = 0.35
)

// maxTorusSegments bounds the torus index grid. Requested counts above this
// are clamped.
const maxTorusSegments = 128

// BuildMesh builds the wireframe mesh for the given shape using the default
// tessellation parameters.
func BuildMesh(shape Shape) WireMesh {
	switch shape {
	case ShapeSphere:
		return Sphere(sphereLatBands, sphereLonSegments)
	case ShapePyramid:
		return Pyramid()
	case ShapeTorus:
		return Torus(torusMajorSegments, torusMinorSegments, torusMajorRadius, torusMinorRadius)
	case ShapeOctahedron:
		return Octahedron()
	default:
		return Cube()
	}
}

// Cube returns a unit cube wireframe: 8 vertices, 12 edges.
func Cube() WireMesh {
	return WireMesh{
		Vertices: []math.Vec3{
			{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5},
			{X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5},
			{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5},
			{X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5},
		},
		Segments: [][2]uint32{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}
}

// Pyramid returns a square-based pyramid wireframe: 5 vertices, 8 edges.
func Pyramid() WireMesh {
	return WireMesh{
		Vertices: []math.Vec3{
			{X: -0.5, Y: 0, Z: -0.5}, {X: 0.5, Y: 0, Z: -0.5},
			{X: 0.5, Y: 0, Z: 0.5}, {X: -0.5, Y: 0, Z: 0.5},
			{X: 0, Y: 0.8, Z: 0},
		},
		Segments: [][2]uint32{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{0, 4}, {1, 4}, {2, 4}, {3, 4},
		},
	}
}

// Octahedron returns an octahedron wireframe: 6 vertices, 12 edges.
func Octahedron() WireMesh {
	return WireMesh{
		Vertices: []math.Vec3{
			{X: 0, Y: 1, Z: 0},
			{X: 1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: -1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -1},
			{X: 0, Y: -1, Z: 0},
		},
		Segments: [][2]uint32{
			{0, 1}, {0, 2}, {0, 3}, {0, 4},
			{1, 2}, {2, 3}, {3, 4}, {4, 1},
			{5, 1}, {5, 2}, {5, 3}, {5, 4},
		},
	}
}

// Sphere returns a unit-sphere wireframe built from latitude rings, pole to
// pole meridians, and three tilted equatorial rings for visual density.
//
// latBands and lonSegments must be positive; this is a caller precondition,
// not a checked error.
func Sphere(latBands, lonSegments int) WireMesh {
	var m WireMesh

	// Latitude rings (excluding poles), closed loops of lonSegments points
	for i := 1; i < latBands; i++ {
		a := gomath.Pi * float64(i) / float64(latBands)
		y := float32(gomath.Cos(a))
		r := float32(gomath.Sin(a))

		first := uint32(len(m.Vertices))
		for j := 0; j < lonSegments; j++ {
			t := 2 * gomath.Pi * float64(j) / float64(lonSegments)
			m.Vertices = append(m.Vertices, math.Vec3{
				X: r * float32(gomath.Cos(t)),
				Y: y,
				Z: r * float32(gomath.Sin(t)),
			})
			if j > 0 {
				m.Segments = append(m.Segments, [2]uint32{first + uint32(j) - 1, first + uint32(j)})
			}
		}
		m.Segments = append(m.Segments, [2]uint32{first + uint32(lonSegments) - 1, first})
	}

	// Meridians, open polylines of 2*latBands points running pole to pole
	for j := 0; j < lonSegments; j++ {
		t := 2 * gomath.Pi * float64(j) / float64(lonSegments)
		points := 2 * latBands
		for k := 0; k < points; k++ {
			u := gomath.Pi * float64(k) / float64(points-1)
			m.Vertices = append(m.Vertices, math.Vec3{
				X: float32(gomath.Sin(u) * gomath.Cos(t)),
				Y: float32(gomath.Cos(u)),
				Z: float32(gomath.Sin(u) * gomath.Sin(t)),
			})
			if k > 0 {
				n := uint32(len(m.Vertices))
				m.Segments = append(m.Segments, [2]uint32{n - 2, n - 1})
			}
		}
	}

	// Three extra equatorial rings tilted about X, closed loops of
	// 2*lonSegments points
	for _, tilt := range sphereRingTilts {
		ct := float32(gomath.Cos(float64(tilt)))
		st := float32(gomath.Sin(float64(tilt)))

		points := 2 * lonSegments
		first := uint32(len(m.Vertices))
		for j := 0; j < points; j++ {
			t := 2 * gomath.Pi * float64(j) / float64(points)
			z := float32(gomath.Sin(t))
			m.Vertices = append(m.Vertices, math.Vec3{
				X: float32(gomath.Cos(t)),
				Y: -z * st,
				Z: z * ct,
			})
			if j > 0 {
				n := uint32(len(m.Vertices))
				m.Segments = append(m.Segments, [2]uint32{n - 2, n - 1})
			}
		}
		last := uint32(len(m.Vertices)) - 1
		m.Segments = append(m.Segments, [2]uint32{last, first})
	}

	return m
}

// sphereRingTilts are the tilt angles (radians, about X) of the extra
// equatorial rings.
var sphereRingTilts = [3]float32{0, 0.35, -0.5}

// Torus returns a torus wireframe as a majorSegments x minorSegments grid of
// points, with one major-ring and one minor-ring segment per grid cell. The
// result is rescaled so the farthest vertex sits at distance 0.5 from the
// origin, keeping torus size consistent with the other shapes.
//
// Segment counts are clamped to maxTorusSegments and must be positive
// (caller precondition).
func Torus(majorSegments, minorSegments int, majorRadius, minorRadius float32) WireMesh {
	if majorSegments > maxTorusSegments {
		majorSegments = maxTorusSegments
	}
	if minorSegments > maxTorusSegments {
		minorSegments = maxTorusSegments
	}

	var m WireMesh
	grid := make([][]uint32, majorSegments)

	for i := 0; i < majorSegments; i++ {
		a := 2 * gomath.Pi * float64(i) / float64(majorSegments)
		ca := float32(gomath.Cos(a))
		sa := float32(gomath.Sin(a))

		grid[i] = make([]uint32, minorSegments)
		for j := 0; j < minorSegments; j++ {
			b := 2 * gomath.Pi * float64(j) / float64(minorSegments)
			cb := float32(gomath.Cos(b))
			sb := float32(gomath.Sin(b))

			ring := majorRadius + minorRadius*cb
			grid[i][j] = uint32(len(m.Vertices))
			m.Vertices = append(m.Vertices, math.Vec3{
				X: ring * ca,
				Y: minorRadius * sb,
				Z: ring * sa,
			})
		}
	}

	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			i2 := (i + 1) % majorSegments
			j2 := (j + 1) % minorSegments
			m.Segments = append(m.Segments,
				[2]uint32{grid[i][j], grid[i2][j]}, // major ring
				[2]uint32{grid[i][j], grid[i][j2]}, // minor ring
			)
		}
	}

	// Unit-diameter normalization
	var maxR float32
	for _, v := range m.Vertices {
		if l := v.Length(); l > maxR {
			maxR = l
		}
	}
	if maxR > 0 {
		s := 0.5 / maxR
		for i := range m.Vertices {
			m.Vertices[i] = m.Vertices[i].Scale(s)
		}
	}

	return m
}
