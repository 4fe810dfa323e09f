package ornament

import (
	gomath "math"
	"testing"
)

func checkSegmentBounds(t *testing.T, m WireMesh) {
	t.Helper()
	n := uint32(len(m.Vertices))
	for i, seg := range m.Segments {
		if seg[0] >= n || seg[1] >= n {
			t.Fatalf("segment %d (%d,%d) references out-of-bounds vertex, have %d vertices", i, seg[0], seg[1], n)
		}
	}
}

func TestSegmentIndicesInBounds(t *testing.T) {
	for s := Shape(0); s < shapeCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			checkSegmentBounds(t, BuildMesh(s))
		})
	}

	// Non-default tessellation
	checkSegmentBounds(t, Sphere(4, 6))
	checkSegmentBounds(t, Sphere(20, 32))
	checkSegmentBounds(t, Torus(8, 5, 1.0, 0.35))
	checkSegmentBounds(t, Torus(64, 24, 2.0, 0.1))
}

func TestFixedShapeCounts(t *testing.T) {
	tests := []struct {
		shape    Shape
		vertices int
		segments int
	}{
		{ShapeCube, 8, 12},
		{ShapePyramid, 5, 8},
		{ShapeOctahedron, 6, 12},
	}
	for _, tt := range tests {
		m := BuildMesh(tt.shape)
		if len(m.Vertices) != tt.vertices {
			t.Errorf("%v: got %d vertices, want %d", tt.shape, len(m.Vertices), tt.vertices)
		}
		if len(m.Segments) != tt.segments {
			t.Errorf("%v: got %d segments, want %d", tt.shape, len(m.Segments), tt.segments)
		}
	}
}

// sphereCounts returns the expected vertex and segment counts for
// Sphere(lat, lon): lat-1 closed latitude rings of lon points, lon open
// meridians of 2*lat points, and always 3 closed tilted rings of 2*lon
// points.
func sphereCounts(lat, lon int) (vertices, segments int) {
	vertices = (lat-1)*lon + lon*2*lat + 3*2*lon
	segments = (lat-1)*lon + lon*(2*lat-1) + 3*2*lon
	return
}

func TestSphereStructure(t *testing.T) {
	for _, tt := range []struct{ lat, lon int }{{10, 16}, {4, 6}, {7, 9}} {
		m := Sphere(tt.lat, tt.lon)
		wantV, wantS := sphereCounts(tt.lat, tt.lon)
		if len(m.Vertices) != wantV {
			t.Errorf("Sphere(%d,%d): got %d vertices, want %d", tt.lat, tt.lon, len(m.Vertices), wantV)
		}
		if len(m.Segments) != wantS {
			t.Errorf("Sphere(%d,%d): got %d segments, want %d", tt.lat, tt.lon, len(m.Segments), wantS)
		}
	}
}

func TestSphereExtraRingsIndependentOfTessellation(t *testing.T) {
	// The three tilted equatorial rings contribute exactly 2*lon vertices
	// and 2*lon segments each, whatever the band counts are.
	for _, tt := range []struct{ lat, lon int }{{3, 5}, {10, 16}, {16, 10}} {
		m := Sphere(tt.lat, tt.lon)
		base := (tt.lat-1)*tt.lon + tt.lon*2*tt.lat
		extraVerts := len(m.Vertices) - base
		if extraVerts != 3*2*tt.lon {
			t.Errorf("Sphere(%d,%d): got %d extra ring vertices, want %d", tt.lat, tt.lon, extraVerts, 3*2*tt.lon)
		}
	}
}

func TestSphereVerticesOnUnitSphere(t *testing.T) {
	m := Sphere(10, 16)
	for i, v := range m.Vertices {
		if d := gomath.Abs(float64(v.Length()) - 1); d > 1e-4 {
			t.Fatalf("vertex %d has radius %v, want 1", i, v.Length())
		}
	}
}

func TestTorusNormalization(t *testing.T) {
	for _, tt := range []struct {
		major, minor int
		r, mr        float32
	}{
		{32, 12, 1.0, 0.35},
		{16, 8, 2.5, 0.2},
		{48, 10, 0.7, 0.6},
	} {
		m := Torus(tt.major, tt.minor, tt.r, tt.mr)

		var maxR float64
		for _, v := range m.Vertices {
			if l := float64(v.Length()); l > maxR {
				maxR = l
			}
		}
		if gomath.Abs(maxR-0.5) > 1e-4 {
			t.Errorf("Torus(%d,%d,%v,%v): max radius %v, want 0.5", tt.major, tt.minor, tt.r, tt.mr, maxR)
		}
	}
}

func TestTorusSegmentCap(t *testing.T) {
	m := Torus(500, 12, 1.0, 0.35)
	if len(m.Vertices) != maxTorusSegments*12 {
		t.Errorf("got %d vertices, want %d (major count clamped)", len(m.Vertices), maxTorusSegments*12)
	}
	checkSegmentBounds(t, m)
}

func TestTorusGridSegments(t *testing.T) {
	// One major-ring and one minor-ring segment per grid cell
	m := Torus(8, 5, 1.0, 0.35)
	if want := 8 * 5 * 2; len(m.Segments) != want {
		t.Errorf("got %d segments, want %d", len(m.Segments), want)
	}
}

func TestParseShape(t *testing.T) {
	if s, err := ParseShape("torus"); err != nil || s != ShapeTorus {
		t.Errorf("ParseShape(torus) = %v, %v", s, err)
	}
	if s, err := ParseShape("OCTAHEDRON"); err != nil || s != ShapeOctahedron {
		t.Errorf("ParseShape(OCTAHEDRON) = %v, %v", s, err)
	}
	if _, err := ParseShape("DODECAHEDRON"); err == nil {
		t.Error("expected error for unknown shape")
	}
}
