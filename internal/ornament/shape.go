// Package ornament implements the wireframe ornament core: procedural
// line-segment geometry, the orientation animation state machine, screen
// placement and per-window distribution, and the neon color palette.
package ornament

import (
	"fmt"
	"strings"
)

// Shape identifies one of the procedural wireframe shapes.
type Shape int

const (
	ShapeCube Shape = iota
	ShapeSphere
	ShapePyramid
	ShapeTorus
	ShapeOctahedron

	shapeCount
)

var shapeNames = [...]string{
	"CUBE",
	"SPHERE",
	"PYRAMID",
	"TORUS",
	"OCTAHEDRON",
}

// String returns the canonical config-file name of the shape.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape parses a shape name, case-insensitively.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(name, n) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}
