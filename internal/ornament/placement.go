package ornament

import (
	"fmt"
	"strings"

	"github.com/Faultbox/ornament/pkg/math"
)

// Anchor is one of nine named screen positions: the four corners, the four
// edge midpoints, and the center.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

var anchorNames = [...]string{
	"TOP-LEFT",
	"TOP-CENTER",
	"TOP-RIGHT",
	"CENTER-LEFT",
	"CENTER",
	"CENTER-RIGHT",
	"BOTTOM-LEFT",
	"BOTTOM-CENTER",
	"BOTTOM-RIGHT",
}

// String returns the canonical config-file name of the anchor.
func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor parses an anchor name, case-insensitively.
func ParseAnchor(name string) (Anchor, error) {
	for i, n := range anchorNames {
		if strings.EqualFold(name, n) {
			return Anchor(i), nil
		}
	}
	return 0, fmt.Errorf("unknown position %q", name)
}

// NDC returns the anchor's canonical normalized-device-coordinate point:
// corners at (±1,±1), edge midpoints at (0,±1)/(±1,0), center at (0,0).
func (a Anchor) NDC() math.Vec2 {
	switch a {
	case AnchorTopLeft:
		return math.Vec2{X: -1, Y: 1}
	case AnchorTopCenter:
		return math.Vec2{X: 0, Y: 1}
	case AnchorTopRight:
		return math.Vec2{X: 1, Y: 1}
	case AnchorCenterLeft:
		return math.Vec2{X: -1, Y: 0}
	case AnchorCenterRight:
		return math.Vec2{X: 1, Y: 0}
	case AnchorBottomLeft:
		return math.Vec2{X: -1, Y: -1}
	case AnchorBottomCenter:
		return math.Vec2{X: 0, Y: -1}
	case AnchorBottomRight:
		return math.Vec2{X: 1, Y: -1}
	default:
		return math.Vec2{}
	}
}

// Placement tuning, in normalized-device-coordinate units.
const (
	// anchorMargin insets edge and corner anchors from the screen boundary.
	anchorMargin = 0.12
	// overlapStep fans out repeated ornaments at the same anchor along the
	// inward diagonal.
	overlapStep = 0.05
)

// Placer converts (anchor, monitor) requests into concrete 2D offsets,
// keeping a per-(monitor, anchor) occupancy count so that repeated
// ornaments at the same spot fan out instead of overlapping.
type Placer struct {
	occupancy map[placeKey]int
}

type placeKey struct {
	monitor int
	anchor  Anchor
}

// NewPlacer returns a Placer with empty occupancy counters.
func NewPlacer() *Placer {
	return &Placer{occupancy: make(map[placeKey]int)}
}

// Place returns the placement offset for the next ornament at the given
// anchor on the given monitor, and advances the occupancy counter.
//
// The offset is the anchor's canonical point pulled inward by anchorMargin
// on each non-zero axis, plus an extra overlapStep*n inward diagonal for the
// n-th occupant. CENTER has no non-zero axis, so repeated CENTER ornaments
// all land on the same spot; that degenerate case is intentional.
func (p *Placer) Place(anchor Anchor, monitor int) math.Vec2 {
	key := placeKey{monitor: monitor, anchor: anchor}
	n := p.occupancy[key]
	p.occupancy[key] = n + 1

	ndc := anchor.NDC()
	pos := ndc

	// Inward margin on non-center axes
	if pos.X < 0 {
		pos.X += anchorMargin
	} else if pos.X > 0 {
		pos.X -= anchorMargin
	}
	if pos.Y < 0 {
		pos.Y += anchorMargin
	} else if pos.Y > 0 {
		pos.Y -= anchorMargin
	}

	// Inward diagonal fan-out for overlapping ornaments
	off := overlapStep * float32(n)
	pos.X -= sign(ndc.X) * off
	pos.Y -= sign(ndc.Y) * off

	return pos
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
