package ornament

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/Faultbox/ornament/pkg/math"
)

// Color selects a fixed palette entry, or ColorRandom for continuous hue
// cycling.
type Color int

const (
	ColorGreen Color = iota
	ColorYellow
	ColorRed
	ColorBlue
	ColorCyan
	ColorPink
	ColorOrange
	ColorPurple
	ColorRandom
)

var colorNames = [...]string{
	"GREEN",
	"YELLOW",
	"RED",
	"BLUE",
	"CYAN",
	"PINK",
	"ORANGE",
	"PURPLE",
	"RANDOM",
}

// neonPalette holds the fixed palette RGB triples, normalized to [0,1].
var neonPalette = [...]math.Vec3{
	ColorGreen:  {X: 0.1, Y: 1.0, Z: 0.4},
	ColorYellow: {X: 1.0, Y: 0.95, Z: 0.2},
	ColorRed:    {X: 1.0, Y: 0.15, Z: 0.15},
	ColorBlue:   {X: 0.2, Y: 0.6, Z: 1.0},
	ColorCyan:   {X: 0.2, Y: 1.0, Z: 1.0},
	ColorPink:   {X: 1.0, Y: 0.3, Z: 0.8},
	ColorOrange: {X: 1.0, Y: 0.55, Z: 0.15},
	ColorPurple: {X: 0.75, Y: 0.3, Z: 1.0},
	ColorRandom: {X: 1.0, Y: 1.0, Z: 1.0},
}

// String returns the canonical config-file name of the color.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor parses a color name, case-insensitively.
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if strings.EqualFold(name, n) {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

// RGB returns the palette triple for a fixed color. ColorRandom returns
// white; use ColorAt for the time-dependent cycling value.
func (c Color) RGB() math.Vec3 {
	if c < 0 || int(c) >= len(neonPalette) {
		return math.Vec3{X: 1, Y: 1, Z: 1}
	}
	return neonPalette[c]
}

// HSVToRGB converts hue/saturation/value to RGB. h is wrapped into [0,1).
func HSVToRGB(h, s, v float32) math.Vec3 {
	h = h - float32(gomath.Floor(float64(h)))

	i := gomath.Floor(float64(h) * 6)
	f := float32(float64(h)*6 - i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(i) % 6 {
	case 0:
		return math.Vec3{X: v, Y: t, Z: p}
	case 1:
		return math.Vec3{X: q, Y: v, Z: p}
	case 2:
		return math.Vec3{X: p, Y: v, Z: t}
	case 3:
		return math.Vec3{X: p, Y: q, Z: v}
	case 4:
		return math.Vec3{X: t, Y: p, Z: v}
	default:
		return math.Vec3{X: v, Y: p, Z: q}
	}
}
