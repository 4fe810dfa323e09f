package ornament

import "testing"

func TestPlaceTopLeftMargin(t *testing.T) {
	p := NewPlacer()
	got := p.Place(AnchorTopLeft, 0)
	if got.X != -0.88 || got.Y != 0.88 {
		t.Errorf("first TOP-LEFT placement = %v, want (-0.88, 0.88)", got)
	}
}

func TestPlaceEdgeMidpointMargin(t *testing.T) {
	p := NewPlacer()
	got := p.Place(AnchorTopCenter, 0)
	if got.X != 0 || got.Y != 0.88 {
		t.Errorf("TOP-CENTER placement = %v, want (0, 0.88)", got)
	}
}

func TestPlaceCenterUnaffected(t *testing.T) {
	p := NewPlacer()
	got := p.Place(AnchorCenter, 0)
	if got.X != 0 || got.Y != 0 {
		t.Errorf("CENTER placement = %v, want (0, 0)", got)
	}
}

func TestPlaceFanOutInwardDiagonal(t *testing.T) {
	p := NewPlacer()
	a := p.Place(AnchorTopLeft, 0)
	b := p.Place(AnchorTopLeft, 0)
	c := p.Place(AnchorTopLeft, 0)

	// From the top-left corner, inward means X increasing and Y decreasing
	if !(a.X < b.X && b.X < c.X) {
		t.Errorf("X offsets not strictly increasing inward: %v, %v, %v", a.X, b.X, c.X)
	}
	if !(a.Y > b.Y && b.Y > c.Y) {
		t.Errorf("Y offsets not strictly decreasing inward: %v, %v, %v", a.Y, b.Y, c.Y)
	}
	if a == b || b == c || a == c {
		t.Error("fan-out offsets must be distinct")
	}
}

func TestPlaceCenterRepeatsDegenerate(t *testing.T) {
	// Repeated CENTER ornaments intentionally receive no fan-out offset
	p := NewPlacer()
	a := p.Place(AnchorCenter, 0)
	b := p.Place(AnchorCenter, 0)
	if a != b {
		t.Errorf("CENTER repeats should coincide, got %v then %v", a, b)
	}
}

func TestPlaceCountersPerMonitor(t *testing.T) {
	p := NewPlacer()
	a := p.Place(AnchorBottomRight, 0)
	b := p.Place(AnchorBottomRight, 1)
	if a != b {
		t.Errorf("occupancy must be tracked per monitor, got %v and %v", a, b)
	}

	c := p.Place(AnchorBottomRight, 0)
	if c == a {
		t.Error("second ornament on the same monitor should be offset")
	}
}

func TestParseAnchor(t *testing.T) {
	if a, err := ParseAnchor("bottom-left"); err != nil || a != AnchorBottomLeft {
		t.Errorf("ParseAnchor(bottom-left) = %v, %v", a, err)
	}
	if a, err := ParseAnchor("CENTER"); err != nil || a != AnchorCenter {
		t.Errorf("ParseAnchor(CENTER) = %v, %v", a, err)
	}
	if _, err := ParseAnchor("MIDDLE"); err == nil {
		t.Error("expected error for unknown anchor")
	}
}
