package ornament

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestMonitorsClampAndDedup(t *testing.T) {
	entries := []Config{
		{Screen: -3}, // clamps to 0
		{Screen: 1},
		{Screen: 7}, // clamps to monitorCount-1
		{Screen: 1},
	}
	got := Monitors(entries, 2)
	if want := []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Monitors = %v, want %v", got, want)
	}
}

func TestMonitorsDefault(t *testing.T) {
	got := Monitors(nil, 3)
	if want := []int{0}; !reflect.DeepEqual(got, want) {
		t.Errorf("Monitors with no entries = %v, want %v", got, want)
	}
}

func TestDistributeRoundRobin(t *testing.T) {
	got := Distribute(5, 2)
	want := [][]int{{0, 2, 4}, {1, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Distribute(5,2) = %v, want %v", got, want)
	}
}

func TestDistributeOntoSurvivingSurfaces(t *testing.T) {
	// Entries reference two monitors but only one surface came up (the
	// other display failed): every instance still gets drawn somewhere.
	entries := []Config{
		{Anchor: AnchorTopLeft, Screen: 0},
		{Anchor: AnchorCenter, Screen: 1},
		{Anchor: AnchorBottomRight, Screen: 1},
	}

	rng := rand.New(rand.NewSource(2))
	placer := NewPlacer()
	instances := make([]*Instance, len(entries))
	for i, e := range entries {
		instances[i] = NewInstance(e, placer.Place(e.Anchor, e.Screen), rng)
	}

	groups := Distribute(len(instances), 1)
	if want := [][]int{{0, 1, 2}}; !reflect.DeepEqual(groups, want) {
		t.Fatalf("Distribute = %v, want %v", groups, want)
	}
	if cmds := BuildDrawList(instances, groups[0], 0); len(cmds) != len(instances) {
		t.Errorf("got %d draw commands, want %d", len(cmds), len(instances))
	}
}

func TestDistributeSingleSurface(t *testing.T) {
	got := Distribute(3, 1)
	want := [][]int{{0, 1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Distribute(3,1) = %v, want %v", got, want)
	}
}

// Two entries both on monitor 0 with the CENTER anchor: only one surface is
// created, and both instances are dispatched to it round-robin.
func TestCenterPairEndToEnd(t *testing.T) {
	entries := []Config{
		{Shape: ShapeCube, Color: ColorGreen, Anchor: AnchorCenter, Screen: 0},
		{Shape: ShapeTorus, Color: ColorBlue, Anchor: AnchorCenter, Screen: 0},
	}

	mons := Monitors(entries, 3)
	if len(mons) != 1 || mons[0] != 0 {
		t.Fatalf("Monitors = %v, want [0]", mons)
	}

	rng := rand.New(rand.NewSource(1))
	placer := NewPlacer()
	instances := make([]*Instance, len(entries))
	for i, e := range entries {
		instances[i] = NewInstance(e, placer.Place(e.Anchor, e.Screen), rng)
	}

	groups := Distribute(len(instances), len(mons))
	want := [][]int{{0, 1}}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("Distribute = %v, want %v", groups, want)
	}

	cmds := BuildDrawList(instances, groups[0], 0)
	if len(cmds) != 2 {
		t.Fatalf("got %d draw commands, want 2", len(cmds))
	}
	if cmds[0].Mesh != &instances[0].Mesh || cmds[1].Mesh != &instances[1].Mesh {
		t.Error("draw commands should reference the instances' own meshes in order")
	}
}

func TestGlowPassSchedule(t *testing.T) {
	if len(GlowPasses) != 3 {
		t.Fatalf("expected exactly 3 glow passes, got %d", len(GlowPasses))
	}
	wantWidths := [3]float32{3.0, 1.8, 1.1}
	wantAlphas := [3]float32{0.15, 0.35, 0.8}
	for i, p := range GlowPasses {
		if p.Width != wantWidths[i] || p.Alpha != wantAlphas[i] {
			t.Errorf("pass %d = %+v, want width %v alpha %v", i, p, wantWidths[i], wantAlphas[i])
		}
	}
}
