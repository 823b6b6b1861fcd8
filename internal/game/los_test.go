package game

import "testing"

func TestLOS_ClearLine(t *testing.T) {
	if !LineOfSightClear(0, 0, 100, 100, nil) {
		t.Fatal("expected clear LOS with no barriers")
	}
}

func TestLOS_BlockedByBarrier(t *testing.T) {
	barriers := []Barrier{{X: 90, Y: 0, W: 20, H: 200}}
	if LineOfSightClear(0, 100, 200, 100, barriers) {
		t.Fatal("expected LOS blocked by barrier")
	}
}

func TestLOS_BarrierBeyondEndpoint_NotBlocked(t *testing.T) {
	barriers := []Barrier{{X: 300, Y: 0, W: 64, H: 64}}
	if !LineOfSightClear(0, 32, 200, 32, barriers) {
		t.Fatal("barrier beyond endpoint should not block LOS")
	}
}

func TestLOS_VerticalRay_Blocked(t *testing.T) {
	barriers := []Barrier{{X: 0, Y: 40, W: 200, H: 20}}
	if LineOfSightClear(100, 0, 100, 200, barriers) {
		t.Fatal("expected vertical ray blocked by horizontal barrier")
	}
}

func TestLOS_EndpointsNotSampled(t *testing.T) {
	// Start sits inside the barrier; the first sample is already past it.
	barriers := []Barrier{{X: 40, Y: 40, W: 12, H: 20}}
	if !LineOfSightClear(50, 50, 200, 50, barriers) {
		t.Fatal("an endpoint inside a barrier should not block LOS")
	}
}

func TestLOS_ShortSegmentAlwaysClear(t *testing.T) {
	barriers := []Barrier{{X: 0, Y: 0, W: 100, H: 100}}
	if !LineOfSightClear(10, 10, 19, 10, barriers) {
		t.Fatal("segment shorter than two samples has no interior samples")
	}
}

func TestSmoothPath_StraightLineCollapses(t *testing.T) {
	path := [][2]float64{{0, 0}, {30, 0}, {60, 0}, {90, 0}, {120, 0}}
	got := SmoothPath(path, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 waypoints, got %d: %v", len(got), got)
	}
	if got[0] != path[0] || got[1] != path[4] {
		t.Fatalf("expected endpoints kept, got %v", got)
	}
}

func TestSmoothPath_KeepsCorner(t *testing.T) {
	path := [][2]float64{{0, 0}, {0, 50}, {0, 100}, {50, 100}, {100, 100}}
	barriers := []Barrier{{X: 10, Y: 10, W: 100, H: 80}}
	got := SmoothPath(path, barriers)
	want := [][2]float64{{0, 0}, {0, 100}, {100, 100}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("waypoint %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSmoothPath_ShortPathsUnchanged(t *testing.T) {
	if got := SmoothPath(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty path, got %v", got)
	}
	two := [][2]float64{{0, 0}, {500, 500}}
	barriers := []Barrier{{X: 200, Y: 200, W: 100, H: 100}}
	if got := SmoothPath(two, barriers); len(got) != 2 {
		t.Fatalf("expected two-point path unchanged, got %v", got)
	}
}
