package game

import (
	"math"
	"testing"
)

func TestNavGrid_UnblockedByDefault(t *testing.T) {
	ng := NewNavGrid(300, 210, nil, 0)
	cols, rows := ng.Size()
	if cols != 10 || rows != 7 {
		t.Fatalf("expected 10x7 grid, got %dx%d", cols, rows)
	}
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			if ng.IsBlocked(cx, cy) {
				t.Fatalf("empty grid has blocked cell (%d,%d)", cx, cy)
			}
		}
	}
}

func TestNavGrid_BarrierBlocksCells(t *testing.T) {
	// Barrier spans 60..120; cell centres at 75 and 105 fall inside.
	ng := NewNavGrid(300, 300, []Barrier{{X: 60, Y: 60, W: 60, H: 60}}, 0)
	if !ng.IsBlocked(2, 2) || !ng.IsBlocked(3, 3) {
		t.Fatal("cells inside barrier should be blocked")
	}
	if ng.IsBlocked(1, 2) || ng.IsBlocked(4, 2) {
		t.Fatal("cells outside barrier should be free")
	}
}

func TestNavGrid_PaddingBlocksAdjacentCells(t *testing.T) {
	// Half a 40px tank pads the barrier to 40..140, catching centres 45 and 135.
	ng := NewNavGrid(300, 300, []Barrier{{X: 60, Y: 60, W: 60, H: 60}}, 40)
	if !ng.IsBlocked(1, 2) || !ng.IsBlocked(4, 2) {
		t.Fatal("cells within padding should be blocked")
	}
	if ng.IsBlocked(0, 2) {
		t.Fatal("cell beyond padding should be free")
	}
}

func TestNavGrid_OOB_IsBlocked(t *testing.T) {
	ng := NewNavGrid(300, 300, nil, 0)
	if !ng.IsBlocked(-1, 0) || !ng.IsBlocked(0, -1) || !ng.IsBlocked(10, 0) || !ng.IsBlocked(0, 10) {
		t.Fatal("out-of-bounds cells should be blocked")
	}
}

func TestNavGrid_DegenerateSize(t *testing.T) {
	ng := NewNavGrid(20, 20, nil, 0)
	cols, rows := ng.Size()
	if cols != 0 || rows != 0 {
		t.Fatalf("expected empty grid, got %dx%d", cols, rows)
	}
	if p := ng.FindPath(5, 5, 15, 15); p != nil {
		t.Fatalf("expected no path on empty grid, got %v", p)
	}
}

func TestWorldToCell(t *testing.T) {
	ng := NewNavGrid(300, 300, nil, 0)
	cx, cy := ng.WorldToCell(45, 70)
	if cx != 1 || cy != 2 {
		t.Fatalf("expected (1,2) got (%d,%d)", cx, cy)
	}
	wx, wy := ng.CellToWorld(1, 2)
	if wx != 45 || wy != 75 {
		t.Fatalf("expected centre (45,75) got (%.0f,%.0f)", wx, wy)
	}
}

func TestFindPath_SameCellIsEmpty(t *testing.T) {
	ng := NewNavGrid(300, 300, nil, 0)
	if p := ng.FindPath(10, 10, 20, 20); p != nil {
		t.Fatalf("expected nil path within one cell, got %v", p)
	}
}

func TestFindPath_OutOfBoundsIsEmpty(t *testing.T) {
	ng := NewNavGrid(300, 300, nil, 0)
	if p := ng.FindPath(10, 10, 400, 20); p != nil {
		t.Fatalf("expected nil path to off-grid goal, got %v", p)
	}
	if p := ng.FindPath(-5, 10, 100, 20); p != nil {
		t.Fatalf("expected nil path from off-grid start, got %v", p)
	}
}

func TestFindPath_StraightLine(t *testing.T) {
	ng := NewNavGrid(300, 300, nil, 0)
	p := ng.FindPath(15, 15, 255, 15)
	if len(p) != 9 {
		t.Fatalf("expected 9 waypoints, got %d: %v", len(p), p)
	}
	for i, wp := range p {
		if wp[1] != 15 || wp[0] != float64(15+30*i) {
			t.Fatalf("waypoint %d off the straight line: %v", i, wp)
		}
	}
}

func TestFindPath_AvoidsWallsWithoutCornerCutting(t *testing.T) {
	barriers := []Barrier{{X: 120, Y: 0, W: 30, H: 240}}
	ng := NewNavGrid(300, 300, barriers, 0)
	p := ng.FindPath(45, 45, 255, 45)
	if len(p) == 0 {
		t.Fatal("expected a path around the wall")
	}
	prevX, prevY := ng.WorldToCell(p[0][0], p[0][1])
	for i, wp := range p {
		cx, cy := ng.WorldToCell(wp[0], wp[1])
		if ng.IsBlocked(cx, cy) {
			t.Fatalf("waypoint %d is in a wall: %v", i, wp)
		}
		if i == 0 {
			continue
		}
		dx, dy := cx-prevX, cy-prevY
		if abs(dx) > 1 || abs(dy) > 1 {
			t.Fatalf("waypoints %d and %d are not neighbours", i-1, i)
		}
		if dx != 0 && dy != 0 && (ng.IsBlocked(prevX+dx, prevY) || ng.IsBlocked(prevX, prevY+dy)) {
			t.Fatalf("diagonal step %d cuts a wall corner", i)
		}
		prevX, prevY = cx, cy
	}
}

func TestFindPath_WalledGoalSnapsToFreeCell(t *testing.T) {
	barriers := []Barrier{{X: 180, Y: 180, W: 60, H: 60}}
	ng := NewNavGrid(300, 300, barriers, 0)
	p := ng.FindPath(15, 15, 210, 210)
	if len(p) == 0 {
		t.Fatal("expected a path to the nearest free cell")
	}
	last := p[len(p)-1]
	cx, cy := ng.WorldToCell(last[0], last[1])
	if ng.IsBlocked(cx, cy) {
		t.Fatalf("path ends in a wall at %v", last)
	}
	if math.Hypot(last[0]-210, last[1]-210) > 60 {
		t.Fatalf("snapped goal %v is not next to the requested one", last)
	}
}

func TestFindPath_EnclosedGoalIsEmpty(t *testing.T) {
	// Ring of walls on cell rows/cols 5 and 9 encloses cells 6..8.
	barriers := []Barrier{
		{X: 150, Y: 160, W: 150, H: 10},
		{X: 150, Y: 280, W: 150, H: 10},
		{X: 160, Y: 150, W: 10, H: 150},
		{X: 280, Y: 150, W: 10, H: 150},
	}
	ng := NewNavGrid(300, 300, barriers, 0)
	if ng.IsBlocked(7, 7) {
		t.Fatal("test setup: goal cell should be free")
	}
	if p := ng.FindPath(15, 15, 225, 225); p != nil {
		t.Fatalf("expected nil path into sealed ring, got %d waypoints", len(p))
	}
}

func TestFindPath_RepeatableOnSameGrid(t *testing.T) {
	barriers := []Barrier{{X: 120, Y: 60, W: 30, H: 180}}
	ng := NewNavGrid(300, 300, barriers, 10)
	first := ng.FindPath(45, 150, 255, 150)
	second := ng.FindPath(45, 150, 255, 150)
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("expected identical non-empty paths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("waypoint %d differs between searches: %v vs %v", i, first[i], second[i])
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
