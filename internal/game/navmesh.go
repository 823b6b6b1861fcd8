package game

import (
	"container/heap"
	"math"
)

// NavGrid is a 2D walkability grid where true = wall. It is rebuilt
// wholesale whenever the barrier layout or the arena size changes.
type NavGrid struct {
	cols     int
	rows     int
	cellSize float64
	blocked  []bool

	search searchScratch
}

// NewNavGrid rasterises the barrier set. A cell is a wall when its centre
// falls inside any barrier expanded by half a tank width.
func NewNavGrid(w, h float64, barriers []Barrier, tankWidth float64) *NavGrid {
	cols := int(math.Floor(w / navCellSize))
	rows := int(math.Floor(h / navCellSize))
	if cols < 0 || rows < 0 {
		cols, rows = 0, 0
	}
	ng := &NavGrid{
		cols:     cols,
		rows:     rows,
		cellSize: navCellSize,
		blocked:  make([]bool, cols*rows),
	}

	pad := tankWidth / 2
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			wx, wy := ng.CellToWorld(cx, cy)
			ng.blocked[cy*cols+cx] = insideAny(wx, wy, pad, barriers)
		}
	}
	ng.search.resize(cols * rows)
	return ng
}

// Size returns the grid dimensions in cells.
func (ng *NavGrid) Size() (int, int) {
	return ng.cols, ng.rows
}

func (ng *NavGrid) inBounds(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < ng.cols && cy < ng.rows
}

// IsBlocked returns true if the cell at (cx, cy) is a wall or off the grid.
func (ng *NavGrid) IsBlocked(cx, cy int) bool {
	if !ng.inBounds(cx, cy) {
		return true
	}
	return ng.blocked[cy*ng.cols+cx]
}

// WorldToCell converts world pixel coordinates to grid cell coordinates.
func (ng *NavGrid) WorldToCell(wx, wy float64) (int, int) {
	return int(math.Floor(wx / ng.cellSize)), int(math.Floor(wy / ng.cellSize))
}

// CellToWorld converts grid cell coordinates to the world pixel centre.
func (ng *NavGrid) CellToWorld(cx, cy int) (float64, float64) {
	return float64(cx)*ng.cellSize + ng.cellSize/2, float64(cy)*ng.cellSize + ng.cellSize/2
}

// --- A* pathfinding ---

const (
	nodeUnseen uint8 = iota
	nodeOpen
	nodeClosed
)

// searchScratch is per-search bookkeeping indexed by flat cell index. It is
// kept apart from the static walkability data and reset at the start of
// every FindPath call instead of being reallocated.
type searchScratch struct {
	g       []float64
	h       []float64
	f       []float64
	parent  []int
	state   []uint8
	seq     []int // insertion order into the open set, for tie-breaking
	heapIdx []int
	visited []bool // nearest-free-cell BFS
	nextSeq int
}

func (s *searchScratch) resize(n int) {
	s.g = make([]float64, n)
	s.h = make([]float64, n)
	s.f = make([]float64, n)
	s.parent = make([]int, n)
	s.state = make([]uint8, n)
	s.seq = make([]int, n)
	s.heapIdx = make([]int, n)
	s.visited = make([]bool, n)
}

func (s *searchScratch) reset() {
	for i := range s.state {
		s.g[i], s.h[i], s.f[i] = 0, 0, 0
		s.parent[i] = -1
		s.state[i] = nodeUnseen
		s.seq[i] = 0
		s.heapIdx[i] = -1
		s.visited[i] = false
	}
	s.nextSeq = 0
}

// openList orders cells by f, breaking ties by the order they were first
// added to the open set.
type openList struct {
	cells []int
	s     *searchScratch
}

func (ol openList) Len() int { return len(ol.cells) }
func (ol openList) Less(i, j int) bool {
	a, b := ol.cells[i], ol.cells[j]
	if ol.s.f[a] != ol.s.f[b] {
		return ol.s.f[a] < ol.s.f[b]
	}
	return ol.s.seq[a] < ol.s.seq[b]
}
func (ol openList) Swap(i, j int) {
	ol.cells[i], ol.cells[j] = ol.cells[j], ol.cells[i]
	ol.s.heapIdx[ol.cells[i]] = i
	ol.s.heapIdx[ol.cells[j]] = j
}
func (ol *openList) Push(x interface{}) {
	c := x.(int)
	ol.s.heapIdx[c] = len(ol.cells)
	ol.cells = append(ol.cells, c)
}
func (ol *openList) Pop() interface{} {
	old := ol.cells
	c := old[len(old)-1]
	ol.cells = old[:len(old)-1]
	ol.s.heapIdx[c] = -1
	return c
}

// searchDirs is the expansion order for A*: dx outer, dy inner.
var searchDirs = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// bfsDirs is the visitation order when hunting for the nearest free cell.
var bfsDirs = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
}

// FindPath returns cell-centre waypoints from (sx,sy) to (gx,gy), start and
// goal inclusive. Walled endpoints are swapped for the nearest free cell.
// Returns nil when either endpoint is off the grid, no free cell is
// reachable, both ends resolve to the same cell, or the goal is unreachable.
func (ng *NavGrid) FindPath(sx, sy, gx, gy float64) [][2]float64 {
	scx, scy := ng.WorldToCell(sx, sy)
	gcx, gcy := ng.WorldToCell(gx, gy)
	if !ng.inBounds(scx, scy) || !ng.inBounds(gcx, gcy) {
		return nil
	}

	s := &ng.search
	s.reset()

	start := ng.nearestOpen(scx, scy)
	goal := ng.nearestOpen(gcx, gcy)
	if start < 0 || goal < 0 || start == goal {
		return nil
	}

	goalX, goalY := goal%ng.cols, goal/ng.cols
	ol := &openList{s: s}
	ng.open(ol, start, 0, goalX, goalY)

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(int)
		if cur == goal {
			return ng.buildPath(goal)
		}
		s.state[cur] = nodeClosed
		cx, cy := cur%ng.cols, cur/ng.cols

		for _, d := range searchDirs {
			nx, ny := cx+d[0], cy+d[1]
			if ng.IsBlocked(nx, ny) {
				continue
			}
			n := ny*ng.cols + nx
			if s.state[n] == nodeClosed {
				continue
			}
			// No diagonal corner-cutting past a wall.
			if d[0] != 0 && d[1] != 0 {
				if ng.IsBlocked(nx, cy) || ng.IsBlocked(cx, ny) {
					continue
				}
			}
			step := 1.0
			if d[0] != 0 && d[1] != 0 {
				step = math.Sqrt2
			}
			g := s.g[cur] + step

			switch s.state[n] {
			case nodeUnseen:
				s.parent[n] = cur
				ng.open(ol, n, g, goalX, goalY)
			case nodeOpen:
				if g < s.g[n] {
					s.parent[n] = cur
					s.g[n] = g
					s.f[n] = g + s.h[n]
					heap.Fix(ol, s.heapIdx[n])
				}
			}
		}
	}
	return nil
}

func (ng *NavGrid) open(ol *openList, cell int, g float64, goalX, goalY int) {
	s := ol.s
	cx, cy := cell%ng.cols, cell/ng.cols
	s.g[cell] = g
	s.h[cell] = math.Hypot(float64(cx-goalX), float64(cy-goalY))
	s.f[cell] = g + s.h[cell]
	s.state[cell] = nodeOpen
	s.seq[cell] = s.nextSeq
	s.nextSeq++
	heap.Push(ol, cell)
}

// nearestOpen returns the flat index of (cx,cy) if it is free, otherwise the
// first free cell found by breadth-first search over 8 neighbours. Returns -1
// when nothing free is reachable.
func (ng *NavGrid) nearestOpen(cx, cy int) int {
	root := cy*ng.cols + cx
	if !ng.blocked[root] {
		return root
	}

	visited := ng.search.visited
	for i := range visited {
		visited[i] = false
	}
	queue := []int{root}
	visited[root] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !ng.blocked[cur] {
			return cur
		}
		x, y := cur%ng.cols, cur/ng.cols
		for _, d := range bfsDirs {
			nx, ny := x+d[0], y+d[1]
			if !ng.inBounds(nx, ny) {
				continue
			}
			n := ny*ng.cols + nx
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return -1
}

func (ng *NavGrid) buildPath(end int) [][2]float64 {
	var cells []int
	for c := end; c >= 0; c = ng.search.parent[c] {
		cells = append(cells, c)
	}
	path := make([][2]float64, len(cells))
	for i, c := range cells {
		wx, wy := ng.CellToWorld(c%ng.cols, c/ng.cols)
		path[len(cells)-1-i] = [2]float64{wx, wy}
	}
	return path
}
