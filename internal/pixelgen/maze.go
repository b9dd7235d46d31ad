package pixelgen

import (
	"math/rand"
)

// Wall bits per maze cell; a set bit means the passage in that direction
// is open. A zero cell is fully walled.
const (
	passUp = 1 << iota
	passDown
	passLeft
	passRight
)

// Fixed neighbor visitation order. Carving picks uniformly among the
// unvisited entries of this list; solving walks it in order, which makes
// shortest-path tie-breaks deterministic.
var mazeDirs = []struct {
	bit      uint8
	opposite uint8
	dr, dc   int
}{
	{passUp, passDown, -1, 0},
	{passDown, passUp, 1, 0},
	{passLeft, passRight, 0, -1},
	{passRight, passLeft, 0, 1},
}

// mazeGrid is the mutable cell grid used during carving and solving.
type mazeGrid struct {
	rows, cols int
	cells      []uint8
}

func newMazeGrid(rows, cols int) *mazeGrid {
	return &mazeGrid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

func (m *mazeGrid) at(r, c int) uint8      { return m.cells[r*m.cols+c] }
func (m *mazeGrid) open(r, c int, b uint8) { m.cells[r*m.cols+c] |= b }

func (m *mazeGrid) snapshot() []uint8 {
	s := make([]uint8, len(m.cells))
	copy(s, m.cells)
	return s
}

// carve runs a randomized iterative depth-first search over the grid,
// knocking down one wall per step. The explicit stack avoids recursion
// limits on large grids. When record is true, the cell state after every
// carving step is snapshotted for animation; the final snapshot is the
// fully carved maze. The result is a perfect maze: connected, acyclic,
// exactly cells-1 open passages.
func (m *mazeGrid) carve(rng *rand.Rand, record bool) [][]uint8 {
	total := m.rows * m.cols
	visited := make([]bool, total)
	stack := make([]int, 0, total)

	start := rng.Intn(total)
	visited[start] = true
	stack = append(stack, start)

	var steps [][]uint8
	if record {
		steps = append(steps, m.snapshot())
	}

	type cand struct {
		dir  int
		cell int
	}
	cands := make([]cand, 0, 4)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		r, c := cur/m.cols, cur%m.cols

		cands = cands[:0]
		for di, d := range mazeDirs {
			nr, nc := r+d.dr, c+d.dc
			if nr < 0 || nr >= m.rows || nc < 0 || nc >= m.cols {
				continue
			}
			n := nr*m.cols + nc
			if !visited[n] {
				cands = append(cands, cand{dir: di, cell: n})
			}
		}
		if len(cands) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		pick := cands[rng.Intn(len(cands))]
		d := mazeDirs[pick.dir]
		m.cells[cur] |= d.bit
		m.cells[pick.cell] |= d.opposite
		visited[pick.cell] = true
		stack = append(stack, pick.cell)
		if record {
			steps = append(steps, m.snapshot())
		}
	}
	return steps
}

// solve finds the shortest path from (0,0) to (rows-1,cols-1) through the
// carved passages. Breadth-first search, unit edge weights. Returns cell
// indices in path order.
func (m *mazeGrid) solve() []int {
	total := m.rows * m.cols
	prev := make([]int, total)
	seen := make([]bool, total)
	for i := range prev {
		prev[i] = -1
	}

	startCell := 0
	endCell := total - 1
	queue := []int{startCell}
	seen[startCell] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == endCell {
			break
		}
		r, c := cur/m.cols, cur%m.cols
		for _, d := range mazeDirs {
			if m.at(r, c)&d.bit == 0 {
				continue
			}
			n := (r+d.dr)*m.cols + (c + d.dc)
			if !seen[n] {
				seen[n] = true
				prev[n] = cur
				queue = append(queue, n)
			}
		}
	}

	if !seen[endCell] {
		return nil // unreachable only on an uncarved grid
	}
	path := []int{endCell}
	for cur := endCell; cur != startCell; {
		cur = prev[cur]
		path = append(path, cur)
	}
	// reverse to start -> end order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// mazeDims derives the cell grid size from the requested pixel shape:
// each cell gets a MazeCellPixels interior plus a one-pixel wall, with a
// one-pixel outer border. Always at least one cell.
func mazeDims(shape Shape) (rows, cols int) {
	span := MazeCellPixels + 1
	rows = imax(1, (shape.Y-1)/span)
	cols = imax(1, (shape.X-1)/span)
	return rows, cols
}

// renderMaze draws one frame of cell state into grid frame t. cells holds
// the open-passage bitmask per cell; value returns the fill value for a
// cell interior (open, path, start/end).
func renderMaze(g *Grid, t int, rows, cols int, cells []uint8, value func(cell int) Real) {
	span := MazeCellPixels + 1
	// walls everywhere first
	for y := 0; y < g.Shape.Y; y++ {
		for x := 0; x < g.Shape.X; x++ {
			g.Set(t, y, x, MazeWallValue)
		}
	}
	fill := func(y, x int, v Real) {
		if y >= 0 && y < g.Shape.Y && x >= 0 && x < g.Shape.X {
			g.Set(t, y, x, v)
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := r*cols + c
			v := value(cell)
			py, px := 1+r*span, 1+c*span
			for dy := 0; dy < MazeCellPixels; dy++ {
				for dx := 0; dx < MazeCellPixels; dx++ {
					fill(py+dy, px+dx, v)
				}
			}
			// open passages: punch through the shared wall strip. The
			// passage takes the dimmer of the two cell values so a path
			// never bleeds into a non-path cell.
			if cells[cell]&passRight != 0 && c+1 < cols {
				pv := minReal(v, value(cell+1))
				for dy := 0; dy < MazeCellPixels; dy++ {
					fill(py+dy, px+MazeCellPixels, pv)
				}
			}
			if cells[cell]&passDown != 0 && r+1 < rows {
				pv := minReal(v, value(cell+cols))
				for dx := 0; dx < MazeCellPixels; dx++ {
					fill(py+MazeCellPixels, px+dx, pv)
				}
			}
		}
	}
}

func minReal(a, b Real) Real {
	if a < b {
		return a
	}
	return b
}

// Maze carves a random perfect maze and renders it as T identical frames.
type Maze struct {
	seed Seed
}

func NewMaze(seed Seed) *Maze {
	return &Maze{seed: seed.orDefault()}
}

func (m *Maze) Seed() int64 {
	return m.seed.Int64()
}

func (m *Maze) Fill(shape Shape) (*Grid, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	rows, cols := mazeDims(shape)
	mg := newMazeGrid(rows, cols)
	mg.carve(m.seed.Rand(), false)
	DebugLog("Carved %dx%d maze, seed %d", rows, cols, m.seed.Int64())

	g := NewGrid(shape)
	open := func(int) Real { return MazeOpenValue }
	for t := 0; t < shape.T; t++ {
		renderMaze(g, t, rows, cols, mg.cells, open)
	}
	return g, nil
}

// AnimatedMaze renders the carving progressively: the carve history is
// resampled onto the requested T frames, so the first frame is the
// untouched grid and the last is the fully carved maze.
type AnimatedMaze struct {
	seed Seed
}

func NewAnimatedMaze(seed Seed) *AnimatedMaze {
	return &AnimatedMaze{seed: seed.orDefault()}
}

func (m *AnimatedMaze) Seed() int64 {
	return m.seed.Int64()
}

func (m *AnimatedMaze) Fill(shape Shape) (*Grid, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	rows, cols := mazeDims(shape)
	mg := newMazeGrid(rows, cols)
	steps := mg.carve(m.seed.Rand(), true)
	DebugLog("Carved %dx%d maze in %d steps, seed %d", rows, cols, len(steps), m.seed.Int64())

	g := NewGrid(shape)
	open := func(int) Real { return MazeOpenValue }
	for t := 0; t < shape.T; t++ {
		// map frame -> carve step; a single frame shows the finished maze
		si := len(steps) - 1
		if shape.T > 1 {
			si = t * (len(steps) - 1) / (shape.T - 1)
		}
		renderMaze(g, t, rows, cols, steps[si], open)
	}
	return g, nil
}

// SolvedMaze carves, solves via breadth-first search, and renders the
// shortest path from the top-left to the bottom-right cell with start and
// end marked distinctly.
type SolvedMaze struct {
	seed Seed
}

func NewSolvedMaze(seed Seed) *SolvedMaze {
	return &SolvedMaze{seed: seed.orDefault()}
}

func (m *SolvedMaze) Seed() int64 {
	return m.seed.Int64()
}

func (m *SolvedMaze) Fill(shape Shape) (*Grid, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	rows, cols := mazeDims(shape)
	mg := newMazeGrid(rows, cols)
	mg.carve(m.seed.Rand(), false)
	path := mg.solve()
	DebugLog("Solved %dx%d maze, path length %d, seed %d", rows, cols, len(path), m.seed.Int64())

	onPath := make(map[int]bool, len(path))
	for _, cell := range path {
		onPath[cell] = true
	}
	startCell, endCell := 0, rows*cols-1

	value := func(cell int) Real {
		switch {
		case cell == startCell || cell == endCell:
			return MazeMarkValue
		case onPath[cell]:
			return MazePathValue
		default:
			return MazeOpenValue
		}
	}
	g := NewGrid(shape)
	for t := 0; t < shape.T; t++ {
		renderMaze(g, t, rows, cols, mg.cells, value)
	}
	return g, nil
}
