package model

import (
	"crypto/md5"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-stepper/rules"
)

const historySize = 5

// Grid represents a bounded game board holding the current generation and a
// staging buffer for the next one
type Grid struct {
	mu sync.RWMutex

	rows int
	cols int

	current [][]bool
	staged  [][]bool
	pending bool // staged holds a fully computed generation

	generation int
	history    []string // Store recent grid hashes for cycle detection
}

// NewGrid creates a new grid with all cells dead
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		current: newCells(rows, cols),
		staged:  newCells(rows, cols),
	}, nil
}

func newCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Generation returns the number of generations committed since creation or the last Clear
func (g *Grid) Generation() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.generation
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) checkBounds(op string, row, col int) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrIndexOutOfRange, "[%s] (%d,%d) outside %dx%d grid", op, row, col, g.rows, g.cols)
	}
	return nil
}

// Contains reports whether (row, col) lies on the grid
func (g *Grid) Contains(row, col int) bool {
	return g.inBounds(row, col)
}

// SetAlive marks a cell alive in the current generation
func (g *Grid) SetAlive(row, col int) error {
	return g.set("SetAlive", row, col, true)
}

// SetDead marks a cell dead in the current generation
func (g *Grid) SetDead(row, col int) error {
	return g.set("SetDead", row, col, false)
}

func (g *Grid) set(op string, row, col int, alive bool) error {
	if err := g.checkBounds(op, row, col); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.current[row][col] = alive
	// A staged generation computed from the old state is no longer valid
	g.pending = false
	return nil
}

// IsAlive returns the state of a cell in the current generation
func (g *Grid) IsAlive(row, col int) (bool, error) {
	if err := g.checkBounds("IsAlive", row, col); err != nil {
		return false, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current[row][col], nil
}

// Clear kills every cell and forgets the generation count and history
func (g *Grid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for r := range g.rows {
		clear(g.current[r])
		clear(g.staged[r])
	}
	g.pending = false
	g.generation = 0
	g.history = nil
}

// CountLiveNeighbors counts living cells in the Moore neighborhood of (row, col).
// Neighbors outside the grid are treated as dead and never read.
func (g *Grid) CountLiveNeighbors(row, col int) (int, error) {
	if err := g.checkBounds("CountLiveNeighbors", row, col); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.countLiveNeighbors(row, col), nil
}

// countLiveNeighbors expects (row, col) in bounds and the lock held
func (g *Grid) countLiveNeighbors(row, col int) int {
	count := 0

	// Clamp the scan window to the board instead of wrapping
	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue // Skip the cell itself
			}
			if g.current[r][c] {
				count++
			}
		}
	}

	return count
}

// ComputeNextGeneration stages the next generation for every cell. Only the
// current buffer is read and only the staging buffer is written.
func (g *Grid) ComputeNextGeneration() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.computeNext()
}

func (g *Grid) computeNext() {
	for r := range g.rows {
		for c := range g.cols {
			g.staged[r][c] = rules.NextState(g.current[r][c], g.countLiveNeighbors(r, c))
		}
	}
	g.pending = true
}

// Commit makes the staged generation current by swapping the two buffers
func (g *Grid) Commit() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.pending {
		return errors.Wrapf(ErrNothingStaged, "[Commit] generation %d", g.generation)
	}
	g.commit()
	return nil
}

func (g *Grid) commit() {
	g.current, g.staged = g.staged, g.current
	g.pending = false
	g.generation++
}

// Step computes and commits the next generation as a single unit
func (g *Grid) Step() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.computeNext()
	g.commit()
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for r := range g.rows {
		for c := range g.cols {
			if g.current[r][c] {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 hash of the current generation
func (g *Grid) Hash() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.hash()
}

func (g *Grid) hash() string {
	h := md5.New()
	for r := range g.rows {
		for c := range g.cols {
			if g.current[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory records the current generation's hash, keeping the last few
func (g *Grid) UpdateHistory() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.history = append(g.history, g.hash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current generation repeats one of the three
// previously recorded ones, i.e. a still life or an oscillator of period <= 3.
// The current generation itself must not be recorded yet.
func (g *Grid) IsStagnant() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	currentHash := g.hash()
	for back := 1; back <= 3 && back <= len(g.history); back++ {
		if g.history[len(g.history)-back] == currentHash {
			return true
		}
	}
	return false
}

// Snapshot returns an immutable copy of the current generation
func (g *Grid) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cells := make([]bool, 0, g.rows*g.cols)
	for r := range g.rows {
		cells = append(cells, g.current[r]...)
	}
	return Snapshot{
		rows:       g.rows,
		cols:       g.cols,
		generation: g.generation,
		cells:      cells,
	}
}
