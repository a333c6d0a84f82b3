package model

// Cell addresses one position on the grid
type Cell struct {
	Row int
	Col int
}

// Snapshot is a read-only copy of one generation of a Grid
type Snapshot struct {
	rows       int
	cols       int
	generation int
	cells      []bool // row-major
}

// Rows returns the number of rows captured
func (s Snapshot) Rows() int { return s.rows }

// Cols returns the number of columns captured
func (s Snapshot) Cols() int { return s.cols }

// Generation returns the generation the snapshot was taken at
func (s Snapshot) Generation() int { return s.generation }

// Alive reports whether (row, col) was alive. Positions off the board are dead.
func (s Snapshot) Alive(row, col int) bool {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.cells[row*s.cols+col]
}

// LiveCells returns the living cells in row-major order
func (s Snapshot) LiveCells() []Cell {
	var live []Cell
	for i, alive := range s.cells {
		if alive {
			live = append(live, Cell{Row: i / s.cols, Col: i % s.cols})
		}
	}
	return live
}

// Population returns the number of living cells
func (s Snapshot) Population() (count int) {
	for _, alive := range s.cells {
		if alive {
			count++
		}
	}
	return
}
