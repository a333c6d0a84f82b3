package rules

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

The checks run in a fixed order:
  - a dead cell with exactly 3 live neighbors is born
  - a live cell with fewer than 2 or more than 3 live neighbors dies
  - every other cell keeps its current state
*/
func NextState(alive bool, neighbors int) bool {
	switch {
	case !alive && neighbors == 3:
		return true
	case alive && (neighbors < 2 || neighbors > 3):
		return false
	default:
		return alive
	}
}
