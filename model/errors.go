package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is created with rows or cols <= 0
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrIndexOutOfRange is returned when a coordinate falls outside the grid
	ErrIndexOutOfRange = errors.New("coordinate out of range")
	// ErrNothingStaged is returned by Commit when no next generation has been computed
	ErrNothingStaged = errors.New("no generation staged")
)
