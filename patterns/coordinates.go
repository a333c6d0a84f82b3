package patterns

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-stepper/model"
)

// ErrMalformedCoordinate is returned for a pair that is not of the form row,col
var ErrMalformedCoordinate = errors.New("malformed coordinate")

// ParseCoordinates reads "row,col" pairs separated by whitespace or ';'.
// Range checking is left to Loader.Load, which knows the grid.
func ParseCoordinates(s string) ([]model.Cell, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	cells := make([]model.Cell, 0, len(fields))
	for _, field := range fields {
		rowStr, colStr, ok := strings.Cut(field, ",")
		if !ok {
			return nil, errors.Wrapf(ErrMalformedCoordinate, "[ParseCoordinates] %q has no comma", field)
		}
		row, err := strconv.Atoi(strings.TrimSpace(rowStr))
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedCoordinate, "[ParseCoordinates] bad row in %q", field)
		}
		col, err := strconv.Atoi(strings.TrimSpace(colStr))
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedCoordinate, "[ParseCoordinates] bad column in %q", field)
		}
		cells = append(cells, model.Cell{Row: row, Col: col})
	}
	return cells, nil
}
