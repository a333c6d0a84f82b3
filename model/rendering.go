package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	// DefaultAliveSymbol marks a living cell
	DefaultAliveSymbol = 'X'
	// DefaultDeadSymbol marks a dead cell
	DefaultDeadSymbol = '.'

	clearCmd = "clear"
)

// TextRenderer writes a snapshot row by row, one symbol per cell separated by
// a single space. Every row, including the last, ends with a line break.
type TextRenderer struct {
	Out   io.Writer
	Alive rune
	Dead  rune
}

// NewTextRenderer returns a renderer using the default symbols
func NewTextRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{Out: out, Alive: DefaultAliveSymbol, Dead: DefaultDeadSymbol}
}

// Display renders the snapshot
func (r *TextRenderer) Display(s Snapshot) error {
	w := bufio.NewWriter(r.Out)
	for row := range s.Rows() {
		for col := range s.Cols() {
			if col > 0 {
				w.WriteByte(' ')
			}
			if s.Alive(row, col) {
				w.WriteRune(r.Alive)
			} else {
				w.WriteRune(r.Dead)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TextRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
