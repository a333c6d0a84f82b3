package model

import (
	"github.com/gdamore/tcell/v2"
)

// ScreenRenderer draws snapshots onto a tcell screen
type ScreenRenderer struct {
	Screen tcell.Screen
	Alive  rune
	Dead   rune

	aliveStyle tcell.Style
	deadStyle  tcell.Style
}

// NewScreenRenderer returns a renderer for an already initialised screen
func NewScreenRenderer(screen tcell.Screen, alive, dead rune) *ScreenRenderer {
	return &ScreenRenderer{
		Screen:     screen,
		Alive:      alive,
		Dead:       dead,
		aliveStyle: tcell.StyleDefault.Bold(true),
		deadStyle:  tcell.StyleDefault.Dim(true),
	}
}

// Display draws the board at the top-left corner with status text below it
func (r *ScreenRenderer) Display(s Snapshot, status string) {
	r.Screen.Clear()
	for row := range s.Rows() {
		for col := range s.Cols() {
			if s.Alive(row, col) {
				r.Screen.SetContent(col*2, row, r.Alive, nil, r.aliveStyle)
			} else {
				r.Screen.SetContent(col*2, row, r.Dead, nil, r.deadStyle)
			}
		}
	}
	r.drawText(0, s.Rows()+1, status)
	r.Screen.Show()
}

func (r *ScreenRenderer) drawText(x, y int, text string) {
	for i, ch := range []rune(text) {
		r.Screen.SetContent(x+i, y, ch, nil, tcell.StyleDefault)
	}
}
