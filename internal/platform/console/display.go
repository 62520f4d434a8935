// Package console runs the game directly on a tcell screen. The tick runs on
// a ticker goroutine while input polling blocks on the caller's goroutine.
package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// CellWriter is the part of tcell.Screen the board is drawn through.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorRed:     tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	core.ColorGreen:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorGray:    tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// Display draws a board of fixed size onto a screen at an offset.
type Display struct {
	out           CellWriter
	offX, offY    int
	width, height int
	palette       core.Palette
}

// NewDisplay creates a board display of width x height whose top-left cell
// lands at (offX, offY) on out.
func NewDisplay(out CellWriter, offX, offY, width, height int, palette core.Palette) *Display {
	return &Display{
		out:     out,
		offX:    offX,
		offY:    offY,
		width:   width,
		height:  height,
		palette: palette,
	}
}

// Set draws r at board position (x, y). Positions off the board are ignored.
func (d *Display) Set(x, y int, r rune) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.out.SetContent(d.offX+x, d.offY+y, r, nil, colorStyles[d.palette.ColorOf(r)])
}

// Clear blanks the board area only.
func (d *Display) Clear() {
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			d.out.SetContent(d.offX+x, d.offY+y, ' ', nil, tcell.StyleDefault)
		}
	}
}

// drawText writes s at (x, y) and blanks the rest of the row up to width.
func drawText(out CellWriter, x, y, width int, s string, style tcell.Style) {
	col := x
	for _, r := range s {
		if col >= x+width {
			return
		}
		out.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < x+width; col++ {
		out.SetContent(col, y, ' ', nil, tcell.StyleDefault)
	}
}
