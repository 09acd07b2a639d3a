package book

import "github.com/sesvxace/book/fract"

// Draws the blocks on the canvas starting at startRow and returns the
// row following the last one used. Directives are sent to the canvas
// in text order, right before the unit they are attached to, and the
// canvas formatting state is reset before the first block and after
// each block.
//
// Each unit is drawn in a rect that starts at the pen position (shifted
// by the column offset) and spans the full column width and the line
// height. The drawn text doesn't include the unit's trailing spaces.
func (self *Layout) DrawBlocks(canvas Canvas, blocks []Block, startRow int) int {
	lineHeight := self.RowHeight()
	canvas.ResetFont()
	visit := func(unit *WrapUnit, trimmed string, x fract.Unit, row, column int, width fract.Unit, skip bool) {
		for _, directive := range unit.Directives {
			canvas.Format(directive)
		}
		if skip || trimmed == "" { return }

		y := row*lineHeight + self.TopOffset
		minX := x + width*fract.Unit(column)
		rect := fract.UnitsToRect(minX, fract.FromInt(y), minX + width, fract.FromInt(y + lineHeight))
		canvas.DrawText(rect, trimmed, AlignLeft)
	}
	return self.walkBlocks(canvas, blocks, startRow, visit, canvas.ResetFont)
}
