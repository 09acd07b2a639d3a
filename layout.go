package book

import "github.com/sesvxace/book/fract"

// Default row height in pixels.
const DefaultLineHeight = 24

// A Layout holds the parameters shared by the measuring and drawing
// passes of a page.
//
// Rows are counted from the first text row, and both passes query the
// width source with that same row index. The drawing pass places row i
// at y = i*LineHeight + TopOffset.
type Layout struct {
	Mode WrapMode
	Width WidthSource
	MarginX int     // left margin of every text item, eats into the width
	TopOffset int   // vertical offset in pixels for all drawn rows
	LineHeight int  // row height in pixels, DefaultLineHeight if <= 0
	Gutter int      // see DefaultGutter

	// Literal text prepended to units moved to a new row, for hanging
	// indents in lists. Directives are not interpreted here.
	NewlineBoundary string
}

// Returns a layout with [DefaultLineHeight], [DefaultGutter] and the
// given fixed width.
func NewLayout(width int, mode WrapMode) Layout {
	return Layout{
		Mode: mode,
		Width: FixedWidth(width),
		LineHeight: DefaultLineHeight,
		Gutter: DefaultGutter,
	}
}

// Returns the effective line height.
func (self *Layout) RowHeight() int {
	if self.LineHeight <= 0 { return DefaultLineHeight }
	return self.LineHeight
}

// Called by walkBlocks for each wrap unit of the page, in order.
// When skip is true, the unit is a blank unit at the start of a row and
// must not be drawn (nor advance), but its directives still apply.
type unitVisitor func(unit *WrapUnit, trimmed string, x fract.Unit, row, column int, width fract.Unit, skip bool)

// The wrapping algorithm. Both passes go through this function, which
// is what keeps their row counts identical: the measuring pass calls it
// without visitor, the drawing pass with one.
//
// Returns the row following the last block.
func (self *Layout) walkBlocks(measurer Measurer, blocks []Block, row int, visit unitVisitor, blockDone func()) int {
	for i := range blocks {
		if !blocks[i].IsColumns() {
			row = self.walkText(measurer, blocks[i].text, row, 0, 1, visit) + 1
		} else {
			columns := blocks[i].columns
			exitRow := row
			for column, texts := range columns {
				columnRow := row
				for _, text := range texts {
					columnRow = self.walkText(measurer, text, columnRow, column, len(columns), visit) + 1
				}
				exitRow = maxInt(exitRow, columnRow)
			}
			row = exitRow
		}
		if blockDone != nil { blockDone() }
	}
	return row
}

// Lays out a single text item starting at the given row and returns
// the last row it occupies.
func (self *Layout) walkText(measurer Measurer, text string, row, column, numColumns int, visit unitVisitor) int {
	margin := fract.FromInt(self.MarginX)
	x := margin
	width := columnWidth(self.Width, row, column, numColumns, self.Gutter)

	units := SplitUnits(text, self.Mode)
	for i := range units {
		unit := &units[i]
		trimmed := unit.Trimmed()

		if x + measurer.Measure(trimmed) > width {
			row += 1
			x = margin
			width = columnWidth(self.Width, row, column, numColumns, self.Gutter)
			if self.NewlineBoundary != "" {
				unit.Text = self.NewlineBoundary + unit.Text
				trimmed = self.NewlineBoundary + trimmed
			}
		}

		skip := (x == margin && unit.IsBlank())
		if visit != nil {
			visit(unit, trimmed, x, row, column, width, skip)
		}
		if !skip {
			x += measurer.Measure(unit.Text)
		}
	}
	return row
}

func maxInt(a, b int) int {
	if a >= b { return a }
	return b
}

func minInt(a, b int) int {
	if a <= b { return a }
	return b
}
