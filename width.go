package book

import "github.com/sesvxace/book/fract"

// Space in pixels subtracted from every column but the last one
// in a multi-column item, so neighbouring columns don't touch.
const DefaultGutter = 12

// A WidthSource gives the available width for each row. It can be
// a fixed width or a function of the row index, which allows text to
// flow around pictures or other page decorations.
//
// The zero value is a fixed width of 0.
type WidthSource struct {
	fixed fract.Unit
	fn func(row int) int
}

// Returns a [WidthSource] with the same width for every row.
func FixedWidth(width int) WidthSource {
	return WidthSource{ fixed: fract.FromInt(width) }
}

// Returns a [WidthSource] that calls fn with the row index each time
// the width of a row is needed. The function must be deterministic:
// the measurement and drawing passes call it independently and rely
// on getting the same widths.
func ComputedWidth(fn func(row int) int) WidthSource {
	if fn == nil { panic("ComputedWidth() requires a non-nil function") }
	return WidthSource{ fn: fn }
}

// Returns whether the width depends on the row.
func (self WidthSource) IsComputed() bool {
	return self.fn != nil
}

// Returns whether the source is the zero value.
func (self WidthSource) IsZero() bool {
	return self.fn == nil && self.fixed == 0
}

// Returns the available width for the given row.
func (self WidthSource) At(row int) fract.Unit {
	if self.fn == nil { return self.fixed }
	return fract.FromInt(self.fn(row))
}

// Width of a column within a row. Every column but the last one
// loses the gutter. With a single column the full width is returned.
func columnWidth(source WidthSource, row, column, numColumns, gutter int) fract.Unit {
	if numColumns <= 1 { return source.At(row) }
	width := source.At(row).Div(numColumns).Floor()
	if column < numColumns - 1 {
		width -= fract.FromInt(gutter)
	}
	return width
}
