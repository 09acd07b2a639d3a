package book

// Returns the row following the last row occupied by the blocks, when
// laid out from startRow. Nothing is drawn.
//
// Given the same measurer, blocks and start row, the result is always
// the same as the one returned by [Layout.DrawBlocks]().
func (self *Layout) MeasureRows(measurer Measurer, blocks []Block, startRow int) int {
	return self.walkBlocks(measurer, blocks, startRow, nil, nil)
}

// Returns the height in pixels the page contents need: the rows the
// blocks take from row 0 plus an extra one at the bottom, below the
// top offset. The result is never smaller than the viewport height
// minus the given vertical padding, so short pages still fill the
// window.
func (self *Layout) ContentHeight(measurer Measurer, blocks []Block, viewportHeight, verticalPadding int) int {
	rows := self.MeasureRows(measurer, blocks, 0)
	return maxInt(self.TopOffset + self.RowHeight()*(rows + 1), viewportHeight - verticalPadding)
}
