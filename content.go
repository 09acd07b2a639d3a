package book

// A Block is a content item of a page: either a single line of text
// (which may wrap into several rows) or a multi-column group. Create
// blocks with [Line]() and [Columns]().
type Block struct {
	text string
	columns [][]string
}

// Creates a single text item. The text may contain directives.
func Line(text string) Block {
	return Block{ text: text }
}

// Creates a multi-column item. Each argument is one column, given as
// its list of text items, laid out top to bottom. All columns start on
// the same row, and the item ends on the row after the tallest column.
//
// Calling Columns() without arguments results in a single empty column.
func Columns(columns ...[]string) Block {
	if len(columns) == 0 {
		columns = [][]string{ nil }
	}
	return Block{ columns: columns }
}

// Returns whether the block is a multi-column item.
func (self Block) IsColumns() bool {
	return self.columns != nil
}

// Returns the text of a single text item, or an empty
// string for multi-column items.
func (self Block) Text() string {
	return self.text
}

// Returns the columns of a multi-column item, or nil for single
// text items. The returned slices must not be modified.
func (self Block) ColumnTexts() [][]string {
	return self.columns
}

// Page content indexed by 1-based page number.
type PageContent map[int][]Block

// Returns the blocks for the given page. Missing pages return nil,
// which the layout engine treats as an empty page.
func (self PageContent) Page(n int) []Block {
	return self[n]
}

// Appends blocks to the given page.
func (self PageContent) Add(page int, blocks ...Block) {
	self[page] = append(self[page], blocks...)
}
