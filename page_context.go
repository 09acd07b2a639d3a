package book

import "github.com/sesvxace/book/fract"

// The drawing context handed to a [PageHandler]. It's only valid
// during the handler call.
type PageContext struct {
	viewer *Viewer
	blocks []Block
}

// Returns the current page number.
func (self *PageContext) Page() int { return self.viewer.page }

// Returns the content items of the current page (possibly nil).
func (self *PageContext) Blocks() []Block { return self.blocks }

// Returns the width of the page contents in pixels.
func (self *PageContext) ContentsWidth() int {
	return self.viewer.opts.ContentsWidth()
}

// Returns the height of the page contents in pixels.
func (self *PageContext) ContentsHeight() int {
	return self.viewer.contentHeight
}

// Returns the height of the visible area of the page in pixels, which
// doesn't depend on the page content.
func (self *PageContext) ViewportHeight() int {
	return self.viewer.opts.ViewportHeight()
}

// Returns the row height in pixels.
func (self *PageContext) LineHeight() int {
	return self.viewer.layout.RowHeight()
}

// Returns the width of the text, ignoring directives.
func (self *PageContext) Measure(raw string) fract.Unit {
	return self.viewer.host.Measure(StripDirectives(raw))
}

// Returns the host canvas, for custom drawing.
func (self *PageContext) Canvas() Canvas {
	return self.viewer.host
}

// Draws a single line of text with directives at the given position,
// without wrapping. The formatting state is reset before drawing.
// Returns the x position after the last drawn character.
func (self *PageContext) DrawTextEx(x, y int, raw string) fract.Unit {
	canvas := self.viewer.host
	lineHeight := fract.FromInt(self.LineHeight())
	top := fract.FromInt(y)
	position := fract.FromInt(x)

	canvas.ResetFont()
	for _, segment := range Tokenize(raw) {
		if !segment.Directive.IsZero() {
			canvas.Format(segment.Directive)
		}
		if segment.Text == "" { continue }
		width := canvas.Measure(segment.Text)
		rect := fract.UnitsToRect(position, top, position + width, top + lineHeight)
		canvas.DrawText(rect, segment.Text, AlignLeft)
		position += width
	}
	return position
}

// Writes the given content items with the viewer layout, starting at
// the top row. This is what the viewer does for pages without handler.
func (self *PageContext) WritePageText(blocks []Block) int {
	return self.WritePageTextAt(blocks, 0)
}

// Like [PageContext.WritePageText], but starting at the given row.
// Returns the row after the last written one.
func (self *PageContext) WritePageTextAt(blocks []Block, startRow int) int {
	return self.viewer.layout.DrawBlocks(self.viewer.host, blocks, startRow)
}

// Per call overrides for [PageContext.WritePageTextWith]().
type TextOptions struct {
	Width WidthSource       // the viewer's width source when zero
	MarginX int             // x position where every row starts
	NewlineBoundary string  // see [Layout].NewlineBoundary
}

// Like [PageContext.WritePageTextAt], but with a custom width source,
// left margin and newline boundary. Handlers writing text beside a
// picture or indented lists use this. The rows written this way can be
// computed beforehand with [PageContext.MeasurePageTextWith]().
func (self *PageContext) WritePageTextWith(blocks []Block, startRow int, opts TextOptions) int {
	layout := self.textLayout(opts)
	return layout.DrawBlocks(self.viewer.host, blocks, startRow)
}

// Returns the row [PageContext.WritePageTextWith]() would return for
// the same arguments, without drawing anything.
func (self *PageContext) MeasurePageTextWith(blocks []Block, startRow int, opts TextOptions) int {
	layout := self.textLayout(opts)
	return layout.MeasureRows(self.viewer.host, blocks, startRow)
}

func (self *PageContext) textLayout(opts TextOptions) Layout {
	layout := self.viewer.layout
	if !opts.Width.IsZero() { layout.Width = opts.Width }
	layout.MarginX = opts.MarginX
	layout.NewlineBoundary = opts.NewlineBoundary
	return layout
}
