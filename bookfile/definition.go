package bookfile

import "github.com/alecthomas/participle/v2"

import "github.com/sesvxace/book"

// A book loaded from a book file. It implements [book.Book] and
// [book.PageHandlers], the latter for pages with titles.
type Definition struct {
	book.BaseBook

	Title string
	NumPages int
	Speed int
	Offset int
	Wrap book.WrapMode
	HasWrap bool // whether the file sets the wrap mode
	OverlayForOne bool

	titles map[int][]string
}

func (self *Definition) MaxPages() int { return self.NumPages }
func (self *Definition) ScrollSpeed() int { return self.Speed }
func (self *Definition) TopOffset() int { return self.Offset }

// Returns the titles of the given page, if any.
func (self *Definition) Titles(page int) []string { return self.titles[page] }

// Pages with titles get a handler that draws each title centered,
// starting at a quarter of the viewport height, like a cover page. The
// rest of the page content goes below the titles.
func (self *Definition) PageHandler(page int) book.PageHandler {
	titles := self.titles[page]
	if len(titles) == 0 { return nil }
	return func(ctx *book.PageContext) {
		lineHeight := ctx.LineHeight()
		y := titleTop(ctx.ViewportHeight(), lineHeight)
		for _, title := range titles {
			x := (ctx.ContentsWidth() - ctx.Measure(title).ToIntCeil())/2
			ctx.DrawTextEx(x, y, title)
			y += lineHeight
		}
		if blocks := ctx.Blocks(); len(blocks) > 0 {
			ctx.WritePageTextAt(blocks, titleRows(ctx.ViewportHeight(), lineHeight, len(titles)))
		}
	}
}

// Reserves the rows taken by the titles of the page, so the content
// written below them can still be scrolled into view.
func (self *Definition) ExtraHeight(page int, opts book.Options) int {
	titles := self.titles[page]
	if len(titles) == 0 { return 0 }
	lineHeight := opts.RowHeight()
	return titleRows(opts.ViewportHeight(), lineHeight, len(titles))*lineHeight
}

// Applies the settings of the book file to the viewer options.
func (self *Definition) ApplyOptions(opts *book.Options) {
	if self.HasWrap { opts.Mode = self.Wrap }
	if self.OverlayForOne { opts.OverlayForOne = true }
}

// ---- helpers ----

func titleTop(viewportHeight, lineHeight int) int {
	return max(0, viewportHeight - lineHeight)/4
}

// Returns the first row below the titles.
func titleRows(viewportHeight, lineHeight, numTitles int) int {
	bottom := titleTop(viewportHeight, lineHeight) + numTitles*lineHeight
	return (bottom + lineHeight - 1)/lineHeight
}

func newDefinition(file *File) (*Definition, error) {
	def := &Definition{
		BaseBook: book.BaseBook{ Pages: book.PageContent{} },
		Title: string(file.Title),
		Speed: book.DefaultScrollSpeed,
		titles: make(map[int][]string),
	}

	var declaredPages int
	var lastPage int
	var pages []*Page
	for _, entry := range file.Entries {
		switch {
		case entry.Pages != nil:
			if *entry.Pages < 1 { return nil, participle.Errorf(entry.Pos, "pages must be at least 1") }
			declaredPages = *entry.Pages
		case entry.Wrap != nil:
			mode, err := book.ParseWrapMode(*entry.Wrap)
			if err != nil { return nil, participle.Errorf(entry.Pos, "unknown wrap mode %q", *entry.Wrap) }
			def.Wrap, def.HasWrap = mode, true
		case entry.Speed != nil:
			def.Speed = *entry.Speed
		case entry.Offset != nil:
			def.Offset = *entry.Offset
		case entry.OverlayForOne:
			def.OverlayForOne = true
		case entry.Page != nil:
			if entry.Page.Number < 1 { return nil, participle.Errorf(entry.Page.Pos, "page numbers start at 1") }
			lastPage = max(lastPage, entry.Page.Number)
			pages = append(pages, entry.Page)
		}
	}

	def.NumPages = declaredPages
	if declaredPages == 0 { def.NumPages = max(lastPage, 1) }
	for _, page := range pages {
		if page.Number > def.NumPages {
			return nil, participle.Errorf(page.Pos, "page %d exceeds the book's %d pages", page.Number, def.NumPages)
		}
		def.addItems(page.Number, page.Items)
	}
	return def, nil
}

func (self *Definition) addItems(page int, items []*Item) {
	for _, item := range items {
		switch {
		case item.Title != nil:
			self.titles[page] = append(self.titles[page], string(*item.Title))
		case item.Line != nil:
			self.BaseBook.Pages.Add(page, book.Line(string(*item.Line)))
		case item.Columns != nil:
			columns := make([][]string, len(item.Columns.Columns))
			for i, column := range item.Columns.Columns {
				columns[i] = make([]string, 0, len(column.Lines))
				for _, line := range column.Lines {
					columns[i] = append(columns[i], string(line.Text))
				}
			}
			self.BaseBook.Pages.Add(page, book.Columns(columns...))
		}
	}
}
