package book

// Default number of pixels scrolled per repeated up/down input.
const DefaultScrollSpeed = 6

// A Book provides the content and paging parameters for a [Viewer].
// Embed [BaseBook] to get the defaults and override what's needed.
type Book interface {
	Content() PageContent
	MaxPages() int
	ScrollSpeed() int
	TopOffset() int
}

// A PageHandler draws a page by hand instead of letting the viewer
// write its content items. Useful for title pages, pictures or any
// custom composition.
type PageHandler func(ctx *PageContext)

// Optional interface for books with custom drawn pages. When
// PageHandler returns nil for a page, the viewer falls back to
// writing the page content with the default layout.
type PageHandlers interface {
	PageHandler(page int) PageHandler
}

// Optional interface for books whose available width varies per row.
// When implemented, it replaces the fixed contents width.
type RowWidther interface {
	RowWidth(row int) int
}

// Optional interface for books that draw more than their content items
// on some pages, like titles or pictures placed by a [PageHandler]. The
// returned height in pixels is added to the measured height of the
// page content, so the whole page can be scrolled into view.
type ExtraHeighter interface {
	ExtraHeight(page int, opts Options) int
}

// Default [Book] implementation: a single page, [DefaultScrollSpeed]
// and no top offset.
type BaseBook struct {
	Pages PageContent
}

func (self BaseBook) Content() PageContent { return self.Pages }
func (self BaseBook) MaxPages() int { return 1 }
func (self BaseBook) ScrollSpeed() int { return DefaultScrollSpeed }
func (self BaseBook) TopOffset() int { return 0 }

// ---- helpers ----

func lookupPageHandler(book Book, page int) PageHandler {
	handlers, ok := book.(PageHandlers)
	if !ok { return nil }
	return handlers.PageHandler(page)
}

func bookWidthSource(book Book, contentsWidth int) WidthSource {
	widther, ok := book.(RowWidther)
	if !ok { return FixedWidth(contentsWidth) }
	return ComputedWidth(widther.RowWidth)
}

func bookExtraHeight(book Book, page int, opts *Options) int {
	heighter, ok := book.(ExtraHeighter)
	if !ok { return 0 }
	return maxInt(0, heighter.ExtraHeight(page, *opts))
}

func bookMaxPages(book Book) int {
	return maxInt(1, book.MaxPages())
}

func bookScrollSpeed(book Book) int {
	return maxInt(0, book.ScrollSpeed())
}
