package book

import "go.uber.org/zap"

// Window and layout options for a [Viewer].
type Options struct {
	X, Y int          // window position on screen
	Width, Height int // window size, including padding
	Padding int       // space between the window frame and its contents
	LineHeight int    // row height, DefaultLineHeight if <= 0
	Gutter int        // see DefaultGutter
	Mode WrapMode

	// Shows the page count overlay even for single page books.
	OverlayForOne bool

	// Window skin name for the overlay arrows. Empty means default.
	Skin string
}

// Returns the default options: a 544x416 window at the origin with 12
// pixels of padding, 24 pixel rows and word wrapping.
func DefaultOptions() Options {
	return Options{
		Width: 544,
		Height: 416,
		Padding: 12,
		LineHeight: DefaultLineHeight,
		Gutter: DefaultGutter,
		Mode: WrapWord,
	}
}

// Returns the width available for page contents.
func (self *Options) ContentsWidth() int {
	return maxInt(0, self.Width - 2*self.Padding)
}

// Returns the viewport height, which is the window height without
// vertical padding.
func (self *Options) ViewportHeight() int {
	return maxInt(0, self.Height - 2*self.Padding)
}

// Returns the row height, [DefaultLineHeight] if unset.
func (self *Options) RowHeight() int {
	if self.LineHeight <= 0 { return DefaultLineHeight }
	return self.LineHeight
}

// A Viewer shows a [Book] one page at a time, handling page turns,
// vertical scrolling and the navigation overlay.
//
// The viewer is single threaded: all methods must be called from the
// same goroutine (typically the game loop).
type Viewer struct {
	book Book
	host Host
	opts Options
	layout Layout
	logger *zap.Logger

	page int
	scroll int
	contentHeight int
	changed bool // set on page turns, swallows the next update
	disposed bool
	overlay overlaySet
}

// Creates a viewer and draws the first page. A nil logger is replaced
// by a no-op one.
func NewViewer(book Book, host Host, opts Options, logger *zap.Logger) *Viewer {
	if book == nil { panic("NewViewer() requires a non-nil book") }
	if host == nil { panic("NewViewer() requires a non-nil host") }
	if logger == nil { logger = zap.NewNop() }

	viewer := &Viewer{
		book: book,
		host: host,
		opts: opts,
		logger: logger.Named("viewer"),
		page: 1,
	}
	viewer.layout = Layout{
		Mode: opts.Mode,
		Width: bookWidthSource(book, opts.ContentsWidth()),
		TopOffset: book.TopOffset(),
		LineHeight: opts.RowHeight(),
		Gutter: opts.Gutter,
	}
	viewer.Refresh()
	return viewer
}

// Returns the current page, starting from 1.
func (self *Viewer) Page() int { return self.page }

// Returns the number of pages of the book (at least 1).
func (self *Viewer) MaxPages() int { return bookMaxPages(self.book) }

// Returns the current vertical scroll offset in pixels.
func (self *Viewer) Scroll() int { return self.scroll }

// Returns the height of the current page contents in pixels.
func (self *Viewer) ContentHeight() int { return self.contentHeight }

// Returns the largest scroll offset for the current page.
func (self *Viewer) MaxScroll() int {
	return maxInt(0, self.contentHeight + self.layout.RowHeight() - self.opts.Height)
}

// Returns the viewer options.
func (self *Viewer) Options() Options { return self.opts }

// Returns the layout used to write pages.
func (self *Viewer) Layout() Layout { return self.layout }

// Returns the number of live overlay elements.
func (self *Viewer) OverlayCount() int { return self.overlay.count() }

// Returns whether [Viewer.Dispose]() has been called.
func (self *Viewer) Disposed() bool { return self.disposed }

// Processes the input for one frame. Left and right turn pages, up and
// down scroll the current page. The update right after a page turn is
// ignored, so a single key press can't turn more than one page.
func (self *Viewer) Update(input Input) {
	if self.disposed { return }
	if self.changed {
		self.changed = false
		return
	}

	oldPage := self.page
	switch {
	case input.Triggered(KeyLeft) && self.page > 1:
		self.page -= 1
	case input.Triggered(KeyRight) && self.page < self.MaxPages():
		self.page += 1
	case input.Repeated(KeyUp) && self.scroll > 0:
		self.scroll -= minInt(bookScrollSpeed(self.book), self.scroll)
		self.rebuildOverlay()
	case input.Repeated(KeyDown) && self.scroll < self.MaxScroll():
		self.scroll += minInt(bookScrollSpeed(self.book), self.MaxScroll() - self.scroll)
		self.rebuildOverlay()
	}

	if self.page != oldPage {
		self.logger.Debug("page turn", zap.Int("from", oldPage), zap.Int("to", self.page))
		self.Refresh()
		self.changed = true
	}
}

// Jumps to the given page. Out of range pages are ignored. Returns
// whether the page changed. Like any other page turn, it arms the
// update latch.
func (self *Viewer) SetPage(page int) bool {
	if self.disposed { return false }
	if page < 1 || page > self.MaxPages() || page == self.page { return false }
	self.page = page
	self.Refresh()
	self.changed = true
	return true
}

// Redraws the current page from scratch and resets the scroll.
func (self *Viewer) Refresh() {
	if self.disposed { return }
	self.scroll = 0
	blocks := self.book.Content().Page(self.page)
	height := self.layout.ContentHeight(self.host, blocks, 0, 0)
	height += bookExtraHeight(self.book, self.page, &self.opts)
	self.contentHeight = maxInt(height, self.opts.ViewportHeight())
	self.host.Clear(self.opts.ContentsWidth(), self.contentHeight)
	self.rebuildOverlay()

	ctx := &PageContext{ viewer: self, blocks: blocks }
	if handler := lookupPageHandler(self.book, self.page); handler != nil {
		handler(ctx)
	} else {
		self.logger.Debug("no page handler, default rendering", zap.Int("page", self.page))
		ctx.WritePageText(blocks)
	}

	self.logger.Debug("page drawn",
		zap.Int("page", self.page),
		zap.Int("blocks", len(blocks)),
		zap.Int("height", self.contentHeight),
	)
}

// Releases the overlay elements. The viewer can't be used afterwards.
// Calling Dispose() more than once is fine.
func (self *Viewer) Dispose() {
	if self.disposed { return }
	self.overlay.release()
	self.disposed = true
}

// ---- helpers ----

func (self *Viewer) rebuildOverlay() {
	self.overlay.release()
	for _, spec := range overlaySpecs(self.host, &self.opts, self.page, self.MaxPages()) {
		self.overlay.add(self.host.CreateOverlay(spec))
	}
}
