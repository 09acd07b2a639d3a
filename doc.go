// book is a package for paginated, scrollable rich text windows, like
// the in-game books, guides and notes of classic console RPGs.
//
// Text is given per page as a list of content items, which may contain
// inline directives like "\c[16]" to change the text color. The package
// wraps the text into rows, measures the height each page needs and
// handles page turns, scrolling and the page count overlay. Actual
// drawing is delegated to a [Host], so the same book can be shown with
// Ebitengine, rendered to PNG images or exported as a PDF.
//
// First, you define the book:
//   guide := book.BaseBook{ Pages: book.PageContent{} }
//   guide.Pages.Add(1, book.Line("\\c[16]Welcome!\\c[0] Use the arrows to scroll."))
//
// Then, you create a viewer on top of a host (see the ebitenhost,
// imghost and pdfhost subpackages) and feed it input on every frame:
//   viewer := book.NewViewer(guide, host, book.DefaultOptions(), logger)
//   viewer.Update(input)
//
// Books with more than one page embed [BaseBook] and override
// MaxPages(). Custom drawn pages are supported through [PageHandlers].
package book
