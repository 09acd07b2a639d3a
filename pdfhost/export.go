package pdfhost

import "fmt"
import "io"

import "go.uber.org/zap"

import "github.com/sesvxace/book"

// Lays out every page of the book and writes them to w as a PDF.
func Export(w io.Writer, title string, bk book.Book, opts book.Options, fontData []byte, sizePx float64, logger *zap.Logger) error {
	if logger == nil { logger = zap.NewNop() }
	host, err := New(fontData, sizePx)
	if err != nil { return fmt.Errorf("unable to load PDF font: %w", err) }

	viewer := book.NewViewer(bk, host, opts, logger)
	for page := 2; page <= viewer.MaxPages(); page++ {
		viewer.SetPage(page)
	}
	viewer.Dispose()

	logger.Debug("Writing PDF", zap.Int("pages", host.NumPages()), zap.String("title", title))
	if err := host.Write(w, title); err != nil {
		return fmt.Errorf("unable to write PDF: %w", err)
	}
	return nil
}
