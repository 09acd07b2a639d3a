package main

import "context"
import "errors"
import "fmt"
import "io"
import "os"
import "strings"

import cli "github.com/urfave/cli/v3"
import "go.uber.org/zap"

import "github.com/sesvxace/book"
import "github.com/sesvxace/book/font"
import "github.com/sesvxace/book/imghost"
import "github.com/sesvxace/book/internal/state"

func measureBook(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.NArg() != 1 { return errors.New("measure expects a single book file") }

	def, opts, err := env.LoadBook(cmd.Args().Get(0))
	if err != nil { return err }
	fnt, face, err := env.LoadFace()
	if err != nil { return err }

	warnMissingRunes(env.Log, fnt, def)
	return writeMeasurements(os.Stdout, def, imghost.New(face, nil), opts, env.Log)
}

// Prints one line per page with its rows, content height and scroll range.
func writeMeasurements(w io.Writer, bk book.Book, host book.Host, opts book.Options, logger *zap.Logger) error {
	viewer := book.NewViewer(bk, host, opts, logger)
	defer viewer.Dispose()

	layout := viewer.Layout()
	for page := 1; page <= viewer.MaxPages(); page++ {
		viewer.SetPage(page)
		rows := layout.MeasureRows(host, bk.Content().Page(page), 0)
		_, err := fmt.Fprintf(w, "page %d: %d rows, height %d, max scroll %d\n",
			page, rows, viewer.ContentHeight(), viewer.MaxScroll())
		if err != nil { return err }
	}
	return nil
}

func warnMissingRunes(logger *zap.Logger, fnt *font.Font, bk book.Book) {
	var text strings.Builder
	for _, blocks := range bk.Content() {
		for _, block := range blocks {
			text.WriteString(book.StripDirectives(block.Text()))
			for _, column := range block.ColumnTexts() {
				for _, item := range column {
					text.WriteString(book.StripDirectives(item))
				}
			}
		}
	}
	missing, err := fnt.MissingRunes(text.String())
	if err != nil {
		logger.Warn("Unable to check font coverage", zap.Error(err))
		return
	}
	if len(missing) > 0 {
		logger.Warn("Font misses glyphs used by the book", zap.String("runes", string(missing)))
	}
}
