package imghost

import "fmt"
import "image"
import "os"
import "path/filepath"

import "github.com/disintegration/imaging"
import "github.com/gosimple/slug"
import "go.uber.org/multierr"
import "go.uber.org/zap"
import "golang.org/x/image/font"

import "github.com/sesvxace/book"

// PNG export parameters.
type ExportOptions struct {
	Name string     // base name for the files, slugified ("book" if empty)
	Scale float64   // output scaling factor, 1 if <= 0
	Full bool       // export whole pages instead of the visible window
}

// Writes one PNG image per page of the book into dir, which must
// exist. Returns the paths of the written files, in page order.
func ExportPNG(dir string, bk book.Book, opts book.Options, face font.Face, skin image.Image, export ExportOptions, logger *zap.Logger) ([]string, error) {
	if logger == nil { logger = zap.NewNop() }
	host := New(face, skin)
	viewer := book.NewViewer(bk, host, opts, logger)
	defer viewer.Dispose()

	base := slug.Make(export.Name)
	if base == "" { base = "book" }

	var files []string
	for page := 1; page <= viewer.MaxPages(); page++ {
		viewer.SetPage(page)

		var img image.Image
		if export.Full {
			img = host.ComposeFull(opts)
		} else {
			img = host.Compose(opts, 0)
		}
		if export.Scale > 0 && export.Scale != 1 {
			width := int(float64(img.Bounds().Dx())*export.Scale)
			img = imaging.Resize(img, max(width, 1), 0, imaging.NearestNeighbor)
		}

		path := filepath.Join(dir, fmt.Sprintf("%s-%02d.png", base, page))
		if err := writePNG(path, img); err != nil {
			return files, fmt.Errorf("unable to export page %d: %w", page, err)
		}
		logger.Debug("Page exported", zap.Int("page", page), zap.String("file", path))
		files = append(files, path)
	}
	return files, nil
}

func writePNG(path string, img image.Image) (err error) {
	file, err := os.Create(path)
	if err != nil { return err }
	defer func() {
		err = multierr.Append(err, file.Close())
	}()
	return imaging.Encode(file, img, imaging.PNG)
}
