package imghost

import "image"
import "image/draw"

import "github.com/sesvxace/book"
import "github.com/sesvxace/book/internal/style"

// Composes the window as it would be shown on screen: the window
// background and frame, the visible region of the page contents at
// the given scroll offset and the overlay elements. The returned image
// covers the screen area from the origin to the bottom-right corner of
// the window.
func (self *Host) Compose(opts book.Options, scroll int) *image.RGBA {
	window := image.Rect(opts.X, opts.Y, opts.X + opts.Width, opts.Y + opts.Height)
	screen := image.NewRGBA(image.Rect(0, 0, window.Max.X, window.Max.Y))
	drawWindow(screen, window)

	inner := window.Inset(opts.Padding)
	draw.Draw(screen, inner, self.contents, image.Pt(0, scroll), draw.Over)
	for _, sprite := range self.sprites {
		self.drawSprite(screen, sprite)
	}
	return screen
}

// Composes the whole page contents on the window background, without
// scrolling nor overlay. Used for exports of long pages.
func (self *Host) ComposeFull(opts book.Options) *image.RGBA {
	bounds := self.contents.Bounds()
	window := image.Rect(0, 0, bounds.Dx() + 2*opts.Padding, bounds.Dy() + 2*opts.Padding)
	screen := image.NewRGBA(window)
	drawWindow(screen, window)
	draw.Draw(screen, window.Inset(opts.Padding), self.contents, image.Point{}, draw.Over)
	return screen
}

func drawWindow(screen *image.RGBA, window image.Rectangle) {
	draw.Draw(screen, window, image.NewUniform(style.WindowBack), image.Point{}, draw.Src)
	frame := image.NewUniform(style.WindowFrame)
	edges := []image.Rectangle{
		image.Rect(window.Min.X, window.Min.Y, window.Max.X, window.Min.Y + 1),
		image.Rect(window.Min.X, window.Max.Y - 1, window.Max.X, window.Max.Y),
		image.Rect(window.Min.X, window.Min.Y, window.Min.X + 1, window.Max.Y),
		image.Rect(window.Max.X - 1, window.Min.Y, window.Max.X, window.Max.Y),
	}
	for _, edge := range edges {
		draw.Draw(screen, edge, frame, image.Point{}, draw.Src)
	}
}
