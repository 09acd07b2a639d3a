package imghost

import "image"
import "image/draw"

import "golang.org/x/image/vector"

import "github.com/sesvxace/book"
import "github.com/sesvxace/book/fract"
import "github.com/sesvxace/book/internal/style"

// An overlay element drawn by [Host.Compose]().
type Sprite struct {
	Spec book.OverlaySpec
	host *Host
}

func (self *Host) CreateOverlay(spec book.OverlaySpec) book.Overlay {
	sprite := &Sprite{ Spec: spec, host: self }
	self.sprites = append(self.sprites, sprite)
	return sprite
}

// Returns the live overlay elements.
func (self *Host) Sprites() []*Sprite {
	return self.sprites
}

func (self *Sprite) Dispose() {
	if self.host == nil { return }
	sprites := self.host.sprites
	for i, sprite := range sprites {
		if sprite != self { continue }
		self.host.sprites = append(sprites[ : i], sprites[i + 1 : ]...)
		break
	}
	self.host = nil
}

// Draws the sprite on the screen image.
func (self *Host) drawSprite(screen *image.RGBA, sprite *Sprite) {
	spec := sprite.Spec
	size := spec.Source.Size()
	area := image.Rect(spec.X, spec.Y, spec.X + size.X, spec.Y + size.Y)

	switch spec.Kind {
	case book.OverlayPageCount:
		rect := fract.IntsToRect(area.Min.X, area.Min.Y, area.Max.X, area.Max.Y)
		drawString(screen, self.face, rect, spec.Label, style.Palette[0], book.AlignCenter)
	case book.OverlayLeftArrow, book.OverlayRightArrow:
		if self.skin != nil {
			draw.Draw(screen, area, self.skin, spec.Source.Min, draw.Over)
			return
		}
		arrow := ArrowImage(size, spec.Kind == book.OverlayLeftArrow)
		draw.Draw(screen, area, arrow, image.Point{}, draw.Over)
	}
}

// Returns a plain arrow image of the given size, used for the page
// arrows when there's no window skin.
func ArrowImage(size image.Point, pointsLeft bool) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{ Max: size })
	w, h := float32(size.X), float32(size.Y)
	rasterizer := vector.NewRasterizer(size.X, size.Y)
	if pointsLeft {
		rasterizer.MoveTo(w, 0)
		rasterizer.LineTo(0, h/2)
		rasterizer.LineTo(w, h)
	} else {
		rasterizer.MoveTo(0, 0)
		rasterizer.LineTo(w, h/2)
		rasterizer.LineTo(0, h)
	}
	rasterizer.ClosePath()
	rasterizer.Draw(img, img.Bounds(), image.NewUniform(style.WindowFrame), image.Point{})
	return img
}
