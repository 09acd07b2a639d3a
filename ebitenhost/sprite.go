package ebitenhost

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/sesvxace/book"
import "github.com/sesvxace/book/fract"
import "github.com/sesvxace/book/internal/style"

type sprite struct {
	spec book.OverlaySpec
	label *ebiten.Image // only for page counts
	host *Host
}

func (self *Host) CreateOverlay(spec book.OverlaySpec) book.Overlay {
	sprite := &sprite{ spec: spec, host: self }
	if spec.Kind == book.OverlayPageCount {
		size := spec.Source.Size()
		sprite.label = ebiten.NewImage(max(size.X, 1), max(size.Y, 1))
		rect := fract.IntsToRect(0, 0, size.X, size.Y)
		drawString(sprite.label, self.face, rect, spec.Label, style.Default(), book.AlignCenter)
	}
	self.sprites = append(self.sprites, sprite)
	return sprite
}

func (self *sprite) Dispose() {
	if self.host == nil { return }
	for i, other := range self.host.sprites {
		if other != self { continue }
		self.host.sprites = append(self.host.sprites[ : i], self.host.sprites[i + 1 : ]...)
		break
	}
	if self.label != nil {
		self.label.Deallocate()
		self.label = nil
	}
	self.host = nil
}

func (self *Host) drawSprite(screen *ebiten.Image, sprite *sprite) {
	options := &ebiten.DrawImageOptions{}
	options.GeoM.Translate(float64(sprite.spec.X), float64(sprite.spec.Y))

	switch sprite.spec.Kind {
	case book.OverlayPageCount:
		screen.DrawImage(sprite.label, options)
	case book.OverlayLeftArrow, book.OverlayRightArrow:
		if self.skin != nil {
			source := sprite.spec.Source.Intersect(self.skin.Bounds())
			if source.Empty() { return }
			screen.DrawImage(self.skin.SubImage(source).(*ebiten.Image), options)
			return
		}
		arrow := self.fallbackArrow(sprite.spec.Kind == book.OverlayLeftArrow)
		screen.DrawImage(arrow, options)
	}
}
