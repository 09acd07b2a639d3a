// Package ebitenhost shows books in an Ebitengine window. It provides
// a [book.Host] drawing on [ebiten.Image] surfaces, the keyboard input
// mapping and an [ebiten.Game] running a [book.Scene].
package ebitenhost

import "image"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/text/v2"
import "golang.org/x/image/font"

import "github.com/sesvxace/book"
import "github.com/sesvxace/book/cache"
import "github.com/sesvxace/book/fract"
import "github.com/sesvxace/book/imghost"
import "github.com/sesvxace/book/internal/style"

// A [book.Host] drawing on Ebitengine images.
type Host struct {
	face text.Face
	skin *ebiten.Image
	arrows [2]*ebiten.Image // fallback arrows, left and right
	style style.State
	widths *cache.Measurer
	contents *ebiten.Image
	sprites []*sprite
}

// Creates a host using the given face for all text. The skin may
// be nil, in which case plain arrows are used for the overlay.
func New(face font.Face, skin *ebiten.Image) *Host {
	if face == nil { panic("ebitenhost.New() requires a non-nil face") }
	host := &Host{
		face: text.NewGoXFace(face),
		skin: skin,
		style: style.Default(),
	}
	host.widths = cache.NewMeasurer(host.measure, nil)
	return host
}

// Widths are cached, as pages are measured and drawn on every turn.
func (self *Host) Measure(str string) fract.Unit {
	return self.widths.Measure(str)
}

func (self *Host) Format(directive book.Directive) {
	_ = self.style.Apply(directive)
}

func (self *Host) ResetFont() {
	self.style.Reset()
}

func (self *Host) Clear(width, height int) {
	if self.contents != nil { self.contents.Deallocate() }
	self.contents = ebiten.NewImage(max(width, 1), max(height, 1))
}

func (self *Host) DrawText(rect fract.Rect, str string, align book.Align) {
	if self.contents == nil { panic("DrawText() before Clear()") }
	drawString(self.contents, self.face, rect, str, self.style, align)
}

// Draws the window on the screen: background, frame, the visible
// part of the page contents and the overlay.
func (self *Host) DrawWindow(screen *ebiten.Image, opts book.Options, scroll int) {
	drawFrame(screen, opts)
	if self.contents != nil {
		visible := image.Rect(0, scroll, opts.ContentsWidth(), scroll + opts.ViewportHeight())
		options := &ebiten.DrawImageOptions{}
		options.GeoM.Translate(float64(opts.X + opts.Padding), float64(opts.Y + opts.Padding))
		screen.DrawImage(self.contents.SubImage(visible).(*ebiten.Image), options)
	}
	for _, sprite := range self.sprites {
		self.drawSprite(screen, sprite)
	}
}

// ---- helpers ----

func drawString(target *ebiten.Image, face text.Face, rect fract.Rect, str string, state style.State, align book.Align) {
	clip := rect.ImageRect().Intersect(target.Bounds())
	if clip.Empty() { return }

	width, _ := text.Measure(str, face, 0)
	metrics := face.Metrics()
	x := align.X(rect, fract.FromFloat64Up(width))
	y := rect.Min.Y.ToFloat64() + (rect.Height().ToFloat64() - metrics.HAscent - metrics.HDescent)/2

	options := &text.DrawOptions{}
	options.GeoM.Translate(x.ToFloat64(), y)
	options.ColorScale.ScaleWithColor(state.Color)
	text.Draw(target.SubImage(clip).(*ebiten.Image), str, face, options)
}

func (self *Host) measure(str string) fract.Unit {
	width, _ := text.Measure(str, self.face, 0)
	return fract.FromFloat64Up(width)
}

func (self *Host) fallbackArrow(left bool) *ebiten.Image {
	index := 1
	if left { index = 0 }
	if self.arrows[index] == nil {
		arrow := imghost.ArrowImage(image.Pt(8, 14), left)
		self.arrows[index] = ebiten.NewImageFromImage(arrow)
	}
	return self.arrows[index]
}
