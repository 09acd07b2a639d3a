// Package imghost implements a [book.Host] that draws on plain
// [image.RGBA] images with golang.org/x/image fonts. It doesn't need
// a GPU or a window, so it's used for PNG exports, for the measure
// command and for tests.
package imghost

import "image"
import "image/color"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/sesvxace/book"
import "github.com/sesvxace/book/fract"
import "github.com/sesvxace/book/internal/style"

// A [book.Host] backed by an [image.RGBA] contents bitmap.
type Host struct {
	face font.Face
	skin image.Image
	style style.State
	contents *image.RGBA
	sprites []*Sprite
}

// Creates a host using the given face for all text. The skin is
// the window skin image the overlay arrows are taken from, and may
// be nil to use plain triangles instead.
func New(face font.Face, skin image.Image) *Host {
	if face == nil { panic("imghost.New() requires a non-nil face") }
	return &Host{
		face: face,
		skin: skin,
		style: style.Default(),
		contents: image.NewRGBA(image.Rect(0, 0, 1, 1)),
	}
}

// Returns the page contents bitmap drawn so far.
func (self *Host) Contents() *image.RGBA { return self.contents }

func (self *Host) Measure(text string) fract.Unit {
	return fract.FromFixed(font.MeasureString(self.face, text))
}

func (self *Host) Format(directive book.Directive) {
	_ = self.style.Apply(directive) // unknown directives are ignored
}

func (self *Host) ResetFont() {
	self.style.Reset()
}

func (self *Host) Clear(width, height int) {
	self.contents = image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
}

func (self *Host) DrawText(rect fract.Rect, text string, align book.Align) {
	drawString(self.contents, self.face, rect, text, self.style.Color, align)
}

// ---- helpers ----

// Draws the text vertically centered in the rect and clipped to it.
func drawString(target *image.RGBA, face font.Face, rect fract.Rect, text string, clr color.Color, align book.Align) {
	clip := rect.ImageRect().Intersect(target.Bounds())
	if clip.Empty() { return }

	metrics := face.Metrics()
	ascent  := fract.FromFixed(metrics.Ascent)
	descent := fract.FromFixed(metrics.Descent)
	baseline := rect.Min.Y + (rect.Height() - ascent - descent)/2 + ascent
	x := align.X(rect, fract.FromFixed(font.MeasureString(face, text)))

	drawer := font.Drawer{
		Dst: target.SubImage(clip).(*image.RGBA),
		Src: image.NewUniform(clr),
		Face: face,
		Dot: fixed.Point26_6{ X: x.ToFixed(), Y: baseline.ToFixed() },
	}
	drawer.DrawString(text)
}
