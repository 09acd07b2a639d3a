// Package pdfhost exports books as PDF documents through
// github.com/tdewolff/canvas. Every page of the book becomes a PDF
// page tall enough to hold the whole page contents, so nothing needs
// to be scrolled.
package pdfhost

import "errors"
import "image/color"
import "io"

import "github.com/tdewolff/canvas"
import "github.com/tdewolff/canvas/renderers/pdf"

import "github.com/sesvxace/book"
import "github.com/sesvxace/book/cache"
import "github.com/sesvxace/book/fract"
import "github.com/sesvxace/book/internal/style"

// Layout works in pixels, canvas in millimeters and points.
const (
	mmPerPx = 25.4/96.0
	ptPerPx = 72.0/96.0
)

var ErrNoPages = errors.New("no pages to write")

// A [book.Host] recording each cleared surface as a new PDF page.
type Host struct {
	family *canvas.FontFamily
	sizePx float64
	style style.State
	widths *cache.Measurer
	pages []*page
}

type page struct {
	canvas *canvas.Canvas
	ctx *canvas.Context
	width, height float64 // mm
	label string // page count footer
}

// Creates a host from raw TTF/OTF font data and a font size in pixels.
func New(fontData []byte, sizePx float64) (*Host, error) {
	if sizePx <= 0 { return nil, errors.New("font size must be positive") }
	family := canvas.NewFontFamily("book")
	if err := family.LoadFont(fontData, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	host := &Host{ family: family, sizePx: sizePx, style: style.Default() }
	host.widths = cache.NewMeasurer(host.measure, nil)
	return host, nil
}

// Returns the number of pages recorded so far.
func (self *Host) NumPages() int { return len(self.pages) }

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
	w, h := float64(max(width, 1))*mmPerPx, float64(max(height, 1))*mmPerPx
	cnv := canvas.New(w, h)
	ctx := canvas.NewContext(cnv)
	ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, like the layout
	self.pages = append(self.pages, &page{ canvas: cnv, ctx: ctx, width: w, height: h })
}

func (self *Host) DrawText(rect fract.Rect, str string, align book.Align) {
	if len(self.pages) == 0 { panic("DrawText() before Clear()") }
	current := self.pages[len(self.pages) - 1]
	self.drawString(current, rect, str, inkColor(self.style), align)
}

// Only the page count is kept, as a footer. Arrows make no sense on paper.
func (self *Host) CreateOverlay(spec book.OverlaySpec) book.Overlay {
	if spec.Kind == book.OverlayPageCount && len(self.pages) > 0 {
		self.pages[len(self.pages) - 1].label = spec.Label
	}
	return noOverlay{}
}

// Writes the recorded pages as a PDF document.
func (self *Host) Write(w io.Writer, title string) error {
	if len(self.pages) == 0 { return ErrNoPages }

	first := self.pages[0]
	writer := pdf.New(w, first.width, first.height, nil)
	writer.SetInfo(title, "", "", "", "bookview")
	for i, page := range self.pages {
		if i > 0 { writer.NewPage(page.width, page.height) }
		if page.label != "" { self.drawFooter(page) }
		page.canvas.RenderTo(writer)
	}
	return writer.Close()
}

// ---- helpers ----

type noOverlay struct{}
func (noOverlay) Dispose() {}

func (self *Host) face(clr color.Color) *canvas.FontFace {
	return self.family.Face(self.sizePx*ptPerPx, clr, canvas.FontRegular, canvas.FontNormal)
}

func (self *Host) measure(str string) fract.Unit {
	face := self.face(color.Black)
	return fract.FromFloat64Up(face.TextWidth(str)/mmPerPx)
}

func (self *Host) drawString(target *page, rect fract.Rect, str string, clr color.Color, align book.Align) {
	face := self.face(clr)
	metrics := face.Metrics()
	top := rect.Min.Y.ToFloat64()*mmPerPx
	height := rect.Height().ToFloat64()*mmPerPx
	baseline := top + (height - metrics.Ascent - metrics.Descent)/2 + metrics.Ascent
	x := align.X(rect, self.Measure(str)).ToFloat64()*mmPerPx
	target.ctx.DrawText(x, baseline, canvas.NewTextLine(face, str, canvas.Left))
}

func (self *Host) drawFooter(target *page) {
	widthPx := int(target.width/mmPerPx)
	heightPx := int(target.height/mmPerPx)
	rowHeight := book.DefaultLineHeight
	rect := fract.IntsToRect(0, heightPx - rowHeight, widthPx, heightPx)
	self.drawString(target, rect, target.label, style.Palette[7], book.AlignCenter)
}

// White is the default text color on screen, but paper is white too.
func inkColor(state style.State) color.Color {
	if state.Index == 0 { return color.Black }
	return state.Color
}
