package book

import "image"
import "strconv"

// Windowskin regions for the page arrows.
var (
	leftArrowSource  = image.Rect( 80, 25,  88, 39)
	rightArrowSource = image.Rect(104, 25, 112, 39)
)

// Overlay elements are drawn above everything else in the window.
const OverlayZ = 255

// The set of live overlay elements of a viewer.
type overlaySet struct {
	items []Overlay
}

func (self *overlaySet) add(item Overlay) {
	if item == nil { return }
	self.items = append(self.items, item)
}

func (self *overlaySet) release() {
	for _, item := range self.items {
		item.Dispose()
	}
	self.items = self.items[ : 0]
}

func (self *overlaySet) count() int {
	return len(self.items)
}

// Returns the overlay specs for the given state: a page count label
// centered at the bottom of the window, plus a left arrow when there's
// a previous page and a right arrow when there's a next page. Nothing
// is returned for single page books unless opts.OverlayForOne is set.
func overlaySpecs(measurer Measurer, opts *Options, page, maxPages int) []OverlaySpec {
	if maxPages <= 1 && !opts.OverlayForOne { return nil }

	widest := strconv.Itoa(maxPages) + "/" + strconv.Itoa(maxPages)
	textWidth := measurer.Measure(widest).ToIntCeil()
	labelWidth := textWidth + 4
	sx := opts.X + (opts.ContentsWidth() - textWidth + 4)/2 - 5
	y := opts.Y + opts.Height - 28

	specs := make([]OverlaySpec, 0, 3)
	specs = append(specs, OverlaySpec{
		Kind: OverlayPageCount,
		X: sx + 10, Y: y - 7, Z: OverlayZ,
		Source: image.Rect(0, 0, labelWidth + 4, opts.RowHeight()),
		Label: strconv.Itoa(page) + "/" + strconv.Itoa(maxPages),
	})
	if page > 1 {
		specs = append(specs, OverlaySpec{
			Kind: OverlayLeftArrow,
			X: sx - 12, Y: y - 1, Z: OverlayZ,
			Source: leftArrowSource,
			Skin: opts.Skin,
		})
	}
	if page < maxPages {
		specs = append(specs, OverlaySpec{
			Kind: OverlayRightArrow,
			X: sx + labelWidth + 28, Y: y - 1, Z: OverlayZ,
			Source: rightArrowSource,
			Skin: opts.Skin,
		})
	}
	return specs
}
