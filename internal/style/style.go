// Package style keeps the text formatting state shared by the hosts.
// Directives reach hosts through book.Canvas.Format, and every host
// applies them with the same rules defined here.
package style

import "image/color"
import "strconv"

import "github.com/sesvxace/book"

// Text colors selected with "\c[n]", modeled on the 32 color
// swatches of the classic RPG window skin.
var Palette = [32]color.RGBA{
	{255, 255, 255, 255}, { 32, 160, 214, 255}, {255, 120,  76, 255}, {102, 204,  64, 255},
	{153, 204, 255, 255}, {204, 192, 255, 255}, {255, 255, 160, 255}, {128, 128, 128, 255},
	{192, 192, 192, 255}, { 32, 128, 204, 255}, {255,  56,  16, 255}, {  0, 160,  16, 255},
	{ 62, 154, 222, 255}, {160, 152, 255, 255}, {255, 204,  32, 255}, {  0,   0,   0, 255},
	{132, 170, 255, 255}, {255, 255,  64, 255}, {255,  32,  32, 255}, { 32,  32,  64, 255},
	{224, 128,  64, 255}, {240, 192,  64, 255}, { 64, 128, 192, 255}, { 64, 192, 240, 255},
	{128, 255, 128, 255}, {192, 128, 128, 255}, {128, 128, 255, 255}, {255, 128, 255, 255},
	{  0, 160,  64, 255}, {  0, 224,  96, 255}, {160,  96, 224, 255}, {192, 128, 255, 255},
}

// Window background and frame colors used when no skin is available.
var (
	WindowBack  = color.RGBA{ 16, 24, 48, 224}
	WindowFrame = color.RGBA{224, 224, 240, 255}
)

// The formatting state for the text being drawn.
type State struct {
	Color color.RGBA
	Index int // palette index of Color
}

// Returns the state after a font reset: palette color 0.
func Default() State {
	return State{ Color: Palette[0] }
}

// Applies a directive to the state. Returns false if the directive
// is not understood, in which case the state doesn't change.
//
// Supported directives:
//  - \c[n]: text color n from the [Palette].
func (self *State) Apply(directive book.Directive) bool {
	switch directive.Code {
	case 'c', 'C':
		if !directive.HasParam { return false }
		index, err := strconv.Atoi(directive.Param)
		if err != nil || index < 0 || index >= len(Palette) { return false }
		self.Index = index
		self.Color = Palette[index]
		return true
	default:
		return false
	}
}

// Restores the default state.
func (self *State) Reset() {
	*self = Default()
}
