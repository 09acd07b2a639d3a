package font

import "errors"

import "golang.org/x/image/font"
import "golang.org/x/image/font/opentype"

// Faces are created at 72 DPI, so sizes are given in pixels.
const faceDPI = 72

// Creates a face of the given size in pixels. Each call returns a
// new face, as faces are not safe for concurrent use.
func (self *Font) Face(size float64) (font.Face, error) {
	if size <= 0 { return nil, errors.New("font size must be positive") }
	return opentype.NewFace(self.SFNT, &opentype.FaceOptions{
		Size: size,
		DPI: faceDPI,
		Hinting: font.HintingFull,
	})
}

// Like [Font.Face](), but panics on error. Meant for sizes that
// are known to be valid.
func (self *Font) MustFace(size float64) font.Face {
	face, err := self.Face(size)
	if err != nil { panic(err) }
	return face
}
