package font

import "golang.org/x/image/font/sfnt"
import "sync/atomic"
import "errors"

var ErrNotFound = errors.New("font property not found or empty")

// One shared sfnt.Buffer for property lookups. It's only used when
// nobody else holds it, otherwise sfnt allocates a temporary one.
var sfntBuffer *sfnt.Buffer
var usingSfntBuffer atomic.Bool
func getSfntBuffer() *sfnt.Buffer {
	if !usingSfntBuffer.CompareAndSwap(false, true) {
		return nil
	}
	if sfntBuffer == nil {
		sfntBuffer = &sfnt.Buffer{}
	}
	return sfntBuffer
}

func releaseSfntBuffer(buffer *sfnt.Buffer) {
	if buffer != nil {
		usingSfntBuffer.Store(false)
	}
}

// Returns the requested font property for the given font.
// The returned property string might be empty even when error is nil.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := getSfntBuffer()
	str, err := font.Name(buffer, property)
	releaseSfntBuffer(buffer)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the full name of the given font.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the runes in the given text that the font can't represent,
// without repetitions and in order of appearance. Whitespace is never
// reported.
//
// Book texts are usually written by hand, so checking them against
// the configured font before exporting saves some "tofu" surprises.
func (self *Font) MissingRunes(text string) ([]rune, error) {
	buffer := getSfntBuffer()
	defer releaseSfntBuffer(buffer)

	var missing []rune
	seen := make(map[rune]struct{})
	for _, codePoint := range text {
		if codePoint == ' ' || codePoint == '\t' || codePoint == '\n' { continue }
		if _, found := seen[codePoint]; found { continue }
		seen[codePoint] = struct{}{}

		index, err := self.SFNT.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
