package font

import "os"
import "io"
import "io/fs"
import "errors"
import "strings"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"

// A parsed font along with the bytes it was parsed from. The bytes
// must not be modified while the font is in use.
type Font struct {
	Data []byte
	SFNT *sfnt.Font
	Name string
}

// Similar to [sfnt.Parse](), but also including the font name
// and the original bytes in the returned value.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*Font, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, err
	}
	fontName, err := GetName(newFont)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	return &Font{ Data: fontBytes, SFNT: newFont, Name: fontName }, nil
}

// Attempts to parse a font located the given filepath. Supported
// formats are .ttf and .otf.
func ParseFromPath(path string) (*Font, error) {
	// check font path validity
	ok := hasValidFontExtension(path)
	if !ok {
		return nil, errors.New("invalid font path '" + path + "'")
	}

	// open font file
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return parseFontFileAndClose(file)
}

// Same as [ParseFromPath](), but for embedded filesystems.
func ParseFromFS(filesys fs.FS, path string) (*Font, error) {
	// check font path validity
	ok := hasValidFontExtension(path)
	if !ok {
		return nil, errors.New("invalid font path '" + path + "'")
	}

	// open font file
	file, err := filesys.Open(path)
	if err != nil {
		return nil, err
	}
	return parseFontFileAndClose(file)
}

// Returns the bundled Go Regular font. Panics if it can't be parsed,
// which would mean the golang.org/x/image module is broken.
func Default() *Font {
	font, err := ParseFromBytes(goregular.TTF)
	if err != nil { panic("failed to parse bundled font: " + err.Error()) }
	return font
}

// Loads the font at the given path, or the [Default]() font if the
// path is empty.
func Load(path string) (*Font, error) {
	if path == "" { return Default(), nil }
	return ParseFromPath(path)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*Font, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil {
		return nil, err
	}
	return ParseFromBytes(fontBytes)
}

// Whether font path ends in .ttf or .otf (case insensitive).
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	ext := strings.ToLower(path[len(path) - 4 : ])
	return ext == ".ttf" || ext == ".otf"
}
