// The font subpackage loads the fonts used by the book hosts and
// provides a few helpers to obtain information from them (name,
// family, missing glyphs, etc.).
//
// Hosts need fonts in two shapes: raw bytes (the PDF exporter embeds
// them) and [golang.org/x/image/font.Face] values (the image and
// Ebitengine hosts measure and rasterize with them). A [Font] keeps
// both together, so every host measures text with the same font data.
//
// When no font path is configured, [Default]() returns the Go Regular
// font bundled with golang.org/x/image.
package font
