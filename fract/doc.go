// The fract subpackage defines the [Unit] type used by the book layout
// engine to keep track of horizontal pen positions and text widths.
//
// A [Unit] is a 26.6 fixed point value: 26 bits for the integer part
// and 6 bits for the fractional part. Most font measuring code in Golang
// (e.g. [golang.org/x/image/font.MeasureString]) already returns
// [fixed.Int26_6] values, which have the exact same representation, so
// measurers can hand their results to the layout engine without losing
// precision and without floating point drift between the measuring and
// the drawing passes.
//
// Rows and line heights are plain ints, so only a small set of helpers
// is provided here: conversions, the [Point] and [Rect] types and a few
// rounding methods.
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
