package book

import "image"

import "github.com/sesvxace/book/fract"

// A Measurer returns the advance width of a text run, which won't
// contain directives. Measurement must not depend on the formatting
// state set through [Canvas].Format: the engine measures and draws
// in two independent passes and expects the same widths in both.
type Measurer interface {
	Measure(text string) fract.Unit
}

// Text alignment within the rect given to [Canvas].DrawText.
type Align uint8
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Returns the x position where a text run of the given width must
// start to be aligned within the rect.
func (self Align) X(rect fract.Rect, width fract.Unit) fract.Unit {
	switch self {
	case AlignCenter: return rect.Min.X + (rect.Width() - width)/2
	case AlignRight: return rect.Max.X - width
	default:
		return rect.Min.X
	}
}

// A Canvas is the drawing surface of a page. The engine only places
// text; rasterization, fonts and colors are up to the host.
type Canvas interface {
	Measurer

	// Applies a formatting directive. It's called right before the
	// text the directive was attached to, and has no advance.
	Format(directive Directive)

	// Draws a run of literal text within the given rect.
	DrawText(rect fract.Rect, text string, align Align)

	// Restores the default formatting state. Called before a page
	// is written and after each of its blocks.
	ResetFont()

	// Discards the page contents and prepares a new surface of the
	// given size in pixels.
	Clear(width, height int)
}

// What an overlay element represents.
type OverlayKind uint8
const (
	OverlayPageCount OverlayKind = iota
	OverlayLeftArrow
	OverlayRightArrow
)

func (self OverlayKind) String() string {
	switch self {
	case OverlayPageCount  : return "PageCount"
	case OverlayLeftArrow  : return "LeftArrow"
	case OverlayRightArrow : return "RightArrow"
	default:
		return "OverlayKind(?)"
	}
}

// Description of a navigation overlay element, in screen coordinates.
//
// For [OverlayPageCount], Source is the size of the label bitmap and
// Label the text to center within it. For arrows, Source is the region
// of the window skin to show and Skin the skin name (empty for the
// default skin).
type OverlaySpec struct {
	Kind OverlayKind
	X, Y, Z int
	Source image.Rectangle
	Label string
	Skin string
}

// A displayed overlay element.
type Overlay interface {
	Dispose()
}

// Creates overlay elements on top of the book window.
type OverlayHost interface {
	CreateOverlay(spec OverlaySpec) Overlay
}

// The host surface a [Viewer] draws into.
type Host interface {
	Canvas
	OverlayHost
}

// Logical input keys.
type Key uint8
const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyCancel
)

func (self Key) String() string {
	switch self {
	case KeyLeft   : return "Left"
	case KeyRight  : return "Right"
	case KeyUp     : return "Up"
	case KeyDown   : return "Down"
	case KeyCancel : return "Cancel"
	default:
		return "Key(?)"
	}
}

// Input state for the current frame. Triggered reports keys pressed
// this frame. Repeated also reports held keys at the platform's key
// repeat rate.
type Input interface {
	Triggered(key Key) bool
	Repeated(key Key) bool
}
