package book

import "fmt"
import "unicode/utf8"

import "github.com/sesvxace/book/fract"

// Every rune is glyphWidth pixels wide.
const glyphWidth = 7

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

// A host that records every call as a string, for the order
// of directives and draws to be easy to check.
type recordingHost struct {
	calls []string
	draws []recordedDraw
	clears int
	liveOverlays map[int]OverlaySpec
	nextOverlay int
	formatting string // last color directive param, "" after reset
}

type recordedDraw struct {
	Rect fract.Rect
	Text string
	Formatting string
}

func newRecordingHost() *recordingHost {
	return &recordingHost{ liveOverlays: make(map[int]OverlaySpec) }
}

func (self *recordingHost) Measure(text string) fract.Unit {
	return fract.FromInt(utf8.RuneCountInString(text)*glyphWidth)
}

func (self *recordingHost) Format(directive Directive) {
	self.calls = append(self.calls, "format " + directive.String())
	self.formatting = directive.Param
}

func (self *recordingHost) DrawText(rect fract.Rect, text string, align Align) {
	self.calls = append(self.calls, "draw " + text)
	self.draws = append(self.draws, recordedDraw{ rect, text, self.formatting })
}

func (self *recordingHost) ResetFont() {
	self.calls = append(self.calls, "reset")
	self.formatting = ""
}

func (self *recordingHost) Clear(width, height int) {
	self.calls = append(self.calls, fmt.Sprintf("clear %dx%d", width, height))
	self.draws = self.draws[ : 0]
	self.clears += 1
}

func (self *recordingHost) CreateOverlay(spec OverlaySpec) Overlay {
	id := self.nextOverlay
	self.nextOverlay += 1
	self.liveOverlays[id] = spec
	return &recordingOverlay{ host: self, id: id }
}

func (self *recordingHost) overlaysOfKind(kind OverlayKind) []OverlaySpec {
	var specs []OverlaySpec
	for _, spec := range self.liveOverlays {
		if spec.Kind == kind { specs = append(specs, spec) }
	}
	return specs
}

// Texts of the draws since the last clear.
func (self *recordingHost) drawTexts() []string {
	texts := make([]string, 0, len(self.draws))
	for _, draw := range self.draws {
		texts = append(texts, draw.Text)
	}
	return texts
}

func (self *recordingHost) resetCalls() {
	self.calls = self.calls[ : 0]
}

type recordingOverlay struct {
	host *recordingHost
	id int
	disposed bool
}

func (self *recordingOverlay) Dispose() {
	if self.disposed { panic("overlay disposed twice") }
	self.disposed = true
	delete(self.host.liveOverlays, self.id)
}

// Input with a fixed set of triggered and repeated keys.
type scriptedInput struct {
	triggered []Key
	repeated []Key
}

func press(keys ...Key) scriptedInput { return scriptedInput{ triggered: keys, repeated: keys } }
func hold(keys ...Key) scriptedInput { return scriptedInput{ repeated: keys } }
func idle() scriptedInput { return scriptedInput{} }

func (self scriptedInput) Triggered(key Key) bool { return containsKey(self.triggered, key) }
func (self scriptedInput) Repeated(key Key) bool { return containsKey(self.repeated, key) }

func containsKey(keys []Key, key Key) bool {
	for _, k := range keys {
		if k == key { return true }
	}
	return false
}

// A book with configurable page count and content.
type testBook struct {
	BaseBook
	pages int
	speed int
	offset int
	handlers map[int]PageHandler
}

func (self *testBook) MaxPages() int { return self.pages }
func (self *testBook) ScrollSpeed() int {
	if self.speed == 0 { return DefaultScrollSpeed }
	return self.speed
}
func (self *testBook) TopOffset() int { return self.offset }
func (self *testBook) PageHandler(page int) PageHandler {
	return self.handlers[page]
}

func newTestBook(pages int) *testBook {
	return &testBook{
		BaseBook: BaseBook{ Pages: PageContent{} },
		pages: pages,
	}
}

// Returns count lines of text, each one filling a row.
func fillerLines(count int) []Block {
	blocks := make([]Block, count)
	for i := range blocks {
		blocks[i] = Line(fmt.Sprintf("filler line %d", i))
	}
	return blocks
}
