package book

import "go.uber.org/zap"

// A Scene is a screen of the application. Update processes one frame
// and returns the scene to run on the next one: itself to keep going,
// another scene to switch, or nil to quit.
type Scene interface {
	Update(input Input) Scene
	Dispose()
}

// A scene showing a book. Cancel closes the book and goes back to the
// scene that opened it.
type BookScene struct {
	viewer *Viewer
	returnTo Scene
	logger *zap.Logger
}

// Opens the book in a new scene. When the book is closed, returnTo
// becomes the active scene (nil quits).
func ShowBook(book Book, host Host, opts Options, returnTo Scene, logger *zap.Logger) *BookScene {
	if logger == nil { logger = zap.NewNop() }
	return &BookScene{
		viewer: NewViewer(book, host, opts, logger),
		returnTo: returnTo,
		logger: logger.Named("scene"),
	}
}

// Returns the viewer of the scene.
func (self *BookScene) Viewer() *Viewer { return self.viewer }

func (self *BookScene) Update(input Input) Scene {
	self.viewer.Update(input)
	if input.Triggered(KeyCancel) {
		self.logger.Debug("book closed", zap.Int("page", self.viewer.Page()))
		self.Dispose()
		return self.returnTo
	}
	return self
}

func (self *BookScene) Dispose() {
	self.viewer.Dispose()
}
