package ebitenhost

import "image/color"

import "github.com/hajimehoshi/ebiten/v2"
import "go.uber.org/zap"

import "github.com/sesvxace/book"

// Implemented by scenes that show a book viewer.
type viewerScene interface {
	Viewer() *book.Viewer
}

// An [ebiten.Game] running a [book.Scene]. The game ends when the
// scene returns a nil next scene.
type Game struct {
	host *Host
	scene book.Scene
	opts book.Options
	logger *zap.Logger
}

// Creates a game running the given scene, which must draw through the
// given host. A nil logger is replaced by a no-op one.
func NewGame(host *Host, scene book.Scene, opts book.Options, logger *zap.Logger) *Game {
	if logger == nil { logger = zap.NewNop() }
	return &Game{ host: host, scene: scene, opts: opts, logger: logger.Named("game") }
}

// Returns the current scene.
func (self *Game) Scene() book.Scene { return self.scene }

func (self *Game) Update() error {
	if self.scene == nil { return ebiten.Termination }
	next := self.scene.Update(Input{})
	if next != self.scene {
		self.logger.Debug("Scene changed", zap.Bool("quit", next == nil))
		self.scene = next
	}
	if self.scene == nil { return ebiten.Termination }
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	scene, ok := self.scene.(viewerScene)
	if !ok { return }
	viewer := scene.Viewer()
	if viewer.Disposed() { return }
	self.host.DrawWindow(screen, self.opts, viewer.Scroll())
}

// The screen covers the window at its configured position.
func (self *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize(self.opts)
}

// Returns the logical screen size for the given window options.
func ScreenSize(opts book.Options) (int, int) {
	return opts.X + opts.Width, opts.Y + opts.Height
}

// Opens a window and runs the scene until it quits.
func Run(title string, host *Host, scene book.Scene, opts book.Options, scale float64, logger *zap.Logger) error {
	width, height := ScreenSize(opts)
	if scale <= 0 { scale = 1 }
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(float64(width)*scale), int(float64(height)*scale))
	return ebiten.RunGame(NewGame(host, scene, opts, logger))
}
