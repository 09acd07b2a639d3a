// Package state defines the state shared by the bookview commands.
package state

import "context"
import "fmt"
import "image"
import "time"

import "github.com/disintegration/imaging"
import "go.uber.org/zap"
import xfont "golang.org/x/image/font"

import "github.com/sesvxace/book"
import "github.com/sesvxace/book/bookfile"
import "github.com/sesvxace/book/config"
import "github.com/sesvxace/book/font"

type envKey struct{}

// LocalEnv keeps everything the program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Log *zap.Logger

	start time.Time
	restoreStdLog func()
}

func newLocalEnv() *LocalEnv {
	return &LocalEnv{ start: time.Now(), Log: zap.NewNop() }
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok { return env }
	panic("local env not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (self *LocalEnv) Uptime() time.Duration {
	return time.Since(self.start)
}

func (self *LocalEnv) RedirectStdLog() {
	if self.Log == nil { return }
	self.restoreStdLog = zap.RedirectStdLog(self.Log)
}

func (self *LocalEnv) RestoreStdLog() {
	if self.Log != nil { _ = self.Log.Sync() }
	if self.restoreStdLog != nil {
		self.restoreStdLog()
		self.restoreStdLog = nil
	}
}

// Loads a book file and the viewer options for it: the configured
// options, overridden by the settings of the book file itself.
func (self *LocalEnv) LoadBook(path string) (*bookfile.Definition, book.Options, error) {
	opts, err := self.Cfg.ViewerOptions()
	if err != nil { return nil, opts, err }
	def, err := bookfile.ParseFile(path)
	if err != nil { return nil, opts, fmt.Errorf("unable to load book: %w", err) }
	def.ApplyOptions(&opts)
	self.Log.Debug("Book loaded",
		zap.String("file", path),
		zap.String("title", def.Title),
		zap.Int("pages", def.MaxPages()),
		zap.Stringer("wrap", opts.Mode),
	)
	return def, opts, nil
}

// Loads the configured font.
func (self *LocalEnv) LoadFont() (*font.Font, error) {
	fnt, err := font.Load(self.Cfg.Font.Path)
	if err != nil { return nil, fmt.Errorf("unable to load font: %w", err) }
	return fnt, nil
}

// Loads the configured font and creates a face at the configured size.
func (self *LocalEnv) LoadFace() (*font.Font, xfont.Face, error) {
	fnt, err := self.LoadFont()
	if err != nil { return nil, nil, err }
	face, err := fnt.Face(self.Cfg.Font.Size)
	if err != nil { return nil, nil, fmt.Errorf("unable to create font face: %w", err) }
	return fnt, face, nil
}

// Loads the configured window skin. Returns nil if none is configured.
func (self *LocalEnv) LoadSkin() (image.Image, error) {
	path := self.Cfg.Layout.Skin
	if path == "" { return nil, nil }
	img, err := imaging.Open(path)
	if err != nil { return nil, fmt.Errorf("unable to load window skin %q: %w", path, err) }
	return img, nil
}
