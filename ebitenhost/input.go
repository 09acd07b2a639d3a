package ebitenhost

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"

import "github.com/sesvxace/book"

// Frames a key must be held before it starts repeating, and frames
// between repeats afterwards.
const (
	RepeatDelay = 24
	RepeatInterval = 6
)

// Physical keys for each logical key.
var KeyMap = map[book.Key][]ebiten.Key{
	book.KeyLeft   : { ebiten.KeyArrowLeft, ebiten.KeyA },
	book.KeyRight  : { ebiten.KeyArrowRight, ebiten.KeyD },
	book.KeyUp     : { ebiten.KeyArrowUp, ebiten.KeyW },
	book.KeyDown   : { ebiten.KeyArrowDown, ebiten.KeyS },
	book.KeyCancel : { ebiten.KeyEscape, ebiten.KeyX, ebiten.KeyBackspace },
}

// A [book.Input] reading the keyboard state through inpututil.
// It must only be used within ebiten.Game.Update.
type Input struct{}

func (Input) Triggered(key book.Key) bool {
	for _, physical := range KeyMap[key] {
		if inpututil.IsKeyJustPressed(physical) { return true }
	}
	return false
}

func (Input) Repeated(key book.Key) bool {
	for _, physical := range KeyMap[key] {
		if repeats(inpututil.KeyPressDuration(physical)) { return true }
	}
	return false
}

// Whether a key held for the given number of frames fires this frame:
// on the first frame, and then every RepeatInterval frames once the
// RepeatDelay has passed.
func repeats(duration int) bool {
	if duration == 1 { return true }
	return duration >= RepeatDelay && (duration - RepeatDelay) % RepeatInterval == 0
}
