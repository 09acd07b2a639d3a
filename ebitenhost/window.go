package ebitenhost

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/vector"

import "github.com/sesvxace/book"
import "github.com/sesvxace/book/internal/style"

// Draws the window background and a one pixel frame.
func drawFrame(screen *ebiten.Image, opts book.Options) {
	x, y := float32(opts.X), float32(opts.Y)
	w, h := float32(opts.Width), float32(opts.Height)
	vector.DrawFilledRect(screen, x, y, w, h, style.WindowBack, false)
	vector.StrokeRect(screen, x + 0.5, y + 0.5, w - 1, h - 1, 1, style.WindowFrame, false)
}
