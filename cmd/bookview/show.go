package main

import "context"
import "errors"

import "github.com/hajimehoshi/ebiten/v2"
import cli "github.com/urfave/cli/v3"

import "github.com/sesvxace/book"
import "github.com/sesvxace/book/ebitenhost"
import "github.com/sesvxace/book/internal/state"

func showBook(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.NArg() != 1 { return errors.New("show expects a single book file") }

	def, opts, err := env.LoadBook(cmd.Args().Get(0))
	if err != nil { return err }
	_, face, err := env.LoadFace()
	if err != nil { return err }
	skin, err := env.LoadSkin()
	if err != nil { return err }

	var skinImage *ebiten.Image
	if skin != nil { skinImage = ebiten.NewImageFromImage(skin) }
	host := ebitenhost.New(face, skinImage)

	title := def.Title
	if title == "" { title = env.Cfg.Window.Title }
	scene := book.ShowBook(def, host, opts, nil, env.Log)
	defer scene.Dispose()
	return ebitenhost.Run(title, host, scene, opts, env.Cfg.Window.Scale, env.Log)
}
