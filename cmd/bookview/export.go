package main

import "bytes"
import "context"
import "errors"
import "fmt"

import cli "github.com/urfave/cli/v3"
import "go.uber.org/multierr"
import "go.uber.org/zap"

import "github.com/sesvxace/book/imghost"
import "github.com/sesvxace/book/internal/state"
import "github.com/sesvxace/book/pdfhost"

func exportBook(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.NArg() != 1 { return errors.New("export expects a single book file") }
	pngDir, pdfFile := cmd.String("png"), cmd.String("pdf")
	if pngDir == "" && pdfFile == "" { return errors.New("nothing to export, use --png and/or --pdf") }

	def, opts, err := env.LoadBook(cmd.Args().Get(0))
	if err != nil { return err }
	fnt, face, err := env.LoadFace()
	if err != nil { return err }

	// both exports run even if the first fails
	var result error
	if pngDir != "" {
		skin, err := env.LoadSkin()
		if err != nil { return err }
		export := imghost.ExportOptions{ Name: def.Title, Scale: cmd.Float("scale"), Full: cmd.Bool("full") }
		files, err := imghost.ExportPNG(pngDir, def, opts, face, skin, export, env.Log)
		if err != nil {
			result = multierr.Append(result, err)
		} else {
			env.Log.Info("PNG export done", zap.String("dir", pngDir), zap.Int("files", len(files)))
		}
	}
	if pdfFile != "" {
		var buffer bytes.Buffer
		err := pdfhost.Export(&buffer, def.Title, def, opts, fnt.Data, env.Cfg.Font.Size, env.Log)
		if err == nil { err = writeOutput(pdfFile, buffer.Bytes()) }
		if err != nil {
			result = multierr.Append(result, fmt.Errorf("PDF export failed: %w", err))
		} else {
			env.Log.Info("PDF export done", zap.String("file", pdfFile), zap.Int("pages", def.MaxPages()))
		}
	}
	return result
}
