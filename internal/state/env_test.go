package state

import "context"
import "image"
import "os"
import "path/filepath"
import "testing"

import "github.com/disintegration/imaging"
import "go.uber.org/zap/zaptest"

import "github.com/sesvxace/book"
import "github.com/sesvxace/book/config"

func testEnv(t *testing.T) *LocalEnv {
	t.Helper()
	env := EnvFromContext(ContextWithEnv(context.Background()))
	cfg, err := config.LoadConfiguration("")
	if err != nil { t.Fatalf("LoadConfiguration() error = %v", err) }
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t)
	return env
}

func TestEnvFromContext(t *testing.T) {
	defer func() {
		if recover() == nil { t.Error("Expected a panic without env") }
	}()
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env.Log == nil || env.Uptime() < 0 { t.Error("Unexpected env state") }
	EnvFromContext(context.Background())
}

func TestLoadBook(t *testing.T) {
	env := testEnv(t)
	path := filepath.Join(t.TempDir(), "tiny.book")
	content := `book "Tiny" { pages 2 wrap character page 2 { "x" } }`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { t.Fatal(err) }

	def, opts, err := env.LoadBook(path)
	if err != nil { t.Fatalf("LoadBook() error = %v", err) }
	if def.Title != "Tiny" || def.MaxPages() != 2 { t.Errorf("Unexpected book %q with %d pages", def.Title, def.MaxPages()) }
	if opts.Mode != book.WrapCharacter || opts.Width != 544 {
		t.Errorf("Unexpected options %+v", opts)
	}

	if _, _, err := env.LoadBook(filepath.Join(t.TempDir(), "missing.book")); err == nil {
		t.Error("Expected an error for a missing book")
	}
}

func TestLoadFaceAndSkin(t *testing.T) {
	env := testEnv(t)
	fnt, face, err := env.LoadFace()
	if err != nil { t.Fatalf("LoadFace() error = %v", err) }
	if fnt == nil || face == nil { t.Fatal("Expected the default font") }

	if skin, err := env.LoadSkin(); skin != nil || err != nil {
		t.Errorf("Expected no skin, got %v, %v", skin, err)
	}

	path := filepath.Join(t.TempDir(), "skin.png")
	env.Cfg.Layout.Skin = path
	if _, err := env.LoadSkin(); err == nil { t.Error("Expected an error for a missing skin") }

	if err := imaging.Save(image.NewRGBA(image.Rect(0, 0, 128, 128)), path); err != nil { t.Fatal(err) }
	skin, err := env.LoadSkin()
	if err != nil { t.Fatalf("LoadSkin() error = %v", err) }
	if skin.Bounds().Dx() != 128 { t.Errorf("Unexpected skin size %v", skin.Bounds()) }
}
