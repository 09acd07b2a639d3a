package config

import "os"
import "path/filepath"
import "strings"
import "testing"

import "github.com/sesvxace/book"

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}

	opts, err := cfg.ViewerOptions()
	if err != nil {
		t.Fatalf("ViewerOptions() error = %v", err)
	}
	if opts != book.DefaultOptions() {
		t.Errorf("Default viewer options = %+v, want %+v", opts, book.DefaultOptions())
	}
	if cfg.Font.Path != "" || cfg.Font.Size != 18 {
		t.Errorf("Unexpected default font %+v", cfg.Font)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
window:
  width: 640
  scale: 2
layout:
  wrap: character
  gutter: 20
  overlay_for_one: true
logging:
  console:
    level: debug
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "logs", "bookview.log") + `
    mode: append
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 416 {
		t.Errorf("Window = %dx%d, want 640x416", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Scale != 2 {
		t.Errorf("Scale = %f, want 2", cfg.Window.Scale)
	}

	opts, err := cfg.ViewerOptions()
	if err != nil {
		t.Fatalf("ViewerOptions() error = %v", err)
	}
	if opts.Mode != book.WrapCharacter || opts.Gutter != 20 || !opts.OverlayForOne {
		t.Errorf("Unexpected viewer options %+v", opts)
	}
	if opts.LineHeight != 24 || opts.Padding != 12 {
		t.Errorf("Template defaults were lost: %+v", opts)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := map[string]string{
		"unknown field": "version: 1\nlayout:\n  hyphenate: true\n",
		"bad wrap":      "version: 1\nlayout:\n  wrap: syllable\n",
		"bad version":   "version: 2\n",
		"bad level":     "version: 1\nlogging:\n  console:\n    level: loud\n",
	}
	for name, content := range tests {
		path := filepath.Join(tmpDir, strings.ReplaceAll(name, " ", "_")+".yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
		if _, err := LoadConfiguration(path); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}

	if _, err := LoadConfiguration(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	for _, key := range []string{"line_height: 24", "wrap: word", "level: normal"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Dump() output misses %q:\n%s", key, data)
		}
	}

	tmpl, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(tmpl), "version: 1") {
		t.Errorf("Prepare() output misses the version")
	}
}

func TestLoggingPrepare(t *testing.T) {
	tmpDir := t.TempDir()
	destination := filepath.Join(tmpDir, "bookview.log")

	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "debug", Destination: destination, Mode: "overwrite"},
	}
	logger, err := conf.Prepare("bookview")
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	logger.Debug("page drawn")
	_ = logger.Sync()

	data, err := os.ReadFile(destination)
	if err != nil {
		t.Fatalf("Log file was not created: %v", err)
	}
	if !strings.Contains(string(data), "bookview") || !strings.Contains(string(data), "page drawn") {
		t.Errorf("Unexpected log contents %q", data)
	}

	conf.FileLogger.Destination = ""
	if _, err := conf.Prepare("bookview"); err == nil {
		t.Error("Expected an error for file logging without destination")
	}
}
