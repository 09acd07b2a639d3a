// Package config loads the bookview configuration: YAML on top of an
// embedded default template.
package config

import "bytes"
import _ "embed"
import "fmt"
import "os"

import yaml "gopkg.in/yaml.v3"
import "github.com/rupor-github/gencfg"

import "github.com/sesvxace/book"

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	WindowConfig struct {
		X      int     `yaml:"x"`
		Y      int     `yaml:"y"`
		Width  int     `yaml:"width" validate:"min=64"`
		Height int     `yaml:"height" validate:"min=64"`
		Title  string  `yaml:"title"`
		Scale  float64 `yaml:"scale" validate:"gt=0"`
	}

	LayoutConfig struct {
		Wrap          string `yaml:"wrap" validate:"oneof=word character"`
		LineHeight    int    `yaml:"line_height" validate:"min=1"`
		Gutter        int    `yaml:"gutter" validate:"gte=0"`
		Padding       int    `yaml:"padding" validate:"gte=0"`
		OverlayForOne bool   `yaml:"overlay_for_one"`
		Skin          string `yaml:"skin,omitempty" sanitize:"assure_file_access"`
	}

	FontConfig struct {
		Path string  `yaml:"path,omitempty" sanitize:"assure_file_access"`
		Size float64 `yaml:"size" validate:"gt=0"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Window  WindowConfig  `yaml:"window"`
		Layout  LayoutConfig  `yaml:"layout"`
		Font    FontConfig    `yaml:"font"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only the fields defined above are accepted, so no yaml.Unmarshal
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration expands the configuration template for the defaults,
// then superimposes the values of the file at the given path (if any)
// and validates the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare expands the configuration template, which is what the
// dumpconfig command writes out for editing.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

// Dump returns the actual configuration in use as YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

// ViewerOptions converts the window and layout sections into
// viewer options.
func (cfg *Config) ViewerOptions() (book.Options, error) {
	mode, err := book.ParseWrapMode(cfg.Layout.Wrap)
	if err != nil {
		return book.Options{}, fmt.Errorf("bad layout.wrap value %q: %w", cfg.Layout.Wrap, err)
	}
	return book.Options{
		X:             cfg.Window.X,
		Y:             cfg.Window.Y,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		Padding:       cfg.Layout.Padding,
		LineHeight:    cfg.Layout.LineHeight,
		Gutter:        cfg.Layout.Gutter,
		Mode:          mode,
		OverlayForOne: cfg.Layout.OverlayForOne,
		Skin:          cfg.Layout.Skin,
	}, nil
}
