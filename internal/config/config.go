package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cam-per/goilda/ilda"
)

type Config struct {
	Log     LogConfig      `yaml:"log"`
	Workers int            `yaml:"workers"`
	Palette *PaletteConfig `yaml:"palette"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Encoding   string `yaml:"encoding"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// PaletteConfig replaces the standard palette for indexed frames that come
// before any palette record.
type PaletteConfig struct {
	Name    string       `yaml:"name"`
	Company string       `yaml:"company"`
	Colors  []ColorValue `yaml:"colors"`
}

func (pc *PaletteConfig) Palette() *ilda.Palette {
	palette := &ilda.Palette{Name: pc.Name, Company: pc.Company}
	for _, c := range pc.Colors {
		palette.Colors = append(palette.Colors, ilda.Color(c))
	}
	return palette
}

// ColorValue accepts "#rrggbb" or a [r, g, b] sequence.
type ColorValue ilda.Color

func (cv *ColorValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s := strings.TrimPrefix(strings.TrimSpace(node.Value), "#")
		if len(s) != 6 {
			return fmt.Errorf("line %d: colour %q is not #rrggbb", node.Line, node.Value)
		}
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return fmt.Errorf("line %d: colour %q: %w", node.Line, node.Value, err)
		}
		*cv = ColorValue(v)
		return nil
	case yaml.SequenceNode:
		var rgb []int
		if err := node.Decode(&rgb); err != nil {
			return err
		}
		if len(rgb) != 3 {
			return fmt.Errorf("line %d: colour needs 3 channels, got %d", node.Line, len(rgb))
		}
		for _, ch := range rgb {
			if ch < 0 || ch > 255 {
				return fmt.Errorf("line %d: channel %d out of range", node.Line, ch)
			}
		}
		*cv = ColorValue(ilda.RGB(uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2])))
		return nil
	}
	return fmt.Errorf("line %d: unsupported colour value", node.Line)
}

// Load reads the YAML file at path and fills in defaults. An empty path
// yields the defaults alone.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Encoding == "" {
		cfg.Log.Encoding = "console"
	}
	if cfg.Log.MaxSizeMB <= 0 {
		cfg.Log.MaxSizeMB = 25
	}
	if cfg.Log.MaxAgeDays <= 0 {
		cfg.Log.MaxAgeDays = 7
	}
	if cfg.Log.MaxBackups <= 0 {
		cfg.Log.MaxBackups = 5
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

func (cfg *Config) validate() error {
	switch cfg.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("log.encoding: unknown encoding %q", cfg.Log.Encoding)
	}
	if cfg.Palette != nil && len(cfg.Palette.Colors) == 0 {
		return errors.New("palette: no colours configured")
	}
	return nil
}
