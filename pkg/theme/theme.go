// Package theme maps style names to sgr styles, with a built-in default set
// and optional overrides loaded from TOML files.
package theme

import (
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/sgr/pkg/errors"
	"github.com/arthur-debert/sgr/pkg/sgr"
)

// Theme maps style names to styles.
type Theme map[string]sgr.Style

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		"title":     sgr.NewStyle().Bold(true).Underline(true),
		"success":   sgr.FromFg(sgr.Green).Bold(true),
		"error":     sgr.FromFg(sgr.Red).Bold(true),
		"warning":   sgr.FromFg(sgr.Yellow).Bold(true),
		"info":      sgr.FromFg(sgr.Cyan),
		"muted":     sgr.FromFg(sgr.White).Dim(true),
		"code":      sgr.FromFg(sgr.Magenta),
		"bold":      sgr.NewStyle().Bold(true),
		"italic":    sgr.NewStyle().Italic(true),
		"underline": sgr.NewStyle().Underline(true),
	}
}

// Style looks up a named style.
func (t Theme) Style(name string) (sgr.Style, bool) {
	s, ok := t[name]
	return s, ok
}

// styleConfig is the TOML shape of a single [styles.<name>] table.
type styleConfig struct {
	Fg            string `koanf:"fg"`
	Bg            string `koanf:"bg"`
	Bold          bool   `koanf:"bold"`
	Dim           bool   `koanf:"dim"`
	Italic        bool   `koanf:"italic"`
	Underline     bool   `koanf:"underline"`
	Blink         bool   `koanf:"blink"`
	Reverse       bool   `koanf:"reverse"`
	Hidden        bool   `koanf:"hidden"`
	Strikethrough bool   `koanf:"strikethrough"`
	Intense       bool   `koanf:"intense"`
}

// Load reads a theme file and merges it over the built-in theme. File
// entries override built-ins of the same name.
func Load(path string) (Theme, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load theme from %s", path)
	}
	return fromKoanf(k)
}

// Parse builds a theme from raw TOML bytes merged over the built-ins.
func Parse(data []byte) (Theme, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse theme")
	}
	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (Theme, error) {
	var raw map[string]styleConfig
	if err := k.Unmarshal("styles", &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid styles table")
	}

	t := Default()
	for name, cfg := range raw {
		s, err := cfg.style()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "style %q", name)
		}
		t[name] = s
	}
	return t, nil
}

func (cfg styleConfig) style() (sgr.Style, error) {
	s := sgr.NewStyle().
		Bold(cfg.Bold).
		Dim(cfg.Dim).
		Italic(cfg.Italic).
		Underline(cfg.Underline).
		Blink(cfg.Blink).
		Reverse(cfg.Reverse).
		Hidden(cfg.Hidden).
		Strikethrough(cfg.Strikethrough).
		Intense(cfg.Intense)

	if cfg.Fg != "" {
		c, err := ParseColor(cfg.Fg)
		if err != nil {
			return sgr.Style{}, err
		}
		s = s.Foreground(c)
	}
	if cfg.Bg != "" {
		c, err := ParseColor(cfg.Bg)
		if err != nil {
			return sgr.Style{}, err
		}
		s = s.Background(c)
	}
	return s, nil
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInvalidInput, "not implemented")
}
