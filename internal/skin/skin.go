// Package skin provides named colour palettes for the TUI.
package skin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSkin is returned when a skin is neither built in nor on disk.
var ErrUnknownSkin = errors.New("skin: unknown skin")

// Skin is a colour palette. Colours are lipgloss colour strings
// ("#RRGGBB" or an ANSI index).
type Skin struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Accent     string `yaml:"accent"`
	Muted      string `yaml:"muted"`
	Border     string `yaml:"border"`
	Highlight  string `yaml:"highlight"`
	Success    string `yaml:"success"`
	Danger     string `yaml:"danger"`
}

var builtins = map[string]Skin{
	"default": {
		Name:       "default",
		Background: "#F8F9FA",
		Foreground: "#0F172A",
		Accent:     "#2563EB",
		Muted:      "#9CA3AF",
		Border:     "#000000",
		Highlight:  "#FFFFFF",
		Success:    "#22C55E",
		Danger:     "#DC2626",
	},
	"mono": {
		Name:       "mono",
		Background: "0",
		Foreground: "15",
		Accent:     "15",
		Muted:      "8",
		Border:     "7",
		Highlight:  "0",
		Success:    "7",
		Danger:     "15",
	},
}

// Default returns the default palette.
func Default() Skin {
	return builtins["default"]
}

// Builtin returns a palette compiled into the binary.
func Builtin(name string) (Skin, bool) {
	s, ok := builtins[name]
	return s, ok
}

// Path returns where a named skin file is looked up in dir.
func Path(name, dir string) string {
	return filepath.Join(dir, name+".yml")
}

// Load resolves a skin by name. A file in dir wins over a built-in of the
// same name; colours missing from the file fall back to the default palette.
func Load(name, dir string) (Skin, error) {
	if name == "" {
		name = "default"
	}
	if dir != "" {
		s, err := LoadFile(Path(name, dir))
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return Default(), err
		}
	}
	if s, ok := Builtin(name); ok {
		return s, nil
	}
	return Default(), fmt.Errorf("%w %q", ErrUnknownSkin, name)
}

// LoadFile reads one skin file.
func LoadFile(path string) (Skin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}
	return Parse(data)
}

// Parse decodes a skin document over the default palette.
func Parse(data []byte) (Skin, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("decoding skin: %w", err)
	}
	return s, nil
}
