// Package content loads the yearbook document shown by the TUI.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rplrewind/rewind/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed yearbook.yml
var defaultYearbook []byte

var (
	// ErrNoSections is returned for a document without sections.
	ErrNoSections = errors.New("content: yearbook has no sections")
	// ErrUnknownKind is returned for a section whose kind has no renderer.
	ErrUnknownKind = errors.New("content: unknown section kind")
)

// Default returns the embedded yearbook.
func Default() (*model.Yearbook, error) {
	return Parse(defaultYearbook)
}

// Load reads a yearbook from path. An empty path selects the embedded one.
func Load(path string) (*model.Yearbook, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	yb, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return yb, nil
}

// Parse decodes and validates a yearbook document.
func Parse(data []byte) (*model.Yearbook, error) {
	var yb model.Yearbook
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return nil, fmt.Errorf("decoding yearbook: %w", err)
	}
	if err := Validate(&yb); err != nil {
		return nil, err
	}
	return &yb, nil
}

// Validate checks section kinds and fills in missing labels.
func Validate(yb *model.Yearbook) error {
	if len(yb.Sections) == 0 {
		return ErrNoSections
	}
	for i := range yb.Sections {
		s := &yb.Sections[i]
		s.Kind = model.SectionKind(strings.ToLower(strings.TrimSpace(string(s.Kind))))
		switch s.Kind {
		case model.KindIntro, model.KindStats, model.KindMoments, model.KindMessages, model.KindClosing:
		default:
			return fmt.Errorf("section %d: %w %q", i+1, ErrUnknownKind, s.Kind)
		}
		if s.Label == "" {
			s.Label = strings.ToUpper(string(s.Kind))
		}
	}
	return nil
}
