package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Palette maps event categories to display colors. Unknown categories fall
// back to Fallback so the renderer never has to guess.
type Palette struct {
	Categories map[string]string `yaml:"categories" json:"categories"`
	Fallback   string            `yaml:"fallback" json:"fallback"`
}

// DefaultPalette returns the built-in category colors.
func DefaultPalette() *Palette {
	return &Palette{
		Categories: map[string]string{
			"Household": "#FF6B6B",
			"Work":      "#4ECDC4",
			"School":    "#45B7D1",
			"Leisure":   "#FFA07A",
			"Health":    "#98D8C8",
		},
		Fallback: "#CCCCCC",
	}
}

// LoadPalette reads a YAML palette file. A missing file (or empty path)
// yields the default palette; a present but unreadable file is an error.
func LoadPalette(path string) (*Palette, error) {
	if path == "" {
		return DefaultPalette(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultPalette(), nil
		}
		return nil, err
	}

	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	p.normalize()
	return &p, nil
}

func (p *Palette) normalize() {
	def := DefaultPalette()
	if len(p.Categories) == 0 {
		p.Categories = def.Categories
	}
	if p.Fallback == "" {
		p.Fallback = def.Fallback
	}
}

// Color returns the display color for a category.
func (p *Palette) Color(category string) string {
	if c, ok := p.Categories[category]; ok {
		return c
	}
	return p.Fallback
}

// Names returns the configured category names, unordered.
func (p *Palette) Names() []string {
	out := make([]string, 0, len(p.Categories))
	for name := range p.Categories {
		out = append(out, name)
	}
	return out
}
