package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rect is a barrier given as fractions of the arena size, so a layout scales
// with the window.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// LayoutSpec is one named barrier layout.
type LayoutSpec struct {
	Name     string `yaml:"name"`
	Barriers []Rect `yaml:"barriers"`
}

type layoutFile struct {
	Layouts []LayoutSpec `yaml:"layouts"`
}

// LoadLayouts reads a YAML file of barrier layouts:
//
//	layouts:
//	  - name: gate
//	    barriers:
//	      - {x: 0.48, y: 0.1, w: 0.04, h: 0.3}
func LoadLayouts(path string) ([]LayoutSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layouts: %w", err)
	}
	var f layoutFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Layouts) == 0 {
		return nil, fmt.Errorf("%s: no layouts", path)
	}
	for i, l := range f.Layouts {
		for j, r := range l.Barriers {
			if err := r.validate(); err != nil {
				return nil, fmt.Errorf("%s: layout %d (%s) barrier %d: %w", path, i, l.Name, j, err)
			}
		}
	}
	return f.Layouts, nil
}

func (r Rect) validate() error {
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("size %gx%g must be positive", r.W, r.H)
	}
	if r.X < 0 || r.Y < 0 || r.X+r.W > 1 || r.Y+r.H > 1 {
		return fmt.Errorf("rect (%g,%g %gx%g) leaves the unit square", r.X, r.Y, r.W, r.H)
	}
	return nil
}

// Fractions returns the barriers as {x, y, w, h} tuples.
func (l LayoutSpec) Fractions() [][4]float64 {
	out := make([][4]float64, len(l.Barriers))
	for i, r := range l.Barriers {
		out[i] = [4]float64{r.X, r.Y, r.W, r.H}
	}
	return out
}
