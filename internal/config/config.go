// Package config loads panel group definitions from YAML or TOML files.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	resizable "github.com/grindlemire/go-resizable"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// PanelSpec is one panel entry of a layout file.
type PanelSpec struct {
	ID            string   `yaml:"id" toml:"id"`
	Label         string   `yaml:"label" toml:"label"`
	MinSize       float64  `yaml:"minSize" toml:"minSize"`
	MaxSize       *float64 `yaml:"maxSize" toml:"maxSize"`
	DefaultSize   *float64 `yaml:"defaultSize" toml:"defaultSize"`
	Collapsible   bool     `yaml:"collapsible" toml:"collapsible"`
	CollapsedSize float64  `yaml:"collapsedSize" toml:"collapsedSize"`
	Grow          bool     `yaml:"grow" toml:"grow"`
	Resizable     *bool    `yaml:"resizable" toml:"resizable"`
	Order         *int     `yaml:"order" toml:"order"`
}

// Layout is a whole layout file.
type Layout struct {
	ID           string      `yaml:"id" toml:"id"`
	Direction    string      `yaml:"direction" toml:"direction"`
	Reverse      bool        `yaml:"reverse" toml:"reverse"`
	RTL          bool        `yaml:"rtl" toml:"rtl"`
	Disabled     bool        `yaml:"disabled" toml:"disabled"`
	KeyboardStep float64     `yaml:"keyboardStep" toml:"keyboardStep"`
	Sizes        []float64   `yaml:"sizes" toml:"sizes"`
	Panels       []PanelSpec `yaml:"panels" toml:"panels"`
}

// Load reads a layout file. The format is picked from the extension:
// .toml is TOML, anything else is YAML.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	l, err := Parse(data, Format(path))
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// Format returns "toml" or "yaml" for path.
func Format(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

// Parse decodes a layout in the given format ("yaml" or "toml").
func Parse(data []byte, format string) (*Layout, error) {
	var l Layout
	switch format {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown layout format %q", format)
	}

	if len(l.Panels) == 0 {
		return nil, fmt.Errorf("layout has no panels")
	}
	return &l, nil
}

// BuildPanels converts the panel specs into validated panels.
func (l *Layout) BuildPanels() ([]*resizable.Panel, error) {
	panels := make([]*resizable.Panel, 0, len(l.Panels))
	for i, spec := range l.Panels {
		p, err := resizable.NewPanel(spec.ID, spec.options(i)...)
		if err != nil {
			return nil, fmt.Errorf("panels[%d]: %w", i, err)
		}
		panels = append(panels, p)
	}
	return panels, nil
}

// GroupOptions converts the group-level settings. extra options are
// appended after the file's own, so they win.
func (l *Layout) GroupOptions(extra ...resizable.GroupOption) ([]resizable.GroupOption, error) {
	dir, err := resizable.ParseDirection(l.Direction)
	if err != nil {
		return nil, err
	}

	opts := []resizable.GroupOption{resizable.WithDirection(dir)}
	if l.ID != "" {
		opts = append(opts, resizable.WithID(l.ID))
	}
	if l.Reverse {
		opts = append(opts, resizable.WithReverse())
	}
	if l.RTL {
		opts = append(opts, resizable.WithRTL())
	}
	if l.Disabled {
		opts = append(opts, resizable.WithDisabled())
	}
	if l.KeyboardStep != 0 {
		opts = append(opts, resizable.WithKeyboardStep(l.KeyboardStep))
	}
	if len(l.Sizes) > 0 {
		opts = append(opts, resizable.WithSizes(l.Sizes))
	}
	return append(opts, extra...), nil
}

// NewGroup builds a group with every panel of the layout registered.
func (l *Layout) NewGroup(extra ...resizable.GroupOption) (*resizable.Group, error) {
	opts, err := l.GroupOptions(extra...)
	if err != nil {
		return nil, err
	}
	panels, err := l.BuildPanels()
	if err != nil {
		return nil, err
	}

	g, err := resizable.NewGroup(opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range panels {
		if err := g.AddPanel(p); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// options maps a spec onto panel options. Panels without an explicit order
// keep their file position.
func (s PanelSpec) options(index int) []resizable.PanelOption {
	opts := []resizable.PanelOption{
		resizable.WithMinSize(s.MinSize),
		resizable.WithOrder(index),
	}
	if s.MaxSize != nil {
		opts = append(opts, resizable.WithMaxSize(*s.MaxSize))
	}
	if s.DefaultSize != nil {
		opts = append(opts, resizable.WithDefaultSize(*s.DefaultSize))
	}
	if s.Collapsible {
		opts = append(opts, resizable.WithCollapsible(s.CollapsedSize))
	}
	if s.Grow {
		opts = append(opts, resizable.WithGrow())
	}
	if s.Resizable != nil && !*s.Resizable {
		opts = append(opts, resizable.WithFixed())
	}
	if s.Order != nil {
		opts = append(opts, resizable.WithOrder(*s.Order))
	}
	if s.Label != "" {
		opts = append(opts, resizable.WithLabel(s.Label))
	}
	return opts
}
