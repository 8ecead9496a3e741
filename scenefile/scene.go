package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/nodekit/engine"
)

// Format selects the document codec.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml,
// and .json.
var ErrUnsupportedFormat = errors.New("scenefile: unsupported format")

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Vec2 is a point or size in a scene file.
type Vec2 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

func (v Vec2) toEngine() engine.Vec2 { return engine.Vec2{X: v.X, Y: v.Y} }

// Color is an RGBA color in a scene file. A missing alpha means opaque.
type Color struct {
	R float64  `yaml:"r" json:"r"`
	G float64  `yaml:"g" json:"g"`
	B float64  `yaml:"b" json:"b"`
	A *float64 `yaml:"a,omitempty" json:"a,omitempty"`
}

func (c Color) toEngine() engine.Color {
	a := 1.0
	if c.A != nil {
		a = *c.A
	}
	return engine.Color{R: c.R, G: c.G, B: c.B, A: a}
}

// Window holds the run settings of a scene.
type Window struct {
	Title      string `yaml:"title" json:"title"`
	Width      int    `yaml:"width" json:"width"`
	Height     int    `yaml:"height" json:"height"`
	TPS        int    `yaml:"tps,omitempty" json:"tps,omitempty"`
	Debug      bool   `yaml:"debug,omitempty" json:"debug,omitempty"`
	ShowFPS    bool   `yaml:"show_fps,omitempty" json:"show_fps,omitempty"`
	ClearColor *Color `yaml:"clear_color,omitempty" json:"clear_color,omitempty"`
}

// Node describes one node and its children. Pointer fields are optional; nil
// leaves the class default in place.
type Node struct {
	Class     string         `yaml:"class" json:"class"`
	Name      string         `yaml:"name,omitempty" json:"name,omitempty"`
	Position  *Vec2          `yaml:"position,omitempty" json:"position,omitempty"`
	Rotation  *float64       `yaml:"rotation,omitempty" json:"rotation,omitempty"`
	Scale     *Vec2          `yaml:"scale,omitempty" json:"scale,omitempty"`
	Visible   *bool          `yaml:"visible,omitempty" json:"visible,omitempty"`
	ZIndex    *int           `yaml:"z_index,omitempty" json:"z_index,omitempty"`
	Modulate  *Color         `yaml:"modulate,omitempty" json:"modulate,omitempty"`
	Color     *Color         `yaml:"color,omitempty" json:"color,omitempty"`
	Text      *string        `yaml:"text,omitempty" json:"text,omitempty"`
	WaitTime  *float64       `yaml:"wait_time,omitempty" json:"wait_time,omitempty"`
	Autostart *bool          `yaml:"autostart,omitempty" json:"autostart,omitempty"`
	OneShot   *bool          `yaml:"one_shot,omitempty" json:"one_shot,omitempty"`
	Size      *Vec2          `yaml:"size,omitempty" json:"size,omitempty"`
	Polygon   []Vec2         `yaml:"polygon,omitempty" json:"polygon,omitempty"`
	Zoom      *float64       `yaml:"zoom,omitempty" json:"zoom,omitempty"`
	Current   *bool          `yaml:"current,omitempty" json:"current,omitempty"`
	Groups    []string       `yaml:"groups,omitempty" json:"groups,omitempty"`
	Meta      map[string]any `yaml:"meta,omitempty" json:"meta,omitempty"`
	Children  []Node         `yaml:"children,omitempty" json:"children,omitempty"`
}

// Scene is a parsed scene file.
type Scene struct {
	Window Window `yaml:"window" json:"window"`
	Root   *Node  `yaml:"root" json:"root"`
}

// Load reads and parses the scene file at path. The format follows the file
// extension.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read %s: %w", path, err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	return s, nil
}

// Parse decodes a scene document. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenefile: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("scenefile: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if s.Root == nil {
		return nil, errors.New("scenefile: missing root node")
	}
	return &s, nil
}

// Marshal encodes s in format.
func (s *Scene) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatJSON:
		return json.MarshalIndent(s, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// RunConfig returns the engine run settings described by the window section.
func (s *Scene) RunConfig() engine.RunConfig {
	cfg := engine.RunConfig{
		Title:   s.Window.Title,
		Width:   s.Window.Width,
		Height:  s.Window.Height,
		TPS:     s.Window.TPS,
		Debug:   s.Window.Debug,
		ShowFPS: s.Window.ShowFPS,
	}
	if s.Window.ClearColor != nil {
		cfg.ClearColor = s.Window.ClearColor.toEngine()
	}
	return cfg
}
