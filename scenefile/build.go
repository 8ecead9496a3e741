package scenefile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/adapter"
	"github.com/phanxgames/nodekit/engine"
)

// ErrInapplicableProperty is returned when a node sets a property its class
// does not have.
var ErrInapplicableProperty = errors.New("scenefile: property does not apply to class")

// BuildError reports a failure to build one node of a scene.
type BuildError struct {
	// Path is the slash-separated list of node names from the scene root.
	Path string
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("scenefile: node %s: %v", e.Path, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Build instantiates the scene's node tree. The returned root is detached;
// add it to a SceneTree to run it. On error no partially built tree is
// returned.
func (s *Scene) Build() (engine.NodeInstance, error) {
	if s.Root == nil {
		return nil, errors.New("scenefile: missing root node")
	}
	return buildNode(s.Root, "")
}

func buildNode(d *Node, parentPath string) (engine.NodeInstance, error) {
	name := d.Name
	if name == "" {
		name = d.Class
	}
	path := name
	if parentPath != "" {
		path = parentPath + "/" + name
	}
	fail := func(err error) (engine.NodeInstance, error) {
		return nil, &BuildError{Path: path, Err: err}
	}

	inst, err := engine.Instantiate(d.Class, name)
	if err != nil {
		return fail(err)
	}
	n, err := adapter.Adapt(inst)
	if err != nil {
		return fail(err)
	}
	if err := applyProperties(n, d); err != nil {
		n.Free()
		return fail(err)
	}
	for i := range d.Children {
		child, err := buildNode(&d.Children[i], path)
		if err != nil {
			n.Free()
			return nil, err
		}
		n.AddChild(child)
	}
	return inst, nil
}

type positioner interface{ SetPosition(p engine.Vec2) }

type texter interface{ SetText(s string) }

type colorer interface{ SetColor(c engine.Color) }

type oneShotter interface{ SetOneShot(oneShot bool) }

func inapplicable(prop, class string) error {
	return fmt.Errorf("%w: %s on %s", ErrInapplicableProperty, prop, class)
}

func applyProperties(n nodekit.Node, d *Node) error {
	class := n.GetClass()

	if d.Position != nil {
		p, ok := n.(positioner)
		if !ok {
			return inapplicable("position", class)
		}
		p.SetPosition(d.Position.toEngine())
	}
	if d.Rotation != nil || d.Scale != nil {
		n2d, ok := n.(nodekit.Node2D)
		if !ok {
			if d.Rotation != nil {
				return inapplicable("rotation", class)
			}
			return inapplicable("scale", class)
		}
		if d.Rotation != nil {
			n2d.SetRotation(*d.Rotation)
		}
		if d.Scale != nil {
			n2d.SetScale(d.Scale.toEngine())
		}
	}
	if d.Visible != nil || d.ZIndex != nil || d.Modulate != nil {
		ci, ok := n.(nodekit.CanvasItem)
		if !ok {
			switch {
			case d.Visible != nil:
				return inapplicable("visible", class)
			case d.ZIndex != nil:
				return inapplicable("z_index", class)
			default:
				return inapplicable("modulate", class)
			}
		}
		if d.Visible != nil {
			ci.SetVisible(*d.Visible)
		}
		if d.ZIndex != nil {
			ci.SetZIndex(*d.ZIndex)
		}
		if d.Modulate != nil {
			ci.SetModulate(d.Modulate.toEngine())
		}
	}
	if d.Color != nil {
		c, ok := n.(colorer)
		if !ok {
			return inapplicable("color", class)
		}
		c.SetColor(d.Color.toEngine())
	}
	if d.Text != nil {
		t, ok := n.(texter)
		if !ok {
			return inapplicable("text", class)
		}
		t.SetText(*d.Text)
	}
	if d.OneShot != nil {
		o, ok := n.(oneShotter)
		if !ok {
			return inapplicable("one_shot", class)
		}
		o.SetOneShot(*d.OneShot)
	}
	if d.WaitTime != nil || d.Autostart != nil {
		t, ok := n.(nodekit.Timer)
		if !ok {
			if d.WaitTime != nil {
				return inapplicable("wait_time", class)
			}
			return inapplicable("autostart", class)
		}
		if d.WaitTime != nil {
			if *d.WaitTime <= 0 {
				return fmt.Errorf("wait_time must be positive, got %v", *d.WaitTime)
			}
			t.SetWaitTime(*d.WaitTime)
		}
		if d.Autostart != nil {
			t.SetAutostart(*d.Autostart)
		}
	}
	if d.Size != nil {
		c, ok := n.(nodekit.Control)
		if !ok {
			return inapplicable("size", class)
		}
		c.SetSize(d.Size.toEngine())
	}
	if d.Polygon != nil {
		p, ok := n.(nodekit.Polygon2D)
		if !ok {
			return inapplicable("polygon", class)
		}
		pts := make([]engine.Vec2, len(d.Polygon))
		for i, v := range d.Polygon {
			pts[i] = v.toEngine()
		}
		p.SetPolygon(pts)
	}
	if d.Zoom != nil || d.Current != nil {
		cam, ok := n.(nodekit.Camera2D)
		if !ok {
			if d.Zoom != nil {
				return inapplicable("zoom", class)
			}
			return inapplicable("current", class)
		}
		if d.Zoom != nil {
			if *d.Zoom <= 0 {
				return fmt.Errorf("zoom must be positive, got %v", *d.Zoom)
			}
			cam.SetZoom(*d.Zoom)
		}
		if d.Current != nil && *d.Current {
			cam.MakeCurrent()
		}
	}
	for _, g := range d.Groups {
		n.AddToGroup(g)
	}
	keys := make([]string, 0, len(d.Meta))
	for k := range d.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.SetMeta(k, d.Meta[k])
	}
	return nil
}
