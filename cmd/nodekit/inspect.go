package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/adapter"
	"github.com/phanxgames/nodekit/engine"
	"github.com/phanxgames/nodekit/scenefile"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <scene>",
	Short: "Build a scene file and print its node tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scene, err := scenefile.Load(args[0])
		if err != nil {
			return err
		}
		root, err := scene.Build()
		if err != nil {
			return err
		}
		defer root.AsNode().Free()
		slog.Debug("scene built", "path", args[0], "root", root.AsNode().Name())
		return inspect(cmd.OutOrStdout(), root)
	},
}

// inspect walks the tree rooted at inst through the capability interfaces
// and prints one line per node.
func inspect(w io.Writer, inst engine.NodeInstance) error {
	n, err := adapter.Adapt(inst)
	if err != nil {
		return err
	}
	depth := 0
	for p := inst.AsNode().GetParent(); p != nil; p = p.AsNode().GetParent() {
		depth++
	}
	fmt.Fprintf(w, "%s%s [%s]%s\n", strings.Repeat("  ", depth), n.GetPath(), n.GetClass(), describeNode(n))
	for _, c := range n.GetChildren() {
		if err := inspect(w, c); err != nil {
			return err
		}
	}
	return nil
}

func describeNode(n nodekit.Node) string {
	var props []string
	switch v := n.(type) {
	case nodekit.Node2D:
		props = append(props, fmt.Sprintf("position=(%g,%g)", v.Position().X, v.Position().Y))
		if r := v.RotationDegrees(); r != 0 {
			props = append(props, fmt.Sprintf("rotation=%g°", r))
		}
	case nodekit.Control:
		props = append(props, fmt.Sprintf("rect=(%g,%g %gx%g)", v.GetRect().X, v.GetRect().Y, v.GetRect().Width, v.GetRect().Height))
	case nodekit.Timer:
		props = append(props, fmt.Sprintf("wait_time=%g", v.WaitTime()))
		if v.Autostart() {
			props = append(props, "autostart")
		}
	}
	if ci, ok := n.(nodekit.CanvasItem); ok {
		if !ci.IsVisible() {
			props = append(props, "hidden")
		}
		if z := ci.ZIndex(); z != 0 {
			props = append(props, fmt.Sprintf("z=%d", z))
		}
	}
	switch v := n.(type) {
	case nodekit.Label:
		props = append(props, fmt.Sprintf("text=%q", v.Text()))
	case nodekit.Button:
		props = append(props, fmt.Sprintf("text=%q", v.Text()))
	case nodekit.Camera2D:
		props = append(props, fmt.Sprintf("zoom=%g", v.Zoom()))
	case nodekit.Polygon2D:
		props = append(props, fmt.Sprintf("points=%d", len(v.Polygon())))
	}
	if groups := n.GetGroups(); len(groups) > 0 {
		props = append(props, "groups="+strings.Join(groups, ","))
	}
	if len(props) == 0 {
		return ""
	}
	return " " + strings.Join(props, " ")
}
