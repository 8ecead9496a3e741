package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/phanxgames/nodekit/adapter"
	"github.com/phanxgames/nodekit/engine"
)

var classesJSON bool

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Print the engine class tree and the adapter for each class",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := classInfos()
		if err != nil {
			return err
		}
		if classesJSON {
			return writeClassesJSON(cmd.OutOrStdout(), infos)
		}
		writeClassTree(cmd.OutOrStdout(), infos)
		return nil
	},
}

func init() {
	classesCmd.Flags().BoolVar(&classesJSON, "json", false, "print JSON instead of a tree")
}

// classInfo describes one engine class and the adapter Adapt picks for it.
type classInfo struct {
	Class    string `json:"class"`
	Parent   string `json:"parent,omitempty"`
	Abstract bool   `json:"abstract"`
	Adapter  string `json:"adapter,omitempty"`
	Depth    int    `json:"-"`
}

// classInfos instantiates every concrete class and adapts it, failing if any
// class has no matching adapter.
func classInfos() ([]classInfo, error) {
	classes := engine.Classes()
	infos := make([]classInfo, 0, len(classes))
	depth := make(map[string]int, len(classes))
	for _, class := range classes {
		info := classInfo{
			Class:    class,
			Parent:   engine.ParentClass(class),
			Abstract: engine.IsAbstract(class),
		}
		if info.Parent != "" {
			info.Depth = depth[info.Parent] + 1
		}
		depth[class] = info.Depth
		if !info.Abstract {
			inst, err := engine.Instantiate(class, class)
			if err != nil {
				return nil, err
			}
			n, err := adapter.Adapt(inst)
			if err != nil {
				return nil, fmt.Errorf("adapt %s: %w", class, err)
			}
			if got := n.GetClass(); got != class {
				return nil, fmt.Errorf("adapt %s: adapter reports class %s", class, got)
			}
			info.Adapter = fmt.Sprintf("%T", n)
			n.Free()
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func writeClassTree(w io.Writer, infos []classInfo) {
	for _, info := range infos {
		line := strings.Repeat("  ", info.Depth) + info.Class
		switch {
		case info.Abstract:
			line += " (abstract)"
		default:
			line += " -> " + info.Adapter
		}
		fmt.Fprintln(w, line)
	}
}

func writeClassesJSON(w io.Writer, infos []classInfo) error {
	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return fmt.Errorf("encode classes: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
