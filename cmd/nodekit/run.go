package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phanxgames/nodekit/engine"
	"github.com/phanxgames/nodekit/scenefile"
)

var (
	runWidth   int
	runHeight  int
	runShowFPS bool
)

var runCmd = &cobra.Command{
	Use:   "run <scene>",
	Short: "Run a scene file in a window",
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
		tree := engine.NewSceneTree()
		tree.Root().AddChild(root)

		cfg := runConfig(scene, args[0])
		slog.Info("running scene", "path", args[0], "width", cfg.Width, "height", cfg.Height)
		return engine.Run(tree, cfg)
	},
}

func init() {
	runCmd.Flags().IntVar(&runWidth, "width", 0, "window width (overrides the scene file)")
	runCmd.Flags().IntVar(&runHeight, "height", 0, "window height (overrides the scene file)")
	runCmd.Flags().BoolVar(&runShowFPS, "fps", false, "show FPS and TPS")
}

// runConfig merges the scene's window section with command line flags.
// Missing sizes default to 640x480 and a missing title to the file name.
func runConfig(scene *scenefile.Scene, path string) engine.RunConfig {
	cfg := scene.RunConfig()
	if runWidth > 0 {
		cfg.Width = runWidth
	}
	if runHeight > 0 {
		cfg.Height = runHeight
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = path
	}
	cfg.Debug = cfg.Debug || debug
	cfg.ShowFPS = cfg.ShowFPS || runShowFPS
	return cfg
}
