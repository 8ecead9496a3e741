package engine

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the fixed update rate. Zero keeps ebiten's default of 60.
	TPS int
	// Debug enables SceneTree debug checks.
	Debug bool
	// ShowFPS prints the measured FPS and TPS in the top-left corner.
	ShowFPS bool
	// ClearColor fills the window each frame. The zero value is black.
	ClearColor Color
}

// game adapts a SceneTree to ebiten.Game.
type game struct {
	tree    *SceneTree
	cfg     RunConfig
	showFPS bool
}

// Run opens a window and drives tree until the window closes. Each tick calls
// tree.Process with a fixed 1/TPS delta.
func Run(tree *SceneTree, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("engine: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	tree.SetDebugMode(cfg.Debug)
	tree.ClearColor = cfg.ClearColor
	if tree.ClearColor == (Color{}) {
		tree.ClearColor = Color{0, 0, 0, 1}
	}
	logger.Debug("starting run loop", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "tps", ebiten.TPS())
	if err := ebiten.RunGame(&game{tree: tree, cfg: cfg, showFPS: cfg.ShowFPS}); err != nil {
		return fmt.Errorf("engine: run: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	g.tree.Process(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.tree.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
