package engine

import (
	"fmt"
	"log/slog"
)

// logger receives engine diagnostics. Messages below Warn are only produced
// in debug mode.
var logger = slog.Default()

// SetLogger replaces the logger used for engine diagnostics. A nil logger
// restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// globalDebug holds the most recent debug setting, from SetDebugMode or
// SceneTree.SetDebugMode, so that node operations (which may run outside a
// tree) can check it cheaply. Only valid with a single SceneTree; multiple
// trees with differing debug modes reflect whichever was set last.
var globalDebug bool

// SetDebugMode toggles debug checks for node operations and for trees created
// afterwards. SceneTree.SetDebugMode overrides it per tree.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug checks are active for node operations.
func DebugMode() bool {
	return globalDebug
}

// debugCheckFreed panics with a descriptive message when a freed node is used
// in a tree operation. Callers skip this entirely outside debug mode.
func debugCheckFreed(n *Node, op string) {
	if n.freed {
		panic(fmt.Sprintf("engine debug: %s on freed node %q (%s)", op, n.name, n.class))
	}
}

// debugMaxTreeDepth is the depth above which AddChild logs a warning.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = parentNode(p) {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold",
			"node", n.name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugMaxChildCount is the child count above which AddChild logs a warning.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.Warn("child count exceeds threshold",
			"node", n.name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}
