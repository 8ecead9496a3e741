package nodekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/adapter"
	"github.com/phanxgames/nodekit/engine"
	nodekitmock "github.com/phanxgames/nodekit/mock"
)

// respawner is application code written against capability interfaces only.
type respawner struct {
	hero  nodekit.Node2D
	timer nodekit.Timer
	spawn engine.Vec2
}

func (r *respawner) die() {
	r.hero.Hide()
	r.timer.SetOneShot(true)
	r.timer.Start(2)
}

func (r *respawner) onTimeout() {
	r.hero.SetGlobalPosition(r.spawn)
	r.hero.Show()
}

func TestRespawnerWithMocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	hero := nodekitmock.NewMockNode2D(ctrl)
	timer := nodekitmock.NewMockTimer(ctrl)
	r := &respawner{hero: hero, timer: timer, spawn: engine.Vec2{X: 5, Y: 6}}

	gomock.InOrder(
		hero.EXPECT().Hide(),
		timer.EXPECT().SetOneShot(true),
		timer.EXPECT().Start(2.0),
	)
	r.die()

	hero.EXPECT().SetGlobalPosition(engine.Vec2{X: 5, Y: 6})
	hero.EXPECT().Show()
	r.onTimeout()
}

func TestRespawnerWithAdapters(t *testing.T) {
	tree := engine.NewSceneTree()
	heroNode := engine.NewSprite2D("hero")
	timerNode := engine.NewTimer("respawn")
	tree.Root().AddChild(heroNode)
	tree.Root().AddChild(timerNode)

	r := &respawner{
		hero:  adapter.NewSprite2D(heroNode),
		timer: adapter.NewTimer(timerNode),
		spawn: engine.Vec2{X: 5, Y: 6},
	}
	r.timer.Connect(engine.SignalTimeout, func(...any) { r.onTimeout() })

	heroNode.SetPosition(engine.Vec2{X: 100, Y: 100})
	r.die()
	assert.False(t, heroNode.IsVisible())

	tree.Process(1)
	assert.False(t, heroNode.IsVisible())
	tree.Process(1)
	assert.True(t, heroNode.IsVisible())
	assert.Equal(t, engine.Vec2{X: 5, Y: 6}, heroNode.Position())
	assert.True(t, timerNode.IsStopped())
}

func TestMockNodeSatisfiesInterfaces(t *testing.T) {
	ctrl := gomock.NewController(t)

	var n nodekit.Node = nodekitmock.NewMockNode(ctrl)
	var n2 nodekit.Node2D = nodekitmock.NewMockNode2D(ctrl)
	var tm nodekit.Timer = nodekitmock.NewMockTimer(ctrl)
	var ap nodekit.AnimationPlayer = nodekitmock.NewMockAnimationPlayer(ctrl)
	require.NotNil(t, n)
	require.NotNil(t, n2)
	require.NotNil(t, tm)
	require.NotNil(t, ap)
}

func TestMockAnimationPlayerFake(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := nodekitmock.NewMockAnimationPlayer(ctrl)

	player.EXPECT().HasAnimation("walk").Return(true)
	player.EXPECT().Play("walk")
	player.EXPECT().EmitSignal(engine.SignalAnimationFinished, "walk")

	if player.HasAnimation("walk") {
		player.Play("walk")
	}
	player.EmitSignal(engine.SignalAnimationFinished, "walk")
}
