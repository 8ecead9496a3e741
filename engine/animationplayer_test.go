package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// slide returns an animation moving a value from 0 to 100 over one second.
func slide(apply func(float64)) *Animation {
	a := NewAnimation()
	a.AddTrack(Track{From: 0, To: 100, Duration: 1, Apply: apply})
	return a
}

func TestAnimationAddTrack(t *testing.T) {
	a := NewAnimation()
	apply := func(float64) {}
	assert.Panics(t, func() { a.AddTrack(Track{Duration: 1}) }, "nil Apply")
	assert.Panics(t, func() { a.AddTrack(Track{Apply: apply}) }, "zero duration")
	assert.Panics(t, func() { a.AddTrack(Track{Duration: 1, Start: -1, Apply: apply}) }, "negative start")

	a.AddTrack(Track{Duration: 1, Apply: apply})
	a.AddTrack(Track{Start: 0.5, Duration: 2, Apply: apply})
	assert.Equal(t, 2, a.TrackCount())
	assert.Equal(t, 2.5, a.Length())
	assert.NotNil(t, a.tracks[0].Ease, "missing Ease should default to linear")
}

func TestAnimationPlayerUnknown(t *testing.T) {
	p := NewAnimationPlayer("anim")
	assert.PanicsWithValue(t, `engine: unknown animation "walk"`, func() { p.Play("walk") })
	assert.Panics(t, func() { p.Seek(1) }, "Seek without animation")
	assert.Panics(t, func() { p.AddAnimation("x", nil) }, "nil animation")
}

func TestAnimationPlayerPlays(t *testing.T) {
	n := NewNode2D("n")
	p := NewAnimationPlayer("anim")
	p.AddAnimation("move", slide(func(v float64) { n.SetPosition(Vec2{v, 0}) }))
	n.SetPosition(Vec2{-1, -1})

	var finished []any
	p.Connect(SignalAnimationFinished, func(args ...any) { finished = args })

	p.Play("move")
	assert.Equal(t, Vec2{0, 0}, n.Position(), "Play should apply the first frame")
	p.internalProcess(0.5)
	assert.InDelta(t, 50, n.Position().X, epsilon, "x at 0.5s")
	p.internalProcess(0.75)
	assert.InDelta(t, 100, n.Position().X, epsilon, "x at end")
	assert.False(t, p.IsPlaying())
	assert.Equal(t, 1.0, p.CurrentAnimationPosition(), "stopped at the end")
	assert.Equal(t, []any{"move"}, finished)

	// Playing a finished animation again restarts it.
	p.Play("move")
	assert.Zero(t, p.CurrentAnimationPosition())
	assert.Zero(t, n.Position().X)
}

func TestAnimationPlayerTrackStart(t *testing.T) {
	first, second := math.NaN(), math.NaN()
	a := NewAnimation()
	a.AddTrack(Track{From: 0, To: 10, Duration: 1, Apply: func(v float64) { first = v }})
	a.AddTrack(Track{From: 10, To: 20, Start: 1, Duration: 1, Apply: func(v float64) { second = v }})
	p := NewAnimationPlayer("anim")
	p.AddAnimation("seq", a)
	p.Play("seq")

	p.internalProcess(0.5)
	assert.InDelta(t, 5, first, epsilon, "first at 0.5s")
	assert.True(t, math.IsNaN(second), "second track should not have started")
	p.internalProcess(1)
	assert.InDelta(t, 10, first, epsilon, "first at 1.5s")
	assert.InDelta(t, 15, second, epsilon, "second at 1.5s")
}

func TestAnimationPlayerLoopAndSpeed(t *testing.T) {
	var v float64
	a := slide(func(x float64) { v = x })
	a.SetLoop(true)
	p := NewAnimationPlayer("anim")
	p.AddAnimation("spin", a)
	finished := 0
	p.Connect(SignalAnimationFinished, func(...any) { finished++ })
	p.Play("spin")

	p.internalProcess(1.25)
	assert.InDelta(t, 0.25, p.CurrentAnimationPosition(), epsilon, "looped position")
	assert.InDelta(t, 25, v, epsilon)
	assert.Equal(t, 0, finished, "looping animation should never finish")
	assert.True(t, p.IsPlaying())

	p.SetSpeedScale(2)
	p.internalProcess(0.125)
	assert.InDelta(t, 0.5, p.CurrentAnimationPosition(), epsilon, "position at speed 2")
	assert.InDelta(t, 50, v, epsilon)
}

func TestAnimationPlayerSeekPauseStop(t *testing.T) {
	var v float64
	p := NewAnimationPlayer("anim")
	p.AddAnimation("move", slide(func(x float64) { v = x }))
	p.Play("move")

	p.Seek(0.75)
	assert.InDelta(t, 75, v, epsilon, "Seek should apply tracks")
	p.Seek(9)
	assert.Equal(t, 1.0, p.CurrentAnimationPosition(), "Seek should clamp to length")
	p.Seek(-1)
	assert.Zero(t, p.CurrentAnimationPosition(), "Seek should clamp to 0")

	p.Seek(0.25)
	p.Pause()
	p.internalProcess(1)
	assert.Equal(t, 0.25, p.CurrentAnimationPosition(), "paused player should not advance")
	p.Play("")
	assert.True(t, p.IsPlaying(), `Play("") should resume`)
	assert.Equal(t, 0.25, p.CurrentAnimationPosition(), `Play("") should resume in place`)

	p.Stop()
	assert.False(t, p.IsPlaying())
	assert.Zero(t, p.CurrentAnimationPosition(), "Stop should rewind")
}

func TestAnimationPlayerLibrary(t *testing.T) {
	p := NewAnimationPlayer("anim")
	noop := func(float64) {}
	p.AddAnimation("walk", slide(noop))
	p.AddAnimation("idle", slide(noop))
	assert.Equal(t, []string{"idle", "walk"}, p.GetAnimationList())
	assert.True(t, p.HasAnimation("walk"))
	assert.Nil(t, p.GetAnimation("run"))

	p.Play("walk")
	p.RemoveAnimation("walk")
	assert.False(t, p.IsPlaying(), "removing the current animation should stop playback")
	assert.Empty(t, p.CurrentAnimation())
}

func TestAnimationPlayerReplaceCurrent(t *testing.T) {
	var v float64
	p := NewAnimationPlayer("anim")
	p.AddAnimation("move", slide(func(x float64) { v = x }))
	p.Play("move")

	a := NewAnimation()
	a.AddTrack(Track{From: 0, To: 10, Duration: 1, Apply: func(x float64) { v = x }})
	p.AddAnimation("move", a)
	p.internalProcess(0.5)
	assert.InDelta(t, 5, v, epsilon, "value should come from the replacement")
}

func TestAnimationPlayerInTree(t *testing.T) {
	tree := NewSceneTree()
	n := NewNode2D("n")
	p := NewAnimationPlayer("anim")
	n.AddChild(p)
	tree.Root().AddChild(n)
	p.AddAnimation("fade", slide(func(v float64) { n.SetModulate(Color{1, 1, 1, v / 100}) }))
	p.Play("fade")

	tree.Process(0.5)
	assert.InDelta(t, 0.5, n.Modulate().A, epsilon)
}
