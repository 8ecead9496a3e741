package adapter

import (
	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var _ nodekit.AnimationPlayer = (*AnimationPlayer)(nil)

// AnimationPlayer forwards nodekit.AnimationPlayer to an *engine.AnimationPlayer.
type AnimationPlayer struct {
	*Node
	player *engine.AnimationPlayer
}

// NewAnimationPlayer wraps n without checking it.
func NewAnimationPlayer(n *engine.AnimationPlayer) *AnimationPlayer {
	return &AnimationPlayer{Node: NewNode(&n.Node), player: n}
}

// AdaptAnimationPlayer wraps inst if it is a AnimationPlayer.
func AdaptAnimationPlayer(inst engine.Instance) (*AnimationPlayer, error) {
	c, err := narrow[interface{ AsAnimationPlayer() *engine.AnimationPlayer }](inst, engine.ClassAnimationPlayer)
	if err != nil {
		return nil, err
	}
	return NewAnimationPlayer(c.AsAnimationPlayer()), nil
}

func (a *AnimationPlayer) AddAnimation(name string, anim *engine.Animation) { a.player.AddAnimation(name, anim) }
func (a *AnimationPlayer) RemoveAnimation(name string)                      { a.player.RemoveAnimation(name) }
func (a *AnimationPlayer) HasAnimation(name string) bool                    { return a.player.HasAnimation(name) }
func (a *AnimationPlayer) GetAnimation(name string) *engine.Animation       { return a.player.GetAnimation(name) }
func (a *AnimationPlayer) GetAnimationList() []string                       { return a.player.GetAnimationList() }
func (a *AnimationPlayer) Play(name string)                                 { a.player.Play(name) }
func (a *AnimationPlayer) Pause()                                           { a.player.Pause() }
func (a *AnimationPlayer) Stop()                                            { a.player.Stop() }
func (a *AnimationPlayer) IsPlaying() bool                                  { return a.player.IsPlaying() }
func (a *AnimationPlayer) CurrentAnimation() string                         { return a.player.CurrentAnimation() }
func (a *AnimationPlayer) CurrentAnimationPosition() float64                { return a.player.CurrentAnimationPosition() }
func (a *AnimationPlayer) Seek(sec float64)                                 { a.player.Seek(sec) }
func (a *AnimationPlayer) SpeedScale() float64                              { return a.player.SpeedScale() }
func (a *AnimationPlayer) SetSpeedScale(scale float64)                      { a.player.SetSpeedScale(scale) }
