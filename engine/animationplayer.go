package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Track interpolates one float value from From to To and writes it through Apply.
type Track struct {
	From, To float64
	// Start is the offset of the track inside the animation, in seconds.
	Start float64
	// Duration of the interpolation in seconds.
	Duration float64
	// Ease defaults to ease.Linear.
	Ease  ease.TweenFunc
	Apply func(v float64)
}

// Animation is a set of tracks played together by an AnimationPlayer.
type Animation struct {
	tracks []Track
	loop   bool
}

// NewAnimation creates an empty, non-looping animation.
func NewAnimation() *Animation {
	return &Animation{}
}

// AddTrack appends a track. Panics if Apply is nil or Duration <= 0.
func (a *Animation) AddTrack(t Track) {
	if t.Apply == nil {
		panic("engine: animation track needs an Apply func")
	}
	if t.Duration <= 0 {
		panic("engine: animation track duration must be positive")
	}
	if t.Start < 0 {
		panic("engine: animation track start must be non-negative")
	}
	if t.Ease == nil {
		t.Ease = ease.Linear
	}
	a.tracks = append(a.tracks, t)
}

// TrackCount returns the number of tracks.
func (a *Animation) TrackCount() int {
	return len(a.tracks)
}

// Length returns the end time of the last track in seconds.
func (a *Animation) Length() float64 {
	var l float64
	for _, t := range a.tracks {
		l = max(l, t.Start+t.Duration)
	}
	return l
}

// Loop reports whether playback wraps around at Length.
func (a *Animation) Loop() bool {
	return a.loop
}

// SetLoop sets whether playback wraps around at Length.
func (a *Animation) SetLoop(loop bool) {
	a.loop = loop
}

// AnimationPlayer plays named Animations, driving their tracks with gween tweens.
type AnimationPlayer struct {
	Node

	anims      map[string]*Animation
	current    string
	tweens     []*gween.Tween
	position   float64
	playing    bool
	speedScale float64
}

// NewAnimationPlayer creates a player with no animations.
func NewAnimationPlayer(name string) *AnimationPlayer {
	p := &AnimationPlayer{}
	p.initNode(p, ClassAnimationPlayer, name)
	p.anims = make(map[string]*Animation)
	p.speedScale = 1
	return p
}

// AsAnimationPlayer returns p.
func (p *AnimationPlayer) AsAnimationPlayer() *AnimationPlayer { return p }

// AddAnimation registers anim under name, replacing any previous one.
// Panics if anim is nil.
func (p *AnimationPlayer) AddAnimation(name string, anim *Animation) {
	if anim == nil {
		panic("engine: cannot add nil animation")
	}
	p.anims[name] = anim
	if name == p.current {
		p.buildTweens()
	}
}

// RemoveAnimation unregisters name. Removing the current animation stops playback.
func (p *AnimationPlayer) RemoveAnimation(name string) {
	delete(p.anims, name)
	if name == p.current {
		p.playing = false
		p.current = ""
		p.position = 0
		p.tweens = nil
	}
}

// HasAnimation reports whether name is registered.
func (p *AnimationPlayer) HasAnimation(name string) bool {
	_, ok := p.anims[name]
	return ok
}

// GetAnimation returns the animation registered under name, or nil.
func (p *AnimationPlayer) GetAnimation(name string) *Animation {
	return p.anims[name]
}

// GetAnimationList returns the registered names in sorted order.
func (p *AnimationPlayer) GetAnimationList() []string {
	names := make([]string, 0, len(p.anims))
	for k := range p.anims {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Play starts name from the beginning, or resumes it when it is already the
// current animation and has not reached its end. An empty name resumes the
// current animation. Panics for unknown names.
func (p *AnimationPlayer) Play(name string) {
	if name == "" {
		name = p.current
	}
	anim, ok := p.anims[name]
	if !ok {
		panic(fmt.Sprintf("engine: unknown animation %q", name))
	}
	if name != p.current || (!anim.loop && p.position >= anim.Length()) {
		p.current = name
		p.position = 0
		p.buildTweens()
		p.apply()
	}
	p.playing = true
}

// Pause halts playback at the current position.
func (p *AnimationPlayer) Pause() {
	p.playing = false
}

// Stop halts playback and rewinds to the start.
func (p *AnimationPlayer) Stop() {
	p.playing = false
	p.position = 0
}

// IsPlaying reports whether playback is advancing.
func (p *AnimationPlayer) IsPlaying() bool {
	return p.playing
}

// CurrentAnimation returns the name of the current animation, or "".
func (p *AnimationPlayer) CurrentAnimation() string {
	return p.current
}

// CurrentAnimationPosition returns the playback position in seconds.
func (p *AnimationPlayer) CurrentAnimationPosition() float64 {
	return p.position
}

// Seek moves the playback position, clamped to the animation length, and
// applies the track values for it. Panics without a current animation.
func (p *AnimationPlayer) Seek(sec float64) {
	anim, ok := p.anims[p.current]
	if !ok {
		panic("engine: Seek without a current animation")
	}
	p.position = math.Max(0, math.Min(sec, anim.Length()))
	p.apply()
}

// SpeedScale returns the playback speed multiplier.
func (p *AnimationPlayer) SpeedScale() float64 {
	return p.speedScale
}

// SetSpeedScale sets the playback speed multiplier.
func (p *AnimationPlayer) SetSpeedScale(scale float64) {
	p.speedScale = scale
}

func (p *AnimationPlayer) buildTweens() {
	anim := p.anims[p.current]
	p.tweens = p.tweens[:0]
	if anim == nil {
		return
	}
	for _, t := range anim.tracks {
		p.tweens = append(p.tweens, gween.New(float32(t.From), float32(t.To), float32(t.Duration), t.Ease))
	}
}

// apply writes every started track's value for the current position.
func (p *AnimationPlayer) apply() {
	anim := p.anims[p.current]
	if anim == nil {
		return
	}
	if len(p.tweens) != len(anim.tracks) {
		p.buildTweens()
	}
	for i, t := range anim.tracks {
		local := p.position - t.Start
		if local < 0 {
			continue
		}
		val, _ := p.tweens[i].Set(float32(math.Min(local, t.Duration)))
		t.Apply(float64(val))
	}
}

func (p *AnimationPlayer) internalProcess(delta float64) {
	if !p.playing {
		return
	}
	anim := p.anims[p.current]
	length := anim.Length()
	p.position += delta * p.speedScale
	if p.position >= length {
		if anim.loop && length > 0 {
			p.position = math.Mod(p.position, length)
		} else {
			p.position = length
			p.apply()
			p.playing = false
			p.EmitSignal(SignalAnimationFinished, p.current)
			return
		}
	}
	p.apply()
}
