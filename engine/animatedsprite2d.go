package engine

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultAnimation is the animation every SpriteFrames starts with.
const DefaultAnimation = "default"

type frameAnimation struct {
	frames []*ebiten.Image
	fps    float64
	loop   bool
}

// SpriteFrames is a library of named frame animations shared by
// AnimatedSprite2D nodes.
type SpriteFrames struct {
	anims map[string]*frameAnimation
}

// NewSpriteFrames creates a library holding an empty looping "default"
// animation at 5 frames per second.
func NewSpriteFrames() *SpriteFrames {
	sf := &SpriteFrames{anims: make(map[string]*frameAnimation)}
	sf.AddAnimation(DefaultAnimation)
	return sf
}

func (sf *SpriteFrames) get(anim string) *frameAnimation {
	a, ok := sf.anims[anim]
	if !ok {
		panic(fmt.Sprintf("engine: unknown animation %q", anim))
	}
	return a
}

// AddAnimation creates an empty animation. Existing animations are kept.
func (sf *SpriteFrames) AddAnimation(anim string) {
	if _, ok := sf.anims[anim]; ok {
		return
	}
	sf.anims[anim] = &frameAnimation{fps: 5, loop: true}
}

// RemoveAnimation deletes an animation.
func (sf *SpriteFrames) RemoveAnimation(anim string) {
	delete(sf.anims, anim)
}

// HasAnimation reports whether anim exists.
func (sf *SpriteFrames) HasAnimation(anim string) bool {
	_, ok := sf.anims[anim]
	return ok
}

// GetAnimationNames returns every animation name in sorted order.
func (sf *SpriteFrames) GetAnimationNames() []string {
	names := make([]string, 0, len(sf.anims))
	for k := range sf.anims {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// AddFrame appends a frame to anim. Panics if anim does not exist.
func (sf *SpriteFrames) AddFrame(anim string, img *ebiten.Image) {
	a := sf.get(anim)
	a.frames = append(a.frames, img)
}

// GetFrameCount returns the number of frames in anim.
func (sf *SpriteFrames) GetFrameCount(anim string) int {
	return len(sf.get(anim).frames)
}

// GetFrame returns frame idx of anim. Panics when out of range.
func (sf *SpriteFrames) GetFrame(anim string, idx int) *ebiten.Image {
	a := sf.get(anim)
	if idx < 0 || idx >= len(a.frames) {
		panic("engine: frame index out of range")
	}
	return a.frames[idx]
}

// AnimationSpeed returns the playback rate of anim in frames per second.
func (sf *SpriteFrames) AnimationSpeed(anim string) float64 {
	return sf.get(anim).fps
}

// SetAnimationSpeed sets the playback rate of anim in frames per second.
func (sf *SpriteFrames) SetAnimationSpeed(anim string, fps float64) {
	sf.get(anim).fps = fps
}

// AnimationLoop reports whether anim restarts after its last frame.
func (sf *SpriteFrames) AnimationLoop(anim string) bool {
	return sf.get(anim).loop
}

// SetAnimationLoop sets whether anim restarts after its last frame.
func (sf *SpriteFrames) SetAnimationLoop(anim string, loop bool) {
	sf.get(anim).loop = loop
}

// AnimatedSprite2D plays frame animations from a SpriteFrames library.
type AnimatedSprite2D struct {
	Node2D

	frames     *SpriteFrames
	animation  string
	frame      int
	progress   float64
	speedScale float64
	playing    bool

	centered     bool
	offset       Vec2
	flipH, flipV bool
}

// NewAnimatedSprite2D creates a stopped, centered animated sprite.
func NewAnimatedSprite2D(name string) *AnimatedSprite2D {
	s := &AnimatedSprite2D{}
	s.initNode2D(s, ClassAnimatedSprite2D, name)
	s.animation = DefaultAnimation
	s.speedScale = 1
	s.centered = true
	return s
}

// AsAnimatedSprite2D returns s.
func (s *AnimatedSprite2D) AsAnimatedSprite2D() *AnimatedSprite2D { return s }

// SpriteFrames returns the animation library, or nil.
func (s *AnimatedSprite2D) SpriteFrames() *SpriteFrames {
	return s.frames
}

// SetSpriteFrames replaces the animation library and rewinds to frame 0.
func (s *AnimatedSprite2D) SetSpriteFrames(sf *SpriteFrames) {
	s.frames = sf
	s.frame = 0
	s.progress = 0
}

// Animation returns the current animation name.
func (s *AnimatedSprite2D) Animation() string {
	return s.animation
}

// SetAnimation switches animation without changing the playing state.
func (s *AnimatedSprite2D) SetAnimation(anim string) {
	if s.animation == anim {
		return
	}
	s.animation = anim
	s.frame = 0
	s.progress = 0
}

// Frame returns the current frame index.
func (s *AnimatedSprite2D) Frame() int {
	return s.frame
}

// SetFrame jumps to a frame of the current animation. Panics when out of range.
func (s *AnimatedSprite2D) SetFrame(frame int) {
	if frame < 0 || frame >= s.frameCount() {
		panic("engine: AnimatedSprite2D frame out of range")
	}
	s.progress = 0
	if s.frame == frame {
		return
	}
	s.frame = frame
	s.EmitSignal(SignalFrameChanged)
}

// SpeedScale returns the playback speed multiplier.
func (s *AnimatedSprite2D) SpeedScale() float64 {
	return s.speedScale
}

// SetSpeedScale sets the playback speed multiplier.
func (s *AnimatedSprite2D) SetSpeedScale(scale float64) {
	s.speedScale = scale
}

// Play starts anim. An empty name resumes the current animation. Panics when
// the library is missing or does not contain anim.
func (s *AnimatedSprite2D) Play(anim string) {
	if anim == "" {
		anim = s.animation
	}
	if s.frames == nil || !s.frames.HasAnimation(anim) {
		panic(fmt.Sprintf("engine: unknown animation %q", anim))
	}
	s.SetAnimation(anim)
	s.playing = true
}

// Pause stops playback, keeping the current frame.
func (s *AnimatedSprite2D) Pause() {
	s.playing = false
}

// Stop stops playback and rewinds to frame 0.
func (s *AnimatedSprite2D) Stop() {
	s.playing = false
	s.frame = 0
	s.progress = 0
}

// IsPlaying reports whether the animation is advancing.
func (s *AnimatedSprite2D) IsPlaying() bool {
	return s.playing
}

// Centered reports whether frames are drawn centered on the node origin.
func (s *AnimatedSprite2D) Centered() bool {
	return s.centered
}

// SetCentered sets whether frames are drawn centered on the node origin.
func (s *AnimatedSprite2D) SetCentered(c bool) {
	s.centered = c
}

// Offset returns the drawing offset.
func (s *AnimatedSprite2D) Offset() Vec2 {
	return s.offset
}

// SetOffset sets the drawing offset.
func (s *AnimatedSprite2D) SetOffset(o Vec2) {
	s.offset = o
}

// FlipH reports whether frames are mirrored horizontally.
func (s *AnimatedSprite2D) FlipH() bool {
	return s.flipH
}

// SetFlipH sets horizontal mirroring.
func (s *AnimatedSprite2D) SetFlipH(f bool) {
	s.flipH = f
}

// FlipV reports whether frames are mirrored vertically.
func (s *AnimatedSprite2D) FlipV() bool {
	return s.flipV
}

// SetFlipV sets vertical mirroring.
func (s *AnimatedSprite2D) SetFlipV(f bool) {
	s.flipV = f
}

func (s *AnimatedSprite2D) frameCount() int {
	if s.frames == nil || !s.frames.HasAnimation(s.animation) {
		return 0
	}
	return s.frames.GetFrameCount(s.animation)
}

func (s *AnimatedSprite2D) currentImage() *ebiten.Image {
	if s.frame >= s.frameCount() {
		return nil
	}
	return s.frames.GetFrame(s.animation, s.frame)
}

func (s *AnimatedSprite2D) internalProcess(delta float64) {
	if !s.playing {
		return
	}
	count := s.frameCount()
	if count == 0 {
		return
	}
	fps := s.frames.AnimationSpeed(s.animation) * s.speedScale
	if fps <= 0 {
		return
	}
	s.progress += delta * fps
	for s.progress >= 1 {
		s.progress--
		switch {
		case s.frame+1 < count:
			s.frame++
			s.EmitSignal(SignalFrameChanged)
		case s.frames.AnimationLoop(s.animation):
			s.frame = 0
			s.EmitSignal(SignalFrameChanged)
		default:
			s.playing = false
			s.progress = 0
			s.EmitSignal(SignalAnimationFinished, s.animation)
			return
		}
	}
}

func (s *AnimatedSprite2D) draw(target *ebiten.Image, view Transform2D) {
	img := s.currentImage()
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	dst := Rect{X: s.offset.X, Y: s.offset.Y, Width: w, Height: h}
	if s.centered {
		dst.X -= w / 2
		dst.Y -= h / 2
	}
	drawTexture(target, img, dst, s.flipH, s.flipV,
		view.Mul(s.GetGlobalTransform()), s.globalModulate(), s.blendMode)
}
