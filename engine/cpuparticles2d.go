package engine

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// particle holds per-particle simulation state. Managed by CPUParticles2D.
type particle struct {
	x, y       float64
	vx, vy     float64
	life       float64 // remaining lifetime in seconds
	maxLife    float64 // initial lifetime (for computing t)
	startScale float64
	endScale   float64
	scale      float64
	startAlpha float64
	endAlpha   float64
	alpha      float64
	color      Color
}

// ParticleConfig controls how particles are spawned and behave.
type ParticleConfig struct {
	// EmitRate is the number of particles spawned per second. Zero spawns the
	// whole pool at once when emitting starts.
	EmitRate float64
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime Range
	// Speed is the range of initial particle speeds in pixels per second.
	Speed Range
	// Angle is the range of emission angles in radians.
	Angle Range
	// StartScale is the range of scale factors at birth, interpolated to EndScale over lifetime.
	StartScale Range
	// EndScale is the range of scale factors at death.
	EndScale Range
	// StartAlpha is the range of alpha values at birth, interpolated to EndAlpha over lifetime.
	StartAlpha Range
	// EndAlpha is the range of alpha values at death.
	EndAlpha Range
	// Gravity is the constant acceleration applied to all particles.
	Gravity Vec2
	// StartColor is the tint at birth, interpolated to EndColor over lifetime.
	StartColor Color
	// EndColor is the tint at death.
	EndColor Color
	// LocalCoords keeps particles attached to the emitter. When false,
	// particles keep their global position once emitted.
	LocalCoords bool
}

// DefaultParticleConfig returns a config emitting 16 white particles per second.
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		EmitRate:    16,
		Lifetime:    Range{1, 1},
		Speed:       Range{50, 50},
		Angle:       Range{0, 2 * math.Pi},
		StartScale:  Range{1, 1},
		EndScale:    Range{1, 1},
		StartAlpha:  Range{1, 1},
		EndAlpha:    Range{0, 0},
		StartColor:  ColorWhite,
		EndColor:    ColorWhite,
		LocalCoords: true,
	}
}

// CPUParticles2D simulates a fixed pool of particles on the CPU.
type CPUParticles2D struct {
	Node2D

	config    ParticleConfig
	particles []particle
	alive     int
	emitAccum float64
	emitting  bool
	oneShot   bool
	spawned   int
	texture   *ebiten.Image
}

// NewCPUParticles2D creates an idle emitter with an 8-particle pool.
func NewCPUParticles2D(name string) *CPUParticles2D {
	p := &CPUParticles2D{}
	p.initNode2D(p, ClassCPUParticles2D, name)
	p.config = DefaultParticleConfig()
	p.particles = make([]particle, 8)
	return p
}

// AsCPUParticles2D returns p.
func (p *CPUParticles2D) AsCPUParticles2D() *CPUParticles2D { return p }

// Emitting reports whether new particles are being spawned.
func (p *CPUParticles2D) Emitting() bool {
	return p.emitting
}

// SetEmitting starts or stops spawning. Existing particles live out.
func (p *CPUParticles2D) SetEmitting(emitting bool) {
	if emitting && !p.emitting {
		p.spawned = 0
		p.emitAccum = 0
	}
	p.emitting = emitting
}

// Amount returns the pool size.
func (p *CPUParticles2D) Amount() int {
	return len(p.particles)
}

// SetAmount resizes the pool and kills all particles. Panics if amount < 1.
func (p *CPUParticles2D) SetAmount(amount int) {
	if amount < 1 {
		panic("engine: CPUParticles2D amount must be at least 1")
	}
	p.particles = make([]particle, amount)
	p.alive = 0
}

// OneShot reports whether the emitter stops after spawning one pool's worth.
func (p *CPUParticles2D) OneShot() bool {
	return p.oneShot
}

// SetOneShot sets one-shot mode.
func (p *CPUParticles2D) SetOneShot(oneShot bool) {
	p.oneShot = oneShot
}

// Config returns a pointer to the emitter config for live tuning.
func (p *CPUParticles2D) Config() *ParticleConfig {
	return &p.config
}

// SetConfig replaces the emitter config.
func (p *CPUParticles2D) SetConfig(cfg ParticleConfig) {
	p.config = cfg
}

// Texture returns the particle texture; nil draws 1x1 white pixels.
func (p *CPUParticles2D) Texture() *ebiten.Image {
	return p.texture
}

// SetTexture sets the particle texture.
func (p *CPUParticles2D) SetTexture(img *ebiten.Image) {
	p.texture = img
}

// Restart kills all particles and starts emitting from scratch.
func (p *CPUParticles2D) Restart() {
	p.alive = 0
	p.emitting = false
	p.SetEmitting(true)
}

// AliveCount returns the number of live particles.
func (p *CPUParticles2D) AliveCount() int {
	return p.alive
}

func (p *CPUParticles2D) internalProcess(delta float64) {
	hadParticles := p.alive > 0
	gx := p.config.Gravity.X * delta
	gy := p.config.Gravity.Y * delta

	// Update existing particles, swap-remove dead ones.
	i := 0
	for i < p.alive {
		pt := &p.particles[i]
		pt.life -= delta
		if pt.life <= 0 {
			p.alive--
			p.particles[i] = p.particles[p.alive]
			continue
		}
		pt.vx += gx
		pt.vy += gy
		pt.x += pt.vx * delta
		pt.y += pt.vy * delta

		t := 1.0 - pt.life/pt.maxLife
		pt.scale = lerp(pt.startScale, pt.endScale, t)
		pt.alpha = lerp(pt.startAlpha, pt.endAlpha, t)
		pt.color = lerpColor(p.config.StartColor, p.config.EndColor, t)
		i++
	}

	if p.emitting {
		if p.config.EmitRate <= 0 {
			p.emitAccum = float64(len(p.particles))
		} else {
			p.emitAccum += p.config.EmitRate * delta
		}
		for p.emitAccum >= 1.0 && p.emitting {
			p.emitAccum -= 1.0
			if p.alive < len(p.particles) {
				p.spawnParticle()
			}
			p.spawned++
			if p.oneShot && p.spawned >= len(p.particles) {
				p.emitting = false
			}
		}
	}

	if p.oneShot && !p.emitting && hadParticles && p.alive == 0 {
		p.EmitSignal(SignalFinished)
	}
}

// spawnParticle initializes the particle at slot p.alive and increments alive.
func (p *CPUParticles2D) spawnParticle() {
	pt := &p.particles[p.alive]

	angle := randomIn(p.config.Angle)
	speed := randomIn(p.config.Speed)
	pt.vx = math.Cos(angle) * speed
	pt.vy = math.Sin(angle) * speed

	if p.config.LocalCoords {
		pt.x, pt.y = 0, 0
	} else {
		g := p.GlobalPosition()
		pt.x, pt.y = g.X, g.Y
	}

	pt.life = randomIn(p.config.Lifetime)
	if pt.life <= 0 {
		pt.life = 1.0
	}
	pt.maxLife = pt.life

	pt.startScale = randomIn(p.config.StartScale)
	pt.endScale = randomIn(p.config.EndScale)
	pt.scale = pt.startScale

	pt.startAlpha = randomIn(p.config.StartAlpha)
	pt.endAlpha = randomIn(p.config.EndAlpha)
	pt.alpha = pt.startAlpha
	pt.color = p.config.StartColor

	p.alive++
}

func (p *CPUParticles2D) draw(target *ebiten.Image, view Transform2D) {
	if p.alive == 0 {
		return
	}
	img := p.texture
	if img == nil {
		img = ensureWhitePixel()
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	base := view
	if p.config.LocalCoords {
		base = view.Mul(p.GetGlobalTransform())
	}
	baseGeoM := base.GeoM()
	mod := p.globalModulate()

	var op ebiten.DrawImageOptions
	op.Blend = p.blendMode.EbitenBlend()
	for i := 0; i < p.alive; i++ {
		pt := &p.particles[i]
		op.GeoM.Reset()
		// Per-particle scale around the texture center.
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Scale(pt.scale, pt.scale)
		op.GeoM.Translate(pt.x, pt.y)
		op.GeoM.Concat(baseGeoM)

		col := pt.color.Mul(mod)
		col.A *= pt.alpha
		applyColor(&op.ColorScale, col)
		target.DrawImage(img, &op)
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpColor(a, b Color, t float64) Color {
	return Color{lerp(a.R, b.R, t), lerp(a.G, b.G, t), lerp(a.B, b.B, t), lerp(a.A, b.A, t)}
}

// randomIn returns a random float64 in [r.Min, r.Max].
func randomIn(r Range) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}
