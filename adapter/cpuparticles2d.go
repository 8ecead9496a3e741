package adapter

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var _ nodekit.CPUParticles2D = (*CPUParticles2D)(nil)

// CPUParticles2D forwards nodekit.CPUParticles2D to an *engine.CPUParticles2D.
type CPUParticles2D struct {
	*Node2D
	particles *engine.CPUParticles2D
}

// NewCPUParticles2D wraps n without checking it.
func NewCPUParticles2D(n *engine.CPUParticles2D) *CPUParticles2D {
	return &CPUParticles2D{Node2D: NewNode2D(&n.Node2D), particles: n}
}

// AdaptCPUParticles2D wraps inst if it is a CPUParticles2D.
func AdaptCPUParticles2D(inst engine.Instance) (*CPUParticles2D, error) {
	c, err := narrow[interface{ AsCPUParticles2D() *engine.CPUParticles2D }](inst, engine.ClassCPUParticles2D)
	if err != nil {
		return nil, err
	}
	return NewCPUParticles2D(c.AsCPUParticles2D()), nil
}

func (a *CPUParticles2D) Emitting() bool                      { return a.particles.Emitting() }
func (a *CPUParticles2D) SetEmitting(emitting bool)           { a.particles.SetEmitting(emitting) }
func (a *CPUParticles2D) Amount() int                         { return a.particles.Amount() }
func (a *CPUParticles2D) SetAmount(amount int)                { a.particles.SetAmount(amount) }
func (a *CPUParticles2D) OneShot() bool                       { return a.particles.OneShot() }
func (a *CPUParticles2D) SetOneShot(oneShot bool)             { a.particles.SetOneShot(oneShot) }
func (a *CPUParticles2D) Config() *engine.ParticleConfig      { return a.particles.Config() }
func (a *CPUParticles2D) SetConfig(cfg engine.ParticleConfig) { a.particles.SetConfig(cfg) }
func (a *CPUParticles2D) Texture() *ebiten.Image              { return a.particles.Texture() }
func (a *CPUParticles2D) SetTexture(img *ebiten.Image)        { a.particles.SetTexture(img) }
func (a *CPUParticles2D) Restart()                            { a.particles.Restart() }
func (a *CPUParticles2D) AliveCount() int                     { return a.particles.AliveCount() }
