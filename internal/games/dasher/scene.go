package dasher

import "github.com/vovakirdan/dasher/internal/config"

// Layer is one parallax background strip.
type Layer struct {
	Name   string
	Span   float64 // Drawn width: texture width times the scene scale
	Rate   float64 // px/s scrolled left
	Offset float64 // Current x of the first copy, in (-Span, 0]
}

// Placement is one draw call of a layer texture.
type Placement struct {
	Layer int     // Index into Scene.Layers()
	X     float64 // Left edge in world pixels
}

// Scene keeps the parallax scroll state. It is purely visual and never
// reads gameplay state.
type Scene struct {
	layers []Layer
	scale  float64
}

// NewScene creates the layers from config, all at offset 0.
func NewScene(cfg config.SceneConfig) *Scene {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	s := &Scene{
		layers: make([]Layer, len(cfg.Layers)),
		scale:  scale,
	}
	for i, l := range cfg.Layers {
		s.layers[i] = Layer{Name: l.Name, Span: l.Width * scale, Rate: l.Rate}
	}
	return s
}

// Scroll moves every layer left by its rate. A layer whose offset reaches
// -Span snaps back to exactly 0 on that tick.
func (s *Scene) Scroll(dt float64) {
	dt = sanitizeDelta(dt)
	for i := range s.layers {
		l := &s.layers[i]
		l.Offset -= l.Rate * dt
		if l.Offset <= -l.Span {
			l.Offset = 0
		}
	}
}

// Layers returns the layers back to front.
func (s *Scene) Layers() []Layer {
	return s.layers
}

// Scale returns the texture draw scale.
func (s *Scene) Scale() float64 {
	return s.scale
}

// DrawPlan returns two placements per layer, back to front: one at the
// offset and one right after it, which together tile the strip seamlessly.
func (s *Scene) DrawPlan() []Placement {
	plan := make([]Placement, 0, 2*len(s.layers))
	for i, l := range s.layers {
		plan = append(plan,
			Placement{Layer: i, X: l.Offset},
			Placement{Layer: i, X: l.Offset + l.Span},
		)
	}
	return plan
}
