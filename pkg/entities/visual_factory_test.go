package entities

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// TestNewOrbitParticleRanges 测试轨道粒子参数范围
func TestNewOrbitParticleRanges(t *testing.T) {
	rng := newTestRand()
	cfg := config.DefaultEffectsConfig().Creative.Orbit

	for i := 0; i < 500; i++ {
		p := NewOrbitParticle(rng, cfg, 100, 200)
		if p.Kind != components.ParticleOrbit {
			t.Fatalf("Kind = %v, want orbit", p.Kind)
		}
		if p.X != 100 || p.Y != 200 || p.PrevX != 100 || p.PrevY != 200 {
			t.Fatalf("particle not placed at cursor: %+v", p)
		}
		if p.Theta < 0 || p.Theta >= 2*math.Pi {
			t.Errorf("Theta %v out of [0,2π)", p.Theta)
		}
		if p.Radius < 30 || p.Radius >= 180 {
			t.Errorf("Radius %v out of [30,180)", p.Radius)
		}
		if p.Width < 2 || p.Width >= 5 {
			t.Errorf("Width %v out of [2,5)", p.Width)
		}
		if p.Speed != 0.02 {
			t.Errorf("Speed = %v, want 0.02", p.Speed)
		}
		if p.Color.A != 0xff {
			t.Errorf("color should be opaque: %+v", p.Color)
		}
	}
}

// TestNewFreeParticleRanges 测试自由粒子参数范围
func TestNewFreeParticleRanges(t *testing.T) {
	rng := newTestRand()
	cfg := config.DefaultEffectsConfig().Creative.Free

	for i := 0; i < 500; i++ {
		p := NewFreeParticle(rng, cfg, 0, 0)
		if p.Life != 1.0 {
			t.Fatalf("Life = %v, want 1.0", p.Life)
		}
		if p.VX < -2 || p.VX >= 2 || p.VY < -2 || p.VY >= 2 {
			t.Errorf("velocity (%v,%v) out of [-2,2)", p.VX, p.VY)
		}
		if p.Decay < 0.005 || p.Decay >= 0.025 {
			t.Errorf("Decay %v out of [0.005,0.025)", p.Decay)
		}
		if p.Size < 2 || p.Size >= 6 {
			t.Errorf("Size %v out of [2,6)", p.Size)
		}
	}
}

// TestNewLeafRotationRange 测试树叶旋转范围：结束角落在 [360,720)
func TestNewLeafRotationRange(t *testing.T) {
	rng := newTestRand()
	cfg := config.DefaultEffectsConfig().Ambient.Leaf

	for i := 0; i < 500; i++ {
		leaf := NewLeaf(rng, cfg)
		if leaf.Kind != components.ElementLeaf {
			t.Fatalf("Kind = %v, want leaf", leaf.Kind)
		}
		if leaf.RotStart < 0 || leaf.RotStart >= 360 {
			t.Errorf("RotStart %v out of [0,360)", leaf.RotStart)
		}
		if leaf.RotEnd < 360 || leaf.RotEnd >= 720 {
			t.Errorf("RotEnd %v out of [360,720)", leaf.RotEnd)
		}
		if leaf.TopPct < 10 || leaf.TopPct >= 90 {
			t.Errorf("TopPct %v out of [10,90)", leaf.TopPct)
		}
		if leaf.Duration < 6 || leaf.Duration >= 14 {
			t.Errorf("Duration %v out of [6,14)", leaf.Duration)
		}
	}
}

// TestNewGustRanges 测试风的参数范围
func TestNewGustRanges(t *testing.T) {
	rng := newTestRand()
	cfg := config.DefaultEffectsConfig().Ambient.Gust

	for i := 0; i < 500; i++ {
		g := NewGust(rng, cfg)
		if g.TopPct < 5 || g.TopPct >= 95 {
			t.Errorf("TopPct %v out of [5,95)", g.TopPct)
		}
		if g.Duration < 4 || g.Duration >= 8 {
			t.Errorf("Duration %v out of [4,8)", g.Duration)
		}
	}
}

// TestNewFallingItem 测试下落装饰物横向范围
func TestNewFallingItem(t *testing.T) {
	rng := newTestRand()
	snow := config.DefaultEffectsConfig().Themes["theme-snow"]

	for i := 0; i < 200; i++ {
		item := NewFallingItem(rng, "theme-snow", snow, 800)
		if item.Left < 0 || item.Left >= 800-32 {
			t.Errorf("Left %v out of [0,768)", item.Left)
		}
		if item.Duration < 2 || item.Duration >= 5 {
			t.Errorf("Duration %v out of [2,5)", item.Duration)
		}
		if item.Theme != "theme-snow" {
			t.Errorf("Theme = %q", item.Theme)
		}
	}

	narrow := NewFallingItem(rng, "theme-snow", snow, 10)
	if narrow.Left != 0 {
		t.Errorf("narrow viewport Left = %v, want 0", narrow.Left)
	}
}

// TestHSLColor 测试 HSL 转换的关键点
func TestHSLColor(t *testing.T) {
	tests := []struct {
		h, s, l float64
		r, g, b uint8
	}{
		{0, 1, 0.5, 255, 0, 0},
		{120, 1, 0.5, 0, 255, 0},
		{240, 1, 0.5, 0, 0, 255},
		{0, 0, 1, 255, 255, 255},
		{360, 1, 0.5, 255, 0, 0},
	}
	for _, tt := range tests {
		c := HSLColor(tt.h, tt.s, tt.l)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("HSLColor(%v,%v,%v) = %+v, want (%d,%d,%d)", tt.h, tt.s, tt.l, c, tt.r, tt.g, tt.b)
		}
	}
}
