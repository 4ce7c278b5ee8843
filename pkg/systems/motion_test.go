package systems

import (
	"math"
	"testing"

	"github.com/decker502/folio/pkg/components"
)

// TestStepOrbitFollowsCursor 测试轨道粒子位置始终在光标半径圆上
func TestStepOrbitFollowsCursor(t *testing.T) {
	p := &components.ParticleComponent{Kind: components.ParticleOrbit, Radius: 50, Speed: 0.02, X: 1, Y: 2}

	StepOrbit(p, 300, 200)

	if p.PrevX != 1 || p.PrevY != 2 {
		t.Errorf("prev = (%v,%v), want (1,2)", p.PrevX, p.PrevY)
	}
	if math.Abs(p.Theta-0.02) > 1e-12 {
		t.Errorf("theta = %v, want 0.02", p.Theta)
	}
	d := math.Hypot(p.X-300, p.Y-200)
	if math.Abs(d-50) > 1e-9 {
		t.Errorf("distance from cursor = %v, want 50", d)
	}
}

// TestStepFreeDecaysAndDamps 测试自由粒子衰减与阻尼
func TestStepFreeDecaysAndDamps(t *testing.T) {
	p := &components.ParticleComponent{Kind: components.ParticleFree, VX: 2, VY: -1, Life: 1, Decay: 0.25}

	StepFree(p, 0.5)

	if p.X != 2 || p.Y != -1 {
		t.Errorf("pos = (%v,%v), want (2,-1)", p.X, p.Y)
	}
	if p.Life != 0.75 {
		t.Errorf("life = %v, want 0.75", p.Life)
	}
	if p.VX != 1 || p.VY != -0.5 {
		t.Errorf("vel = (%v,%v), want (1,-0.5)", p.VX, p.VY)
	}
}

// TestParticleExpired 测试只有生命耗尽的自由粒子过期
func TestParticleExpired(t *testing.T) {
	tests := []struct {
		name string
		p    components.ParticleComponent
		want bool
	}{
		{"orbit never expires", components.ParticleComponent{Kind: components.ParticleOrbit, Life: -5}, false},
		{"free alive", components.ParticleComponent{Kind: components.ParticleFree, Life: 0.01}, false},
		{"free exhausted", components.ParticleComponent{Kind: components.ParticleFree, Life: 0}, true},
		{"free negative", components.ParticleComponent{Kind: components.ParticleFree, Life: -0.1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParticleExpired(&tt.p, 0); got != tt.want {
				t.Errorf("ParticleExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestPaintDotAlpha 测试圆点透明度随时间线性衰减并截断在 [0,1]
func TestPaintDotAlpha(t *testing.T) {
	d := &components.PaintDotComponent{Created: 1000}
	tests := []struct {
		now  float64
		want float64
	}{
		{1000, 1},
		{1250, 0.75},
		{1500, 0.5},
		{2000, 0},
		{9000, 0},
		{500, 1},
	}
	for _, tt := range tests {
		if got := PaintDotAlpha(d, tt.now, 1000); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("PaintDotAlpha(now=%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

// TestPaintDotExpiry 测试淡出窗口边界
func TestPaintDotExpiry(t *testing.T) {
	expired := PaintDotExpiry(1000)
	d := &components.PaintDotComponent{Created: 0}

	if expired(d, 999) {
		t.Error("dot expired before fade window")
	}
	if !expired(d, 1000) {
		t.Error("dot should expire at fade window")
	}
}
