package systems

import (
	"math"

	"github.com/decker502/folio/pkg/components"
)

// StepOrbit 推进轨道粒子一帧：记录上一位置，相位前进，位置跟随光标
func StepOrbit(p *components.ParticleComponent, cursorX, cursorY float64) {
	p.PrevX, p.PrevY = p.X, p.Y
	p.Theta += p.Speed
	p.X = cursorX + math.Cos(p.Theta)*p.Radius
	p.Y = cursorY + math.Sin(p.Theta)*p.Radius
}

// StepFree 推进自由粒子一帧：位移、生命衰减、速度阻尼
func StepFree(p *components.ParticleComponent, damping float64) {
	p.PrevX, p.PrevY = p.X, p.Y
	p.X += p.VX
	p.Y += p.VY
	p.Life -= p.Decay
	p.VX *= damping
	p.VY *= damping
}

// ParticleExpired 粒子过期条件：只有自由粒子会过期（生命值耗尽）
func ParticleExpired(p *components.ParticleComponent, _ float64) bool {
	return p.Kind == components.ParticleFree && p.Life <= 0
}

// PaintDotAlpha 圆点透明度：alpha = max(0, 1 - elapsed/fadeMs)
func PaintDotAlpha(d *components.PaintDotComponent, now, fadeMs float64) float64 {
	alpha := 1 - (now-d.Created)/fadeMs
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}

// PaintDotExpiry 返回淡出窗口为 fadeMs 的圆点过期判断函数
func PaintDotExpiry(fadeMs float64) func(d *components.PaintDotComponent, now float64) bool {
	return func(d *components.PaintDotComponent, now float64) bool {
		return now-d.Created >= fadeMs
	}
}
