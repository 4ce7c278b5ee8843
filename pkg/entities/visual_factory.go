package entities

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
)

// uniform 返回 [min, max) 区间内的均匀随机数
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// RandomColor 返回在整个 24 位颜色空间上均匀分布的随机不透明颜色
func RandomColor(rng *rand.Rand) color.RGBA {
	v := rng.IntN(0xFFFFFF)
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// HSLColor 将 HSL（h: 度, s/l: 0~1）转换为 RGBA
func HSLColor(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 0xff,
	}
}

// NewOrbitParticle 在光标位置创建轨道粒子
// 相位 [0,2π)，半径 [RadiusMin,RadiusMax)，线宽 [WidthMin,WidthMax)，颜色全色域随机
func NewOrbitParticle(rng *rand.Rand, cfg config.OrbitConfig, x, y float64) *components.ParticleComponent {
	return &components.ParticleComponent{
		Kind:   components.ParticleOrbit,
		X:      x,
		Y:      y,
		PrevX:  x,
		PrevY:  y,
		Theta:  rng.Float64() * 2 * math.Pi,
		Radius: uniform(rng, cfg.RadiusMin, cfg.RadiusMax),
		Speed:  cfg.Speed,
		Width:  uniform(rng, cfg.WidthMin, cfg.WidthMax),
		Color:  RandomColor(rng),
	}
}

// NewFreeParticle 在指定位置创建自由粒子
// 速度分量 [-Speed/2, Speed/2)，生命 1.0，衰减 [DecayMin,DecayMax)，颜色 hsl(随机, 70%, 60%)
func NewFreeParticle(rng *rand.Rand, cfg config.FreeConfig, x, y float64) *components.ParticleComponent {
	return &components.ParticleComponent{
		Kind:  components.ParticleFree,
		X:     x,
		Y:     y,
		PrevX: x,
		PrevY: y,
		VX:    (rng.Float64() - 0.5) * cfg.Speed,
		VY:    (rng.Float64() - 0.5) * cfg.Speed,
		Life:  1.0,
		Decay: uniform(rng, cfg.DecayMin, cfg.DecayMax),
		Size:  uniform(rng, cfg.SizeMin, cfg.SizeMax),
		Color: HSLColor(rng.Float64()*360, 0.7, 0.6),
	}
}

// NewPaintDot 在指定位置盖印一个画笔圆点
func NewPaintDot(rng *rand.Rand, x, y, now float64) *components.PaintDotComponent {
	return &components.PaintDotComponent{
		X:       x,
		Y:       y,
		Created: now,
		Color:   RandomColor(rng),
	}
}

// NewLeaf 创建一片飘落的树叶
// 起始旋转 [0,360)°，结束旋转 [360,720)°
func NewLeaf(rng *rand.Rand, cfg config.LeafConfig) *components.ElementComponent {
	return &components.ElementComponent{
		Kind:     components.ElementLeaf,
		TopPct:   uniform(rng, cfg.TopMinPct, cfg.TopMaxPct),
		RotStart: rng.Float64() * 360,
		RotEnd:   rng.Float64()*360 + 360,
		Duration: uniform(rng, cfg.DurationMin, cfg.DurationMax),
	}
}

// NewGust 创建一阵风
func NewGust(rng *rand.Rand, cfg config.GustConfig) *components.ElementComponent {
	return &components.ElementComponent{
		Kind:     components.ElementGust,
		TopPct:   uniform(rng, cfg.TopMinPct, cfg.TopMaxPct),
		Duration: uniform(rng, cfg.DurationMin, cfg.DurationMax),
	}
}

// NewFallingItem 创建主题切换时下落的装饰物
// 横向位置 [0, viewportWidth-ItemSize)
func NewFallingItem(rng *rand.Rand, theme string, cfg config.ThemeConfig, viewportWidth float64) *components.ElementComponent {
	span := viewportWidth - cfg.ItemSize
	if span < 0 {
		span = 0
	}
	return &components.ElementComponent{
		Kind:     components.ElementFalling,
		Left:     rng.Float64() * span,
		Duration: uniform(rng, cfg.DurationMin, cfg.DurationMax),
		Theme:    theme,
	}
}
