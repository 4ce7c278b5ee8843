package stage

import (
	"image/color"
	"math"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/surface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	leafSpriteSize = 32
	gustLength     = 200.0
	fadeEdge       = 0.1  // 动画开始/结束时淡入淡出所占进度比例
	gustPeakAlpha  = 0.35 // 风在动画中点的最大不透明度
)

// Renderer 将舞台元素绘制到屏幕
type Renderer struct {
	LeafColor   color.RGBA
	GustColor   color.RGBA
	ThemeColors map[string]color.RGBA // 主题名 -> 下落装饰物颜色
	ItemSize    float64

	leafSprite *ebiten.Image
}

// NewRenderer 创建元素渲染器
func NewRenderer() *Renderer {
	return &Renderer{
		LeafColor:   color.RGBA{R: 0x6b, G: 0x8e, B: 0x23, A: 0xff},
		GustColor:   color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		ThemeColors: make(map[string]color.RGBA),
		ItemSize:    leafSpriteSize,
	}
}

// Draw 绘制舞台上的所有元素
func (r *Renderer) Draw(screen *ebiten.Image, s *Stage) {
	w, h := s.Size()
	for _, el := range s.Elements() {
		switch el.Kind {
		case components.ElementLeaf:
			r.drawLeaf(screen, el, float64(w), float64(h))
		case components.ElementGust:
			r.drawGust(screen, el, float64(w), float64(h))
		case components.ElementFalling:
			r.drawFalling(screen, el, float64(h))
		}
	}
}

// LeafPosition 计算树叶在进度 p 时的位置与旋转角（度）
// 树叶从左侧飘入、右侧飘出，纵向轻微摆动并缓慢下沉
func LeafPosition(el *components.ElementComponent, width, height float64) (x, y, rot float64) {
	p := el.Progress()
	x = -leafSpriteSize + p*(width+2*leafSpriteSize)
	y = el.TopPct/100*height + math.Sin(p*4*math.Pi)*24 + p*height*0.15
	rot = el.RotStart + (el.RotEnd-el.RotStart)*p
	return x, y, rot
}

// GustPosition 计算风在进度 p 时的起点
func GustPosition(el *components.ElementComponent, width, height float64) (x, y float64) {
	p := el.Progress()
	x = -gustLength + p*(width+2*gustLength)
	y = el.TopPct/100*height + math.Sin(p*2*math.Pi)*12
	return x, y
}

// FallingPosition 计算下落装饰物的位置：从视口上方落到下方
func FallingPosition(el *components.ElementComponent, height, size float64) (x, y float64) {
	p := el.Progress()
	return el.Left, -size + p*(height+2*size)
}

// edgeAlpha 动画首尾的淡入淡出系数
func edgeAlpha(p float64) float64 {
	return math.Min(1, math.Min(p/fadeEdge, (1-p)/fadeEdge))
}

func (r *Renderer) drawLeaf(screen *ebiten.Image, el *components.ElementComponent, w, h float64) {
	x, y, rot := LeafPosition(el, w, h)
	r.drawSprite(screen, x, y, rot, 1, r.LeafColor, edgeAlpha(el.Progress()))
}

func (r *Renderer) drawGust(screen *ebiten.Image, el *components.ElementComponent, w, h float64) {
	x, y := GustPosition(el, w, h)
	c := gustColor(r.GustColor, el.Progress())
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+gustLength), float32(y), 2, c, true)
}

// gustColor 风的颜色，不透明度按 sin(p·π) 先升后降
func gustColor(c color.RGBA, p float64) color.NRGBA {
	return surface.WithAlpha(c, math.Sin(p*math.Pi)*gustPeakAlpha)
}

func (r *Renderer) drawFalling(screen *ebiten.Image, el *components.ElementComponent, h float64) {
	size := r.ItemSize
	x, y := FallingPosition(el, h, size)
	c, ok := r.ThemeColors[el.Theme]
	if !ok {
		c = r.LeafColor
	}
	if el.Theme == "theme-snow" {
		vector.DrawFilledCircle(screen, float32(x+size/2), float32(y+size/2), float32(size/4), c, true)
		return
	}
	rot := el.Progress() * 360
	r.drawSprite(screen, x+size/2, y+size/2, rot, size/leafSpriteSize, c, 1)
}

// drawSprite 以 (x,y) 为中心绘制旋转的叶片
func (r *Renderer) drawSprite(screen *ebiten.Image, x, y, rotDeg, scale float64, c color.RGBA, alpha float64) {
	if r.leafSprite == nil {
		r.leafSprite = newLeafSprite()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-leafSpriteSize/2, -leafSpriteSize/2)
	op.GeoM.Scale(scale, scale*0.45)
	op.GeoM.Rotate(rotDeg * math.Pi / 180)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(r.leafSprite, op)
}

// newLeafSprite 生成白色圆形精灵，绘制时压扁成叶片形状并着色
func newLeafSprite() *ebiten.Image {
	img := ebiten.NewImage(leafSpriteSize, leafSpriteSize)
	vector.DrawFilledCircle(img, leafSpriteSize/2, leafSpriteSize/2, leafSpriteSize/2, color.White, true)
	return img
}
