package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface 基于离屏 ebiten.Image 的绘图表面
// 由场景在 Draw 阶段叠加到屏幕上
type ImageSurface struct {
	img     *ebiten.Image
	width   int
	height  int
	visible bool
}

// NewImageSurface 创建指定尺寸的离屏表面（默认隐藏）
func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{}
	s.Resize(width, height)
	return s
}

// Image 返回底层图像（用于叠加绘制）
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// Clear 清空表面
func (s *ImageSurface) Clear() {
	s.img.Clear()
}

// StrokeLine 绘制抗锯齿线段
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// FillCircle 绘制抗锯齿填充圆
func (s *ImageSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), clr, true)
}

// Size 返回像素尺寸
func (s *ImageSurface) Size() (int, int) {
	return s.width, s.height
}

// Resize 重新分配底层图像
// 与 canvas 设置 width/height 一致：尺寸变化时内容被清空；尺寸不变时为空操作
func (s *ImageSurface) Resize(width, height int) {
	// ebiten 不允许创建 0 尺寸图像
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if s.img != nil && width == s.width && height == s.height {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
	s.width = width
	s.height = height
}

// SetVisible 显示或隐藏表面
func (s *ImageSurface) SetVisible(visible bool) {
	s.visible = visible
}

// Visible 报告表面是否可见
func (s *ImageSurface) Visible() bool {
	return s.visible
}

// DrawTo 在可见时将表面叠加到目标图像
func (s *ImageSurface) DrawTo(dst *ebiten.Image) {
	if !s.visible {
		return
	}
	dst.DrawImage(s.img, nil)
}
