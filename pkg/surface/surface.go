// Package surface 提供创意模式使用的 2D 绘图表面
//
// Surface 对应浏览器中覆盖整个视口的 canvas：
// 支持清空、画线、填充圆，像素尺寸随视口同步。
package surface

import "image/color"

// Surface 2D 光栅绘图表面
type Surface interface {
	// Clear 清空整个表面（变为全透明）
	Clear()
	// StrokeLine 以指定线宽和颜色绘制线段
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
	// FillCircle 绘制填充圆
	FillCircle(cx, cy, r float64, clr color.Color)
	// Size 返回像素尺寸
	Size() (width, height int)
	// Resize 将像素尺寸同步为视口尺寸（内容被清空）
	Resize(width, height int)
	// SetVisible 显示或隐藏表面
	SetVisible(visible bool)
	// Visible 报告表面是否可见
	Visible() bool
}

// WithAlpha 返回按 alpha（0~1）缩放透明度后的颜色
// alpha 超出范围时被截断
func WithAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*float64(c.A) + 0.5)}
}
