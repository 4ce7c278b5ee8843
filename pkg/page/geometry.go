// Package page 实现落地页和项目详情页的交互逻辑
//
// 这里只保存状态和规则（菜单开合、滚动监听、显现动画进度等），
// 不依赖渲染；场景每帧把滚动位置和输入交给这些类型，再按结果绘制。
// 所有纵向坐标都是文档坐标（与滚动位置无关）。
package page

// Rect 文档坐标系中的矩形
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bottom 返回矩形底边
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Viewport 视口（滚动位置 + 尺寸）
type Viewport struct {
	ScrollY float64
	Width   float64
	Height  float64
}

// VisibleRatio 计算矩形在视口中可见部分占自身高度的比例
// marginTop/marginBottom 收缩视口的上下边界（对应观察器的负 rootMargin）
func (v Viewport) VisibleRatio(r Rect, marginTop, marginBottom float64) float64 {
	if r.H <= 0 {
		return 0
	}
	top := v.ScrollY + marginTop
	bottom := v.ScrollY + v.Height - marginBottom
	if bottom <= top {
		return 0
	}
	lo := max(r.Y, top)
	hi := min(r.Bottom(), bottom)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / r.H
}

// Midline 返回视口竖直中线的文档坐标
func (v Viewport) Midline() float64 {
	return v.ScrollY + v.Height/2
}
