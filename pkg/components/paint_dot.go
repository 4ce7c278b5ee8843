package components

import "image/color"

// PaintDotComponent 画笔模式下按下鼠标时盖印的圆点
// 透明度只由创建时间决定，淡出窗口结束后从池中移除
type PaintDotComponent struct {
	X, Y    float64
	Created float64 // 创建时间（调度器虚拟时钟，毫秒）
	Color   color.RGBA
}
