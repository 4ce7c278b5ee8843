package systems

import "github.com/decker502/folio/pkg/components"

// ElementHost 承载动画元素的渲染协作方（页面容器）
//
// 生成方不持有计时器：它把元素交给 host，并注册动画结束回调，
// 由回调完成自我移除。stage.Stage 是默认实现。
type ElementHost interface {
	Append(el *components.ElementComponent)
	OnAnimationEnd(el *components.ElementComponent, fn func())
	Remove(el *components.ElementComponent)
}
