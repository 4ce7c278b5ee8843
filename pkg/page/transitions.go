package page

import (
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/utils"
)

// revealThreshold/revealMarginBottom 元素进入视口的判定（10% 可见，底部收缩 50px）
const (
	revealThreshold    = 0.1
	revealMarginBottom = 50.0
)

// RevealTarget 滚动显现的元素
type RevealTarget struct {
	ID       string
	Bounds   Rect
	revealed bool
	elapsed  float64 // 显现开始后经过的时间（秒）
}

// Opacity 当前不透明度
func (t *RevealTarget) Opacity() float64 {
	return utils.EaseOutCubic(t.progress())
}

// OffsetY 当前下移距离（从 RevealOffset 过渡到 0）
func (t *RevealTarget) OffsetY() float64 {
	return utils.Lerp(config.RevealOffset, 0, utils.EaseOutCubic(t.progress()))
}

// Revealed 报告元素是否已开始显现
func (t *RevealTarget) Revealed() bool {
	return t.revealed
}

func (t *RevealTarget) progress() float64 {
	if !t.revealed {
		return 0
	}
	return utils.Clamp01(t.elapsed / config.RevealDuration)
}

// Reveal 滚动显现动画
// 元素初始透明并下移，首次进入视口后在 RevealDuration 内过渡到原位；显现只发生一次
type Reveal struct {
	targets []*RevealTarget
}

// Observe 加入一个元素
func (r *Reveal) Observe(id string, bounds Rect) *RevealTarget {
	t := &RevealTarget{ID: id, Bounds: bounds}
	r.targets = append(r.targets, t)
	return t
}

// Track 按ID更新已观察元素的位置；ID 未出现过时加入新元素
// 重新布局只移动元素，已开始的显现动画不会重播
func (r *Reveal) Track(id string, bounds Rect) *RevealTarget {
	for _, t := range r.targets {
		if t.ID == id {
			t.Bounds = bounds
			return t
		}
	}
	return r.Observe(id, bounds)
}

// Update 推进动画并检测新进入视口的元素
func (r *Reveal) Update(deltaTime float64, v Viewport) {
	for _, t := range r.targets {
		if t.revealed {
			t.elapsed += deltaTime
			continue
		}
		if v.VisibleRatio(t.Bounds, 0, revealMarginBottom) >= revealThreshold {
			t.revealed = true
		}
	}
}

// Targets 返回所有元素
func (r *Reveal) Targets() []*RevealTarget {
	return r.targets
}

// FadeIn 页面加载淡入：延迟 FadeInDelayMs 后在 FadeInDuration 内从 0 到 1
type FadeIn struct {
	elapsed float64 // 秒
}

// Update 推进时间
func (f *FadeIn) Update(deltaTime float64) {
	f.elapsed += deltaTime
}

// Opacity 当前不透明度
func (f *FadeIn) Opacity() float64 {
	return utils.Progress(f.elapsed, config.FadeInDelayMs/1000, config.FadeInDuration)
}

// Done 报告淡入是否完成
func (f *FadeIn) Done() bool {
	return f.Opacity() >= 1
}

// ParallaxOffset 滚动提示的视差位移
func ParallaxOffset(scrollY float64) float64 {
	return scrollY * config.ScrollIndicatorParallax
}
