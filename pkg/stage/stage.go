// Package stage 模拟承载 CSS 动画元素的页面容器
//
// Stage 推进每个元素的动画时间，动画播放结束时发出 animation-end 信号，
// 由元素的生成方通过 OnAnimationEnd 注册的回调完成移除。
// Stage 本身从不主动删除元素。
package stage

import "github.com/decker502/folio/pkg/components"

// Stage 元素容器
type Stage struct {
	nextID   uint64
	elements []*components.ElementComponent
	handlers map[uint64][]func()
	ended    map[uint64]bool // 已发出结束信号的元素

	width, height int
}

// New 创建指定视口尺寸的舞台
func New(width, height int) *Stage {
	return &Stage{
		nextID:   1, // ID从1开始,0保留为"未加入舞台"
		elements: make([]*components.ElementComponent, 0, 32),
		handlers: make(map[uint64][]func()),
		ended:    make(map[uint64]bool),
		width:    width,
		height:   height,
	}
}

// Append 将元素加入舞台并分配 ID
func (s *Stage) Append(el *components.ElementComponent) {
	el.ID = s.nextID
	s.nextID++
	s.elements = append(s.elements, el)
}

// OnAnimationEnd 注册元素动画结束时的回调
// 元素不在舞台上时忽略
func (s *Stage) OnAnimationEnd(el *components.ElementComponent, fn func()) {
	if el == nil || el.ID == 0 || fn == nil {
		return
	}
	s.handlers[el.ID] = append(s.handlers[el.ID], fn)
}

// Remove 从舞台移除元素；元素不在舞台上时为空操作
func (s *Stage) Remove(el *components.ElementComponent) {
	if el == nil {
		return
	}
	for i, e := range s.elements {
		if e != el {
			continue
		}
		s.elements = append(s.elements[:i], s.elements[i+1:]...)
		delete(s.handlers, el.ID)
		delete(s.ended, el.ID)
		return
	}
}

// Advance 推进所有元素的动画 deltaTime 秒
// 本次推进中播放结束的元素，在推进完成后统一触发结束回调
func (s *Stage) Advance(deltaTime float64) {
	var finished []*components.ElementComponent
	for _, el := range s.elements {
		el.Elapsed += deltaTime
		if el.Elapsed >= el.Duration && !s.ended[el.ID] {
			s.ended[el.ID] = true
			finished = append(finished, el)
		}
	}

	for _, el := range finished {
		handlers := s.handlers[el.ID]
		delete(s.handlers, el.ID)
		for _, fn := range handlers {
			fn()
		}
	}
}

// Elements 返回当前元素（只读使用）
func (s *Stage) Elements() []*components.ElementComponent {
	return s.elements
}

// Len 返回元素数量
func (s *Stage) Len() int {
	return len(s.elements)
}

// CountKind 返回指定类型的元素数量
func (s *Stage) CountKind(kind components.ElementKind) int {
	n := 0
	for _, el := range s.elements {
		if el.Kind == kind {
			n++
		}
	}
	return n
}

// Resize 同步视口尺寸（元素位置按百分比计算，不需要重排）
func (s *Stage) Resize(width, height int) {
	s.width, s.height = width, height
}

// Size 返回视口尺寸
func (s *Stage) Size() (int, int) {
	return s.width, s.height
}
