package page

// SpySection 被侧边栏跟踪的区块
type SpySection struct {
	ID     string
	Bounds Rect
}

// ScrollSpy 侧边栏滚动监听
//
// 视口上下各收缩 50%，只剩竖直中线：与中线相交的区块成为活动链接。
// 没有区块与中线相交时保持上一次的活动链接。
type ScrollSpy struct {
	sections []SpySection
	active   string
	onChange func(id string)
}

// NewScrollSpy 创建滚动监听
func NewScrollSpy(sections []SpySection) *ScrollSpy {
	return &ScrollSpy{sections: sections}
}

// OnChange 注册活动链接变化回调
func (s *ScrollSpy) OnChange(fn func(id string)) {
	s.onChange = fn
}

// SetSections 替换跟踪的区块（内容重新布局后调用）
func (s *ScrollSpy) SetSections(sections []SpySection) {
	s.sections = sections
}

// Update 按视口中线更新活动链接，返回当前活动区块ID
func (s *ScrollSpy) Update(v Viewport) string {
	mid := v.Midline()
	for _, sec := range s.sections {
		if mid >= sec.Bounds.Y && mid < sec.Bounds.Bottom() {
			if sec.ID != s.active {
				s.active = sec.ID
				if s.onChange != nil {
					s.onChange(sec.ID)
				}
			}
			break
		}
	}
	return s.active
}

// Active 返回当前活动区块ID（尚未命中任何区块时为空）
func (s *ScrollSpy) Active() string {
	return s.active
}
