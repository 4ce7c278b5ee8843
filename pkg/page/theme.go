package page

import (
	"fmt"
	"log"
	"slices"
)

// ThemePicker 主题选择
// 切换成功后调用 onApply（用于生成下落装饰物、持久化设置）
type ThemePicker struct {
	themes  []string
	current string
	onApply func(theme string)
}

// NewThemePicker 创建主题选择器；initial 不在列表中时不选中任何主题
func NewThemePicker(themes []string, initial string) *ThemePicker {
	p := &ThemePicker{themes: themes}
	if slices.Contains(themes, initial) {
		p.current = initial
	}
	return p
}

// OnApply 注册主题应用回调
func (p *ThemePicker) OnApply(fn func(theme string)) {
	p.onApply = fn
}

// Apply 应用主题
// 重复点击同一主题也会触发回调（每次点击都会落下一批装饰物）
func (p *ThemePicker) Apply(theme string) error {
	if !slices.Contains(p.themes, theme) {
		return fmt.Errorf("unknown theme %q", theme)
	}
	p.current = theme
	log.Printf("[ThemePicker] Applied %s", theme)
	if p.onApply != nil {
		p.onApply(theme)
	}
	return nil
}

// Current 返回当前主题（可能为空）
func (p *ThemePicker) Current() string {
	return p.current
}

// Themes 返回可选主题列表
func (p *ThemePicker) Themes() []string {
	return p.themes
}
