package page

import (
	"log"

	"github.com/decker502/folio/pkg/config"
)

// MobileMenu 移动端汉堡菜单
type MobileMenu struct {
	open bool
}

// Toggle 切换菜单开合
func (m *MobileMenu) Toggle() {
	m.open = !m.open
}

// Close 关闭菜单
func (m *MobileMenu) Close() {
	m.open = false
}

// Open 报告菜单是否展开
func (m *MobileMenu) Open() bool {
	return m.open
}

// HandleEscape 按下 Escape 关闭菜单
func (m *MobileMenu) HandleEscape() {
	m.Close()
}

// HandleClick 点击处理：菜单展开时，点击导航区域之外关闭菜单
// 返回菜单是否因此关闭
func (m *MobileMenu) HandleClick(x, y float64, nav Rect) bool {
	if !m.open || nav.Contains(x, y) {
		return false
	}
	m.open = false
	return true
}

// NavAutoHide 导航栏自动隐藏
// 向下滚动且超过阈值时隐藏，其余情况（向上滚动、回到顶部）显示
type NavAutoHide struct {
	lastY     float64
	hidden    bool
	threshold float64
}

// NewNavAutoHide 创建导航栏自动隐藏逻辑
func NewNavAutoHide() *NavAutoHide {
	return &NavAutoHide{threshold: config.NavHideThreshold}
}

// OnScroll 处理滚动位置变化，返回导航栏当前是否隐藏
func (n *NavAutoHide) OnScroll(y float64) bool {
	if y == n.lastY {
		return n.hidden
	}
	hidden := y > n.lastY && y > n.threshold
	if hidden != n.hidden {
		log.Printf("[Nav] hidden=%v at scrollY=%.0f", hidden, y)
	}
	n.hidden = hidden
	n.lastY = y
	return n.hidden
}

// Hidden 报告导航栏是否隐藏
func (n *NavAutoHide) Hidden() bool {
	return n.hidden
}

// FlipCard 点击翻转的卡片
type FlipCard struct {
	Bounds  Rect
	flipped bool
}

// Toggle 翻转卡片
func (c *FlipCard) Toggle() {
	c.flipped = !c.flipped
}

// HandleClick 点击在卡片内时翻转，返回是否命中
func (c *FlipCard) HandleClick(x, y float64) bool {
	if !c.Bounds.Contains(x, y) {
		return false
	}
	c.Toggle()
	return true
}

// Flipped 报告卡片是否处于翻转状态
func (c *FlipCard) Flipped() bool {
	return c.flipped
}
