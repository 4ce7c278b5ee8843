package scenes

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/page"
	"github.com/decker502/folio/pkg/project"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// loadTimeout 项目数据加载超时
const loadTimeout = 10 * time.Second

const navBack = "back"

// sectionBlock 已布局的内容区块（文档坐标）
type sectionBlock struct {
	project.Section
	Bounds page.Rect
	lines  []string // 按内容宽度换行后的行
}

// ProjectScene 项目详情页
//
// 进入时在后台 goroutine 中加载项目数据，结果通过通道在 Update 中应用，
// 因此页面状态只在 ebiten 的更新 goroutine 上修改。
type ProjectScene struct {
	deps    *Deps
	id      string
	tracker *utils.PointerTracker
	effects *effectsLayer

	width, height float64
	scrollY       float64
	scrollTarget  float64
	docHeight     float64

	result chan *project.Page
	cancel context.CancelFunc
	page   *project.Page // nil 表示加载中

	blocks      []sectionBlock
	spy         *page.ScrollSpy
	nav         *page.NavAutoHide
	picker      *page.ThemePicker
	navButtons  []button
	sideButtons []button
}

// NewProjectScene 创建项目详情页；id 为空时显示默认项目
func NewProjectScene(deps *Deps, id string) *ProjectScene {
	if id == "" {
		id = project.DefaultID
	}
	s := &ProjectScene{
		deps:    deps,
		id:      id,
		tracker: utils.NewPointerTracker(deps.input()),
		width:   config.WindowWidth,
		height:  config.WindowHeight,
		result:  make(chan *project.Page, 1),
		spy:     page.NewScrollSpy(nil),
		nav:     page.NewNavAutoHide(),
	}
	s.effects = newEffectsLayer(deps, config.WindowWidth, config.WindowHeight)
	s.picker = page.NewThemePicker(deps.Effects.ThemeNames(), deps.Settings.GetSettings().Theme)
	s.picker.OnApply(s.applyTheme)
	s.spy.OnChange(func(id string) {
		log.Printf("[ProjectScene] Active section: %s", id)
	})
	s.layout()
	return s
}

// ID 返回项目ID
func (s *ProjectScene) ID() string {
	return s.id
}

// Page 返回已加载的页面，加载中返回 nil
func (s *ProjectScene) Page() *project.Page {
	return s.page
}

// OnEnter 开始异步加载项目数据
func (s *ProjectScene) OnEnter() {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	s.cancel = cancel
	src := s.deps.Source
	id := s.id
	go func() {
		s.result <- project.Load(ctx, src, id)
	}()
}

// OnExit 取消未完成的加载并停止装饰效果
func (s *ProjectScene) OnExit() {
	if s.cancel != nil {
		s.cancel()
	}
	s.effects.ctrl.Stop()
}

// SetHidden 转发可见性
func (s *ProjectScene) SetHidden(hidden bool) {
	s.effects.ctrl.SetHidden(hidden)
}

// Resize 重新布局
func (s *ProjectScene) Resize(width, height int) {
	s.width, s.height = float64(width), float64(height)
	s.effects.resize(width, height)
	s.layout()
}

func (s *ProjectScene) mobile() bool {
	return s.width < config.MobileBreakpoint || utils.IsMobile()
}

// applyTheme 主题切换：落下一批装饰物并保存设置
func (s *ProjectScene) applyTheme(theme string) {
	n := s.effects.ctrl.SpawnThemeBurst(theme)
	log.Printf("[ProjectScene] Theme %s spawned %d items", theme, n)
	s.deps.Settings.SetTheme(theme)
	if err := s.deps.Settings.Save(); err != nil {
		log.Printf("[ProjectScene] Warning: failed to save settings: %v", err)
	}
}

func (s *ProjectScene) contentRect() page.Rect {
	pad := config.ContentPadding
	x := pad
	if !s.mobile() {
		x = pad + config.SidebarWidth + pad
	}
	return page.Rect{X: x, Y: config.NavBarHeight + pad, W: s.width - x - pad}
}

// layout 计算导航栏、侧边栏和内容区块的位置
func (s *ProjectScene) layout() {
	pad := config.ContentPadding

	themes := make([]button, 0, len(s.picker.Themes()))
	for _, t := range s.picker.Themes() {
		themes = append(themes, button{ID: t, Label: strings.TrimPrefix(t, "theme-")})
	}
	s.navButtons = append(layoutButtonsRight(themes, s.width-pad, 10, 8, 1),
		button{ID: navBack, Label: "< Back", Bounds: page.Rect{X: pad, Y: 10, W: textWidth("< Back", 1) + 16, H: glyphHeight + 12}})

	s.blocks = s.blocks[:0]
	s.sideButtons = s.sideButtons[:0]
	if s.page == nil || s.page.Failed() {
		s.spy.SetSections(nil)
		s.docHeight = s.height
		s.clampScroll()
		return
	}

	content := s.contentRect()
	y := content.Y + glyphHeight*2 + pad // 标题
	spy := make([]page.SpySection, 0, len(s.page.Sections))
	for i, sec := range s.page.Sections {
		var lines []string
		for _, l := range sec.Lines {
			lines = append(lines, wrapText(l, content.W, 1)...)
		}
		h := glyphHeight*1.5 + 16 + float64(len(lines))*config.LineHeight
		b := sectionBlock{Section: sec, Bounds: page.Rect{X: content.X, Y: y, W: content.W, H: h}, lines: lines}
		s.blocks = append(s.blocks, b)
		spy = append(spy, page.SpySection{ID: sec.ID, Bounds: b.Bounds})
		s.sideButtons = append(s.sideButtons, button{
			ID:     sec.ID,
			Label:  sec.Heading,
			Bounds: page.Rect{X: pad, Y: config.NavBarHeight + pad + glyphHeight*2 + float64(i)*32, W: config.SidebarWidth, H: 28},
		})
		y += h + config.SectionGap
	}
	if s.mobile() {
		s.sideButtons = s.sideButtons[:0]
	}
	s.spy.SetSections(spy)
	s.docHeight = y + pad
	s.clampScroll()
}

func (s *ProjectScene) maxScroll() float64 {
	return math.Max(0, s.docHeight-s.height)
}

func (s *ProjectScene) clampScroll() {
	s.scrollTarget = math.Max(0, math.Min(s.scrollTarget, s.maxScroll()))
	s.scrollY = math.Max(0, math.Min(s.scrollY, s.maxScroll()))
}

// scrollToSection 平滑滚动到区块
func (s *ProjectScene) scrollToSection(id string) {
	for _, b := range s.blocks {
		if b.ID == id {
			s.scrollTarget = b.Bounds.Y - config.NavBarHeight - config.ContentPadding
			s.clampScroll()
			return
		}
	}
}

// Update 更新页面逻辑
func (s *ProjectScene) Update(deltaTime float64) {
	select {
	case p := <-s.result:
		s.page = p
		s.layout()
	default:
	}

	f := s.tracker.Poll()
	if f.WheelY != 0 {
		s.scrollTarget -= f.WheelY * config.ScrollWheelStep
		s.clampScroll()
	}
	if d := s.scrollTarget - s.scrollY; math.Abs(d) < 0.5 {
		s.scrollY = s.scrollTarget
	} else {
		s.scrollY += d * scrollEase
	}
	s.nav.OnScroll(s.scrollY)

	s.effects.forwardPointer(f)
	if f.Clicked {
		s.handleClick(f.X, f.Y)
	}

	s.spy.Update(page.Viewport{ScrollY: s.scrollY, Width: s.width, Height: s.height})
	s.effects.update(deltaTime)
}

func (s *ProjectScene) handleClick(x, y float64) {
	if !s.nav.Hidden() {
		if b, ok := hitButton(s.navButtons, x, y); ok {
			if b.ID == navBack {
				s.deps.SceneManager.Open(PageLanding, "")
				return
			}
			if err := s.picker.Apply(b.ID); err != nil {
				log.Printf("[ProjectScene] Warning: %v", err)
			}
			return
		}
	}
	if b, ok := hitButton(s.sideButtons, x, y); ok {
		s.scrollToSection(b.ID)
	}
}

// Draw 绘制页面
func (s *ProjectScene) Draw(screen *ebiten.Image) {
	pal := themePalette(s.deps.Effects, s.picker.Current())
	screen.Fill(pal.Background)
	s.effects.drawBackground(screen)

	content := s.contentRect()
	switch {
	case s.page == nil:
		drawText(screen, "Loading...", content.X, content.Y, 1.5, colorMuted)
	case s.page.Failed():
		drawText(screen, s.page.Error, content.X, content.Y, 1.5, colorError)
	default:
		s.drawContent(screen, pal, content)
	}

	if !s.nav.Hidden() {
		fillRect(screen, page.Rect{W: s.width, H: config.NavBarHeight}, colorNav)
		for _, b := range s.navButtons {
			drawButton(screen, b, b.ID == s.picker.Current(), pal.Accent)
		}
	}
}

func (s *ProjectScene) drawContent(screen *ebiten.Image, pal palette, content page.Rect) {
	drawText(screen, s.page.Title, content.X, content.Y-s.scrollY, 2, colorText)
	for _, b := range s.blocks {
		y := b.Bounds.Y - s.scrollY
		if y > s.height || y+b.Bounds.H < 0 {
			continue
		}
		drawText(screen, b.Heading, b.Bounds.X, y, 1.5, pal.Accent)
		y += glyphHeight*1.5 + 16
		for _, l := range b.lines {
			drawText(screen, l, b.Bounds.X, y, 1, colorText)
			y += config.LineHeight
		}
	}

	if len(s.sideButtons) == 0 {
		return
	}
	pad := config.ContentPadding
	drawText(screen, s.page.SidebarTitle, pad, config.NavBarHeight+pad, 1, colorMuted)
	active := s.spy.Active()
	for _, b := range s.sideButtons {
		if b.ID == active {
			fillRect(screen, b.Bounds, pal.Accent)
			drawText(screen, b.Label, b.Bounds.X+8, b.Bounds.Y+8, 1, colorNav)
			continue
		}
		drawText(screen, b.Label, b.Bounds.X+8, b.Bounds.Y+8, 1, colorText)
	}
}
