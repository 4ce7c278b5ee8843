package scenes

import (
	"image/color"
	"log"
	"math"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/mode"
	"github.com/decker502/folio/pkg/page"
	"github.com/decker502/folio/pkg/surface"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	typewriterText  = "Browse My Recent Projects"
	typewriterSpeed = 20.0 // 字符/秒
	scrollEase      = 0.2  // 平滑滚动每帧逼近比例
	cardHeight      = 110.0
	cardGap         = 24.0
	flipCardSize    = 220.0
)

// 落地页导航按钮ID
const (
	navAbout    = "about"
	navProjects = "projects"
	navCreative = "creative"
	navTrail    = "trail"
	navMenu     = "menu"
)

var heroLines = []string{
	"Hi, I'm a software engineer.",
	"I build search systems, visualizations and small tools,",
	"and I like making the web a little more playful.",
}

// projectCard 落地页项目卡片
type projectCard struct {
	ID     string
	Title  string
	Intro  string
	Bounds page.Rect // 文档坐标
	reveal *page.RevealTarget
}

// LandingScene 落地页
//
// 包含导航（桌面链接 / 移动端汉堡菜单）、翻转卡片、项目卡片、
// 滚动显现和视差效果，以及环境/创意两种装饰效果模式。
type LandingScene struct {
	deps    *Deps
	tracker *utils.PointerTracker
	effects *effectsLayer

	width, height float64
	scrollY       float64
	scrollTarget  float64
	docHeight     float64

	menu      page.MobileMenu
	flipCard  page.FlipCard
	observer  page.ProjectsObserver
	reveal    page.Reveal
	fadeIn    page.FadeIn
	heroBlock *page.RevealTarget
	cards     []projectCard

	navButtons  []button // 屏幕坐标
	menuButtons []button // 移动端菜单展开后的链接
	typed       float64  // 打字机已显示字符数
}

// NewLandingScene 创建落地页
func NewLandingScene(deps *Deps) *LandingScene {
	s := &LandingScene{
		deps:    deps,
		tracker: utils.NewPointerTracker(deps.input()),
		width:   config.WindowWidth,
		height:  config.WindowHeight,
	}
	s.effects = newEffectsLayer(deps, config.WindowWidth, config.WindowHeight)
	s.effects.ctrl.OnModeChange(func(m mode.Mode) {
		deps.Settings.SetCreativeMode(m == mode.Creative)
		if err := deps.Settings.Save(); err != nil {
			log.Printf("[LandingScene] Warning: failed to save settings: %v", err)
		}
	})
	s.layout()
	return s
}

// OnEnter 启动装饰效果；上次退出时处于创意模式则直接进入创意模式
func (s *LandingScene) OnEnter() {
	s.effects.ctrl.Start()
	if s.deps.Settings.GetSettings().CreativeMode {
		s.effects.ctrl.SetMode(mode.Creative)
	}
}

// OnExit 停止所有计时器和帧回调
func (s *LandingScene) OnExit() {
	s.effects.ctrl.Stop()
}

// SetHidden 窗口失焦时暂停环境效果
func (s *LandingScene) SetHidden(hidden bool) {
	s.effects.ctrl.SetHidden(hidden)
}

// Resize 重新布局并同步效果层尺寸
func (s *LandingScene) Resize(width, height int) {
	s.width, s.height = float64(width), float64(height)
	s.effects.resize(width, height)
	s.layout()
}

// Mode 返回当前效果模式
func (s *LandingScene) Mode() mode.Mode {
	return s.effects.ctrl.CurrentMode()
}

func (s *LandingScene) mobile() bool {
	return s.width < config.MobileBreakpoint || utils.IsMobile()
}

func (s *LandingScene) viewport() page.Viewport {
	return page.Viewport{ScrollY: s.scrollY, Width: s.width, Height: s.height}
}

// layout 计算文档布局（尺寸变化时重新计算，已显现的元素保持显现）
func (s *LandingScene) layout() {
	pad := config.ContentPadding
	navH := config.NavBarHeight

	// 首屏：左侧文字，右侧翻转卡片（窄屏时卡片在文字下方）
	heroTop := navH + pad*2
	heroW := math.Min(s.width-2*pad, 560)
	heroH := float64(len(heroLines))*config.LineHeight*1.5 + 60
	if s.mobile() {
		s.flipCard.Bounds = page.Rect{X: (s.width - flipCardSize) / 2, Y: heroTop + heroH + pad, W: flipCardSize, H: flipCardSize}
	} else {
		s.flipCard.Bounds = page.Rect{X: s.width - pad - flipCardSize, Y: heroTop, W: flipCardSize, H: flipCardSize}
	}

	s.heroBlock = s.reveal.Track("profile-text", page.Rect{X: pad, Y: heroTop, W: heroW, H: heroH})

	// 项目区块从第二屏开始
	projectsTop := math.Max(s.height, s.flipCard.Bounds.Bottom()+pad*2)
	cardW := math.Min(s.width-2*pad, 640)
	y := projectsTop + 90
	s.cards = s.cards[:0]
	for _, p := range s.deps.Projects {
		bounds := page.Rect{X: (s.width - cardW) / 2, Y: y, W: cardW, H: cardHeight}
		s.cards = append(s.cards, projectCard{
			ID:     p.ID,
			Title:  p.Title,
			Intro:  p.Intro,
			Bounds: bounds,
			reveal: s.reveal.Track("project-card:"+p.ID, bounds),
		})
		y += cardHeight + cardGap
	}
	s.observer.Section = page.Rect{X: 0, Y: projectsTop, W: s.width, H: y - projectsTop + pad}
	s.docHeight = s.observer.Section.Bottom() + 120

	// 导航栏
	if s.mobile() {
		s.navButtons = layoutButtonsRight([]button{{ID: navMenu, Label: "Menu"}}, s.width-pad, 10, 8, 1)
		items := []button{
			{ID: navAbout, Label: "About"},
			{ID: navProjects, Label: "Projects"},
			{ID: navTrail, Label: s.trailLabel()},
			{ID: navCreative, Label: "Creative mode"},
		}
		s.menuButtons = make([]button, len(items))
		for i, b := range items {
			b.Bounds = page.Rect{X: 0, Y: navH + float64(i)*44, W: s.width, H: 44}
			s.menuButtons[i] = b
		}
	} else {
		s.navButtons = layoutButtonsRight([]button{
			{ID: navAbout, Label: "About"},
			{ID: navProjects, Label: "Projects"},
			{ID: navTrail, Label: s.trailLabel()},
			{ID: navCreative, Label: "Creative mode"},
		}, s.width-pad, 10, 8, 1)
		s.menuButtons = nil
		s.menu.Close()
	}
	s.clampScroll()
}

// navRect 导航区域（屏幕坐标），菜单展开时包含下拉面板
func (s *LandingScene) navRect() page.Rect {
	h := config.NavBarHeight
	if s.menu.Open() {
		h += float64(len(s.menuButtons)) * 44
	}
	return page.Rect{X: 0, Y: 0, W: s.width, H: h}
}

func (s *LandingScene) maxScroll() float64 {
	return math.Max(0, s.docHeight-s.height)
}

func (s *LandingScene) clampScroll() {
	s.scrollTarget = math.Max(0, math.Min(s.scrollTarget, s.maxScroll()))
	s.scrollY = math.Max(0, math.Min(s.scrollY, s.maxScroll()))
}

// scrollTo 平滑滚动到文档位置
func (s *LandingScene) scrollTo(y float64) {
	s.scrollTarget = y
	s.clampScroll()
}

// Update 更新页面逻辑
func (s *LandingScene) Update(deltaTime float64) {
	f := s.tracker.Poll()

	if f.Escape {
		s.menu.HandleEscape()
	}
	if f.WheelY != 0 {
		s.scrollTo(s.scrollTarget - f.WheelY*config.ScrollWheelStep)
	}
	s.updateScroll()

	s.effects.forwardPointer(f)
	if f.Clicked {
		s.handleClick(f.X, f.Y)
	}

	v := s.viewport()
	s.fadeIn.Update(deltaTime)
	s.reveal.Update(deltaTime, v)
	s.observer.Update(v)
	if s.observer.ShowTypewriter() {
		s.typed = math.Min(s.typed+deltaTime*typewriterSpeed, float64(len(typewriterText)))
	} else {
		s.typed = 0
	}
	s.effects.update(deltaTime)
}

func (s *LandingScene) updateScroll() {
	d := s.scrollTarget - s.scrollY
	if math.Abs(d) < 0.5 {
		s.scrollY = s.scrollTarget
		return
	}
	s.scrollY += d * scrollEase
}

// handleClick 处理点击（屏幕坐标）
func (s *LandingScene) handleClick(x, y float64) {
	wasOpen := s.menu.Open()
	if s.menu.HandleClick(x, y, s.navRect()) {
		log.Printf("[LandingScene] Menu closed by outside click")
	}

	if wasOpen {
		if b, ok := hitButton(s.menuButtons, x, y); ok {
			s.activate(b.ID)
			s.menu.Close()
			return
		}
	}
	if b, ok := hitButton(s.navButtons, x, y); ok {
		s.activate(b.ID)
		return
	}
	if y < config.NavBarHeight {
		return
	}

	docY := y + s.scrollY
	if s.flipCard.HandleClick(x, docY) {
		return
	}
	for _, c := range s.cards {
		if c.Bounds.Contains(x, docY) {
			log.Printf("[LandingScene] Opening project %s", c.ID)
			s.deps.SceneManager.Open(PageProject, c.ID)
			return
		}
	}
}

func (s *LandingScene) activate(id string) {
	switch id {
	case navMenu:
		s.menu.Toggle()
	case navAbout:
		s.scrollTo(0)
	case navProjects:
		s.scrollTo(s.observer.Section.Y - config.NavBarHeight)
	case navCreative:
		s.effects.ctrl.ToggleCreative(s.effects.ctrl.CurrentMode() != mode.Creative)
	case navTrail:
		s.toggleTrail()
	}
}

// toggleTrail 在 orbit 与 free 两种轨迹之间切换并保存设置
func (s *LandingScene) toggleTrail() {
	next := config.TrailFree
	if s.effects.ctrl.Trail() == config.TrailFree {
		next = config.TrailOrbit
	}
	if err := s.deps.Settings.SetTrail(next); err != nil {
		log.Printf("[LandingScene] Warning: %v", err)
		return
	}
	if err := s.deps.Settings.Save(); err != nil {
		log.Printf("[LandingScene] Warning: failed to save settings: %v", err)
	}
	// 之后新建的场景也使用新变体
	s.deps.Settings.ApplyTo(s.deps.Effects)
	s.effects.ctrl.SetTrail(next)
	s.layout() // 按钮文字宽度变化
}

func (s *LandingScene) trailLabel() string {
	return "Trail: " + s.effects.ctrl.Trail()
}

// Draw 绘制页面
func (s *LandingScene) Draw(screen *ebiten.Image) {
	pal := themePalette(s.deps.Effects, s.deps.Settings.GetSettings().Theme)
	screen.Fill(pal.Background)

	s.effects.drawBackground(screen)
	s.drawHero(screen, pal)
	s.drawProjects(screen, pal)
	s.effects.drawOverlay(screen)
	s.drawNav(screen, pal)

	// 页面加载淡入：用背景色覆盖，逐渐变透明
	if a := 1 - s.fadeIn.Opacity(); a > 0 {
		fillRect(screen, page.Rect{W: s.width, H: s.height}, surface.WithAlpha(pal.Background, a))
	}
}

func (s *LandingScene) drawHero(screen *ebiten.Image, pal palette) {
	hb := s.heroBlock
	alpha := hb.Opacity()
	y := hb.Bounds.Y - s.scrollY + hb.OffsetY()
	drawText(screen, "folio", hb.Bounds.X, y, 3, surface.WithAlpha(pal.Accent, alpha))
	y += glyphHeight*3 + 20
	for _, line := range heroLines {
		for _, l := range wrapText(line, hb.Bounds.W, 1.2) {
			drawText(screen, l, hb.Bounds.X, y, 1.2, surface.WithAlpha(colorText, alpha))
			y += config.LineHeight * 1.2
		}
	}

	// 翻转卡片
	r := s.flipCard.Bounds
	r.Y -= s.scrollY
	if s.flipCard.Flipped() {
		fillRect(screen, r, pal.Accent)
		drawText(screen, "Thanks for visiting!", r.X+16, r.Y+r.H/2-20, 1, color.White)
		drawText(screen, "(click to flip back)", r.X+16, r.Y+r.H/2, 1, color.White)
	} else {
		fillRect(screen, r, colorNav)
		strokeRect(screen, r, 2, pal.Accent)
		drawText(screen, "About me", r.X+16, r.Y+16, 1.5, pal.Accent)
		drawText(screen, "(click to flip)", r.X+16, r.Bottom()-30, 1, colorMuted)
	}

	// 滚动提示（视差）
	iy := s.height - 60 + page.ParallaxOffset(s.scrollY) - s.scrollY
	label := "scroll"
	drawText(screen, label, (s.width-textWidth(label, 1))/2, iy, 1, colorMuted)
}

func (s *LandingScene) drawProjects(screen *ebiten.Image, pal palette) {
	top := s.observer.Section.Y - s.scrollY
	drawText(screen, "Projects", (s.width-textWidth("Projects", 2))/2, top+10, 2, colorText)
	if n := int(s.typed); n > 0 {
		t := typewriterText[:n]
		drawText(screen, t, (s.width-textWidth(typewriterText, 1))/2, top+50, 1, pal.Accent)
	}

	for _, c := range s.cards {
		alpha := c.reveal.Opacity()
		if alpha <= 0 {
			continue
		}
		r := c.Bounds
		r.Y += c.reveal.OffsetY() - s.scrollY
		fillRect(screen, r, surface.WithAlpha(colorNav, alpha))
		strokeRect(screen, r, 1, surface.WithAlpha(pal.Accent, alpha))
		drawText(screen, c.Title, r.X+16, r.Y+14, 1.5, surface.WithAlpha(colorText, alpha))
		y := r.Y + 44
		for i, l := range wrapText(c.Intro, r.W-32, 1) {
			if i == 3 {
				break
			}
			drawText(screen, l, r.X+16, y, 1, surface.WithAlpha(colorMuted, alpha))
			y += config.LineHeight
		}
	}
}

func (s *LandingScene) drawNav(screen *ebiten.Image, pal palette) {
	fillRect(screen, page.Rect{W: s.width, H: config.NavBarHeight}, colorNav)
	drawText(screen, "folio", config.ContentPadding, 18, 1.5, pal.Accent)

	creative := s.effects.ctrl.CurrentMode() == mode.Creative
	for _, b := range s.navButtons {
		drawButton(screen, b, (b.ID == navCreative && creative) || (b.ID == navMenu && s.menu.Open()), pal.Accent)
	}
	if !s.menu.Open() {
		return
	}
	for _, b := range s.menuButtons {
		fillRect(screen, b.Bounds, colorNav)
		label := b.Label
		if b.ID == navCreative && creative {
			label += " (on)"
		}
		drawText(screen, label, b.Bounds.X+config.ContentPadding, b.Bounds.Y+14, 1, colorText)
	}
}
