package scenes

import (
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/mode"
	"github.com/decker502/folio/pkg/stage"
	"github.com/decker502/folio/pkg/surface"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// effectsLayer 页面装饰效果层（舞台元素 + 创意模式表面）
// 覆盖整个视口，坐标与屏幕坐标一致
type effectsLayer struct {
	stage    *stage.Stage
	renderer *stage.Renderer
	trail    *surface.ImageSurface
	paint    *surface.ImageSurface
	ctrl     *mode.Controller
}

func newEffectsLayer(deps *Deps, width, height int) *effectsLayer {
	l := &effectsLayer{
		stage:    stage.New(width, height),
		renderer: stage.NewRenderer(),
		trail:    surface.NewImageSurface(width, height),
		paint:    surface.NewImageSurface(width, height),
	}
	for name, tc := range deps.Effects.Themes {
		if c, err := config.ParseHexColor(tc.Accent); err == nil {
			l.renderer.ThemeColors[name] = c
		}
		l.renderer.ItemSize = tc.ItemSize
	}
	l.ctrl = mode.NewController(mode.Options{
		Scheduler: deps.Scheduler,
		Host:      l.stage,
		Config:    deps.Effects,
		Rand:      deps.rng(),
		Trail:     l.trail,
		Paint:     l.paint,
	})
	return l
}

// update 推进舞台元素动画（元素结束时自行移除）
func (l *effectsLayer) update(deltaTime float64) {
	l.stage.Advance(deltaTime)
}

// drawBackground 绘制舞台元素（位于页面内容之下）
func (l *effectsLayer) drawBackground(screen *ebiten.Image) {
	l.renderer.Draw(screen, l.stage)
}

// drawOverlay 绘制创意模式的画笔表面和轨迹表面（覆盖在页面内容之上）
func (l *effectsLayer) drawOverlay(screen *ebiten.Image) {
	l.paint.DrawTo(screen)
	l.trail.DrawTo(screen)
}

// forwardPointer 将本帧指针事件转发给模式控制器
func (l *effectsLayer) forwardPointer(f utils.PointerFrame) {
	if f.Moved {
		l.ctrl.PointerMove(f.X, f.Y)
	}
	if f.JustPressed {
		l.ctrl.PointerDown(f.X, f.Y)
	}
	if f.JustReleased {
		l.ctrl.PointerUp()
	}
	if f.Clicked {
		l.ctrl.Click(f.X, f.Y)
	}
}

func (l *effectsLayer) resize(width, height int) {
	l.stage.Resize(width, height)
	l.ctrl.Resize(width, height)
}
