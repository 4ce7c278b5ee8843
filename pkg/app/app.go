// Package app 提供页面应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/project"
	"github.com/decker502/folio/pkg/scenes"
	"github.com/decker502/folio/pkg/sched"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "folio"

// summariesTimeout 启动时读取项目列表的超时
const summariesTimeout = 5 * time.Second

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Page 启动页面："landing"（默认）或 "project"
	Page string
	// ProjectID 项目页显示的项目，为空时使用默认项目
	ProjectID string
	// DataSource 项目数据位置：空为嵌入数据，http(s) URL 或本地文件路径
	DataSource string
	// NoSave 不读写用户设置
	NoSave bool
}

// App 是页面应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scheduler                *sched.Scheduler
	sceneManager             *game.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	effects, err := config.LoadEffectsConfig(config.EffectsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("效果配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载效果配置: %s (%d 个主题)", config.EffectsConfigPath, len(effects.Themes))

	settings := game.NewSettingsManager(openStorage(cfg.NoSave))
	settings.ApplyTo(effects)

	src := project.NewSource(cfg.DataSource)
	log.Printf("[App] Project data source: %s", src)

	scheduler := sched.NewScheduler()
	sceneManager := game.NewSceneManager()
	deps := &scenes.Deps{
		Scheduler:    scheduler,
		Effects:      effects,
		Settings:     settings,
		SceneManager: sceneManager,
		Source:       src,
		Projects:     loadSummaries(src),
	}
	sceneManager.SetSceneFactory(scenes.NewFactory(deps))

	page := cfg.Page
	if page == "" {
		page = scenes.PageLanding
	}
	if page != scenes.PageLanding && page != scenes.PageProject {
		return nil, fmt.Errorf("未知页面: %q", cfg.Page)
	}
	sceneManager.Open(page, cfg.ProjectID)

	return &App{
		scheduler:    scheduler,
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// openStorage 打开设置存储；失败时降级为仅内存设置
func openStorage(noSave bool) *gdata.Manager {
	if noSave {
		log.Printf("[App] Settings persistence disabled")
		return nil
	}
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: settings directory unavailable: %v", err)
		return nil
	}
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: failed to open settings storage: %v", err)
		return nil
	}
	if p := utils.GetStoragePath(); p != "" {
		log.Printf("[App] Settings storage: %s", p)
	}
	return m
}

// loadSummaries 读取落地页的项目卡片列表
// 失败不是致命错误：记录警告，落地页不显示卡片
func loadSummaries(src project.Source) []project.Summary {
	ctx, cancel := context.WithTimeout(context.Background(), summariesTimeout)
	defer cancel()

	data, err := src.Load(ctx)
	if err != nil {
		log.Printf("[App] Warning: failed to load project list: %v", err)
		return nil
	}
	summaries := project.Summaries(data)
	log.Printf("[App] Loaded %d project summaries", len(summaries))
	return summaries
}

// Update 更新页面逻辑
// 每个 tick 调用一次（每秒 TicksPerSecond 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 窗口失焦相当于页面不可见
	a.sceneManager.SetHidden(!ebiten.IsFocused())

	a.Step()
	return nil
}

// Step 推进一个逻辑帧：先运行到期的定时器和帧回调，再更新当前页面
func (a *App) Step() {
	a.scheduler.Advance(1000.0 / config.TicksPerSecond)
	a.sceneManager.Update(1.0 / config.TicksPerSecond)
}

// Draw 绘制页面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑尺寸跟随窗口尺寸，页面按新尺寸重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return config.WindowWidth, config.WindowHeight
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Close 退出当前页面，停止所有定时器
func (a *App) Close() {
	a.sceneManager.Close()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
