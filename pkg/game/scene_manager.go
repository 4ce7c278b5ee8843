package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于按页面名和参数（项目ID）创建场景，避免循环依赖
type SceneFactory func(page, param string) Scene

// SceneManager manages which page is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	width        int
	height       int
	hidden       bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
// 旧场景的 OnExit 先于新场景的 OnEnter 调用；新场景会立即收到当前视口尺寸和可见性。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if lc, ok := sm.currentScene.(Lifecycle); ok {
		lc.OnExit()
	}
	sm.currentScene = scene
	if scene == nil {
		return
	}
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
	if v, ok := scene.(VisibilityAware); ok && sm.hidden {
		v.SetHidden(true)
	}
	if lc, ok := scene.(Lifecycle); ok {
		lc.OnEnter()
	}
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Open 通过工厂创建并切换到指定页面
// page: "landing" 或 "project"；param: 项目ID（可为空）
func (sm *SceneManager) Open(page, param string) {
	log.Printf("[SceneManager] 打开页面: %s %s", page, param)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(page, param)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建页面: %s", page)
		return
	}
	sm.SwitchTo(newScene)
}

// Resize 记录视口尺寸并转发给当前场景（尺寸未变化时不转发）
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// SetHidden 记录可见性并转发给当前场景（未变化时不转发）
func (sm *SceneManager) SetHidden(hidden bool) {
	if hidden == sm.hidden {
		return
	}
	sm.hidden = hidden
	if v, ok := sm.currentScene.(VisibilityAware); ok {
		v.SetHidden(hidden)
	}
}

// Close 退出当前场景（程序关闭时调用）
func (sm *SceneManager) Close() {
	if lc, ok := sm.currentScene.(Lifecycle); ok {
		lc.OnExit()
	}
	sm.currentScene = nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
