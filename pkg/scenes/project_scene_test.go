package scenes

import (
	"strings"
	"testing"
	"time"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
)

// TestProjectSceneLoad 测试异步加载后的页面内容
func TestProjectSceneLoad(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantError  string
		wantBlocks int
	}{
		{"known project", "search-engine", "", 5},
		{"unknown project", "missing", "Project not found", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _ := newTestDeps(t, staticSource{testProjectData})
			s := NewProjectScene(deps, tt.id)
			deps.SceneManager.SwitchTo(s)
			defer deps.SceneManager.Close()

			waitLoaded(t, deps, s)

			if s.Page().Error != tt.wantError {
				t.Errorf("Error = %q, want %q", s.Page().Error, tt.wantError)
			}
			if len(s.blocks) != tt.wantBlocks {
				t.Errorf("blocks = %d, want %d", len(s.blocks), tt.wantBlocks)
			}
			if len(s.sideButtons) != tt.wantBlocks {
				t.Errorf("sidebar links = %d, want %d", len(s.sideButtons), tt.wantBlocks)
			}
		})
	}
}

// TestProjectSceneSidebarScroll 测试侧边栏链接滚动与导航栏自动隐藏
func TestProjectSceneSidebarScroll(t *testing.T) {
	deps, in := newTestDeps(t, staticSource{testProjectData})
	s := NewProjectScene(deps, "search-engine")
	deps.SceneManager.SwitchTo(s)
	defer deps.SceneManager.Close()
	waitLoaded(t, deps, s)
	deps.SceneManager.Resize(config.WindowWidth, 300)

	if s.maxScroll() <= 0 {
		t.Fatal("document should be scrollable in a short viewport")
	}
	x, y := center(findButton(t, s.sideButtons, "future"))
	click(deps, in, x, y)

	if s.scrollTarget <= config.NavHideThreshold {
		t.Fatalf("scrollTarget = %.1f, want a downward scroll", s.scrollTarget)
	}
	for i := 0; i < 120; i++ {
		step(deps)
	}
	if s.scrollY != s.scrollTarget {
		t.Errorf("scrollY = %.1f, want %.1f", s.scrollY, s.scrollTarget)
	}
	if !s.nav.Hidden() {
		t.Error("nav should hide after scrolling down")
	}
	if s.spy.Active() == "" {
		t.Error("scroll spy should mark a section active")
	}
}

// TestProjectSceneTheme 测试主题按钮落下装饰物并保存设置
func TestProjectSceneTheme(t *testing.T) {
	deps, in := newTestDeps(t, staticSource{testProjectData})
	s := NewProjectScene(deps, "search-engine")
	deps.SceneManager.SwitchTo(s)
	defer deps.SceneManager.Close()

	x, y := center(findButton(t, s.navButtons, "theme-snow"))
	click(deps, in, x, y)

	if got := deps.Settings.GetSettings().Theme; got != "theme-snow" {
		t.Errorf("saved theme = %q, want theme-snow", got)
	}
	if s.picker.Current() != "theme-snow" {
		t.Errorf("current theme = %q", s.picker.Current())
	}
	want := deps.Effects.Themes["theme-snow"].Count
	if n := s.effects.stage.CountKind(components.ElementFalling); n != want {
		t.Errorf("falling items = %d, want %d", n, want)
	}
}

// TestProjectSceneBack 测试返回落地页
func TestProjectSceneBack(t *testing.T) {
	deps, in := newTestDeps(t, staticSource{testProjectData})
	deps.SceneManager.Open(PageProject, "weather-dashboard")
	defer deps.SceneManager.Close()

	s := deps.SceneManager.GetCurrentScene().(*ProjectScene)
	x, y := center(findButton(t, s.navButtons, navBack))
	click(deps, in, x, y)

	if _, ok := deps.SceneManager.GetCurrentScene().(*LandingScene); !ok {
		t.Errorf("current scene = %T, want *LandingScene", deps.SceneManager.GetCurrentScene())
	}
}

// TestProjectSceneExitCancelsLoad 测试离开页面时取消未完成的加载
func TestProjectSceneExitCancelsLoad(t *testing.T) {
	deps, _ := newTestDeps(t, blockingSource{})
	s := NewProjectScene(deps, "search-engine")
	deps.SceneManager.SwitchTo(s)
	deps.SceneManager.Close()

	select {
	case p := <-s.result:
		if !p.Failed() || !strings.Contains(p.Error, "canceled") {
			t.Errorf("Error = %q, want a cancellation message", p.Error)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("load was not cancelled")
	}
}
