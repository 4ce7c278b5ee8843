package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// lifecycleScene 记录生命周期调用顺序
type lifecycleScene struct {
	MockScene
	name   string
	events *[]string
	width  int
	hidden bool
}

func (s *lifecycleScene) OnEnter()                 { *s.events = append(*s.events, s.name+":enter") }
func (s *lifecycleScene) OnExit()                  { *s.events = append(*s.events, s.name+":exit") }
func (s *lifecycleScene) Resize(width, height int) { s.width = width }
func (s *lifecycleScene) SetHidden(hidden bool)    { s.hidden = hidden }

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no scene initially")
	}
}

// TestSceneManagerDelegates verifies Update/Draw go to the active scene only.
func TestSceneManagerDelegates(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(second)
	sm.Update(0.016)
	sm.Draw(nil)

	if first.updateCalled || first.drawCalled {
		t.Error("inactive scene was updated or drawn")
	}
	if !second.updateCalled || !second.drawCalled {
		t.Error("active scene was not updated and drawn")
	}
	if second.deltaTime != 0.016 {
		t.Errorf("deltaTime = %v, want 0.016", second.deltaTime)
	}
}

// TestSceneManagerNoScene verifies Update/Draw without a scene do not panic.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
	sm.Resize(100, 100)
	sm.SetHidden(true)
	sm.Close()
}

// TestSceneManagerLifecycle 测试切换时 OnExit 先于 OnEnter
func TestSceneManagerLifecycle(t *testing.T) {
	var events []string
	sm := NewSceneManager()
	sm.Resize(800, 600)
	sm.SetHidden(true)

	landing := &lifecycleScene{name: "landing", events: &events}
	project := &lifecycleScene{name: "project", events: &events}

	sm.SwitchTo(landing)
	if landing.width != 800 || !landing.hidden {
		t.Errorf("new scene did not receive viewport state: width=%d hidden=%v", landing.width, landing.hidden)
	}
	sm.SwitchTo(project)
	sm.Close()

	want := []string{"landing:enter", "landing:exit", "project:enter", "project:exit"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

// TestSceneManagerOpen 测试通过工厂打开页面
func TestSceneManagerOpen(t *testing.T) {
	sm := NewSceneManager()
	sm.Open("landing", "")
	if sm.GetCurrentScene() != nil {
		t.Fatal("Open without factory should not switch")
	}

	var gotPage, gotParam string
	scene := &MockScene{}
	sm.SetSceneFactory(func(page, param string) Scene {
		gotPage, gotParam = page, param
		if page == "missing" {
			return nil
		}
		return scene
	})

	sm.Open("project", "search-engine")
	if gotPage != "project" || gotParam != "search-engine" {
		t.Errorf("factory got (%q, %q)", gotPage, gotParam)
	}
	if sm.GetCurrentScene() != scene {
		t.Error("scene not switched")
	}

	sm.Open("missing", "")
	if sm.GetCurrentScene() != scene {
		t.Error("failed Open replaced the active scene")
	}
}

// TestSceneManagerResizeForwarding 测试尺寸变化只在改变时转发
func TestSceneManagerResizeForwarding(t *testing.T) {
	var events []string
	s := &lifecycleScene{name: "s", events: &events}
	sm := NewSceneManager()
	sm.SwitchTo(s)

	sm.Resize(1024, 768)
	if s.width != 1024 {
		t.Errorf("width = %d, want 1024", s.width)
	}
	s.width = 0
	sm.Resize(1024, 768)
	if s.width != 0 {
		t.Error("unchanged size was forwarded")
	}
}
