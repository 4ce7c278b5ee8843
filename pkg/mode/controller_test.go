package mode

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/sched"
	"github.com/decker502/folio/pkg/stage"
	"github.com/decker502/folio/pkg/surface"
)

const frameMs = 1000.0 / 60

type fixture struct {
	sched *sched.Scheduler
	stage *stage.Stage
	trail *surface.Recorder
	paint *surface.Recorder
	ctrl  *Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		sched: sched.NewScheduler(),
		stage: stage.New(800, 600),
		trail: surface.NewRecorder(800, 600),
		paint: surface.NewRecorder(800, 600),
	}
	f.ctrl = NewController(Options{
		Scheduler: f.sched,
		Host:      f.stage,
		Config:    config.DefaultEffectsConfig(),
		Rand:      rand.New(rand.NewPCG(1, 1)),
		Trail:     f.trail,
		Paint:     f.paint,
	})
	return f
}

func (f *fixture) advance(ms float64) {
	for elapsed := 0.0; elapsed < ms; elapsed += frameMs {
		f.sched.Advance(frameMs)
	}
}

// TestStartsInAmbient 测试默认以环境模式启动
func TestStartsInAmbient(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Start()

	if f.ctrl.CurrentMode() != Ambient {
		t.Errorf("CurrentMode = %s, want ambient", f.ctrl.CurrentMode())
	}
	if f.ctrl.ActiveAmbientSpawners() != 2 {
		t.Errorf("ActiveAmbientSpawners = %d, want 2", f.ctrl.ActiveAmbientSpawners())
	}
	if f.sched.PendingFrames() != 0 {
		t.Errorf("PendingFrames = %d, want 0", f.sched.PendingFrames())
	}
}

// TestEnableCreativeStopsAmbient 测试进入创意模式后立即没有环境生成器
func TestEnableCreativeStopsAmbient(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Start()
	f.advance(2000)

	f.ctrl.SetMode(Creative)

	if n := f.ctrl.ActiveAmbientSpawners(); n != 0 {
		t.Errorf("ActiveAmbientSpawners = %d, want 0", n)
	}
	if f.sched.ActiveTimers() != 0 {
		t.Errorf("ActiveTimers = %d, want 0", f.sched.ActiveTimers())
	}
	if !f.ctrl.LoopStats().Running {
		t.Error("creative loop not running")
	}

	leaves := f.stage.CountKind(components.ElementLeaf)
	f.advance(3000)
	if got := f.stage.CountKind(components.ElementLeaf); got > leaves {
		t.Errorf("leaves spawned in creative mode: %d -> %d", leaves, got)
	}
}

// TestDisableCreativeCancelsFrames 测试退出创意模式后没有待执行帧且不再绘制
func TestDisableCreativeCancelsFrames(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Start()
	f.ctrl.SetMode(Creative)
	f.ctrl.PointerDown(100, 100)
	f.advance(500)

	f.ctrl.SetMode(Ambient)

	if f.sched.PendingFrames() != 0 {
		t.Fatalf("PendingFrames = %d, want 0", f.sched.PendingFrames())
	}
	clears := f.trail.Clears()
	f.advance(5000)
	if f.trail.Clears() != clears {
		t.Error("trail surface touched after leaving creative mode")
	}
	if !f.trail.Blank() || !f.paint.Blank() {
		t.Error("surfaces not cleared")
	}
	st := f.ctrl.LoopStats()
	if st.Particles != 0 || st.Dots != 0 {
		t.Errorf("creative pools not cleared: %+v", st)
	}
	if f.ctrl.ActiveAmbientSpawners() != 2 {
		t.Errorf("ambient spawners not restarted: %d", f.ctrl.ActiveAmbientSpawners())
	}
}

// TestModesNeverOverlap 测试多次切换后两种模式的资源不会同时活动
func TestModesNeverOverlap(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Start()

	for i := 0; i < 10; i++ {
		f.ctrl.ToggleCreative(i%2 == 0)
		f.advance(100)

		ambient := f.ctrl.AmbientActive()
		creative := f.ctrl.LoopStats().Running
		if ambient && creative {
			t.Fatalf("iteration %d: ambient and creative both active", i)
		}
		if f.sched.PendingFrames() > 1 {
			t.Fatalf("iteration %d: %d pending frames", i, f.sched.PendingFrames())
		}
	}
}

// TestHiddenPausesAmbientOnly 测试可见性只影响环境生成器
func TestHiddenPausesAmbientOnly(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Start()

	f.ctrl.SetHidden(true)
	if f.ctrl.AmbientActive() {
		t.Error("ambient spawners running while hidden")
	}
	f.ctrl.SetHidden(false)
	if f.ctrl.ActiveAmbientSpawners() != 2 {
		t.Errorf("ambient spawners not resumed: %d", f.ctrl.ActiveAmbientSpawners())
	}

	f.ctrl.SetMode(Creative)
	f.ctrl.SetHidden(true)
	f.ctrl.SetHidden(false)
	if f.ctrl.AmbientActive() {
		t.Error("visibility change started ambient spawners in creative mode")
	}
	if !f.ctrl.LoopStats().Running {
		t.Error("creative loop stopped by visibility change")
	}
}

// TestLeaveCreativeWhileHidden 测试隐藏时退出创意模式不会启动环境生成器
func TestLeaveCreativeWhileHidden(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Start()
	f.ctrl.SetMode(Creative)
	f.ctrl.SetHidden(true)

	f.ctrl.SetMode(Ambient)
	if f.ctrl.AmbientActive() {
		t.Error("ambient spawners started while hidden")
	}

	f.ctrl.SetHidden(false)
	if f.ctrl.ActiveAmbientSpawners() != 2 {
		t.Errorf("ActiveAmbientSpawners = %d, want 2", f.ctrl.ActiveAmbientSpawners())
	}
}

// TestControllerStop 测试停止控制器后所有任务都被取消
func TestControllerStop(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Start()
	f.ctrl.SetMode(Creative)

	f.ctrl.Stop()
	f.ctrl.Stop()

	if f.sched.PendingFrames() != 0 || f.sched.ActiveTimers() != 0 {
		t.Errorf("tasks left: frames=%d timers=%d", f.sched.PendingFrames(), f.sched.ActiveTimers())
	}

	// 未启动时切换模式只记录状态
	f.ctrl.SetMode(Ambient)
	if f.ctrl.AmbientActive() {
		t.Error("SetMode on stopped controller started spawners")
	}
}

// TestModeChangeListener 测试模式变化通知
func TestModeChangeListener(t *testing.T) {
	f := newFixture(t)
	var got []Mode
	f.ctrl.OnModeChange(func(m Mode) { got = append(got, m) })
	f.ctrl.Start()

	f.ctrl.SetMode(Creative)
	f.ctrl.SetMode(Creative)
	f.ctrl.SetMode(Ambient)

	if len(got) != 2 || got[0] != Creative || got[1] != Ambient {
		t.Errorf("notifications = %v, want [creative ambient]", got)
	}
}

// TestThemeBurst 测试主题下落物只在环境模式下生成
func TestThemeBurst(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Start()

	if n := f.ctrl.SpawnThemeBurst("theme-snow"); n != 50 {
		t.Errorf("SpawnThemeBurst(snow) = %d, want 50", n)
	}
	f.ctrl.SetMode(Creative)
	if n := f.ctrl.SpawnThemeBurst("theme-green"); n != 0 {
		t.Errorf("SpawnThemeBurst in creative = %d, want 0", n)
	}
}

// TestResizeWithoutObjects 测试没有存活对象时调整尺寸
func TestResizeWithoutObjects(t *testing.T) {
	f := newFixture(t)

	f.ctrl.Resize(1920, 1080)

	if w, h := f.trail.Size(); w != 1920 || h != 1080 {
		t.Errorf("trail size = %dx%d", w, h)
	}
	if w, h := f.paint.Size(); w != 1920 || h != 1080 {
		t.Errorf("paint size = %dx%d", w, h)
	}
}
