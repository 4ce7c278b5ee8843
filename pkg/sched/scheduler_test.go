package sched

import "testing"

// TestEveryFiresOncePerInterval 验证定时器每个间隔恰好触发一次
func TestEveryFiresOncePerInterval(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every(1000, func() { count++ })

	s.Advance(999)
	if count != 0 {
		t.Fatalf("fired early: count=%d", count)
	}
	s.Advance(1)
	if count != 1 {
		t.Fatalf("after 1000ms: count=%d, want 1", count)
	}
	s.Advance(5000)
	if count != 6 {
		t.Errorf("after 6000ms: count=%d, want 6", count)
	}
}

// TestEveryClockAtFiring 验证回调执行时时钟位于到期时间
func TestEveryClockAtFiring(t *testing.T) {
	s := NewScheduler()
	var seen []float64
	s.Every(250, func() { seen = append(seen, s.Now()) })

	s.Advance(1000)

	want := []float64{250, 500, 750, 1000}
	if len(seen) != len(want) {
		t.Fatalf("got %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("firing %d at %.0f, want %.0f", i, seen[i], want[i])
		}
	}
}

// TestEveryRejectsNonPositive 验证非法间隔返回无效句柄
func TestEveryRejectsNonPositive(t *testing.T) {
	s := NewScheduler()
	if h := s.Every(0, func() {}); h != 0 {
		t.Errorf("Every(0) = %d, want 0", h)
	}
	if s.ActiveTimers() != 0 {
		t.Errorf("ActiveTimers = %d, want 0", s.ActiveTimers())
	}
}

// TestAfterFiresOnce 验证延迟回调只触发一次
func TestAfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	count := 0
	h := s.After(100, func() { count++ })

	s.Advance(100)
	s.Advance(1000)

	if count != 1 {
		t.Errorf("count=%d, want 1", count)
	}
	if s.Active(h) {
		t.Error("handle should be inactive after firing")
	}
}

// TestCancelIsIdempotent 验证重复取消是安全的空操作
func TestCancelIsIdempotent(t *testing.T) {
	s := NewScheduler()
	count := 0
	h := s.Every(10, func() { count++ })

	s.Cancel(h)
	s.Cancel(h)
	s.Cancel(0)
	s.Cancel(Handle(9999))

	s.Advance(100)
	if count != 0 {
		t.Errorf("cancelled timer fired %d times", count)
	}
}

// TestRequestFrameRunsNextAdvance 验证帧回调在下一次推进时执行且不重入
func TestRequestFrameRunsNextAdvance(t *testing.T) {
	s := NewScheduler()
	frames := 0
	var loop func()
	loop = func() {
		frames++
		s.RequestFrame(loop)
	}
	s.RequestFrame(loop)

	if s.PendingFrames() != 1 {
		t.Fatalf("PendingFrames = %d, want 1", s.PendingFrames())
	}

	for i := 0; i < 5; i++ {
		s.Advance(16)
	}
	if frames != 5 {
		t.Errorf("frames=%d, want 5 (one per Advance)", frames)
	}
	if s.PendingFrames() != 1 {
		t.Errorf("PendingFrames = %d, want 1", s.PendingFrames())
	}
}

// TestCancelFrame 验证取消帧回调后不再执行
func TestCancelFrame(t *testing.T) {
	s := NewScheduler()
	ran := false
	h := s.RequestFrame(func() { ran = true })
	s.Cancel(h)

	s.Advance(16)

	if ran {
		t.Error("cancelled frame callback ran")
	}
	if s.PendingFrames() != 0 {
		t.Errorf("PendingFrames = %d, want 0", s.PendingFrames())
	}
}

// TestTimersBeforeFrames 验证同一次推进中定时器先于帧回调执行
func TestTimersBeforeFrames(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.RequestFrame(func() { order = append(order, "frame") })
	s.After(5, func() { order = append(order, "timer") })

	s.Advance(16)

	if len(order) != 2 || order[0] != "timer" || order[1] != "frame" {
		t.Errorf("order = %v, want [timer frame]", order)
	}
}
