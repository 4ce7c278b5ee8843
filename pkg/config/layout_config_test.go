package config

import "testing"

// TestLayoutConstants 验证布局常量之间的约束
func TestLayoutConstants(t *testing.T) {
	if MobileBreakpoint >= WindowWidth {
		t.Errorf("MobileBreakpoint %d should be below default WindowWidth %d", MobileBreakpoint, WindowWidth)
	}
	if NavHideThreshold <= 0 {
		t.Errorf("NavHideThreshold must be positive, got %v", NavHideThreshold)
	}
	if TicksPerSecond <= 0 {
		t.Errorf("TicksPerSecond must be positive, got %d", TicksPerSecond)
	}
}
