package ds3d

import "testing"

func TestSelectDepthTest_EqualBitPicksZOrWVariant(t *testing.T) {
	p := &Polygon{Attr: PolyEqualDepthTest}
	if got := selectDepthTest(p); got != depthTestEqualZ {
		t.Errorf("z-buffered equal-depth poly: got %v, want depthTestEqualZ", got)
	}

	p = &Polygon{Attr: PolyEqualDepthTest, WBuffer: true}
	if got := selectDepthTest(p); got != depthTestEqualW {
		t.Errorf("w-buffered equal-depth poly: got %v, want depthTestEqualW", got)
	}
}

func TestSelectDepthTest_FrontFacingGetsSpecialVariant(t *testing.T) {
	p := &Polygon{FacingView: true}
	if got := selectDepthTest(p); got != depthTestLessFrontFacing {
		t.Errorf("front-facing poly: got %v, want depthTestLessFrontFacing", got)
	}

	p = &Polygon{FacingView: false}
	if got := selectDepthTest(p); got != depthTestLess {
		t.Errorf("back-facing poly: got %v, want depthTestLess", got)
	}
}

func TestDepthTestPasses_Less(t *testing.T) {
	if !depthTestPasses(depthTestLess, 10, 20, 0) {
		t.Error("z=10 should pass against dst=20 under strict less-than")
	}
	if depthTestPasses(depthTestLess, 20, 20, 0) {
		t.Error("z==dst should not pass under strict less-than")
	}
	if depthTestPasses(depthTestLess, 30, 20, 0) {
		t.Error("z=30 should not pass against dst=20")
	}
}

func TestDepthTestPasses_LessFrontFacingAllowsEqualAgainstBackFacingOpaque(t *testing.T) {
	backFacingOpaqueAttr := uint32(0x00000010)
	if !depthTestPasses(depthTestLessFrontFacing, 20, 20, backFacingOpaqueAttr) {
		t.Error("equal z against a back-facing opaque destination should pass")
	}
	if depthTestPasses(depthTestLessFrontFacing, 20, 20, 0) {
		t.Error("equal z against a non-back-facing destination should not pass")
	}
}

func TestDepthTestPasses_EqualZWithinWindow(t *testing.T) {
	if !depthTestPasses(depthTestEqualZ, 100, 100, 0) {
		t.Error("identical z should pass the equal-z test")
	}
	if !depthTestPasses(depthTestEqualZ, 100, 100+depthEqualZWindow-1, 0) {
		t.Error("z just inside the window should pass")
	}
	if depthTestPasses(depthTestEqualZ, 100, 100+depthEqualZWindow+1, 0) {
		t.Error("z well outside the window should not pass")
	}
}

func TestDepthTestPasses_EqualWNarrowerWindowThanEqualZ(t *testing.T) {
	if depthEqualWWindow >= depthEqualZWindow {
		t.Fatalf("expected w-window (%d) to be narrower than z-window (%d)", depthEqualWWindow, depthEqualZWindow)
	}
	if depthTestPasses(depthTestEqualW, 100, 100+depthEqualWWindow+1, 0) {
		t.Error("z outside the narrower w-window should not pass")
	}
}

func TestWindowCheck_SymmetricAroundZero(t *testing.T) {
	if !windowCheck(0, 10) {
		t.Error("zero diff should always pass")
	}
	if !windowCheck(-10, 10) {
		t.Error("diff of exactly -radius should pass")
	}
	if !windowCheck(10, 10) {
		t.Error("diff of exactly +radius should pass")
	}
	if windowCheck(11, 10) {
		t.Error("diff just outside radius should not pass")
	}
}
