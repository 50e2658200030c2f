package ds3d

import "testing"

func TestInterpolator_LinearMidpoint(t *testing.T) {
	var ip interpolator
	ip.setup(axisX, 0, 16, 4096, 4096) // equal w -> linear mode
	ip.setX(8)
	got := ip.interpolate(0, 64)
	if got != 32 {
		t.Errorf("linear midpoint: got %d, want 32", got)
	}
}

func TestInterpolator_EndpointsReturnExactValues(t *testing.T) {
	var ip interpolator
	ip.setup(axisX, 10, 20, 4096, 8192)
	ip.setX(10)
	if got := ip.interpolate(100, 200); got != 100 {
		t.Errorf("at x0: got %d, want 100", got)
	}
	ip.setX(20)
	if got := ip.interpolate(100, 200); got != 200 {
		t.Errorf("at x1: got %d, want 200", got)
	}
}

func TestInterpolator_DegenerateSpanReturnsY0(t *testing.T) {
	var ip interpolator
	ip.setup(axisX, 5, 5, 4096, 4096)
	ip.setX(5)
	if got := ip.interpolate(7, 99); got != 7 {
		t.Errorf("degenerate span: got %d, want 7", got)
	}
}

func TestInterpolator_EqualAttributeValuesShortCircuit(t *testing.T) {
	var ip interpolator
	ip.setup(axisX, 0, 100, 4096, 9000)
	ip.setX(50)
	if got := ip.interpolate(42, 42); got != 42 {
		t.Errorf("equal endpoints: got %d, want 42", got)
	}
}

func TestInterpolator_InterpolateZLinearModeMatchesDisplacement(t *testing.T) {
	var ip interpolator
	ip.setup(axisX, 0, 16, 4096, 4096)
	ip.setX(0)
	if got := ip.interpolateZ(0, 2560, false); got != 0 {
		t.Errorf("z at x0: got %d, want 0", got)
	}
	ip.setX(16)
	if got := ip.interpolateZ(0, 2560, false); got != 2560 {
		t.Errorf("z at x1: got %d, want 2560", got)
	}
}

func TestInterpolator_InterpolateZHandlesDescendingEndpoints(t *testing.T) {
	var ip interpolator
	ip.setup(axisX, 0, 16, 4096, 4096)
	ip.setX(16)
	got := ip.interpolateZ(1600, 0, false)
	if got != 0 {
		t.Errorf("descending z at x1: got %d, want 0", got)
	}
}

func TestInterpolator_InterpolateZWBufferDelegatesToInterpolate(t *testing.T) {
	var ip interpolator
	ip.setup(axisX, 0, 16, 4096, 4096)
	ip.setX(8)
	gotZ := ip.interpolateZ(0, 64, true)
	gotY := ip.interpolate(0, 64)
	if gotZ != gotY {
		t.Errorf("w-buffer interpolateZ diverged from interpolate: %d != %d", gotZ, gotY)
	}
}
