package ds3d

import "testing"

func TestExpand5to6_ZeroStaysZero(t *testing.T) {
	if got := expand5to6(0); got != 0 {
		t.Errorf("expand5to6(0): got %d, want 0", got)
	}
}

func TestExpand5to6_MaxValueReachesMax6Bit(t *testing.T) {
	if got := expand5to6(31); got != 63 {
		t.Errorf("expand5to6(31): got %d, want 63", got)
	}
}

func TestExpand5to6_NonzeroAlwaysOdd(t *testing.T) {
	for v := int32(1); v <= 31; v++ {
		got := expand5to6(v)
		if got%2 == 0 {
			t.Errorf("expand5to6(%d)=%d, want an odd result for nonzero input", v, got)
		}
	}
}

func TestClamp63_ClampsBothDirections(t *testing.T) {
	if got := clamp63(-5); got != 0 {
		t.Errorf("clamp63(-5): got %d, want 0", got)
	}
	if got := clamp63(100); got != 63 {
		t.Errorf("clamp63(100): got %d, want 63", got)
	}
	if got := clamp63(40); got != 40 {
		t.Errorf("clamp63(40): got %d, want 40", got)
	}
}

func TestShadePixel_UntexturedModulateUsesVertexColorAndPolyAlpha(t *testing.T) {
	p := &Polygon{Attr: packTestAttr(20, BlendModulate, 0)}
	got := shadePixel(p, 0, &RenderTables{}, 10, 20, 30, texSample{}, false)
	r, g, b, a := unpackColor(got)
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("untextured color: got (%d,%d,%d), want (10,20,30)", r, g, b)
	}
	if a != 20 {
		t.Errorf("untextured alpha: got %d, want poly alpha 20", a)
	}
}

func TestShadePixel_WireframeForcesOpaqueAlpha(t *testing.T) {
	p := &Polygon{Attr: packTestAttr(0, BlendModulate, 0)} // alpha 0 -> wireframe
	got := shadePixel(p, 0, &RenderTables{}, 10, 10, 10, texSample{}, false)
	_, _, _, a := unpackColor(got)
	if a != 31 {
		t.Errorf("wireframe alpha: got %d, want 31", a)
	}
}

func TestShadePixel_DecalFullyOpaqueTexelReplacesVertexColor(t *testing.T) {
	p := &Polygon{Attr: packTestAttr(31, BlendDecal, 0)}
	tex := texSample{R: 31, G: 0, B: 0, A: 31}
	got := shadePixel(p, DispTexturesEnable, &RenderTables{}, 0, 63, 63, tex, true)
	r, g, b, _ := unpackColor(got)
	if r != 63 || g != 0 || b != 0 {
		t.Errorf("decal opaque texel: got (%d,%d,%d), want texel color (63,0,0)", r, g, b)
	}
}

func TestShadePixel_DecalFullyTransparentTexelKeepsVertexColor(t *testing.T) {
	p := &Polygon{Attr: packTestAttr(31, BlendDecal, 0)}
	tex := texSample{R: 31, G: 0, B: 0, A: 0}
	got := shadePixel(p, DispTexturesEnable, &RenderTables{}, 5, 6, 7, tex, true)
	r, g, b, _ := unpackColor(got)
	if r != 5 || g != 6 || b != 7 {
		t.Errorf("decal transparent texel: got (%d,%d,%d), want vertex color (5,6,7)", r, g, b)
	}
}

func TestShadePixel_ModulateWithWhiteVertexAndWhiteTexelStaysWhite(t *testing.T) {
	p := &Polygon{Attr: packTestAttr(31, BlendModulate, 0)}
	tex := texSample{R: 31, G: 31, B: 31, A: 31}
	got := shadePixel(p, DispTexturesEnable, &RenderTables{}, 63, 63, 63, tex, true)
	r, g, b, a := unpackColor(got)
	if r != 63 || g != 63 || b != 63 {
		t.Errorf("modulate white*white: got (%d,%d,%d), want (63,63,63)", r, g, b)
	}
	if a != 31 {
		t.Errorf("modulate alpha: got %d, want 31", a)
	}
}

func packTestAttr(alpha, blendMode, id uint32) uint32 {
	return (alpha&0x1F)<<16 | (blendMode&3)<<4 | (id&0x3F)<<24
}
