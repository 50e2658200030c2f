package ds3d

import "testing"

func TestFogDensity_BeforeOffsetIsZero(t *testing.T) {
	tables := &RenderTables{}
	tables.Fog.Offset = 1000
	if got := fogDensity(500, tables); got != 0 {
		t.Errorf("z below fog offset: got %d, want 0", got)
	}
}

func TestFogDensity_InterpolatesBetweenTableEntries(t *testing.T) {
	tables := &RenderTables{}
	tables.Fog.Density[0] = 10
	tables.Fog.Density[1] = 20
	if got := fogDensity(262144, tables); got != 15 {
		t.Errorf("halfway between density[0] and density[1]: got %d, want 15", got)
	}
}

func TestFogDensity_ClampsAtMaximum(t *testing.T) {
	tables := &RenderTables{}
	for i := range tables.Fog.Density {
		tables.Fog.Density[i] = 127
	}
	if got := fogDensity(1 << 30, tables); got != 128 {
		t.Errorf("saturated density: got %d, want clamped to 128", got)
	}
}

func TestFogBlendChannel_FullDensityUsesFogColor(t *testing.T) {
	if got := fogBlendChannel(63, 0, 128); got != 63 {
		t.Errorf("full fog density: got %d, want fog channel 63", got)
	}
}

func TestFogBlendChannel_ZeroDensityUsesSourceColor(t *testing.T) {
	if got := fogBlendChannel(63, 10, 0); got != 10 {
		t.Errorf("zero fog density: got %d, want source channel 10", got)
	}
}

func TestEdgeMarkLine_MarksPixelAdjacentToHigherDepthDifferentID(t *testing.T) {
	var fb frameBuffers
	tables := &RenderTables{}
	tables.Edge[0] = 0x001F // pure red at 5-bit scale

	y := int32(10)
	addr := pixelAddr(50, y)
	fb.Attr[0][addr] = EdgeLeft | (1 << AttrOpaqueIDShift)
	fb.Depth[0][addr] = 100
	fb.Color[0][addr] = packColor(0, 0, 0, 31)

	neighbor := addr - 1
	fb.Attr[0][neighbor] = 2 << AttrOpaqueIDShift
	fb.Depth[0][neighbor] = 200

	edgeMarkLine(&fb, tables, y)

	r, g, b, _ := unpackColor(fb.Color[0][addr])
	if r != 63 || g != 0 || b != 0 {
		t.Errorf("edge-marked pixel color: got (%d,%d,%d), want pure red (63,0,0)", r, g, b)
	}
	cov := (fb.Attr[0][addr] & AttrCoverageMask) >> AttrCoverageShift
	if cov != 16 {
		t.Errorf("edge-marked coverage: got %d, want 16", cov)
	}
}

func TestEdgeMarkLine_SkipsPixelsWithoutEdgeBit(t *testing.T) {
	var fb frameBuffers
	tables := &RenderTables{}
	y := int32(10)
	addr := pixelAddr(50, y)
	fb.Color[0][addr] = packColor(5, 6, 7, 31)
	fb.Attr[0][addr] = 1 << AttrOpaqueIDShift // no edge bits set

	edgeMarkLine(&fb, tables, y)

	r, g, b, _ := unpackColor(fb.Color[0][addr])
	if r != 5 || g != 6 || b != 7 {
		t.Error("non-edge pixel should be left untouched")
	}
}

func TestAALine_FullCoverageIsUntouched(t *testing.T) {
	var fb frameBuffers
	y := int32(5)
	addr := pixelAddr(20, y)
	fb.Color[0][addr] = packColor(1, 2, 3, 31)
	fb.Attr[0][addr] = EdgeLeft | (31 << AttrCoverageShift)

	aaLine(&fb, y)

	r, g, b, _ := unpackColor(fb.Color[0][addr])
	if r != 1 || g != 2 || b != 3 {
		t.Error("full-coverage pixel should not be blended")
	}
}

func TestAALine_ZeroCoverageReplacesWithBottomLayer(t *testing.T) {
	var fb frameBuffers
	y := int32(5)
	addr := pixelAddr(20, y)
	fb.Color[0][addr] = packColor(1, 1, 1, 31)
	fb.Attr[0][addr] = EdgeLeft // edge pixel, coverage field 0
	fb.Color[1][addr] = packColor(9, 9, 9, 31)

	aaLine(&fb, y)

	r, g, b, _ := unpackColor(fb.Color[0][addr])
	if r != 9 || g != 9 || b != 9 {
		t.Errorf("zero-coverage pixel: got (%d,%d,%d), want bottom layer color (9,9,9)", r, g, b)
	}
	cov := (fb.Attr[0][addr] & AttrCoverageMask) >> AttrCoverageShift
	if cov != 31 {
		t.Errorf("coverage after replace: got %d, want reset to 31", cov)
	}
}
