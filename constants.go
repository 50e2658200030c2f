// constants.go - fixed geometry and bitfield constants for the DS3D rasterizer

/*
ds3draster - software rasterizer reproducing a legacy handheld console's
fixed-function 3D graphics pipeline, scanline by scanline.

(c) 2026 Zotley Systems
License: GPLv3 or later
*/

package ds3d

// Visible frame dimensions and the one-pixel border that surrounds them so
// edge marking can always read its four neighbors without bounds checks.
const (
	ScreenWidth     = 256
	ScreenHeight    = 192
	ScanlineWidth   = ScreenWidth + 2 // 258, one border column each side
	NumScanlines    = ScreenHeight + 2
	BufferSize      = ScanlineWidth * NumScanlines
	FirstPixelOffset = ScanlineWidth + 1 // border row + border column
	NumLayers       = 2
)

// Attribute word bit layout
const (
	AttrEdgeMask       = 0x0000000F // bits 0..3
	AttrBackFacing     = 0x00000010 // bit 4
	AttrCoverageShift  = 8
	AttrCoverageMask   = 0x00001F00 // bits 8..12
	AttrFogEnable      = 0x00008000 // bit 15
	AttrTranslucentIDShift = 16
	AttrTranslucentIDMask  = 0x003F0000 // bits 16..21
	AttrTranslucent    = 0x00400000 // bit 22
	AttrOpaqueIDShift  = 24
	AttrOpaqueIDMask   = 0x3F000000 // bits 24..29
)

// Edge flag bits within AttrEdgeMask.
const (
	EdgeLeft = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// DISPCNT bitfield bits consumed by the rasterizer.
const (
	DispTexturesEnable  = 1 << 0
	DispHighlightShading = 1 << 1
	DispAlphaBlend      = 1 << 3
	DispAntialiasing    = 1 << 4
	DispEdgeMarking     = 1 << 5
	DispFogOnlyAlpha    = 1 << 6
	DispFogEnable       = 1 << 7
	DispRearPlaneImage  = 1 << 14
)

// Polygon attribute word bits consumed when setting up a RendererPolygon.
const (
	PolyEqualDepthTest = 1 << 14
	PolyFrontFacing    = 0x00000010 // reused window in DepthTest_LessThan_FrontFacing
)

// Blend modes, (attr>>4)&3.
const (
	BlendModulate = 0
	BlendDecal    = 1
	BlendToon     = 2
	BlendShadow   = 3
)

// Texture formats, (texparam>>26)&7.
const (
	TexFormatNone        = 0
	TexFormatA3I5        = 1
	TexFormat4Color      = 2
	TexFormat16Color     = 3
	TexFormat256Color    = 4
	TexFormatCompressed  = 5
	TexFormatA5I3        = 6
	TexFormatDirectColor = 7
)

// Fixed-point shift constants used throughout the slope walker and
// interpolator.
const (
	SlopeFracBits  = 18
	SlopeHalf      = 1 << (SlopeFracBits - 1) // 0x20000
	SlopeOne       = 1 << SlopeFracBits        // 0x40000
	InterpShiftX   = 8
	InterpShiftY   = 9
	LinearMaskX    = 0x7F
	LinearMaskY    = 0x7E
)

// Depth-test predicate kinds (C8).
type depthTestKind uint8

const (
	depthTestEqualZ depthTestKind = iota
	depthTestEqualW
	depthTestLess
	depthTestLessFrontFacing
)

const (
	depthEqualZWindow = 0x200
	depthEqualWWindow = 0xFF
)
