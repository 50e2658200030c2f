// config.go - render-state construction surface

/*
ds3draster - software rasterizer reproducing a legacy handheld console's
fixed-function 3D graphics pipeline, scanline by scanline.

(c) 2026 Zotley Systems
License: GPLv3 or later
*/

package ds3d

import "errors"

// RenderConfig is the global, read-only-during-a-frame state the geometry
// front-end would otherwise push through memory-mapped registers. It is
// built once with functional options when the Rasterizer is constructed;
// the Rasterizer has no methods for changing it afterwards.
type RenderConfig struct {
	Threaded bool

	DispCnt uint32

	ClearAttr1, ClearAttr2 uint32
	ClearDepth             int32

	AlphaReference uint8

	Tables RenderTables

	VRAM VRAMSource
}

// Option configures a RenderConfig at construction time.
type Option func(*RenderConfig)

// WithThreaded selects whether the frame driver runs its worker on a
// background goroutine (true) or synchronously on the caller (false).
func WithThreaded(threaded bool) Option {
	return func(c *RenderConfig) { c.Threaded = threaded }
}

// WithDispCnt sets the initial display-control bitfield.
func WithDispCnt(bits uint32) Option {
	return func(c *RenderConfig) { c.DispCnt = bits }
}

// WithClearAttributes sets the two clear-attribute words and the constant
// clear depth used when rear-plane image mode is disabled.
func WithClearAttributes(attr1, attr2 uint32, clearDepth int32) Option {
	return func(c *RenderConfig) {
		c.ClearAttr1, c.ClearAttr2, c.ClearDepth = attr1, attr2, clearDepth
	}
}

// WithAlphaReference sets the alpha test threshold (0..31).
func WithAlphaReference(ref uint8) Option {
	return func(c *RenderConfig) { c.AlphaReference = ref & 0x1F }
}

// WithToonTable installs the 32-entry toon/highlight ramp.
func WithToonTable(table [32]uint16) Option {
	return func(c *RenderConfig) { c.Tables.Toon = table }
}

// WithEdgeTable installs the 8-entry edge-marking color table.
func WithEdgeTable(table [8]uint16) Option {
	return func(c *RenderConfig) { c.Tables.Edge = table }
}

// WithFogTables installs the fog color/offset/shift/density state.
func WithFogTables(fog FogTables) Option {
	return func(c *RenderConfig) { c.Tables.Fog = fog }
}

// WithVRAM attaches the texture/palette VRAM views and dirty hooks.
func WithVRAM(v VRAMSource) Option {
	return func(c *RenderConfig) { c.VRAM = v }
}

// newRenderConfig applies options over the zero-value default.
func newRenderConfig(opts ...Option) (RenderConfig, error) {
	cfg := RenderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, nil
}

// ErrNilVRAM is returned by NewRasterizer when no texture VRAM view was
// supplied; the rasterizer has nowhere to read texels from in that case,
// the one construction-time input that can't be shrugged off the way
// every per-frame input degrades gracefully.
var ErrNilVRAM = errors.New("ds3d: no texture VRAM view configured")
