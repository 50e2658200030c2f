// clear.go - per-frame buffer clear, including rear-plane image mode

/*
ds3draster - software rasterizer reproducing a legacy handheld console's
fixed-function 3D graphics pipeline, scanline by scanline.

(c) 2026 Zotley Systems
License: GPLv3 or later
*/

package ds3d

// clearBuffers implements ClearBuffers: it fills the full bordered buffer
// so the final pass can always read a real neighbor, then either paints a
// flat clear color or samples the rear-plane image from VRAM depending on
// DISPCNT bit 14.
func clearBuffers(fb *frameBuffers, cfg *RenderConfig) {
	clearID := (cfg.ClearAttr1 & AttrOpaqueIDMask) // already shifted into place by caller convention
	baseAttr := clearID

	if cfg.DispCnt&DispRearPlaneImage != 0 {
		clearRearPlane(fb, cfg, baseAttr)
		return
	}

	r := int32(cfg.ClearAttr1 & 0x1F)
	g := int32((cfg.ClearAttr1 >> 5) & 0x1F)
	b := int32((cfg.ClearAttr1 >> 10) & 0x1F)
	a := int32((cfg.ClearAttr1 >> 16) & 0x1F)
	color := packColor(expand5to6(r), expand5to6(g), expand5to6(b), a)

	for i := 0; i < BufferSize; i++ {
		fb.Color[0][i] = color
		fb.Depth[0][i] = pixel(cfg.ClearDepth)
		fb.Attr[0][i] = baseAttr
		fb.Color[1][i] = color
		fb.Depth[1][i] = pixel(cfg.ClearDepth)
		fb.Attr[1][i] = baseAttr
	}
}

func clearRearPlane(fb *frameBuffers, cfg *RenderConfig, baseAttr uint32) {
	xoff0 := int32((cfg.ClearAttr2 >> 16) & 0xFF)
	yoff := int32((cfg.ClearAttr2 >> 24) & 0xFF)

	vram := cfg.VRAM.Texture
	for y := int32(0); y < ScreenHeight; y++ {
		xoff := xoff0
		for x := int32(0); x < ScreenWidth; x++ {
			colorAddr := uint32(0x40000) + uint32(yoff)<<9 + uint32(xoff)<<1
			depthAddr := uint32(0x60000) + uint32(yoff)<<9 + uint32(xoff)<<1

			entry := vram.u16At(colorAddr)
			r, g, b := int32(entry&0x1F), int32((entry>>5)&0x1F), int32((entry>>10)&0x1F)
			a := int32(31)
			if entry&0x8000 == 0 {
				a = 0
			}
			color := packColor(expand5to6(r), expand5to6(g), expand5to6(b), a)
			depth := int32(vram.u16At(depthAddr))

			addr := pixelAddr(x, y)
			fb.Color[0][addr] = color
			fb.Depth[0][addr] = pixel(depth)
			fb.Attr[0][addr] = baseAttr
			fb.Color[1][addr] = color
			fb.Depth[1][addr] = pixel(depth)
			fb.Attr[1][addr] = baseAttr

			xoff = (xoff + 1) & 0xFF
		}
		yoff++
	}

	clearBorder(fb, baseAttr, cfg.ClearDepth)
}

// clearBorder fills just the 1-pixel border's depth and attribute (used by
// the rear-plane path, which otherwise only touches the visible region).
func clearBorder(fb *frameBuffers, attr uint32, depth int32) {
	for x := 0; x < ScanlineWidth; x++ {
		top := x
		bottom := (NumScanlines-1)*ScanlineWidth + x
		for _, idx := range [2]int{top, bottom} {
			fb.Depth[0][idx] = pixel(depth)
			fb.Depth[1][idx] = pixel(depth)
			fb.Attr[0][idx] = attr
			fb.Attr[1][idx] = attr
		}
	}
	for y := 0; y < NumScanlines; y++ {
		left := y * ScanlineWidth
		right := y*ScanlineWidth + ScanlineWidth - 1
		for _, idx := range [2]int{left, right} {
			fb.Depth[0][idx] = pixel(depth)
			fb.Depth[1][idx] = pixel(depth)
			fb.Attr[0][idx] = attr
			fb.Attr[1][idx] = attr
		}
	}
}
