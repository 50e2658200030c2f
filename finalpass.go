// finalpass.go - edge marking, fog, and box-filter anti-aliasing

/*
ds3draster - software rasterizer reproducing a legacy handheld console's
fixed-function 3D graphics pipeline, scanline by scanline.

(c) 2026 Zotley Systems
License: GPLv3 or later
*/

package ds3d

// scanlineFinalPass runs the fixed-order post-process (edge marking, fog,
// anti-aliasing) for one finished scanline. It is always run one line
// behind the scanline rasterizer so the 1-pixel border above/below is
// always already-written neighbor data.
func scanlineFinalPass(fb *frameBuffers, tables *RenderTables, disp uint32, y int32) {
	if disp&DispEdgeMarking != 0 {
		edgeMarkLine(fb, tables, y)
	}
	if disp&DispFogEnable != 0 {
		fogLine(fb, tables, disp, y)
	}
	if disp&DispAntialiasing != 0 {
		aaLine(fb, y)
	}
}

func edgeMarkLine(fb *frameBuffers, tables *RenderTables, y int32) {
	for x := int32(0); x < ScreenWidth; x++ {
		addr := pixelAddr(x, y)
		attr := fb.Attr[0][addr]
		if attr&AttrEdgeMask == 0 {
			continue
		}

		depth := int32(fb.Depth[0][addr])
		polyID := (attr & AttrOpaqueIDMask) >> AttrOpaqueIDShift

		neighbors := [4]int{addr - 1, addr + 1, addr - ScanlineWidth, addr + ScanlineWidth}
		marked := false
		for _, n := range neighbors {
			nAttr := fb.Attr[0][n]
			nID := (nAttr & AttrOpaqueIDMask) >> AttrOpaqueIDShift
			nDepth := int32(fb.Depth[0][n])
			if nID != polyID && nDepth > depth {
				marked = true
				break
			}
		}
		if !marked {
			continue
		}

		_, _, _, a := unpackColor(fb.Color[0][addr])
		r, g, b := toonEntryRGB(tables.Edge[(polyID>>3)&0x7])
		fb.Color[0][addr] = packColor(expand5to6(r), expand5to6(g), expand5to6(b), a)
		fb.Attr[0][addr] = (attr &^ uint32(AttrCoverageMask)) | (16 << AttrCoverageShift)
	}
}

func fogDensity(z int32, tables *RenderTables) int32 {
	offset := tables.Fog.Offset
	if z < offset {
		return 0
	}

	zp := ((z - offset) >> 2) << tables.Fog.Shift
	densityID := zp >> 17
	densityFrac := zp & 0x1FFFF

	if densityID >= 32 {
		densityID = 32
		densityFrac = 0
	}

	d0 := int32(tables.Fog.Density[densityID])
	var d1 int32
	if densityID+1 <= 32 {
		d1 = int32(tables.Fog.Density[densityID+1])
	} else {
		d1 = d0
	}

	density := d0 + (((d1 - d0) * densityFrac) >> 17)
	if density >= 127 {
		density = 128
	}
	return density
}

func fogBlendChannel(fog, src, density int32) int32 {
	return ((fog * density) + (src * (128 - density))) >> 7
}

func fogLayer(fb *frameBuffers, tables *RenderTables, disp uint32, layer int, addr int) {
	attr := fb.Attr[layer][addr]
	if attr&AttrFogEnable == 0 {
		return
	}

	depth := int32(fb.Depth[layer][addr])
	density := fogDensity(depth, tables)

	r, g, b, a := unpackColor(fb.Color[layer][addr])
	fogR := expand5to6(int32(tables.Fog.Color & 0x1F))
	fogG := expand5to6(int32((tables.Fog.Color >> 5) & 0x1F))
	fogB := expand5to6(int32((tables.Fog.Color >> 10) & 0x1F))
	fogA := int32((tables.Fog.Color >> 16) & 0x1F)

	if disp&DispFogOnlyAlpha == 0 {
		r = fogBlendChannel(fogR, r, density)
		g = fogBlendChannel(fogG, g, density)
		b = fogBlendChannel(fogB, b, density)
	}
	a = fogBlendChannel(fogA, a, density)

	fb.Color[layer][addr] = packColor(r, g, b, a)
}

func fogLine(fb *frameBuffers, tables *RenderTables, disp uint32, y int32) {
	for x := int32(0); x < ScreenWidth; x++ {
		addr := pixelAddr(x, y)
		fogLayer(fb, tables, disp, 0, addr)

		topAttr := fb.Attr[0][addr]
		if topAttr&AttrCoverageMask != 0 {
			fogLayer(fb, tables, disp, 1, addr)
		}
	}
}

func aaLine(fb *frameBuffers, y int32) {
	for x := int32(0); x < ScreenWidth; x++ {
		addr := pixelAddr(x, y)
		attr := fb.Attr[0][addr]
		if attr&0x3 == 0 {
			continue
		}
		cov := (attr & AttrCoverageMask) >> AttrCoverageShift

		if cov == 31 {
			continue
		}
		if cov == 0 {
			fb.Color[0][addr] = fb.Color[1][addr]
			fb.Attr[0][addr] = (attr &^ uint32(AttrCoverageMask)) | (31 << AttrCoverageShift)
			continue
		}

		cov++
		tr, tg, tb, ta := unpackColor(fb.Color[0][addr])
		br, bg, bb, ba := unpackColor(fb.Color[1][addr])

		r, g, b := tr, tg, tb
		if ba > 0 {
			r = (tr*int32(cov) + br*(32-int32(cov))) >> 5
			g = (tg*int32(cov) + bg*(32-int32(cov))) >> 5
			b = (tb*int32(cov) + bb*(32-int32(cov))) >> 5
		}
		a := (ta*int32(cov) + ba*(32-int32(cov))) >> 5

		fb.Color[0][addr] = packColor(r, g, b, a)
		fb.Attr[0][addr] = (attr &^ uint32(AttrCoverageMask)) | (31 << AttrCoverageShift)
	}
}
