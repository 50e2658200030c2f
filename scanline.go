// scanline.go - per-scanline rasterization of opaque, translucent, shadow
// and shadow-mask polygons

/*
ds3draster - software rasterizer reproducing a legacy handheld console's
fixed-function 3D graphics pipeline, scanline by scanline.

(c) 2026 Zotley Systems
License: GPLv3 or later
*/

package ds3d

func pixelAddr(x, y int32) int {
	return int(y+1)*ScanlineWidth + int(x+1)
}

// edgeFillRule decides whether a polygon's left and right edges paint
// their own pixels this scanline. The default opaque rule only fills edges
// that face "outward" in the DDA's own sense; wireframe polygons and
// AA/edge-marking modes always fill both edges so post-processing always
// has real pixels to read.
func edgeFillRule(rp *RendererPolygon, wireframe bool, disp uint32) (lFilled, rFilled bool) {
	if wireframe || disp&(DispAntialiasing|DispEdgeMarking) != 0 {
		return true, true
	}
	lFilled = rp.SlopeL.negative || !rp.SlopeL.xmajor
	rFilled = (!rp.SlopeR.negative && rp.SlopeR.xmajor) || rp.SlopeR.increment == 0
	return lFilled, rFilled
}

// renderPolygonScanline implements RenderPolygonScanline
func renderPolygonScanline(fb *frameBuffers, st *stencilBuffer, rp *RendererPolygon, y int32, disp uint32, tables *RenderTables, vram VRAMSource, alphaRef int32) {
	poly := rp.Poly
	advanceToScanline(rp, y)
	st.prevWasShadowMask = false

	xstart, xend := rp.XL, rp.XR
	wl := rp.SlopeL.interp.interpolate(vertexAt(poly, rp.curLIdx).W, vertexAt(poly, rp.nextLIdx).W)
	wr := rp.SlopeR.interp.interpolate(vertexAt(poly, rp.curRIdx).W, vertexAt(poly, rp.nextRIdx).W)
	zl := rp.SlopeL.interp.interpolateZ(vertexAt(poly, rp.curLIdx).Z, vertexAt(poly, rp.nextLIdx).Z, poly.WBuffer)
	zr := rp.SlopeR.interp.interpolateZ(vertexAt(poly, rp.curRIdx).Z, vertexAt(poly, rp.nextRIdx).Z, poly.WBuffer)

	wireframe := poly.wireframe()
	lFilled, rFilled := edgeFillRule(rp, wireframe, disp)

	lParams := rp.SlopeL.params()
	rParams := rp.SlopeR.params()

	if xstart > xend {
		xstart, xend = xend, xstart
		wl, wr = wr, wl
		zl, zr = zr, zl
		lParams, rParams = rParams, lParams
		lFilled, rFilled = rFilled, lFilled
	}

	lv := vertexAt(poly, rp.curLIdx)
	nlv := vertexAt(poly, rp.nextLIdx)
	rv := vertexAt(poly, rp.curRIdx)
	nrv := vertexAt(poly, rp.nextRIdx)

	rAtL := rp.SlopeL.interp.interpolate(lv.R, nlv.R)
	gAtL := rp.SlopeL.interp.interpolate(lv.G, nlv.G)
	bAtL := rp.SlopeL.interp.interpolate(lv.B, nlv.B)
	sAtL := rp.SlopeL.interp.interpolate(lv.S, nlv.S)
	tAtL := rp.SlopeL.interp.interpolate(lv.T, nlv.T)

	rAtR := rp.SlopeR.interp.interpolate(rv.R, nrv.R)
	gAtR := rp.SlopeR.interp.interpolate(rv.G, nrv.G)
	bAtR := rp.SlopeR.interp.interpolate(rv.B, nrv.B)
	sAtR := rp.SlopeR.interp.interpolate(rv.S, nrv.S)
	tAtR := rp.SlopeR.interp.interpolate(rv.T, nrv.T)

	var xip interpolator
	xip.setup(axisX, xstart, xend+1, wl, wr)

	tex := decodeTextureParams(poly.TexParam)
	textured := tex.format != TexFormatNone

	lEdgeLen := lParams.length
	rEdgeLen := rParams.length

	leftEnd := xstart + lEdgeLen
	rightStart := xend - rEdgeLen + 1

	plot := func(x int32) {
		if x < 0 || x >= ScreenWidth {
			return
		}
		xip.setX(x)
		z := xip.interpolateZ(zl, zr, poly.WBuffer)
		rr := xip.interpolate(rAtL, rAtR)
		gg := xip.interpolate(gAtL, gAtR)
		bb := xip.interpolate(bAtL, bAtR)
		ss := xip.interpolate(sAtL, sAtR)
		tt := xip.interpolate(tAtL, tAtR)

		addr := pixelAddr(x, y)
		layer := 0

		if poly.IsShadow {
			bit := stencilBit(st, y, x)
			if bit == 0 {
				return
			}
			if bit&1 == 0 {
				layer = 1
			}
		}

		passed, layerUsed := depthTestTwoLayer(fb, rp.depthTest, addr, z)
		if !passed {
			return
		}
		if poly.IsShadow {
			layerUsed = layer
		}

		var sample texSample
		if textured {
			sample = sampleTexture(vram.Texture, vram.Palette, tex, poly.TexPal, ss>>4, tt>>4)
		}

		color := shadePixel(poly, disp, tables, rr, gg, bb, sample, textured)
		_, _, _, alpha := unpackColor(color)
		if alpha <= alphaRef {
			return
		}

		dstAttr := fb.Attr[layerUsed][addr]
		edge := computeEdgeFlags(x, xstart, xend, y, poly)
		newAttr := (poly.Attr &^ uint32(AttrEdgeMask)) | edge
		if poly.IsShadow {
			newAttr = maskShadowAA(newAttr, dstAttr)
		}

		if alpha == 31 {
			cov := computeCoverage(lParams, rParams, x, xstart, xend, lEdgeLen, rEdgeLen)
			newAttr = (newAttr &^ uint32(AttrCoverageMask)) | (uint32(cov) << AttrCoverageShift)
			if layerUsed == 0 {
				fb.Color[1][addr] = fb.Color[0][addr]
				fb.Depth[1][addr] = fb.Depth[0][addr]
				fb.Attr[1][addr] = fb.Attr[0][addr]
			}
			fb.Color[layerUsed][addr] = color
			fb.Depth[layerUsed][addr] = pixel(z)
			fb.Attr[layerUsed][addr] = newAttr
			return
		}

		zWrite := z
		if newAttr&AttrFogEnable == 0 {
			zWrite = -1
		}
		plotTranslucentPixel(fb, 0, addr, color, zWrite, newAttr, poly.IsShadow)
		if fb.Attr[0][addr]&AttrCoverageMask != 0 {
			plotTranslucentPixel(fb, 1, addr, color, zWrite, newAttr, poly.IsShadow)
		}
	}

	if lFilled {
		for x := xstart; x < leftEnd; x++ {
			plot(x)
		}
	}
	if !wireframe || y == poly.YTop || y == poly.YBottom-1 {
		for x := leftEnd; x < rightStart; x++ {
			plot(x)
		}
	}
	if rFilled {
		for x := rightStart; x <= xend; x++ {
			plot(x)
		}
	}
}

func vertexAt(poly *Polygon, idx int) Vertex {
	return poly.Vertices[idx]
}

// depthTestTwoLayer tries the top layer first and, on failure, retries the
// bottom layer, returning whether either passed and which layer passed.
func depthTestTwoLayer(fb *frameBuffers, kind depthTestKind, addr int, z int32) (bool, int) {
	if depthTestPasses(kind, z, int32(fb.Depth[0][addr]), fb.Attr[0][addr]) {
		return true, 0
	}
	if depthTestPasses(kind, z, int32(fb.Depth[1][addr]), fb.Attr[1][addr]) {
		return true, 1
	}
	return false, 0
}

func stencilBit(st *stencilBuffer, y, x int32) uint8 {
	return st.row[y&1][x]
}

func maskShadowAA(attr, dstAttr uint32) uint32 {
	if dstAttr&0x3 == 0 {
		return attr &^ 0x3
	}
	return attr
}

func computeEdgeFlags(x, xstart, xend, y int32, poly *Polygon) uint32 {
	var e uint32
	if x == xstart {
		e |= EdgeLeft
	}
	if x == xend {
		e |= EdgeRight
	}
	if y == poly.YTop {
		e |= EdgeTop
	}
	if y == poly.YBottom-1 {
		e |= EdgeBottom
	}
	return e
}

func computeCoverage(lParams, rParams edgeParams, x, xstart, xend, lEdgeLen, rEdgeLen int32) uint32 {
	if x < xstart+lEdgeLen {
		return lParams.coverage & 0x1F
	}
	if x > xend-rEdgeLen {
		return rParams.coverage & 0x1F
	}
	return 31
}

// plotTranslucentPixel implements the PlotTranslucentPixel contract (
// §4.6): polygon-ID collision skip, fog-bit preservation, src-over blend,
// conditional depth write.
func plotTranslucentPixel(fb *frameBuffers, layer int, addr int, src pixel, z int32, srcAttr uint32, shadow bool) {
	dstAttr := fb.Attr[layer][addr]

	srcTranslucentID := (srcAttr & AttrTranslucentIDMask) >> AttrTranslucentIDShift
	dstTranslucentID := (dstAttr & AttrTranslucentIDMask) >> AttrTranslucentIDShift
	if dstAttr&AttrTranslucent != 0 && srcTranslucentID == dstTranslucentID {
		return
	}
	if shadow {
		srcOpaqueID := (srcAttr & AttrOpaqueIDMask) >> AttrOpaqueIDShift
		dstOpaqueID := (dstAttr & AttrOpaqueIDMask) >> AttrOpaqueIDShift
		if dstAttr&AttrTranslucent == 0 && srcOpaqueID == dstOpaqueID {
			return
		}
	}

	dst := fb.Color[layer][addr]
	blended := alphaBlend(src, dst)

	newAttr := srcAttr | AttrTranslucent
	if dstAttr&AttrFogEnable == 0 {
		newAttr &^= AttrFogEnable
	}

	fb.Color[layer][addr] = blended
	fb.Attr[layer][addr] = newAttr
	if z != -1 {
		fb.Depth[layer][addr] = pixel(z)
	}
}

// alphaBlend implements the blend formula: a dst with zero
// alpha is fully transparent and the source replaces it unchanged. DISPCNT
// bit 3 is not consulted here or by plotTranslucentPixel: translucent
// pixels are always blended, whatever that bit holds.
func alphaBlend(src, dst pixel) pixel {
	sr, sg, sb, sa := unpackColor(src)
	dr, dg, db, da := unpackColor(dst)
	if da == 0 {
		return src
	}
	a := sa + 1
	outR := (sr*a + dr*(32-a)) >> 5
	outG := (sg*a + dg*(32-a)) >> 5
	outB := (sb*a + db*(32-a)) >> 5
	outA := sa
	if da > outA {
		outA = da
	}
	return packColor(outR, outG, outB, outA)
}

// renderShadowMaskScanline implements RenderShadowMaskScanline: it performs
// the same edge/interpolator setup as the color path but writes only to the
// stencil buffer.
func renderShadowMaskScanline(fb *frameBuffers, st *stencilBuffer, rp *RendererPolygon, y int32, alphaRef int32) {
	poly := rp.Poly
	advanceToScanline(rp, y)

	if !st.prevWasShadowMask {
		row := &st.row[y&1]
		for i := range row {
			row[i] = 0
		}
	}
	st.prevWasShadowMask = true

	if int32(poly.polyAlpha()) <= alphaRef {
		return
	}

	wireframe := poly.wireframe()
	lFilled, rFilled := edgeFillRule(rp, wireframe, 0)

	lParams := rp.SlopeL.params()
	rParams := rp.SlopeR.params()

	xstart, xend := rp.XL, rp.XR
	zl := rp.SlopeL.interp.interpolateZ(vertexAt(poly, rp.curLIdx).Z, vertexAt(poly, rp.nextLIdx).Z, poly.WBuffer)
	zr := rp.SlopeR.interp.interpolateZ(vertexAt(poly, rp.curRIdx).Z, vertexAt(poly, rp.nextRIdx).Z, poly.WBuffer)

	if xstart > xend {
		xstart, xend = xend, xstart
		zl, zr = zr, zl
		lParams, rParams = rParams, lParams
		lFilled, rFilled = rFilled, lFilled
	}

	lEdgeLen := lParams.length
	rEdgeLen := rParams.length
	leftEnd := xstart + lEdgeLen
	rightStart := xend - rEdgeLen + 1

	var xip interpolator
	xip.setup(axisX, xstart, xend+1, zl, zr)

	mark := func(x int32) {
		if x < 0 || x >= ScreenWidth {
			return
		}
		xip.setX(x)
		z := xip.interpolateZ(zl, zr, poly.WBuffer)
		addr := pixelAddr(x, y)

		if !depthTestPasses(rp.depthTest, z, int32(fb.Depth[0][addr]), fb.Attr[0][addr]) {
			st.row[y&1][x] |= 1
			if fb.Attr[0][addr]&AttrCoverageMask != 0 {
				if !depthTestPasses(rp.depthTest, z, int32(fb.Depth[1][addr]), fb.Attr[1][addr]) {
					st.row[y&1][x] |= 2
				}
			}
		}
	}

	if lFilled {
		for x := xstart; x < leftEnd; x++ {
			mark(x)
		}
	}
	if !wireframe || y == poly.YTop || y == poly.YBottom-1 {
		for x := leftEnd; x < rightStart; x++ {
			mark(x)
		}
	}
	if rFilled {
		for x := rightStart; x <= xend; x++ {
			mark(x)
		}
	}
}
