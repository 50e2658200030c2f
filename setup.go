// setup.go - per-frame polygon setup and edge cursor advance

/*
ds3draster - software rasterizer reproducing a legacy handheld console's
fixed-function 3D graphics pipeline, scanline by scanline.

(c) 2026 Zotley Systems
License: GPLv3 or later
*/

package ds3d

// leftStep/rightStep return the next vertex index walking a polygon's
// perimeter in the direction the given edge advances. Vertices are
// enumerated clockwise when FacingView is set, counter-clockwise
// otherwise, and the left edge walks the opposite direction from the
// right edge so the two cursors sweep the polygon from its top vertex
// down to its bottom vertex along both sides at once.
func leftStep(poly *Polygon, i int) int {
	n := len(poly.Vertices)
	if poly.FacingView {
		return (i + 1) % n
	}
	return (i - 1 + n) % n
}

func rightStep(poly *Polygon, i int) int {
	n := len(poly.Vertices)
	if poly.FacingView {
		return (i - 1 + n) % n
	}
	return (i + 1) % n
}

// setupEdge installs a fresh slope walker for rp's left or right edge from
// the cursor pair's current vertices, positioned at scanline y.
func setupEdge(rp *RendererPolygon, left bool, y int32) {
	poly := rp.Poly
	var curIdx, nextIdx int
	if left {
		curIdx, nextIdx = rp.curLIdx, rp.nextLIdx
	} else {
		curIdx, nextIdx = rp.curRIdx, rp.nextRIdx
	}

	a, b := poly.Vertices[curIdx], poly.Vertices[nextIdx]
	side := sideLeft
	if !left {
		side = sideRight
	}

	if a.Y == b.Y {
		if left {
			rp.SlopeL.setupDummy(side, a.X, a.Y, a.W)
		} else {
			rp.SlopeR.setupDummy(side, a.X, a.Y, a.W)
		}
		return
	}

	if left {
		rp.SlopeL.setup(side, a.X, a.Y, b.X, b.Y, a.W, b.W, y)
	} else {
		rp.SlopeR.setup(side, a.X, a.Y, b.X, b.Y, a.W, b.W, y)
	}
}

// SetupPolygon assigns the initial left/right vertex cursors and edge
// slopes for a polygon: the degenerate (YTop==YBottom) single-line case
// picks the leftmost/rightmost of the top/second/last vertex, otherwise
// both cursors start at the top vertex and the edges are installed for
// scanline YTop.
func SetupPolygon(rp *RendererPolygon, poly *Polygon) {
	rp.Poly = poly
	rp.depthTest = selectDepthTest(poly)

	n := len(poly.Vertices)

	if poly.YTop == poly.YBottom {
		candidates := []int{0, 1, n - 1}
		leftI, rightI := candidates[0], candidates[0]
		for _, i := range candidates {
			if poly.Vertices[i].X < poly.Vertices[leftI].X {
				leftI = i
			}
			if poly.Vertices[i].X > poly.Vertices[rightI].X {
				rightI = i
			}
		}
		v := poly.Vertices
		rp.SlopeL.setupDummy(sideLeft, v[leftI].X, v[leftI].Y, v[leftI].W)
		rp.SlopeR.setupDummy(sideRight, v[rightI].X, v[rightI].Y, v[rightI].W)
		rp.curLIdx, rp.nextLIdx = leftI, leftI
		rp.curRIdx, rp.nextRIdx = rightI, rightI
		rp.XL, rp.XR = v[leftI].X, v[rightI].X
		return
	}

	rp.curLIdx = poly.TopVertex
	rp.nextLIdx = leftStep(poly, poly.TopVertex)
	rp.curRIdx = poly.TopVertex
	rp.nextRIdx = rightStep(poly, poly.TopVertex)

	setupEdge(rp, true, poly.YTop)
	setupEdge(rp, false, poly.YTop)

	rp.XL = rp.SlopeL.xVal()
	rp.XR = rp.SlopeR.xVal()
}

// advanceToScanline brings rp's edges up to scanline y: if a new vertex has
// been passed it installs a fresh slope for the new edge segment,
// otherwise it single-steps the existing slope. Must be called with y in
// strictly ascending order starting at poly.YTop (the scanline SetupPolygon
// already positioned the edges for).
func advanceToScanline(rp *RendererPolygon, y int32) {
	if rp.Poly.YTop == rp.Poly.YBottom || y == rp.Poly.YTop {
		return
	}
	advanceOneEdge(rp, true, y)
	advanceOneEdge(rp, false, y)
}

func advanceOneEdge(rp *RendererPolygon, left bool, y int32) {
	poly := rp.Poly
	changed := false
	for {
		var curIdx, nextIdx int
		if left {
			curIdx, nextIdx = rp.curLIdx, rp.nextLIdx
		} else {
			curIdx, nextIdx = rp.curRIdx, rp.nextRIdx
		}
		if curIdx == poly.BottomVertex || y < poly.Vertices[nextIdx].Y {
			break
		}
		curIdx = nextIdx
		if left {
			nextIdx = leftStep(poly, curIdx)
			rp.curLIdx, rp.nextLIdx = curIdx, nextIdx
		} else {
			nextIdx = rightStep(poly, curIdx)
			rp.curRIdx, rp.nextRIdx = curIdx, nextIdx
		}
		changed = true
	}

	if changed {
		setupEdge(rp, left, y)
	} else if left {
		rp.SlopeL.step()
	} else {
		rp.SlopeR.step()
	}

	if left {
		rp.XL = rp.SlopeL.xVal()
	} else {
		rp.XR = rp.SlopeR.xVal()
	}
}
