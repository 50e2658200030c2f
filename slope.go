// slope.go - fixed-point DDA edge walker

/*
ds3draster - software rasterizer reproducing a legacy handheld console's
fixed-function 3D graphics pipeline, scanline by scanline.

(c) 2026 Zotley Systems
License: GPLv3 or later
*/

package ds3d

// edgeSide selects which edge of a polygon a slope walks: left edges and
// right edges use different half-pixel starting offsets and different
// coverage-accumulation directions.
type edgeSide int

const (
	sideLeft  edgeSide = 0
	sideRight edgeSide = 1
)

// edgeParams is the per-scanline result of walking one edge: how many
// pixels of the span this edge owns (used to size the left/right segments
// in the scanline rasterizer) and the AA coverage word for those pixels.
type edgeParams struct {
	length   int32
	coverage uint32
}

// slope is a per-edge fixed-point DDA. It tracks x across a range of y
// values at 18 fractional bits and drives an attached interpolator along
// whichever axis is "major" for this edge.
type slope struct {
	side edgeSide

	x0, y0, x1, y1 int32
	w0, w1         int32

	negative  bool
	xmajor    bool
	xlen, ylen int32
	increment int32 // 18-bit fixed slope increment

	dx int32
	y  int32

	xcovIncr int32

	interp interpolator
}

// setupDummy configures this walker for one side of a degenerate
// (YTop==YBottom) polygon, holding a constant x for the single scanline
// rendered.
func (s *slope) setupDummy(side edgeSide, x, y, w int32) {
	s.side = side
	s.x0, s.y0 = x, y
	s.x1, s.y1 = x, y
	s.w0, s.w1 = w, w
	s.negative = false
	s.xmajor = false
	s.xlen, s.ylen = 0, 0
	s.increment = 0
	s.dx = 0
	s.y = y
	s.xcovIncr = 0
	s.interp.setup(axisY, y, y, w, w)
	s.interp.setX(y)
}

// setup configures the walker for a new edge (x0,y0)-(x1,y1) and
// positions it at the given starting scanline y.
func (s *slope) setup(side edgeSide, x0, y0, x1, y1, w0, w1, startY int32) {
	s.side = side
	s.x0, s.y0, s.x1, s.y1 = x0, y0, x1, y1
	s.w0, s.w1 = w0, w1

	s.negative = x1 < x0

	dxAbs := x1 - x0
	if dxAbs < 0 {
		dxAbs = -dxAbs
	}
	if dxAbs == 0 {
		s.xlen = 1
	} else {
		s.xlen = dxAbs
	}
	s.ylen = y1 - y0

	switch {
	case s.ylen == 0:
		s.increment = 0
	case s.ylen == s.xlen:
		s.increment = SlopeOne
	default:
		s.increment = (SlopeOne / s.ylen) * dxAbs
	}

	s.xmajor = s.increment > SlopeOne

	s.dx = s.startingDX()
	s.dx += (startY - y0) * s.increment
	s.y = startY

	if s.xmajor {
		s.xcovIncr = 0
		if s.xlen != 0 {
			s.xcovIncr = (s.ylen << 10) / s.xlen
		}
		right := x1 - 1
		if side == sideRight {
			right = x1
		}
		s.interp.setup(axisX, x0, right, w0, w1)
	} else {
		s.interp.setup(axisY, y0, y1, w0, w1)
	}
	s.updateInterpolatorX()
}

// startingDX returns the initial half-pixel dx offset per the
// side/xmajor/negative/increment-zero combination table.
func (s *slope) startingDX() int32 {
	switch {
	case s.side == sideLeft && s.xmajor:
		if !s.negative {
			return SlopeHalf
		}
		return s.increment - SlopeHalf + SlopeOne
	case s.side == sideLeft && !s.xmajor:
		if s.increment == 0 {
			return 0
		}
		if !s.negative {
			return 0
		}
		return SlopeOne
	case s.side == sideRight && s.xmajor:
		if !s.negative {
			return s.increment - SlopeHalf
		}
		return SlopeHalf + SlopeOne
	default: // right, not xmajor
		if s.increment == 0 {
			return -SlopeOne
		}
		if !s.negative {
			return 0
		}
		return SlopeOne
	}
}

// xVal returns the current scanline's x position for this edge, clamped to
// the edge's [xmin,xmax] bound.
func (s *slope) xVal() int32 {
	var ret int32
	if s.negative {
		ret = s.x0 - (s.dx >> SlopeFracBits)
	} else {
		ret = s.x0 + (s.dx >> SlopeFracBits)
	}

	xmin, xmax := s.x0, s.x1
	if xmax < xmin {
		xmin, xmax = xmax, xmin
	}
	if s.x0 != s.x1 {
		xmax--
	}
	if s.side == sideRight && s.x0 == s.x1 {
		xmin--
	}

	if ret < xmin {
		ret = xmin
	}
	if ret > xmax {
		ret = xmax
	}
	return ret
}

// step advances the walker to the next scanline and refreshes the attached
// interpolator's position.
func (s *slope) step() {
	s.dx += s.increment
	s.y++
	s.updateInterpolatorX()
}

func (s *slope) updateInterpolatorX() {
	if s.xmajor {
		s.interp.setX(s.xVal())
	} else {
		s.interp.setX(s.y)
	}
}

// params computes this scanline's edge length and AA coverage word.
func (s *slope) params() edgeParams {
	if s.xmajor {
		return s.xMajorParams()
	}
	return s.yMajorParams()
}

func (s *slope) xMajorParams() edgeParams {
	var length int32
	if s.side == sideLeft {
		length = ((s.dx + s.increment) >> SlopeFracBits) - (s.dx >> SlopeFracBits)
	} else {
		length = (s.dx >> SlopeFracBits) - ((s.dx - s.increment) >> SlopeFracBits)
	}

	startx := s.dx >> SlopeFracBits
	invert := (s.side == sideRight) != s.negative
	if invert {
		startx = s.xlen - startx
	}
	if s.side == sideRight {
		startx = startx - length + 1
	}

	var startcov int32
	if s.xlen != 0 {
		startcov = int32((((int64(startx) << 10) + 0x1FF) * int64(s.ylen)) / int64(s.xlen))
	}

	cov := uint32(1<<31) | ((uint32(startcov) & 0x3FF) << 12) | (uint32(s.xcovIncr) & 0x3FF)
	return edgeParams{length: length, coverage: cov}
}

func (s *slope) yMajorParams() edgeParams {
	if s.increment == 0 {
		return edgeParams{length: 1, coverage: 31}
	}

	cov := ((s.dx >> 9) + (s.increment >> 10)) >> 4

	if (cov>>5) != (s.dx >> SlopeFracBits) {
		return edgeParams{length: 1, coverage: 31}
	}
	cov &= 0x1F

	invert := (s.side == sideRight) == s.negative
	if invert {
		cov = 31 - cov
	}
	return edgeParams{length: 1, coverage: uint32(cov)}
}
