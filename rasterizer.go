// rasterizer.go - public entry point: construction, frame rendering

/*
ds3draster - software rasterizer reproducing a legacy handheld console's
fixed-function 3D graphics pipeline, scanline by scanline.

(c) 2026 Zotley Systems
License: GPLv3 or later
*/

package ds3d

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Rasterizer owns the frame buffers, render state and (optionally) the
// background worker goroutine. One instance renders one video stream; it
// is not safe for concurrent RenderFrame calls, matching the single
// producer / single consumer model it implements.
type Rasterizer struct {
	cfg RenderConfig
	fb  frameBuffers
	st  stencilBuffer
	log *logger

	live []RendererPolygon

	startSem *semaphore.Weighted
	doneSem  *semaphore.Weighted
	lineSem  *semaphore.Weighted

	running        bool
	frameIdentical bool
	pending        []*Polygon
}

// NewRasterizer builds a Rasterizer from functional options. It returns an
// error only when the supplied configuration is structurally impossible to
// honor (currently: a nil texture VRAM view); nothing encountered mid-frame
// ever produces an error, per the no-recoverable-errors design.
func NewRasterizer(opts ...Option) (*Rasterizer, error) {
	cfg, err := newRenderConfig(opts...)
	if err != nil {
		return nil, err
	}
	if cfg.VRAM.Texture.data == nil {
		return nil, ErrNilVRAM
	}

	r := &Rasterizer{
		cfg:      cfg,
		log:      newLogger(logLevelWarn),
		startSem: semaphore.NewWeighted(1),
		doneSem:  semaphore.NewWeighted(1),
		lineSem:  semaphore.NewWeighted(ScreenHeight),
	}

	ctx := context.Background()
	_ = r.startSem.Acquire(ctx, 1)
	_ = r.doneSem.Acquire(ctx, 1)
	_ = r.lineSem.Acquire(ctx, ScreenHeight)

	if cfg.Threaded {
		r.startWorker()
	}
	return r, nil
}

// SetLogLevel controls how verbose the diagnostic logger is; by default
// only warnings are printed. Frame-identical skips and dropped degenerate
// polygons are logged at debug level.
func (r *Rasterizer) SetLogLevel(level int) {
	r.log.level = logLevel(level)
}

// RenderFrame submits a new polygon list. In threaded mode this returns
// immediately after waking the worker; in synchronous mode it renders
// before returning. allowSkip lets the caller request the frame-identical
// optimization when it knows VRAM has not changed since the last frame;
// the rasterizer still confirms that against the configured dirty hooks.
func (r *Rasterizer) RenderFrame(polys []*Polygon, allowSkip bool) {
	r.frameIdentical = allowSkip && !r.cfg.VRAM.dirty()

	if r.cfg.Threaded {
		r.pending = polys
		r.startSem.Release(1)
		return
	}

	if r.frameIdentical {
		r.log.debugf("frame identical, skipping render")
		return
	}
	r.renderPolygons(polys)
}

// VCount144 blocks until any in-flight worker frame has finished, the
// synchronization hook a host calls at end-of-visible-display.
func (r *Rasterizer) VCount144() {
	if !r.cfg.Threaded {
		return
	}
	_ = r.doneSem.Acquire(context.Background(), 1)
}

// GetLine returns the 256 visible pixels of scanline `line` (0..191),
// blocking in threaded mode until that line has been finalized.
func (r *Rasterizer) GetLine(line int) []pixel {
	if r.cfg.Threaded {
		_ = r.lineSem.Acquire(context.Background(), 1)
	}
	start := (line+1)*ScanlineWidth + 1
	return r.fb.Color[0][start : start+ScreenWidth]
}

// Stop tears down the background worker, if one is running.
func (r *Rasterizer) Stop() {
	if !r.cfg.Threaded || !r.running {
		return
	}
	r.running = false
	r.startSem.Release(1)
}

func (r *Rasterizer) startWorker() {
	r.running = true
	go r.workerLoop()
}

func (r *Rasterizer) workerLoop() {
	ctx := context.Background()
	for {
		_ = r.startSem.Acquire(ctx, 1)
		if !r.running {
			return
		}

		if r.frameIdentical {
			r.log.debugf("frame identical, worker posting line tickets without rendering")
			for y := 0; y < ScreenHeight; y++ {
				r.lineSem.Release(1)
			}
		} else {
			// renderPolygons posts one line ticket per finalized scanline.
			r.renderPolygons(r.pending)
		}
		r.doneSem.Release(1)
	}
}

// renderPolygons implements RenderPolygons: clear buffers, set up the live
// polygon table, then render scanline 0..191 with the final pass always
// one line behind the scanline rasterizer.
func (r *Rasterizer) renderPolygons(polys []*Polygon) {
	clearBuffers(&r.fb, &r.cfg)
	r.st = stencilBuffer{}

	r.live = r.live[:0]
	for _, p := range polys {
		if p.Degenerate {
			r.log.debugf("dropping degenerate polygon")
			continue
		}
		rp := RendererPolygon{}
		SetupPolygon(&rp, p)
		r.live = append(r.live, rp)
	}

	r.renderScanlineAll(0)
	for y := int32(1); y < ScreenHeight; y++ {
		r.renderScanlineAll(y)
		scanlineFinalPass(&r.fb, &r.cfg.Tables, r.cfg.DispCnt, y-1)
		if r.cfg.Threaded {
			r.lineSem.Release(1)
		}
	}
	scanlineFinalPass(&r.fb, &r.cfg.Tables, r.cfg.DispCnt, ScreenHeight-1)
	if r.cfg.Threaded {
		r.lineSem.Release(1)
	}
}

func (r *Rasterizer) renderScanlineAll(y int32) {
	for i := range r.live {
		rp := &r.live[i]
		poly := rp.Poly
		active := y >= poly.YTop && (y < poly.YBottom || (y == poly.YTop && poly.YBottom == poly.YTop))
		if !active {
			continue
		}
		if poly.IsShadowMask {
			renderShadowMaskScanline(&r.fb, &r.st, rp, y, int32(r.cfg.AlphaReference))
		} else {
			renderPolygonScanline(&r.fb, &r.st, rp, y, r.cfg.DispCnt, &r.cfg.Tables, r.cfg.VRAM, int32(r.cfg.AlphaReference))
		}
	}
}
