// logger.go - leveled diagnostic logging for frame/worker lifecycle events

/*
ds3draster - software rasterizer reproducing a legacy handheld console's
fixed-function 3D graphics pipeline, scanline by scanline.

(c) 2026 Zotley Systems
License: GPLv3 or later
*/

package ds3d

import (
	"fmt"
	"os"
)

type logLevel int

const (
	logLevelDebug logLevel = iota
	logLevelInfo
	logLevelWarn
	logLevelOff
)

// logger is a minimal component-prefixed printer; there are no recoverable
// error conditions in the rasterizer itself (malformed input degrades to
// pixel artifacts, never a panic), so this exists purely to surface
// frame-identical skips and dropped degenerate polygons (one line per
// polygon) for whoever is debugging a frame.
type logger struct {
	level logLevel
}

func newLogger(level logLevel) *logger {
	return &logger{level: level}
}

func (l *logger) debugf(format string, args ...any) {
	l.printf(logLevelDebug, format, args...)
}

func (l *logger) infof(format string, args ...any) {
	l.printf(logLevelInfo, format, args...)
}

func (l *logger) warnf(format string, args ...any) {
	l.printf(logLevelWarn, format, args...)
}

func (l *logger) printf(level logLevel, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	fmt.Fprintf(os.Stderr, "DS3D: "+format+"\n", args...)
}
