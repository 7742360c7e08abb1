// Package logging is the program's leveled stderr logger. Callers log through the
// package-level helpers; the CLI picks the threshold once at startup.
package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level is a message severity. Messages below the current level are dropped.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel accepts debug|info|warn|warning|error, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

var current = int32(LevelInfo)

var out = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLevel sets the global threshold.
func SetLevel(l Level) { atomic.StoreInt32(&current, int32(l)) }

// CurrentLevel returns the global threshold.
func CurrentLevel() Level { return Level(atomic.LoadInt32(&current)) }

// Enabled reports whether messages at l are written.
func Enabled(l Level) bool { return CurrentLevel() <= l }

func logf(l Level, format string, args ...interface{}) {
	if !Enabled(l) {
		return
	}
	// A message without args is printed as is; Sprintf would turn a literal % in a
	// technology name into %!x(MISSING).
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	out.Printf("[%s] %s", l, msg)
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// Since logs the time elapsed since start at debug level. Use with defer:
//
//	defer logging.Since(time.Now(), "render")
func Since(start time.Time, label string) {
	if !Enabled(LevelDebug) {
		return
	}
	Debugf("%s took %s", label, time.Since(start))
}
