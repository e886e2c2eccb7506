package vrmodels

import (
	"log/slog"
	"sync/atomic"
)

// silent is the default logger. slog.DiscardHandler reports every level as
// disabled, so log calls return before formatting their arguments.
var silent = slog.New(slog.DiscardHandler)

// loggerPtr stores the package logger. Accessed atomically so that
// SetLogger can be called while loads are polling on other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(silent)
}

// SetLogger configures the logger used by every RenderModels value that was
// not given its own logger with WithLogger. By default vrmodels produces no
// log output.
//
// Pass nil to restore the silent default.
//
// Log levels used by vrmodels:
//   - [slog.LevelDebug]: poll attempts, loads and releases of driver blocks
//   - [slog.LevelWarn]: driver contract violations that are recovered from
//
// Example:
//
//	vrmodels.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
