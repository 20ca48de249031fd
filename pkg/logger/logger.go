// Package logger wires the logr API to a zap backend. All gridx packages
// log through logr.Logger; the zap core emits JSON to stderr with build
// metadata attached to every entry.
package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/oakwood-commons/gridx/pkg/settings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Unexported context key type to prevent collisions.
type loggerContextKey struct{}

const (
	CommitKey    = "commit"
	VersionKey   = "version"
	BuildTimeKey = "build_time"
	GoVersionKey = "go_version"
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

var (
	once sync.Once // Get initializes the backend exactly once

	// globalZapLogger is the underlying *zap.Logger, kept for Sync().
	globalZapLogger *zap.Logger

	// globalLogrLogger is the logr.Logger application code uses.
	globalLogrLogger *logr.Logger

	defaultNoopLogger logr.Logger = logr.Discard()
)

// Get initializes the global loggers on first call and returns the
// logr.Logger. logLevel maps onto zapcore levels (0 = info, -1 = debug).
func Get(logLevel int8) *logr.Logger {
	once.Do(func() {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderCfg.TimeKey = TimeStampKey
		encoderCfg.MessageKey = MessageKey

		buildInfo, _ := debug.ReadBuildInfo()
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			zap.NewAtomicLevelAt(zapcore.Level(logLevel)),
		).With(
			[]zapcore.Field{
				zap.String(CommitKey, settings.VersionInformation.Commit),
				zap.String(VersionKey, settings.VersionInformation.BuildVersion),
				zap.String(BuildTimeKey, settings.VersionInformation.BuildTime),
				zap.String(GoVersionKey, buildInfo.GoVersion),
			},
		)

		globalZapLogger = zap.New(core,
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
			zap.WithFatalHook(zapcore.WriteThenPanic),
		)

		gl := zapr.NewLogger(globalZapLogger)
		globalLogrLogger = &gl
	})
	if globalLogrLogger == nil {
		return &defaultNoopLogger
	}
	return globalLogrLogger
}

// WithLogger returns a new context with the provided logr.Logger attached.
// If the context already carries the same logger instance, the original
// context is returned unchanged.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if lp, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		if lp == log {
			return ctx
		}
	}
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext retrieves the logr.Logger from the context, falling back to
// the global logger, then to a no-op logger if Get was never called.
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return log
	} else if log := globalLogrLogger; log != nil {
		return log
	}
	return &defaultNoopLogger
}

// Sync flushes buffered log entries. Call before exit, typically via
// `defer logger.Sync()` in main.
func Sync() {
	if globalZapLogger != nil {
		if err := globalZapLogger.Sync(); err != nil {
			if isIgnorableSyncError(err) {
				return
			}
			fmt.Fprintf(os.Stderr, "WARNING: failed to sync zap logger: %v\n", err)
		}
	}
}

// isIgnorableSyncError returns true for common Sync errors on pipes/TTYs.
// Windows consoles can return ERROR_INVALID_HANDLE wrapped in *os.PathError,
// which does not compare equal to syscall.EINVAL, so we also string-match.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	if strings.Contains(err.Error(), "The handle is invalid") {
		return true
	}
	return false
}

// GetGlobalLogger returns the globally configured logr.Logger, or a no-op
// logger if Get has not been called.
func GetGlobalLogger() *logr.Logger {
	if globalLogrLogger != nil {
		return globalLogrLogger
	}
	return &defaultNoopLogger
}

// GetNoopLogger returns a logger that discards everything.
func GetNoopLogger() *logr.Logger {
	return &defaultNoopLogger
}

// WithValues returns a new logr.Logger with additional key-value pairs
// attached for structured logging.
func WithValues(lgr *logr.Logger, keysAndValues ...any) *logr.Logger {
	nlgr := lgr.WithValues(keysAndValues...)
	return &nlgr
}
