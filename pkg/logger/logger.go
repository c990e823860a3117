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

	"github.com/oakwood-commons/gridkit/pkg/settings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Define an unexported custom type for the context key to prevent collisions.
type loggerContextKey struct{}

const (
	CommandKey   = "command"
	CommitKey    = "commit"
	VersionKey   = "version"
	BuildTimeKey = "build_time"
	GoVersionKey = "go_version"
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

var (
	once sync.Once // Ensures Setup is called only once

	// globalZapLogger is the underlying *zap.Logger for explicit Zap-specific operations like Sync().
	// It's package-private to prevent direct modification.
	globalZapLogger *zap.Logger

	// globalLogrLogger is the logr.Logger instance that application code will primarily use
	// if not retrieving from context, or as a default for context.
	// It's package-private to prevent direct modification.
	globalLogrLogger *logr.Logger

	// defaultNoopLogger is a logger that does nothing, used as a fallback.
	defaultNoopLogger logr.Logger = logr.Discard()
)

// New builds a zap-backed logr.Logger that writes JSON entries at or above
// logLevel to w. Every entry carries the build metadata fields.
// The returned *zap.Logger is needed to flush buffered entries.
func New(logLevel int8, w zapcore.WriteSyncer) (logr.Logger, *zap.Logger) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	goVersion := "unknown"
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		goVersion = buildInfo.GoVersion
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(w),
		zap.NewAtomicLevelAt(zapcore.Level(logLevel)),
	).With(
		[]zapcore.Field{
			zap.String(CommitKey, settings.VersionInformation.Commit),
			zap.String(VersionKey, settings.VersionInformation.BuildVersion),
			zap.String(BuildTimeKey, settings.VersionInformation.BuildTime),
			zap.String(GoVersionKey, goVersion),
		},
	)

	zl := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.WithFatalHook(zapcore.WriteThenPanic),
	)
	return zapr.NewLogger(zl), zl
}

// Get initializes the global logger on first use, writing to stderr.
// logLevel follows zapcore levels: negative values enable V(n) debug output,
// 0 is info. Subsequent calls return the same logger regardless of logLevel.
func Get(logLevel int8) *logr.Logger {
	once.Do(func() {
		gl, zl := New(logLevel, os.Stderr)
		globalZapLogger = zl
		globalLogrLogger = &gl
	})
	if globalLogrLogger == nil {
		return &defaultNoopLogger
	}
	return globalLogrLogger
}

// WithLogger returns a new context with the provided logr.Logger attached.
// If the context already contains the same logger instance, it returns the original context.
// This allows logger propagation through context for structured logging.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if lp, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		if lp == log {
			return ctx
		}
	}
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext retrieves the logr.Logger from the context.
// If no logger is found in the context, it returns the globally configured logger.
// If Setup has not been called, it returns a no-op logger to prevent panics.
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return log
	} else if log := globalLogrLogger; log != nil {
		// If no logger in context, return the global logger.
		return log
	}
	// Fallback to a no-op logger if Setup hasn't been called at all.
	return &defaultNoopLogger
}

// Sync flushes any buffered log entries to their destination.
// This should be called before the application exits, typically via `defer logger.Sync()` in main.
func Sync() {
	if globalZapLogger != nil {
		if err := globalZapLogger.Sync(); err != nil {
			if isIgnorableSyncError(err) {
				return
			}
			// Fallback: print once to stderr if it's an unexpected error
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
	// Windows: "The handle is invalid." often returned when syncing stderr of GUI/subsystem binaries.
	if strings.Contains(err.Error(), "The handle is invalid") {
		return true
	}
	return false
}

// ForCommand returns lgr annotated with the running command's name.
func ForCommand(lgr *logr.Logger, command string) *logr.Logger {
	nlgr := lgr.WithValues(CommandKey, command)
	return &nlgr
}
