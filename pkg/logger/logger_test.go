package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oakwood-commons/gridkit/pkg/settings"
)

// mockLogLevel is a valid zapcore.Level value for testing.
const mockLogLevel int8 = 0 // zapcore.InfoLevel

func TestGetReturnsLoggerInstance(t *testing.T) {
	logger := Get(mockLogLevel)
	if logger == nil {
		t.Fatal("Get should return a non-nil logger")
	}
}

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	logger1 := Get(mockLogLevel)
	logger2 := Get(mockLogLevel)
	if logger1 != logger2 {
		t.Error("Get should return the same logger instance on subsequent calls")
	}
}

func TestGetReturnsNoopLoggerIfGlobalLoggerNil(t *testing.T) {
	// Save and restore globalLogrLogger for isolation
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	logger := Get(mockLogLevel)
	if logger == nil {
		t.Fatal("Get should return a logger (noop) if globalLogrLogger is nil")
	}
	// logr.Discard() returns a pointer, so we can check type
	if fmt.Sprintf("%T", logger) != "*logr.Logger" {
		t.Errorf("Get should return a logr.Logger type, got %T", logger)
	}
}

func TestWithLoggerAddsLoggerToContext(t *testing.T) {
	ctx := context.Background()
	logger := Get(mockLogLevel)
	newCtx := WithLogger(ctx, logger)

	got := newCtx.Value(loggerContextKey{})
	if got == nil {
		t.Fatal("WithLogger should add logger to context")
	}
	if got != logger {
		t.Error("WithLogger should store the provided logger in context")
	}
}

func TestWithLoggerReturnsSameContextIfLoggerAlreadySet(t *testing.T) {
	ctx := context.Background()
	logger := Get(mockLogLevel)
	ctxWithLogger := context.WithValue(ctx, loggerContextKey{}, logger)

	resultCtx := WithLogger(ctxWithLogger, logger)
	if resultCtx != ctxWithLogger {
		t.Error("WithLogger should return the same context if logger is already set and matches")
	}
}

func TestWithLoggerReplacesLoggerIfDifferent(t *testing.T) {
	ctx := context.Background()
	logger1 := Get(mockLogLevel)
	logger2 := logr.Discard()
	ctxWithLogger := context.WithValue(ctx, loggerContextKey{}, logger1)

	resultCtx := WithLogger(ctxWithLogger, &logger2)
	got := resultCtx.Value(loggerContextKey{})
	if got != &logger2 {
		t.Error("WithLogger should replace logger in context if different")
	}
}

func TestFromContextReturnsLoggerFromContext(t *testing.T) {
	ctx := context.Background()
	logger := Get(mockLogLevel)
	ctxWithLogger := context.WithValue(ctx, loggerContextKey{}, logger)

	got := FromContext(ctxWithLogger)
	if got != logger {
		t.Error("FromContext should return the logger stored in context")
	}
}

func TestFromContextReturnsGlobalLoggerIfNoLoggerInContext(t *testing.T) {
	ctx := context.Background()
	globalLogger := Get(mockLogLevel)

	got := FromContext(ctx)
	if got != globalLogger {
		t.Error("FromContext should return the global logger if none in context")
	}
}

func TestFromContextReturnsNoopLoggerIfNoGlobalOrContextLogger(t *testing.T) {
	// Save and restore globalLogrLogger for isolation
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	ctx := context.Background()
	got := FromContext(ctx)
	if got == nil {
		t.Fatal("FromContext should return a logger (noop) if none in context or global")
	}
	if got != &defaultNoopLogger {
		t.Error("FromContext should return defaultNoopLogger if no logger is set")
	}
}

func TestSyncDoesNotPanicWhenGlobalZapLoggerIsNil(t *testing.T) {
	// Save and restore globalZapLogger for isolation
	orig := globalZapLogger
	globalZapLogger = nil
	defer func() { globalZapLogger = orig }()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sync should not panic when globalZapLogger is nil, but got panic: %v", r)
		}
	}()
	Sync()
}

func TestDefaultNoopLoggerIsNoop(t *testing.T) {
	// logr.Discard() does nothing, so calling Info should not panic or output
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("defaultNoopLogger should not panic when calling Info, got: %v", r)
		}
	}()
	defaultNoopLogger.Info("This should do nothing")
	if defaultNoopLogger.Enabled() {
		t.Error("defaultNoopLogger should not be enabled")
	}
}

func TestNewWritesJSONWithBuildMetadata(t *testing.T) {
	var buf bytes.Buffer
	lgr, zl := New(0, zapcore.AddSync(&buf))
	lgr.Info("computed style", "column", "status", "width", 20)
	require.NoError(t, zl.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "computed style", entry[MessageKey])
	assert.Equal(t, "status", entry["column"])
	assert.EqualValues(t, 20, entry["width"])
	assert.Contains(t, entry, TimeStampKey)
	assert.Equal(t, settings.VersionInformation.BuildVersion, entry[VersionKey])
	assert.Equal(t, settings.VersionInformation.Commit, entry[CommitKey])
}

func TestNewHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	lgr, zl := New(0, zapcore.AddSync(&buf))
	lgr.V(1).Info("debug detail")
	require.NoError(t, zl.Sync())
	assert.Empty(t, buf.String())

	buf.Reset()
	lgr, zl = New(-1, zapcore.AddSync(&buf))
	lgr.V(1).Info("debug detail")
	require.NoError(t, zl.Sync())
	assert.Contains(t, buf.String(), "debug detail")
}

func TestForCommandAddsCommandKey(t *testing.T) {
	var buf bytes.Buffer
	lgr, zl := New(0, zapcore.AddSync(&buf))
	ForCommand(&lgr, "style").Info("done")
	require.NoError(t, zl.Sync())
	assert.Contains(t, buf.String(), `"command":"style"`)
}

func TestForCommandPreservesOriginalLogger(t *testing.T) {
	logger := Get(mockLogLevel)
	annotated := ForCommand(logger, "width")
	if annotated == logger {
		t.Error("ForCommand should return a new logger instance, not the original")
	}
}

func TestIsIgnorableSyncError(t *testing.T) {
	assert.True(t, isIgnorableSyncError(syscall.EINVAL))
	assert.True(t, isIgnorableSyncError(&os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.ENOTTY}))
	assert.True(t, isIgnorableSyncError(errors.New("sync: The handle is invalid.")))
	assert.False(t, isIgnorableSyncError(errors.New("disk full")))
}
