package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"combo/pkg/settings"
)

// Define an unexported custom type for the context key to prevent collisions.
type loggerContextKey struct{}

const (
	CommitKey    = "commit"
	VersionKey   = "version"
	GoVersionKey = "go_version"
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

var (
	once sync.Once // Ensures Get initializes only once

	// globalZapLogger is the underlying *zap.Logger for Sync().
	globalZapLogger *zap.Logger

	// globalLogrLogger is the logr.Logger application code uses when no
	// logger travels in the context.
	globalLogrLogger *logr.Logger

	// defaultNoopLogger is a logger that does nothing, used as a fallback.
	defaultNoopLogger logr.Logger = logr.Discard()
)

// Get initializes the global Zap and Logr loggers and returns the logr one.
// Only the first call configures anything; later calls return the same
// logger. A terminal UI owns stdout and stderr, so entries go to logFile
// and are discarded when it is empty.
func Get(logLevel int8, logFile string) (*logr.Logger, error) {
	var setupErr error
	once.Do(func() {
		var sink zapcore.WriteSyncer = zapcore.AddSync(io.Discard)
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				setupErr = fmt.Errorf("failed to open log file: %w", err)
				return
			}
			sink = zapcore.Lock(f)
		}

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
			sink,
			zap.NewAtomicLevelAt(zapcore.Level(logLevel)),
		).With(
			[]zapcore.Field{
				zap.String(CommitKey, settings.VersionInformation.Commit),
				zap.String(VersionKey, settings.VersionInformation.BuildVersion),
				zap.String(GoVersionKey, goVersion),
			},
		)

		globalZapLogger = zap.New(core,
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
		)

		gl := zapr.NewLogger(globalZapLogger)
		globalLogrLogger = &gl
	})
	if setupErr != nil {
		return &defaultNoopLogger, setupErr
	}
	if globalLogrLogger == nil {
		return &defaultNoopLogger, nil
	}
	return globalLogrLogger, nil
}

// ParseLevel accepts a zap level name (debug, info, warn, error) or a
// number, where negative numbers enable increasingly verbose V levels
func ParseLevel(s string) (int8, error) {
	if n, err := strconv.ParseInt(s, 10, 8); err == nil {
		return int8(n), nil
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return int8(lvl), nil
}

// WithLogger returns a new context with the provided logr.Logger attached.
// If the context already contains the same logger instance, it returns the original context.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if lp, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		if lp == log {
			return ctx
		}
	}
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext retrieves the logr.Logger from the context, falling back to
// the global logger and then to a no-op logger
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return log
	} else if log := globalLogrLogger; log != nil {
		return log
	}
	return &defaultNoopLogger
}

// Sync flushes any buffered log entries to their destination.
// This should be called before the application exits.
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
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	// Windows consoles report an invalid handle
	if strings.Contains(err.Error(), "The handle is invalid") {
		return true
	}
	return false
}

// GetGlobalLogger returns the globally configured logr.Logger, or a no-op
// logger before Get has run
func GetGlobalLogger() *logr.Logger {
	if globalLogrLogger != nil {
		return globalLogrLogger
	}
	return &defaultNoopLogger
}
