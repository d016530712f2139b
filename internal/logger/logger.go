package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
)

// ParseLevel maps a config string onto a slog level. Unknown values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w. format is "json" or "text".
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Initialize installs the process-wide logger on stdout.
func Initialize(level, format string) {
	Set(New(os.Stdout, level, format))
}

// Set replaces the process-wide logger. Tests use it to capture output.
func Set(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
	slog.SetDefault(l)
}

func Get() *slog.Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l == nil {
		Initialize("info", "text")
		return Get()
	}
	return l
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// EnterMethod records entry into a traced method at debug level.
func EnterMethod(method string, args ...any) {
	Get().Debug("→ enter", append([]any{"method", method}, args...)...)
}

// ExitMethod records a successful return from a traced method.
func ExitMethod(method string, args ...any) {
	Get().Debug("← exit", append([]any{"method", method}, args...)...)
}

// ExitMethodWithError records a failed return at warn level.
func ExitMethodWithError(method string, err error, args ...any) {
	Get().Warn("← exit with error", append([]any{"method", method, "error", err}, args...)...)
}

// DatabaseCall traces a statement before it is sent.
func DatabaseCall(operation, query string, args ...any) {
	Get().Debug("→ db", append([]any{"operation", operation, "query", query}, args...)...)
}

// DatabaseResult traces the outcome of a statement.
func DatabaseResult(operation string, rows int64, err error, args ...any) {
	attrs := append([]any{"operation", operation, "rows", rows}, args...)
	if err != nil {
		Get().Error("← db failed", append(attrs, "error", err)...)
		return
	}
	Get().Debug("← db ok", attrs...)
}

// ExternalServiceCall traces a call to a dependency such as the cache.
func ExternalServiceCall(service, operation string, args ...any) {
	Get().Debug("→ external", append([]any{"service", service, "operation", operation}, args...)...)
}

// ExternalServiceResult traces the outcome of a dependency call.
func ExternalServiceResult(service, operation string, err error, args ...any) {
	attrs := append([]any{"service", service, "operation", operation}, args...)
	if err != nil {
		Get().Warn("← external failed", append(attrs, "error", err)...)
		return
	}
	Get().Debug("← external ok", attrs...)
}

// Request writes one access-log line for an HTTP exchange.
func Request(method, path string, status int, elapsed time.Duration, args ...any) {
	attrs := append([]any{"method", method, "path", path, "status", status, "duration_ms", elapsed.Milliseconds()}, args...)
	switch {
	case status >= 500:
		Get().Error("http request", attrs...)
	case status >= 400:
		Get().Warn("http request", attrs...)
	default:
		Get().Info("http request", attrs...)
	}
}
