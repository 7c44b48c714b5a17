package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Log is the global logger instance
var Log *slog.Logger

var sentryEnabled bool

// Init installs the global logger writing to stdout.
func Init(isDev bool, sentryDSN string) {
	Log = New(os.Stdout, isDev, sentryDSN)
	slog.SetDefault(Log)
}

// New builds a logger for the environment.
// Development: Text format with Debug level
// Production: JSON format with Info level
// Errors are also sent to Sentry when a DSN is given.
func New(w io.Writer, isDev bool, sentryDSN string) *slog.Logger {
	var handlers []slog.Handler

	if isDev {
		handlers = append(handlers, slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			sentryEnabled = true
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	return slog.New(handler)
}

// Flush waits for buffered Sentry events before the process exits.
func Flush(timeout time.Duration) {
	if sentryEnabled {
		sentry.Flush(timeout)
	}
}
