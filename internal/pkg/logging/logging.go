package logging

import (
	"io"
	"log/slog"
	"strings"
)

// SetupLogger installs the default slog logger: text output during
// development, JSON in production.
func SetupLogger(appEnv, logLevel string, out io.Writer) {
	opts := &slog.HandlerOptions{
		Level: stringToLogLevel(logLevel),
	}

	var handler slog.Handler
	if appEnv == "production" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func stringToLogLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
