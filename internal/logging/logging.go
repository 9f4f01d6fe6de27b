package logging

import (
	"io"
	"log/slog"
	"os"
)

// New initializes an slog logger and sets it as the default. The LOG_FORMAT
// environment variable selects the output format: "json", or text otherwise.
// Log output goes to stderr so it never interleaves with rendered command
// output.
func New(out io.Writer) *slog.Logger {
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	switch os.Getenv("LOG_FORMAT") {
	case "json":
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
