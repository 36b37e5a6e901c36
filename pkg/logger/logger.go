package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is usable before Init so packages can log during tests without setup.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init configures the global JSON logger. When logFile is non-empty, output
// is duplicated to a size-rotated file so deployments without log shipping
// keep a bounded history.
func Init(logFile string) {
	var out io.Writer = os.Stdout
	if logFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
