package config

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

const LogLevelEnv = "DOTSCAN_LOG_LEVEL"

// Logger holds logger configuration
type Logger struct {
	Level string
}

// Configure returns a text logger writing to w.
func (c *Logger) Configure(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, goerr.New("invalid log level", goerr.V("level", c.Level))
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	})
	return slog.New(handler), nil
}

func tempDir() string {
	if runtime.GOOS == "darwin" {
		return "/tmp"
	}
	return os.TempDir()
}

// OpenLogFile creates a fresh log file in the temp directory. Diagnostics go
// there so they never interleave with scan output.
func OpenLogFile() (*os.File, error) {
	f, err := os.CreateTemp(tempDir(), "dotscan-*.log")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create log file", goerr.V("dir", tempDir()))
	}
	return f, nil
}
