// Package logging builds the process-wide slog logger from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level  string // debug | info | warn | error
	Format string // json | text
	Output string // stdout | file
	// File settings apply when Output is "file". Sizes are in megabytes, age in days.
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// New returns the logger and the writer behind it. Close the writer on shutdown
// when it is a rotating file.
func New(cfg Config) (*slog.Logger, io.Writer, error) {
	writer, err := output(cfg)
	if err != nil {
		return nil, nil, err
	}

	level := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(writer, opts)
	default:
		handler = slog.NewJSONHandler(writer, opts)
	}

	return slog.New(handler), writer, nil
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

func output(cfg Config) (io.Writer, error) {
	if strings.ToLower(cfg.Output) != "file" {
		return os.Stdout, nil
	}
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("log output is file but no file path is set")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, err
	}

	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    orDefault(cfg.MaxSize, 100),
		MaxBackups: orDefault(cfg.MaxBackups, 5),
		MaxAge:     orDefault(cfg.MaxAge, 30),
		Compress:   true,
	}, nil
}

func orDefault(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
