// Package log provides structured logging for commands, errors and general
// application activity on top of log/slog.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"vclassroom/local-app/internal/config"
)

// Fields carries structured attributes attached to a log record.
type Fields map[string]interface{}

// Logger writes general records to the info logger, errors additionally to
// the error logger, and input lines to the command logger.
type Logger struct {
	infoLogger    *slog.Logger
	errorLogger   *slog.Logger
	commandLogger *slog.Logger
	files         []*os.File
}

// NewLogger creates a Logger from configuration. Without a log folder all
// records go to stderr.
func NewLogger(cfg *config.Config) (*Logger, error) {
	level := ParseLevel(cfg.LogLevel)
	if cfg.LogFolder == "" {
		return NewLoggerWithWriter(os.Stderr, level, cfg.LogFormat), nil
	}

	if err := os.MkdirAll(cfg.LogFolder, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	l := &Logger{}
	open := func(name string) (*os.File, error) {
		path := filepath.Join(cfg.LogFolder, name)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			l.closeFiles()
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		l.files = append(l.files, f)
		return f, nil
	}

	infoFile, err := open(cfg.InfoLog)
	if err != nil {
		return nil, err
	}
	errorFile, err := open(cfg.ErrorLog)
	if err != nil {
		return nil, err
	}
	commandFile, err := open(cfg.CommandLog)
	if err != nil {
		return nil, err
	}

	l.infoLogger = slog.New(slog.NewJSONHandler(infoFile, &slog.HandlerOptions{Level: level}))
	l.errorLogger = slog.New(slog.NewJSONHandler(errorFile, &slog.HandlerOptions{Level: slog.LevelError}))
	l.commandLogger = slog.New(slog.NewJSONHandler(commandFile, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return l, nil
}

// NewLoggerWithWriter creates a Logger that sends every record to w.
// format is "json" or "text".
func NewLoggerWithWriter(w io.Writer, level slog.Level, format string) *Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	return &Logger{
		infoLogger:    logger,
		commandLogger: logger.With("log", "command"),
	}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return NewLoggerWithWriter(io.Discard, slog.LevelError, "text")
}

// ParseLevel converts a string log level to slog.Level.
// Unrecognized values map to slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(ctx context.Context, msg string, fields Fields) {
	l.infoLogger.Log(ctx, slog.LevelDebug, msg, fields.attrs()...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields Fields) {
	l.infoLogger.Log(ctx, slog.LevelInfo, msg, fields.attrs()...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields Fields) {
	l.infoLogger.Log(ctx, slog.LevelWarn, msg, fields.attrs()...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields Fields) {
	l.infoLogger.Log(ctx, slog.LevelError, msg, fields.attrs()...)
	if l.errorLogger != nil {
		l.errorLogger.Log(ctx, slog.LevelError, msg, fields.attrs()...)
	}
}

// Command records a single input line in the command log. Without a log
// folder the record is emitted at debug level.
func (l *Logger) Command(ctx context.Context, msg string, fields Fields) {
	level := slog.LevelInfo
	if l.errorLogger == nil {
		level = slog.LevelDebug
	}
	l.commandLogger.Log(ctx, level, msg, fields.attrs()...)
}

// Close closes any log files opened by NewLogger.
func (l *Logger) Close() error {
	return l.closeFiles()
}

func (l *Logger) closeFiles() error {
	var firstErr error
	for _, f := range l.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close log file %s: %w", f.Name(), err)
		}
	}
	l.files = nil
	return firstErr
}

func (f Fields) attrs() []any {
	if len(f) == 0 {
		return nil
	}
	args := make([]any, 0, len(f)*2)
	for k, v := range f {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		args = append(args, k, v)
	}
	return args
}
