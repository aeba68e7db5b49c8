// Package logger owns the process-wide zap logger. Commands initialize it
// once from config; library packages receive a *zap.SugaredLogger instead of
// reaching for the global.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level and an optional log file.
type Config struct {
	Level    string
	FilePath string
	NoColor  bool
}

// swappableWriter lets tests redirect console output after initialization.
type swappableWriter struct {
	mu     sync.RWMutex
	writer io.Writer
}

func (w *swappableWriter) Write(p []byte) (int, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.writer == nil {
		return len(p), nil
	}
	return w.writer.Write(p)
}

func (w *swappableWriter) Sync() error { return nil }

var (
	mu          sync.RWMutex
	sugar       *zap.SugaredLogger
	base        *zap.Logger
	atomicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logFile     *os.File
	console     = &swappableWriter{writer: os.Stderr}
)

// Init builds the logger from cfg and installs it as the zap global. The
// returned cleanup flushes and closes the log file.
func Init(cfg Config) (*zap.SugaredLogger, func(), error) {
	mu.Lock()
	defer mu.Unlock()

	atomicLevel.SetLevel(ParseLevel(cfg.Level))

	encoderCfg := zap.NewDevelopmentConfig().EncoderConfig
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if cfg.NoColor {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(console), atomicLevel),
	}

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if path := strings.TrimSpace(cfg.FilePath); path != "" {
		fileCore, handle, err := buildFileCore(encoderCfg, path)
		if err != nil {
			return nil, nil, err
		}
		logFile = handle
		cores = append(cores, fileCore)
	}

	base = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	sugar = base.Sugar()
	zap.ReplaceGlobals(base)

	return sugar, cleanup, nil
}

func buildFileCore(encoderCfg zapcore.EncoderConfig, path string) (zapcore.Core, *os.File, error) {
	cleaned := filepath.Clean(path)
	if dir := filepath.Dir(cleaned); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory %q: %w", dir, err)
		}
	}

	file, err := os.OpenFile(cleaned, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %q: %w", cleaned, err)
	}

	fileCfg := encoderCfg
	fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewCore(zapcore.NewConsoleEncoder(fileCfg), zapcore.AddSync(file), atomicLevel), file, nil
}

func cleanup() {
	mu.Lock()
	defer mu.Unlock()

	if base != nil {
		_ = base.Sync()
	}
	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
		logFile = nil
	}
}

// Logger returns the current logger, initializing an info-level console
// logger on first use.
func Logger() *zap.SugaredLogger {
	mu.RLock()
	s := sugar
	mu.RUnlock()
	if s != nil {
		return s
	}

	s, _, err := Init(Config{Level: "info"})
	if err != nil {
		panic(fmt.Sprintf("logger initialization failed: %v", err))
	}
	return s
}

// ParseLevel maps a level name to a zap level. Unknown names mean info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ReplaceStderrWriter swaps the console writer and returns the previous one.
func ReplaceStderrWriter(w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	console.mu.Lock()
	defer console.mu.Unlock()
	old := console.writer
	console.writer = w
	if old == nil {
		old = os.Stderr
	}
	return old
}
