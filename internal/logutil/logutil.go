package logutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// StderrSink routes logs to standard error instead of a file
const StderrSink = "stderr"

// LogConfig describes the application logger
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`   // console or json
	Filename   string `toml:"filename"` // empty discards, "stderr" writes to standard error
	MaxSize    int    `toml:"max_size"` // megabytes before rotation
	MaxDays    int    `toml:"max_days"`
	MaxBackups int    `toml:"max_backups"`
}

// DefaultLogConfig returns a config that discards everything below info
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:      "info",
		Format:     "console",
		MaxSize:    16,
		MaxDays:    7,
		MaxBackups: 3,
	}
}

var global atomic.Pointer[zap.Logger]

// file is the rotating sink opened by Setup, closed by Close
var (
	fileMu sync.Mutex
	file   io.Closer
)

func init() {
	global.Store(zap.NewNop())
}

// L returns the global logger
func L() *zap.Logger {
	return global.Load()
}

// ReplaceGlobal swaps the global logger and returns a func restoring the previous one
func ReplaceGlobal(logger *zap.Logger) func() {
	prev := global.Swap(logger)
	return func() {
		global.Store(prev)
	}
}

// Setup builds a logger from cfg and installs it globally. A file sink
// left by an earlier Setup is closed.
func Setup(cfg LogConfig) (*zap.Logger, error) {
	logger, closer, err := cfg.build()
	if err != nil {
		return nil, err
	}
	ReplaceGlobal(logger)

	fileMu.Lock()
	prev := file
	file = closer
	fileMu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	return logger, nil
}

// Sync flushes the global logger
func Sync() {
	_ = L().Sync()
}

// Close flushes the global logger, swaps in a no-op one and releases the
// log file opened by Setup
func Close() error {
	Sync()
	global.Store(zap.NewNop())

	fileMu.Lock()
	closer := file
	file = nil
	fileMu.Unlock()
	if closer == nil {
		return nil
	}
	return closer.Close()
}

// Build creates a logger without touching the global one
func (cfg LogConfig) Build() (*zap.Logger, error) {
	logger, _, err := cfg.build()
	return logger, err
}

func (cfg LogConfig) build() (*zap.Logger, io.Closer, error) {
	level, err := cfg.getLevel()
	if err != nil {
		return nil, nil, err
	}
	syncer, closer, err := cfg.getSyncer()
	if err != nil {
		return nil, nil, err
	}
	core := zapcore.NewCore(cfg.getEncoder(), syncer, level)
	return zap.New(core, cfg.getOptions()...), closer, nil
}

func (cfg LogConfig) getLevel() (zap.AtomicLevel, error) {
	if cfg.Level == "" {
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	return level, nil
}

func (cfg LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

func (cfg LogConfig) getEncoder() zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if cfg.Format == "json" {
		return zapcore.NewJSONEncoder(encCfg)
	}
	return zapcore.NewConsoleEncoder(encCfg)
}

func (cfg LogConfig) getSyncer() (zapcore.WriteSyncer, io.Closer, error) {
	switch cfg.Filename {
	case "":
		return zapcore.AddSync(io.Discard), nil, nil
	case StderrSink:
		return zapcore.Lock(os.Stderr), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}
	return zapcore.AddSync(lj), lj, nil
}
