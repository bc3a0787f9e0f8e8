package logutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogConfig_getter(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LogConfig
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "default", cfg: LogConfig{}, wantLevel: zapcore.InfoLevel},
		{name: "debug", cfg: LogConfig{Level: "debug", Format: "json"}, wantLevel: zapcore.DebugLevel},
		{name: "bad level", cfg: LogConfig{Level: "loud"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := tt.cfg.getLevel()
			if tt.wantErr {
				require.Error(t, err)
				_, err = tt.cfg.Build()
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantLevel, level.Level())
			require.Len(t, tt.cfg.getOptions(), 2)
		})
	}
}

func TestEncoderFormat(t *testing.T) {
	entry := zapcore.Entry{Level: zapcore.InfoLevel, Message: "hello"}

	buf, err := LogConfig{Format: "json"}.getEncoder().EncodeEntry(entry, nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(buf.String(), "{"), "json encoder emits objects")

	buf, err = LogConfig{Format: "console"}.getEncoder().EncodeEntry(entry, nil)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "INFO\thello")
}

func TestBuildWritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "backoffice.log")
	cfg := DefaultLogConfig()
	cfg.Filename = path

	logger, err := cfg.Build()
	require.NoError(t, err)
	logger.Info("deleted", zap.String("feature", "orders"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "deleted")
	require.Contains(t, string(data), "orders")
}

func TestReplaceGlobal(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := ReplaceGlobal(zap.New(core))

	L().Debug("visible", zap.Int("count", 3))
	L().Info("second", zap.String("id", "x"))
	restore()
	L().Info("dropped by the nop logger")

	require.Equal(t, 2, logs.Len())
	require.Equal(t, "visible", logs.All()[0].Message)
	require.Equal(t, int64(3), logs.All()[0].ContextMap()["count"])
}

func TestSetupAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backoffice.log")
	cfg := DefaultLogConfig()
	cfg.Filename = path

	logger, err := Setup(cfg)
	require.NoError(t, err)
	require.Same(t, logger, L())
	L().Info("before close", zap.String("feature", "orders"))

	require.NoError(t, Close())
	fileMu.Lock()
	require.Nil(t, file, "sink released")
	fileMu.Unlock()

	// the nop logger takes over; nothing more reaches the file
	L().Info("after close")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "before close")
	require.NotContains(t, string(data), "after close")

	require.NoError(t, Close(), "closing twice is harmless")
}

func TestSetupWithoutFileHasNothingToClose(t *testing.T) {
	_, err := Setup(LogConfig{Level: "warn"})
	require.NoError(t, err)
	require.NoError(t, Close())
}
