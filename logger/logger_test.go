package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/vds/configuration"
)

func init() {
	defaultEncoderConfig.TimeKey = "" // no timestamps in tests
}

func TestNewRootLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expectRx string
	}{
		{
			name: "console",
			cfg: Config{
				Level:    "info",
				Encoding: "console",
			},
			expectRx: `INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "json",
			cfg: Config{
				Level:    "info",
				Encoding: "json",
			},
			expectRx: `{"level":"INFO","caller":"logger/logger_test.go:\d+","msg":"info"}\n` +
				`{"level":"WARN","caller":"logger/logger_test.go:\d+","msg":"warn"}`,
		},
		{
			name: "debug",
			cfg: Config{
				Level:    "debug",
				Encoding: "console",
			},
			expectRx: `DEBUG\tlogger/logger_test.go:\d+\tdebug\n` +
				`INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "noCaller",
			cfg: Config{
				Level:         "info",
				DisableCaller: true,
				Encoding:      "console",
			},
			expectRx: "INFO\tinfo\n" +
				"WARN\twarn\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "vds-logger-test")

			tt.cfg.DisableStacktrace = true
			tt.cfg.OutputPaths = []string{logFile}

			logger, err := NewRootLogger(tt.cfg)
			require.NoError(t, err, "Unexpected error constructing logger.")

			logger.Debug("debug")
			logger.Info("info")
			logger.Warn("warn")
			_ = logger.Sync()

			assert.Regexp(t, tt.expectRx, getLogs(t, logFile), "Unexpected log output.")
		})
	}
}

func TestNewRootLogger_InvalidLevel(t *testing.T) {
	cfg := DefaultCfg
	cfg.Level = "invalid"

	_, err := NewRootLogger(cfg)
	require.True(t, ierrors.Is(err, ErrInvalidLevel))

	cfg = DefaultCfg
	cfg.StacktraceLevel = "invalid"

	_, err = NewRootLogger(cfg)
	require.True(t, ierrors.Is(err, ErrInvalidLevel))
}

func TestNewRootLoggerFromConfiguration(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "vds-logger-test")

	c := configuration.New()
	require.NoError(t, c.Set(ConfigurationKeyLevel, "warn"))
	require.NoError(t, c.Set(ConfigurationKeyEncoding, "json"))
	require.NoError(t, c.Set(ConfigurationKeyOutputPaths, []string{logFile}))

	logger, err := NewRootLoggerFromConfiguration(c)
	require.NoError(t, err)

	logger.Info("info")
	logger.Warnw("warn", "kind", "queue")
	_ = logger.Sync()

	logs := getLogs(t, logFile)
	assert.NotContains(t, logs, `"msg":"info"`)
	assert.Regexp(t, `{"level":"WARN","msg":"warn","kind":"queue"}`, logs)
}

func TestWrappedLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "vds-logger-test")

	cfg := DefaultCfg
	cfg.Level = "debug"
	cfg.OutputPaths = []string{logFile}

	root, err := NewRootLogger(cfg)
	require.NoError(t, err)

	wrapped := NewWrappedLogger(root.Named("workload"))
	wrapped.LogDebugf("debug %d", 1)
	wrapped.LogInfow("info", "size", 8)
	wrapped.LogWarnf("warn")
	_ = root.Sync()

	logs := getLogs(t, logFile)
	assert.Regexp(t, `DEBUG\tworkload\tdebug 1\n`, logs)
	assert.Regexp(t, `INFO\tworkload\tinfo\t{"size": 8}\n`, logs)
	assert.Regexp(t, `WARN\tworkload\twarn\n`, logs)

	// a wrapper without a logger silently drops everything
	empty := NewWrappedLogger(nil)
	require.Nil(t, empty.Logger())
	require.Nil(t, empty.LoggerNamed("test"))
	require.NotPanics(t, func() {
		empty.LogInfof("info")
		empty.LogErrorw("error", "key", "value")
	})
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, "warn", level.String())

	_, err = ParseLevel("verbose")
	require.Error(t, err)
}

func getLogs(t require.TestingT, filePath string) string {
	byteContents, err := os.ReadFile(filePath)
	require.NoError(t, err, "Couldn't read log contents from file.")

	return string(byteContents)
}
