package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/vds/configuration"
)

// Logger is the sugared zap logger used throughout the module.
type Logger = zap.SugaredLogger

// Level is the logging level of a Logger.
type Level = zapcore.Level

// ErrInvalidLevel is returned if a configured level can not be parsed.
var ErrInvalidLevel = ierrors.New("invalid log level")

// ParseLevel parses a level name like "debug" or "WARN".
func ParseLevel(text string) (Level, error) {
	var level Level
	if err := level.UnmarshalText([]byte(text)); err != nil {
		return level, ierrors.Wrapf(ErrInvalidLevel, "%q", text)
	}

	return level, nil
}

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var opts []zap.Option
	if !cfg.DisableStacktrace {
		stacktraceLevel, err := ParseLevel(cfg.StacktraceLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, zap.AddStacktrace(stacktraceLevel))
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: true, // stacktraces are added through the option above
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	root, err := zapCfg.Build(opts...)
	if err != nil {
		return nil, ierrors.Wrap(err, "unable to build logger")
	}

	return root.Sugar(), nil
}

// NewRootLoggerFromConfiguration creates a new root logger from the values stored in the configuration.
func NewRootLoggerFromConfiguration(config *configuration.Configuration) (*Logger, error) {
	cfg := DefaultCfg

	// get config values one by one, absent keys keep their defaults
	if val := config.String(ConfigurationKeyLevel); val != "" {
		cfg.Level = val
	}
	if config.Exists(ConfigurationKeyDisableCaller) {
		cfg.DisableCaller = config.Bool(ConfigurationKeyDisableCaller)
	}
	if config.Exists(ConfigurationKeyDisableStacktrace) {
		cfg.DisableStacktrace = config.Bool(ConfigurationKeyDisableStacktrace)
	}
	if val := config.String(ConfigurationKeyStacktraceLevel); val != "" {
		cfg.StacktraceLevel = val
	}
	if val := config.String(ConfigurationKeyEncoding); val != "" {
		cfg.Encoding = val
	}
	if val := config.Strings(ConfigurationKeyOutputPaths); len(val) > 0 {
		cfg.OutputPaths = val
	}

	return NewRootLogger(cfg)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return zap.NewNop().Sugar()
}
