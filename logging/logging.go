// Package logging builds the zap loggers used by the coins CLI and handed to the API client.
package logging

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains the configurable items for this package.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Encoding is either "console" or "json".
	Encoding string
}

// NewDefaultConfig creates the configuration used when nothing else is specified.
func NewDefaultConfig() Config {
	return Config{
		Level:    "info",
		Encoding: "console",
	}
}

// ParseLevel maps a level name onto a zap level. Unknown names are an error.
func ParseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level

	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return lvl, errors.Wrapf(err, "invalid log level %q", s)
	}

	return lvl, nil
}

// New builds a logger writing to stderr. Console output is meant for humans; json for machines.
func New(cfg Config) (*zap.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig

	switch cfg.Encoding {
	case "", "console":
		cfg.Encoding = "console"
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, errors.Errorf("invalid log encoding %q", cfg.Encoding)
	}

	zcfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Development:       false,
		DisableStacktrace: true,
		Encoding:          cfg.Encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	log, err := zcfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	return log, nil
}
