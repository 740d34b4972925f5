package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Service string
	Env     string
	Level   string
}

// New はzapロガーを組み立てる。devは読みやすい形式、それ以外はJSON。
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if opts.Env == "" || opts.Env == "dev" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level))); err == nil && opts.Level != "" {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return log.With(
		zap.String("service", opts.Service),
		zap.String("env", opts.Env),
	), nil
}
