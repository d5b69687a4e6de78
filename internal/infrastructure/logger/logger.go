package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rompefaja/internal/config"
)

// New builds the engine's production logger. Every record carries the
// service name so engine lines are separable when logs are aggregated with
// the shop's other services.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.InitialFields = map[string]interface{}{
		"service": "rompefaja-engine",
	}

	return zapCfg.Build()
}
