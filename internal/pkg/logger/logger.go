package logger

import (
	"github.com/rural-itinerary/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "rural-itinerary"

// New - zap-логгер процесса; component попадает в каждую запись (api, worker)
func New(cfg *config.LogConfig, component string) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	console := cfg.Format == "console" || (cfg.Format == "" && level == zapcore.DebugLevel)

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      level == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if console {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	log, err := zc.Build()
	if err != nil {
		return nil, err
	}
	if console {
		return log.Named(component), nil
	}
	return log.With(zap.String("service", serviceName), zap.String("component", component)), nil
}
