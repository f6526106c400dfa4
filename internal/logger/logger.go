package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const ProdStage = "production"

var (
	// Log is the global logger instance
	Log *zap.Logger = zap.NewNop()
)

// Config holds configuration for the logger
type Config struct {
	Level       string
	Stage       string
	EnableJSON  bool
	EnableColor bool
}

// InitLogger initializes the global logger for the given stage and level.
// Production gets JSON output; every other stage gets a colored console.
func InitLogger(stage, level string) {
	InitLoggerWithConfig(Config{
		Level:       level,
		Stage:       stage,
		EnableJSON:  stage == ProdStage,
		EnableColor: stage != ProdStage,
	})
}

// InitLoggerWithConfig initializes the global logger with custom configuration
func InitLoggerWithConfig(config Config) {
	Log = build(config)
}

func build(config Config) *zap.Logger {
	var zapConfig zap.Config

	level := parseLevel(config.Level)

	if config.Stage == ProdStage || config.EnableJSON {
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(level)
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapConfig.EncoderConfig.MessageKey = "message"
		zapConfig.InitialFields = map[string]interface{}{
			"service": "financial-dashboard",
			"stage":   config.Stage,
		}
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(level)

		if config.EnableColor {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}

		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}

	zapConfig.DisableStacktrace = config.Stage == ProdStage && level > zapcore.DebugLevel

	logger, err := zapConfig.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	}
	return zapcore.InfoLevel
}

// Named returns a child of the global logger tagged with a component name.
func Named(component string) *zap.Logger {
	return Log.With(zap.String("component", component))
}

// Sync flushes any buffered log entries
func Sync() error {
	return Log.Sync()
}
