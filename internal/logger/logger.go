package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
)

const (
	logEnvKey     = "LOG_ENV"
	logFileKey    = "LOG_FILE"
	defaultLogEnv = "dev"
)

var logger *zap.Logger

func init() {
	env := os.Getenv(logEnvKey)
	if env == "" {
		env = defaultLogEnv
	}

	var err error
	logger, err = build(env, os.Getenv(logFileKey))
	if err != nil || logger == nil {
		log.Fatal("logger init", err)
	}
}

func build(env, file string) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case "prod":
		cfg = zap.NewProductionConfig()
	case "test":
		return zap.NewNop(), nil
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	if file != "" {
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}
	return cfg.Build()
}

// ToFile redirects all further output to path. The terminal view calls it
// before taking over the screen.
func ToFile(path string) error {
	env := os.Getenv(logEnvKey)
	if env == "" {
		env = defaultLogEnv
	}
	l, err := build(env, path)
	if err != nil {
		return err
	}
	_ = logger.Sync()
	logger = l
	return nil
}

// Discard silences the logger entirely.
func Discard() {
	_ = logger.Sync()
	logger = zap.NewNop()
}

func Sync() {
	_ = logger.Sync()
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}
