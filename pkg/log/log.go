package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	JSONFormat = "json"
	TextFormat = "text"

	LevelEnv  = "INLINETRY_LOG_LEVEL"
	FormatEnv = "INLINETRY_LOG_FORMAT"
)

// NewWithCurrentConfig creates a [logrus.Logger] from the environment.
func NewWithCurrentConfig() *logrus.Logger {
	logger, err := CreateLogger(os.Stderr, os.Getenv(LevelEnv), os.Getenv(FormatEnv))
	if err != nil {
		logger, _ = CreateLogger(os.Stderr, os.Getenv(LevelEnv), TextFormat)
	}
	return logger
}

// CreateLogger creates a [logrus.Logger] writing to w by strings.
func CreateLogger(w io.Writer, logLevel, logFormat string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(GetLevel(logLevel))

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case TextFormat, "":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", logFormat)
	}

	return logger, nil
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "panic":
		return logrus.PanicLevel
	case "fatal":
		return logrus.FatalLevel
	case "error":
		return logrus.ErrorLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	case "trace":
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}
