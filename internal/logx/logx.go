// internal/logx/logx.go
package logx

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var lg *zap.SugaredLogger

// Init builds the process logger at the given level ("debug", "info", "warn",
// "error"). Unknown levels fall back to info.
func Init(level string) {
	lvl := zapcore.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, _ := cfg.Build()
	lg = z.Sugar()
}

// L returns the process logger, initializing it at info level if needed.
func L() *zap.SugaredLogger {
	if lg == nil {
		Init("info")
	}
	return lg
}

func Sync() { _ = L().Sync() }
