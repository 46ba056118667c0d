package logger

import (
	"os"
	"strings"

	"github.com/aero-sizing/wingweight/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLogger *zap.Logger
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// InitLogger builds the process logger once: JSON on stdout at the level given by LOG_LEVEL.
func InitLogger() (*zap.SugaredLogger, error) {
	if zapLogger != nil {
		Log = zapLogger.Sugar()
		return Log, nil
	}
	zapLogger = NewLogger(GetZapLevelFromEnv(), zapcore.AddSync(os.Stdout))
	Log = zapLogger.Sugar()
	return Log, nil
}

// NewLogger creates a JSON logger writing to ws.
func NewLogger(level zapcore.Level, ws zapcore.WriteSyncer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.LevelKey = "level"
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), ws, level)
	return zap.New(core)
}

func GetZapLevelFromEnv() zapcore.Level {
	return ParseLevel(os.Getenv(config.LogLevelEnvName))
}

// ParseLevel maps debug, info, warn and error to zap levels; anything else is info.
func ParseLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SyncLogger ensures the logger is properly synced
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
