package config

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide structured logger. It is a no-op until InitLogger runs,
// so packages can log from init paths and tests without a nil check.
var Logger = zap.NewNop()

// InitLogger builds the process logger. Production uses JSON output at info level;
// every other environment gets the human readable development encoder.
func InitLogger(appEnv string, verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if appEnv == "production" {
		cfg = zap.NewProductionConfig()
	}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	Logger = logger
	return logger
}

// SyncLogger flushes buffered log entries. Errors from syncing stderr are ignored.
func SyncLogger() {
	_ = Logger.Sync()
}
