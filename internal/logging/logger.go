package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "BREAKEVEN_LOG_LEVEL"

// LogFileEnvVar names the file log output is appended to. The terminal UI
// owns stdout, so logs never go there.
const LogFileEnvVar = "BREAKEVEN_LOG_FILE"

// DefaultLogFile is used when LogFileEnvVar is unset.
const DefaultLogFile = "breakeven.log"

// Initialize creates a new logger with the specified level writing to path.
// An empty level falls back to BREAKEVEN_LOG_LEVEL and an empty path to
// BREAKEVEN_LOG_FILE, then DefaultLogFile. With no level at all, logging is
// disabled (silent mode).
func Initialize(level, path string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}
	if path == "" {
		path = DefaultLogFile
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}

	// Plain levels: the output is a file, not a color terminal
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		logger = zap.NewNop()
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from BREAKEVEN_LOG_LEVEL and
// BREAKEVEN_LOG_FILE.
func InitializeFromEnv() error {
	return Initialize("", "")
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogDeviceAdded logs a device appended to the list
func LogDeviceAdded(name string, initialCost, watts, rate float64, count int) {
	Info("Device added",
		zap.String("name", name),
		zap.Float64("initial_cost", initialCost),
		zap.Float64("watts", watts),
		zap.Float64("electricity_rate", rate),
		zap.Int("device_count", count),
	)
}

// LogDuplicateIgnored logs a submission matching an existing device
func LogDuplicateIgnored(name string, initialCost, watts, rate float64) {
	Debug("Duplicate device ignored",
		zap.String("name", name),
		zap.Float64("initial_cost", initialCost),
		zap.Float64("watts", watts),
		zap.Float64("electricity_rate", rate),
	)
}

// LogSave logs the result of saving a list
func LogSave(listName, path string, count int, err error) {
	if err != nil {
		Warn("Save failed",
			zap.String("list", listName),
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}
	Info("List saved",
		zap.String("list", listName),
		zap.String("path", path),
		zap.Int("device_count", count),
	)
}

// LogLoad logs the result of loading a list
func LogLoad(listName, path string, count int, err error) {
	if err != nil {
		Warn("Load failed",
			zap.String("list", listName),
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}
	Info("List loaded",
		zap.String("list", listName),
		zap.String("path", path),
		zap.Int("device_count", count),
	)
}

// LogKey logs a key press routed to the editor
func LogKey(key string, field string) {
	Debug("Key pressed",
		zap.String("key", key),
		zap.String("focused", field),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
