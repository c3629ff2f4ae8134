// Package logging provides structured logging for breakeven.
//
// This package wraps zap logger with convenience functions for the events the
// editor produces: devices being added or ignored as duplicates, and lists
// being saved or loaded.
//
// # Log Levels
//
//   - Debug: Key presses, ignored duplicates
//   - Info: Devices added, lists saved and loaded
//   - Warn: Failed saves and loads (the UI keeps running)
//   - Error: Startup failures
//
// # Configuration
//
// Logging is silent unless BREAKEVEN_LOG_LEVEL is set. Output goes to the
// file named by BREAKEVEN_LOG_FILE (default breakeven.log), never to stdout,
// because the terminal UI owns the screen:
//
//	BREAKEVEN_LOG_LEVEL=debug breakeven
//	tail -f breakeven.log
//
// Initialize once at startup and flush on exit:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.Info("List saved",
//	    zap.String("list", "office"),
//	    zap.Int("device_count", 3),
//	)
package logging
