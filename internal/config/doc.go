// Package config resolves breakeven's runtime settings.
//
// Settings come from BREAKEVEN_* environment variables, merged with
// spf13/viper. The one command-line flag, --no-color-devices, wins over its
// environment variable, and the environment wins over the defaults. There
// is no configuration file.
//
// # Settings
//
//   - no_color_devices (--no-color-devices, BREAKEVEN_NO_COLOR_DEVICES):
//     draw every device in neutral gray instead of a random color
//   - clear_on_submit (BREAKEVEN_CLEAR_ON_SUBMIT): empty the device fields
//     after a device is added
//   - log_level (BREAKEVEN_LOG_LEVEL): debug, info, warn or error; empty
//     keeps logging silent
//   - log_file (BREAKEVEN_LOG_FILE): file that log output is appended to
//
// # Usage Example
//
//	cfg, err := config.Load(cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	ed := editor.New(editor.Options{RandomizeColors: cfg.RandomizeColors()})
package config
