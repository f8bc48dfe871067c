// Package logger provides a leveled console logger with colored output and
// an optional per-session log file.
//
// # Levels
//
// Six fixed levels are provided: PRINT, INFO, WARN, ERROR, FATAL and DEBUG.
// Each has a Profile with its colors, prefix, suffix and a severity number.
// A message is shown when its severity is below the configured threshold;
// DEBUG is not enumerable and ignores thresholds entirely. FATAL is a
// presentation level only and never exits the process.
//
// # Log File
//
// Start opens <Dir>/<Name>.log. A file left by a previous session is moved
// to <BackupDir>/<Name>-<YYYY-MM-DD HH;MM;SS AM/PM>.log first. Every session
// file is bracketed by banners:
//
//	=== Started 2026-10-14 09;30;00 AM ===
//	| [INFO]  [09;30;01 AM] hello
//	=== Shutdown 2026-10-14 09;31;00 AM ===
//
// A failed write closes the file; console logging continues. Use Recording
// to find out whether messages still reach the file.
//
// # Usage
//
//	log, err := logger.New(logger.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	log.Start()
//	defer log.End()
//
//	log.Info("ready")
//	log.Warnf("disk at %d%%", 91)
//	log.WriteDebug("file only")
//
// # Configuration
//
// LoadConfig reads an optional YAML file and then LOGGER_* environment
// variables:
//
//	LOGGER_NAME=Server LOGGER_SEVERITY=3 LOGGER_COLOR=never ./myapp
package logger
