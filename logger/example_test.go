package logger_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mordilloSan/go-logger/logger"
)

// This example shows console output and severity thresholds.
func ExampleLogger() {
	log, err := logger.New(logger.Config{Color: logger.ColorNever})
	if err != nil {
		panic(err)
	}

	log.Print("plain text")
	log.Info("hello")
	log.SetSeverity(2)
	log.Warn("hidden: severity 2 is not below 2")
	log.Debug("debug ignores thresholds")
	// Output:
	// plain text
	// | [INFO]  hello
	// | [DEBUG] debug ignores thresholds
}

// This example records a session in a log file.
func ExampleLogger_Start() {
	dir, err := os.MkdirTemp("", "logger-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	log, err := logger.New(logger.Config{
		Name:      "Example",
		Dir:       dir,
		BackupDir: filepath.Join(dir, "backups"),
		Color:     logger.ColorNever,
		Output:    new(nopWriter),
		Now:       func() time.Time { return time.Date(2026, time.October, 14, 15, 4, 5, 0, time.Local) },
	})
	if err != nil {
		panic(err)
	}

	if err := log.Start(); err != nil {
		panic(err)
	}
	log.Info("hello")
	log.WriteDebug("file only")
	if err := log.End(); err != nil {
		panic(err)
	}

	content, err := os.ReadFile(log.Path())
	if err != nil {
		panic(err)
	}
	fmt.Print(string(content))
	// Output:
	// === Started 2026-10-14 15;04;05 PM ===
	// | [INFO]  [15;04;05 PM] hello
	// | [DEBUG] [15;04;05 PM] file only
	// === Shutdown 2026-10-14 15;04;05 PM ===
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) { return len(p), nil }
