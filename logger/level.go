package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Levels define log severity.
type Level int

const (
	// PrintLevel is plain output with no prefix; always shown.
	PrintLevel Level = iota
	// InfoLevel is informational output.
	InfoLevel
	// WarnLevel is warning output.
	WarnLevel
	// ErrorLevel is error output.
	ErrorLevel
	// FatalLevel is fatal output. It does not exit the process.
	FatalLevel
	// DebugLevel is debug output, exempt from severity thresholds.
	DebugLevel
)

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("invalid log level")

// Profile holds the presentation and filtering attributes of a level.
type Profile struct {
	// Fg and Bg are console color indexes in the range 0-15.
	Fg, Bg uint8
	// Enumerable reports whether severity thresholds apply to the level.
	Enumerable bool
	// Writable reports whether the level may reach the log file.
	Writable bool
	// Prefix is written before the message, Suffix after it.
	Prefix, Suffix string
	// Severity is compared against the configured thresholds.
	Severity int
}

var profiles = [...]Profile{
	PrintLevel: {Fg: 7, Bg: 0, Enumerable: true, Writable: true, Prefix: "", Suffix: "\n", Severity: 0},
	InfoLevel:  {Fg: 15, Bg: 0, Enumerable: true, Writable: true, Prefix: "| [INFO]  ", Suffix: "\n", Severity: 1},
	WarnLevel:  {Fg: 14, Bg: 0, Enumerable: true, Writable: true, Prefix: "| [WARN]  ", Suffix: "\n", Severity: 2},
	ErrorLevel: {Fg: 4, Bg: 0, Enumerable: true, Writable: true, Prefix: "| [ERROR] ", Suffix: "\n", Severity: 3},
	FatalLevel: {Fg: 12, Bg: 0, Enumerable: true, Writable: true, Prefix: "| [FATAL] ", Suffix: "\n", Severity: 4},
	DebugLevel: {Fg: 10, Bg: 0, Enumerable: false, Writable: true, Prefix: "| [DEBUG] ", Suffix: "\n", Severity: 5},
}

var levelNames = [...]string{
	PrintLevel: "PRINT",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
	DebugLevel: "DEBUG",
}

// AllLevels returns all supported levels.
func AllLevels() []Level {
	return []Level{PrintLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel, DebugLevel}
}

func (l Level) valid() bool {
	return l >= PrintLevel && l <= DebugLevel
}

// Profile returns a copy of the level's attributes. Unknown levels get the
// PRINT profile.
func (l Level) Profile() Profile {
	if !l.valid() {
		return profiles[PrintLevel]
	}
	return profiles[l]
}

func (l Level) String() string {
	if !l.valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel converts a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PRINT":
		return PrintLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR", "ERR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	}
	return PrintLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
