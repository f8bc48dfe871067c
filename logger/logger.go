package logger

import (
	"fmt"
	"io"
	"time"
)

// Logger writes leveled messages to a console and, between Start and End,
// to a session log file. A Logger is not safe for concurrent use.
type Logger struct {
	console Console
	sink    *fileSink
	errOut  io.Writer
	now     func() time.Time

	severity     int
	fileSeverity int
}

// New creates a Logger from cfg. File logging stays off until Start.
func New(cfg Config) (*Logger, error) {
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Logger{
		console:      newConsole(cfg.Color, cfg.Output),
		sink:         newFileSink(cfg),
		errOut:       cfg.ErrOutput,
		now:          cfg.Now,
		severity:     *cfg.Severity,
		fileSeverity: *cfg.FileSeverity,
	}, nil
}

func (l *Logger) report(format string, v ...any) {
	fmt.Fprintf(l.errOut, format+"\n", v...)
}

// --- File lifecycle ---

// Start opens the session log file, moving an existing one into the backup
// directory first. Calling Start on a recording Logger does nothing.
// Failures are reported to the error stream and returned; the Logger keeps
// working without file output.
func (l *Logger) Start() error {
	if err := l.sink.start(); err != nil {
		l.report("error starting logger: %v", err)
		return err
	}
	return nil
}

// End writes the shutdown banner and closes the session log file.
func (l *Logger) End() error {
	if err := l.sink.end(); err != nil {
		l.report("error stopping logger: %v", err)
		return err
	}
	return nil
}

// Close is End, so a Logger can be used as an io.Closer.
func (l *Logger) Close() error {
	return l.End()
}

// Recording reports whether messages currently reach the log file. It turns
// false after End or after a failed file write.
func (l *Logger) Recording() bool {
	return l.sink.isOpen()
}

// Path returns the session log file path.
func (l *Logger) Path() string {
	return l.sink.path()
}

// --- Thresholds ---

// SetSeverity sets the console threshold. Enumerable levels with a severity
// at or above n are not shown.
func (l *Logger) SetSeverity(n int) { l.severity = n }

// SetFileSeverity sets the log file threshold.
func (l *Logger) SetFileSeverity(n int) { l.fileSeverity = n }

// Severity returns the console threshold.
func (l *Logger) Severity() int { return l.severity }

// FileSeverity returns the log file threshold.
func (l *Logger) FileSeverity() int { return l.fileSeverity }

// --- Dispatch ---

func passes(p Profile, threshold int) bool {
	return !p.Enumerable || p.Severity < threshold
}

// Emit writes msg at level to the log file and/or the console.
func (l *Logger) Emit(level Level, msg string, toFile, toConsole bool) {
	l.emit(level.Profile(), msg, toFile, toConsole)
}

func (l *Logger) emit(p Profile, msg string, toFile, toConsole bool) {
	if toFile && l.sink.isOpen() && p.Writable && passes(p, l.fileSeverity) {
		line := p.Prefix + "[" + timeString(l.now()) + "] " + msg + p.Suffix
		if err := l.sink.write(line); err != nil {
			l.report("error writing to log: %v", err)
		}
	}

	if toConsole && passes(p, l.severity) {
		if err := l.console.SetTextColor(p.Fg, p.Bg); err != nil {
			l.report("%v", err)
		}
		if _, err := io.WriteString(l.console, p.Prefix+msg+p.Suffix); err != nil {
			l.report("error writing to console: %v", err)
		}
		if err := l.console.RestoreText(); err != nil {
			l.report("%v", err)
		}
	}
}

// Print writes a message without a level prefix to the console and the log file.
func (l *Logger) Print(v ...any) { l.Emit(PrintLevel, fmt.Sprint(v...), true, true) }

// Info writes an informational message to the console and the log file.
func (l *Logger) Info(v ...any) { l.Emit(InfoLevel, fmt.Sprint(v...), true, true) }

// Warn writes a warning to the console and the log file.
func (l *Logger) Warn(v ...any) { l.Emit(WarnLevel, fmt.Sprint(v...), true, true) }

// Error writes an error message to the console and the log file.
func (l *Logger) Error(v ...any) { l.Emit(ErrorLevel, fmt.Sprint(v...), true, true) }

// Fatal writes a fatal message to the console and the log file.
// The process keeps running.
func (l *Logger) Fatal(v ...any) { l.Emit(FatalLevel, fmt.Sprint(v...), true, true) }

// Debug writes a debug message to the console and the log file.
func (l *Logger) Debug(v ...any) { l.Emit(DebugLevel, fmt.Sprint(v...), true, true) }

// Printf is Print with fmt.Sprintf formatting.
func (l *Logger) Printf(format string, v ...any) {
	l.Emit(PrintLevel, fmt.Sprintf(format, v...), true, true)
}

// Infof is Info with fmt.Sprintf formatting.
func (l *Logger) Infof(format string, v ...any) {
	l.Emit(InfoLevel, fmt.Sprintf(format, v...), true, true)
}

// Warnf is Warn with fmt.Sprintf formatting.
func (l *Logger) Warnf(format string, v ...any) {
	l.Emit(WarnLevel, fmt.Sprintf(format, v...), true, true)
}

// Errorf is Error with fmt.Sprintf formatting.
func (l *Logger) Errorf(format string, v ...any) {
	l.Emit(ErrorLevel, fmt.Sprintf(format, v...), true, true)
}

// Fatalf is Fatal with fmt.Sprintf formatting.
func (l *Logger) Fatalf(format string, v ...any) {
	l.Emit(FatalLevel, fmt.Sprintf(format, v...), true, true)
}

// Debugf is Debug with fmt.Sprintf formatting.
func (l *Logger) Debugf(format string, v ...any) {
	l.Emit(DebugLevel, fmt.Sprintf(format, v...), true, true)
}

// Write records a message without a level prefix in the log file only.
func (l *Logger) Write(v ...any) { l.Emit(PrintLevel, fmt.Sprint(v...), true, false) }

// Writef is Write with fmt.Sprintf formatting.
func (l *Logger) Writef(format string, v ...any) {
	l.Emit(PrintLevel, fmt.Sprintf(format, v...), true, false)
}

// WriteError records an error message in the log file only.
func (l *Logger) WriteError(v ...any) { l.Emit(ErrorLevel, fmt.Sprint(v...), true, false) }

// WriteDebug records a debug message in the log file only.
func (l *Logger) WriteDebug(v ...any) { l.Emit(DebugLevel, fmt.Sprint(v...), true, false) }

// --- Console ---

func (l *Logger) consoleErr(err error) error {
	if err != nil {
		l.report("%v", err)
	}
	return err
}

// SetTextColor sets the console text colors (0-15 each) until the next
// message or reset.
func (l *Logger) SetTextColor(fg, bg uint8) error {
	return l.consoleErr(l.console.SetTextColor(fg, bg))
}

// SetConsoleColor paints the whole console background (0-15) and clears it.
func (l *Logger) SetConsoleColor(bg uint8) error {
	return l.consoleErr(l.console.SetConsoleColor(bg))
}

// ResetColors restores the default console colors.
func (l *Logger) ResetColors() error {
	return l.consoleErr(l.console.ResetColors())
}

// Clear clears the console, keeping the last console background.
func (l *Logger) Clear() error {
	return l.consoleErr(l.console.Clear())
}
