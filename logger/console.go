package logger

import (
	"errors"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ErrInvalidColor is returned when a color index is outside 0-15.
var ErrInvalidColor = errors.New("colors can only be 0-15")

// Console is the terminal a Logger paints on. Implementations track whatever
// state they need to repaint the screen with the last active colors.
type Console interface {
	io.Writer
	// SetTextColor sets the foreground and background of subsequent text.
	SetTextColor(fg, bg uint8) error
	// SetConsoleColor sets the background of the whole console and clears it.
	SetConsoleColor(bg uint8) error
	// ResetColors restores the default terminal attributes.
	ResetColors() error
	// Clear clears the visible console using the last console colors.
	Clear() error
	// RestoreText undoes the last SetTextColor after a message is written.
	RestoreText() error
}

// Palettes are indexed the way the Windows console numbers its colors:
// black, blue, green, cyan, red, magenta, yellow, white, then bright variants.
var (
	fgPalette = [16]color.Attribute{
		color.FgBlack, color.FgBlue, color.FgGreen, color.FgCyan,
		color.FgRed, color.FgMagenta, color.FgYellow, color.FgWhite,
		color.FgHiBlack, color.FgHiBlue, color.FgHiGreen, color.FgHiCyan,
		color.FgHiRed, color.FgHiMagenta, color.FgHiYellow, color.FgHiWhite,
	}
	bgPalette = [16]color.Attribute{
		color.BgBlack, color.BgBlue, color.BgGreen, color.BgCyan,
		color.BgRed, color.BgMagenta, color.BgYellow, color.BgWhite,
		color.BgHiBlack, color.BgHiBlue, color.BgHiGreen, color.BgHiCyan,
		color.BgHiRed, color.BgHiMagenta, color.BgHiYellow, color.BgHiWhite,
	}
)

// SGR codes for the terminal's own default colors.
const (
	defaultFg color.Attribute = 39
	defaultBg color.Attribute = 49
)

func checkColors(indexes ...uint8) error {
	for _, c := range indexes {
		if c > 15 {
			return ErrInvalidColor
		}
	}
	return nil
}

// newConsole picks the console implementation for w. Colored output goes to
// the platform console.
func newConsole(mode ColorMode, w io.Writer) Console {
	if !useColor(mode, w) {
		return &plainConsole{w: w}
	}
	return newPlatformConsole(w)
}

func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	// fatih/color already decided for stdout at init.
	if w == io.Writer(os.Stdout) {
		return !color.NoColor
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// errWriter keeps the first write error, since color.Color discards it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// ansiConsole writes SGR escape sequences.
type ansiConsole struct {
	w      io.Writer
	lastFg color.Attribute
	lastBg color.Attribute
}

func newANSIConsole(w io.Writer) *ansiConsole {
	return &ansiConsole{w: w, lastFg: defaultFg, lastBg: defaultBg}
}

// sgr writes ESC[<attrs>m regardless of color.NoColor; the caller already
// chose to color this console.
func (c *ansiConsole) sgr(attrs ...color.Attribute) error {
	ew := &errWriter{w: c.w}
	cc := color.New(attrs...)
	cc.EnableColor()
	cc.SetWriter(ew)
	return ew.err
}

func (c *ansiConsole) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

func (c *ansiConsole) SetTextColor(fg, bg uint8) error {
	if err := checkColors(fg, bg); err != nil {
		return err
	}
	c.lastFg = fgPalette[fg]
	return c.sgr(color.Reset, c.lastFg, bgPalette[bg])
}

func (c *ansiConsole) SetConsoleColor(bg uint8) error {
	if err := checkColors(bg); err != nil {
		return err
	}
	c.lastBg = bgPalette[bg]
	if err := c.sgr(color.Reset, c.lastFg, c.lastBg); err != nil {
		return err
	}
	return c.Clear()
}

func (c *ansiConsole) ResetColors() error {
	c.lastFg, c.lastBg = defaultFg, defaultBg
	if err := c.sgr(color.Reset); err != nil {
		return err
	}
	_, err := io.WriteString(c.w, "\n")
	return err
}

func (c *ansiConsole) Clear() error {
	if c.lastBg != defaultBg {
		if err := c.sgr(color.Reset, c.lastFg, c.lastBg); err != nil {
			return err
		}
	}
	// Erase display and home the cursor; these are not SGR sequences.
	_, err := io.WriteString(c.w, "\033[2J\033[1;1H\n")
	return err
}

func (c *ansiConsole) RestoreText() error {
	return c.sgr(color.Reset)
}

// plainConsole is used when color is disabled. Color indexes are still
// validated so callers see the same errors on every console.
type plainConsole struct {
	w io.Writer
}

func (c *plainConsole) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

func (c *plainConsole) SetTextColor(fg, bg uint8) error { return checkColors(fg, bg) }

func (c *plainConsole) SetConsoleColor(bg uint8) error { return checkColors(bg) }

func (c *plainConsole) ResetColors() error { return nil }

func (c *plainConsole) Clear() error { return nil }

func (c *plainConsole) RestoreText() error { return nil }
