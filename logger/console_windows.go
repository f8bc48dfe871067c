//go:build windows

package logger

import (
	"io"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procSetConsoleTextAttribute    = kernel32.NewProc("SetConsoleTextAttribute")
	procFillConsoleOutputCharacter = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute = kernel32.NewProc("FillConsoleOutputAttribute")
	procSetConsoleCursorPosition   = kernel32.NewProc("SetConsoleCursorPosition")
)

// newPlatformConsole uses the native console API when w is an attached
// console and falls back to ANSI sequences otherwise (pipes, mintty).
func newPlatformConsole(w io.Writer) Console {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return newANSIConsole(w)
	}
	h := windows.Handle(f.Fd())
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return newANSIConsole(w)
	}
	return &windowsConsole{
		w:        f,
		h:        h,
		defaults: info.Attributes,
		restore:  info.Attributes,
	}
}

// windowsConsole drives console character attributes directly.
type windowsConsole struct {
	w io.Writer
	h windows.Handle

	// defaults are the attributes found when the console was opened; restore
	// are the attributes in effect before the last SetTextColor.
	defaults uint16
	restore  uint16
}

func coordArg(c windows.Coord) uintptr {
	return uintptr(uint32(uint16(c.X)) | uint32(uint16(c.Y))<<16)
}

func (c *windowsConsole) setAttributes(attrs uint16) error {
	if r, _, err := procSetConsoleTextAttribute.Call(uintptr(c.h), uintptr(attrs)); r == 0 {
		return err
	}
	return nil
}

func (c *windowsConsole) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

func (c *windowsConsole) SetTextColor(fg, bg uint8) error {
	if err := checkColors(fg, bg); err != nil {
		return err
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.h, &info); err == nil {
		c.restore = info.Attributes
	}
	return c.setAttributes(uint16(fg) + uint16(bg)*16)
}

func (c *windowsConsole) SetConsoleColor(bg uint8) error {
	if err := checkColors(bg); err != nil {
		return err
	}
	if err := c.setAttributes(uint16(bg) << 4); err != nil {
		return err
	}
	return c.Clear()
}

func (c *windowsConsole) ResetColors() error {
	c.restore = c.defaults
	return c.setAttributes(c.defaults)
}

func (c *windowsConsole) Clear() error {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.h, &info); err != nil {
		return err
	}
	cells := uint32(info.Size.X) * uint32(info.Size.Y)
	home := windows.Coord{X: 0, Y: 0}
	var n uint32
	if r, _, err := procFillConsoleOutputCharacter.Call(uintptr(c.h), uintptr(' '), uintptr(cells), coordArg(home), uintptr(unsafe.Pointer(&n))); r == 0 {
		return err
	}
	if r, _, err := procFillConsoleOutputAttribute.Call(uintptr(c.h), uintptr(info.Attributes), uintptr(cells), coordArg(home), uintptr(unsafe.Pointer(&n))); r == 0 {
		return err
	}
	if r, _, err := procSetConsoleCursorPosition.Call(uintptr(c.h), coordArg(home)); r == 0 {
		return err
	}
	return nil
}

func (c *windowsConsole) RestoreText() error {
	return c.setAttributes(c.restore)
}
