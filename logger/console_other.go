//go:build !windows

package logger

import "io"

func newPlatformConsole(w io.Writer) Console {
	return newANSIConsole(w)
}
