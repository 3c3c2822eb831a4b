//go:build windows
// +build windows

package winsize

import (
	"golang.org/x/sys/windows"
)

// Get returns the geometry of the console screen buffer behind fd.
// Pixel fields are always zero on Windows.
func Get(fd int) (Size, error) {
	var csbi windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &csbi); err != nil {
		return Size{}, err
	}

	return Size{
		Rows: uint16(csbi.Size.Y),
		Cols: uint16(csbi.Size.X),
	}, nil
}

// Set fails with ErrUnsupported. Windows consoles are resized through a
// ConPTY handle (ResizePseudoConsole), not through a descriptor, so there
// is nothing to do with a plain fd here.
func Set(fd int, size Size) error {
	return ErrUnsupported
}
