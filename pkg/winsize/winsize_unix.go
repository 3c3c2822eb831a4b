//go:build !windows
// +build !windows

package winsize

import (
	"golang.org/x/sys/unix"
)

// Get returns the window size the kernel records for the terminal
// descriptor fd. It fails with the raw platform error when fd is not open
// or not a terminal device.
func Get(fd int) (Size, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, err
	}

	return Size{
		Rows: ws.Row,
		Cols: ws.Col,
		X:    ws.Xpixel,
		Y:    ws.Ypixel,
	}, nil
}

// Set updates the window size the kernel records for the terminal
// descriptor fd. The kernel then signals the foreground process group of
// that terminal, if any. The descriptor is not validated beforehand:
// failures surface as the raw platform error, with no geometry change.
func Set(fd int, size Size) error {
	return unix.IoctlSetWinsize(fd, unix.TIOCSWINSZ, &unix.Winsize{
		Row:    size.Rows,
		Col:    size.Cols,
		Xpixel: size.X,
		Ypixel: size.Y,
	})
}
