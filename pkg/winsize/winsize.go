// Package winsize reads and updates the window-size record the kernel keeps
// for a terminal or pseudo-terminal descriptor. Setting the size makes the
// kernel notify the foreground process group attached to the terminal.
// It supports Unix systems via the terminal ioctl interface and Windows via
// the console screen buffer API (read-only there).
package winsize

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned on platforms that have no per-descriptor
// window-size operation.
var ErrUnsupported = errors.New("winsize: operation not supported on this platform")

// Size represents the dimensions a terminal device reports to programs
// running on it.
type Size struct {
	Rows uint16 // Number of rows (in cells)
	Cols uint16 // Number of columns (in cells)
	X    uint16 // Width in pixels, zero when unused
	Y    uint16 // Height in pixels, zero when unused
}

// String formats the size as "<cols>x<rows>".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}

// Copy reads the geometry of srcFd and applies it to dstFd.
func Copy(srcFd, dstFd int) error {
	size, err := Get(srcFd)
	if err != nil {
		return fmt.Errorf("Get(%d): %s", srcFd, err)
	}

	if err := Set(dstFd, size); err != nil {
		return fmt.Errorf("Set(%d): %s", dstFd, err)
	}

	return nil
}
