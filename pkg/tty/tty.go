// Package tty provides open handles on terminal devices for the commands.
// It only opens and closes devices; the winsize package does the actual
// geometry work on the descriptors.
package tty

import (
	"os"

	"golang.org/x/term"
)

// Device is an open handle on a terminal. Handles backed by a std stream
// are not owned and Close leaves them open.
type Device struct {
	file  *os.File
	owned bool
}

// File returns the underlying file.
func (d *Device) File() *os.File {
	return d.file
}

// Fd returns the descriptor as the plain int the winsize package operates on.
func (d *Device) Fd() int {
	return int(d.file.Fd())
}

// Name returns the path of the device.
func (d *Device) Name() string {
	return d.file.Name()
}

// IsTerminal reports whether the descriptor refers to a terminal.
func (d *Device) IsTerminal() bool {
	return term.IsTerminal(d.Fd())
}

// Close releases the device if this handle owns it.
func (d *Device) Close() error {
	if !d.owned {
		return nil
	}

	return d.file.Close()
}
