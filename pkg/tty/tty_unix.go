//go:build !windows
// +build !windows

package tty

import (
	"fmt"
	"os"
	"syscall"
)

// Open opens the terminal device at path. An empty path selects the
// process's controlling terminal. O_NOCTTY keeps the open from acquiring
// the device as controlling terminal for this process.
func Open(path string) (*Device, error) {
	if path == "" {
		path = "/dev/tty"
	}

	f, err := os.OpenFile(path, os.O_RDWR|syscall.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("os.OpenFile(%s): %s", path, err)
	}

	return &Device{file: f, owned: true}, nil
}
