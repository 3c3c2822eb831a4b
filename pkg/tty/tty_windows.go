//go:build windows
// +build windows

package tty

import (
	"fmt"
	"os"
)

// Open attaches to the console behind stdout. Terminal device paths are a
// Unix concept, so any non-empty path is rejected here.
func Open(path string) (*Device, error) {
	if path != "" {
		return nil, fmt.Errorf("named terminal devices are not supported on windows")
	}

	return &Device{file: os.Stdout, owned: false}, nil
}
