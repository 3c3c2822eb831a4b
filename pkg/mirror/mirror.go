// Package mirror keeps one terminal's window size in sync with another's.
// It polls the source geometry on a ticker and re-applies it on change, so
// it works without touching the terminal's signal delivery.
package mirror

import (
	"context"
	"fmt"
	"time"

	"dominicbreuker/termsz/pkg/log"
	"dominicbreuker/termsz/pkg/winsize"
)

// Watch polls the geometry of fd every interval and calls fn whenever it
// changes, including once for the geometry seen first. It returns the
// context error when ctx is cancelled, or the error of a failed fn call.
// Read failures are logged and retried on the next tick.
func Watch(ctx context.Context, fd int, interval time.Duration, fn func(winsize.Size) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last winsize.Size
	seen := false
	for {
		size, err := winsize.Get(fd)
		if err != nil {
			log.ErrorMsg("can't read terminal size: %s\n", err)
		} else if !seen || size != last {
			if err := fn(size); err != nil {
				return err
			}

			last = size
			seen = true
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Run mirrors the geometry of srcFd onto dstFd until ctx is cancelled.
func Run(ctx context.Context, srcFd, dstFd int, interval time.Duration) error {
	return Watch(ctx, srcFd, interval, func(size winsize.Size) error {
		if err := winsize.Set(dstFd, size); err != nil {
			return fmt.Errorf("winsize.Set(%d): %s", dstFd, err)
		}

		log.DebugMsg("window size now %s\n", size)
		return nil
	})
}
