//go:build !windows
// +build !windows

package mirror

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"dominicbreuker/termsz/pkg/winsize"

	"github.com/creack/pty"
)

const pollInterval = 5 * time.Millisecond
const waitTimeout = 3 * time.Second

func openPtyPair(t *testing.T) (*os.File, *os.File) {
	t.Helper()

	ptm, pts, err := pty.Open()
	if err != nil {
		t.Fatalf("pty.Open(): %v", err)
	}
	t.Cleanup(func() {
		ptm.Close()
		pts.Close()
	})

	return ptm, pts
}

func waitForSize(t *testing.T, fd int, want winsize.Size) {
	t.Helper()

	deadline := time.Now().Add(waitTimeout)
	for time.Now().Before(deadline) {
		got, err := winsize.Get(fd)
		if err != nil {
			t.Fatalf("winsize.Get(): %v", err)
		}
		if got == want {
			return
		}

		time.Sleep(pollInterval)
	}

	t.Fatalf("geometry never became %+v", want)
}

func TestWatchReportsChanges(t *testing.T) {
	t.Parallel()

	ptm, _ := openPtyPair(t)
	fd := int(ptm.Fd())

	first := winsize.Size{Rows: 24, Cols: 80}
	if err := winsize.Set(fd, first); err != nil {
		t.Fatalf("winsize.Set(): %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sizes := make(chan winsize.Size, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fd, pollInterval, func(size winsize.Size) error {
			sizes <- size
			return nil
		})
	}()

	select {
	case got := <-sizes:
		if got != first {
			t.Errorf("initial size = %+v, want %+v", got, first)
		}
	case <-time.After(waitTimeout):
		t.Fatal("no initial size reported")
	}

	second := winsize.Size{Rows: 50, Cols: 132}
	if err := winsize.Set(fd, second); err != nil {
		t.Fatalf("winsize.Set(): %v", err)
	}

	select {
	case got := <-sizes:
		if got != second {
			t.Errorf("changed size = %+v, want %+v", got, second)
		}
	case <-time.After(waitTimeout):
		t.Fatal("size change never reported")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Watch() returned %v, want context.Canceled", err)
		}
	case <-time.After(waitTimeout):
		t.Fatal("Watch() did not return after cancellation")
	}
}

func TestWatchStopsOnCallbackError(t *testing.T) {
	t.Parallel()

	ptm, _ := openPtyPair(t)
	fd := int(ptm.Fd())

	if err := winsize.Set(fd, winsize.Size{Rows: 24, Cols: 80}); err != nil {
		t.Fatalf("winsize.Set(): %v", err)
	}

	wantErr := fmt.Errorf("stop now")
	err := Watch(context.Background(), fd, pollInterval, func(winsize.Size) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Watch() returned %v, want %v", err, wantErr)
	}
}

func TestRunMirrorsGeometry(t *testing.T) {
	t.Parallel()

	src, _ := openPtyPair(t)
	dst, _ := openPtyPair(t)
	srcFd, dstFd := int(src.Fd()), int(dst.Fd())

	first := winsize.Size{Rows: 31, Cols: 97}
	if err := winsize.Set(srcFd, first); err != nil {
		t.Fatalf("winsize.Set(): %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, srcFd, dstFd, pollInterval)
	}()

	waitForSize(t, dstFd, first)

	second := winsize.Size{Rows: 40, Cols: 120}
	if err := winsize.Set(srcFd, second); err != nil {
		t.Fatalf("winsize.Set(): %v", err)
	}

	waitForSize(t, dstFd, second)

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() returned %v, want context.Canceled", err)
		}
	case <-time.After(waitTimeout):
		t.Fatal("Run() did not return after cancellation")
	}
}

func TestRunBadDestination(t *testing.T) {
	t.Parallel()

	src, _ := openPtyPair(t)

	if err := winsize.Set(int(src.Fd()), winsize.Size{Rows: 24, Cols: 80}); err != nil {
		t.Fatalf("winsize.Set(): %v", err)
	}

	if err := Run(context.Background(), int(src.Fd()), -1, pollInterval); err == nil {
		t.Error("Run() with bad destination succeeded, want error")
	}
}
