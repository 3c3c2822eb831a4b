// Package mirror implements the command copying the window size of one
// terminal to another, either once or continuously.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dominicbreuker/termsz/cmd/shared"
	"dominicbreuker/termsz/pkg/config"
	"dominicbreuker/termsz/pkg/log"
	"dominicbreuker/termsz/pkg/tty"
	"dominicbreuker/termsz/pkg/winsize"

	winsync "dominicbreuker/termsz/pkg/mirror"

	"github.com/urfave/cli/v3"
)

const categoryMirror = "mirror"

const fromFlag = "from"
const toFlag = "to"
const followFlag = "follow"
const intervalFlag = "interval"

// GetCommand returns the CLI command mirroring one terminal's window size
// onto another.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "mirror",
		Usage: "Copy the window size of one terminal to another",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log.Verbose = cmd.Bool(shared.VerboseFlag)

			cfg := &config.Mirror{
				From:     cmd.String(fromFlag),
				To:       cmd.String(toFlag),
				Follow:   cmd.Bool(followFlag),
				Interval: cmd.Duration(intervalFlag),
			}

			if errors := config.Validate(cfg); len(errors) > 0 {
				log.ErrorMsg("Argument validation errors:\n")
				for _, err := range errors {
					log.ErrorMsg(" - %s\n", err)
				}
				return fmt.Errorf("exiting")
			}

			src, err := tty.Open(cfg.From)
			if err != nil {
				return fmt.Errorf("tty.Open(%s): %s", cfg.From, err)
			}
			defer src.Close()

			dst, err := tty.Open(cfg.To)
			if err != nil {
				return fmt.Errorf("tty.Open(%s): %s", cfg.To, err)
			}
			defer dst.Close()

			if !cfg.Follow {
				if err := winsize.Copy(src.Fd(), dst.Fd()); err != nil {
					return fmt.Errorf("copying window size to %s: %s", dst.Name(), err)
				}
				return nil
			}

			log.InfoMsg("Mirroring window size of %s onto %s\n", src.Name(), dst.Name())

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			shared.SetupSignalHandling(cancel)

			if err := winsync.Run(ctx, src.Fd(), dst.Fd(), cfg.Interval); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return fmt.Errorf("mirroring: %s", err)
			}

			return nil
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     fromFlag,
				Aliases:  []string{"f"},
				Usage:    "Source terminal device, leave empty for the controlling terminal",
				Category: categoryMirror,
				Value:    "",
				Required: false,
			},
			&cli.StringFlag{
				Name:     toFlag,
				Aliases:  []string{},
				Usage:    "Destination terminal device",
				Category: categoryMirror,
				Required: true,
			},
			&cli.BoolFlag{
				Name:     followFlag,
				Aliases:  []string{"F"},
				Usage:    "Keep mirroring until interrupted",
				Category: categoryMirror,
				Value:    false,
				Required: false,
			},
			&cli.DurationFlag{
				Name:     intervalFlag,
				Aliases:  []string{"i"},
				Usage:    "Poll interval when following",
				Category: categoryMirror,
				Value:    1 * time.Second,
				Required: false,
			},
		}, shared.GetCommonFlags()...),
	}
}
