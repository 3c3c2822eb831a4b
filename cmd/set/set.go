// Package set implements the command applying a window size to a terminal.
package set

import (
	"context"
	"fmt"

	"dominicbreuker/termsz/cmd/shared"
	"dominicbreuker/termsz/pkg/config"
	"dominicbreuker/termsz/pkg/log"
	"dominicbreuker/termsz/pkg/tty"
	"dominicbreuker/termsz/pkg/winsize"

	"github.com/urfave/cli/v3"
)

const categorySet = "geometry"

const rowsFlag = "rows"
const colsFlag = "cols"
const xPixelFlag = "xpixel"
const yPixelFlag = "ypixel"

// GetCommand returns the CLI command setting a terminal's window size.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "set",
		Usage: "Set the window size of a terminal",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log.Verbose = cmd.Bool(shared.VerboseFlag)

			cfg := &config.Geometry{
				Rows:   int(cmd.Int(rowsFlag)),
				Cols:   int(cmd.Int(colsFlag)),
				XPixel: int(cmd.Int(xPixelFlag)),
				YPixel: int(cmd.Int(yPixelFlag)),
			}

			if errors := config.Validate(cfg); len(errors) > 0 {
				log.ErrorMsg("Argument validation errors:\n")
				for _, err := range errors {
					log.ErrorMsg(" - %s\n", err)
				}
				return fmt.Errorf("exiting")
			}

			dev, err := tty.Open(cmd.String(shared.TTYFlag))
			if err != nil {
				return fmt.Errorf("tty.Open(): %s", err)
			}
			defer dev.Close()

			size := winsize.Size{
				Rows: uint16(cfg.Rows),
				Cols: uint16(cfg.Cols),
				X:    uint16(cfg.XPixel),
				Y:    uint16(cfg.YPixel),
			}

			if err := winsize.Set(dev.Fd(), size); err != nil {
				return fmt.Errorf("setting window size of %s: %s", dev.Name(), err)
			}

			log.DebugMsg("window size of %s now %s\n", dev.Name(), size)

			return nil
		},
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:     rowsFlag,
				Aliases:  []string{"r"},
				Usage:    "Number of rows",
				Category: categorySet,
				Required: true,
			},
			&cli.IntFlag{
				Name:     colsFlag,
				Aliases:  []string{"c"},
				Usage:    "Number of columns",
				Category: categorySet,
				Required: true,
			},
			&cli.IntFlag{
				Name:     xPixelFlag,
				Aliases:  []string{},
				Usage:    "Width in pixels",
				Category: categorySet,
				Value:    0,
				Required: false,
			},
			&cli.IntFlag{
				Name:     yPixelFlag,
				Aliases:  []string{},
				Usage:    "Height in pixels",
				Category: categorySet,
				Value:    0,
				Required: false,
			},
		}, shared.GetCommonFlags()...),
	}
}
