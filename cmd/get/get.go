// Package get implements the command printing a terminal's window size.
package get

import (
	"context"
	"fmt"

	"dominicbreuker/termsz/cmd/shared"
	"dominicbreuker/termsz/pkg/log"
	"dominicbreuker/termsz/pkg/tty"
	"dominicbreuker/termsz/pkg/winsize"

	"github.com/urfave/cli/v3"
)

const pixelsFlag = "pixels"

// GetCommand returns the CLI command querying a terminal's window size.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Print the window size of a terminal",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log.Verbose = cmd.Bool(shared.VerboseFlag)

			dev, err := tty.Open(cmd.String(shared.TTYFlag))
			if err != nil {
				return fmt.Errorf("tty.Open(): %s", err)
			}
			defer dev.Close()

			size, err := winsize.Get(dev.Fd())
			if err != nil {
				return fmt.Errorf("reading window size of %s: %s", dev.Name(), err)
			}

			if cmd.Bool(pixelsFlag) {
				fmt.Printf("%d %d %d %d\n", size.Rows, size.Cols, size.X, size.Y)
			} else {
				fmt.Printf("%d %d\n", size.Rows, size.Cols)
			}

			return nil
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:     pixelsFlag,
				Aliases:  []string{"p"},
				Usage:    "Also print the pixel dimensions",
				Value:    false,
				Required: false,
			},
		}, shared.GetCommonFlags()...),
	}
}
