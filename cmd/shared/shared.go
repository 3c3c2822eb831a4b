// Package shared provides the flag definitions common to the termsz
// command-line interface.
package shared

import (
	"github.com/urfave/cli/v3"
)

const categoryCommon = "common"

// TTYFlag is the name of the flag selecting the terminal device to operate on.
const TTYFlag = "tty"

// VerboseFlag is the name of the flag to enable verbose logging.
const VerboseFlag = "verbose"

// GetCommonFlags returns the CLI flags shared by all termsz commands.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     TTYFlag,
			Aliases:  []string{"t"},
			Usage:    "Terminal device to operate on (e.g. /dev/pts/3), leave empty for the controlling terminal",
			Category: categoryCommon,
			Value:    "",
			Required: false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose logging",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
	}
}
