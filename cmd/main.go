package main

import (
	"context"
	"os"

	"dominicbreuker/termsz/cmd/get"
	"dominicbreuker/termsz/cmd/mirror"
	"dominicbreuker/termsz/cmd/set"
	"dominicbreuker/termsz/cmd/version"
	"dominicbreuker/termsz/pkg/log"

	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "termsz",
		Usage: "inspect and set terminal window sizes",
		Commands: []*cli.Command{
			get.GetCommand(),
			set.GetCommand(),
			mirror.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}
