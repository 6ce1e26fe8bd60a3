package main

import (
	"os"

	"github.com/grovetools/wineconf/cli"
	"github.com/grovetools/wineconf/cmd"
)

func main() {
	verbose := false
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		}
	}
	handler := cli.NewErrorHandler(verbose)

	app, err := cmd.NewApp()
	if err != nil {
		handler.Handle(err)
		os.Exit(1)
	}

	if err := cmd.NewRootCmd(app).Execute(); err != nil {
		handler.Handle(err)
		os.Exit(1)
	}
}
