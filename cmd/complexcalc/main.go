package main

import (
	"github.com/mamaar/complexcalc/internal/cli"
	"github.com/mamaar/complexcalc/internal/cli/commands"
)

func main() {
	app := cli.NewApp()
	app.Initialize()

	runner := cli.NewRunner()
	commands.RegisterAll(runner)

	app.Run(runner)
}
