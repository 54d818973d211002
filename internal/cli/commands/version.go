package commands

import (
	"fmt"

	"github.com/mamaar/complexcalc/internal/cli"
)

// VersionCommand handles the version command
func VersionCommand(args []string) {
	if len(args) > 0 {
		fmt.Fprintln(cli.Stdout, `Version Command - Show application version

Usage: complexcalc version

Shows the current version of complexcalc.`)
		return
	}

	cli.ShowVersion()
}
