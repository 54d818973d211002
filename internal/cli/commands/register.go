package commands

import "github.com/mamaar/complexcalc/internal/cli"

// RegisterAll wires every complexcalc command into runner.
func RegisterAll(runner *cli.Runner) {
	runner.RegisterCommand("add", AddCommand)
	runner.RegisterCommand("mul", MulCommand)
	runner.RegisterCommand("div", DivCommand)
	runner.RegisterCommand("calc", CalcCommand)
	runner.RegisterCommand("batch", BatchCommand)
	runner.RegisterCommand("watch", WatchCommand)
	runner.RegisterCommand("operations", OperationsCommand)
	runner.RegisterCommand("demo", DemoCommand)
	runner.RegisterCommand("help", HelpCommand)
	runner.RegisterCommand("version", VersionCommand)
}
