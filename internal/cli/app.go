package cli

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/mamaar/complexcalc/pkg/logging"
)

// Output streams used by commands; tests replace them.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// App represents the complexcalc application
type App struct {
	flags *Flags
}

// NewApp creates a new application instance
func NewApp() *App {
	return &App{}
}

// Initialize sets up the application with flags and configuration
func (app *App) Initialize() {
	log.SetFlags(0) // Remove timestamp from log output
	ParseFlags(Usage)
	app.flags = GlobalFlags
}

// Run executes the application logic with the provided runner
func (app *App) Run(runner *Runner) {
	if *app.flags.Version {
		ShowVersion()
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		Usage()
		os.Exit(1)
	}

	runner.Execute(args[0], args[1:])
}

// NewLogger creates the operation logger configured by the command line
// flags. Operation records go to stderr so stdout carries only results.
func NewLogger() *slog.Logger {
	if GlobalFlags == nil {
		return logging.New(Stderr, slog.LevelInfo)
	}
	if *GlobalFlags.Quiet {
		return logging.Discard()
	}
	level := slog.LevelInfo
	if *GlobalFlags.Verbose {
		level = slog.LevelDebug
	}
	return logging.New(Stderr, level)
}
