package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mamaar/complexcalc/internal/cli"
	"github.com/mamaar/complexcalc/pkg/batch"
	"github.com/mamaar/complexcalc/pkg/types"
	"github.com/mamaar/complexcalc/pkg/watch"
)

// WatchCommand evaluates a batch file and re-evaluates it on every change
// until interrupted
func WatchCommand(args []string) {
	if len(args) != 1 {
		exitOnError(fmt.Errorf("watch requires 1 argument: <file>"))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	debounce := 200 * time.Millisecond
	if cli.GlobalFlags != nil {
		debounce = *cli.GlobalFlags.Debounce
	}
	if err := runWatch(ctx, args[0], debounce); err != nil && ctx.Err() == nil {
		exitOnError(err)
	}
}

func runWatch(ctx context.Context, path string, debounce time.Duration) error {
	if !batch.IsBatchFile(path) {
		return &types.CalcError{
			Type:    types.InvalidBatch,
			Message: fmt.Sprintf("cannot watch %s: not a batch file", path),
		}
	}
	logger := cli.NewLogger()
	evaluator := batch.NewEvaluator(logger)

	onReport := func(p string, report *types.BatchReport, err error) {
		if report != nil {
			printReport(p, report)
		}
		if err != nil {
			fmt.Fprintf(cli.Stderr, "Error: %s\n", describeError(err))
		}
	}
	onReport(path, evalOnce(evaluator, path))

	w, err := watch.NewWatcher(path, debounce, logger)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	updater := watch.NewUpdater(evaluator, []string{path}, onReport, logger)
	events := make(chan []watch.ChangeEvent, 4)
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx, events) }()

	for {
		select {
		case batchEvents := <-events:
			updater.HandleChanges(batchEvents)
		case err := <-errc:
			return err
		}
	}
}

func evalOnce(evaluator *batch.Evaluator, path string) (string, *types.BatchReport, error) {
	report, err := evaluator.EvaluateFile(path)
	return path, report, err
}
