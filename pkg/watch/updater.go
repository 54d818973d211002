package watch

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mamaar/complexcalc/pkg/batch"
	"github.com/mamaar/complexcalc/pkg/logging"
	"github.com/mamaar/complexcalc/pkg/types"
)

// ReportFunc receives the outcome of re-evaluating a batch file. report is
// nil when the file could not be loaded or validated.
type ReportFunc func(path string, report *types.BatchReport, err error)

// BatchUpdater re-evaluates batch files named by change events.
type BatchUpdater struct {
	evaluator *batch.Evaluator
	only      map[string]bool
	onReport  ReportFunc
	logger    *slog.Logger
}

// NewUpdater creates a BatchUpdater. When files is non-empty only those
// paths are re-evaluated; otherwise every changed batch file is.
func NewUpdater(evaluator *batch.Evaluator, files []string, onReport ReportFunc, logger *slog.Logger) *BatchUpdater {
	only := make(map[string]bool, len(files))
	for _, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			f = abs
		}
		only[filepath.Clean(f)] = true
	}
	return &BatchUpdater{
		evaluator: evaluator,
		only:      only,
		onReport:  onReport,
		logger:    logging.OrDiscard(logger),
	}
}

// HandleChanges processes a batch of change events and returns the number
// of files that were re-evaluated.
func (u *BatchUpdater) HandleChanges(events []ChangeEvent) int {
	start := time.Now()
	evaluated := 0

	for _, ev := range events {
		if !u.wants(ev.Path) {
			continue
		}
		if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 && ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
			u.logger.Info("batch file removed", "path", ev.Path)
			continue
		}
		report, err := u.evaluator.EvaluateFile(ev.Path)
		if err != nil {
			u.logger.Warn("batch evaluation failed", "path", ev.Path, "err", err)
		}
		if u.onReport != nil {
			u.onReport(ev.Path, report, err)
		}
		evaluated++
	}

	u.logger.Debug("change batch complete",
		"files", len(events),
		"evaluated", evaluated,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return evaluated
}

func (u *BatchUpdater) wants(path string) bool {
	if len(u.only) == 0 {
		return true
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return u.only[filepath.Clean(path)]
}
