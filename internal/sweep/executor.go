// Package sweep executes the deletion pass and orchestrates the full
// scan -> parse -> group -> select -> delete pipeline.
package sweep

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Outcome classifies what happened to one deletion candidate.
type Outcome string

const (
	OutcomeDeleted     Outcome = "deleted"
	OutcomeWouldDelete Outcome = "would-delete"
	OutcomeNotFound    Outcome = "not-found"
	OutcomeFailed      Outcome = "failed"
)

// Result is the per-file execution record.
type Result struct {
	Filename string
	Outcome  Outcome
	Err      error
}

// Executor removes deletion candidates from a directory. In dry-run mode it
// reports intended deletions and performs no filesystem mutation. Deletion
// is permanent; there are no trash or backup semantics.
type Executor struct {
	log    *zap.Logger
	dryRun bool
}

func NewExecutor(log *zap.Logger, dryRun bool) *Executor {
	return &Executor{log: log, dryRun: dryRun}
}

// Remove processes the candidates in order and returns one Result per
// filename. No single file's failure aborts the remaining files: a missing
// file (removed out-of-band since the scan) yields a not-found result and a
// filesystem error yields a failed result, both logged, both non-fatal.
func (e *Executor) Remove(dir string, filenames []string) []Result {
	if len(filenames) == 0 {
		e.log.Info("no duplicate files found to delete")
		return nil
	}

	if e.dryRun {
		e.log.Info("dry run: would delete files", zap.Int("count", len(filenames)))
	} else {
		e.log.Info("deleting files", zap.Int("count", len(filenames)))
	}

	results := make([]Result, 0, len(filenames))
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			e.log.Warn("file not found", zap.String("file", filename))
			results = append(results, Result{Filename: filename, Outcome: OutcomeNotFound})
			continue
		}

		if e.dryRun {
			e.log.Info("would delete", zap.String("file", filename))
			results = append(results, Result{Filename: filename, Outcome: OutcomeWouldDelete})
			continue
		}

		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				// Vanished between stat and remove.
				e.log.Warn("file not found", zap.String("file", filename))
				results = append(results, Result{Filename: filename, Outcome: OutcomeNotFound})
				continue
			}
			e.log.Error("failed to delete", zap.String("file", filename), zap.Error(err))
			results = append(results, Result{Filename: filename, Outcome: OutcomeFailed, Err: err})
			continue
		}

		e.log.Info("deleted", zap.String("file", filename))
		results = append(results, Result{Filename: filename, Outcome: OutcomeDeleted})
	}
	return results
}
