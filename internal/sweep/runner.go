package sweep

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"appsweep/internal/config"
	"appsweep/internal/dedupe"
	"appsweep/internal/scan"
)

// Report summarizes one sweep. It is derived data, recomputed each run and
// never persisted; the log file is the only surviving side effect.
type Report struct {
	RunID      string
	Directory  string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time

	FilesFound int
	Groups     int
	Duplicates int

	Decisions []dedupe.Decision
	Results   []Result
}

// Count returns how many results carry the given outcome.
func (r *Report) Count(outcome Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// Runner wires the pipeline stages together. The stages run strictly in
// sequence in a single goroutine.
type Runner struct {
	log *zap.Logger
	cfg *config.Config
}

func NewRunner(log *zap.Logger, cfg *config.Config) *Runner {
	return &Runner{log: log, cfg: cfg}
}

// Run performs one sweep of dir. The returned error covers only the scan
// step (unreadable directory); every later condition is per-file and
// recorded in the report instead of aborting the run.
func (r *Runner) Run(dir string, dryRun bool) (*Report, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Directory: abs,
		DryRun:    dryRun,
		StartedAt: time.Now(),
	}

	mode := "live deletion"
	if dryRun {
		mode = "dry run"
	}
	r.log.Info("starting duplicate removal",
		zap.String("run_id", report.RunID),
		zap.String("dir", abs),
		zap.String("mode", mode))

	scanner := scan.NewScanner(r.log, r.cfg.Scan.Suffix)
	names, err := scanner.List(abs)
	if err != nil {
		return nil, err
	}
	report.FilesFound = len(names)

	if len(names) == 0 {
		r.log.Info("no matching files found")
		report.FinishedAt = time.Now()
		return report, nil
	}

	parser := dedupe.NewParser(r.log, r.cfg.Scan.Suffix)
	entries := parser.Parse(names)
	groups := dedupe.GroupByName(entries)
	report.Groups = len(groups)

	r.log.Info("grouped files", zap.Int("unique_names", len(groups)))
	for _, g := range groups {
		if len(g.Entries) > 1 {
			r.log.Info("group", zap.String("name", g.Name), zap.Int("versions", len(g.Entries)))
		} else {
			r.log.Info("group", zap.String("name", g.Name), zap.String("versions", "1 (no duplicates)"))
		}
	}

	decisions := dedupe.NewSelector(r.log).Select(groups)
	report.Decisions = decisions
	candidates := dedupe.Filenames(decisions)
	report.Duplicates = len(candidates)

	executor := NewExecutor(r.log, dryRun)
	report.Results = executor.Remove(abs, candidates)

	report.FinishedAt = time.Now()
	if dryRun {
		r.log.Info("dry run complete", zap.Int("would_delete", report.Count(OutcomeWouldDelete)))
	} else {
		r.log.Info("deletion complete",
			zap.Int("deleted", report.Count(OutcomeDeleted)),
			zap.Int("not_found", report.Count(OutcomeNotFound)),
			zap.Int("failed", report.Count(OutcomeFailed)))
	}
	return report, nil
}
