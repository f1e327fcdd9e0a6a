// Package rename dispatches repository renames against the GitHub API and
// reports their outcomes.
package rename

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/konflux-ci/rename-repos/internal/config"
	"github.com/konflux-ci/rename-repos/internal/mapping"
	"golang.org/x/sync/errgroup"
)

// State is a phase of a rename run
type State int

const (
	StateIdle State = iota
	StateLoading
	StateParsed
	StateDispatching
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateParsed:
		return "parsed"
	case StateDispatching:
		return "dispatching"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is the outcome of one rename
type Result struct {
	Rename mapping.Rename
	Err    error
}

// Summary counts the outcomes of a run
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// Runner orchestrates a batch rename
type Runner struct {
	config   config.Config
	executor *Executor
	out      io.Writer
	errOut   io.Writer

	mu    sync.Mutex
	state State
}

// NewRunner creates a new Runner instance. Progress goes to out, warnings and
// per-item errors to errOut.
func NewRunner(ctx context.Context, cfg config.Config, out, errOut io.Writer) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := NewClient(ctx, cfg.Token, cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	return &Runner{
		config:   cfg,
		executor: NewExecutor(client.Repositories),
		out:      out,
		errOut:   errOut,
	}, nil
}

// State returns the phase the run is in
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Run loads the mapping file, dispatches every rename concurrently and waits
// for all of them to settle. Per-item failures are reported but never returned;
// only loading and parsing errors are, plus ctx's error if the run was cancelled.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	r.setState(StateLoading, "Loading mappings from %s", r.config.InputPath)

	rows, err := mapping.Load(r.config.InputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load mappings: %w", err)
	}

	renames, err := mapping.Parse(rows)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to parse mappings: %w", err)
	}
	r.setState(StateParsed, "Parsed %d mappings", len(renames))

	dump, err := json.MarshalIndent(renames, "", "  ")
	if err != nil {
		return Summary{}, fmt.Errorf("failed to encode mappings: %w", err)
	}
	r.printf("%s\n", dump)

	r.setState(StateDispatching, "Dispatching %d renames", len(renames))
	results := r.dispatch(ctx, renames)

	summary := summarize(results)
	r.setState(StateDone, "%d renames settled", len(results))
	r.printSummary(summary, results)

	if r.config.ReportPath != "" {
		if err := r.writeReport(summary, results); err != nil {
			r.errorf("⚠️  Warning: %v\n", err)
		} else {
			r.printf("📝 Report written to %s\n", r.config.ReportPath)
		}
	}

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("run interrupted: %w", err)
	}

	return summary, nil
}

func (r *Runner) dispatch(ctx context.Context, renames []mapping.Rename) []Result {
	results := make([]Result, len(renames))

	var g errgroup.Group
	for i, rn := range renames {
		i, rn := i, rn
		g.Go(func() error {
			results[i] = r.renameOne(ctx, rn)
			return nil
		})
	}
	// Workers never return errors
	_ = g.Wait()

	return results
}

func (r *Runner) renameOne(ctx context.Context, rn mapping.Rename) Result {
	r.printf("🔁 Renaming %s to %s\n", rn.Origin, rn.Target)
	if rn.OwnerChanged() {
		r.errorf("  ⚠️  Warning: %s stays under %s, ownership is not transferred to %s\n",
			rn.Origin, rn.Origin.Owner, rn.Target.Owner)
	}

	err := r.executor.Rename(ctx, rn)
	if err != nil {
		r.errorf("  ❌ %s\n", color.RedString("Error renaming %s to %s: %v", rn.Origin, rn.Target, err))
	} else {
		r.printf("  ✅ %s %s -> %s\n", color.GreenString("Success!"), rn.Origin, rn.Target)
	}

	return Result{Rename: rn, Err: err}
}

func summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}
	for _, res := range results {
		if res.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

func (r *Runner) printSummary(summary Summary, results []Result) {
	r.printf("\n=========================================\n")
	r.printf("Rename Summary\n")
	r.printf("=========================================\n")
	r.printf("  • Total: %d\n", summary.Total)
	r.printf("  • Succeeded: %d\n", summary.Succeeded)
	r.printf("  • Failed: %d\n", summary.Failed)

	if summary.Failed == 0 {
		return
	}

	r.printf("\nFailed renames:\n")
	for _, res := range results {
		if res.Err != nil {
			r.printf("  %s: %v\n", res.Rename.Origin, res.Err)
		}
	}
}

func (r *Runner) writeReport(summary Summary, results []Result) error {
	report := config.Report{
		Input: r.config.InputPath,
		Summary: config.ReportSummary{
			Total:     summary.Total,
			Succeeded: summary.Succeeded,
			Failed:    summary.Failed,
		},
		Entries: make([]config.ReportEntry, 0, len(results)),
	}

	for _, res := range results {
		entry := config.ReportEntry{
			Origin: res.Rename.Origin.String(),
			Target: res.Rename.Target.String(),
			Status: config.StatusSuccess,
		}
		if res.Err != nil {
			entry.Status = config.StatusFailed
			entry.Error = res.Err.Error()
		}
		report.Entries = append(report.Entries, entry)
	}

	return config.NewReportWriter(r.config.ReportPath).Write(report)
}

func (r *Runner) setState(s State, format string, args ...any) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()

	r.printf("→ [%s] %s\n", s, fmt.Sprintf(format, args...))
}

// printf writes one line under the lock so concurrent renames never interleave
func (r *Runner) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format, args...)
}

func (r *Runner) errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.errOut, format, args...)
}
