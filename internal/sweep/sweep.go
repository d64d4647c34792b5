// Package sweep fills many grids in parallel and tallies what they produced.
package sweep

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"circuitgen/internal/circuit"
)

// Job describes one grid to generate.
type Job struct {
	Seed   int64
	Mode   circuit.Mode
	Width  int
	Height int
}

// Result is the outcome of one Job.
type Result struct {
	Job
	RunID uuid.UUID
	Stats circuit.Stats
}

// Jobs expands count consecutive seeds starting at first across modes.
func Jobs(first int64, count int, modes []circuit.Mode, w, h int) []Job {
	jobs := make([]Job, 0, count*len(modes))
	for _, m := range modes {
		for i := 0; i < count; i++ {
			jobs = append(jobs, Job{Seed: first + int64(i), Mode: m, Width: w, Height: h})
		}
	}
	return jobs
}

// Run fills every job's grid on a pool of workers. Results come back ordered
// by mode, then seed. A cancelled context stops the sweep early and returns
// ctx.Err().
func Run(ctx context.Context, jobs []Job, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}

	in := make(chan Job)
	out := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range in {
				res := runJob(job)
				select {
				case out <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	go func() {
		defer close(in)
		for _, job := range jobs {
			select {
			case in <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, len(jobs))
	for res := range out {
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Mode != all[j].Mode {
			return all[i].Mode < all[j].Mode
		}
		return all[i].Seed < all[j].Seed
	})
	return all, nil
}

func runJob(job Job) Result {
	cfg := circuit.DefaultConfig()
	cfg.Width = job.Width
	cfg.Height = job.Height
	cfg.Mode = job.Mode
	cfg.Seed = job.Seed

	g := circuit.NewWithConfig(cfg)
	g.Fill()
	return Result{Job: job, RunID: g.RunID(), Stats: g.Stats()}
}

// Summary aggregates the results of one mode.
type Summary struct {
	Mode       circuit.Mode
	Runs       int
	Cells      int
	Kinds      map[circuit.JointKind]int
	Mismatches int
}

// Share returns the fraction of placed cells that resolved to kind.
func (s Summary) Share(kind circuit.JointKind) float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.Kinds[kind]) / float64(s.Cells)
}

// Summarize folds results into one Summary per mode, in mode order.
func Summarize(results []Result) []Summary {
	byMode := map[circuit.Mode]*Summary{}
	for _, r := range results {
		s, ok := byMode[r.Mode]
		if !ok {
			s = &Summary{Mode: r.Mode, Kinds: map[circuit.JointKind]int{}}
			byMode[r.Mode] = s
		}
		s.Runs++
		s.Cells += r.Stats.Cells
		s.Mismatches += r.Stats.Mismatches
		for k, n := range r.Stats.Kinds {
			s.Kinds[k] += n
		}
	}
	out := make([]Summary, 0, len(byMode))
	for _, m := range circuit.Modes {
		if s, ok := byMode[m]; ok {
			out = append(out, *s)
		}
	}
	return out
}
