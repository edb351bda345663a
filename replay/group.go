package replay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicateRunner = errors.New("duplicate runner name")
	ErrPipelineFailed  = errors.New("pipeline failed")
)

// Group runs independent pipelines concurrently.
// Runners must not share mutable state, a shared context value is fine as long
// as it's only read.
type Group struct {
	runners []Runner
	log     *slog.Logger

	mu      sync.Mutex
	results map[string]Result
	wg      *errgroup.Group `exhaustruct:"optional"`
}

// NewGroup returns an error if two runners have the same name.
func NewGroup(runners []Runner, opts ...Option) (*Group, error) {
	cfg := newConfig(opts)

	seen := make(map[string]struct{}, len(runners))
	for _, r := range runners {
		if _, ok := seen[r.Name()]; ok {
			return nil, fmt.Errorf("new group: %q: %w", r.Name(), ErrDuplicateRunner)
		}
		seen[r.Name()] = struct{}{}
	}

	//nolint:exhaustruct // wg is set by Run.
	return &Group{
		runners: runners,
		log:     cfg.log,
		results: make(map[string]Result, len(runners)),
	}, nil
}

// Run starts every runner on its own goroutine. The first failure cancels the others.
func (g *Group) Run(ctx context.Context) {
	wg, ctx := errgroup.WithContext(ctx)
	g.wg = wg

	for _, r := range g.runners {
		g.wg.Go(func() error {
			name := r.Name()
			g.log.InfoContext(ctx, "Starting pipeline", "name", name)

			res, err := r.Run(ctx)

			g.mu.Lock()
			g.results[name] = res
			g.mu.Unlock()

			if err != nil {
				g.log.ErrorContext(ctx, "Pipeline failed", "name", name, "error", err)
				return fmt.Errorf("%w: %q: %w", ErrPipelineFailed, name, err)
			}

			g.log.InfoContext(ctx, "Pipeline done", "name", name, "applied", res.Applied, "failed", res.Failed)
			return nil
		})
	}
}

// Wait blocks until all runners have stopped and returns their results by name.
// It returns the first error encountered by any runner. If the context was
// canceled, the shutdown is considered clean.
func (g *Group) Wait() (map[string]Result, error) {
	if g.wg == nil {
		return nil, nil
	}

	err := g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()

	results := maps.Clone(g.results)

	if errors.Is(err, context.Canceled) {
		return results, nil
	}
	return results, err
}
