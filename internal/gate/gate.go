// Package gate implements the startup readiness gate: a blocking pre-flight
// loop that probes dependency services (Redis, Postgres) until every one of
// them is ready, then hands control to the wrapped command. The gate never
// gives up on its own; the container runtime owns the overall lifecycle
// timeout and restart policy.
package gate

import (
	"context"
	"errors"
	"time"

	"aurora/pkg/logger"
	"aurora/pkg/serrors"

	"go.uber.org/zap"
)

// Check is a single dependency liveness probe. Ready returns nil when the
// dependency is reachable and healthy. A failing probe returns an error
// carrying serrors.ErrUnavailable; an error carrying serrors.ErrInternal marks
// a fatal local failure (e.g. invalid probe configuration) that aborts the
// gate instead of being retried.
type Check interface {
	// Name returns a short identifier for the dependency, e.g. "redis".
	Name() string
	// Ready probes the dependency. Implementations should bound the probe with
	// their own timeout and respect context cancellation.
	Ready(ctx context.Context) error
}

// Options configure the gate's retry behavior. Both the backoff interval and
// the absence of a retry ceiling are deliberate, explicit choices: tests
// inject near-zero intervals, and an external orchestrator is expected to kill
// the process if dependencies never come up.
type Options struct {
	// Interval is the fixed delay between full probe passes.
	Interval time.Duration
}

// Gate runs a set of dependency checks in a fixed order until all of them
// succeed within the same pass.
type Gate struct {
	checks   []Check
	interval time.Duration
}

// New creates a gate over the given checks. Checks run in the order supplied.
func New(opts Options, checks ...Check) *Gate {
	return &Gate{
		checks:   checks,
		interval: opts.Interval,
	}
}

// Run blocks until every check reports ready in a single pass, then returns
// nil. All checks are re-run from the beginning after any failure; there is no
// memoization of checks that already passed. Run returns a non-nil error only
// on a fatal local failure or when ctx is cancelled.
func (g *Gate) Run(ctx context.Context) error {
	for pass := 1; ; pass++ {
		failed, err := g.runPass(ctx)
		if err == nil {
			logger.Info(ctx, "all dependencies ready", zap.Int("pass", pass))

			return nil
		}

		if errors.Is(err, serrors.ErrInternal) {
			return err
		}

		logger.Info(ctx, "dependency not ready, retrying",
			zap.String("check", failed),
			zap.Error(err),
			zap.Duration("backoff", g.interval),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.interval):
		}
	}
}

// runPass executes all checks in order and returns the name and error of the
// first failing check, or ("", nil) when the whole pass succeeded.
func (g *Gate) runPass(ctx context.Context) (string, error) {
	for _, check := range g.checks {
		logger.Info(ctx, "probing dependency", zap.String("check", check.Name()))

		if err := check.Ready(ctx); err != nil {
			return check.Name(), err
		}
	}

	return "", nil
}
