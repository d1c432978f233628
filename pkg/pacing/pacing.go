// Package pacing holds the fixed-delay policy the discovery pipeline uses to
// stay under remote rate limits. Delays are plain values so tests can run the
// whole pipeline with None().
package pacing

import (
	"context"
	"time"

	"github.com/agentstation/vodmap/pkg/constants"
	"github.com/agentstation/vodmap/pkg/errors"
)

// Policy is the set of delays inserted between remote calls.
type Policy struct {
	// AfterPage is waited after each processed search page
	AfterPage time.Duration
	// AfterFetch is waited after each file, whether or not it could be read
	AfterFetch time.Duration
	// AfterProbe is waited after each liveness probe, whatever the outcome
	AfterProbe time.Duration
}

// Default returns the production delays.
func Default() Policy {
	return Policy{
		AfterPage:  constants.PageDelay,
		AfterFetch: constants.FetchDelay,
		AfterProbe: constants.ProbeDelay,
	}
}

// None returns a policy with no delays.
func None() Policy {
	return Policy{}
}

// IsZero reports whether the policy inserts no delay at all.
func (p Policy) IsZero() bool {
	return p.AfterPage <= 0 && p.AfterFetch <= 0 && p.AfterProbe <= 0
}

// Wait blocks for d or until ctx is done. A non-positive d returns at once.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return errors.WrapCanceled("pacing wait", ctx.Err())
	}
}
