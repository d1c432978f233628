// Package probe decides which candidate endpoints are new and alive.
package probe

import (
	"context"
	"slices"

	"github.com/agentstation/vodmap/pkg/errors"
	"github.com/agentstation/vodmap/pkg/logging"
	"github.com/agentstation/vodmap/pkg/pacing"
)

// Checker reports whether an endpoint is live.
type Checker interface {
	Check(ctx context.Context, baseURL string) (Outcome, error)
}

// Unseen returns the candidates not present in existing, sorted.
func Unseen(candidates, existing map[string]struct{}) []string {
	out := make([]string, 0, len(candidates))
	for c := range candidates {
		if _, ok := existing[c]; !ok {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}

// Validator probes unseen candidates and keeps the live ones.
type Validator struct {
	checker Checker
	delay   pacing.Policy
}

// NewValidator creates a Validator.
func NewValidator(checker Checker, policy pacing.Policy) *Validator {
	return &Validator{checker: checker, delay: policy}
}

// Validate probes every candidate not already in existing, in lexical
// order, and returns the live ones in that order. The AfterProbe delay is
// waited after every probe. Only cancellation is returned as an error,
// along with the endpoints confirmed so far.
func (v *Validator) Validate(ctx context.Context, candidates, existing map[string]struct{}) ([]string, error) {
	return v.ValidateList(ctx, Unseen(candidates, existing))
}

// ValidateList probes urls in the given order and returns the live ones.
func (v *Validator) ValidateList(ctx context.Context, urls []string) ([]string, error) {
	var live []string
	for _, u := range urls {
		outcome, err := v.checker.Check(ctx, u)
		if ctx.Err() != nil {
			return live, errors.WrapCanceled("probe", ctx.Err())
		}

		logger := logging.FromContext(logging.WithURL(ctx, u))
		switch outcome {
		case Live:
			logger.Info().Msg("Endpoint is live")
			live = append(live, u)
		default:
			logger.Debug().Err(err).Stringer("outcome", outcome).Msg("Endpoint is not live")
		}

		if err := pacing.Wait(ctx, v.delay.AfterProbe); err != nil {
			return live, err
		}
	}
	return live, nil
}
