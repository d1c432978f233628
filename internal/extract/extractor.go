// Package extract turns code search hits into candidate endpoint URLs by
// downloading each file and walking its JSON for the target fragment.
package extract

import (
	"context"

	"github.com/agentstation/vodmap/internal/search"
	"github.com/agentstation/vodmap/pkg/constants"
	"github.com/agentstation/vodmap/pkg/errors"
	"github.com/agentstation/vodmap/pkg/logging"
	"github.com/agentstation/vodmap/pkg/pacing"
)

// Source fetches and decodes one file.
type Source interface {
	Fetch(ctx context.Context, rawURL string) (any, error)
}

// Extractor collects candidate URLs from search results.
type Extractor struct {
	source   Source
	fragment string
	delay    pacing.Policy
}

// New creates an Extractor reading files through source.
func New(source Source, policy pacing.Policy) *Extractor {
	return &Extractor{
		source:   source,
		fragment: constants.TargetFragment,
		delay:    policy,
	}
}

// Extract fetches the file behind item and adds its candidate URLs to into.
//
// A file that cannot be fetched or parsed is logged and skipped; the error
// is returned only so callers can count failures. The AfterFetch delay is
// waited whatever the outcome, and a cancellation during that wait is
// returned instead.
func (e *Extractor) Extract(ctx context.Context, item search.Item, into map[string]struct{}) error {
	rawURL := item.RawURL()
	logger := logging.FromContext(logging.WithURL(ctx, rawURL))

	doc, err := e.source.Fetch(ctx, rawURL)
	var apiErr *errors.APIError
	switch {
	case err == nil:
		before := len(into)
		Collect(doc, e.fragment, into)
		logger.Debug().
			Int("new_candidates", len(into)-before).
			Msg("Processed file")
	case errors.As(err, &apiErr) && apiErr.StatusCode != 0:
		// The host answered, just not with the file.
		logger.Warn().
			Int("status", apiErr.StatusCode).
			Msgf("Skipping %s", rawURL)
	default:
		logger.Error().
			Err(err).
			Msgf("Error processing %s", rawURL)
	}

	if waitErr := pacing.Wait(ctx, e.delay.AfterFetch); waitErr != nil {
		return waitErr
	}
	return err
}
