// Package discover runs the discovery pipeline: code search, file
// extraction, liveness probing, and the catalog merge.
package discover

import (
	"context"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/agentstation/vodmap/internal/extract"
	"github.com/agentstation/vodmap/internal/probe"
	"github.com/agentstation/vodmap/internal/search"
	"github.com/agentstation/vodmap/pkg/catalogs"
	"github.com/agentstation/vodmap/pkg/errors"
	"github.com/agentstation/vodmap/pkg/logging"
)

// Run discovers new live endpoints and appends them to the catalog file.
//
// The stages run one after another and pass their results explicitly. A
// missing or unreadable catalog counts as empty. Files that cannot be
// fetched and endpoints that do not answer are skipped. A failing search
// request, a cancellation, or a failed write ends the run with an error,
// and the catalog file is only written after every stage has finished.
func Run(ctx context.Context, opts ...Option) (*Result, error) {
	// Step 0: Set context
	if ctx == nil {
		ctx = context.Background()
	}

	// Step 1: Parse and validate options
	options := Defaults().Apply(opts...)
	if err := options.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Setup context with timeout
	var cancel context.CancelFunc
	if options.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
	} else {
		cancel = func() {} // No-op cancel if no timeout
	}
	defer cancel()

	result := &Result{
		RunID:       uuid.NewString(),
		StartedAt:   utc.Now(),
		CatalogPath: options.CatalogPath,
		DryRun:      options.DryRun,
	}
	ctx = logging.WithRunID(ctx, result.RunID)
	logger := logging.FromContext(ctx)

	// Step 3: Build the stages
	searcher, err := options.searcher()
	if err != nil {
		return nil, err
	}
	extractor := extract.New(options.source(), options.Pacing)
	validator := probe.NewValidator(options.checker(), options.Pacing)

	// Step 4: Load the existing catalog as the baseline
	existing := loadBaseline(ctx, options.CatalogPath, result)

	// Step 5: Search and extract candidates
	candidates, err := collect(ctx, searcher, extractor, result)
	if err != nil {
		return nil, err
	}
	result.Candidates = len(candidates)

	// Step 6: Probe the candidates not yet catalogued
	unseen := probe.Unseen(candidates, existing.BaseURLs())
	result.Unseen = len(unseen)
	logger.Info().
		Int("candidates", result.Candidates).
		Int("unseen", result.Unseen).
		Msg("Probing new candidates")

	live, err := validator.ValidateList(logging.WithStage(ctx, "probe"), unseen)
	if err != nil {
		return nil, err
	}
	result.Live = len(live)

	// Step 7: Merge and persist
	merged, added := catalogs.Merge(existing, live, options.mergeOptions()...)
	result.Added = added

	if options.DryRun {
		logger.Info().Bool("dry_run", true).Int("added", len(added)).Msg("Dry run completed - catalog not written")
	} else {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapCanceled("discover", err)
		}
		if err := catalogs.Save(options.CatalogPath, merged); err != nil {
			return nil, err
		}
	}

	result.FinishedAt = utc.Now()
	logger.Info().
		Int("files", result.FilesScanned).
		Int("failed_files", result.FilesFailed).
		Int("live", result.Live).
		Int("added", len(result.Added)).
		Dur("duration", result.Duration()).
		Msg("Discovery run finished")

	return result, nil
}

// loadBaseline reads the catalog, falling back to an empty one.
func loadBaseline(ctx context.Context, path string, result *Result) catalogs.Catalog {
	logger := logging.FromContext(ctx)

	existing, status, err := catalogs.Load(path)
	result.LoadStatus = status

	switch {
	case err != nil:
		logger.Warn().Err(err).Str("path", path).Msg("Could not read catalog, starting from an empty catalog")
	case status == catalogs.Missing:
		logger.Info().Str("path", path).Msg("No catalog file found, starting from an empty catalog")
	case status == catalogs.Corrupt:
		logger.Warn().Str("path", path).Msg("Catalog file is not a JSON array of objects, starting from an empty catalog")
	default:
		logger.Info().
			Str("path", path).
			Int("entries", existing.Len()).
			Int("max_priority", existing.MaxPriority()).
			Msg("Loaded catalog")
	}
	return existing
}

// collect runs the search and extract stages and returns the candidate set.
func collect(ctx context.Context, searcher Searcher, extractor *extract.Extractor, result *Result) (map[string]struct{}, error) {
	candidates := make(map[string]struct{})
	extractCtx := logging.WithStage(ctx, "extract")

	var stopErr error
	err := searcher.ForEach(logging.WithStage(ctx, "search"), func(item search.Item) bool {
		result.FilesScanned++
		if err := extractor.Extract(extractCtx, item, candidates); err != nil {
			if errors.IsCanceled(err) && ctx.Err() != nil {
				stopErr = err
				return false
			}
			result.FilesFailed++
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if stopErr != nil {
		return nil, stopErr
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapCanceled("extract", err)
	}
	return candidates, nil
}
