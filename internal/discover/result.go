package discover

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/vodmap/pkg/catalogs"
)

// Result describes a finished discovery run.
type Result struct {
	RunID      string
	StartedAt  utc.Time
	FinishedAt utc.Time

	// Pipeline counts
	FilesScanned int // search hits processed
	FilesFailed  int // hits whose file could not be fetched or parsed
	Candidates   int // distinct fragment-bearing strings found
	Unseen       int // candidates not already catalogued
	Live         int // unseen candidates that answered the probe

	Added []catalogs.Entry // entries appended to the catalog

	// Catalog
	CatalogPath string
	LoadStatus  catalogs.LoadStatus
	DryRun      bool // nothing was written
}

// HasChanges returns true if the run added any entries.
func (r *Result) HasChanges() bool {
	return len(r.Added) > 0
}

// Duration returns how long the run took.
func (r *Result) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Summary returns the one-line report printed when a run completes.
func (r *Result) Summary() string {
	if r.DryRun {
		return fmt.Sprintf("Dry run: would update %s with %d new APIs.", r.CatalogPath, len(r.Added))
	}
	return fmt.Sprintf("Updated %s with %d new APIs.", r.CatalogPath, len(r.Added))
}
