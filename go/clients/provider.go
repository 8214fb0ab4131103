package clients

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mcdev12/rosterpatch/go/internal/models"
)

// ErrSourceMissing is returned when a file-backed source has no file on disk.
var ErrSourceMissing = errors.New("roster source file not found")

// RosterProvider supplies curated rosters keyed by team display name.
type RosterProvider interface {
	Source() ExternalSource
	FetchRosters(ctx context.Context) (map[string][]models.RosterEntry, error)
}

// NewProviders builds one provider per active source in priority order. File-backed sources
// read from dir; the manual source serves manual.
func NewProviders(dir string, manual map[string][]models.RosterEntry) []RosterProvider {
	var providers []RosterProvider
	for _, config := range OrderedSources() {
		if config.Source == ExternalSourceManual {
			providers = append(providers, NewStaticClient(config.Source, manual))
			continue
		}
		if config.File == "" {
			continue
		}

		client := NewFileClient(config.Source, filepath.Join(dir, config.File))
		if config.Source == ExternalSourceTheSportsDB {
			client.SetFilter(TheSportsDBFilter)
		}
		providers = append(providers, client)
	}
	return providers
}

// SourceError ties a fetch failure to its source.
type SourceError struct {
	Source ExternalSource
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// MergeRosters asks every provider in order and keeps the first non-empty roster seen for
// each team. A failing provider contributes nothing; its error is returned alongside the
// merged result so the caller can report it.
func MergeRosters(ctx context.Context, providers []RosterProvider) (map[string][]models.RosterEntry, []error) {
	merged := make(map[string][]models.RosterEntry)
	var errs []error

	for _, provider := range providers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, &SourceError{Source: provider.Source(), Err: err})
			continue
		}

		rosters, err := provider.FetchRosters(ctx)
		if err != nil {
			errs = append(errs, &SourceError{Source: provider.Source(), Err: err})
			continue
		}

		for team, entries := range rosters {
			if len(entries) == 0 {
				continue
			}
			if _, claimed := merged[team]; claimed {
				continue
			}
			merged[team] = entries
		}
	}

	return merged, errs
}
