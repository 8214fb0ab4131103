package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/rosterpatch/go/clients"
	"github.com/mcdev12/rosterpatch/go/internal/career"
	"github.com/mcdev12/rosterpatch/go/internal/curated"
	"github.com/mcdev12/rosterpatch/go/internal/rosterconfig"
)

func loadConfig() (rosterconfig.Config, error) {
	path := rosterconfig.ConfigPath()
	cfg, err := rosterconfig.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadRosterSource merges every roster source over the embedded tables. Source failures
// are reported and skipped.
func loadRosterSource(ctx context.Context, cfg rosterconfig.Config) (*curated.Repository, error) {
	repo, errs, err := curated.LoadRepository(ctx, cfg.SourcesDir)
	if err != nil {
		return nil, err
	}
	for _, err := range errs {
		if errors.Is(err, clients.ErrSourceMissing) {
			log.Debug().Err(err).Msg("roster source not present")
			continue
		}
		log.Warn().Err(err).Msg("skipping roster source")
	}

	log.Info().Int("teams", len(repo.Teams())).Msg("loaded curated rosters")
	return repo, nil
}

func logLocateResult(res career.Result) {
	switch res.Outcome {
	case career.OutcomeNoHomeTeam:
		log.Warn().
			Str("match", res.Match.String()).
			Str("from_team", res.FromTeam).
			Msg("home team not found, career player left in place")
	case career.OutcomeCreated:
		log.Info().
			Str("home_team", res.HomeTeam).
			Msg("career player not found, created on home team")
	default:
		log.Info().
			Str("outcome", res.Outcome.String()).
			Str("match", res.Match.String()).
			Str("from_team", res.FromTeam).
			Str("home_team", res.HomeTeam).
			Int("duplicates_removed", res.DuplicatesRemoved).
			Msg("career player on home team")
	}
}
