package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/rosterpatch/go/internal/savefile"
)

const usage = "Usage: rosterpatch <save_file>"

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().
		Str("run", uuid.New().String()[:8]).
		Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	os.Exit(run(context.Background(), os.Args[1:], clockwork.NewRealClock(), os.Stderr))
}

// run patches the save named by args and returns the process exit code.
func run(ctx context.Context, args []string, clock clockwork.Clock, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	path := args[0]
	started := clock.Now()

	cfg, err := loadConfig()
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		return 1
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	doc, err := savefile.Load(path)
	if errors.Is(err, savefile.ErrNotMobileSave) {
		fmt.Fprintln(stderr, "Error: Not a mobile save file")
		return 1
	}
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to load save file")
		return 1
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	log.Info().
		Str("path", path).
		Str("sources_dir", cfg.SourcesDir).
		Int64("seed", seed).
		Msg("patching college rosters")

	source, err := loadRosterSource(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to load curated rosters")
		return 1
	}

	services := setupServices(cfg, source, seed)

	summary := services.Patcher.PatchDocument(doc)
	located := services.Locator.Run(doc)
	logLocateResult(located)

	if err := savefile.Write(path, doc); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to write save file")
		return 1
	}

	log.Info().
		Int("teams_updated", summary.TeamsUpdated).
		Int("players_updated", summary.PlayersUpdated).
		Int("players_preserved", summary.PlayersPreserved).
		Int("curated_teams", summary.CuratedTeams).
		Int("generated_teams", summary.GeneratedTeams).
		Dur("elapsed", clock.Since(started)).
		Msg("roster update complete")
	return 0
}
