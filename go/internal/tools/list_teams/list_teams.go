package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mcdev12/rosterpatch/go/clients"
	"github.com/mcdev12/rosterpatch/go/internal/curated"
	"github.com/mcdev12/rosterpatch/go/internal/models"
	"github.com/mcdev12/rosterpatch/go/internal/rosterconfig"
	"github.com/mcdev12/rosterpatch/go/internal/savefile"
)

// teamRow is one line of the report
type teamRow struct {
	Name    string
	Players int
	Tier    models.Tier
	Curated int
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: list_teams <save_file>")
		os.Exit(1)
	}

	// 1) Load the save
	doc, err := savefile.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "load save: %v\n", err)
		os.Exit(1)
	}

	// 2) Load the same roster sources the patcher uses
	cfg, err := rosterconfig.Load(rosterconfig.ConfigPath())
	if err == nil {
		err = cfg.ApplyEnv()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	repo, err := loadRepository(context.Background(), cfg.SourcesDir, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load curated rosters: %v\n", err)
		os.Exit(1)
	}

	// 3) Print report
	if err := report(os.Stdout, collect(doc, repo)); err != nil {
		fmt.Fprintf(os.Stderr, "write report: %v\n", err)
		os.Exit(1)
	}
}

// loadRepository merges the source exports in dir over the embedded rosters. Broken
// exports are reported on stderr; absent ones are expected.
func loadRepository(ctx context.Context, dir string, stderr io.Writer) (*curated.Repository, error) {
	repo, errs, err := curated.LoadRepository(ctx, dir)
	if err != nil {
		return nil, err
	}
	for _, err := range errs {
		if !errors.Is(err, clients.ErrSourceMissing) {
			fmt.Fprintf(stderr, "skipping roster source: %v\n", err)
		}
	}
	return repo, nil
}

func collect(doc *models.Document, repo *curated.Repository) []teamRow {
	var rows []teamRow
	for _, team := range doc.TeamsOfLeagueType(models.LeagueTypeCollege) {
		name := team.DisplayName()
		entries, _ := repo.CuratedRoster(name)
		rows = append(rows, teamRow{
			Name:    name,
			Players: team.RosterSize(),
			Tier:    repo.TeamTier(name),
			Curated: len(entries),
		})
	}
	return rows
}

func report(w io.Writer, rows []teamRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEAM\tPLAYERS\tTIER\tCURATED")

	var (
		total       = len(rows)
		withCurated int
		empty       int
	)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\n", r.Name, r.Players, r.Tier, r.Curated)
		if r.Curated > 0 {
			withCurated++
		}
		if r.Players == 0 {
			empty++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w,
		"College teams: %d total, %d curated, %d generated, %d without roster\n",
		total, withCurated, total-withCurated-empty, empty,
	)
	return err
}
