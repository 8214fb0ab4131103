package main

import (
	"github.com/mcdev12/rosterpatch/go/internal/career"
	"github.com/mcdev12/rosterpatch/go/internal/generator"
	"github.com/mcdev12/rosterpatch/go/internal/roster"
	"github.com/mcdev12/rosterpatch/go/internal/rosterconfig"
)

type Services struct {
	Patcher *roster.App
	Locator *career.Locator
}

func setupServices(cfg rosterconfig.Config, source roster.RosterSource, seed int64) *Services {
	// Config → Updater/Generator → App
	identity := cfg.Identity()

	updater := roster.NewUpdater(identity)
	gen := generator.NewSeeded(seed)
	patcher := roster.NewApp(updater, gen, source, cfg.PatchOptions())

	locator := career.NewLocator(identity, cfg.HomeTeam(), cfg.CollegeLeagueType)

	return &Services{
		Patcher: patcher,
		Locator: locator,
	}
}
