package clients

import "sort"

// ExternalSource represents different roster data providers
type ExternalSource string

const (
	// ExternalSourceSportsDataIO represents an exported sportsdataio roster dump
	ExternalSourceSportsDataIO ExternalSource = "sportsdataio"

	// ExternalSourceManual represents the rosters shipped with the binary
	ExternalSourceManual ExternalSource = "manual"

	// ExternalSourceAPIFootball represents an exported api-football roster dump
	ExternalSourceAPIFootball ExternalSource = "apifootball"

	// ExternalSourceTheSportsDB represents an exported thesportsdb roster dump
	ExternalSourceTheSportsDB ExternalSource = "thesportsdb"
)

// ExternalSourceConfig holds configuration for external sources
type ExternalSourceConfig struct {
	Source      ExternalSource `json:"source"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	File        string         `json:"file"`     // empty for sources that are not file backed
	Priority    int            `json:"priority"` // Higher priority sources claim a team first
	Active      bool           `json:"active"`
}

// GetExternalSources returns all configured external sources
func GetExternalSources() map[ExternalSource]ExternalSourceConfig {
	return map[ExternalSource]ExternalSourceConfig{
		ExternalSourceSportsDataIO: {
			Source:      ExternalSourceSportsDataIO,
			Name:        "SportsData.io",
			Description: "SportsData.io college roster export",
			File:        "sportsdataio_rosters.json",
			Priority:    100,
			Active:      true,
		},
		ExternalSourceManual: {
			Source:      ExternalSourceManual,
			Name:        "Manual Entry",
			Description: "Hand-maintained rosters embedded in the binary",
			Priority:    90,
			Active:      true,
		},
		ExternalSourceAPIFootball: {
			Source:      ExternalSourceAPIFootball,
			Name:        "API-Football",
			Description: "API-Football roster export",
			File:        "apifootball_rosters.json",
			Priority:    80,
			Active:      true,
		},
		ExternalSourceTheSportsDB: {
			Source:      ExternalSourceTheSportsDB,
			Name:        "TheSportsDB",
			Description: "TheSportsDB roster export, coaches mixed in",
			File:        "thesportsdb_rosters.json",
			Priority:    70,
			Active:      true,
		},
	}
}

// ValidateExternalSource checks if the source is valid
func ValidateExternalSource(source ExternalSource) bool {
	sources := GetExternalSources()
	_, exists := sources[source]
	return exists
}

// GetActiveExternalSources returns only active external sources
func GetActiveExternalSources() map[ExternalSource]ExternalSourceConfig {
	all := GetExternalSources()
	active := make(map[ExternalSource]ExternalSourceConfig)

	for source, config := range all {
		if config.Active {
			active[source] = config
		}
	}

	return active
}

// OrderedSources returns the active sources, highest priority first
func OrderedSources() []ExternalSourceConfig {
	active := GetActiveExternalSources()
	ordered := make([]ExternalSourceConfig, 0, len(active))
	for _, config := range active {
		ordered = append(ordered, config)
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	return ordered
}
