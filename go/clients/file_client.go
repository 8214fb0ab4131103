package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/mcdev12/rosterpatch/go/internal/models"
)

// EntryFilter reports whether an entry from a source should be kept.
type EntryFilter func(models.RosterEntry) bool

// FileClient reads a roster export: a JSON object of team display name to entry list.
type FileClient struct {
	source ExternalSource
	path   string
	filter EntryFilter
}

func NewFileClient(source ExternalSource, path string) *FileClient {
	return &FileClient{
		source: source,
		path:   path,
	}
}

func (c *FileClient) SetFilter(filter EntryFilter) {
	c.filter = filter
}

func (c *FileClient) Source() ExternalSource {
	return c.source
}

// FetchRosters reads the export. Teams whose value is not a list of entries are skipped
// with a warning; a filtered list that comes out empty is dropped.
func (c *FileClient) FetchRosters(ctx context.Context) (map[string][]models.RosterEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, c.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.path, err)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON in %s", c.path)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("expected an object of team rosters in %s", c.path)
	}

	rosters := make(map[string][]models.RosterEntry)
	root.ForEach(func(key, value gjson.Result) bool {
		team := key.String()
		if !value.IsArray() {
			log.Warn().Str("source", string(c.source)).Str("team", team).Msg("skipping roster that is not a list")
			return true
		}

		var entries []models.RosterEntry
		if err := json.Unmarshal([]byte(value.Raw), &entries); err != nil {
			log.Warn().Err(err).Str("source", string(c.source)).Str("team", team).Msg("skipping unreadable roster")
			return true
		}

		if c.filter != nil {
			entries = filterEntries(entries, c.filter)
		}
		if len(entries) > 0 {
			rosters[team] = entries
		}
		return true
	})

	return rosters, nil
}

func filterEntries(entries []models.RosterEntry, keep EntryFilter) []models.RosterEntry {
	kept := make([]models.RosterEntry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	return kept
}

// TheSportsDBFilter drops staff that TheSportsDB lists alongside players: anyone aged 40 or
// over, and entries with the first name "Jay".
func TheSportsDBFilter(e models.RosterEntry) bool {
	if e.Age != nil && *e.Age >= 40 {
		return false
	}
	if e.FirstName != nil && *e.FirstName == "Jay" {
		return false
	}
	return true
}
