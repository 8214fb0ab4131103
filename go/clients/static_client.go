package clients

import (
	"context"

	"github.com/mcdev12/rosterpatch/go/internal/models"
)

// StaticClient serves rosters held in memory.
type StaticClient struct {
	source  ExternalSource
	rosters map[string][]models.RosterEntry
}

func NewStaticClient(source ExternalSource, rosters map[string][]models.RosterEntry) *StaticClient {
	return &StaticClient{
		source:  source,
		rosters: rosters,
	}
}

func (c *StaticClient) Source() ExternalSource {
	return c.source
}

func (c *StaticClient) FetchRosters(ctx context.Context) (map[string][]models.RosterEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.rosters, nil
}
