package repository

import (
	"context"
	"sync"

	"campus-canteen/internal/domain/canteen"
	"campus-canteen/internal/infra"
	"campus-canteen/internal/infra/repository/converter"
	"campus-canteen/internal/infra/state"
	"campus-canteen/internal/pkg/errs"
)

var (
	seedRosterOnce sync.Once
	seedRoster     []*canteen.Canteen
	seedRosterErr  error
)

// SeedRoster builds the static canteen roster once per process; hashing is the expensive part.
func SeedRoster() ([]*canteen.Canteen, error) {
	seedRosterOnce.Do(func() {
		seedRoster, seedRosterErr = BuildRoster(state.SeedCanteens())
	})
	return seedRoster, seedRosterErr
}

func BuildRoster(records []state.CanteenRecord) ([]*canteen.Canteen, error) {
	roster := make([]*canteen.Canteen, 0, len(records))
	for _, r := range records {
		c, err := converter.CanteenFromRecord(r)
		if err != nil {
			return nil, errs.Wrapf(err, "invalid roster entry %s", r.ID)
		}
		roster = append(roster, c)
	}
	return roster, nil
}

type CanteenRepository struct {
	roster []*canteen.Canteen
}

func NewCanteenRepository(roster []*canteen.Canteen) *CanteenRepository {
	return &CanteenRepository{roster: roster}
}

func (r *CanteenRepository) List(_ context.Context) ([]*canteen.Canteen, error) {
	out := make([]*canteen.Canteen, len(r.roster))
	copy(out, r.roster)
	return out, nil
}

func (r *CanteenRepository) FindByID(_ context.Context, id string) (*canteen.Canteen, error) {
	for _, c := range r.roster {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, infra.NotFound("canteen not found")
}
