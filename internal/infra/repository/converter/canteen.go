package converter

import (
	"campus-canteen/internal/domain/canteen"
	"campus-canteen/internal/infra/state"
	"campus-canteen/internal/pkg/password"
)

// CanteenFromRecord hashes the seeded staff password and validates the entry.
func CanteenFromRecord(r state.CanteenRecord) (*canteen.Canteen, error) {
	hash, err := password.HashPassword(r.StaffPassword)
	if err != nil {
		return nil, err
	}
	return canteen.NewCanteen(r.ID, r.Name, canteen.Category(r.Type), canteen.CrowdLevel(r.CrowdLevel), r.StaffID, hash)
}
