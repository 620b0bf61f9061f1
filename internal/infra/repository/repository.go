package repository

import (
	"campus-canteen/internal/infra"
)

// guard rejects writes issued through a read-only unit of work.
type guard struct {
	readOnly bool
}

func (g guard) checkWritable(op string) error {
	if g.readOnly {
		return infra.WrapRepoErr(infra.KindReadOnly, op+" in read-only unit of work", nil)
	}
	return nil
}
