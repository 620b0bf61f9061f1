package response

import (
	"github.com/jinzhu/copier"
)

// From maps a query view onto its response shape by field name.
func From[T any](view any) (T, error) {
	var out T
	err := copier.Copy(&out, view)
	return out, err
}

// FromEach maps a list of views; an empty list stays an empty JSON array.
func FromEach[T any, V any](views []V) ([]T, error) {
	out := make([]T, len(views))
	for i := range views {
		if err := copier.Copy(&out[i], views[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
