package errs

import "errors"

// Markers shared by the usecase layer and the HTTP handlers.
var (
	// Catalog / canteen
	ErrCanteenNotFound  = errors.New("canteen not found")
	ErrFoodItemNotFound = errors.New("food item not found")
	ErrSlotNotFound     = errors.New("time slot not found")

	// Orders
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderNotOwned = errors.New("order belongs to another canteen")

	// Validation
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
