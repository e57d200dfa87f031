package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Callers match
// with errors.Is so a not-found condition stays distinguishable from a
// storage failure regardless of backend.
var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrUserNotFound         = errors.New("user not found")
)
