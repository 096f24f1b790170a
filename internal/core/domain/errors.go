package domain

import "errors"

var (
	// ErrNotFound is returned by the use case layer when a record id does not
	// resolve. Repositories themselves report a miss as a nil record.
	ErrNotFound = errors.New("record not found")
	// ErrParentNotFound is returned when a child is created under a parent id
	// that is not present in the active backend.
	ErrParentNotFound = errors.New("parent record not found")
	ErrValidation     = errors.New("validation failed")
	// ErrRemoteUnavailable is returned by writes against the remote API
	// backends, which are not implemented yet.
	ErrRemoteUnavailable = errors.New("remote API is currently unavailable")
	ErrUnknownMode       = errors.New("unknown database mode")
	// ErrWarehouseNotConfigured is returned by the warehouse probe when the
	// project or dataset id is missing.
	ErrWarehouseNotConfigured = errors.New("warehouse environment is not configured")
)
