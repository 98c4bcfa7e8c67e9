package errs

import "errors"

// Sentinel errors shared by the command and query sides
var (
	// Reference data
	ErrProviderNotFound  = errors.New("provider not found")
	ErrExtraTaskNotFound = errors.New("extra task not found")

	// Orders / notifications
	ErrOrderNotFound        = errors.New("order not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// Draft persistence
	ErrDraftStoreFailed = errors.New("draft store operation failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
