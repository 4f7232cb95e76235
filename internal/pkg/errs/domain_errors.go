package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Auction errors
	ErrAuctionNotFound = errors.New("auction not found")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Role / permission errors
	ErrRoleNotFound = errors.New("role not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrQueueOperationFailed    = errors.New("queue operation failed")
)
