package shopkeeper

import "errors"

// Errors reported by the shop. They are wrapped with context, test them with errors.Is.
var (
	// ErrMissingDataFile is returned when the inventory file does not exist.
	ErrMissingDataFile = errors.New("missing data file")
	// ErrMissingCustomerInfo is returned when invoicing requires a customer name and email.
	ErrMissingCustomerInfo = errors.New("customer name and email are required")
	ErrUnknownItem         = errors.New("unknown item")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	// ErrInsufficientStock is a user-recoverable condition: nothing has been changed.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrPersistence is returned when a table could not be written. The operation is not confirmed.
	ErrPersistence   = errors.New("persistence error")
	ErrDuplicateItem = errors.New("item already exists")
	ErrInvalidItem   = errors.New("invalid item")
)
