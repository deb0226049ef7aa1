package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate
// these into HTTP status codes; anything else is a 500.
var (
	// ErrInvalidCredentials is returned for both an unknown email and
	// a wrong password, so login failures never reveal whether an
	// account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrInvalidToken covers malformed, tampered and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidID is returned when a path parameter is not a
	// well-formed identifier.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrNotFound is returned when no record matches the identifier.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden is returned when the caller's role or ownership
	// does not permit the operation.
	ErrForbidden = errors.New("operation not permitted")

	// ErrInsufficientStock is returned when an order asks for more
	// units than a product has in stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidStatus is returned for an order status outside the
	// known set.
	ErrInvalidStatus = errors.New("invalid order status")
)
