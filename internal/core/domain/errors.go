package domain

import "errors"

var (
	// ErrMalformedCredential marks a stored credential that cannot be decoded
	// far enough to extract a role. It degrades authorization to non-admin
	// and is never fatal.
	ErrMalformedCredential = errors.New("malformed credential")

	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("admin access required")

	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrEmptyCart        = errors.New("cart is empty")

	// ErrBackendUnavailable wraps network or protocol failures against the
	// remote commerce backend. Catalog reads absorb it into the sample-data
	// fallback; write operations surface it to the caller.
	ErrBackendUnavailable = errors.New("commerce backend unavailable")

	// ErrTokenMissing means a login response that contained none of the
	// recognised token shapes.
	ErrTokenMissing = errors.New("no token in login response")
)
