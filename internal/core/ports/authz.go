package ports

import "github.com/clothingstore/storefront-gateway/internal/core/domain"

// AuthzService derives an authorization decision from a stored credential.
// Resolve must be pure and safe to call on every request.
type AuthzService interface {
	Resolve(rawCredential string) domain.Authorization
}
