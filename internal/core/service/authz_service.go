package service

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
)

// AuthzService derives admin status from a stored bearer credential without
// verifying its signature. The gateway holds no signing secret: the decision
// only gates which storefront surfaces are offered, and the backend re-checks
// every privileged write. Resolve is pure and runs on every request, which
// replaces the browser's storage-change listener wholesale.
type AuthzService struct {
	parser *jwt.Parser
}

func NewAuthzService() *AuthzService {
	// Issuers vary between padded and unpadded payload encoding.
	return &AuthzService{parser: jwt.NewParser(jwt.WithPaddingAllowed())}
}

// Resolve maps a raw credential to an authorization decision.
//
// No credential means unauthenticated, not an error. A credential that is
// present but undecodable still authenticates its bearer (they did log in),
// carries ErrMalformedCredential, and can never grant admin.
func (s *AuthzService) Resolve(rawCredential string) domain.Authorization {
	if rawCredential == "" {
		return domain.Authorization{}
	}

	authz := domain.Authorization{Authenticated: true}

	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(rawCredential, claims); err != nil {
		authz.Err = domain.ErrMalformedCredential
		return authz
	}

	authz.Admin = extractRoleClaim(claims).ContainsAdmin()
	return authz
}

// extractRoleClaim probes the known role claim names in priority order and
// decodes the first present value into its tagged form. Shapes other than a
// string or a list of strings decode as absent.
func extractRoleClaim(claims jwt.MapClaims) domain.RoleClaim {
	for _, name := range domain.RoleClaimNames {
		raw, ok := claims[name]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case string:
			return domain.RoleClaim{Kind: domain.RoleClaimString, Value: v}
		case []any:
			values := make([]string, 0, len(v))
			for _, el := range v {
				s, ok := el.(string)
				if !ok {
					return domain.RoleClaim{Kind: domain.RoleClaimAbsent}
				}
				values = append(values, s)
			}
			return domain.RoleClaim{Kind: domain.RoleClaimList, Values: values}
		default:
			return domain.RoleClaim{Kind: domain.RoleClaimAbsent}
		}
	}
	return domain.RoleClaim{Kind: domain.RoleClaimAbsent}
}
