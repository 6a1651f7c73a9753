package domain

import "strings"

// Authorization is the outcome of resolving a stored credential. A credential
// that is present but unparseable still counts as authenticated (the user did
// log in), it just can never grant admin.
type Authorization struct {
	Authenticated bool
	Admin         bool
	Err           error
}

// RoleClaim is the role signal extracted from a credential payload. Issuers
// disagree on both the claim name and its shape, so the value is decoded into
// an explicit tagged form instead of being probed ad hoc.
type RoleClaim struct {
	Kind   RoleClaimKind
	Value  string
	Values []string
}

type RoleClaimKind int

const (
	// RoleClaimAbsent covers missing claims and any shape that is neither a
	// string nor a list of strings (objects, numbers). It never grants admin.
	RoleClaimAbsent RoleClaimKind = iota
	RoleClaimString
	RoleClaimList
)

// RoleClaimNames are the payload fields checked for a role signal, in
// priority order. The first one present wins.
var RoleClaimNames = [4]string{"auth", "authorities", "roles", "scope"}

// ContainsAdmin reports whether the claim carries an admin authority:
// a string claim matches when "admin" occurs anywhere in it, a list claim
// when any element matches. Comparison is case-insensitive.
func (r RoleClaim) ContainsAdmin() bool {
	switch r.Kind {
	case RoleClaimString:
		return containsAdmin(r.Value)
	case RoleClaimList:
		for _, v := range r.Values {
			if containsAdmin(v) {
				return true
			}
		}
	}
	return false
}

func containsAdmin(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "admin")
}
